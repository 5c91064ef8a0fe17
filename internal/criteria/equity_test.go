package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobfit/internal/types"
)

func TestScoreEquityBonus(t *testing.T) {
	tests := []struct {
		name        string
		equity      *bool
		bonus       *bool
		wantScore   int
		wantMissing bool
	}{
		{"both mentioned", bptr(true), bptr(true), 50, false},
		{"equity only", bptr(true), bptr(false), 25, false},
		{"bonus only", bptr(false), bptr(true), 25, false},
		{"equity only, bonus unknown", bptr(true), nil, 25, false},
		{"neither mentioned", bptr(false), bptr(false), 0, false},
		{"both unknown", nil, nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &types.JobPayload{EquityMentioned: tt.equity, BonusMentioned: tt.bonus}
			result := ScoreEquityBonus(job, emptyProfile())
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, tt.wantMissing, result.MissingData)
		})
	}
}

func TestScoreEquityBonus_ActualValue(t *testing.T) {
	result := ScoreEquityBonus(&types.JobPayload{EquityMentioned: bptr(true)}, emptyProfile())
	assert.Equal(t, "equity only", result.ActualValue)

	result = ScoreEquityBonus(&types.JobPayload{}, emptyProfile())
	assert.Equal(t, "unknown", result.ActualValue)
}
