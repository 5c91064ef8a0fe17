package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobfit/internal/types"
)

func salaryProfile(floor, target float64) *types.UserProfile {
	p := &types.UserProfile{}
	if floor > 0 {
		p.Preferences.SalaryFloor = fptr(floor)
	}
	if target > 0 {
		p.Preferences.SalaryTarget = fptr(target)
	}
	return p
}

func TestScoreSalary_Bands(t *testing.T) {
	tests := []struct {
		name      string
		min, max  *float64
		floor     float64
		target    float64
		wantScore int
	}{
		{"meets target", nil, fptr(220000), 150000, 185000, 50},
		{"exactly target", nil, fptr(185000), 150000, 185000, 50},
		{"midway floor to target", nil, fptr(175000), 150000, 185000, 43},
		{"at floor", nil, fptr(150000), 150000, 185000, 25},
		{"5 pct under floor", nil, fptr(142500), 150000, 185000, 20},
		{"15 pct under floor", nil, fptr(127500), 150000, 185000, 15},
		{"25 pct under floor", nil, fptr(112500), 150000, 185000, 10},
		{"40 pct under floor", nil, fptr(90000), 150000, 185000, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &types.JobPayload{SalaryMin: tt.min, SalaryMax: tt.max}
			result := ScoreSalary(job, salaryProfile(tt.floor, tt.target))
			assert.Equal(t, tt.wantScore, result.Score)
			assert.False(t, result.MissingData)
		})
	}
}

func TestScoreSalary_Interpolation(t *testing.T) {
	// 175k between 150k floor and 185k target: 25 + 25/35*25 ≈ 43
	result := ScoreSalary(
		&types.JobPayload{SalaryMax: fptr(175000)},
		salaryProfile(150000, 185000),
	)
	assert.Equal(t, 43, result.Score)
	assert.Contains(t, result.Rationale, "between your floor")
}

func TestScoreSalary_NotDisclosed(t *testing.T) {
	result := ScoreSalary(&types.JobPayload{}, salaryProfile(150000, 185000))
	assert.Equal(t, 10, result.Score)
	assert.True(t, result.MissingData)
	assert.Equal(t, "not disclosed", result.ActualValue)
}

func TestScoreSalary_NoUserBounds(t *testing.T) {
	result := ScoreSalary(&types.JobPayload{SalaryMax: fptr(180000)}, emptyProfile())
	assert.Equal(t, 35, result.Score)
	assert.True(t, result.MissingData)
}

func TestScoreSalary_MinBelowFloorPenalty(t *testing.T) {
	tests := []struct {
		name      string
		min       float64
		wantScore int
	}{
		// Max of 200k beats the 185k target (50); min below 150k floor subtracts
		{"min slightly under floor", 145000, 45}, // <15% under: -5
		{"min 20 pct under floor", 120000, 40},   // >=15% under: -10
		{"min 40 pct under floor", 90000, 35},    // >=30% under: -15
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &types.JobPayload{SalaryMin: fptr(tt.min), SalaryMax: fptr(200000)}
			result := ScoreSalary(job, salaryProfile(150000, 185000))
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Contains(t, result.Rationale, "posted minimum")
		})
	}
}

func TestScoreSalary_NoPenaltyWhenMinAboveFloor(t *testing.T) {
	job := &types.JobPayload{SalaryMin: fptr(160000), SalaryMax: fptr(200000)}
	result := ScoreSalary(job, salaryProfile(150000, 185000))
	assert.Equal(t, 50, result.Score)
}

func TestSalaryBounds_Derivation(t *testing.T) {
	// Target only: floor derived at 80%
	floor, target := salaryBounds(&types.Preferences{SalaryTarget: fptr(200000)})
	assert.Equal(t, 160000.0, floor)
	assert.Equal(t, 200000.0, target)

	// Floor only: target derived at 125%
	floor, target = salaryBounds(&types.Preferences{SalaryFloor: fptr(160000)})
	assert.Equal(t, 160000.0, floor)
	assert.Equal(t, 200000.0, target)

	// Neither
	floor, target = salaryBounds(&types.Preferences{})
	assert.Zero(t, floor)
	assert.Zero(t, target)
}
