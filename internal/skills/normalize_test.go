package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeOne_CatalogHit(t *testing.T) {
	n := NewNormalizer(nil)

	skill, ok := n.NormalizeOne("  golang ")
	require.True(t, ok)
	assert.Equal(t, "go", skill.Canonical)
	assert.Equal(t, "Go", skill.Name)
	assert.Equal(t, "language", skill.Category)
	assert.Equal(t, "golang", skill.Raw)
}

func TestNormalizeOne_UnknownSkill(t *testing.T) {
	n := NewNormalizer(nil)

	skill, ok := n.NormalizeOne("Apache Flink")
	require.True(t, ok)
	assert.Equal(t, "apache_flink", skill.Canonical)
	assert.Equal(t, "Apache Flink", skill.Name)
	assert.Empty(t, skill.Category)
}

func TestNormalizeOne_EmptyInput(t *testing.T) {
	n := NewNormalizer(nil)

	_, ok := n.NormalizeOne("   ")
	assert.False(t, ok)
}

func TestNormalize_DedupesByCanonical(t *testing.T) {
	n := NewNormalizer(nil)

	out := n.Normalize([]string{"golang", "Go", "go lang", "Python", ""})

	require.Len(t, out, 2)
	assert.Equal(t, "go", out[0].Canonical)
	assert.Equal(t, "golang", out[0].Raw, "first occurrence wins")
	assert.Equal(t, "python", out[1].Canonical)
}
