package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tax := Default()

	tests := []struct {
		name          string
		raw           string
		wantCanonical string
		wantOK        bool
	}{
		{"canonical key", "postgresql", "postgresql", true},
		{"display name", "PostgreSQL", "postgresql", true},
		{"alias", "psql", "postgresql", true},
		{"alias mixed case", " K8s ", "kubernetes", true},
		{"multi-word alias", "amazon web services", "aws", true},
		{"unknown", "basket weaving", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := tax.Lookup(tt.raw)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCanonical, entry.Canonical)
		})
	}
}

func TestNew_FirstEntryWinsOnCollision(t *testing.T) {
	tax := New([]Entry{
		{Canonical: "go", Name: "Go", Category: CategoryLanguage},
		{Canonical: "other", Name: "Other", Aliases: []string{"go"}},
	})

	entry, ok := tax.Lookup("go")
	require.True(t, ok)
	assert.Equal(t, "go", entry.Canonical)
}

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Machine Learning", "machine_learning"},
		{"CI/CD", "ci_cd"},
		{"Node.js", "nodejs"},
		{"  spaced   out  ", "spaced_out"},
		{"C++", "c"},
		{"-leading-and-trailing-", "leading_and_trailing"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalKey(tt.raw))
		})
	}
}

func TestDefault_CatalogSanity(t *testing.T) {
	tax := Default()

	assert.Greater(t, tax.Len(), 40)

	// every entry must resolve through its own canonical key
	for _, raw := range []string{"go", "python", "sql", "tableau", "leadership"} {
		_, ok := tax.Lookup(raw)
		assert.True(t, ok, raw)
	}
}
