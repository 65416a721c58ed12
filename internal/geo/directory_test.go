package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory_PrefixBeatsSubstring(t *testing.T) {
	d := NewDirectory()

	results := d.Suggest("calle rafael", 10)
	require.NotEmpty(t, results)
	// Every prefix match sorts before word-level matches; the first result
	// must start with the query.
	assert.Equal(t, "CALLE RAFAEL", results[0].Street)
}

func TestDirectory_AccentInsensitive(t *testing.T) {
	d := NewDirectory()

	results := d.Suggest("alcalá", 5)
	require.NotEmpty(t, results)
	assert.Equal(t, "CALLE ALCALA", results[0].Street)
}

func TestDirectory_FuzzyTypo(t *testing.T) {
	d := NewDirectory()

	// "serano" is one edit away from "serrano"; the fuzzy tier should still
	// surface it.
	results := d.Suggest("calle serano", 5)
	require.NotEmpty(t, results)
	streets := make([]string, 0, len(results))
	for _, r := range results {
		streets = append(streets, r.Street)
	}
	assert.Contains(t, streets, "CALLE SERRANO")
}

func TestDirectory_Limit(t *testing.T) {
	d := NewDirectory()

	results := d.Suggest("calle", 3)
	assert.Len(t, results, 3)
}

func TestDirectory_ShortQuery(t *testing.T) {
	d := NewDirectory()

	assert.Empty(t, d.Suggest("ca", 10))
}
