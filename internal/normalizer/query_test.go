package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuery_StreetInCity(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		street string
		city   string
		has    bool
	}{
		{name: "plain", input: "gran via", street: "gran via", has: false},
		{name: "en pattern", input: "calle lisboa en leganes", street: "calle lisboa", city: "leganes", has: true},
		{name: "en pattern uppercase", input: "CALLE LISBOA EN LEGANES", street: "CALLE LISBOA", city: "LEGANES", has: true},
		{name: "lazy split keeps first en", input: "paseo en medio en madrid", street: "paseo", city: "medio en madrid", has: true},
		{name: "collapsed whitespace", input: "  calle   mayor  ", street: "calle mayor", has: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := ParseQuery(tc.input)
			assert.Equal(t, tc.street, q.Street)
			assert.Equal(t, tc.has, q.HasCity)
			if tc.has {
				assert.Equal(t, tc.city, q.City)
			}
		})
	}
}

func TestTooShort(t *testing.T) {
	assert.True(t, TooShort("ca"))
	assert.True(t, TooShort("  ca  "))
	assert.True(t, TooShort(""))
	assert.False(t, TooShort("cal"))
	// Rune count, not byte count.
	assert.False(t, TooShort("ñúí"))
}

func TestStripDiacritics(t *testing.T) {
	assert.Equal(t, "Leganes", StripDiacritics("Leganés"))
	assert.Equal(t, "ESPANA", FoldUpper("españa"))
	assert.Equal(t, "gran via", Fold("  GRAN VÍA "))
}
