package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parkinvoice/validation-service/app/models"
)

func TestGazetteer_StreetSubstring(t *testing.T) {
	g := NewGazetteer()

	results := g.Search("gran via")
	assert.Len(t, results, 1)
	assert.Equal(t, "CALLE GRAN VIA", results[0].Street)
	assert.Equal(t, models.SourceLocal, results[0].Source)
}

func TestGazetteer_FullAddressSubstring(t *testing.T) {
	g := NewGazetteer()

	results := g.Search("lisboa, leganés")
	assert.Len(t, results, 1)
	assert.Equal(t, "CALLE LISBOA", results[0].Street)
}

func TestGazetteer_CaseInsensitive(t *testing.T) {
	g := NewGazetteer()

	assert.Len(t, g.Search("GRAN VIA"), 1)
	assert.Len(t, g.Search("Gran Via"), 1)
}

func TestGazetteer_NoMatch(t *testing.T) {
	g := NewGazetteer()

	assert.Empty(t, g.Search("avenida inexistente"))
}

// The third match clause (query contains the city AND the last word of the
// street) is deliberately loose. These cases pin its current behavior; they
// are descriptive, not aspirational.
func TestGazetteer_CityPlusLastWordClause(t *testing.T) {
	g := NewGazetteer()

	// "calle portugal leganés" is not a substring of street or full address,
	// but contains the city and the street's last word.
	results := g.Search("calle portugal leganés")
	assert.Len(t, results, 1)
	assert.Equal(t, "CALLE PORTUGAL", results[0].Street)

	// Word order does not matter to the clause.
	results = g.Search("madrid castellana")
	found := false
	for _, r := range results {
		if r.Street == "PASEO DE LA CASTELLANA" {
			found = true
		}
	}
	assert.True(t, found)

	// A one-letter last word ("...JUAN CARLOS I") makes the clause extremely
	// permissive: any query containing the city and the letter i matches.
	results = g.Search("leganés rioja")
	streets := make([]string, 0, len(results))
	for _, r := range results {
		streets = append(streets, r.Street)
	}
	assert.Contains(t, streets, "CALLE RIOJA")
	assert.Contains(t, streets, "AVENIDA JUAN CARLOS I")
}

func TestGazetteer_CustomEntries(t *testing.T) {
	g := NewGazetteerWithEntries([]models.AddressCandidate{
		{Street: "CALLE UNO", City: "TOLEDO", FullAddress: "CALLE UNO, TOLEDO", Source: models.SourceLocal},
	})

	assert.Len(t, g.Search("calle uno"), 1)
	assert.Empty(t, g.Search("gran via"))
}
