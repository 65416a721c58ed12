package geo

import (
	"strings"

	"github.com/parkinvoice/validation-service/app/models"
)

// Gazetteer is a small fixed in-memory list of streets that the external
// geocoders are known to miss. Lookups are pure string matching: no I/O,
// never fails.
type Gazetteer struct {
	entries []models.AddressCandidate
}

// NewGazetteer returns a gazetteer loaded with the built-in entries.
func NewGazetteer() *Gazetteer {
	return &Gazetteer{entries: localEntries}
}

// NewGazetteerWithEntries builds a gazetteer over a custom list.
func NewGazetteerWithEntries(entries []models.AddressCandidate) *Gazetteer {
	return &Gazetteer{entries: entries}
}

// Search returns every entry matching the query. An entry matches when the
// query is a substring of its street or full address, or when the query
// contains both the entry's city and the last word of its street. The third
// clause is intentionally loose; tests pin its exact behavior.
func (g *Gazetteer) Search(query string) []models.AddressCandidate {
	normalizedQuery := strings.ToLower(strings.TrimSpace(query))

	var matches []models.AddressCandidate
	for _, entry := range g.entries {
		street := strings.ToLower(entry.Street)
		city := strings.ToLower(entry.City)
		full := strings.ToLower(entry.FullAddress)

		lastWord := ""
		if words := strings.Fields(street); len(words) > 0 {
			lastWord = words[len(words)-1]
		}

		if strings.Contains(street, normalizedQuery) ||
			strings.Contains(full, normalizedQuery) ||
			(strings.Contains(normalizedQuery, city) && strings.Contains(normalizedQuery, lastWord)) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// localEntries are streets around Leganés and central Madrid that repeatedly
// came back empty from the public geocoders.
var localEntries = []models.AddressCandidate{
	{Street: "CALLE LISBOA", PostalCode: "28915", City: "LEGANÉS", Province: "MADRID", FullAddress: "CALLE LISBOA, LEGANÉS, MADRID", Source: models.SourceLocal},
	{Street: "CALLE PORTUGAL", PostalCode: "28915", City: "LEGANÉS", Province: "MADRID", FullAddress: "CALLE PORTUGAL, LEGANÉS, MADRID", Source: models.SourceLocal},
	{Street: "CALLE FRANCIA", PostalCode: "28915", City: "LEGANÉS", Province: "MADRID", FullAddress: "CALLE FRANCIA, LEGANÉS, MADRID", Source: models.SourceLocal},
	{Street: "AVENIDA JUAN CARLOS I", PostalCode: "28915", City: "LEGANÉS", Province: "MADRID", FullAddress: "AVENIDA JUAN CARLOS I, LEGANÉS, MADRID", Source: models.SourceLocal},
	{Street: "CALLE RIOJA", PostalCode: "28915", City: "LEGANÉS", Province: "MADRID", FullAddress: "CALLE RIOJA, LEGANÉS, MADRID", Source: models.SourceLocal},
	{Street: "CALLE GRAN VIA", PostalCode: "28013", City: "MADRID", Province: "MADRID", FullAddress: "CALLE GRAN VIA, MADRID", Source: models.SourceLocal},
	{Street: "CALLE ALCALA", PostalCode: "28014", City: "MADRID", Province: "MADRID", FullAddress: "CALLE ALCALA, MADRID", Source: models.SourceLocal},
	{Street: "PASEO DE LA CASTELLANA", PostalCode: "28046", City: "MADRID", Province: "MADRID", FullAddress: "PASEO DE LA CASTELLANA, MADRID", Source: models.SourceLocal},
}
