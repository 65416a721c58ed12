package geo

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/parkinvoice/validation-service/app/models"
	"github.com/parkinvoice/validation-service/internal/normalizer"
)

// Score tiers for directory matches. Prefix beats substring beats per-word
// hits; the fuzzy tier catches single-character typos.
const (
	scorePrefix    = 1000
	scoreSubstring = 800
	scoreWordHit   = 100
	scoreFuzzyHit  = 50
)

// Directory is the static catalogue of well-known Spanish streets used for
// typo-tolerant form suggestions. Unlike the gazetteer it ranks matches by a
// word-level score instead of filtering.
type Directory struct {
	entries []models.AddressCandidate
}

// NewDirectory returns the directory loaded with the built-in street list.
func NewDirectory() *Directory {
	return &Directory{entries: directoryEntries}
}

type scoredEntry struct {
	entry models.AddressCandidate
	score int
}

// Suggest returns up to limit entries ranked by match score. Comparison is
// accent-insensitive and case-insensitive.
func (d *Directory) Suggest(query string, limit int) []models.AddressCandidate {
	if normalizer.TooShort(query) {
		return nil
	}
	normalizedQuery := normalizer.FoldUpper(query)
	queryWords := significantWords(normalizedQuery)

	var scored []scoredEntry
	for _, entry := range d.entries {
		street := normalizer.FoldUpper(entry.Street)

		score := 0
		switch {
		case strings.HasPrefix(street, normalizedQuery):
			score = scorePrefix
		case strings.Contains(street, normalizedQuery):
			score = scoreSubstring
		default:
			score = wordScore(queryWords, strings.Fields(street))
		}

		if score > 0 {
			scored = append(scored, scoredEntry{entry: entry, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	results := make([]models.AddressCandidate, 0, len(scored))
	for _, s := range scored {
		results = append(results, s.entry)
	}
	return results
}

// wordScore accumulates per-word containment hits, falling back to a small
// bonus for words within Levenshtein distance 1 (catches "alcalá"/"alcala"
// style typos the containment check misses).
func wordScore(queryWords, streetWords []string) int {
	score := 0
	for _, qw := range queryWords {
		for _, sw := range streetWords {
			switch {
			case strings.Contains(sw, qw) || strings.Contains(qw, sw):
				score += scoreWordHit
			case len(qw) > 3 && levenshtein.ComputeDistance(qw, sw) == 1:
				score += scoreFuzzyHit
			}
		}
	}
	return score
}

// significantWords drops single-character tokens.
func significantWords(s string) []string {
	var words []string
	for _, w := range strings.Fields(s) {
		if len(w) > 1 {
			words = append(words, w)
		}
	}
	return words
}

var directoryEntries = []models.AddressCandidate{
	// Madrid, "Pedro" streets
	{Street: "CALLE PEDRO LAIN ENTRALGO", PostalCode: "28043", City: "MADRID", Province: "MADRID", FullAddress: "CALLE PEDRO LAIN ENTRALGO, MADRID", Source: models.SourceLocal},
	{Street: "CALLE PEDRO SALINAS", PostalCode: "28043", City: "MADRID", Province: "MADRID", FullAddress: "CALLE PEDRO SALINAS, MADRID", Source: models.SourceLocal},
	{Street: "CALLE PEDRO MUÑOZ SECA", PostalCode: "28001", City: "MADRID", Province: "MADRID", FullAddress: "CALLE PEDRO MUÑOZ SECA, MADRID", Source: models.SourceLocal},
	{Street: "CALLE PEDRO ANTONIO DE ALARCON", PostalCode: "28028", City: "MADRID", Province: "MADRID", FullAddress: "CALLE PEDRO ANTONIO DE ALARCON, MADRID", Source: models.SourceLocal},
	// Madrid, "Rafael" streets
	{Street: "CALLE RAFAEL", PostalCode: "28020", City: "MADRID", Province: "MADRID", FullAddress: "CALLE RAFAEL, MADRID", Source: models.SourceLocal},
	{Street: "CALLE RAFAEL CALVO", PostalCode: "28010", City: "MADRID", Province: "MADRID", FullAddress: "CALLE RAFAEL CALVO, MADRID", Source: models.SourceLocal},
	{Street: "CALLE RAFAEL ALBERTI", PostalCode: "28045", City: "MADRID", Province: "MADRID", FullAddress: "CALLE RAFAEL ALBERTI, MADRID", Source: models.SourceLocal},
	{Street: "CALLE RAFAEL FINAT", PostalCode: "28044", City: "MADRID", Province: "MADRID", FullAddress: "CALLE RAFAEL FINAT, MADRID", Source: models.SourceLocal},
	{Street: "CALLE RAFAEL BERGAMIN", PostalCode: "28043", City: "MADRID", Province: "MADRID", FullAddress: "CALLE RAFAEL BERGAMIN, MADRID", Source: models.SourceLocal},
	{Street: "CALLE RAFAEL HERRERA", PostalCode: "28028", City: "MADRID", Province: "MADRID", FullAddress: "CALLE RAFAEL HERRERA, MADRID", Source: models.SourceLocal},
	{Street: "CALLE RAFAEL CANSINOS ASSENS", PostalCode: "28043", City: "MADRID", Province: "MADRID", FullAddress: "CALLE RAFAEL CANSINOS ASSENS, MADRID", Source: models.SourceLocal},
	{Street: "CALLE RAFAEL FERNANDEZ SHAW", PostalCode: "28002", City: "MADRID", Province: "MADRID", FullAddress: "CALLE RAFAEL FERNANDEZ SHAW, MADRID", Source: models.SourceLocal},
	// Madrid, main streets
	{Street: "CALLE GRAN VIA", PostalCode: "28013", City: "MADRID", Province: "MADRID", FullAddress: "CALLE GRAN VIA, MADRID", Source: models.SourceLocal},
	{Street: "CALLE ALCALA", PostalCode: "28014", City: "MADRID", Province: "MADRID", FullAddress: "CALLE ALCALA, MADRID", Source: models.SourceLocal},
	{Street: "PASEO DE LA CASTELLANA", PostalCode: "28046", City: "MADRID", Province: "MADRID", FullAddress: "PASEO DE LA CASTELLANA, MADRID", Source: models.SourceLocal},
	{Street: "CALLE SERRANO", PostalCode: "28001", City: "MADRID", Province: "MADRID", FullAddress: "CALLE SERRANO, MADRID", Source: models.SourceLocal},
	{Street: "CALLE GOYA", PostalCode: "28001", City: "MADRID", Province: "MADRID", FullAddress: "CALLE GOYA, MADRID", Source: models.SourceLocal},
	{Street: "AVENIDA AMERICA", PostalCode: "28002", City: "MADRID", Province: "MADRID", FullAddress: "AVENIDA AMERICA, MADRID", Source: models.SourceLocal},
	{Street: "CALLE BRAVO MURILLO", PostalCode: "28003", City: "MADRID", Province: "MADRID", FullAddress: "CALLE BRAVO MURILLO, MADRID", Source: models.SourceLocal},
	{Street: "CALLE FUENCARRAL", PostalCode: "28004", City: "MADRID", Province: "MADRID", FullAddress: "CALLE FUENCARRAL, MADRID", Source: models.SourceLocal},
	{Street: "CALLE PRINCESA", PostalCode: "28008", City: "MADRID", Province: "MADRID", FullAddress: "CALLE PRINCESA, MADRID", Source: models.SourceLocal},
	{Street: "CALLE ATOCHA", PostalCode: "28012", City: "MADRID", Province: "MADRID", FullAddress: "CALLE ATOCHA, MADRID", Source: models.SourceLocal},
	{Street: "PLAZA MAYOR", PostalCode: "28012", City: "MADRID", Province: "MADRID", FullAddress: "PLAZA MAYOR, MADRID", Source: models.SourceLocal},
	{Street: "PLAZA ESPAÑA", PostalCode: "28008", City: "MADRID", Province: "MADRID", FullAddress: "PLAZA ESPAÑA, MADRID", Source: models.SourceLocal},
	{Street: "CALLE VELAZQUEZ", PostalCode: "28001", City: "MADRID", Province: "MADRID", FullAddress: "CALLE VELAZQUEZ, MADRID", Source: models.SourceLocal},
	{Street: "CALLE ORENSE", PostalCode: "28020", City: "MADRID", Province: "MADRID", FullAddress: "CALLE ORENSE, MADRID", Source: models.SourceLocal},
	{Street: "AVENIDA MEDITERRANEO", PostalCode: "28007", City: "MADRID", Province: "MADRID", FullAddress: "AVENIDA MEDITERRANEO, MADRID", Source: models.SourceLocal},
	{Street: "AVENIDA CARABANCHEL ALTO", PostalCode: "28044", City: "MADRID", Province: "MADRID", FullAddress: "AVENIDA CARABANCHEL ALTO, MADRID", Source: models.SourceLocal},
	{Street: "CALLE SANCHEZ BARCAIZTEGUI", PostalCode: "28007", City: "MADRID", Province: "MADRID", FullAddress: "CALLE SANCHEZ BARCAIZTEGUI, MADRID", Source: models.SourceLocal},
	{Street: "POETA JOAN MARAGALL", PostalCode: "28020", City: "MADRID", Province: "MADRID", FullAddress: "POETA JOAN MARAGALL, MADRID", Source: models.SourceLocal},
	{Street: "MELQUIADES BIENCINTO", PostalCode: "28053", City: "MADRID", Province: "MADRID", FullAddress: "MELQUIADES BIENCINTO, MADRID", Source: models.SourceLocal},
	{Street: "CALLE MAYOR", PostalCode: "28001", City: "MADRID", Province: "MADRID", FullAddress: "CALLE MAYOR, MADRID", Source: models.SourceLocal},
	// Barcelona
	{Street: "PASSEIG DE GRACIA", PostalCode: "08007", City: "BARCELONA", Province: "BARCELONA", FullAddress: "PASSEIG DE GRACIA, BARCELONA", Source: models.SourceLocal},
	{Street: "LAS RAMBLAS", PostalCode: "08002", City: "BARCELONA", Province: "BARCELONA", FullAddress: "LAS RAMBLAS, BARCELONA", Source: models.SourceLocal},
	{Street: "BEAT ORIOL", PostalCode: "08110", City: "MONTCADA I REIXAC", Province: "BARCELONA", FullAddress: "BEAT ORIOL, MONTCADA I REIXAC", Source: models.SourceLocal},
	// Valencia
	{Street: "CALLE COLON", PostalCode: "46004", City: "VALENCIA", Province: "VALENCIA", FullAddress: "CALLE COLON, VALENCIA", Source: models.SourceLocal},
	// Sevilla
	{Street: "CALLE SIERPES", PostalCode: "41004", City: "SEVILLA", Province: "SEVILLA", FullAddress: "CALLE SIERPES, SEVILLA", Source: models.SourceLocal},
}
