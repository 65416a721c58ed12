package models

import "strings"

// AddressSource identifies which lookup produced a candidate.
type AddressSource string

const (
	SourceLocal     AddressSource = "Local"
	SourceNominatim AddressSource = "Nominatim"
	SourcePhoton    AddressSource = "Photon"
	SourceMapBox    AddressSource = "MapBox"
)

// AddressCandidate is one normalized address suggestion. Textual fields are
// uppercase; PostalCode and Province may be empty depending on the source.
type AddressCandidate struct {
	Street      string        `json:"street"`
	PostalCode  string        `json:"postal_code"`
	City        string        `json:"city"`
	Province    string        `json:"province"`
	FullAddress string        `json:"full_address"`
	Source      AddressSource `json:"source"`
	// Score is an informational similarity to the query (Jaro-Winkler).
	// It plays no part in ranking.
	Score float64 `json:"score,omitempty"`
}

// DedupKey is the candidate identity used when merging sources: the pair of
// lowercased, trimmed street and city.
func (c AddressCandidate) DedupKey() string {
	return strings.ToLower(strings.TrimSpace(c.Street)) + "|" + strings.ToLower(strings.TrimSpace(c.City))
}

// SourceCounts is the per-source result breakdown before deduplication.
type SourceCounts struct {
	Local     int `json:"local"`
	Nominatim int `json:"nominatim"`
	Photon    int `json:"photon"`
	MapBox    int `json:"mapbox"`
}

// AddressSearchResult is the aggregated outcome of one search. TooShort marks
// queries rejected before any source was consulted; an empty Results slice
// with TooShort false is a valid "no matches" outcome, not an error.
type AddressSearchResult struct {
	Query    string             `json:"query"`
	TooShort bool               `json:"too_short,omitempty"`
	Results  []AddressCandidate `json:"results"`
	Sources  SourceCounts       `json:"sources"`
}
