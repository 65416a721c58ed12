package geo

import (
	"context"
	"sort"
	"strings"

	"github.com/xrash/smetrics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/parkinvoice/validation-service/app/models"
	"github.com/parkinvoice/validation-service/internal/normalizer"
)

// MaxResults is the hard cap on candidates returned per search.
const MaxResults = 12

// Aggregator merges the local gazetteer with the external geocoders into one
// ranked, deduplicated candidate list. Each search owns its own accumulators;
// the aggregator itself holds no mutable state.
type Aggregator struct {
	gazetteer  *Gazetteer
	providers  []Provider
	maxResults int
	logger     *zap.Logger
}

// NewAggregator wires the gazetteer and the providers in priority order
// (earlier providers win dedup ties).
func NewAggregator(gazetteer *Gazetteer, providers []Provider, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		gazetteer:  gazetteer,
		providers:  providers,
		maxResults: MaxResults,
		logger:     logger,
	}
}

// Search runs one aggregated lookup. Queries under the minimum length return
// a TooShort result without touching any source. Provider failures degrade to
// zero results for that provider; an all-empty outcome is still success.
func (a *Aggregator) Search(ctx context.Context, rawQuery string) (*models.AddressSearchResult, error) {
	query := strings.TrimSpace(rawQuery)
	if normalizer.TooShort(query) {
		return &models.AddressSearchResult{Query: query, TooShort: true, Results: []models.AddressCandidate{}}, nil
	}

	parsed := normalizer.ParseQuery(query)

	// Local gazetteer first: zero latency, never fails.
	local := a.gazetteer.Search(query)

	// Fan out to the external providers concurrently. Each slot swallows its
	// own failure so one provider can never sink the others.
	providerResults := make([][]models.AddressCandidate, len(a.providers))
	g, gctx := errgroup.WithContext(ctx)
	for i, provider := range a.providers {
		i, provider := i, provider
		g.Go(func() error {
			candidates, err := provider.Search(gctx, parsed)
			if err != nil {
				a.logger.Warn("provider search failed",
					zap.String("provider", string(provider.Source())),
					zap.String("query", query),
					zap.Error(err))
				return nil
			}
			providerResults[i] = candidates
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		// Superseded search: stop before assembling a partial result.
		return nil, err
	}

	counts := models.SourceCounts{Local: len(local)}
	merged := make([]models.AddressCandidate, 0, len(local))
	merged = append(merged, local...)
	for i, provider := range a.providers {
		switch provider.Source() {
		case models.SourceNominatim:
			counts.Nominatim = len(providerResults[i])
		case models.SourcePhoton:
			counts.Photon = len(providerResults[i])
		case models.SourceMapBox:
			counts.MapBox = len(providerResults[i])
		}
		merged = append(merged, providerResults[i]...)
	}

	deduped := dedupe(merged)
	scoreCandidates(deduped, query)
	rank(deduped, query)

	if len(deduped) > a.maxResults {
		deduped = deduped[:a.maxResults]
	}

	a.logger.Debug("address search complete",
		zap.String("query", query),
		zap.Int("results", len(deduped)),
		zap.Int("local", counts.Local),
		zap.Int("nominatim", counts.Nominatim),
		zap.Int("photon", counts.Photon),
		zap.Int("mapbox", counts.MapBox))

	return &models.AddressSearchResult{Query: query, Results: deduped, Sources: counts}, nil
}

// dedupe keeps the first occurrence of each (street, city) pair, so earlier
// sources win regardless of which provider duplicated them.
func dedupe(candidates []models.AddressCandidate) []models.AddressCandidate {
	seen := make(map[string]struct{}, len(candidates))
	unique := make([]models.AddressCandidate, 0, len(candidates))
	for _, c := range candidates {
		key := c.DedupKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, c)
	}
	return unique
}

// scoreCandidates attaches the informational Jaro-Winkler similarity between
// the query and each street. Ranking does not consult it.
func scoreCandidates(candidates []models.AddressCandidate, query string) {
	folded := normalizer.Fold(query)
	for i := range candidates {
		candidates[i].Score = smetrics.JaroWinkler(folded, normalizer.Fold(candidates[i].Street), 0.7, 4)
	}
}

// rank orders candidates by the fixed total order: local source first, then
// street/full-address prefix match on the query, then full-address substring
// match, then shorter street name.
func rank(candidates []models.AddressCandidate, query string) {
	queryLower := strings.ToLower(query)

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		aLocal, bLocal := a.Source == models.SourceLocal, b.Source == models.SourceLocal
		if aLocal != bLocal {
			return aLocal
		}

		aStreet, bStreet := strings.ToLower(a.Street), strings.ToLower(b.Street)
		aFull, bFull := strings.ToLower(a.FullAddress), strings.ToLower(b.FullAddress)

		aStarts := strings.HasPrefix(aStreet, queryLower) || strings.HasPrefix(aFull, queryLower)
		bStarts := strings.HasPrefix(bStreet, queryLower) || strings.HasPrefix(bFull, queryLower)
		if aStarts != bStarts {
			return aStarts
		}

		aContains := strings.Contains(aFull, queryLower)
		bContains := strings.Contains(bFull, queryLower)
		if aContains != bContains {
			return aContains
		}

		return len(a.Street) < len(b.Street)
	})
}
