package geo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/parkinvoice/validation-service/app/models"
	"github.com/parkinvoice/validation-service/internal/normalizer"
)

const (
	mapboxDefaultURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"
	mapboxRequest    = 10
	mapboxCap        = 8
)

// MapBoxProvider queries the MapBox Places geocoder. It is API-key gated:
// without a key, Search returns nothing and makes no network call.
type MapBoxProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewMapBoxProvider builds the provider. An empty apiKey disables it.
func NewMapBoxProvider(baseURL, apiKey string, timeout time.Duration) *MapBoxProvider {
	if baseURL == "" {
		baseURL = mapboxDefaultURL
	}
	return &MapBoxProvider{baseURL: baseURL, apiKey: apiKey, client: newHTTPClient(timeout)}
}

func (p *MapBoxProvider) Source() models.AddressSource { return models.SourceMapBox }

type mapboxResponse struct {
	Features []struct {
		Text      string `json:"text"`
		PlaceName string `json:"place_name"`
		Context   []struct {
			ID   string `json:"id"`
			Text string `json:"text"`
		} `json:"context"`
	} `json:"features"`
}

// Search extracts postal code, place and region from the feature context by
// element-id prefix, per the MapBox response contract.
func (p *MapBoxProvider) Search(ctx context.Context, query normalizer.Query) ([]models.AddressCandidate, error) {
	if p.apiKey == "" {
		return nil, nil
	}

	searchQuery := query.Raw + " España"
	if query.HasCity {
		searchQuery = query.Street + " " + query.City + " España"
	}

	params := url.Values{}
	params.Set("country", "es")
	params.Set("limit", fmt.Sprintf("%d", mapboxRequest))
	params.Set("access_token", p.apiKey)
	endpoint := p.baseURL + "/" + url.PathEscape(searchQuery) + ".json?" + params.Encode()

	var resp mapboxResponse
	if err := getJSON(ctx, p.client, endpoint, &resp); err != nil {
		return nil, err
	}

	var candidates []models.AddressCandidate
	for _, feature := range resp.Features {
		var postcode, place, region string
		for _, c := range feature.Context {
			switch {
			case strings.HasPrefix(c.ID, "postcode"):
				postcode = c.Text
			case strings.HasPrefix(c.ID, "place"):
				place = c.Text
			case strings.HasPrefix(c.ID, "region"):
				region = c.Text
			}
		}

		candidate := models.AddressCandidate{
			Street:      strings.ToUpper(feature.Text),
			PostalCode:  postcode,
			City:        strings.ToUpper(place),
			Province:    strings.ToUpper(region),
			FullAddress: feature.PlaceName,
			Source:      models.SourceMapBox,
		}
		if candidate.Street == "" || candidate.City == "" {
			continue
		}
		candidates = append(candidates, candidate)
	}

	return capCandidates(candidates, mapboxCap), nil
}
