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
	nominatimDefaultURL = "https://nominatim.openstreetmap.org/search"
	nominatimRequest    = 15
	nominatimCap        = 10
)

// NominatimProvider queries the OpenStreetMap Nominatim geocoder, restricted
// to Spain.
type NominatimProvider struct {
	baseURL string
	client  *http.Client
}

// NewNominatimProvider builds the provider. baseURL may be empty to use the
// public instance.
func NewNominatimProvider(baseURL string, timeout time.Duration) *NominatimProvider {
	if baseURL == "" {
		baseURL = nominatimDefaultURL
	}
	return &NominatimProvider{baseURL: baseURL, client: newHTTPClient(timeout)}
}

func (p *NominatimProvider) Source() models.AddressSource { return models.SourceNominatim }

type nominatimItem struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		Road         string `json:"road"`
		Pedestrian   string `json:"pedestrian"`
		Path         string `json:"path"`
		Postcode     string `json:"postcode"`
		City         string `json:"city"`
		Town         string `json:"town"`
		Village      string `json:"village"`
		Municipality string `json:"municipality"`
		State        string `json:"state"`
		Province     string `json:"province"`
		County       string `json:"county"`
	} `json:"address"`
}

// Search maps Nominatim results onto candidates: road/pedestrian/path becomes
// the street (first display-name segment as fallback), locality fields the
// city, region fields the province. Results without street and city are
// dropped.
func (p *NominatimProvider) Search(ctx context.Context, query normalizer.Query) ([]models.AddressCandidate, error) {
	searchQuery := query.Raw + ", España"
	if query.HasCity {
		searchQuery = fmt.Sprintf("%s, %s, España", query.Street, query.City)
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", fmt.Sprintf("%d", nominatimRequest))
	params.Set("countrycodes", "es")
	params.Set("q", searchQuery)

	var items []nominatimItem
	if err := getJSON(ctx, p.client, p.baseURL+"?"+params.Encode(), &items); err != nil {
		return nil, err
	}

	var candidates []models.AddressCandidate
	for _, item := range items {
		street := firstNonEmpty(item.Address.Road, item.Address.Pedestrian, item.Address.Path)
		if street == "" && item.DisplayName != "" {
			street = strings.TrimSpace(strings.SplitN(item.DisplayName, ",", 2)[0])
		}
		city := firstNonEmpty(item.Address.City, item.Address.Town, item.Address.Village, item.Address.Municipality)
		province := firstNonEmpty(item.Address.State, item.Address.Province, item.Address.County)

		candidate := models.AddressCandidate{
			Street:      strings.ToUpper(street),
			PostalCode:  item.Address.Postcode,
			City:        strings.ToUpper(city),
			Province:    strings.ToUpper(province),
			FullAddress: item.DisplayName,
			Source:      models.SourceNominatim,
		}
		if candidate.Street == "" || candidate.City == "" {
			continue
		}
		candidates = append(candidates, candidate)
	}

	return capCandidates(candidates, nominatimCap), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
