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
	photonDefaultURL = "https://photon.komoot.io/api/"
	photonRequest    = 10
	photonCap        = 8
)

// PhotonProvider queries the Komoot Photon geocoder, a second independent
// OpenStreetMap index, asking for highway/place features in Spanish.
type PhotonProvider struct {
	baseURL string
	client  *http.Client
}

// NewPhotonProvider builds the provider. baseURL may be empty to use the
// public instance.
func NewPhotonProvider(baseURL string, timeout time.Duration) *PhotonProvider {
	if baseURL == "" {
		baseURL = photonDefaultURL
	}
	return &PhotonProvider{baseURL: baseURL, client: newHTTPClient(timeout)}
}

func (p *PhotonProvider) Source() models.AddressSource { return models.SourcePhoton }

type photonResponse struct {
	Features []struct {
		Properties struct {
			Street   string `json:"street"`
			Name     string `json:"name"`
			Postcode string `json:"postcode"`
			City     string `json:"city"`
			District string `json:"district"`
			State    string `json:"state"`
		} `json:"properties"`
	} `json:"features"`
}

func (p *PhotonProvider) Search(ctx context.Context, query normalizer.Query) ([]models.AddressCandidate, error) {
	searchQuery := query.Raw
	if query.HasCity {
		searchQuery = query.Street + " " + query.City
	}

	params := url.Values{}
	params.Set("q", searchQuery)
	params.Set("limit", fmt.Sprintf("%d", photonRequest))
	params["osm_tag"] = []string{"highway", "place"}
	params.Set("lang", "es")

	var resp photonResponse
	if err := getJSON(ctx, p.client, p.baseURL+"?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	var candidates []models.AddressCandidate
	for _, feature := range resp.Features {
		props := feature.Properties
		candidate := models.AddressCandidate{
			Street:      strings.ToUpper(firstNonEmpty(props.Street, props.Name)),
			PostalCode:  props.Postcode,
			City:        strings.ToUpper(firstNonEmpty(props.City, props.District)),
			Province:    strings.ToUpper(props.State),
			FullAddress: fmt.Sprintf("%s, %s, %s", firstNonEmpty(props.Street, props.Name), props.City, props.State),
			Source:      models.SourcePhoton,
		}
		if candidate.Street == "" || candidate.City == "" {
			continue
		}
		candidates = append(candidates, candidate)
	}

	return capCandidates(candidates, photonCap), nil
}
