package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/parkinvoice/validation-service/app/models"
	"github.com/parkinvoice/validation-service/internal/normalizer"
)

// Identifies the service to the OSM endpoints, which require a contact in the
// User-Agent for automated clients.
const userAgent = "ParkingInvoiceSystem/1.0 (parking@example.com)"

const defaultProviderTimeout = 5 * time.Second

// Provider is one external geocoding source. Implementations map the
// provider's wire format onto AddressCandidate and must respect ctx
// cancellation; errors are reported, not retried.
type Provider interface {
	Source() models.AddressSource
	Search(ctx context.Context, query normalizer.Query) ([]models.AddressCandidate, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	return &http.Client{Timeout: timeout}
}

// getJSON issues a GET and decodes the body into out. Non-2xx statuses are
// returned as errors so callers can degrade uniformly.
func getJSON(ctx context.Context, client *http.Client, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// capCandidates truncates to the provider's per-source limit.
func capCandidates(candidates []models.AddressCandidate, limit int) []models.AddressCandidate {
	if len(candidates) > limit {
		return candidates[:limit]
	}
	return candidates
}
