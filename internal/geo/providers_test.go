package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkinvoice/validation-service/app/models"
	"github.com/parkinvoice/validation-service/internal/normalizer"
)

func TestNominatimProvider_Mapping(t *testing.T) {
	var gotQuery, gotCountry string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotCountry = r.URL.Query().Get("countrycodes")
		fmt.Fprint(w, `[
			{"display_name": "Calle Lisboa, Leganés, Madrid, España",
			 "address": {"road": "Calle Lisboa", "postcode": "28915", "city": "Leganés", "state": "Comunidad de Madrid"}},
			{"display_name": "Plaza Sin Calle, Cuenca, España",
			 "address": {"postcode": "16001", "town": "Cuenca", "state": "Castilla-La Mancha"}},
			{"display_name": "Camino Sin Ciudad",
			 "address": {"road": "Camino Sin Ciudad"}}
		]`)
	}))
	defer server.Close()

	p := NewNominatimProvider(server.URL, time.Second)
	results, err := p.Search(context.Background(), normalizer.ParseQuery("calle lisboa en leganes"))
	require.NoError(t, err)

	assert.Equal(t, "calle lisboa, leganes, España", gotQuery)
	assert.Equal(t, "es", gotCountry)

	// The entry without a city is dropped; the one without a road falls back
	// to the first display-name segment.
	require.Len(t, results, 2)
	assert.Equal(t, "CALLE LISBOA", results[0].Street)
	assert.Equal(t, "28915", results[0].PostalCode)
	assert.Equal(t, "LEGANÉS", results[0].City)
	assert.Equal(t, "COMUNIDAD DE MADRID", results[0].Province)
	assert.Equal(t, models.SourceNominatim, results[0].Source)

	assert.Equal(t, "PLAZA SIN CALLE", results[1].Street)
	assert.Equal(t, "CUENCA", results[1].City)
}

func TestNominatimProvider_CapsAtTen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var items []map[string]interface{}
		for i := 0; i < 15; i++ {
			items = append(items, map[string]interface{}{
				"display_name": fmt.Sprintf("Calle %d, Madrid", i),
				"address":      map[string]string{"road": fmt.Sprintf("Calle %d", i), "city": "Madrid"},
			})
		}
		json.NewEncoder(w).Encode(items)
	}))
	defer server.Close()

	p := NewNominatimProvider(server.URL, time.Second)
	results, err := p.Search(context.Background(), normalizer.ParseQuery("calle"))
	require.NoError(t, err)
	assert.Len(t, results, nominatimCap)
}

func TestNominatimProvider_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	p := NewNominatimProvider(server.URL, time.Second)
	_, err := p.Search(context.Background(), normalizer.ParseQuery("gran via"))
	assert.Error(t, err)
}

func TestPhotonProvider_Mapping(t *testing.T) {
	var gotTags []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTags = r.URL.Query()["osm_tag"]
		fmt.Fprint(w, `{"features": [
			{"properties": {"street": "Gran Vía", "postcode": "28013", "city": "Madrid", "state": "Comunidad de Madrid"}},
			{"properties": {"name": "Plaza Mayor", "district": "Centro"}},
			{"properties": {"state": "Andalucía"}}
		]}`)
	}))
	defer server.Close()

	p := NewPhotonProvider(server.URL, time.Second)
	results, err := p.Search(context.Background(), normalizer.ParseQuery("gran via"))
	require.NoError(t, err)

	assert.Equal(t, []string{"highway", "place"}, gotTags)

	require.Len(t, results, 2)
	assert.Equal(t, "GRAN VÍA", results[0].Street)
	assert.Equal(t, "MADRID", results[0].City)
	assert.Equal(t, models.SourcePhoton, results[0].Source)
	// name/district fallbacks.
	assert.Equal(t, "PLAZA MAYOR", results[1].Street)
	assert.Equal(t, "CENTRO", results[1].City)
}

func TestMapBoxProvider_NoKeyNoCall(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"features": []}`)
	}))
	defer server.Close()

	p := NewMapBoxProvider(server.URL, "", time.Second)
	results, err := p.Search(context.Background(), normalizer.ParseQuery("gran via"))
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, calls)
}

func TestMapBoxProvider_ContextExtraction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("access_token"))
		assert.Equal(t, "es", r.URL.Query().Get("country"))
		fmt.Fprint(w, `{"features": [
			{"text": "Calle Alcalá", "place_name": "Calle Alcalá, Madrid, España",
			 "context": [
				{"id": "postcode.123", "text": "28014"},
				{"id": "place.456", "text": "Madrid"},
				{"id": "region.789", "text": "Comunidad de Madrid"}
			]}
		]}`)
	}))
	defer server.Close()

	p := NewMapBoxProvider(server.URL, "test-key", time.Second)
	results, err := p.Search(context.Background(), normalizer.ParseQuery("alcala"))
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "CALLE ALCALÁ", results[0].Street)
	assert.Equal(t, "28014", results[0].PostalCode)
	assert.Equal(t, "MADRID", results[0].City)
	assert.Equal(t, "COMUNIDAD DE MADRID", results[0].Province)
	assert.Equal(t, models.SourceMapBox, results[0].Source)
}
