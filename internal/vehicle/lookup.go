package vehicle

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/parkinvoice/validation-service/app/models"
)

const (
	defaultReportURL = "https://www.historialvehiculo.com/informes-gratis-vehiculos"
	lookupTimeout    = 10 * time.Second

	// The report site blocks clients that do not look like a browser.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	maxReportBody = 2 << 20
)

var (
	reMarca       = regexp.MustCompile(`(?i)"?marca"?\s*[:>]\s*"?([A-ZÁÉÍÓÚÑa-záéíóúñ0-9 .\-]+)`)
	reModelo      = regexp.MustCompile(`(?i)"?modelo"?\s*[:>]\s*"?([A-ZÁÉÍÓÚÑa-záéíóúñ0-9 .\-]+)`)
	reAno         = regexp.MustCompile(`(?i)"?(?:año|ano|year)"?\s*[:>]\s*"?((?:19|20)\d{2})`)
	reCombustible = regexp.MustCompile(`(?i)"?combustible"?\s*[:>]\s*"?(gasolina|diesel|diésel|híbrido|hibrido|eléctrico|electrico|glp|gnc)`)
	reCV          = regexp.MustCompile(`(?i)(\d{2,3})\s*cv`)
)

// Lookup scrapes the public report page for a plate. Any network or parse
// failure degrades to a not_found result; callers never see a transport error.
type Lookup struct {
	reportURL string
	client    *http.Client
	logger    *zap.Logger
}

// NewLookup builds the scraper. reportURL may be empty to use the public site.
func NewLookup(reportURL string, logger *zap.Logger) *Lookup {
	if reportURL == "" {
		reportURL = defaultReportURL
	}
	return &Lookup{
		reportURL: reportURL,
		client:    &http.Client{Timeout: lookupTimeout},
		logger:    logger,
	}
}

// ByPlate resolves a plate. The returned VehicleLookup always has Success
// and Source set; a malformed plate comes back as not_found.
func (l *Lookup) ByPlate(ctx context.Context, plate string) *models.VehicleLookup {
	clean := NormalizePlate(plate)
	if !rePlate.MatchString(clean) {
		return &models.VehicleLookup{Success: false, Source: "not_found", Error: ErrPlateFormat}
	}

	data, err := l.fetchReport(ctx, clean)
	if err != nil {
		l.logger.Warn("vehicle report fetch failed", zap.String("plate", clean), zap.Error(err))
		return &models.VehicleLookup{
			Success: false,
			Source:  "not_found",
			Error:   "No se encontró información para esta matrícula",
		}
	}

	return &models.VehicleLookup{Success: true, Data: data, Source: "api"}
}

func (l *Lookup) fetchReport(ctx context.Context, plate string) (*models.VehicleData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.reportURL+"?matricula="+plate, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "es-ES,es;q=0.8,en-US;q=0.5,en;q=0.3")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("report page returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReportBody))
	if err != nil {
		return nil, err
	}

	data := parseReport(string(body))
	if data == nil {
		return nil, fmt.Errorf("no vehicle data in report for %s", plate)
	}
	return data, nil
}

// parseReport pulls marca/modelo and the optional extras out of the report
// markup. Marca and modelo are both required for a usable record.
func parseReport(body string) *models.VehicleData {
	marca := firstGroup(reMarca, body)
	modelo := firstGroup(reModelo, body)
	if marca == "" || modelo == "" {
		return nil
	}

	return &models.VehicleData{
		Marca:       strings.ToUpper(marca),
		Modelo:      strings.ToUpper(modelo),
		Ano:         firstGroup(reAno, body),
		Combustible: capitalize(firstGroup(reCombustible, body)),
		CV:          firstGroup(reCV, body),
	}
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func firstGroup(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return ""
}
