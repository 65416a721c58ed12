package models

// VehicleData holds the fields scraped for a license plate. Only Marca and
// Modelo are guaranteed when a lookup succeeds.
type VehicleData struct {
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	Ano         string `json:"año,omitempty"`
	Combustible string `json:"combustible,omitempty"`
	CV          string `json:"cv,omitempty"`
}

// VehicleLookup is the outcome of a plate lookup. Source is "api" when the
// external report service answered, "not_found" otherwise.
type VehicleLookup struct {
	Success bool         `json:"success"`
	Data    *VehicleData `json:"data,omitempty"`
	Source  string       `json:"source"`
	Error   string       `json:"error,omitempty"`
}
