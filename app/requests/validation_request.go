package requests

// ValidateFiscalRequest carries the fiscal identifier to validate.
type ValidateFiscalRequest struct {
	Value string `json:"value" binding:"required"` // NIF, NIE or CIF, any casing/spacing
}

// VehicleLookupRequest carries the Spanish plate to resolve.
type VehicleLookupRequest struct {
	Plate string `json:"matricula" binding:"required"` // format 1234ABC
}
