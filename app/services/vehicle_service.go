package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/parkinvoice/validation-service/app/models"
	"github.com/parkinvoice/validation-service/internal/vehicle"
)

// VehicleService resolves vehicle data for Spanish plates.
type VehicleService struct {
	lookup *vehicle.Lookup
	logger *zap.Logger
}

func NewVehicleService(lookup *vehicle.Lookup, logger *zap.Logger) *VehicleService {
	return &VehicleService{lookup: lookup, logger: logger}
}

// LookupByPlate never returns an error; lookup failures are encoded in the
// result so callers always get a displayable outcome.
func (s *VehicleService) LookupByPlate(ctx context.Context, plate string) *models.VehicleLookup {
	result := s.lookup.ByPlate(ctx, plate)
	if !result.Success {
		s.logger.Debug("vehicle lookup missed", zap.String("plate", plate), zap.String("reason", result.Error))
	}
	return result
}
