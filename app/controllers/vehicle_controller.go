package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/parkinvoice/validation-service/app/requests"
	"github.com/parkinvoice/validation-service/app/responses"
	"github.com/parkinvoice/validation-service/app/services"
)

// VehicleController handles plate-based vehicle lookups.
type VehicleController struct {
	vehicleService *services.VehicleService
	logger         *zap.Logger
}

func NewVehicleController(vehicleService *services.VehicleService, logger *zap.Logger) *VehicleController {
	return &VehicleController{vehicleService: vehicleService, logger: logger}
}

// Lookup resolves vehicle data for a plate. Misses come back as 200 with
// success=false so the form can fall back to manual entry.
func (vc *VehicleController) Lookup(c *gin.Context) {
	var req requests.VehicleLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "Cuerpo de la petición no válido: " + err.Error(),
		})
		return
	}

	result := vc.vehicleService.LookupByPlate(c.Request.Context(), req.Plate)

	c.JSON(http.StatusOK, responses.VehicleLookupResponse{
		Success: result.Success,
		Data:    result.Data,
		Source:  result.Source,
		Error:   result.Error,
	})
}
