package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/parkinvoice/validation-service/app/requests"
	"github.com/parkinvoice/validation-service/app/responses"
	"github.com/parkinvoice/validation-service/internal/fiscal"
)

// FiscalController handles fiscal identifier validation requests.
type FiscalController struct {
	logger *zap.Logger
}

func NewFiscalController(logger *zap.Logger) *FiscalController {
	return &FiscalController{logger: logger}
}

// Validate checks one NIF/NIE/CIF. An invalid identifier is still a 200:
// the form on the other end renders the Spanish message from the result.
func (fc *FiscalController) Validate(c *gin.Context) {
	var req requests.ValidateFiscalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "Cuerpo de la petición no válido: " + err.Error(),
		})
		return
	}

	startTime := time.Now()
	result := fiscal.Validate(req.Value)

	fc.logger.Debug("fiscal validation",
		zap.String("kind", string(result.Kind)),
		zap.Bool("valid", result.Valid))

	c.JSON(http.StatusOK, responses.FiscalValidationResponse{
		Result:           result,
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
	})
}
