package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/parkinvoice/validation-service/app/responses"
	"github.com/parkinvoice/validation-service/app/services"
)

// InvoiceController hands out sequential invoice numbers.
type InvoiceController struct {
	invoiceService *services.InvoiceService
	logger         *zap.Logger
}

func NewInvoiceController(invoiceService *services.InvoiceService, logger *zap.Logger) *InvoiceController {
	return &InvoiceController{invoiceService: invoiceService, logger: logger}
}

// NextNumber reserves and returns the next invoice number.
func (ic *InvoiceController) NextNumber(c *gin.Context) {
	number, err := ic.invoiceService.NextNumber(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "SEQUENCE_ERROR",
			Message: "No se pudo reservar el número de factura: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.NextInvoiceNumberResponse{
		NextInvoiceNumber: number,
	})
}
