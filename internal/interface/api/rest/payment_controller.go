package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agendapro-api/internal/application/ports"
	"agendapro-api/internal/application/services"
	dto "agendapro-api/internal/interface/api/rest/dto/pago"
)

type PaymentController struct {
	paymentService ports.PaymentService
	logger         *zap.Logger
}

func NewPaymentController(
	r *gin.Engine,
	paymentService ports.PaymentService,
	logger *zap.Logger,
) *PaymentController {
	pc := &PaymentController{
		paymentService: paymentService,
		logger:         logger,
	}

	r.POST(RouteProcessPayment, pc.ProcessPaymentHandler)

	return pc
}

func (pc *PaymentController) ProcessPaymentHandler(c *gin.Context) {
	var req dto.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"message": "Cuerpo de la solicitud inválido."},
		)
		return
	}

	p, message, err := pc.paymentService.ProcessPayment(c.Request.Context(), dto.ToProcessInput(req))
	if err != nil {
		if services.IsValidationErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		pc.logger.Error("ProcessPayment() error", zap.Error(err))
		c.JSON(
			http.StatusBadRequest,
			gin.H{"message": "Error CRÍTICO al procesar y guardar el pago."},
		)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"estado_pago": string(p.Status),
		"message":     message,
	})
}
