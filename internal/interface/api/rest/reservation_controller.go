package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agendapro-api/internal/application/ports"
	"agendapro-api/internal/application/services"
	dto "agendapro-api/internal/interface/api/rest/dto/reserva"
)

type ReservationController struct {
	reservationService ports.ReservationService
	logger             *zap.Logger
}

func NewReservationController(
	r *gin.Engine,
	reservationService ports.ReservationService,
	logger *zap.Logger,
) *ReservationController {
	rc := &ReservationController{
		reservationService: reservationService,
		logger:             logger,
	}

	r.POST(RouteReservation, rc.CreateReservationHandler)

	return rc
}

func (rc *ReservationController) CreateReservationHandler(c *gin.Context) {
	var req dto.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"message": "Cuerpo de la solicitud inválido."},
		)
		return
	}

	res, err := rc.reservationService.CreateReservation(c.Request.Context(), dto.ToCreateInput(req))
	if err != nil {
		if services.IsValidationErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		rc.logger.Error("CreateReservation() error", zap.Error(err))
		c.JSON(
			http.StatusBadRequest,
			gin.H{"message": "Error CRÍTICO al guardar la reserva en la base de datos."},
		)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Reserva creada exitosamente.",
		"reservaId": res.UUID.String(),
	})
}
