package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agendapro-api/internal/application/ports"
	"agendapro-api/internal/domain/usuario"
	dto "agendapro-api/internal/interface/api/rest/dto/history"
)

type HistoryController struct {
	historyService ports.HistoryService
	logger         *zap.Logger
}

func NewHistoryController(
	r *gin.Engine,
	historyService ports.HistoryService,
	logger *zap.Logger,
) *HistoryController {
	hc := &HistoryController{
		historyService: historyService,
		logger:         logger,
	}

	r.GET(RouteHistory, hc.GetHistoryHandler)

	return hc
}

func (hc *HistoryController) GetHistoryHandler(c *gin.Context) {
	userID := c.Param("user_id")
	role := usuario.Role(c.Param("role"))

	es, err := hc.historyService.GetHistory(c.Request.Context(), userID, role)
	if err != nil {
		// history reads degrade to an empty list, never an error
		hc.logger.Error("GetHistory() error", zap.Error(err))
		c.JSON(http.StatusOK, dto.Entries{})
		return
	}

	c.JSON(http.StatusOK, dto.ToResponseEntries(es))
}
