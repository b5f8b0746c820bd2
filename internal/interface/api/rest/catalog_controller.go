package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agendapro-api/internal/application/ports"
	"agendapro-api/internal/application/services"
	"agendapro-api/internal/domain/usuario"
	"agendapro-api/internal/infrastructure/jwt"
	dto "agendapro-api/internal/interface/api/rest/dto/servicio"
	"agendapro-api/internal/interface/api/rest/middleware"
)

type CatalogController struct {
	catalogService ports.CatalogService
	logger         *zap.Logger
}

func NewCatalogController(
	r *gin.Engine,
	catalogService ports.CatalogService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *CatalogController {
	cc := &CatalogController{
		catalogService: catalogService,
		logger:         logger,
	}

	r.GET(RouteServices, cc.GetServicesHandler)
	r.POST(RouteService,
		middleware.AuthMiddleware(jwtService),
		middleware.RequireRoles(string(usuario.RoleAdministrador), string(usuario.RoleProveedor)),
		cc.CreateServiceHandler,
	)

	return cc
}

func (cc *CatalogController) GetServicesHandler(c *gin.Context) {
	ss, err := cc.catalogService.ListAll(c.Request.Context())
	if err != nil {
		// catalog reads degrade to an empty list, never an error
		cc.logger.Error("ListAll() error", zap.Error(err))
		c.JSON(http.StatusOK, dto.Servicios{})
		return
	}

	c.JSON(http.StatusOK, dto.ToResponseServicios(ss))
}

func (cc *CatalogController) CreateServiceHandler(c *gin.Context) {
	var req dto.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"message": "Cuerpo de la solicitud inválido."},
		)
		return
	}

	s, err := cc.catalogService.Create(c.Request.Context(), dto.ToCreateInput(req))
	if err != nil {
		if services.IsValidationErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		cc.logger.Error("Create() error", zap.Error(err))
		c.JSON(
			http.StatusBadRequest,
			gin.H{"message": "Error CRÍTICO al crear el servicio en la BD."},
		)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Servicio creado correctamente.",
		"id":      s.UUID.String(),
	})
}
