package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agendapro-api/internal/application/ports"
	"agendapro-api/internal/application/services"
	"agendapro-api/internal/interface/api/rest/dto/auth"
)

type AuthController struct {
	logger          *zap.Logger
	identityService ports.IdentityService
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	identityService ports.IdentityService,
) *AuthController {
	ac := &AuthController{
		logger:          logger,
		identityService: identityService,
	}

	r.POST(RouteRegister, ac.RegisterHandler)
	r.POST(RouteLogin, ac.LoginHandler)

	return ac
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"message": "Cuerpo de la solicitud inválido."},
		)
		return
	}

	u, err := ac.identityService.Register(c.Request.Context(), ports.RegisterInput{
		Email:            req.Email,
		Password:         req.Password,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		IdentificationID: req.IdentificationID,
	})
	if err != nil {
		if services.IsValidationErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		ac.logger.Error("Register() error", zap.Error(err))
		c.JSON(
			http.StatusBadRequest,
			gin.H{"message": "Error CRÍTICO al guardar el usuario en la base de datos."},
		)
		return
	}

	c.JSON(http.StatusCreated, auth.ToRegisterResponse(*u))
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"message": "Cuerpo de la solicitud inválido."},
		)
		return
	}

	u, token, err := ac.identityService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if services.IsValidationErr(err) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": err.Error(),
			})
			return
		}
		ac.logger.Error("Authenticate() error", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"message": "Error interno al iniciar sesión."},
		)
		return
	}

	c.JSON(http.StatusOK, auth.ToLoginResponse(*u, token))
}
