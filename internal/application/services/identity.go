package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"

	"agendapro-api/internal/application/ports"
	domain "agendapro-api/internal/domain/usuario"
	usuarioDB "agendapro-api/internal/infrastructure/db/postgres/usuario"
	"agendapro-api/internal/infrastructure/jwt"
	"agendapro-api/internal/infrastructure/mq"
)

type IdentityService struct {
	usuarioRepository domain.Repository
	jwtService        *jwt.Service
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewIdentityService(
	usuarioRepository domain.Repository,
	jwtService *jwt.Service,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.IdentityService {
	return &IdentityService{
		usuarioRepository: usuarioRepository,
		jwtService:        jwtService,
		mq:                mq,
		mCounter:          mCounter,
	}
}

func (is *IdentityService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Usuario, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !domain.ValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	// Friendly pre-check; the unique constraint on usuarios.email closes the
	// remaining race window between lookup and insert.
	existing, err := is.usuarioRepository.FetchByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("fetch usuario by email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	if utf8.RuneCountInString(in.Password) < domain.MinPasswordLen {
		return nil, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	name := norm.NFC.String(strings.TrimSpace(in.FirstName + " " + in.LastName))

	u := domain.Usuario{
		UUID:             uuid.New(),
		Email:            email,
		PasswordHash:     string(hash),
		Name:             name,
		Role:             domain.RoleCliente,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		IdentificationID: in.IdentificationID,
		Status:           domain.StatusActivo,
	}

	uRet, err := is.usuarioRepository.Create(ctx, u)
	if err != nil {
		if errors.Is(err, usuarioDB.ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("create usuario: %w", err)
	}

	if uRet != nil {
		is.mq.GetInputChan() <- mq.Notification{
			Id:      uuid.New(),
			TS:      time.Now(),
			Kind:    mq.KindWelcome,
			To:      uRet.Email,
			Subject: "Bienvenido a AgendaPro",
			Body:    fmt.Sprintf("Hola %s,\n\nTu cuenta ha sido creada exitosamente. ¡Ya puedes reservar tus servicios!", name),
		}
	}

	is.mCounter.WithLabelValues("user_registered_total").Inc()

	return uRet, nil
}

func (is *IdentityService) Authenticate(ctx context.Context, email, password string) (*domain.Usuario, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	// Malformed email short-circuits before any lookup.
	if !domain.ValidEmail(email) {
		return nil, "", ErrInvalidEmail
	}

	u, err := is.usuarioRepository.FetchByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("fetch usuario by email: %w", err)
	}
	if u == nil {
		return nil, "", ErrEmailNotRegistered
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := is.jwtService.GenerateJWT(u.UUID.String(), string(u.Role), time.Hour)
	if err != nil {
		return nil, "", ErrFailedToGenerateToken
	}

	return u, token, nil
}
