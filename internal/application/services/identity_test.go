package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"agendapro-api/internal/application/ports"
	domain "agendapro-api/internal/domain/usuario"
	usuarioDB "agendapro-api/internal/infrastructure/db/postgres/usuario"
	"agendapro-api/internal/infrastructure/jwt"
	"agendapro-api/internal/infrastructure/mq"
)

// fakeMQ captures enqueued notifications without a broker behind it.
type fakeMQ struct {
	in chan mq.Notification
}

func newFakeMQ() *fakeMQ {
	return &fakeMQ{in: make(chan mq.Notification, 8)}
}

func (f *fakeMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *fakeMQ) Init() error                                   { return nil }
func (f *fakeMQ) PublisherWorker(ctx context.Context)           {}
func (f *fakeMQ) GetInputChan() chan mq.Notification            { return f.in }
func (f *fakeMQ) GetConn() *amqp091.Connection                  { return nil }

func (f *fakeMQ) drain(t *testing.T) []mq.Notification {
	t.Helper()
	var ns []mq.Notification
	for {
		select {
		case n := <-f.in:
			ns = append(ns, n)
		default:
			return ns
		}
	}
}

func newTestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_general_counters"},
		[]string{"result"})
}

type fakeUsuarioRepo struct {
	FetchByEmailFunc func(ctx context.Context, email string) (*domain.Usuario, error)
	CreateFunc       func(ctx context.Context, req domain.Usuario) (*domain.Usuario, error)
}

func (f *fakeUsuarioRepo) FetchByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	return f.FetchByEmailFunc(ctx, email)
}

func (f *fakeUsuarioRepo) Create(ctx context.Context, req domain.Usuario) (*domain.Usuario, error) {
	return f.CreateFunc(ctx, req)
}

func validRegisterInput() ports.RegisterInput {
	return ports.RegisterInput{
		Email:            "Ana@Example.com",
		Password:         "secret123",
		FirstName:        "Ana",
		LastName:         "Pérez",
		IdentificationID: "11222333",
	}
}

func TestIdentityService_Register(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.New("test-secret")

	t.Run("invalid email fails before any lookup", func(t *testing.T) {
		repo := &fakeUsuarioRepo{
			FetchByEmailFunc: func(ctx context.Context, email string) (*domain.Usuario, error) {
				t.Fatal("FetchByEmail must not be called")
				return nil, nil
			},
			CreateFunc: func(ctx context.Context, req domain.Usuario) (*domain.Usuario, error) {
				t.Fatal("Create must not be called")
				return nil, nil
			},
		}
		fm := newFakeMQ()
		is := NewIdentityService(repo, jwtService, fm, newTestCounter())

		in := validRegisterInput()
		in.Email = "sin-arroba"
		u, err := is.Register(ctx, in)

		require.ErrorIs(t, err, ErrInvalidEmail)
		assert.Nil(t, u)
		assert.Empty(t, fm.drain(t))
	})

	t.Run("short password fails before insert", func(t *testing.T) {
		repo := &fakeUsuarioRepo{
			FetchByEmailFunc: func(ctx context.Context, email string) (*domain.Usuario, error) {
				return nil, nil
			},
			CreateFunc: func(ctx context.Context, req domain.Usuario) (*domain.Usuario, error) {
				t.Fatal("Create must not be called")
				return nil, nil
			},
		}
		fm := newFakeMQ()
		is := NewIdentityService(repo, jwtService, fm, newTestCounter())

		in := validRegisterInput()
		in.Password = "ab1"
		u, err := is.Register(ctx, in)

		require.ErrorIs(t, err, ErrPasswordTooShort)
		assert.Nil(t, u)
		assert.Empty(t, fm.drain(t))
	})

	t.Run("known email rejected by pre-check", func(t *testing.T) {
		repo := &fakeUsuarioRepo{
			FetchByEmailFunc: func(ctx context.Context, email string) (*domain.Usuario, error) {
				assert.Equal(t, "ana@example.com", email)
				return &domain.Usuario{Email: email}, nil
			},
			CreateFunc: func(ctx context.Context, req domain.Usuario) (*domain.Usuario, error) {
				t.Fatal("Create must not be called")
				return nil, nil
			},
		}
		fm := newFakeMQ()
		is := NewIdentityService(repo, jwtService, fm, newTestCounter())

		u, err := is.Register(ctx, validRegisterInput())

		require.ErrorIs(t, err, ErrEmailAlreadyRegistered)
		assert.Nil(t, u)
		assert.Empty(t, fm.drain(t))
	})

	t.Run("unique violation on insert maps to the same message", func(t *testing.T) {
		repo := &fakeUsuarioRepo{
			FetchByEmailFunc: func(ctx context.Context, email string) (*domain.Usuario, error) {
				return nil, nil
			},
			CreateFunc: func(ctx context.Context, req domain.Usuario) (*domain.Usuario, error) {
				return nil, usuarioDB.ErrEmailAlreadyExists
			},
		}
		fm := newFakeMQ()
		is := NewIdentityService(repo, jwtService, fm, newTestCounter())

		u, err := is.Register(ctx, validRegisterInput())

		require.ErrorIs(t, err, ErrEmailAlreadyRegistered)
		assert.Nil(t, u)
		assert.Empty(t, fm.drain(t))
	})

	t.Run("success normalizes, hashes and enqueues welcome", func(t *testing.T) {
		var stored domain.Usuario
		repo := &fakeUsuarioRepo{
			FetchByEmailFunc: func(ctx context.Context, email string) (*domain.Usuario, error) {
				return nil, nil
			},
			CreateFunc: func(ctx context.Context, req domain.Usuario) (*domain.Usuario, error) {
				stored = req
				return &req, nil
			},
		}
		fm := newFakeMQ()
		is := NewIdentityService(repo, jwtService, fm, newTestCounter())

		u, err := is.Register(ctx, validRegisterInput())
		require.NoError(t, err)
		require.NotNil(t, u)

		assert.Equal(t, "ana@example.com", stored.Email)
		assert.Equal(t, "Ana Pérez", stored.Name)
		assert.Equal(t, domain.RoleCliente, stored.Role)
		assert.Equal(t, domain.StatusActivo, stored.Status)
		assert.NotEqual(t, uuid.Nil, stored.UUID)
		require.NoError(t,
			bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))

		ns := fm.drain(t)
		require.Len(t, ns, 1)
		assert.Equal(t, mq.KindWelcome, ns[0].Kind)
		assert.Equal(t, "ana@example.com", ns[0].To)
		assert.Equal(t, "Bienvenido a AgendaPro", ns[0].Subject)
		assert.Contains(t, ns[0].Body, "Hola Ana Pérez,")
	})
}

func TestIdentityService_Authenticate(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.New("test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &domain.Usuario{
		UUID:         uuid.MustParse("0b6f3a5e-2a1c-4d7e-8f90-1a2b3c4d5e6f"),
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Name:         "Ana Pérez",
		Role:         domain.RoleCliente,
	}

	repoWith := func(u *domain.Usuario) *fakeUsuarioRepo {
		return &fakeUsuarioRepo{
			FetchByEmailFunc: func(ctx context.Context, email string) (*domain.Usuario, error) {
				return u, nil
			},
			CreateFunc: func(ctx context.Context, req domain.Usuario) (*domain.Usuario, error) {
				return nil, errors.New("not used")
			},
		}
	}

	t.Run("malformed email short-circuits", func(t *testing.T) {
		repo := &fakeUsuarioRepo{
			FetchByEmailFunc: func(ctx context.Context, email string) (*domain.Usuario, error) {
				t.Fatal("FetchByEmail must not be called")
				return nil, nil
			},
			CreateFunc: func(ctx context.Context, req domain.Usuario) (*domain.Usuario, error) {
				return nil, errors.New("not used")
			},
		}
		is := NewIdentityService(repo, jwtService, newFakeMQ(), newTestCounter())

		_, _, err := is.Authenticate(ctx, "no-es-un-correo", "whatever")
		require.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("unknown email", func(t *testing.T) {
		is := NewIdentityService(repoWith(nil), jwtService, newFakeMQ(), newTestCounter())

		_, _, err := is.Authenticate(ctx, "nadie@example.com", "secret123")
		require.ErrorIs(t, err, ErrEmailNotRegistered)
	})

	t.Run("wrong password", func(t *testing.T) {
		is := NewIdentityService(repoWith(stored), jwtService, newFakeMQ(), newTestCounter())

		_, _, err := is.Authenticate(ctx, "ana@example.com", "incorrecta")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("success returns profile and a verifiable token", func(t *testing.T) {
		is := NewIdentityService(repoWith(stored), jwtService, newFakeMQ(), newTestCounter())

		u, token, err := is.Authenticate(ctx, " Ana@Example.COM ", "secret123")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, stored.Email, u.Email)

		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, stored.UUID.String(), claims.UserID)
		assert.Equal(t, string(domain.RoleCliente), claims.Role)
		require.NotNil(t, claims.ExpiresAt)
		assert.True(t, claims.ExpiresAt.Time.After(time.Now()))
	})
}
