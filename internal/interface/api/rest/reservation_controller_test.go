// reservation_controller_test.go
package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agendapro-api/internal/application/ports"
	"agendapro-api/internal/application/services"
	domain "agendapro-api/internal/domain/reserva"
	dto "agendapro-api/internal/interface/api/rest/dto/reserva"
)

type fakeReservationService struct {
	CreateReservationFunc func(ctx context.Context, in ports.CreateReservationInput) (*domain.Reserva, error)
}

func (f *fakeReservationService) CreateReservation(ctx context.Context, in ports.CreateReservationInput) (*domain.Reserva, error) {
	return f.CreateReservationFunc(ctx, in)
}

func newReservationRouter(t *testing.T, rs ports.ReservationService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	rc := &ReservationController{
		reservationService: rs,
		logger:             zap.NewNop(),
	}
	r.POST(RouteReservation, rc.CreateReservationHandler)
	return r
}

func validReserva() dto.Request {
	return dto.Request{
		UsuarioID:   "0b6f3a5e-2a1c-4d7e-8f90-1a2b3c4d5e6f",
		ServiceID:   "aa0e8b0d-1c2d-4e3f-9a8b-7c6d5e4f3a2b",
		SlotTime:    "2025-12-31 15:00:00",
		Status:      "Confirmada",
		UserEmail:   "ana@example.com",
		ServiceName: "Corte de cabello",
	}
}

func TestReservationController_CreateReservationHandler(t *testing.T) {
	type fields struct {
		create func(ctx context.Context, in ports.CreateReservationInput) (*domain.Reserva, error)
	}
	type want struct {
		code   int
		jsonEq map[string]any
	}

	created := &domain.Reserva{
		UUID:      uuid.MustParse("d4c3b2a1-0f9e-4d8c-b7a6-5e4f3d2c1b0a"),
		UsuarioID: uuid.MustParse("0b6f3a5e-2a1c-4d7e-8f90-1a2b3c4d5e6f"),
		ServiceID: uuid.MustParse("aa0e8b0d-1c2d-4e3f-9a8b-7c6d5e4f3a2b"),
		SlotTime:  time.Date(2025, 12, 31, 15, 0, 0, 0, time.UTC),
		Status:    "Confirmada",
	}

	tests := []struct {
		name   string
		body   any
		fields fields
		want   want
	}{
		{
			name: "invalid JSON",
			body: "{bad json",
			fields: fields{
				create: func(ctx context.Context, in ports.CreateReservationInput) (*domain.Reserva, error) {
					t.Fatal("CreateReservation must not be called")
					return nil, nil
				},
			},
			want: want{
				code:   http.StatusBadRequest,
				jsonEq: map[string]any{"message": "Cuerpo de la solicitud inválido."},
			},
		},
		{
			name: "missing fields -> message echoed",
			body: dto.Request{UsuarioID: "0b6f3a5e-2a1c-4d7e-8f90-1a2b3c4d5e6f"},
			fields: fields{
				create: func(ctx context.Context, in ports.CreateReservationInput) (*domain.Reserva, error) {
					return nil, services.ErrMissingReservaFields
				},
			},
			want: want{
				code:   http.StatusBadRequest,
				jsonEq: map[string]any{"message": "Faltan campos obligatorios para la reserva."},
			},
		},
		{
			name: "unparseable slot -> message echoed with cause",
			body: validReserva(),
			fields: fields{
				create: func(ctx context.Context, in ports.CreateReservationInput) (*domain.Reserva, error) {
					return nil, fmt.Errorf("%w: %v", services.ErrInvalidSlotTime, errors.New(`Could not find format for "fecha-mala"`))
				},
			},
			want: want{
				code: http.StatusBadRequest,
				jsonEq: map[string]any{
					"message": `Formato de fecha u hora inválido: Could not find format for "fecha-mala"`,
				},
			},
		},
		{
			name: "store failure -> generic message",
			body: validReserva(),
			fields: fields{
				create: func(ctx context.Context, in ports.CreateReservationInput) (*domain.Reserva, error) {
					return nil, errors.New("db down")
				},
			},
			want: want{
				code:   http.StatusBadRequest,
				jsonEq: map[string]any{"message": "Error CRÍTICO al guardar la reserva en la base de datos."},
			},
		},
		{
			name: "success",
			body: validReserva(),
			fields: fields{
				create: func(ctx context.Context, in ports.CreateReservationInput) (*domain.Reserva, error) {
					assert.Equal(t, "2025-12-31 15:00:00", in.SlotTime)
					assert.Equal(t, "Corte de cabello", in.ServiceName)
					return created, nil
				},
			},
			want: want{
				code: http.StatusCreated,
				jsonEq: map[string]any{
					"success":   true,
					"message":   "Reserva creada exitosamente.",
					"reservaId": "d4c3b2a1-0f9e-4d8c-b7a6-5e4f3d2c1b0a",
				},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rs := &fakeReservationService{CreateReservationFunc: tt.fields.create}

			r := newReservationRouter(t, rs)
			rr := doPOST(t, r, RouteReservation, tt.body)

			require.Equal(t, tt.want.code, rr.Code)

			resp := decodeJSON(t, rr)
			for k, v := range tt.want.jsonEq {
				assert.Equal(t, v, resp[k], "field %q mismatch", k)
			}
		})
	}
}
