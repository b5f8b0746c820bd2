package pago

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "agendapro-api/internal/domain/pago"
)

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	id := uuid.MustParse("f1e2d3c4-b5a6-4978-8a1b-2c3d4e5f6a7b")
	reservationID := uuid.MustParse("d4c3b2a1-0f9e-4d8c-b7a6-5e4f3d2c1b0a")
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	req := domain.Pago{
		UUID:          id,
		ReservationID: reservationID,
		Amount:        25.0,
		Method:        domain.MethodOnSite,
		Status:        domain.StatusPendiente,
	}

	t.Run("success", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		t.Cleanup(mock.Close)
		repo := NewRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta(InsertPago)).
			WithArgs(id.String(), reservationID.String(), 25.0, "pagar en sitio", "PENDIENTE").
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "reservation_id", "amount", "payment_method", "status", "created_at",
			}).AddRow(id, reservationID, 25.0, "pagar en sitio", "PENDIENTE", createdAt))

		p, err := repo.Create(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, p)

		assert.Equal(t, id, p.UUID)
		assert.Equal(t, reservationID, p.ReservationID)
		assert.Equal(t, domain.MethodOnSite, p.Method)
		assert.Equal(t, domain.StatusPendiente, p.Status)
		assert.Equal(t, createdAt, p.CreatedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure passes through", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		t.Cleanup(mock.Close)
		repo := NewRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta(InsertPago)).
			WithArgs(id.String(), reservationID.String(), 25.0, "pagar en sitio", "PENDIENTE").
			WillReturnError(errors.New("foreign key violation"))

		p, err := repo.Create(ctx, req)
		require.Error(t, err)
		assert.Nil(t, p)
	})
}
