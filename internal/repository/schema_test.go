package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"investmentplanner/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestBeginTx(t *testing.T) {
	t.Run("waiting past the deadline on a full pool is pool exhaustion", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		db.SetMaxOpenConns(1)

		mock.ExpectBegin()
		mock.ExpectRollback()

		held, err := db.Begin()
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		tx, err := BeginTx(ctx, db)
		require.Nil(t, tx)
		require.ErrorIs(t, err, domain.ErrPoolExhausted)
		require.ErrorIs(t, err, context.DeadlineExceeded)

		require.NoError(t, held.Rollback())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other begin failures pass through", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

		_, err = BeginTx(context.Background(), db)
		require.ErrorContains(t, err, "connection refused")
		require.False(t, errors.Is(err, domain.ErrPoolExhausted))
	})
}

func TestTranslateError(t *testing.T) {
	t.Run("integrity violations", func(t *testing.T) {
		pqErr := &pq.Error{Code: "23503", Constraint: "asset_location_id_fkey"}

		err := translateError(nil, fmt.Errorf("insert failed: %w", pqErr))

		violation := domain.ConstraintViolationError{}
		require.ErrorAs(t, err, &violation)
		require.Equal(t, "asset_location_id_fkey", violation.Constraint)
		require.ErrorIs(t, err, pqErr)
	})

	t.Run("unique violation", func(t *testing.T) {
		err := translateError(nil, &pq.Error{Code: "23505", Constraint: "user_account_username_key"})
		require.ErrorAs(t, err, &domain.ConstraintViolationError{})
	})

	t.Run("non-integrity pq errors are unchanged", func(t *testing.T) {
		pqErr := &pq.Error{Code: "42P01"}
		require.Equal(t, error(pqErr), translateError(nil, pqErr))
	})

	t.Run("deadline without a full pool is not pool exhaustion", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		err = translateError(db, context.DeadlineExceeded)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		require.False(t, errors.Is(err, domain.ErrPoolExhausted))
	})

	t.Run("nil", func(t *testing.T) {
		require.NoError(t, translateError(nil, nil))
	})
}
