package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"investmentplanner/internal/db/models/postgres/public/table"
	"investmentplanner/internal/domain"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/lib/pq"
)

// Schema holds the table definitions every repository queries against,
// bound to one postgres schema.
type Schema struct {
	Name           string
	Location       *table.LocationTable
	Asset          *table.AssetTable
	Strategy       *table.StrategyTable
	AssetStrategy  *table.AssetStrategyTable
	Investment     *table.InvestmentTable
	UserAccount    *table.UserAccountTable
	InvestmentUser *table.InvestmentUserTable
}

func NewSchema(name string) Schema {
	return Schema{
		Name:           name,
		Location:       table.Location.FromSchema(name),
		Asset:          table.Asset.FromSchema(name),
		Strategy:       table.Strategy.FromSchema(name),
		AssetStrategy:  table.AssetStrategy.FromSchema(name),
		Investment:     table.Investment.FromSchema(name),
		UserAccount:    table.UserAccount.FromSchema(name),
		InvestmentUser: table.InvestmentUser.FromSchema(name),
	}
}

// Page is an offset/limit window. Lists are ordered by id ascending so
// consecutive pages are stable.
type Page struct {
	Skip int64
	Take int64
}

func (p Page) Validate() error {
	if p.Skip < 0 {
		return domain.ValidationError{Field: "skip", Reason: "must not be negative"}
	}
	if p.Take < 1 {
		return domain.ValidationError{Field: "take", Reason: "must be positive"}
	}
	return nil
}

func queryable(db *sql.DB, tx *sql.Tx) qrm.Queryable {
	if tx != nil {
		return tx
	}
	return db
}

// translateError maps driver errors onto the domain taxonomy. Integrity
// violations (class 23) become ConstraintViolationError; a deadline hit while
// every pooled connection is busy becomes ErrPoolExhausted.
func translateError(db *sql.DB, err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return domain.ConstraintViolationError{
			Constraint: pqErr.Constraint,
			Err:        err,
		}
	}

	if db != nil && errors.Is(err, context.DeadlineExceeded) {
		stats := db.Stats()
		if stats.MaxOpenConnections > 0 && stats.InUse >= stats.MaxOpenConnections {
			return fmt.Errorf("%w: %w", domain.ErrPoolExhausted, err)
		}
	}

	return err
}

// BeginTx starts a transaction on db. Waiting for a pooled connection past
// the ctx deadline surfaces as domain.ErrPoolExhausted.
func BeginTx(ctx context.Context, db *sql.DB) (*sql.Tx, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin tx: %w", translateError(db, err))
	}
	return tx, nil
}
