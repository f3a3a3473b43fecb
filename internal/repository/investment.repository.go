package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"investmentplanner/internal/db/models/postgres/public/model"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

//go:generate mockgen -source=investment.repository.go -destination=mocks/investment.repository.go -package=mock_repository

type InvestmentRepository interface {
	List(ctx context.Context, page Page) ([]model.Investment, error)
	Get(ctx context.Context, id int64) (*model.Investment, error)
	Add(ctx context.Context, tx *sql.Tx, i model.Investment) (*model.Investment, error)
}

type investmentRepositoryHandler struct {
	Db     *sql.DB
	Schema Schema
}

func NewInvestmentRepository(db *sql.DB, schema Schema) InvestmentRepository {
	return investmentRepositoryHandler{Db: db, Schema: schema}
}

func (h investmentRepositoryHandler) List(ctx context.Context, page Page) ([]model.Investment, error) {
	t := h.Schema.Investment
	query := t.SELECT(t.AllColumns).
		ORDER_BY(t.ID.ASC()).
		LIMIT(page.Take).
		OFFSET(page.Skip)

	out := []model.Investment{}
	err := query.QueryContext(ctx, h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", translateError(h.Db, err))
	}

	return out, nil
}

func (h investmentRepositoryHandler) Get(ctx context.Context, id int64) (*model.Investment, error) {
	t := h.Schema.Investment
	query := t.SELECT(t.AllColumns).
		WHERE(t.ID.EQ(postgres.Int64(id)))

	out := model.Investment{}
	err := query.QueryContext(ctx, h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get investment %d: %w", id, translateError(h.Db, err))
	}

	return &out, nil
}

func (h investmentRepositoryHandler) Add(ctx context.Context, tx *sql.Tx, i model.Investment) (*model.Investment, error) {
	t := h.Schema.Investment
	query := t.INSERT(t.MutableColumns).
		MODEL(i).
		RETURNING(t.AllColumns)

	out := model.Investment{}
	err := query.QueryContext(ctx, queryable(h.Db, tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert investment: %w", translateError(h.Db, err))
	}

	return &out, nil
}
