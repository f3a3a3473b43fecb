package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"investmentplanner/internal/db/models/postgres/public/model"
	"investmentplanner/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

//go:generate mockgen -source=strategy.repository.go -destination=mocks/strategy.repository.go -package=mock_repository

type StrategyRepository interface {
	List(ctx context.Context, page Page) ([]model.Strategy, error)
	GetAllocationRows(ctx context.Context, id int64) ([]domain.StrategyAllocationRow, error)
	Add(ctx context.Context, tx *sql.Tx, s model.Strategy) (*model.Strategy, error)
	AddAllocations(ctx context.Context, tx *sql.Tx, allocations []model.AssetStrategy) ([]model.AssetStrategy, error)
}

type strategyRepositoryHandler struct {
	Db     *sql.DB
	Schema Schema
}

func NewStrategyRepository(db *sql.DB, schema Schema) StrategyRepository {
	return strategyRepositoryHandler{Db: db, Schema: schema}
}

func (h strategyRepositoryHandler) List(ctx context.Context, page Page) ([]model.Strategy, error) {
	t := h.Schema.Strategy
	query := t.SELECT(t.AllColumns).
		ORDER_BY(t.ID.ASC()).
		LIMIT(page.Take).
		OFFSET(page.Skip)

	out := []model.Strategy{}
	err := query.QueryContext(ctx, h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list strategies: %w", translateError(h.Db, err))
	}

	return out, nil
}

type strategyAllocationRow struct {
	StrategyID int64     `alias:"strategy.id"`
	Date       time.Time `alias:"strategy.date"`
	AssetID    *int64    `alias:"asset_strategy.asset_id"`
	Allocation *float64  `alias:"asset_strategy.allocation"`
}

// GetAllocationRows returns the strategy joined with its allocation rows, one
// element per row. A strategy with no allocations still yields one row with
// nil asset fields; an unknown id yields none.
func (h strategyRepositoryHandler) GetAllocationRows(ctx context.Context, id int64) ([]domain.StrategyAllocationRow, error) {
	s := h.Schema.Strategy
	as := h.Schema.AssetStrategy
	query := postgres.SELECT(
		s.ID,
		s.Date,
		as.AssetID,
		as.Allocation,
	).FROM(
		s.LEFT_JOIN(as, as.StrategyID.EQ(s.ID)),
	).WHERE(
		s.ID.EQ(postgres.Int64(id)),
	).ORDER_BY(
		as.ID.ASC(),
	)

	rows, err := query.Rows(ctx, h.Db)
	if err != nil {
		return nil, fmt.Errorf("failed to get strategy %d: %w", id, translateError(h.Db, err))
	}
	defer rows.Close()

	out := []domain.StrategyAllocationRow{}
	for rows.Next() {
		row := strategyAllocationRow{}
		if err := rows.Scan(&row); err != nil {
			return nil, fmt.Errorf("failed to scan strategy allocation row: %w", err)
		}
		out = append(out, domain.StrategyAllocationRow{
			StrategyID: row.StrategyID,
			Date:       row.Date,
			AssetID:    row.AssetID,
			Allocation: row.Allocation,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read strategy allocation rows: %w", translateError(h.Db, err))
	}

	return out, nil
}

func (h strategyRepositoryHandler) Add(ctx context.Context, tx *sql.Tx, s model.Strategy) (*model.Strategy, error) {
	t := h.Schema.Strategy
	query := t.INSERT(t.MutableColumns).
		MODEL(s).
		RETURNING(t.AllColumns)

	out := model.Strategy{}
	err := query.QueryContext(ctx, queryable(h.Db, tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert strategy: %w", translateError(h.Db, err))
	}

	return &out, nil
}

func (h strategyRepositoryHandler) AddAllocations(ctx context.Context, tx *sql.Tx, allocations []model.AssetStrategy) ([]model.AssetStrategy, error) {
	if len(allocations) == 0 {
		return []model.AssetStrategy{}, nil
	}

	t := h.Schema.AssetStrategy
	query := t.INSERT(t.MutableColumns).
		MODELS(allocations).
		RETURNING(t.AllColumns)

	out := []model.AssetStrategy{}
	err := query.QueryContext(ctx, queryable(h.Db, tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert strategy allocations: %w", translateError(h.Db, err))
	}

	return out, nil
}
