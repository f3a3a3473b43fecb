package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"investmentplanner/internal/db/models/postgres/public/model"
	"investmentplanner/internal/domain"
	"investmentplanner/internal/logger"
	"investmentplanner/internal/repository"
)

//go:generate mockgen -source=strategy.service.go -destination=mocks/strategy.service.go -package=mock_service

type StrategyService interface {
	List(ctx context.Context, page repository.Page) ([]domain.BaseStrategy, error)
	Get(ctx context.Context, id int64) (*domain.Strategy, error)
	Create(ctx context.Context, in domain.StrategyIn) (int64, error)
}

type strategyServiceHandler struct {
	Db                 *sql.DB
	StrategyRepository repository.StrategyRepository
}

func NewStrategyService(db *sql.DB, strategyRepository repository.StrategyRepository) StrategyService {
	return strategyServiceHandler{
		Db:                 db,
		StrategyRepository: strategyRepository,
	}
}

func (h strategyServiceHandler) List(ctx context.Context, page repository.Page) ([]domain.BaseStrategy, error) {
	strategies, err := h.StrategyRepository.List(ctx, page)
	if err != nil {
		return nil, err
	}

	out := []domain.BaseStrategy{}
	for _, s := range strategies {
		out = append(out, domain.BaseStrategy{
			ID:   s.ID,
			Date: s.Date,
		})
	}
	return out, nil
}

func (h strategyServiceHandler) Get(ctx context.Context, id int64) (*domain.Strategy, error) {
	rows, err := h.StrategyRepository.GetAllocationRows(ctx, id)
	if err != nil {
		return nil, err
	}

	strategy, err := domain.AggregateStrategy(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate strategy %d: %w", id, err)
	}

	return strategy, nil
}

// Create writes the strategy row and one allocation row per non-zero entry
// in a single transaction.
func (h strategyServiceHandler) Create(ctx context.Context, in domain.StrategyIn) (int64, error) {
	tx, err := repository.BeginTx(ctx, h.Db)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	strategy, err := h.StrategyRepository.Add(ctx, tx, model.Strategy{
		Date: in.Date,
	})
	if err != nil {
		return 0, err
	}

	allocations := []model.AssetStrategy{}
	for assetID, fraction := range in.Allocation {
		if fraction == 0 {
			continue
		}
		allocations = append(allocations, model.AssetStrategy{
			StrategyID: strategy.ID,
			AssetID:    assetID,
			Allocation: fraction,
		})
	}
	sort.Slice(allocations, func(i, j int) bool {
		return allocations[i].AssetID < allocations[j].AssetID
	})

	_, err = h.StrategyRepository.AddAllocations(ctx, tx, allocations)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit strategy: %w", err)
	}

	logger.FromContext(ctx).Infof("created strategy %d with %d allocations", strategy.ID, len(allocations))

	return strategy.ID, nil
}
