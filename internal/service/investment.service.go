package service

import (
	"context"
	"database/sql"
	"fmt"

	"investmentplanner/internal/db/models/postgres/public/model"
	"investmentplanner/internal/domain"
	"investmentplanner/internal/logger"
	"investmentplanner/internal/repository"
)

//go:generate mockgen -source=investment.service.go -destination=mocks/investment.service.go -package=mock_service

type InvestmentService interface {
	List(ctx context.Context, page repository.Page) ([]domain.Investment, error)
	Get(ctx context.Context, id int64) (*domain.Investment, error)
	Create(ctx context.Context, in domain.InvestmentIn, userID int64) (int64, error)
}

type investmentServiceHandler struct {
	Db                   *sql.DB
	InvestmentRepository repository.InvestmentRepository
	UserRepository       repository.UserRepository
}

func NewInvestmentService(
	db *sql.DB,
	investmentRepository repository.InvestmentRepository,
	userRepository repository.UserRepository,
) InvestmentService {
	return investmentServiceHandler{
		Db:                   db,
		InvestmentRepository: investmentRepository,
		UserRepository:       userRepository,
	}
}

func (h investmentServiceHandler) List(ctx context.Context, page repository.Page) ([]domain.Investment, error) {
	investments, err := h.InvestmentRepository.List(ctx, page)
	if err != nil {
		return nil, err
	}

	out := []domain.Investment{}
	for _, i := range investments {
		out = append(out, investmentFromModel(i))
	}
	return out, nil
}

func (h investmentServiceHandler) Get(ctx context.Context, id int64) (*domain.Investment, error) {
	investment, err := h.InvestmentRepository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if investment == nil {
		return nil, domain.NotFoundError{Kind: domain.KindInvestment}
	}

	out := investmentFromModel(*investment)
	return &out, nil
}

// Create inserts the investment and the row linking it to userID in one
// transaction.
func (h investmentServiceHandler) Create(ctx context.Context, in domain.InvestmentIn, userID int64) (int64, error) {
	tx, err := repository.BeginTx(ctx, h.Db)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	investment, err := h.InvestmentRepository.Add(ctx, tx, model.Investment{
		Amount:     in.Amount,
		StrategyID: in.StrategyID,
		Date:       in.Date,
	})
	if err != nil {
		return 0, err
	}

	_, err = h.UserRepository.AddInvestment(ctx, tx, model.InvestmentUser{
		UserID:       userID,
		InvestmentID: investment.ID,
	})
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit investment: %w", err)
	}

	logger.FromContext(ctx).Infof("created investment %d for user %d", investment.ID, userID)

	return investment.ID, nil
}

func investmentFromModel(m model.Investment) domain.Investment {
	return domain.Investment{
		ID:         m.ID,
		Amount:     m.Amount,
		StrategyID: m.StrategyID,
		Date:       m.Date,
	}
}
