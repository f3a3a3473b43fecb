package service

import (
	"context"
	"fmt"

	"investmentplanner/internal/db/models/postgres/public/model"
	"investmentplanner/internal/domain"
	"investmentplanner/internal/repository"
)

//go:generate mockgen -source=user.service.go -destination=mocks/user.service.go -package=mock_service

type UserService interface {
	List(ctx context.Context, page repository.Page) ([]domain.UserSummary, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, in domain.UserIn) (int64, error)
	ListInvestments(ctx context.Context, page repository.Page) ([]domain.UserInvestments, error)
}

type userServiceHandler struct {
	UserRepository repository.UserRepository
}

func NewUserService(userRepository repository.UserRepository) UserService {
	return userServiceHandler{
		UserRepository: userRepository,
	}
}

func (h userServiceHandler) List(ctx context.Context, page repository.Page) ([]domain.UserSummary, error) {
	users, err := h.UserRepository.List(ctx, page)
	if err != nil {
		return nil, err
	}

	out := []domain.UserSummary{}
	for _, u := range users {
		out = append(out, domain.UserSummary{
			ID:       u.ID,
			Username: u.Username,
		})
	}
	return out, nil
}

func (h userServiceHandler) Get(ctx context.Context, id int64) (*domain.User, error) {
	rows, err := h.UserRepository.GetWithInvestments(ctx, id)
	if err != nil {
		return nil, err
	}

	user, err := domain.NewUserFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to build user %d: %w", id, err)
	}
	return user, nil
}

func (h userServiceHandler) Create(ctx context.Context, in domain.UserIn) (int64, error) {
	user, err := h.UserRepository.Add(ctx, nil, model.UserAccount{
		Username: in.Username,
	})
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// ListInvestments pages over the user/investment links and groups them per
// user.
func (h userServiceHandler) ListInvestments(ctx context.Context, page repository.Page) ([]domain.UserInvestments, error) {
	links, err := h.UserRepository.ListInvestmentLinks(ctx, page)
	if err != nil {
		return nil, err
	}

	in := []domain.UserInvestmentLink{}
	for _, l := range links {
		in = append(in, domain.UserInvestmentLink{
			UserID:       l.UserID,
			InvestmentID: l.InvestmentID,
		})
	}

	return domain.GroupInvestmentsByUser(in), nil
}
