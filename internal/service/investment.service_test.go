package service

import (
	"context"
	"testing"

	"investmentplanner/internal/db/models/postgres/public/model"
	"investmentplanner/internal/domain"
	"investmentplanner/internal/repository"
	mock_repository "investmentplanner/internal/repository/mocks"
	"investmentplanner/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var defaultPage = repository.Page{Skip: 0, Take: 50}

func Test_investmentServiceHandler_Create(t *testing.T) {
	ctx := context.Background()
	date := util.NewDate(2024, 3, 1)
	in := domain.InvestmentIn{Amount: 1000, StrategyID: 2, Date: date}

	t.Run("inserts investment and user link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		investmentRepository := mock_repository.NewMockInvestmentRepository(ctrl)
		userRepository := mock_repository.NewMockUserRepository(ctrl)
		handler := NewInvestmentService(db, investmentRepository, userRepository)

		mock.ExpectBegin()
		investmentRepository.EXPECT().
			Add(gomock.Any(), gomock.Any(), model.Investment{Amount: 1000, StrategyID: 2, Date: date}).
			Return(&model.Investment{ID: 8, Amount: 1000, StrategyID: 2, Date: date}, nil)
		userRepository.EXPECT().
			AddInvestment(gomock.Any(), gomock.Any(), model.InvestmentUser{UserID: 5, InvestmentID: 8}).
			Return(&model.InvestmentUser{ID: 1, UserID: 5, InvestmentID: 8}, nil)
		mock.ExpectCommit()

		id, err := handler.Create(ctx, in, 5)
		require.NoError(t, err)
		require.Equal(t, int64(8), id)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user rolls back investment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		investmentRepository := mock_repository.NewMockInvestmentRepository(ctrl)
		userRepository := mock_repository.NewMockUserRepository(ctrl)
		handler := NewInvestmentService(db, investmentRepository, userRepository)

		mock.ExpectBegin()
		investmentRepository.EXPECT().
			Add(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&model.Investment{ID: 9}, nil)
		userRepository.EXPECT().
			AddInvestment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, domain.ConstraintViolationError{Constraint: "investment_user_user_id_fkey"})
		mock.ExpectRollback()

		_, err = handler.Create(ctx, in, 404)
		require.ErrorAs(t, err, &domain.ConstraintViolationError{})
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func Test_investmentServiceHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	investmentRepository := mock_repository.NewMockInvestmentRepository(ctrl)
	handler := NewInvestmentService(nil, investmentRepository, nil)

	investmentRepository.EXPECT().
		Get(gomock.Any(), int64(3)).
		Return(nil, nil)

	_, err := handler.Get(context.Background(), 3)
	require.ErrorIs(t, err, domain.NotFoundError{Kind: domain.KindInvestment})
}
