package repository

import (
	"context"
	"database/sql"
	"fmt"

	"investmentplanner/internal/db/models/postgres/public/model"
	"investmentplanner/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

//go:generate mockgen -source=user.repository.go -destination=mocks/user.repository.go -package=mock_repository

type UserRepository interface {
	List(ctx context.Context, page Page) ([]model.UserAccount, error)
	GetWithInvestments(ctx context.Context, id int64) ([]domain.UserInvestmentRow, error)
	Add(ctx context.Context, tx *sql.Tx, u model.UserAccount) (*model.UserAccount, error)
	AddInvestment(ctx context.Context, tx *sql.Tx, link model.InvestmentUser) (*model.InvestmentUser, error)
	ListInvestmentLinks(ctx context.Context, page Page) ([]model.InvestmentUser, error)
}

type userRepositoryHandler struct {
	Db     *sql.DB
	Schema Schema
}

func NewUserRepository(db *sql.DB, schema Schema) UserRepository {
	return userRepositoryHandler{Db: db, Schema: schema}
}

func (h userRepositoryHandler) List(ctx context.Context, page Page) ([]model.UserAccount, error) {
	t := h.Schema.UserAccount
	query := t.SELECT(t.AllColumns).
		ORDER_BY(t.ID.ASC()).
		LIMIT(page.Take).
		OFFSET(page.Skip)

	out := []model.UserAccount{}
	err := query.QueryContext(ctx, h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", translateError(h.Db, err))
	}

	return out, nil
}

type userInvestmentRow struct {
	UserID       int64  `alias:"user_account.id"`
	Username     string `alias:"user_account.username"`
	InvestmentID *int64 `alias:"investment_user.investment_id"`
}

// GetWithInvestments returns one row per investment the user owns. A user
// that owns nothing still yields a single row with a nil investment id, so
// an empty result always means the user does not exist.
func (h userRepositoryHandler) GetWithInvestments(ctx context.Context, id int64) ([]domain.UserInvestmentRow, error) {
	u := h.Schema.UserAccount
	iu := h.Schema.InvestmentUser
	query := postgres.SELECT(
		u.ID,
		u.Username,
		iu.InvestmentID,
	).FROM(
		u.LEFT_JOIN(iu, iu.UserID.EQ(u.ID)),
	).WHERE(
		u.ID.EQ(postgres.Int64(id)),
	).ORDER_BY(
		iu.ID.ASC(),
	)

	rows, err := query.Rows(ctx, h.Db)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, translateError(h.Db, err))
	}
	defer rows.Close()

	out := []domain.UserInvestmentRow{}
	for rows.Next() {
		row := userInvestmentRow{}
		if err := rows.Scan(&row); err != nil {
			return nil, fmt.Errorf("failed to scan user investment row: %w", err)
		}
		out = append(out, domain.UserInvestmentRow{
			UserID:       row.UserID,
			Username:     row.Username,
			InvestmentID: row.InvestmentID,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user investment rows: %w", translateError(h.Db, err))
	}

	return out, nil
}

func (h userRepositoryHandler) Add(ctx context.Context, tx *sql.Tx, u model.UserAccount) (*model.UserAccount, error) {
	t := h.Schema.UserAccount
	query := t.INSERT(t.MutableColumns).
		MODEL(u).
		RETURNING(t.AllColumns)

	out := model.UserAccount{}
	err := query.QueryContext(ctx, queryable(h.Db, tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", translateError(h.Db, err))
	}

	return &out, nil
}

func (h userRepositoryHandler) AddInvestment(ctx context.Context, tx *sql.Tx, link model.InvestmentUser) (*model.InvestmentUser, error) {
	t := h.Schema.InvestmentUser
	query := t.INSERT(t.MutableColumns).
		MODEL(link).
		RETURNING(t.AllColumns)

	out := model.InvestmentUser{}
	err := query.QueryContext(ctx, queryable(h.Db, tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to link investment %d to user %d: %w", link.InvestmentID, link.UserID, translateError(h.Db, err))
	}

	return &out, nil
}

func (h userRepositoryHandler) ListInvestmentLinks(ctx context.Context, page Page) ([]model.InvestmentUser, error) {
	t := h.Schema.InvestmentUser
	query := t.SELECT(t.AllColumns).
		ORDER_BY(t.ID.ASC()).
		LIMIT(page.Take).
		OFFSET(page.Skip)

	out := []model.InvestmentUser{}
	err := query.QueryContext(ctx, h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list user investments: %w", translateError(h.Db, err))
	}

	return out, nil
}
