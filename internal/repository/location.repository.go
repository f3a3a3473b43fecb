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

//go:generate mockgen -source=location.repository.go -destination=mocks/location.repository.go -package=mock_repository

type LocationRepository interface {
	List(ctx context.Context, page Page) ([]model.Location, error)
	Get(ctx context.Context, id int64) (*model.Location, error)
	Add(ctx context.Context, tx *sql.Tx, l model.Location) (*model.Location, error)
}

type locationRepositoryHandler struct {
	Db     *sql.DB
	Schema Schema
}

func NewLocationRepository(db *sql.DB, schema Schema) LocationRepository {
	return locationRepositoryHandler{Db: db, Schema: schema}
}

func (h locationRepositoryHandler) List(ctx context.Context, page Page) ([]model.Location, error) {
	t := h.Schema.Location
	query := t.SELECT(t.AllColumns).
		ORDER_BY(t.ID.ASC()).
		LIMIT(page.Take).
		OFFSET(page.Skip)

	out := []model.Location{}
	err := query.QueryContext(ctx, h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", translateError(h.Db, err))
	}

	return out, nil
}

// Get returns nil, nil when no location has the given id.
func (h locationRepositoryHandler) Get(ctx context.Context, id int64) (*model.Location, error) {
	t := h.Schema.Location
	query := t.SELECT(t.AllColumns).
		WHERE(t.ID.EQ(postgres.Int64(id)))

	out := model.Location{}
	err := query.QueryContext(ctx, h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get location %d: %w", id, translateError(h.Db, err))
	}

	return &out, nil
}

func (h locationRepositoryHandler) Add(ctx context.Context, tx *sql.Tx, l model.Location) (*model.Location, error) {
	t := h.Schema.Location
	query := t.INSERT(t.MutableColumns).
		MODEL(l).
		RETURNING(t.AllColumns)

	out := model.Location{}
	err := query.QueryContext(ctx, queryable(h.Db, tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert location: %w", translateError(h.Db, err))
	}

	return &out, nil
}
