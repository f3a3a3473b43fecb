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

//go:generate mockgen -source=asset.repository.go -destination=mocks/asset.repository.go -package=mock_repository

type AssetRepository interface {
	List(ctx context.Context, page Page) ([]model.Asset, error)
	Get(ctx context.Context, id int64) (*model.Asset, error)
	Add(ctx context.Context, tx *sql.Tx, a model.Asset) (*model.Asset, error)
}

type assetRepositoryHandler struct {
	Db     *sql.DB
	Schema Schema
}

func NewAssetRepository(db *sql.DB, schema Schema) AssetRepository {
	return assetRepositoryHandler{Db: db, Schema: schema}
}

func (h assetRepositoryHandler) List(ctx context.Context, page Page) ([]model.Asset, error) {
	t := h.Schema.Asset
	query := t.SELECT(t.AllColumns).
		ORDER_BY(t.ID.ASC()).
		LIMIT(page.Take).
		OFFSET(page.Skip)

	out := []model.Asset{}
	err := query.QueryContext(ctx, h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", translateError(h.Db, err))
	}

	return out, nil
}

func (h assetRepositoryHandler) Get(ctx context.Context, id int64) (*model.Asset, error) {
	t := h.Schema.Asset
	query := t.SELECT(t.AllColumns).
		WHERE(t.ID.EQ(postgres.Int64(id)))

	out := model.Asset{}
	err := query.QueryContext(ctx, h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get asset %d: %w", id, translateError(h.Db, err))
	}

	return &out, nil
}

func (h assetRepositoryHandler) Add(ctx context.Context, tx *sql.Tx, a model.Asset) (*model.Asset, error) {
	t := h.Schema.Asset
	query := t.INSERT(t.MutableColumns).
		MODEL(a).
		RETURNING(t.AllColumns)

	out := model.Asset{}
	err := query.QueryContext(ctx, queryable(h.Db, tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert asset: %w", translateError(h.Db, err))
	}

	return &out, nil
}
