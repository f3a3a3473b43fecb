package service

import (
	"context"
	"database/sql"
	"fmt"

	"investmentplanner/internal/db/models/postgres/public/model"
	"investmentplanner/internal/domain"
	"investmentplanner/internal/repository"
)

//go:generate mockgen -source=asset.service.go -destination=mocks/asset.service.go -package=mock_service

type AssetService interface {
	List(ctx context.Context, page repository.Page) ([]domain.Asset, error)
	Get(ctx context.Context, id int64) (*domain.Asset, error)
	Create(ctx context.Context, in domain.AssetIn) (int64, error)
	// CreateMany inserts every asset in one transaction and returns their
	// ids in input order. Nothing is inserted if any row fails.
	CreateMany(ctx context.Context, in []domain.AssetIn) ([]int64, error)
}

type assetServiceHandler struct {
	Db              *sql.DB
	AssetRepository repository.AssetRepository
}

func NewAssetService(db *sql.DB, assetRepository repository.AssetRepository) AssetService {
	return assetServiceHandler{
		Db:              db,
		AssetRepository: assetRepository,
	}
}

func (h assetServiceHandler) List(ctx context.Context, page repository.Page) ([]domain.Asset, error) {
	assets, err := h.AssetRepository.List(ctx, page)
	if err != nil {
		return nil, err
	}

	out := []domain.Asset{}
	for _, a := range assets {
		out = append(out, assetFromModel(a))
	}
	return out, nil
}

func (h assetServiceHandler) Get(ctx context.Context, id int64) (*domain.Asset, error) {
	asset, err := h.AssetRepository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.NotFoundError{Kind: domain.KindAsset}
	}

	out := assetFromModel(*asset)
	return &out, nil
}

func (h assetServiceHandler) Create(ctx context.Context, in domain.AssetIn) (int64, error) {
	asset, err := h.AssetRepository.Add(ctx, nil, assetToModel(in))
	if err != nil {
		return 0, err
	}
	return asset.ID, nil
}

func (h assetServiceHandler) CreateMany(ctx context.Context, in []domain.AssetIn) ([]int64, error) {
	tx, err := repository.BeginTx(ctx, h.Db)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	ids := []int64{}
	for i, a := range in {
		asset, err := h.AssetRepository.Add(ctx, tx, assetToModel(a))
		if err != nil {
			return nil, fmt.Errorf("failed to insert asset %d (%s): %w", i, a.Name, err)
		}
		ids = append(ids, asset.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit assets: %w", err)
	}

	return ids, nil
}

func assetToModel(in domain.AssetIn) model.Asset {
	return model.Asset{
		Name:       in.Name,
		Apr:        in.Apr,
		Risk:       int32(in.Risk),
		LocationID: in.LocationID,
	}
}

func assetFromModel(m model.Asset) domain.Asset {
	return domain.Asset{
		ID:         m.ID,
		Name:       m.Name,
		Apr:        m.Apr,
		Risk:       int(m.Risk),
		LocationID: m.LocationID,
	}
}
