package service

import (
	"context"

	"investmentplanner/internal/db/models/postgres/public/model"
	"investmentplanner/internal/domain"
	"investmentplanner/internal/repository"
)

//go:generate mockgen -source=location.service.go -destination=mocks/location.service.go -package=mock_service

type LocationService interface {
	List(ctx context.Context, page repository.Page) ([]domain.Location, error)
	Get(ctx context.Context, id int64) (*domain.Location, error)
	Create(ctx context.Context, in domain.LocationIn) (int64, error)
}

type locationServiceHandler struct {
	LocationRepository repository.LocationRepository
}

func NewLocationService(locationRepository repository.LocationRepository) LocationService {
	return locationServiceHandler{
		LocationRepository: locationRepository,
	}
}

func (h locationServiceHandler) List(ctx context.Context, page repository.Page) ([]domain.Location, error) {
	locations, err := h.LocationRepository.List(ctx, page)
	if err != nil {
		return nil, err
	}

	out := []domain.Location{}
	for _, l := range locations {
		out = append(out, locationFromModel(l))
	}
	return out, nil
}

func (h locationServiceHandler) Get(ctx context.Context, id int64) (*domain.Location, error) {
	location, err := h.LocationRepository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.NotFoundError{Kind: domain.KindLocation}
	}

	out := locationFromModel(*location)
	return &out, nil
}

func (h locationServiceHandler) Create(ctx context.Context, in domain.LocationIn) (int64, error) {
	location, err := h.LocationRepository.Add(ctx, nil, model.Location{
		Name: in.Name,
	})
	if err != nil {
		return 0, err
	}
	return location.ID, nil
}

func locationFromModel(m model.Location) domain.Location {
	return domain.Location{
		ID:   m.ID,
		Name: m.Name,
	}
}
