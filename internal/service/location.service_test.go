package service

import (
	"context"
	"testing"

	"investmentplanner/internal/db/models/postgres/public/model"
	"investmentplanner/internal/domain"
	mock_repository "investmentplanner/internal/repository/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_locationServiceHandler(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	locationRepository := mock_repository.NewMockLocationRepository(ctrl)
	handler := NewLocationService(locationRepository)

	locationRepository.EXPECT().
		Add(gomock.Any(), gomock.Any(), model.Location{Name: "EU"}).
		Return(&model.Location{ID: 4, Name: "EU"}, nil)
	locationRepository.EXPECT().
		List(gomock.Any(), defaultPage).
		Return([]model.Location{}, nil)

	id, err := handler.Create(ctx, domain.LocationIn{Name: "EU"})
	require.NoError(t, err)
	require.Equal(t, int64(4), id)

	locations, err := handler.List(ctx, defaultPage)
	require.NoError(t, err)
	require.NotNil(t, locations)
	require.Empty(t, locations)
}
