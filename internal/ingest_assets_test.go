package internal

import (
	"context"
	"strings"
	"testing"

	"investmentplanner/internal/domain"
	mock_service "investmentplanner/internal/service/mocks"
	"investmentplanner/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseAssetsCsv(t *testing.T) {
	t.Run("valid rows", func(t *testing.T) {
		csv := "name,apr,risk,location_id\n" +
			"bond,0.04,2,3\n" +
			"stock,0.09,5,\n"

		assets, err := ParseAssetsCsv(strings.NewReader(csv))
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff([]domain.AssetIn{
			{Name: "bond", Apr: 0.04, Risk: 2, LocationID: util.Int64Pointer(3)},
			{Name: "stock", Apr: 0.09, Risk: 5},
		}, assets))
	})

	t.Run("reports the offending line", func(t *testing.T) {
		csv := "name,apr,risk,location_id\n" +
			"bond,0.04,2,\n" +
			"junk,1.5,2,\n"

		_, err := ParseAssetsCsv(strings.NewReader(csv))
		require.ErrorContains(t, err, "line 3")
		require.ErrorAs(t, err, &domain.ValidationError{})
	})

	t.Run("non-integer location", func(t *testing.T) {
		csv := "name,apr,risk,location_id\n" +
			"bond,0.04,2,eu\n"

		_, err := ParseAssetsCsv(strings.NewReader(csv))
		require.ErrorContains(t, err, "invalid location_id")
	})
}

func TestIngestAssets(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid file never reaches the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetService := mock_service.NewMockAssetService(ctrl)

		_, err := IngestAssets(ctx, strings.NewReader("name,apr,risk,location_id\nx,0.1,9,\n"), assetService)
		require.Error(t, err)
	})

	t.Run("inserts all rows at once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetService := mock_service.NewMockAssetService(ctrl)

		assetService.EXPECT().
			CreateMany(gomock.Any(), []domain.AssetIn{
				{Name: "a", Apr: 0.01, Risk: 1},
				{Name: "b", Apr: 0.02, Risk: 2},
			}).
			Return([]int64{1, 2}, nil)

		ids, err := IngestAssets(ctx, strings.NewReader("name,apr,risk,location_id\na,0.01,1,\nb,0.02,2,\n"), assetService)
		require.NoError(t, err)
		require.Equal(t, []int64{1, 2}, ids)
	})
}
