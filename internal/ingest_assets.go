package internal

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"investmentplanner/internal/domain"
	"investmentplanner/internal/logger"
	"investmentplanner/internal/service"

	"github.com/gocarina/gocsv"
)

type assetCsvRow struct {
	Name       string  `csv:"name"`
	Apr        float64 `csv:"apr"`
	Risk       int     `csv:"risk"`
	LocationID string  `csv:"location_id"`
}

// ParseAssetsCsv reads name,apr,risk,location_id rows and validates every one
// of them. location_id may be blank.
func ParseAssetsCsv(r io.Reader) ([]domain.AssetIn, error) {
	rows := []assetCsvRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse assets csv: %w", err)
	}

	out := []domain.AssetIn{}
	for i, row := range rows {
		// header is line 1
		line := i + 2

		var locationID *int64
		if s := strings.TrimSpace(row.LocationID); s != "" {
			id, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, domain.ValidationError{Field: "location_id", Reason: "must be an integer"})
			}
			locationID = &id
		}

		in, err := domain.NewAssetIn(row.Name, row.Apr, row.Risk, locationID)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, *in)
	}

	return out, nil
}

// IngestAssets inserts every asset in the csv or none of them.
func IngestAssets(ctx context.Context, r io.Reader, assetService service.AssetService) ([]int64, error) {
	assets, err := ParseAssetsCsv(r)
	if err != nil {
		return nil, err
	}
	if len(assets) == 0 {
		return []int64{}, nil
	}

	ids, err := assetService.CreateMany(ctx, assets)
	if err != nil {
		return nil, fmt.Errorf("failed to ingest assets: %w", err)
	}

	logger.FromContext(ctx).Infof("ingested %d assets", len(ids))

	return ids, nil
}
