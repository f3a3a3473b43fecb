package domain

import (
	"fmt"
	"strings"
)

const (
	MinAssetRisk = 1
	MaxAssetRisk = 6
)

type Asset struct {
	ID         int64
	Name       string
	Apr        float64
	Risk       int
	LocationID *int64
}

type AssetIn struct {
	Name       string
	Apr        float64
	Risk       int
	LocationID *int64
}

// NewAssetIn validates apr in [0, 1] and risk in [1, 6], both inclusive.
func NewAssetIn(name string, apr float64, risk int, locationID *int64) (*AssetIn, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ValidationError{Field: "name", Reason: "must not be empty"}
	}
	// written this way so NaN is rejected too
	if !(apr >= 0 && apr <= 1) {
		return nil, ValidationError{Field: "apr", Reason: fmt.Sprintf("must be between 0 and 1, got %v", apr)}
	}
	if risk < MinAssetRisk || risk > MaxAssetRisk {
		return nil, ValidationError{Field: "risk", Reason: fmt.Sprintf("must be between %d and %d, got %d", MinAssetRisk, MaxAssetRisk, risk)}
	}

	return &AssetIn{
		Name:       name,
		Apr:        apr,
		Risk:       risk,
		LocationID: locationID,
	}, nil
}
