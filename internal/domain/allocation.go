package domain

import (
	"fmt"
	"time"
)

// StrategyAllocationRow is one row of the strategy / asset_strategy join.
// AssetID and Allocation are nil when the strategy has no allocation rows.
type StrategyAllocationRow struct {
	StrategyID int64
	Date       time.Time
	AssetID    *int64
	Allocation *float64
}

// AggregateStrategy folds the joined rows of a single strategy back into a
// Strategy. The date comes from the first row; a repeated asset id keeps the
// last fraction seen. No rows means the strategy does not exist. Rows that
// fail revalidation yield ErrInvalidStoredData rather than a ValidationError.
func AggregateStrategy(rows []StrategyAllocationRow) (*Strategy, error) {
	if len(rows) == 0 {
		return nil, NotFoundError{Kind: KindStrategy}
	}

	allocation := Allocation{}
	for _, row := range rows {
		if row.AssetID == nil || row.Allocation == nil {
			continue
		}
		allocation[*row.AssetID] = *row.Allocation
	}

	strategy, err := NewStrategy(rows[0].StrategyID, rows[0].Date, allocation)
	if err != nil {
		return nil, fmt.Errorf("%w: strategy %d: %s", ErrInvalidStoredData, rows[0].StrategyID, err.Error())
	}

	return strategy, nil
}
