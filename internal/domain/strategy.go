package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Allocation maps an asset id to the fraction of the strategy's capital
// assigned to it. Fractions need not sum to exactly 1; whatever is left is
// held as cash.
type Allocation map[int64]float64

type BaseStrategy struct {
	ID   int64
	Date time.Time
}

type Strategy struct {
	ID         int64
	Date       time.Time
	Allocation Allocation
}

type StrategyIn struct {
	Date       time.Time
	Allocation Allocation
}

func NewStrategyIn(date time.Time, allocation Allocation) (*StrategyIn, error) {
	if date.IsZero() {
		return nil, ValidationError{Field: "date", Reason: "is required"}
	}
	if err := allocation.Validate(); err != nil {
		return nil, err
	}
	if allocation == nil {
		allocation = Allocation{}
	}

	return &StrategyIn{
		Date:       date,
		Allocation: allocation,
	}, nil
}

// NewStrategy builds a stored strategy. It runs the same allocation checks as
// NewStrategyIn so rows read back from storage are held to the same rules.
func NewStrategy(id int64, date time.Time, allocation Allocation) (*Strategy, error) {
	if err := allocation.Validate(); err != nil {
		return nil, err
	}
	if allocation == nil {
		allocation = Allocation{}
	}

	return &Strategy{
		ID:         id,
		Date:       date,
		Allocation: allocation,
	}, nil
}

// Validate rejects negative fractions and any allocation whose fractions sum
// to more than 1. The sum is taken in decimal so that e.g. 0.1+0.2+0.7 is
// exactly 1.
func (a Allocation) Validate() error {
	total := decimal.Zero
	for assetID, fraction := range a {
		if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
			return ValidationError{Field: "allocation", Reason: fmt.Sprintf("asset %d has a non-finite allocation", assetID)}
		}
		if fraction < 0 {
			return ValidationError{Field: "allocation", Reason: fmt.Sprintf("asset %d has negative allocation %v", assetID, fraction)}
		}
		total = total.Add(decimal.NewFromFloat(fraction))
	}

	if total.GreaterThan(decimal.NewFromInt(1)) {
		return ValidationError{Field: "allocation", Reason: fmt.Sprintf("allocations must sum to at most 1, got %s", total.String())}
	}

	return nil
}
