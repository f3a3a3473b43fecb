package domain

import (
	"fmt"
	"time"
)

type Investment struct {
	ID         int64
	Amount     float64
	StrategyID int64
	Date       time.Time
}

type InvestmentIn struct {
	Amount     float64
	StrategyID int64
	Date       time.Time
}

func NewInvestmentIn(amount float64, strategyID int64, date time.Time) (*InvestmentIn, error) {
	if !(amount > 0) {
		return nil, ValidationError{Field: "amount", Reason: fmt.Sprintf("must be greater than 0, got %v", amount)}
	}
	if date.IsZero() {
		return nil, ValidationError{Field: "date", Reason: "is required"}
	}

	return &InvestmentIn{
		Amount:     amount,
		StrategyID: strategyID,
		Date:       date,
	}, nil
}
