package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAssetIn(t *testing.T) {
	t.Run("accepts bounds", func(t *testing.T) {
		for _, apr := range []float64{0, 0.035, 1} {
			for risk := MinAssetRisk; risk <= MaxAssetRisk; risk++ {
				_, err := NewAssetIn("bond", apr, risk, nil)
				require.NoError(t, err, "apr=%v risk=%d", apr, risk)
			}
		}
	})

	t.Run("rejects apr out of range", func(t *testing.T) {
		for _, apr := range []float64{-0.01, 1.01, math.NaN()} {
			_, err := NewAssetIn("bond", apr, 3, nil)
			require.Error(t, err)

			var validationErr ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, "apr", validationErr.Field)
		}
	})

	t.Run("rejects risk out of range", func(t *testing.T) {
		for _, risk := range []int{0, 7} {
			_, err := NewAssetIn("bond", 0.5, risk, nil)

			var validationErr ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, "risk", validationErr.Field)
		}
	})

	t.Run("keeps location", func(t *testing.T) {
		locationID := int64(4)
		in, err := NewAssetIn("etf", 0.07, 5, &locationID)
		require.NoError(t, err)
		require.Equal(t, &AssetIn{Name: "etf", Apr: 0.07, Risk: 5, LocationID: &locationID}, in)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewAssetIn("  ", 0.07, 5, nil)
		require.ErrorAs(t, err, &ValidationError{})
	})
}
