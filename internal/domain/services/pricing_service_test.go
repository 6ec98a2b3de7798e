package services

import (
	"errors"
	"testing"
	"time"

	"oficina_xpto/internal/domain/valueobjects"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, v string) valueobjects.Money {
	t.Helper()
	m, err := valueobjects.NewMoney(decimal.RequireFromString(v), valueobjects.CurrencyBRL)
	require.NoError(t, err)
	return m
}

func TestPricingService_Calculate(t *testing.T) {
	svc := NewPricingService()

	t.Run("tax applies after discount", func(t *testing.T) {
		got, err := svc.Calculate(PricingInput{
			Services:           []PricedItem{{UnitPrice: money(t, "100"), Quantity: 1}},
			DiscountPercentage: decimal.NewFromInt(10),
			TaxPercentage:      decimal.NewFromInt(10),
		})
		require.NoError(t, err)

		assert.Equal(t, "100", got.Subtotal.Amount().String())
		assert.Equal(t, "10", got.DiscountAmount.Amount().String())
		assert.Equal(t, "9", got.TaxAmount.Amount().String())
		assert.Equal(t, "99", got.TotalAmount.Amount().String())
	})

	t.Run("services and parts without percentages", func(t *testing.T) {
		got, err := svc.Calculate(PricingInput{
			Services: []PricedItem{{UnitPrice: money(t, "150"), Quantity: 2}},
			Parts: []PricedItem{
				{UnitPrice: money(t, "12.35"), Quantity: 3},
				{UnitPrice: money(t, "0.99"), Quantity: 1},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "300", got.SubtotalServices.Amount().String())
		assert.Equal(t, "38.04", got.SubtotalParts.Amount().String())
		assert.Equal(t, "338.04", got.Subtotal.Amount().String())
		assert.True(t, got.DiscountAmount.IsZero())
		assert.True(t, got.TaxAmount.IsZero())
		assert.True(t, got.TotalAmount.Equals(got.Subtotal))
	})

	t.Run("empty input is zero", func(t *testing.T) {
		got, err := svc.Calculate(PricingInput{})
		require.NoError(t, err)
		assert.True(t, got.TotalAmount.IsZero())
		assert.Equal(t, valueobjects.CurrencyBRL, got.TotalAmount.Currency())
	})

	t.Run("discount above subtotal", func(t *testing.T) {
		_, err := svc.Calculate(PricingInput{
			Services:           []PricedItem{{UnitPrice: money(t, "100"), Quantity: 1}},
			DiscountPercentage: decimal.NewFromInt(120),
		})
		assert.True(t, errors.Is(err, valueobjects.ErrInvalidAmount))
	})

	t.Run("negative percentage", func(t *testing.T) {
		_, err := svc.Calculate(PricingInput{TaxPercentage: decimal.NewFromInt(-5)})
		assert.True(t, errors.Is(err, ErrInvalidPercentage))
	})

	t.Run("currency mismatch", func(t *testing.T) {
		usd, err := valueobjects.NewMoneyFromFloat(10, valueobjects.CurrencyUSD)
		require.NoError(t, err)
		_, err = svc.Calculate(PricingInput{Services: []PricedItem{{UnitPrice: usd, Quantity: 1}}})
		assert.True(t, errors.Is(err, valueobjects.ErrCurrencyMismatch))
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := svc.Calculate(PricingInput{Parts: []PricedItem{{UnitPrice: money(t, "1"), Quantity: 0}}})
		assert.True(t, errors.Is(err, ErrInvalidQuantity))
	})
}

func TestPricingService_CalculateEstimatedTime(t *testing.T) {
	svc := NewPricingService()

	got, err := svc.CalculateEstimatedTime([]TimedItem{
		{EstimatedMinutes: 45, Quantity: 2},
		{EstimatedMinutes: 30, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 120, got)

	got, err = svc.CalculateEstimatedTime(nil)
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = svc.CalculateEstimatedTime([]TimedItem{{EstimatedMinutes: 10, Quantity: 0}})
	assert.True(t, errors.Is(err, ErrInvalidQuantity))
}

func TestPricingService_CalculateEstimatedCompletionDate(t *testing.T) {
	svc := NewPricingService()
	start := time.Date(2026, 5, 29, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		minutes int
		hours   int
		want    time.Time
	}{
		{"no work", 0, 8, start},
		{"one minute rounds up", 1, 8, start.AddDate(0, 0, 1)},
		{"exactly one day", 480, 8, start.AddDate(0, 0, 1)},
		{"just over one day", 481, 8, start.AddDate(0, 0, 2)},
		{"default hours", 960, 0, start.AddDate(0, 0, 2)},
		{"short days", 600, 4, start.AddDate(0, 0, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.CalculateEstimatedCompletionDate(start, tc.minutes, tc.hours)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := svc.CalculateEstimatedCompletionDate(start, -1, 8)
	assert.True(t, errors.Is(err, ErrInvalidWorkingTime))
}
