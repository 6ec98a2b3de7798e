package services

import (
	"errors"
	"fmt"
	"time"

	"oficina_xpto/internal/domain/valueobjects"

	"github.com/shopspring/decimal"
)

const DefaultWorkingHoursPerDay = 8

var (
	ErrInvalidPercentage  = errors.New("invalid percentage")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidWorkingTime = errors.New("invalid working time")
)

var hundred = decimal.NewFromInt(100)

// PricedItem is one line handed to the pricing service.
type PricedItem struct {
	UnitPrice valueobjects.Money
	Quantity  int
}

// TimedItem is one service line with its per-unit estimate.
type TimedItem struct {
	EstimatedMinutes int
	Quantity         int
}

// PricingInput percentages are expressed as 0..100; zero means "not applied".
type PricingInput struct {
	Services           []PricedItem
	Parts              []PricedItem
	DiscountPercentage decimal.Decimal
	TaxPercentage      decimal.Decimal
	Currency           valueobjects.Currency
}

type PriceSummary struct {
	SubtotalServices valueobjects.Money
	SubtotalParts    valueobjects.Money
	Subtotal         valueobjects.Money
	DiscountAmount   valueobjects.Money
	TaxAmount        valueobjects.Money
	TotalAmount      valueobjects.Money
}

type IPricingService interface {
	Calculate(in PricingInput) (PriceSummary, error)
	CalculateEstimatedTime(items []TimedItem) (int, error)
	CalculateEstimatedCompletionDate(start time.Time, estimatedMinutes, workingHoursPerDay int) (time.Time, error)
}

// PricingService is stateless; the zero value is ready to use.
type PricingService struct{}

var _ IPricingService = PricingService{}

func NewPricingService() PricingService {
	return PricingService{}
}

// Calculate derives the summary of a set of lines. Tax is charged on the
// discounted subtotal, and a discount larger than the subtotal fails with
// valueobjects.ErrInvalidAmount.
func (PricingService) Calculate(in PricingInput) (PriceSummary, error) {
	if err := validPercentage(in.DiscountPercentage); err != nil {
		return PriceSummary{}, err
	}
	if err := validPercentage(in.TaxPercentage); err != nil {
		return PriceSummary{}, err
	}

	cur := in.Currency
	if cur == "" {
		cur = valueobjects.DefaultCurrency
	}

	subtotalServices, err := sumLines(cur, in.Services)
	if err != nil {
		return PriceSummary{}, err
	}
	subtotalParts, err := sumLines(cur, in.Parts)
	if err != nil {
		return PriceSummary{}, err
	}
	subtotal, err := subtotalServices.Add(subtotalParts)
	if err != nil {
		return PriceSummary{}, err
	}

	discount := valueobjects.ZeroMoney(cur)
	if !in.DiscountPercentage.IsZero() {
		if discount, err = subtotal.Multiply(in.DiscountPercentage.Div(hundred)); err != nil {
			return PriceSummary{}, err
		}
	}
	taxable, err := subtotal.Subtract(discount)
	if err != nil {
		return PriceSummary{}, err
	}

	tax := valueobjects.ZeroMoney(cur)
	if !in.TaxPercentage.IsZero() {
		if tax, err = taxable.Multiply(in.TaxPercentage.Div(hundred)); err != nil {
			return PriceSummary{}, err
		}
	}
	total, err := taxable.Add(tax)
	if err != nil {
		return PriceSummary{}, err
	}

	return PriceSummary{
		SubtotalServices: subtotalServices,
		SubtotalParts:    subtotalParts,
		Subtotal:         subtotal,
		DiscountAmount:   discount,
		TaxAmount:        tax,
		TotalAmount:      total,
	}, nil
}

// CalculateEstimatedTime returns the total estimated minutes of the items.
func (PricingService) CalculateEstimatedTime(items []TimedItem) (int, error) {
	total := 0
	for _, it := range items {
		if it.Quantity <= 0 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidQuantity, it.Quantity)
		}
		if it.EstimatedMinutes < 0 {
			return 0, fmt.Errorf("%w: negative estimate", ErrInvalidWorkingTime)
		}
		total += it.EstimatedMinutes * it.Quantity
	}
	return total, nil
}

// CalculateEstimatedCompletionDate adds the calendar days needed to work
// estimatedMinutes at workingHoursPerDay (8 when <= 0). Weekends and holidays
// are not skipped.
func (PricingService) CalculateEstimatedCompletionDate(start time.Time, estimatedMinutes, workingHoursPerDay int) (time.Time, error) {
	if estimatedMinutes < 0 {
		return time.Time{}, fmt.Errorf("%w: negative estimate", ErrInvalidWorkingTime)
	}
	if workingHoursPerDay <= 0 {
		workingHoursPerDay = DefaultWorkingHoursPerDay
	}
	minutesPerDay := workingHoursPerDay * 60
	days := (estimatedMinutes + minutesPerDay - 1) / minutesPerDay
	return start.AddDate(0, 0, days), nil
}

func sumLines(cur valueobjects.Currency, items []PricedItem) (valueobjects.Money, error) {
	total := valueobjects.ZeroMoney(cur)
	for _, it := range items {
		if it.Quantity <= 0 {
			return valueobjects.Money{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, it.Quantity)
		}
		line, err := it.UnitPrice.Multiply(decimal.NewFromInt(int64(it.Quantity)))
		if err != nil {
			return valueobjects.Money{}, err
		}
		if total, err = total.Add(line); err != nil {
			return valueobjects.Money{}, err
		}
	}
	return total, nil
}

func validPercentage(p decimal.Decimal) error {
	if p.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidPercentage, p.String())
	}
	return nil
}
