package usecase

import (
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/services"

	"github.com/shopspring/decimal"
)

// BudgetPolicy holds the business limits applied when a budget is created.
type BudgetPolicy struct {
	TaxRate          decimal.Decimal
	DefaultValidDays int
	MinValidDays     int
	MaxValidDays     int
	MinItems         int
	MaxItems         int
}

func DefaultBudgetPolicy() BudgetPolicy {
	return BudgetPolicy{
		TaxRate:          entities.DefaultBudgetTaxRate,
		DefaultValidDays: entities.DefaultBudgetValidDays,
		MinValidDays:     1,
		MaxValidDays:     90,
		MinItems:         1,
		MaxItems:         50,
	}
}

// ServiceOrderPolicy configures order numbering and scheduling estimates.
type ServiceOrderPolicy struct {
	OrderNumberTemplate string
	WorkingHoursPerDay  int
	// Percentages (0..100) used by PriceSummary.
	DiscountPercentage decimal.Decimal
	TaxPercentage      decimal.Decimal
}

func DefaultServiceOrderPolicy() ServiceOrderPolicy {
	return ServiceOrderPolicy{
		OrderNumberTemplate: entities.DefaultOrderNumberTemplate,
		WorkingHoursPerDay:  services.DefaultWorkingHoursPerDay,
		TaxPercentage:       entities.DefaultBudgetTaxRate.Mul(decimal.NewFromInt(100)),
	}
}
