package request

import (
	"oficina_xpto/internal/domain/valueobjects"
	"oficina_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

// Prices accept JSON numbers or strings ("149.90").
type CreateCatalogServiceRequest struct {
	Name             string          `json:"name" binding:"required"`
	Price            decimal.Decimal `json:"price"`
	Currency         string          `json:"currency"`
	EstimatedMinutes int             `json:"estimated_minutes" binding:"gte=0"`
}

func (r CreateCatalogServiceRequest) ToInput() usecase.CreateCatalogServiceInput {
	return usecase.CreateCatalogServiceInput{
		Name:             r.Name,
		Price:            r.Price,
		Currency:         valueobjects.Currency(r.Currency),
		EstimatedMinutes: r.EstimatedMinutes,
	}
}

type CreatePartRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Stock    int             `json:"stock" binding:"gte=0"`
}

func (r CreatePartRequest) ToInput() usecase.CreatePartInput {
	return usecase.CreatePartInput{
		Name:     r.Name,
		Price:    r.Price,
		Currency: valueobjects.Currency(r.Currency),
		Stock:    r.Stock,
	}
}

type CreateMechanicRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
}

func (r CreateMechanicRequest) ToInput() usecase.CreateMechanicInput {
	return usecase.CreateMechanicInput{Name: r.Name, Specialty: r.Specialty}
}
