package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type BudgetItemResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	ServiceID   string `json:"service_id,omitempty"`
	PartID      string `json:"part_id,omitempty"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Total       string `json:"total"`
}

type BudgetResponse struct {
	ID             string               `json:"id"`
	ServiceOrderID string               `json:"service_order_id"`
	CustomerID     string               `json:"customer_id"`
	Items          []BudgetItemResponse `json:"items"`
	Subtotal       string               `json:"subtotal"`
	Taxes          string               `json:"taxes"`
	Discount       string               `json:"discount"`
	Total          string               `json:"total"`
	ValidUntil     time.Time            `json:"valid_until"`
	Status         string               `json:"status"`
	SentAt         *time.Time           `json:"sent_at,omitempty"`
	ApprovedAt     *time.Time           `json:"approved_at,omitempty"`
	RejectedAt     *time.Time           `json:"rejected_at,omitempty"`
	ExpiredAt      *time.Time           `json:"expired_at,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
	Version        int64                `json:"version"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	res := BudgetResponse{
		ID:             b.ID,
		ServiceOrderID: b.ServiceOrderID,
		CustomerID:     b.CustomerID,
		Items:          make([]BudgetItemResponse, 0, len(b.Items)),
		Subtotal:       b.Subtotal.StringFixed(2),
		Taxes:          b.Taxes.StringFixed(2),
		Discount:       b.Discount.StringFixed(2),
		Total:          b.Total.StringFixed(2),
		ValidUntil:     b.ValidUntil,
		Status:         string(b.Status),
		SentAt:         b.SentAt,
		ApprovedAt:     b.ApprovedAt,
		RejectedAt:     b.RejectedAt,
		ExpiredAt:      b.ExpiredAt,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
		Version:        b.Version,
	}
	for _, it := range b.Items {
		item := BudgetItemResponse{
			ID:          it.ID,
			Type:        string(it.Type()),
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.StringFixed(2),
			Total:       it.Total.StringFixed(2),
		}
		item.ServiceID, _ = it.ServiceID()
		item.PartID, _ = it.PartID()
		res.Items = append(res.Items, item)
	}
	return res
}

func FromBudgets(budgets []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromBudget(b))
	}
	return out
}

type ExpireBudgetsResponse struct {
	Expired int `json:"expired"`
}
