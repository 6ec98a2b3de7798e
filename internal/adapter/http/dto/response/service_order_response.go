package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/services"
)

type LineItemResponse struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Quantity   int           `json:"quantity"`
	UnitPrice  MoneyResponse `json:"unit_price"`
	TotalPrice MoneyResponse `json:"total_price"`
}

type StatusHistoryResponse struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
	Notes     string    `json:"notes,omitempty"`
}

type ServiceOrderResponse struct {
	ID          string                  `json:"id"`
	OrderNumber string                  `json:"order_number"`
	CustomerID  string                  `json:"customer_id"`
	VehicleID   string                  `json:"vehicle_id"`
	MechanicID  string                  `json:"mechanic_id,omitempty"`
	Status      string                  `json:"status"`
	Description string                  `json:"description,omitempty"`
	Diagnosis   string                  `json:"diagnosis,omitempty"`
	Services    []LineItemResponse      `json:"services"`
	Parts       []LineItemResponse      `json:"parts"`
	History     []StatusHistoryResponse `json:"history"`
	Total       *MoneyResponse          `json:"total,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	StartedAt   *time.Time              `json:"started_at,omitempty"`
	CompletedAt *time.Time              `json:"completed_at,omitempty"`
	DeliveredAt *time.Time              `json:"delivered_at,omitempty"`
	UpdatedAt   time.Time               `json:"updated_at"`
	Version     int64                   `json:"version"`
}

// FromServiceOrder omits Total when the line items mix currencies.
func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	res := ServiceOrderResponse{
		ID:          o.ID(),
		OrderNumber: o.OrderNumber(),
		CustomerID:  o.CustomerID(),
		VehicleID:   o.VehicleID(),
		MechanicID:  o.MechanicID(),
		Status:      string(o.Status()),
		Description: o.Description(),
		Diagnosis:   o.Diagnosis(),
		Services:    make([]LineItemResponse, 0, len(o.Services())),
		Parts:       make([]LineItemResponse, 0, len(o.Parts())),
		History:     make([]StatusHistoryResponse, 0, len(o.History())),
		CreatedAt:   o.CreatedAt(),
		StartedAt:   o.StartedAt(),
		CompletedAt: o.CompletedAt(),
		DeliveredAt: o.DeliveredAt(),
		UpdatedAt:   o.UpdatedAt(),
		Version:     o.Version(),
	}
	for _, s := range o.Services() {
		res.Services = append(res.Services, LineItemResponse{
			ID:         s.ServiceID,
			Name:       s.Name,
			Quantity:   s.Quantity,
			UnitPrice:  FromMoney(s.UnitPrice),
			TotalPrice: FromMoney(s.TotalPrice),
		})
	}
	for _, p := range o.Parts() {
		res.Parts = append(res.Parts, LineItemResponse{
			ID:         p.PartID,
			Name:       p.Name,
			Quantity:   p.Quantity,
			UnitPrice:  FromMoney(p.UnitPrice),
			TotalPrice: FromMoney(p.TotalPrice),
		})
	}
	for _, h := range o.History() {
		res.History = append(res.History, StatusHistoryResponse{
			Status:    string(h.Status),
			ChangedAt: h.ChangedAt,
			Notes:     h.Notes,
		})
	}
	if total, err := o.TotalPrice(); err == nil {
		m := FromMoney(total)
		res.Total = &m
	}
	return res
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}

type PriceSummaryResponse struct {
	SubtotalServices MoneyResponse `json:"subtotal_services"`
	SubtotalParts    MoneyResponse `json:"subtotal_parts"`
	Subtotal         MoneyResponse `json:"subtotal"`
	Discount         MoneyResponse `json:"discount"`
	Tax              MoneyResponse `json:"tax"`
	Total            MoneyResponse `json:"total"`
}

func FromPriceSummary(s services.PriceSummary) PriceSummaryResponse {
	return PriceSummaryResponse{
		SubtotalServices: FromMoney(s.SubtotalServices),
		SubtotalParts:    FromMoney(s.SubtotalParts),
		Subtotal:         FromMoney(s.Subtotal),
		Discount:         FromMoney(s.DiscountAmount),
		Tax:              FromMoney(s.TaxAmount),
		Total:            FromMoney(s.TotalAmount),
	}
}

type EstimatedCompletionResponse struct {
	ServiceOrderID      string    `json:"service_order_id"`
	EstimatedCompletion time.Time `json:"estimated_completion"`
}
