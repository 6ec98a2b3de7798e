package request

import (
	"strings"

	"oficina_xpto/internal/usecase"
)

type CreateBudgetRequest struct {
	ServiceOrderID string `json:"service_order_id" binding:"required"`
	ValidDays      int    `json:"valid_days" binding:"gte=0"`
}

func (r CreateBudgetRequest) ToInput() usecase.CreateBudgetInput {
	return usecase.CreateBudgetInput{
		ServiceOrderID: strings.TrimSpace(r.ServiceOrderID),
		ValidDays:      r.ValidDays,
	}
}
