package request

import (
	"strings"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
)

type CreateServiceOrderRequest struct {
	CustomerID  string `json:"customer_id" binding:"required"`
	VehicleID   string `json:"vehicle_id" binding:"required"`
	Description string `json:"description"`
}

func (r CreateServiceOrderRequest) ToInput() usecase.CreateServiceOrderInput {
	return usecase.CreateServiceOrderInput{
		CustomerID:  r.CustomerID,
		VehicleID:   r.VehicleID,
		Description: r.Description,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// ResolveStatus normalises case so "in_progress" and "IN_PROGRESS" match.
func (r ChangeStatusRequest) ResolveStatus() entities.ServiceOrderStatus {
	return entities.ServiceOrderStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}

// LineItemRequest adds a catalog service or part to an order.
type LineItemRequest struct {
	ID       string `json:"id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type AssignMechanicRequest struct {
	MechanicID string `json:"mechanic_id" binding:"required"`
}

type UpdateDiagnosisRequest struct {
	Diagnosis string `json:"diagnosis" binding:"required"`
}
