package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// The application must be able to:
//   - create a budget for a service order
//   - find the budgets of an order (one active at a time)
//   - persist a status transition guarded by the loaded version
//   - list SENT budgets to expire them
type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.Budget, error)
	ListByStatus(ctx context.Context, status entities.BudgetStatus) ([]entities.Budget, error)
	UpdateStatus(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
}
