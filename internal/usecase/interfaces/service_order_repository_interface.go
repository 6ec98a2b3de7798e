package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IServiceOrderRepository persists the ServiceOrder aggregate as one item.
//
// Update writes the whole snapshot guarded by the loaded version and returns
// the stored aggregate with its new version.
type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
}

// IOrderSequence hands out monotonic numbers used to build order numbers.
type IOrderSequence interface {
	Next(ctx context.Context) (int64, error)
}
