package interfaces

import (
	"context"
	"errors"

	"oficina_xpto/internal/domain/entities"
)

// ErrConcurrentModification is returned by repositories when the stored
// version no longer matches the version the caller loaded.
var ErrConcurrentModification = errors.New("concurrent modification")

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// Lookups return a zero-value Customer (empty ID) when nothing is found.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByDocument(ctx context.Context, document string) (entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}
