package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// ICatalogRepository stores the services and parts the workshop sells.
type ICatalogRepository interface {
	CreateService(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error)
	GetServiceByID(ctx context.Context, id string) (entities.CatalogService, error)
	CreatePart(ctx context.Context, p entities.Part) (entities.Part, error)
	GetPartByID(ctx context.Context, id string) (entities.Part, error)
}

type IMechanicRepository interface {
	Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
	GetByID(ctx context.Context, id string) (entities.Mechanic, error)
}
