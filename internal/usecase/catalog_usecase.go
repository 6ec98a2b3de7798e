package usecase

import (
	"context"
	"errors"
	"strings"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/valueobjects"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrInvalidCatalogID = errors.New("invalid catalog id")

type CreateCatalogServiceInput struct {
	Name             string
	Price            decimal.Decimal
	Currency         valueobjects.Currency
	EstimatedMinutes int
}

type CreatePartInput struct {
	Name     string
	Price    decimal.Decimal
	Currency valueobjects.Currency
	Stock    int
}

type CreateMechanicInput struct {
	Name      string
	Specialty string
}

// ICatalogUseCase registers what service orders are built from.
type ICatalogUseCase interface {
	CreateService(ctx context.Context, in CreateCatalogServiceInput) (entities.CatalogService, error)
	GetService(ctx context.Context, id string) (entities.CatalogService, error)
	CreatePart(ctx context.Context, in CreatePartInput) (entities.Part, error)
	GetPart(ctx context.Context, id string) (entities.Part, error)
	CreateMechanic(ctx context.Context, in CreateMechanicInput) (entities.Mechanic, error)
	GetMechanic(ctx context.Context, id string) (entities.Mechanic, error)
}

type CatalogUseCase struct {
	catalog   interfaces.ICatalogRepository
	mechanics interfaces.IMechanicRepository
	n         notifier
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalog interfaces.ICatalogRepository, mechanics interfaces.IMechanicRepository, c Collaborators) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog, mechanics: mechanics, n: newNotifier(c, "catalog")}
}

func (u *CatalogUseCase) CreateService(ctx context.Context, in CreateCatalogServiceInput) (entities.CatalogService, error) {
	price, err := valueobjects.NewMoney(in.Price, in.Currency)
	if err != nil {
		return entities.CatalogService{}, err
	}
	s, err := entities.NewCatalogService(u.n.ids(), in.Name, price, in.EstimatedMinutes)
	if err != nil {
		return entities.CatalogService{}, err
	}
	created, err := u.catalog.CreateService(ctx, s)
	if err != nil {
		return entities.CatalogService{}, err
	}
	u.n.logger.Info("catalog service created", zap.String("service_id", created.ID))
	return created, nil
}

func (u *CatalogUseCase) GetService(ctx context.Context, id string) (entities.CatalogService, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogService{}, ErrInvalidCatalogID
	}
	s, err := u.catalog.GetServiceByID(ctx, id)
	if err != nil {
		return entities.CatalogService{}, err
	}
	if s.ID == "" {
		return entities.CatalogService{}, ErrCatalogServiceNotFound
	}
	return s, nil
}

func (u *CatalogUseCase) CreatePart(ctx context.Context, in CreatePartInput) (entities.Part, error) {
	price, err := valueobjects.NewMoney(in.Price, in.Currency)
	if err != nil {
		return entities.Part{}, err
	}
	p, err := entities.NewPart(u.n.ids(), in.Name, price, in.Stock)
	if err != nil {
		return entities.Part{}, err
	}
	created, err := u.catalog.CreatePart(ctx, p)
	if err != nil {
		return entities.Part{}, err
	}
	u.n.logger.Info("part created", zap.String("part_id", created.ID))
	return created, nil
}

func (u *CatalogUseCase) GetPart(ctx context.Context, id string) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidCatalogID
	}
	p, err := u.catalog.GetPartByID(ctx, id)
	if err != nil {
		return entities.Part{}, err
	}
	if p.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) CreateMechanic(ctx context.Context, in CreateMechanicInput) (entities.Mechanic, error) {
	m, err := entities.NewMechanic(u.n.ids(), in.Name, in.Specialty, u.n.now())
	if err != nil {
		return entities.Mechanic{}, err
	}
	return u.mechanics.Create(ctx, m)
}

func (u *CatalogUseCase) GetMechanic(ctx context.Context, id string) (entities.Mechanic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Mechanic{}, ErrInvalidCatalogID
	}
	m, err := u.mechanics.GetByID(ctx, id)
	if err != nil {
		return entities.Mechanic{}, err
	}
	if m.ID == "" {
		return entities.Mechanic{}, ErrMechanicNotFound
	}
	return m, nil
}
