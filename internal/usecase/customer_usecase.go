package usecase

import (
	"context"
	"errors"
	"strings"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/events"
	"oficina_xpto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrCustomerAlreadyExists = errors.New("customer already exists")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
)

type CreateCustomerInput struct {
	Document       string
	Type           entities.CustomerType
	Name           string
	Email          string
	Phone          string
	Address        string
	AdditionalInfo string
}

type UpdatePersonalInfoInput struct {
	Name           string
	Phone          string
	Address        string
	AdditionalInfo string
}

// ICustomerUseCase exposes customer registration and maintenance.
type ICustomerUseCase interface {
	Create(ctx context.Context, in CreateCustomerInput) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	UpdatePersonalInfo(ctx context.Context, id string, in UpdatePersonalInfoInput) (entities.Customer, error)
	ChangeEmail(ctx context.Context, id, email string) (entities.Customer, error)
	ChangeDocument(ctx context.Context, id, document string) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
	n    notifier
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, c Collaborators) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, n: newNotifier(c, aggregateCustomer)}
}

// Create registers a customer; a document can only belong to one customer.
func (u *CustomerUseCase) Create(ctx context.Context, in CreateCustomerInput) (entities.Customer, error) {
	c, err := entities.NewCustomer(entities.NewCustomerParams{
		ID:             u.n.ids(),
		Document:       in.Document,
		Type:           in.Type,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		AdditionalInfo: in.AdditionalInfo,
	}, u.n.now())
	if err != nil {
		return entities.Customer{}, err
	}

	existing, err := u.repo.GetByDocument(ctx, c.Document().String())
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.ID() != "" {
		return entities.Customer{}, ErrCustomerAlreadyExists
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}

	u.n.logger.Info("customer created", zap.String("customer_id", created.ID()), zap.String("type", string(created.Type())))
	u.n.publish(ctx, events.CustomerCreated, created.ID(), map[string]any{
		"type": string(created.Type()),
	})
	return created, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID() == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) UpdatePersonalInfo(ctx context.Context, id string, in UpdatePersonalInfoInput) (entities.Customer, error) {
	return u.mutate(ctx, id, "personal_info", func(c entities.Customer) (entities.Customer, error) {
		return c.UpdatePersonalInfo(in.Name, in.Phone, in.Address, in.AdditionalInfo, u.n.now())
	})
}

func (u *CustomerUseCase) ChangeEmail(ctx context.Context, id, email string) (entities.Customer, error) {
	return u.mutate(ctx, id, "email", func(c entities.Customer) (entities.Customer, error) {
		return c.ChangeEmail(email, u.n.now())
	})
}

// ChangeDocument also rejects documents already registered to another customer.
func (u *CustomerUseCase) ChangeDocument(ctx context.Context, id, document string) (entities.Customer, error) {
	return u.mutate(ctx, id, "document", func(c entities.Customer) (entities.Customer, error) {
		next, err := c.ChangeDocument(document, u.n.now())
		if err != nil {
			return entities.Customer{}, err
		}
		owner, err := u.repo.GetByDocument(ctx, next.Document().String())
		if err != nil {
			return entities.Customer{}, err
		}
		if owner.ID() != "" && owner.ID() != c.ID() {
			return entities.Customer{}, ErrCustomerAlreadyExists
		}
		return next, nil
	})
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func (u *CustomerUseCase) mutate(ctx context.Context, id, field string, change func(entities.Customer) (entities.Customer, error)) (entities.Customer, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	next, err := change(current)
	if err != nil {
		return entities.Customer{}, err
	}
	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.Customer{}, err
	}

	u.n.publish(ctx, events.CustomerUpdated, updated.ID(), map[string]any{"field": field})
	return updated, nil
}
