package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/events"
	"oficina_xpto/internal/domain/services"
	"oficina_xpto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrServiceOrderNotFound   = errors.New("service order not found")
	ErrInvalidServiceOrderID  = errors.New("invalid service order id")
	ErrCatalogServiceNotFound = errors.New("catalog service not found")
	ErrPartNotFound           = errors.New("part not found")
	ErrMechanicNotFound       = errors.New("mechanic not found")
	ErrMechanicUnavailable    = errors.New("mechanic is not available")
)

type CreateServiceOrderInput struct {
	CustomerID  string
	VehicleID   string
	Description string
}

// IServiceOrderUseCase drives a vehicle through the workshop.
type IServiceOrderUseCase interface {
	Create(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.ServiceOrder, error)
	ChangeStatus(ctx context.Context, id string, status entities.ServiceOrderStatus, notes string) (entities.ServiceOrder, error)
	StartExecution(ctx context.Context, id string) (entities.ServiceOrder, error)
	Finish(ctx context.Context, id string) (entities.ServiceOrder, error)
	Deliver(ctx context.Context, id string) (entities.ServiceOrder, error)
	AddService(ctx context.Context, id, serviceID string, quantity int) (entities.ServiceOrder, error)
	RemoveService(ctx context.Context, id, serviceID string) (entities.ServiceOrder, error)
	AddPart(ctx context.Context, id, partID string, quantity int) (entities.ServiceOrder, error)
	RemovePart(ctx context.Context, id, partID string) (entities.ServiceOrder, error)
	AssignMechanic(ctx context.Context, id, mechanicID string) (entities.ServiceOrder, error)
	UpdateDiagnosis(ctx context.Context, id, diagnosis string) (entities.ServiceOrder, error)
	PriceSummary(ctx context.Context, id string) (services.PriceSummary, error)
	EstimatedCompletion(ctx context.Context, id string) (time.Time, error)
}

// ServiceOrderDeps are the ports the service order use case reads and writes.
type ServiceOrderDeps struct {
	Orders    interfaces.IServiceOrderRepository
	Customers interfaces.ICustomerRepository
	Catalog   interfaces.ICatalogRepository
	Mechanics interfaces.IMechanicRepository
	Sequence  interfaces.IOrderSequence
	Pricing   services.IPricingService
}

type ServiceOrderUseCase struct {
	orders    interfaces.IServiceOrderRepository
	customers interfaces.ICustomerRepository
	catalog   interfaces.ICatalogRepository
	mechanics interfaces.IMechanicRepository
	sequence  interfaces.IOrderSequence
	pricing   services.IPricingService
	policy    ServiceOrderPolicy
	n         notifier
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(deps ServiceOrderDeps, policy ServiceOrderPolicy, c Collaborators) *ServiceOrderUseCase {
	pricing := deps.Pricing
	if pricing == nil {
		pricing = services.NewPricingService()
	}
	if policy.OrderNumberTemplate == "" {
		policy.OrderNumberTemplate = entities.DefaultOrderNumberTemplate
	}
	return &ServiceOrderUseCase{
		orders:    deps.Orders,
		customers: deps.Customers,
		catalog:   deps.Catalog,
		mechanics: deps.Mechanics,
		sequence:  deps.Sequence,
		pricing:   pricing,
		policy:    policy,
		n:         newNotifier(c, aggregateServiceOrder),
	}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error) {
	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		return entities.ServiceOrder{}, ErrInvalidCustomerID
	}
	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if customer.ID() == "" {
		return entities.ServiceOrder{}, ErrCustomerNotFound
	}

	now := u.n.now()
	seq, err := u.sequence.Next(ctx)
	if err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("next order sequence: %w", err)
	}
	number, err := entities.FormatOrderNumber(u.policy.OrderNumberTemplate, now, seq)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	o, err := entities.NewServiceOrder(entities.NewServiceOrderParams{
		ID:          u.n.ids(),
		OrderNumber: number,
		CustomerID:  customerID,
		VehicleID:   in.VehicleID,
		Description: in.Description,
	}, now)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	u.n.logger.Info("service order created",
		zap.String("service_order_id", created.ID()),
		zap.String("order_number", created.OrderNumber()),
	)
	u.n.transitioned(aggregateServiceOrder, string(created.Status()))
	u.n.publish(ctx, events.ServiceOrderCreated, created.ID(), map[string]any{
		"order_number": created.OrderNumber(),
		"customer_id":  created.CustomerID(),
		"vehicle_id":   created.VehicleID(),
	})
	return created, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID() == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.ServiceOrder, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.orders.ListByCustomerID(ctx, customerID)
}

func (u *ServiceOrderUseCase) ChangeStatus(ctx context.Context, id string, status entities.ServiceOrderStatus, notes string) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, func(o entities.ServiceOrder, now time.Time) (entities.ServiceOrder, error) {
		return o.ChangeStatus(status, notes, now)
	})
}

func (u *ServiceOrderUseCase) StartExecution(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, entities.ServiceOrder.StartExecution)
}

func (u *ServiceOrderUseCase) Finish(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, entities.ServiceOrder.Finish)
}

func (u *ServiceOrderUseCase) Deliver(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, entities.ServiceOrder.Deliver)
}

func (u *ServiceOrderUseCase) AddService(ctx context.Context, id, serviceID string, quantity int) (entities.ServiceOrder, error) {
	svc, err := u.catalog.GetServiceByID(ctx, strings.TrimSpace(serviceID))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if svc.ID == "" {
		return entities.ServiceOrder{}, ErrCatalogServiceNotFound
	}
	line, err := svc.LineItem(quantity)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.changeItems(ctx, id, "service_added", svc.ID, func(o entities.ServiceOrder, now time.Time) (entities.ServiceOrder, error) {
		return o.AddService(line, now)
	})
}

func (u *ServiceOrderUseCase) RemoveService(ctx context.Context, id, serviceID string) (entities.ServiceOrder, error) {
	serviceID = strings.TrimSpace(serviceID)
	return u.changeItems(ctx, id, "service_removed", serviceID, func(o entities.ServiceOrder, now time.Time) (entities.ServiceOrder, error) {
		return o.RemoveService(serviceID, now)
	})
}

func (u *ServiceOrderUseCase) AddPart(ctx context.Context, id, partID string, quantity int) (entities.ServiceOrder, error) {
	part, err := u.catalog.GetPartByID(ctx, strings.TrimSpace(partID))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if part.ID == "" {
		return entities.ServiceOrder{}, ErrPartNotFound
	}
	line, err := part.LineItem(quantity)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.changeItems(ctx, id, "part_added", part.ID, func(o entities.ServiceOrder, now time.Time) (entities.ServiceOrder, error) {
		return o.AddPart(line, now)
	})
}

func (u *ServiceOrderUseCase) RemovePart(ctx context.Context, id, partID string) (entities.ServiceOrder, error) {
	partID = strings.TrimSpace(partID)
	return u.changeItems(ctx, id, "part_removed", partID, func(o entities.ServiceOrder, now time.Time) (entities.ServiceOrder, error) {
		return o.RemovePart(partID, now)
	})
}

func (u *ServiceOrderUseCase) AssignMechanic(ctx context.Context, id, mechanicID string) (entities.ServiceOrder, error) {
	m, err := u.mechanics.GetByID(ctx, strings.TrimSpace(mechanicID))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if m.ID == "" {
		return entities.ServiceOrder{}, ErrMechanicNotFound
	}
	if !m.CanBeAssigned() {
		return entities.ServiceOrder{}, ErrMechanicUnavailable
	}
	return u.update(ctx, id, func(o entities.ServiceOrder, now time.Time) (entities.ServiceOrder, error) {
		return o.AssignMechanic(m.ID, now)
	})
}

func (u *ServiceOrderUseCase) UpdateDiagnosis(ctx context.Context, id, diagnosis string) (entities.ServiceOrder, error) {
	return u.update(ctx, id, func(o entities.ServiceOrder, now time.Time) (entities.ServiceOrder, error) {
		return o.UpdateDiagnosis(diagnosis, now)
	})
}

// PriceSummary prices the live lines of the order with the configured
// discount and tax percentages.
func (u *ServiceOrderUseCase) PriceSummary(ctx context.Context, id string) (services.PriceSummary, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return services.PriceSummary{}, err
	}

	in := services.PricingInput{
		DiscountPercentage: u.policy.DiscountPercentage,
		TaxPercentage:      u.policy.TaxPercentage,
	}
	for _, s := range o.Services() {
		in.Services = append(in.Services, services.PricedItem{UnitPrice: s.UnitPrice, Quantity: s.Quantity})
		in.Currency = s.UnitPrice.Currency()
	}
	for _, p := range o.Parts() {
		in.Parts = append(in.Parts, services.PricedItem{UnitPrice: p.UnitPrice, Quantity: p.Quantity})
		in.Currency = p.UnitPrice.Currency()
	}
	return u.pricing.Calculate(in)
}

// EstimatedCompletion projects the end date from the catalog estimates of the
// order's services, starting when execution started (or now).
func (u *ServiceOrderUseCase) EstimatedCompletion(ctx context.Context, id string) (time.Time, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return time.Time{}, err
	}

	items := make([]services.TimedItem, 0, len(o.Services()))
	for _, line := range o.Services() {
		svc, err := u.catalog.GetServiceByID(ctx, line.ServiceID)
		if err != nil {
			return time.Time{}, err
		}
		if svc.ID == "" {
			return time.Time{}, fmt.Errorf("%w: %s", ErrCatalogServiceNotFound, line.ServiceID)
		}
		items = append(items, services.TimedItem{EstimatedMinutes: svc.EstimatedMinutes, Quantity: line.Quantity})
	}

	minutes, err := u.pricing.CalculateEstimatedTime(items)
	if err != nil {
		return time.Time{}, err
	}
	start := u.n.now()
	if started := o.StartedAt(); started != nil {
		start = *started
	}
	return u.pricing.CalculateEstimatedCompletionDate(start, minutes, u.policy.WorkingHoursPerDay)
}

// transition applies a status change and reports it.
func (u *ServiceOrderUseCase) transition(ctx context.Context, id string, change func(entities.ServiceOrder, time.Time) (entities.ServiceOrder, error)) (entities.ServiceOrder, error) {
	var from entities.ServiceOrderStatus
	updated, err := u.update(ctx, id, func(o entities.ServiceOrder, now time.Time) (entities.ServiceOrder, error) {
		from = o.Status()
		return change(o, now)
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	u.n.logger.Info("service order status changed",
		zap.String("service_order_id", updated.ID()),
		zap.String("from", string(from)),
		zap.String("to", string(updated.Status())),
	)
	u.n.transitioned(aggregateServiceOrder, string(updated.Status()))
	u.n.publish(ctx, events.ServiceOrderStatusChanged, updated.ID(), map[string]any{
		"from": string(from),
		"to":   string(updated.Status()),
	})
	return updated, nil
}

func (u *ServiceOrderUseCase) changeItems(ctx context.Context, id, action, itemID string, change func(entities.ServiceOrder, time.Time) (entities.ServiceOrder, error)) (entities.ServiceOrder, error) {
	updated, err := u.update(ctx, id, change)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	u.n.publish(ctx, events.ServiceOrderItemsChanged, updated.ID(), map[string]any{
		"action":  action,
		"item_id": itemID,
	})
	return updated, nil
}

// update loads the order, applies change and persists the result guarded by
// the loaded version.
func (u *ServiceOrderUseCase) update(ctx context.Context, id string, change func(entities.ServiceOrder, time.Time) (entities.ServiceOrder, error)) (entities.ServiceOrder, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	next, err := change(current, u.n.now())
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.orders.Update(ctx, next)
}
