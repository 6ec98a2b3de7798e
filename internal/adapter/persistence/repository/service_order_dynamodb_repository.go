package repository

import (
	"context"
	"fmt"
	"sort"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/valueobjects"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const serviceOrderCustomerIndex = "customer_id-index"

type serviceLineItem struct {
	ServiceID  string    `dynamodbav:"service_id"`
	Name       string    `dynamodbav:"name"`
	Quantity   int       `dynamodbav:"quantity"`
	UnitPrice  moneyItem `dynamodbav:"unit_price"`
	TotalPrice moneyItem `dynamodbav:"total_price"`
}

type partLineItem struct {
	PartID     string    `dynamodbav:"part_id"`
	Name       string    `dynamodbav:"name"`
	Quantity   int       `dynamodbav:"quantity"`
	UnitPrice  moneyItem `dynamodbav:"unit_price"`
	TotalPrice moneyItem `dynamodbav:"total_price"`
}

type statusHistoryItem struct {
	Status    string `dynamodbav:"status"`
	ChangedAt string `dynamodbav:"changed_at"`
	Notes     string `dynamodbav:"notes,omitempty"`
}

type serviceOrderItem struct {
	ID          string              `dynamodbav:"id"`
	OrderNumber string              `dynamodbav:"order_number"`
	CustomerID  string              `dynamodbav:"customer_id"`
	VehicleID   string              `dynamodbav:"vehicle_id"`
	MechanicID  string              `dynamodbav:"mechanic_id,omitempty"`
	Status      string              `dynamodbav:"status"`
	Services    []serviceLineItem   `dynamodbav:"services"`
	Parts       []partLineItem      `dynamodbav:"parts"`
	History     []statusHistoryItem `dynamodbav:"history"`
	Description string              `dynamodbav:"description,omitempty"`
	Diagnosis   string              `dynamodbav:"diagnosis,omitempty"`
	CreatedAt   string              `dynamodbav:"created_at"`
	StartedAt   string              `dynamodbav:"started_at,omitempty"`
	CompletedAt string              `dynamodbav:"completed_at,omitempty"`
	DeliveredAt string              `dynamodbav:"delivered_at,omitempty"`
	UpdatedAt   string              `dynamodbav:"updated_at"`
	Version     int64               `dynamodbav:"version"`
}

// ServiceOrderDynamoRepository stores each aggregate, line items and history
// included, as a single item so an update is atomic.
//
// Table requirements:
//   - PK: id (string)
//   - GSI customer_id-index: customer_id (string)
type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	it := toServiceOrderItem(o)
	it.Version = 1
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it)
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	var it serviceOrderItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it)
}

// ListByCustomerID returns the customer's orders, oldest first.
func (r *ServiceOrderDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.ServiceOrder, error) {
	items, err := queryIndex[serviceOrderItem](ctx, r.ddb, r.tableName, serviceOrderCustomerIndex, "customer_id", customerID)
	if err != nil {
		return nil, err
	}
	orders := make([]entities.ServiceOrder, 0, len(items))
	for _, it := range items {
		o, err := fromServiceOrderItem(it)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt().Before(orders[j].CreatedAt())
	})
	return orders, nil
}

func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	it := toServiceOrderItem(o)
	it.Version = o.Version() + 1
	if err := putVersioned(ctx, r.ddb, r.tableName, it, o.Version()); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it)
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	s := o.Snapshot()
	it := serviceOrderItem{
		ID:          s.ID,
		OrderNumber: s.OrderNumber,
		CustomerID:  s.CustomerID,
		VehicleID:   s.VehicleID,
		MechanicID:  s.MechanicID,
		Status:      string(s.Status),
		Services:    make([]serviceLineItem, 0, len(s.Services)),
		Parts:       make([]partLineItem, 0, len(s.Parts)),
		History:     make([]statusHistoryItem, 0, len(s.History)),
		Description: s.Description,
		Diagnosis:   s.Diagnosis,
		CreatedAt:   formatTime(s.CreatedAt),
		StartedAt:   formatOptionalTime(s.StartedAt),
		CompletedAt: formatOptionalTime(s.CompletedAt),
		DeliveredAt: formatOptionalTime(s.DeliveredAt),
		UpdatedAt:   formatTime(s.UpdatedAt),
		Version:     s.Version,
	}
	for _, l := range s.Services {
		it.Services = append(it.Services, serviceLineItem{
			ServiceID:  l.ServiceID,
			Name:       l.Name,
			Quantity:   l.Quantity,
			UnitPrice:  toMoneyItem(l.UnitPrice),
			TotalPrice: toMoneyItem(l.TotalPrice),
		})
	}
	for _, l := range s.Parts {
		it.Parts = append(it.Parts, partLineItem{
			PartID:     l.PartID,
			Name:       l.Name,
			Quantity:   l.Quantity,
			UnitPrice:  toMoneyItem(l.UnitPrice),
			TotalPrice: toMoneyItem(l.TotalPrice),
		})
	}
	for _, h := range s.History {
		it.History = append(it.History, statusHistoryItem{
			Status:    string(h.Status),
			ChangedAt: formatTime(h.ChangedAt),
			Notes:     h.Notes,
		})
	}
	return it
}

func fromServiceOrderItem(it serviceOrderItem) (entities.ServiceOrder, error) {
	var tr timeReader
	s := entities.ServiceOrderSnapshot{
		ID:          it.ID,
		OrderNumber: it.OrderNumber,
		CustomerID:  it.CustomerID,
		VehicleID:   it.VehicleID,
		MechanicID:  it.MechanicID,
		Status:      entities.ServiceOrderStatus(it.Status),
		Description: it.Description,
		Diagnosis:   it.Diagnosis,
		CreatedAt:   tr.at("created_at", it.CreatedAt),
		StartedAt:   tr.optional("started_at", it.StartedAt),
		CompletedAt: tr.optional("completed_at", it.CompletedAt),
		DeliveredAt: tr.optional("delivered_at", it.DeliveredAt),
		UpdatedAt:   tr.at("updated_at", it.UpdatedAt),
		Version:     it.Version,
	}
	for _, l := range it.Services {
		unit, total, err := linePrices(l.UnitPrice, l.TotalPrice)
		if err != nil {
			return entities.ServiceOrder{}, fmt.Errorf("service order %s service %s: %w", it.ID, l.ServiceID, err)
		}
		s.Services = append(s.Services, entities.ServiceLineItem{
			ServiceID:  l.ServiceID,
			Name:       l.Name,
			Quantity:   l.Quantity,
			UnitPrice:  unit,
			TotalPrice: total,
		})
	}
	for _, l := range it.Parts {
		unit, total, err := linePrices(l.UnitPrice, l.TotalPrice)
		if err != nil {
			return entities.ServiceOrder{}, fmt.Errorf("service order %s part %s: %w", it.ID, l.PartID, err)
		}
		s.Parts = append(s.Parts, entities.PartLineItem{
			PartID:     l.PartID,
			Name:       l.Name,
			Quantity:   l.Quantity,
			UnitPrice:  unit,
			TotalPrice: total,
		})
	}
	for _, h := range it.History {
		s.History = append(s.History, entities.StatusHistoryEntry{
			Status:    entities.ServiceOrderStatus(h.Status),
			ChangedAt: tr.at("history changed_at", h.ChangedAt),
			Notes:     h.Notes,
		})
	}
	if tr.err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("service order %s: %w", it.ID, tr.err)
	}
	return entities.RestoreServiceOrder(s), nil
}

func linePrices(unit, total moneyItem) (u, t valueobjects.Money, err error) {
	if u, err = fromMoneyItem(unit); err != nil {
		return u, t, err
	}
	t, err = fromMoneyItem(total)
	return u, t, err
}
