package repository

import (
	"context"
	"fmt"
	"sort"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/shopspring/decimal"
)

const (
	budgetServiceOrderIndex = "service_order_id-index"
	budgetStatusIndex       = "status-index"
)

type budgetLineItem struct {
	ID          string `dynamodbav:"id"`
	Type        string `dynamodbav:"type"`
	RefID       string `dynamodbav:"ref_id"`
	Description string `dynamodbav:"description,omitempty"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Total       string `dynamodbav:"total"`
}

type budgetItem struct {
	ID             string           `dynamodbav:"id"`
	ServiceOrderID string           `dynamodbav:"service_order_id"`
	CustomerID     string           `dynamodbav:"customer_id"`
	Items          []budgetLineItem `dynamodbav:"items"`
	Subtotal       string           `dynamodbav:"subtotal"`
	Taxes          string           `dynamodbav:"taxes"`
	Discount       string           `dynamodbav:"discount"`
	Total          string           `dynamodbav:"total"`
	ValidUntil     string           `dynamodbav:"valid_until"`
	Status         string           `dynamodbav:"status"`
	SentAt         string           `dynamodbav:"sent_at,omitempty"`
	ApprovedAt     string           `dynamodbav:"approved_at,omitempty"`
	RejectedAt     string           `dynamodbav:"rejected_at,omitempty"`
	ExpiredAt      string           `dynamodbav:"expired_at,omitempty"`
	CreatedAt      string           `dynamodbav:"created_at"`
	UpdatedAt      string           `dynamodbav:"updated_at"`
	Version        int64            `dynamodbav:"version"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI service_order_id-index: service_order_id (string)
//   - GSI status-index: status (string)
type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client, tableName string) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	it := toBudgetItem(b)
	it.Version = 1
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it)
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	var it budgetItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it)
}

func (r *BudgetDynamoRepository) ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.Budget, error) {
	return r.list(ctx, budgetServiceOrderIndex, "service_order_id", serviceOrderID)
}

func (r *BudgetDynamoRepository) ListByStatus(ctx context.Context, status entities.BudgetStatus) ([]entities.Budget, error) {
	return r.list(ctx, budgetStatusIndex, "status", string(status))
}

// UpdateStatus writes the whole budget; only status fields change after
// creation, so the full put is equivalent and keeps the version check simple.
func (r *BudgetDynamoRepository) UpdateStatus(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	it := toBudgetItem(b)
	it.Version = b.Version + 1
	if err := putVersioned(ctx, r.ddb, r.tableName, it, b.Version); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it)
}

func (r *BudgetDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func (r *BudgetDynamoRepository) list(ctx context.Context, index, attr, value string) ([]entities.Budget, error) {
	items, err := queryIndex[budgetItem](ctx, r.ddb, r.tableName, index, attr, value)
	if err != nil {
		return nil, err
	}
	budgets := make([]entities.Budget, 0, len(items))
	for _, it := range items {
		b, err := fromBudgetItem(it)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	sort.SliceStable(budgets, func(i, j int) bool {
		return budgets[i].CreatedAt.Before(budgets[j].CreatedAt)
	})
	return budgets, nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	it := budgetItem{
		ID:             b.ID,
		ServiceOrderID: b.ServiceOrderID,
		CustomerID:     b.CustomerID,
		Items:          make([]budgetLineItem, 0, len(b.Items)),
		Subtotal:       b.Subtotal.StringFixed(2),
		Taxes:          b.Taxes.StringFixed(2),
		Discount:       b.Discount.StringFixed(2),
		Total:          b.Total.StringFixed(2),
		ValidUntil:     formatTime(b.ValidUntil),
		Status:         string(b.Status),
		SentAt:         formatOptionalTime(b.SentAt),
		ApprovedAt:     formatOptionalTime(b.ApprovedAt),
		RejectedAt:     formatOptionalTime(b.RejectedAt),
		ExpiredAt:      formatOptionalTime(b.ExpiredAt),
		CreatedAt:      formatTime(b.CreatedAt),
		UpdatedAt:      formatTime(b.UpdatedAt),
		Version:        b.Version,
	}
	for _, l := range b.Items {
		it.Items = append(it.Items, budgetLineItem{
			ID:          l.ID,
			Type:        string(l.Type()),
			RefID:       l.Ref.RefID(),
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice.StringFixed(2),
			Total:       l.Total.StringFixed(2),
		})
	}
	return it
}

func fromBudgetItem(it budgetItem) (entities.Budget, error) {
	amounts, err := parseDecimals(it.Subtotal, it.Taxes, it.Discount, it.Total)
	if err != nil {
		return entities.Budget{}, fmt.Errorf("budget %s: %w", it.ID, err)
	}
	var tr timeReader
	b := entities.Budget{
		ID:             it.ID,
		ServiceOrderID: it.ServiceOrderID,
		CustomerID:     it.CustomerID,
		Items:          make([]entities.BudgetItem, 0, len(it.Items)),
		Subtotal:       amounts[0],
		Taxes:          amounts[1],
		Discount:       amounts[2],
		Total:          amounts[3],
		ValidUntil:     tr.at("valid_until", it.ValidUntil),
		Status:         entities.BudgetStatus(it.Status),
		SentAt:         tr.optional("sent_at", it.SentAt),
		ApprovedAt:     tr.optional("approved_at", it.ApprovedAt),
		RejectedAt:     tr.optional("rejected_at", it.RejectedAt),
		ExpiredAt:      tr.optional("expired_at", it.ExpiredAt),
		CreatedAt:      tr.at("created_at", it.CreatedAt),
		UpdatedAt:      tr.at("updated_at", it.UpdatedAt),
		Version:        it.Version,
	}
	if tr.err != nil {
		return entities.Budget{}, fmt.Errorf("budget %s: %w", it.ID, tr.err)
	}
	for _, l := range it.Items {
		ref, err := entities.NewItemRef(entities.BudgetItemType(l.Type), l.RefID)
		if err != nil {
			return entities.Budget{}, fmt.Errorf("budget %s item %s: %w", it.ID, l.ID, err)
		}
		prices, err := parseDecimals(l.UnitPrice, l.Total)
		if err != nil {
			return entities.Budget{}, fmt.Errorf("budget %s item %s: %w", it.ID, l.ID, err)
		}
		b.Items = append(b.Items, entities.BudgetItem{
			ID:          l.ID,
			Ref:         ref,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   prices[0],
			Total:       prices[1],
		})
	}
	return b, nil
}

func parseDecimals(values ...string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("stored amount %q: %w", v, err)
		}
		out[i] = d
	}
	return out, nil
}
