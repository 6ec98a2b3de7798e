package repository

import (
	"context"
	"fmt"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const customerDocumentIndex = "document-index"

type customerItem struct {
	ID             string `dynamodbav:"id"`
	Document       string `dynamodbav:"document"`
	Type           string `dynamodbav:"customer_type"`
	Name           string `dynamodbav:"name"`
	Email          string `dynamodbav:"email"`
	Phone          string `dynamodbav:"phone"`
	Address        string `dynamodbav:"address"`
	AdditionalInfo string `dynamodbav:"additional_info,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	Version        int64  `dynamodbav:"version"`
}

// CustomerDynamoRepository persists Customer aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI document-index: document (string)
type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client, tableName string) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	it := toCustomerItem(c)
	it.Version = 1
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it)
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	var it customerItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it)
}

func (r *CustomerDynamoRepository) GetByDocument(ctx context.Context, document string) (entities.Customer, error) {
	items, err := queryIndex[customerItem](ctx, r.ddb, r.tableName, customerDocumentIndex, "document", document)
	if err != nil || len(items) == 0 {
		return entities.Customer{}, err
	}
	return fromCustomerItem(items[0])
}

func (r *CustomerDynamoRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	it := toCustomerItem(c)
	it.Version = c.Version() + 1
	if err := putVersioned(ctx, r.ddb, r.tableName, it, c.Version()); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it)
}

func (r *CustomerDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toCustomerItem(c entities.Customer) customerItem {
	s := c.Snapshot()
	return customerItem{
		ID:             s.ID,
		Document:       s.Document,
		Type:           string(s.Type),
		Name:           s.Name,
		Email:          s.Email,
		Phone:          s.Phone,
		Address:        s.Address,
		AdditionalInfo: s.AdditionalInfo,
		CreatedAt:      formatTime(s.CreatedAt),
		UpdatedAt:      formatTime(s.UpdatedAt),
		Version:        s.Version,
	}
}

func fromCustomerItem(it customerItem) (entities.Customer, error) {
	var tr timeReader
	s := entities.CustomerSnapshot{
		ID:             it.ID,
		Document:       it.Document,
		Type:           entities.CustomerType(it.Type),
		Name:           it.Name,
		Email:          it.Email,
		Phone:          it.Phone,
		Address:        it.Address,
		AdditionalInfo: it.AdditionalInfo,
		CreatedAt:      tr.at("created_at", it.CreatedAt),
		UpdatedAt:      tr.at("updated_at", it.UpdatedAt),
		Version:        it.Version,
	}
	if tr.err != nil {
		return entities.Customer{}, fmt.Errorf("customer %s: %w", it.ID, tr.err)
	}
	return entities.RestoreCustomer(s)
}
