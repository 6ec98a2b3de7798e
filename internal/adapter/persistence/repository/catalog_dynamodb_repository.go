package repository

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	catalogKindService = "SERVICE"
	catalogKindPart    = "PART"
)

type catalogItem struct {
	ID               string    `dynamodbav:"id"`
	Kind             string    `dynamodbav:"kind"`
	Name             string    `dynamodbav:"name"`
	Price            moneyItem `dynamodbav:"price"`
	EstimatedMinutes int       `dynamodbav:"estimated_minutes,omitempty"`
	Stock            int       `dynamodbav:"stock,omitempty"`
}

// CatalogDynamoRepository keeps services and parts in one table told apart
// by the kind attribute.
//
// Table requirements:
//   - PK: id (string)
type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client, tableName string) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CatalogDynamoRepository) CreateService(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toCatalogServiceItem(s)); err != nil {
		return entities.CatalogService{}, err
	}
	return s, nil
}

func (r *CatalogDynamoRepository) GetServiceByID(ctx context.Context, id string) (entities.CatalogService, error) {
	it, err := r.get(ctx, id, catalogKindService)
	if err != nil || it.ID == "" {
		return entities.CatalogService{}, err
	}
	return fromCatalogServiceItem(it)
}

func (r *CatalogDynamoRepository) CreatePart(ctx context.Context, p entities.Part) (entities.Part, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toPartItem(p)); err != nil {
		return entities.Part{}, err
	}
	return p, nil
}

func (r *CatalogDynamoRepository) GetPartByID(ctx context.Context, id string) (entities.Part, error) {
	it, err := r.get(ctx, id, catalogKindPart)
	if err != nil || it.ID == "" {
		return entities.Part{}, err
	}
	return fromPartItem(it)
}

// get returns a zero item when the id is missing or belongs to the other kind.
func (r *CatalogDynamoRepository) get(ctx context.Context, id, kind string) (catalogItem, error) {
	var it catalogItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found || it.Kind != kind {
		return catalogItem{}, err
	}
	return it, nil
}

func toCatalogServiceItem(s entities.CatalogService) catalogItem {
	return catalogItem{
		ID:               s.ID,
		Kind:             catalogKindService,
		Name:             s.Name,
		Price:            toMoneyItem(s.Price),
		EstimatedMinutes: s.EstimatedMinutes,
	}
}

func fromCatalogServiceItem(it catalogItem) (entities.CatalogService, error) {
	price, err := fromMoneyItem(it.Price)
	if err != nil {
		return entities.CatalogService{}, err
	}
	return entities.CatalogService{ID: it.ID, Name: it.Name, Price: price, EstimatedMinutes: it.EstimatedMinutes}, nil
}

func toPartItem(p entities.Part) catalogItem {
	return catalogItem{
		ID:    p.ID,
		Kind:  catalogKindPart,
		Name:  p.Name,
		Price: toMoneyItem(p.Price),
		Stock: p.Stock,
	}
}

func fromPartItem(it catalogItem) (entities.Part, error) {
	price, err := fromMoneyItem(it.Price)
	if err != nil {
		return entities.Part{}, err
	}
	return entities.Part{ID: it.ID, Name: it.Name, Price: price, Stock: it.Stock}, nil
}
