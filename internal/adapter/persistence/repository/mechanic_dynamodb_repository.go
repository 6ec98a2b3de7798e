package repository

import (
	"context"
	"fmt"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type mechanicItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Specialty string `dynamodbav:"specialty,omitempty"`
	Active    bool   `dynamodbav:"active"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type MechanicDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMechanicRepository = (*MechanicDynamoRepository)(nil)

func NewMechanicDynamoRepository(ddb *dynamodb.Client, tableName string) *MechanicDynamoRepository {
	return &MechanicDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *MechanicDynamoRepository) Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toMechanicItem(m)); err != nil {
		return entities.Mechanic{}, err
	}
	return m, nil
}

func (r *MechanicDynamoRepository) GetByID(ctx context.Context, id string) (entities.Mechanic, error) {
	var it mechanicItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Mechanic{}, err
	}
	return fromMechanicItem(it)
}

func toMechanicItem(m entities.Mechanic) mechanicItem {
	return mechanicItem{
		ID:        m.ID,
		Name:      m.Name,
		Specialty: m.Specialty,
		Active:    m.Active,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
	}
}

func fromMechanicItem(it mechanicItem) (entities.Mechanic, error) {
	var tr timeReader
	m := entities.Mechanic{
		ID:        it.ID,
		Name:      it.Name,
		Specialty: it.Specialty,
		Active:    it.Active,
		CreatedAt: tr.at("created_at", it.CreatedAt),
		UpdatedAt: tr.at("updated_at", it.UpdatedAt),
	}
	if tr.err != nil {
		return entities.Mechanic{}, fmt.Errorf("mechanic %s: %w", it.ID, tr.err)
	}
	return m, nil
}
