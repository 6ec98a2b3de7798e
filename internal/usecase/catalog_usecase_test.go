package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/valueobjects"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_CreateService(t *testing.T) {
	t.Run("negative price", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil, testCollaborators())
		_, err := uc.CreateService(context.Background(), CreateCatalogServiceInput{Name: "Wash", Price: decimal.NewFromInt(-1)})
		if !errors.Is(err, valueobjects.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(catalog, nil, testCollaborators())
		catalog.EXPECT().CreateService(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.CatalogService) (entities.CatalogService, error) {
				if s.ID != "id-1" || s.Price.Currency() != valueobjects.CurrencyBRL || s.EstimatedMinutes != 90 {
					t.Fatalf("unexpected service: %+v", s)
				}
				return s, nil
			},
		)

		_, err := uc.CreateService(context.Background(), CreateCatalogServiceInput{Name: "Brakes", Price: decimal.RequireFromString("250.00"), EstimatedMinutes: 90})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCatalogUseCase_Getters(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	mechanics := mock_interfaces.NewMockIMechanicRepository(ctrl)
	uc := NewCatalogUseCase(catalog, mechanics, testCollaborators())

	catalog.EXPECT().GetServiceByID(gomock.Any(), "s-1").Return(entities.CatalogService{}, nil)
	catalog.EXPECT().GetPartByID(gomock.Any(), "p-1").Return(entities.Part{}, nil)
	mechanics.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Mechanic{}, nil)

	if _, err := uc.GetService(context.Background(), "s-1"); !errors.Is(err, ErrCatalogServiceNotFound) {
		t.Fatalf("expected ErrCatalogServiceNotFound, got %v", err)
	}
	if _, err := uc.GetPart(context.Background(), "p-1"); !errors.Is(err, ErrPartNotFound) {
		t.Fatalf("expected ErrPartNotFound, got %v", err)
	}
	if _, err := uc.GetMechanic(context.Background(), "m-1"); !errors.Is(err, ErrMechanicNotFound) {
		t.Fatalf("expected ErrMechanicNotFound, got %v", err)
	}
	if _, err := uc.GetPart(context.Background(), ""); !errors.Is(err, ErrInvalidCatalogID) {
		t.Fatalf("expected ErrInvalidCatalogID, got %v", err)
	}
}

func TestCatalogUseCase_CreatePartAndMechanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	mechanics := mock_interfaces.NewMockIMechanicRepository(ctrl)
	uc := NewCatalogUseCase(catalog, mechanics, testCollaborators())

	catalog.EXPECT().CreatePart(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Part) (entities.Part, error) { return p, nil },
	)
	mechanics.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m entities.Mechanic) (entities.Mechanic, error) { return m, nil },
	)

	p, err := uc.CreatePart(context.Background(), CreatePartInput{Name: "Filter", Price: decimal.NewFromInt(30), Stock: 4})
	if err != nil || p.Stock != 4 {
		t.Fatalf("unexpected part %+v %v", p, err)
	}
	_, err = uc.CreatePart(context.Background(), CreatePartInput{Name: "Filter", Price: decimal.NewFromInt(30), Stock: -1})
	if !errors.Is(err, entities.ErrInvalidCatalogItem) {
		t.Fatalf("expected ErrInvalidCatalogItem, got %v", err)
	}

	m, err := uc.CreateMechanic(context.Background(), CreateMechanicInput{Name: "Rita", Specialty: "electrical"})
	if err != nil || !m.Active || !m.CreatedAt.Equal(testNow) {
		t.Fatalf("unexpected mechanic %+v %v", m, err)
	}
}
