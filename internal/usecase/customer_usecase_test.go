package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/events"
	"oficina_xpto/internal/domain/valueobjects"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validCustomerInput() CreateCustomerInput {
	return CreateCustomerInput{
		Document: "529.982.247-25",
		Name:     "Joana Lima",
		Email:    "Joana@Example.com",
		Phone:    "11999998888",
		Address:  "Rua Augusta, 500",
	}
}

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("invalid document", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, testCollaborators())
		in := validCustomerInput()
		in.Document = "000"
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, valueobjects.ErrInvalidDocument) {
			t.Fatalf("expected ErrInvalidDocument, got %v", err)
		}
	})

	t.Run("document already registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, testCollaborators())

		repo.EXPECT().GetByDocument(gomock.Any(), "52998224725").Return(testCustomer(t, "other"), nil)

		_, err := uc.Create(context.Background(), validCustomerInput())
		if !errors.Is(err, ErrCustomerAlreadyExists) {
			t.Fatalf("expected ErrCustomerAlreadyExists, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, testCollaborators())

		repo.EXPECT().GetByDocument(gomock.Any(), gomock.Any()).Return(entities.Customer{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, errors.New("db"))

		_, err := uc.Create(context.Background(), validCustomerInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success publishes event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		pub := mock_interfaces.NewMockIEventPublisher(ctrl)
		c := testCollaborators()
		c.Publisher = pub
		uc := NewCustomerUseCase(repo, c)

		repo.EXPECT().GetByDocument(gomock.Any(), "52998224725").Return(entities.Customer{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID() != "id-1" || c.Email().String() != "joana@example.com" || !c.IsIndividual() {
					t.Fatalf("unexpected customer: %+v", c.Snapshot())
				}
				if !c.CreatedAt().Equal(testNow) {
					t.Fatalf("expected createdAt from clock, got %v", c.CreatedAt())
				}
				return c, nil
			},
		)
		pub.EXPECT().Publish(gomock.Any(), gomock.AssignableToTypeOf(events.Event{})).DoAndReturn(
			func(_ context.Context, e events.Event) error {
				if e.Name != events.CustomerCreated || e.AggregateID != "id-1" || e.ID != "id-2" {
					t.Fatalf("unexpected event: %+v", e)
				}
				return nil
			},
		)

		res, err := uc.Create(context.Background(), validCustomerInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID() != "id-1" {
			t.Fatalf("expected generated id, got %q", res.ID())
		}
	})

	t.Run("publish failure is not returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		pub := mock_interfaces.NewMockIEventPublisher(ctrl)
		metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		c := testCollaborators()
		c.Publisher = pub
		c.Metrics = metrics
		uc := NewCustomerUseCase(repo, c)

		repo.EXPECT().GetByDocument(gomock.Any(), gomock.Any()).Return(entities.Customer{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil },
		)
		pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		metrics.EXPECT().IncPublishFailure(events.CustomerCreated)

		if _, err := uc.Create(context.Background(), validCustomerInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, testCollaborators())
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, testCollaborators())
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{}, nil)

		_, err := uc.GetByID(context.Background(), " c-1 ")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})
}

func TestCustomerUseCase_UpdatePersonalInfo(t *testing.T) {
	t.Run("validation error does not persist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, testCollaborators())
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCustomer(t, "c-1"), nil)

		_, err := uc.UpdatePersonalInfo(context.Background(), "c-1", UpdatePersonalInfoInput{Name: "J", Phone: "11999998888", Address: "Rua Augusta, 500"})
		if !errors.Is(err, entities.ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, testCollaborators())
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCustomer(t, "c-1"), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.Name() != "Joana L." || !c.UpdatedAt().Equal(testNow) {
					t.Fatalf("unexpected customer: %+v", c.Snapshot())
				}
				return c, nil
			},
		)

		_, err := uc.UpdatePersonalInfo(context.Background(), "c-1", UpdatePersonalInfoInput{Name: "Joana L.", Phone: "11999998888", Address: "Rua Augusta, 500"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_ChangeDocument(t *testing.T) {
	t.Run("document owned by another customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, testCollaborators())
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCustomer(t, "c-1"), nil)
		repo.EXPECT().GetByDocument(gomock.Any(), "11144477735").Return(testCustomer(t, "c-2"), nil)

		_, err := uc.ChangeDocument(context.Background(), "c-1", "111.444.777-35")
		if !errors.Is(err, ErrCustomerAlreadyExists) {
			t.Fatalf("expected ErrCustomerAlreadyExists, got %v", err)
		}
	})

	t.Run("company document on individual", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, testCollaborators())
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCustomer(t, "c-1"), nil)

		_, err := uc.ChangeDocument(context.Background(), "c-1", "11.222.333/0001-81")
		if !errors.Is(err, entities.ErrDocumentTypeMismatch) {
			t.Fatalf("expected ErrDocumentTypeMismatch, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, testCollaborators())
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCustomer(t, "c-1"), nil)
		repo.EXPECT().GetByDocument(gomock.Any(), "11144477735").Return(entities.Customer{}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil },
		)

		res, err := uc.ChangeDocument(context.Background(), "c-1", "111.444.777-35")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Document().String() != "11144477735" {
			t.Fatalf("unexpected document %s", res.Document())
		}
	})
}

func TestCustomerUseCase_ChangeEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICustomerRepository(ctrl)
	uc := NewCustomerUseCase(repo, testCollaborators())
	repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCustomer(t, "c-1"), nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Customer{}, errors.New("db"))

	_, err := uc.ChangeEmail(context.Background(), "c-1", "new@example.com")
	if err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestCustomerUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, testCollaborators())
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{}, nil)

		if err := uc.Delete(context.Background(), "c-1"); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, testCollaborators())
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCustomer(t, "c-1"), nil)
		repo.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)

		if err := uc.Delete(context.Background(), "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
