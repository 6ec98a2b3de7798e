package handlers

import (
	"net/http"
	"testing"

	"oficina_xpto/internal/adapter/http/handlers/mocks"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCatalogRouter(t *testing.T) (*gin.Engine, *mocks.MockICatalogUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc, nil)

	r := gin.New()
	r.POST("/v1/catalog/services", h.CreateService)
	r.GET("/v1/catalog/services/:id", h.GetService)
	r.POST("/v1/catalog/parts", h.CreatePart)
	r.GET("/v1/catalog/parts/:id", h.GetPart)
	r.POST("/v1/mechanics", h.CreateMechanic)
	r.GET("/v1/mechanics/:id", h.GetMechanic)
	return r, uc
}

func TestCatalogHandler_Services(t *testing.T) {
	r, uc := newCatalogRouter(t)
	svc, err := entities.NewCatalogService("svc-1", "Alignment", brl(t, 120), 45)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc.EXPECT().CreateService(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, in usecase.CreateCatalogServiceInput) (entities.CatalogService, error) {
			if in.Price.StringFixed(2) != "120.00" || in.EstimatedMinutes != 45 {
				t.Fatalf("unexpected input %+v", in)
			}
			return svc, nil
		})
	uc.EXPECT().GetService(gomock.Any(), "svc-2").Return(entities.CatalogService{}, usecase.ErrCatalogServiceNotFound)

	w := perform(r, http.MethodPost, "/v1/catalog/services", `{"name":"Alignment","price":"120.00","estimated_minutes":45}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	w = perform(r, http.MethodGet, "/v1/catalog/services/svc-2", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCatalogHandler_Parts(t *testing.T) {
	r, uc := newCatalogRouter(t)
	uc.EXPECT().CreatePart(gomock.Any(), gomock.Any()).Return(entities.Part{}, entities.ErrInvalidCatalogItem)

	w := perform(r, http.MethodPost, "/v1/catalog/parts", `{"name":"Filter","stock":-1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 from binding, got %d", w.Code)
	}

	w = perform(r, http.MethodPost, "/v1/catalog/parts", `{"name":"Filter","price":10,"stock":1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 from use case, got %d", w.Code)
	}
}

func TestCatalogHandler_Mechanics(t *testing.T) {
	r, uc := newCatalogRouter(t)
	m, err := entities.NewMechanic("mec-1", "João Souza", "engine", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc.EXPECT().CreateMechanic(gomock.Any(), usecase.CreateMechanicInput{Name: "João Souza", Specialty: "engine"}).Return(m, nil)
	uc.EXPECT().GetMechanic(gomock.Any(), "mec-1").Return(m, nil)

	w := perform(r, http.MethodPost, "/v1/mechanics", `{"name":"João Souza","specialty":"engine"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	w = perform(r, http.MethodGet, "/v1/mechanics/mec-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := decode(t, w); body["active"] != true {
		t.Fatalf("unexpected body %v", body)
	}
}
