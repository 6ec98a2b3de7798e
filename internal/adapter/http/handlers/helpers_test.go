package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/valueobjects"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, 4, 20, 14, 0, 0, 0, time.UTC)

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return out
}

func testCustomer(t *testing.T) entities.Customer {
	t.Helper()
	c, err := entities.NewCustomer(entities.NewCustomerParams{
		ID:       "cust-1",
		Document: "52998224725",
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Phone:    "11987654321",
		Address:  "Rua Augusta, 500",
	}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func testOrder(t *testing.T) entities.ServiceOrder {
	t.Helper()
	o, err := entities.NewServiceOrder(entities.NewServiceOrderParams{
		ID:          "os-1",
		OrderNumber: "OS-20260420-000001",
		CustomerID:  "cust-1",
		VehicleID:   "veh-1",
	}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return o
}

func testBudget(t *testing.T, status entities.BudgetStatus) entities.Budget {
	t.Helper()
	ref, _ := entities.NewItemRef(entities.BudgetItemTypeService, "svc-1")
	item, err := entities.NewBudgetItem("item-1", ref, "Alignment", 1, decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := entities.NewBudget(entities.NewBudgetParams{
		ID:             "bud-1",
		ServiceOrderID: "os-1",
		CustomerID:     "cust-1",
		Items:          []entities.BudgetItem{item},
	}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b.Status = status
	return b
}

func brl(t *testing.T, v int64) valueobjects.Money {
	t.Helper()
	m, err := valueobjects.NewMoney(decimal.NewFromInt(v), valueobjects.CurrencyBRL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}
