package request

import (
	"encoding/json"
	"testing"

	"oficina_xpto/internal/domain/entities"
)

func TestChangeStatusRequest_ResolveStatus(t *testing.T) {
	r := ChangeStatusRequest{Status: " in_progress "}
	if got := r.ResolveStatus(); got != entities.ServiceOrderStatusInProgress {
		t.Fatalf("expected IN_PROGRESS, got %q", got)
	}
}

func TestCreateCustomerRequest_ToInput(t *testing.T) {
	in := CreateCustomerRequest{Document: "529.982.247-25", Type: "INDIVIDUAL", Name: "Maria"}.ToInput()
	if in.Type != entities.CustomerTypeIndividual || in.Document != "529.982.247-25" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestCreateBudgetRequest_ToInput(t *testing.T) {
	in := CreateBudgetRequest{ServiceOrderID: " os-1 ", ValidDays: 7}.ToInput()
	if in.ServiceOrderID != "os-1" || in.ValidDays != 7 {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestCreatePartRequest_AcceptsStringAndNumberPrices(t *testing.T) {
	for _, body := range []string{
		`{"name":"Filter","price":"35.50","stock":3}`,
		`{"name":"Filter","price":35.5,"stock":3}`,
	} {
		var r CreatePartRequest
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			t.Fatalf("unexpected error for %s: %v", body, err)
		}
		if got := r.ToInput().Price.StringFixed(2); got != "35.50" {
			t.Fatalf("expected 35.50, got %s", got)
		}
	}
}
