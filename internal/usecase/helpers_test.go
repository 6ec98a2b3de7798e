package usecase

import (
	"fmt"
	"testing"
	"time"

	"oficina_xpto/internal/clock"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/valueobjects"
)

var testNow = time.Date(2026, 4, 20, 14, 0, 0, 0, time.UTC)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func testCollaborators() Collaborators {
	return Collaborators{Clock: clock.NewFakeClock(testNow), IDs: seqIDs()}
}

func mustMoney(t *testing.T, v float64) valueobjects.Money {
	t.Helper()
	m, err := valueobjects.NewMoneyFromFloat(v, valueobjects.CurrencyBRL)
	if err != nil {
		t.Fatalf("money: %v", err)
	}
	return m
}

func testCustomer(t *testing.T, id string) entities.Customer {
	t.Helper()
	c, err := entities.NewCustomer(entities.NewCustomerParams{
		ID:       id,
		Document: "52998224725",
		Name:     "Joana Lima",
		Email:    "joana@example.com",
		Phone:    "11999998888",
		Address:  "Rua Augusta, 500",
	}, testNow.Add(-48*time.Hour))
	if err != nil {
		t.Fatalf("customer: %v", err)
	}
	return c
}

// testOrder builds an order walked to status with one service line of 100.
func testOrder(t *testing.T, id string, status entities.ServiceOrderStatus) entities.ServiceOrder {
	t.Helper()
	o, err := entities.NewServiceOrder(entities.NewServiceOrderParams{
		ID:          id,
		OrderNumber: "OS-20260420-000001",
		CustomerID:  "cust-1",
		VehicleID:   "veh-1",
	}, testNow.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("order: %v", err)
	}
	line, err := entities.NewServiceLineItem("svc-1", "Oil change", 1, mustMoney(t, 100))
	if err != nil {
		t.Fatalf("line: %v", err)
	}
	if o, err = o.AddService(line, testNow.Add(-24*time.Hour)); err != nil {
		t.Fatalf("add service: %v", err)
	}

	path := []entities.ServiceOrderStatus{
		entities.ServiceOrderStatusDiagnosing,
		entities.ServiceOrderStatusAwaitingApproval,
		entities.ServiceOrderStatusInProgress,
		entities.ServiceOrderStatusFinished,
		entities.ServiceOrderStatusDelivered,
	}
	for _, s := range path {
		if o.Status() == status {
			break
		}
		if o, err = o.ChangeStatus(s, "", testNow.Add(-time.Hour)); err != nil {
			t.Fatalf("walk to %s: %v", s, err)
		}
	}
	return o
}

func testBudget(t *testing.T, id, orderID string, status entities.BudgetStatus) entities.Budget {
	t.Helper()
	item, err := entities.NewBudgetItem("item-1", entities.ServiceRef{ServiceID: "svc-1"}, "Oil change", 1, mustMoney(t, 100).Amount())
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	b, err := entities.NewBudget(entities.NewBudgetParams{
		ID:             id,
		ServiceOrderID: orderID,
		CustomerID:     "cust-1",
		Items:          []entities.BudgetItem{item},
	}, testNow.Add(-time.Hour))
	if err != nil {
		t.Fatalf("budget: %v", err)
	}
	if status == entities.BudgetStatusDraft {
		return b
	}
	if b, err = b.Send(testNow.Add(-time.Hour)); err != nil {
		t.Fatalf("send: %v", err)
	}
	switch status {
	case entities.BudgetStatusApproved:
		b, err = b.Approve(testNow.Add(-time.Hour))
	case entities.BudgetStatusRejected:
		b, err = b.Reject(testNow.Add(-time.Hour))
	}
	if err != nil {
		t.Fatalf("walk to %s: %v", status, err)
	}
	return b
}
