package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceItem(t *testing.T, id string, qty int, price string) BudgetItem {
	t.Helper()
	item, err := NewBudgetItem(id, ServiceRef{ServiceID: "svc-" + id}, "labour", qty, decimal.RequireFromString(price))
	require.NoError(t, err)
	return item
}

func rate(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newBudget(t *testing.T, items ...BudgetItem) Budget {
	t.Helper()
	b, err := NewBudget(NewBudgetParams{
		ID:             "b-1",
		ServiceOrderID: "os-1",
		CustomerID:     "cust-1",
		Items:          items,
	}, t0)
	require.NoError(t, err)
	return b
}

func TestNewBudget(t *testing.T) {
	b := newBudget(t, serviceItem(t, "1", 1, "100"))

	assert.Equal(t, "100", b.Subtotal.String())
	assert.Equal(t, "10", b.Taxes.String())
	assert.True(t, b.Discount.IsZero())
	assert.Equal(t, "110", b.Total.String())
	assert.True(t, b.Total.Equal(b.Subtotal.Add(b.Taxes).Sub(b.Discount)))
	assert.Equal(t, BudgetStatusDraft, b.Status)
	assert.Equal(t, t0.AddDate(0, 0, DefaultBudgetValidDays), b.ValidUntil)
	assert.True(t, b.CanBeModified())
	assert.True(t, b.IsActive())
}

func TestNewBudget_Options(t *testing.T) {
	part, err := NewBudgetItem("2", PartRef{PartID: "p-9"}, "filter", 3, decimal.RequireFromString("12.35"))
	require.NoError(t, err)

	b, err := NewBudget(NewBudgetParams{
		ID:             "b-2",
		ServiceOrderID: "os-1",
		CustomerID:     "cust-1",
		Items:          []BudgetItem{serviceItem(t, "1", 1, "200"), part},
		ValidDays:      30,
		TaxRate:        rate("0.05"),
	}, t0)
	require.NoError(t, err)

	assert.Equal(t, "237.05", b.Subtotal.String())
	assert.Equal(t, "11.85", b.Taxes.String())
	assert.Equal(t, "248.9", b.Total.String())
	assert.Equal(t, t0.AddDate(0, 0, 30), b.ValidUntil)
}

func TestNewBudget_ZeroTaxRate(t *testing.T) {
	b, err := NewBudget(NewBudgetParams{
		ID:             "b-3",
		ServiceOrderID: "os-1",
		CustomerID:     "cust-1",
		Items:          []BudgetItem{serviceItem(t, "1", 1, "100")},
		TaxRate:        rate("0"),
	}, t0)
	require.NoError(t, err)

	assert.True(t, b.Taxes.IsZero())
	assert.True(t, b.Total.Equal(b.Subtotal))
	assert.Equal(t, "100", b.Total.String())
}

func TestNewBudget_Invalid(t *testing.T) {
	item := serviceItem(t, "1", 1, "10")
	cases := []struct {
		name string
		p    NewBudgetParams
		want error
	}{
		{"no items", NewBudgetParams{ID: "b", ServiceOrderID: "os", CustomerID: "c"}, ErrItemsRequired},
		{"no order", NewBudgetParams{ID: "b", CustomerID: "c", Items: []BudgetItem{item}}, ErrInvalidBudget},
		{"no customer", NewBudgetParams{ID: "b", ServiceOrderID: "os", Items: []BudgetItem{item}}, ErrInvalidBudget},
		{"negative tax", NewBudgetParams{ID: "b", ServiceOrderID: "os", CustomerID: "c", Items: []BudgetItem{item}, TaxRate: rate("-1")}, ErrInvalidBudget},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBudget(tc.p, t0)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestBudget_SendThenApprove(t *testing.T) {
	draft := newBudget(t, serviceItem(t, "1", 1, "100"))
	sendAt := t0.Add(time.Hour)
	approveAt := t0.Add(2 * time.Hour)

	sent, err := draft.Send(sendAt)
	require.NoError(t, err)
	assert.Equal(t, BudgetStatusSent, sent.Status)
	require.NotNil(t, sent.SentAt)
	assert.Equal(t, sendAt, *sent.SentAt)
	assert.False(t, sent.CanBeModified())

	approved, err := sent.Approve(approveAt)
	require.NoError(t, err)
	assert.Equal(t, BudgetStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)
	assert.Equal(t, approveAt, *approved.ApprovedAt)

	assert.Equal(t, BudgetStatusDraft, draft.Status)
	assert.Nil(t, draft.SentAt)
	assert.Equal(t, BudgetStatusSent, sent.Status)
	assert.Nil(t, sent.ApprovedAt)
}

func TestBudget_Approve(t *testing.T) {
	sent, err := newBudget(t, serviceItem(t, "1", 1, "100")).Send(t0)
	require.NoError(t, err)

	t.Run("expired one day ago", func(t *testing.T) {
		_, err := sent.Approve(sent.ValidUntil.AddDate(0, 0, 1))
		assert.True(t, errors.Is(err, ErrExpiredCannotBeApproved))
	})

	t.Run("valid until equals now", func(t *testing.T) {
		approved, err := sent.Approve(sent.ValidUntil)
		require.NoError(t, err)
		assert.Equal(t, BudgetStatusApproved, approved.Status)
	})

	t.Run("draft cannot be approved", func(t *testing.T) {
		_, err := newBudget(t, serviceItem(t, "1", 1, "1")).Approve(t0)
		assert.True(t, errors.Is(err, ErrOnlySentCanBeApproved))
	})
}

func TestBudget_Reject(t *testing.T) {
	draft := newBudget(t, serviceItem(t, "1", 1, "100"))
	_, err := draft.Reject(t0)
	assert.True(t, errors.Is(err, ErrOnlySentCanBeRejected))

	sent, _ := draft.Send(t0)
	rejected, err := sent.Reject(t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, BudgetStatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectedAt)
	assert.False(t, rejected.IsActive())

	_, err = rejected.Send(t0)
	assert.True(t, errors.Is(err, ErrOnlyDraftCanBeSent))
	_, err = rejected.Approve(t0)
	assert.True(t, errors.Is(err, ErrOnlySentCanBeApproved))
}

func TestBudget_MarkExpired(t *testing.T) {
	sent, _ := newBudget(t, serviceItem(t, "1", 1, "100")).Send(t0)

	_, err := sent.MarkExpired(sent.ValidUntil)
	assert.True(t, errors.Is(err, ErrBudgetNotExpired))

	later := sent.ValidUntil.Add(time.Second)
	assert.True(t, sent.IsExpired(later))
	expired, err := sent.MarkExpired(later)
	require.NoError(t, err)
	assert.Equal(t, BudgetStatusExpired, expired.Status)
	require.NotNil(t, expired.ExpiredAt)
	assert.False(t, expired.IsActive())

	_, err = expired.MarkExpired(later)
	assert.True(t, errors.Is(err, ErrOnlySentCanExpire))
}

func TestBudgetTransitions_TerminalStates(t *testing.T) {
	for _, s := range []BudgetStatus{BudgetStatusApproved, BudgetStatusRejected, BudgetStatusExpired} {
		assert.Empty(t, BudgetTransitions[s], "%s must be terminal", s)
	}
	assert.False(t, BudgetStatus("OPEN").Valid())
}

func TestBudgetItem(t *testing.T) {
	t.Run("service variant", func(t *testing.T) {
		item := serviceItem(t, "1", 2, "19.99")
		assert.Equal(t, BudgetItemTypeService, item.Type())
		assert.Equal(t, "39.98", item.Total.String())
		id, ok := item.ServiceID()
		assert.True(t, ok)
		assert.Equal(t, "svc-1", id)
		_, ok = item.PartID()
		assert.False(t, ok)
	})

	t.Run("ref from type", func(t *testing.T) {
		ref, err := NewItemRef(BudgetItemTypePart, " p-1 ")
		require.NoError(t, err)
		assert.Equal(t, PartRef{PartID: "p-1"}, ref)

		_, err = NewItemRef("LABOUR", "x")
		assert.True(t, errors.Is(err, ErrInvalidBudgetItem))
		_, err = NewItemRef(BudgetItemTypeService, "")
		assert.True(t, errors.Is(err, ErrInvalidBudgetItem))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := NewBudgetItem("1", nil, "x", 1, decimal.NewFromInt(1))
		assert.True(t, errors.Is(err, ErrInvalidBudgetItem))
		_, err = NewBudgetItem("1", ServiceRef{ServiceID: "s"}, "x", 0, decimal.NewFromInt(1))
		assert.True(t, errors.Is(err, ErrInvalidQuantity))
		_, err = NewBudgetItem("1", ServiceRef{ServiceID: "s"}, "x", 1, decimal.NewFromInt(-1))
		assert.True(t, errors.Is(err, ErrInvalidBudgetItem))
	})
}
