package entities

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatus represents the lifecycle of a budget (orçamento).
type BudgetStatus string

const (
	BudgetStatusDraft    BudgetStatus = "DRAFT"
	BudgetStatusSent     BudgetStatus = "SENT"
	BudgetStatusApproved BudgetStatus = "APPROVED"
	BudgetStatusRejected BudgetStatus = "REJECTED"
	BudgetStatusExpired  BudgetStatus = "EXPIRED"
)

const DefaultBudgetValidDays = 15

var DefaultBudgetTaxRate = decimal.RequireFromString("0.10")

// BudgetTransitions lists every legal edge; APPROVED, REJECTED and EXPIRED are
// terminal. A budget never reopens itself.
var BudgetTransitions = map[BudgetStatus][]BudgetStatus{
	BudgetStatusDraft:    {BudgetStatusSent},
	BudgetStatusSent:     {BudgetStatusApproved, BudgetStatusRejected, BudgetStatusExpired},
	BudgetStatusApproved: {},
	BudgetStatusRejected: {},
	BudgetStatusExpired:  {},
}

func (s BudgetStatus) Valid() bool {
	_, ok := BudgetTransitions[s]
	return ok
}

func (s BudgetStatus) CanTransitionTo(to BudgetStatus) bool {
	return slices.Contains(BudgetTransitions[s], to)
}

// Budget is a persistent-value snapshot of a quote sent to the customer.
//
// Send, Approve, Reject and MarkExpired never modify the receiver; they return
// a new Budget that the caller persists. Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (service_order_id-index): service_order_id
//   - GSI2 (status-index): status
type Budget struct {
	ID             string
	ServiceOrderID string
	CustomerID     string
	Items          []BudgetItem
	Subtotal       decimal.Decimal
	Taxes          decimal.Decimal
	Discount       decimal.Decimal
	Total          decimal.Decimal
	ValidUntil     time.Time
	Status         BudgetStatus
	SentAt         *time.Time
	ApprovedAt     *time.Time
	RejectedAt     *time.Time
	ExpiredAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int64
}

type NewBudgetParams struct {
	ID             string
	ServiceOrderID string
	CustomerID     string
	Items          []BudgetItem
	// ValidDays <= 0 selects DefaultBudgetValidDays.
	ValidDays int
	// A nil TaxRate selects DefaultBudgetTaxRate; a zero rate means no tax.
	TaxRate *decimal.Decimal
}

// NewBudget prices the items and opens a DRAFT budget valid for ValidDays.
func NewBudget(p NewBudgetParams, now time.Time) (Budget, error) {
	id := strings.TrimSpace(p.ID)
	serviceOrderID := strings.TrimSpace(p.ServiceOrderID)
	customerID := strings.TrimSpace(p.CustomerID)
	switch {
	case id == "":
		return Budget{}, fmt.Errorf("%w: missing id", ErrInvalidBudget)
	case serviceOrderID == "":
		return Budget{}, fmt.Errorf("%w: missing service order id", ErrInvalidBudget)
	case customerID == "":
		return Budget{}, fmt.Errorf("%w: missing customer id", ErrInvalidBudget)
	case len(p.Items) == 0:
		return Budget{}, ErrItemsRequired
	case p.TaxRate != nil && p.TaxRate.IsNegative():
		return Budget{}, fmt.Errorf("%w: negative tax rate", ErrInvalidBudget)
	}

	validDays := p.ValidDays
	if validDays <= 0 {
		validDays = DefaultBudgetValidDays
	}
	taxRate := DefaultBudgetTaxRate
	if p.TaxRate != nil {
		taxRate = *p.TaxRate
	}

	subtotal := decimal.Zero
	for _, it := range p.Items {
		subtotal = subtotal.Add(it.Total)
	}
	taxes := subtotal.Mul(taxRate).Round(2)
	discount := decimal.Zero

	return Budget{
		ID:             id,
		ServiceOrderID: serviceOrderID,
		CustomerID:     customerID,
		Items:          slices.Clone(p.Items),
		Subtotal:       subtotal,
		Taxes:          taxes,
		Discount:       discount,
		Total:          subtotal.Add(taxes).Sub(discount),
		ValidUntil:     now.AddDate(0, 0, validDays),
		Status:         BudgetStatusDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func (b Budget) Send(now time.Time) (Budget, error) {
	if !b.Status.CanTransitionTo(BudgetStatusSent) {
		return Budget{}, fmt.Errorf("%w: status is %s", ErrOnlyDraftCanBeSent, b.Status)
	}
	next := b.moveTo(BudgetStatusSent, now)
	next.SentAt = timePtr(now)
	return next, nil
}

// Approve accepts the quote; the validity window is inclusive (now == ValidUntil succeeds).
func (b Budget) Approve(now time.Time) (Budget, error) {
	if !b.Status.CanTransitionTo(BudgetStatusApproved) {
		return Budget{}, fmt.Errorf("%w: status is %s", ErrOnlySentCanBeApproved, b.Status)
	}
	if b.IsExpired(now) {
		return Budget{}, fmt.Errorf("%w: valid until %s", ErrExpiredCannotBeApproved, b.ValidUntil.Format(time.RFC3339))
	}
	next := b.moveTo(BudgetStatusApproved, now)
	next.ApprovedAt = timePtr(now)
	return next, nil
}

func (b Budget) Reject(now time.Time) (Budget, error) {
	if !b.Status.CanTransitionTo(BudgetStatusRejected) {
		return Budget{}, fmt.Errorf("%w: status is %s", ErrOnlySentCanBeRejected, b.Status)
	}
	next := b.moveTo(BudgetStatusRejected, now)
	next.RejectedAt = timePtr(now)
	return next, nil
}

// MarkExpired closes a SENT budget whose validity window has passed.
func (b Budget) MarkExpired(now time.Time) (Budget, error) {
	if !b.Status.CanTransitionTo(BudgetStatusExpired) {
		return Budget{}, fmt.Errorf("%w: status is %s", ErrOnlySentCanExpire, b.Status)
	}
	if !b.IsExpired(now) {
		return Budget{}, ErrBudgetNotExpired
	}
	next := b.moveTo(BudgetStatusExpired, now)
	next.ExpiredAt = timePtr(now)
	return next, nil
}

// IsExpired compares against ValidUntil only; a SENT budget can be logically
// expired before its status says so.
func (b Budget) IsExpired(now time.Time) bool {
	return now.After(b.ValidUntil)
}

func (b Budget) CanBeModified() bool {
	return b.Status == BudgetStatusDraft
}

// IsActive reports whether the budget still blocks a new one for the same order.
func (b Budget) IsActive() bool {
	switch b.Status {
	case BudgetStatusDraft, BudgetStatusSent, BudgetStatusApproved:
		return true
	}
	return false
}

func (b Budget) moveTo(status BudgetStatus, now time.Time) Budget {
	next := b
	next.Items = slices.Clone(b.Items)
	next.SentAt = copyTime(b.SentAt)
	next.ApprovedAt = copyTime(b.ApprovedAt)
	next.RejectedAt = copyTime(b.RejectedAt)
	next.ExpiredAt = copyTime(b.ExpiredAt)
	next.Status = status
	next.UpdatedAt = now
	return next
}
