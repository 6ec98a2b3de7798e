package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/events"
	"oficina_xpto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrBudgetNotFound             = errors.New("budget not found")
	ErrInvalidBudgetID            = errors.New("invalid budget id")
	ErrActiveBudgetExists         = errors.New("service order already has an active budget")
	ErrInvalidValidDays           = errors.New("invalid budget validity days")
	ErrTooManyItems               = errors.New("too many budget items")
	ErrServiceOrderNotInDiagnosis = errors.New("service order is not under diagnosis")
)

type CreateBudgetInput struct {
	ServiceOrderID string
	// ValidDays of 0 selects the policy default.
	ValidDays int
}

// IBudgetUseCase exposes budget (orçamento) operations.
//
// Budget transitions keep the service order in step:
//   - Send    => order DIAGNOSING -> AWAITING_APPROVAL
//   - Approve => order AWAITING_APPROVAL -> IN_PROGRESS
//   - Reject / expiry => order AWAITING_APPROVAL -> DIAGNOSING
type IBudgetUseCase interface {
	Create(ctx context.Context, in CreateBudgetInput) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.Budget, error)
	Send(ctx context.Context, id string) (entities.Budget, error)
	Approve(ctx context.Context, id string) (entities.Budget, error)
	Reject(ctx context.Context, id string) (entities.Budget, error)
	ExpireOverdue(ctx context.Context) (int, error)
}

type BudgetUseCase struct {
	budgets interfaces.IBudgetRepository
	orders  interfaces.IServiceOrderRepository
	policy  BudgetPolicy
	n       notifier
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(budgets interfaces.IBudgetRepository, orders interfaces.IServiceOrderRepository, policy BudgetPolicy, c Collaborators) *BudgetUseCase {
	return &BudgetUseCase{
		budgets: budgets,
		orders:  orders,
		policy:  policy,
		n:       newNotifier(c, aggregateBudget),
	}
}

// Create quotes the current lines of a service order under diagnosis.
// Only one DRAFT, SENT or APPROVED budget may exist per order.
func (u *BudgetUseCase) Create(ctx context.Context, in CreateBudgetInput) (entities.Budget, error) {
	order, err := u.loadOrder(ctx, in.ServiceOrderID)
	if err != nil {
		return entities.Budget{}, err
	}
	if order.Status() != entities.ServiceOrderStatusDiagnosing {
		return entities.Budget{}, fmt.Errorf("%w: status is %s", ErrServiceOrderNotInDiagnosis, order.Status())
	}

	validDays := in.ValidDays
	if validDays == 0 {
		validDays = u.policy.DefaultValidDays
	}
	if validDays < u.policy.MinValidDays || validDays > u.policy.MaxValidDays {
		return entities.Budget{}, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidValidDays, validDays, u.policy.MinValidDays, u.policy.MaxValidDays)
	}

	existing, err := u.budgets.ListByServiceOrderID(ctx, order.ID())
	if err != nil {
		return entities.Budget{}, err
	}
	for _, b := range existing {
		if b.IsActive() {
			return entities.Budget{}, fmt.Errorf("%w: %s is %s", ErrActiveBudgetExists, b.ID, b.Status)
		}
	}

	items, err := u.itemsFromOrder(order)
	if err != nil {
		return entities.Budget{}, err
	}
	if len(items) < u.policy.MinItems {
		return entities.Budget{}, entities.ErrItemsRequired
	}
	if len(items) > u.policy.MaxItems {
		return entities.Budget{}, fmt.Errorf("%w: %d > %d", ErrTooManyItems, len(items), u.policy.MaxItems)
	}

	b, err := entities.NewBudget(entities.NewBudgetParams{
		ID:             u.n.ids(),
		ServiceOrderID: order.ID(),
		CustomerID:     order.CustomerID(),
		Items:          items,
		ValidDays:      validDays,
		TaxRate:        &u.policy.TaxRate,
	}, u.n.now())
	if err != nil {
		return entities.Budget{}, err
	}

	created, err := u.budgets.Create(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}

	u.n.logger.Info("budget created",
		zap.String("budget_id", created.ID),
		zap.String("service_order_id", created.ServiceOrderID),
		zap.String("total", created.Total.StringFixed(2)),
	)
	u.n.transitioned(aggregateBudget, string(created.Status))
	u.n.publish(ctx, events.BudgetCreated, created.ID, map[string]any{
		"service_order_id": created.ServiceOrderID,
		"total":            created.Total.StringFixed(2),
		"valid_until":      created.ValidUntil.Format(time.RFC3339),
	})
	return created, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.budgets.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.Budget, error) {
	serviceOrderID = strings.TrimSpace(serviceOrderID)
	if serviceOrderID == "" {
		return nil, ErrInvalidServiceOrderID
	}
	return u.budgets.ListByServiceOrderID(ctx, serviceOrderID)
}

func (u *BudgetUseCase) Send(ctx context.Context, id string) (entities.Budget, error) {
	return u.transition(ctx, id, events.BudgetSent, entities.Budget.Send, func(o entities.ServiceOrder, b entities.Budget, now time.Time) (entities.ServiceOrder, bool, error) {
		if o.Status() != entities.ServiceOrderStatusDiagnosing {
			return o, false, nil
		}
		next, err := o.ChangeStatus(entities.ServiceOrderStatusAwaitingApproval, "budget "+b.ID+" sent to customer", now)
		return next, true, err
	})
}

// Approve reads the clock once; the budget's own validity check is the only
// expiry check.
func (u *BudgetUseCase) Approve(ctx context.Context, id string) (entities.Budget, error) {
	return u.transition(ctx, id, events.BudgetApproved, entities.Budget.Approve, func(o entities.ServiceOrder, _ entities.Budget, now time.Time) (entities.ServiceOrder, bool, error) {
		if o.Status() != entities.ServiceOrderStatusAwaitingApproval {
			return o, false, nil
		}
		next, err := o.StartExecution(now)
		return next, true, err
	})
}

func (u *BudgetUseCase) Reject(ctx context.Context, id string) (entities.Budget, error) {
	return u.transition(ctx, id, events.BudgetRejected, entities.Budget.Reject, backToDiagnosis("rejected"))
}

// ExpireOverdue marks every SENT budget past its validity window as EXPIRED
// and returns how many were expired. Budgets changed concurrently are skipped.
func (u *BudgetUseCase) ExpireOverdue(ctx context.Context) (int, error) {
	sent, err := u.budgets.ListByStatus(ctx, entities.BudgetStatusSent)
	if err != nil {
		return 0, err
	}

	now := u.n.now()
	expired := 0
	for _, b := range sent {
		if !b.IsExpired(now) {
			continue
		}
		_, err := u.apply(ctx, b, now, events.BudgetExpired, entities.Budget.MarkExpired, backToDiagnosis("expired"))
		if errors.Is(err, interfaces.ErrConcurrentModification) {
			u.n.logger.Warn("budget changed while expiring, skipped", zap.String("budget_id", b.ID))
			continue
		}
		if err != nil {
			return expired, err
		}
		expired++
	}

	if expired > 0 {
		u.n.logger.Info("overdue budgets expired", zap.Int("count", expired))
	}
	return expired, nil
}

type orderSync func(o entities.ServiceOrder, b entities.Budget, now time.Time) (entities.ServiceOrder, bool, error)

func backToDiagnosis(reason string) orderSync {
	return func(o entities.ServiceOrder, b entities.Budget, now time.Time) (entities.ServiceOrder, bool, error) {
		if o.Status() != entities.ServiceOrderStatusAwaitingApproval {
			return o, false, nil
		}
		next, err := o.ChangeStatus(entities.ServiceOrderStatusDiagnosing, "budget "+b.ID+" "+reason, now)
		return next, true, err
	}
}

func (u *BudgetUseCase) transition(ctx context.Context, id, eventName string, change func(entities.Budget, time.Time) (entities.Budget, error), sync orderSync) (entities.Budget, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	return u.apply(ctx, current, u.n.now(), eventName, change, sync)
}

// apply runs the budget transition and the matching order change, validating
// both before anything is written. The budget is persisted first.
func (u *BudgetUseCase) apply(ctx context.Context, current entities.Budget, now time.Time, eventName string, change func(entities.Budget, time.Time) (entities.Budget, error), sync orderSync) (entities.Budget, error) {
	next, err := change(current, now)
	if err != nil {
		return entities.Budget{}, err
	}

	order, err := u.loadOrder(ctx, current.ServiceOrderID)
	if err != nil {
		return entities.Budget{}, err
	}
	syncedOrder, changed, err := sync(order, next, now)
	if err != nil {
		return entities.Budget{}, err
	}

	updated, err := u.budgets.UpdateStatus(ctx, next)
	if err != nil {
		return entities.Budget{}, err
	}
	if changed {
		if _, err := u.orders.Update(ctx, syncedOrder); err != nil {
			u.n.logger.Error("budget updated but service order sync failed",
				zap.String("budget_id", updated.ID),
				zap.String("service_order_id", order.ID()),
				zap.Error(err),
			)
			return entities.Budget{}, fmt.Errorf("sync service order %s: %w", order.ID(), err)
		}
		u.n.transitioned(aggregateServiceOrder, string(syncedOrder.Status()))
		u.n.publish(ctx, events.ServiceOrderStatusChanged, order.ID(), map[string]any{
			"from": string(order.Status()),
			"to":   string(syncedOrder.Status()),
		})
	}

	u.n.logger.Info("budget status changed",
		zap.String("budget_id", updated.ID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(updated.Status)),
	)
	u.n.transitioned(aggregateBudget, string(updated.Status))
	u.n.publish(ctx, eventName, updated.ID, map[string]any{
		"service_order_id": updated.ServiceOrderID,
		"status":           string(updated.Status),
	})
	return updated, nil
}

func (u *BudgetUseCase) loadOrder(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID() == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return o, nil
}

func (u *BudgetUseCase) itemsFromOrder(o entities.ServiceOrder) ([]entities.BudgetItem, error) {
	items := make([]entities.BudgetItem, 0, len(o.Services())+len(o.Parts()))
	for _, s := range o.Services() {
		item, err := entities.NewBudgetItem(u.n.ids(), entities.ServiceRef{ServiceID: s.ServiceID}, s.Name, s.Quantity, s.UnitPrice.Amount())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	for _, p := range o.Parts() {
		item, err := entities.NewBudgetItem(u.n.ids(), entities.PartRef{PartID: p.PartID}, p.Name, p.Quantity, p.UnitPrice.Amount())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
