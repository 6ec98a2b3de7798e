package entities

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"oficina_xpto/internal/domain/valueobjects"
)

// StatusHistoryEntry records one status change of a service order.
type StatusHistoryEntry struct {
	Status    ServiceOrderStatus
	ChangedAt time.Time
	Notes     string
}

// ServiceOrder is the aggregate that tracks a vehicle through the workshop.
//
// It is a value: every operation returns a new ServiceOrder and leaves the
// receiver untouched, so a failed call never leaves partial state behind.
// Once DELIVERED, line items, mechanic and diagnosis are locked.
type ServiceOrder struct {
	id          string
	orderNumber string
	customerID  string
	vehicleID   string
	mechanicID  string
	status      ServiceOrderStatus
	services    []ServiceLineItem
	parts       []PartLineItem
	history     []StatusHistoryEntry
	description string
	diagnosis   string
	createdAt   time.Time
	startedAt   *time.Time
	completedAt *time.Time
	deliveredAt *time.Time
	updatedAt   time.Time
	version     int64
}

type NewServiceOrderParams struct {
	ID          string
	OrderNumber string
	CustomerID  string
	VehicleID   string
	Description string
}

// NewServiceOrder opens an order in RECEIVED with one history entry.
func NewServiceOrder(p NewServiceOrderParams, now time.Time) (ServiceOrder, error) {
	id := strings.TrimSpace(p.ID)
	customerID := strings.TrimSpace(p.CustomerID)
	vehicleID := strings.TrimSpace(p.VehicleID)
	switch {
	case id == "":
		return ServiceOrder{}, fmt.Errorf("%w: missing id", ErrInvalidServiceOrder)
	case customerID == "":
		return ServiceOrder{}, fmt.Errorf("%w: missing customer id", ErrInvalidServiceOrder)
	case vehicleID == "":
		return ServiceOrder{}, fmt.Errorf("%w: missing vehicle id", ErrInvalidServiceOrder)
	}

	return ServiceOrder{
		id:          id,
		orderNumber: strings.TrimSpace(p.OrderNumber),
		customerID:  customerID,
		vehicleID:   vehicleID,
		status:      ServiceOrderStatusReceived,
		history: []StatusHistoryEntry{
			{Status: ServiceOrderStatusReceived, ChangedAt: now, Notes: "service order created"},
		},
		description: strings.TrimSpace(p.Description),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ChangeStatus moves the order along one edge of ServiceOrderTransitions and
// appends exactly one history entry.
func (o ServiceOrder) ChangeStatus(to ServiceOrderStatus, notes string, now time.Time) (ServiceOrder, error) {
	if !to.Valid() || !o.status.CanTransitionTo(to) {
		return ServiceOrder{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, o.status, to)
	}

	notes = strings.TrimSpace(notes)
	if notes == "" {
		notes = fmt.Sprintf("status changed from %s to %s", o.status, to)
	}

	next := o.clone()
	next.status = to
	next.history = append(next.history, StatusHistoryEntry{Status: to, ChangedAt: now, Notes: notes})
	switch to {
	case ServiceOrderStatusInProgress:
		next.startedAt = timePtr(now)
	case ServiceOrderStatusFinished:
		next.completedAt = timePtr(now)
	case ServiceOrderStatusDelivered:
		next.deliveredAt = timePtr(now)
	}
	next.touch(now)
	return next, nil
}

// StartExecution begins the work after the customer approved the budget.
func (o ServiceOrder) StartExecution(now time.Time) (ServiceOrder, error) {
	if o.status != ServiceOrderStatusAwaitingApproval {
		return ServiceOrder{}, fmt.Errorf("%w: cannot start execution from %s", ErrInvalidTransition, o.status)
	}
	return o.ChangeStatus(ServiceOrderStatusInProgress, "execution started", now)
}

func (o ServiceOrder) Finish(now time.Time) (ServiceOrder, error) {
	if o.status != ServiceOrderStatusInProgress {
		return ServiceOrder{}, fmt.Errorf("%w: cannot finish from %s", ErrInvalidTransition, o.status)
	}
	return o.ChangeStatus(ServiceOrderStatusFinished, "service finished", now)
}

func (o ServiceOrder) Deliver(now time.Time) (ServiceOrder, error) {
	if o.status != ServiceOrderStatusFinished {
		return ServiceOrder{}, fmt.Errorf("%w: cannot deliver from %s", ErrInvalidTransition, o.status)
	}
	return o.ChangeStatus(ServiceOrderStatusDelivered, "vehicle delivered to customer", now)
}

// AddService inserts item, replacing any line with the same ServiceID.
func (o ServiceOrder) AddService(item ServiceLineItem, now time.Time) (ServiceOrder, error) {
	if err := o.ensureNotLocked(); err != nil {
		return ServiceOrder{}, err
	}
	if err := validateLine(item.ServiceID, item.Quantity); err != nil {
		return ServiceOrder{}, err
	}

	next := o.clone()
	if i := slices.IndexFunc(next.services, func(s ServiceLineItem) bool { return s.ServiceID == item.ServiceID }); i >= 0 {
		next.services[i] = item
	} else {
		next.services = append(next.services, item)
	}
	next.touch(now)
	return next, nil
}

// RemoveService drops the line for serviceID; unknown ids are a no-op.
func (o ServiceOrder) RemoveService(serviceID string, now time.Time) (ServiceOrder, error) {
	if err := o.ensureNotLocked(); err != nil {
		return ServiceOrder{}, err
	}
	if !slices.ContainsFunc(o.services, func(s ServiceLineItem) bool { return s.ServiceID == serviceID }) {
		return o, nil
	}

	next := o.clone()
	next.services = slices.DeleteFunc(next.services, func(s ServiceLineItem) bool { return s.ServiceID == serviceID })
	next.touch(now)
	return next, nil
}

// AddPart inserts item, replacing any line with the same PartID.
func (o ServiceOrder) AddPart(item PartLineItem, now time.Time) (ServiceOrder, error) {
	if err := o.ensureNotLocked(); err != nil {
		return ServiceOrder{}, err
	}
	if err := validateLine(item.PartID, item.Quantity); err != nil {
		return ServiceOrder{}, err
	}

	next := o.clone()
	if i := slices.IndexFunc(next.parts, func(p PartLineItem) bool { return p.PartID == item.PartID }); i >= 0 {
		next.parts[i] = item
	} else {
		next.parts = append(next.parts, item)
	}
	next.touch(now)
	return next, nil
}

func (o ServiceOrder) RemovePart(partID string, now time.Time) (ServiceOrder, error) {
	if err := o.ensureNotLocked(); err != nil {
		return ServiceOrder{}, err
	}
	if !slices.ContainsFunc(o.parts, func(p PartLineItem) bool { return p.PartID == partID }) {
		return o, nil
	}

	next := o.clone()
	next.parts = slices.DeleteFunc(next.parts, func(p PartLineItem) bool { return p.PartID == partID })
	next.touch(now)
	return next, nil
}

func (o ServiceOrder) AssignMechanic(mechanicID string, now time.Time) (ServiceOrder, error) {
	if err := o.ensureNotLocked(); err != nil {
		return ServiceOrder{}, err
	}
	mechanicID = strings.TrimSpace(mechanicID)
	if mechanicID == "" {
		return ServiceOrder{}, fmt.Errorf("%w: missing mechanic id", ErrInvalidMechanic)
	}

	next := o.clone()
	next.mechanicID = mechanicID
	next.touch(now)
	return next, nil
}

func (o ServiceOrder) UpdateDiagnosis(diagnosis string, now time.Time) (ServiceOrder, error) {
	if err := o.ensureNotLocked(); err != nil {
		return ServiceOrder{}, err
	}

	next := o.clone()
	next.diagnosis = strings.TrimSpace(diagnosis)
	next.touch(now)
	return next, nil
}

// TotalServicePrice is recomputed from the live lines on every call.
func (o ServiceOrder) TotalServicePrice() (valueobjects.Money, error) {
	totals := make([]valueobjects.Money, 0, len(o.services))
	for _, s := range o.services {
		totals = append(totals, s.TotalPrice)
	}
	return valueobjects.SumMoney(o.currency(), totals...)
}

func (o ServiceOrder) TotalPartsPrice() (valueobjects.Money, error) {
	totals := make([]valueobjects.Money, 0, len(o.parts))
	for _, p := range o.parts {
		totals = append(totals, p.TotalPrice)
	}
	return valueobjects.SumMoney(o.currency(), totals...)
}

func (o ServiceOrder) TotalPrice() (valueobjects.Money, error) {
	services, err := o.TotalServicePrice()
	if err != nil {
		return valueobjects.Money{}, err
	}
	parts, err := o.TotalPartsPrice()
	if err != nil {
		return valueobjects.Money{}, err
	}
	return services.Add(parts)
}

func (o ServiceOrder) IsLocked() bool {
	return o.status == ServiceOrderStatusDelivered
}

func (o ServiceOrder) ID() string                 { return o.id }
func (o ServiceOrder) OrderNumber() string        { return o.orderNumber }
func (o ServiceOrder) CustomerID() string         { return o.customerID }
func (o ServiceOrder) VehicleID() string          { return o.vehicleID }
func (o ServiceOrder) MechanicID() string         { return o.mechanicID }
func (o ServiceOrder) Status() ServiceOrderStatus { return o.status }
func (o ServiceOrder) Description() string        { return o.description }
func (o ServiceOrder) Diagnosis() string          { return o.diagnosis }
func (o ServiceOrder) CreatedAt() time.Time       { return o.createdAt }
func (o ServiceOrder) StartedAt() *time.Time      { return copyTime(o.startedAt) }
func (o ServiceOrder) CompletedAt() *time.Time    { return copyTime(o.completedAt) }
func (o ServiceOrder) DeliveredAt() *time.Time    { return copyTime(o.deliveredAt) }
func (o ServiceOrder) UpdatedAt() time.Time       { return o.updatedAt }
func (o ServiceOrder) Version() int64             { return o.version }

func (o ServiceOrder) Services() []ServiceLineItem   { return slices.Clone(o.services) }
func (o ServiceOrder) Parts() []PartLineItem         { return slices.Clone(o.parts) }
func (o ServiceOrder) History() []StatusHistoryEntry { return slices.Clone(o.history) }

// ServiceOrderSnapshot is the flat representation used by repositories to
// persist and rebuild the aggregate.
type ServiceOrderSnapshot struct {
	ID          string
	OrderNumber string
	CustomerID  string
	VehicleID   string
	MechanicID  string
	Status      ServiceOrderStatus
	Services    []ServiceLineItem
	Parts       []PartLineItem
	History     []StatusHistoryEntry
	Description string
	Diagnosis   string
	CreatedAt   time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	DeliveredAt *time.Time
	UpdatedAt   time.Time
	Version     int64
}

func (o ServiceOrder) Snapshot() ServiceOrderSnapshot {
	return ServiceOrderSnapshot{
		ID:          o.id,
		OrderNumber: o.orderNumber,
		CustomerID:  o.customerID,
		VehicleID:   o.vehicleID,
		MechanicID:  o.mechanicID,
		Status:      o.status,
		Services:    slices.Clone(o.services),
		Parts:       slices.Clone(o.parts),
		History:     slices.Clone(o.history),
		Description: o.description,
		Diagnosis:   o.diagnosis,
		CreatedAt:   o.createdAt,
		StartedAt:   copyTime(o.startedAt),
		CompletedAt: copyTime(o.completedAt),
		DeliveredAt: copyTime(o.deliveredAt),
		UpdatedAt:   o.updatedAt,
		Version:     o.version,
	}
}

// RestoreServiceOrder rebuilds an aggregate from persisted state without
// re-running creation rules. Repository use only.
func RestoreServiceOrder(s ServiceOrderSnapshot) ServiceOrder {
	return ServiceOrder{
		id:          s.ID,
		orderNumber: s.OrderNumber,
		customerID:  s.CustomerID,
		vehicleID:   s.VehicleID,
		mechanicID:  s.MechanicID,
		status:      s.Status,
		services:    slices.Clone(s.Services),
		parts:       slices.Clone(s.Parts),
		history:     slices.Clone(s.History),
		description: s.Description,
		diagnosis:   s.Diagnosis,
		createdAt:   s.CreatedAt,
		startedAt:   copyTime(s.StartedAt),
		completedAt: copyTime(s.CompletedAt),
		deliveredAt: copyTime(s.DeliveredAt),
		updatedAt:   s.UpdatedAt,
		version:     s.Version,
	}
}

func (o ServiceOrder) ensureNotLocked() error {
	if o.IsLocked() {
		return fmt.Errorf("%w: order %s", ErrAggregateLocked, o.id)
	}
	return nil
}

func (o ServiceOrder) clone() ServiceOrder {
	next := o
	next.services = slices.Clone(o.services)
	next.parts = slices.Clone(o.parts)
	next.history = slices.Clone(o.history)
	next.startedAt = copyTime(o.startedAt)
	next.completedAt = copyTime(o.completedAt)
	next.deliveredAt = copyTime(o.deliveredAt)
	return next
}

func (o *ServiceOrder) touch(now time.Time) {
	o.updatedAt = now
}

func (o ServiceOrder) currency() valueobjects.Currency {
	if len(o.services) > 0 {
		return o.services[0].TotalPrice.Currency()
	}
	if len(o.parts) > 0 {
		return o.parts[0].TotalPrice.Currency()
	}
	return valueobjects.DefaultCurrency
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
