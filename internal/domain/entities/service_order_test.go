package entities

import (
	"errors"
	"testing"
	"time"

	"oficina_xpto/internal/domain/valueobjects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func brl(t *testing.T, v float64) valueobjects.Money {
	t.Helper()
	m, err := valueobjects.NewMoneyFromFloat(v, valueobjects.CurrencyBRL)
	require.NoError(t, err)
	return m
}

func newOrder(t *testing.T) ServiceOrder {
	t.Helper()
	o, err := NewServiceOrder(NewServiceOrderParams{
		ID:          "os-1",
		OrderNumber: "OS-20260310-000001",
		CustomerID:  "cust-1",
		VehicleID:   "veh-1",
		Description: " engine noise ",
	}, t0)
	require.NoError(t, err)
	return o
}

func walk(t *testing.T, o ServiceOrder, statuses ...ServiceOrderStatus) ServiceOrder {
	t.Helper()
	for i, s := range statuses {
		next, err := o.ChangeStatus(s, "", t0.Add(time.Duration(i+1)*time.Hour))
		require.NoError(t, err)
		o = next
	}
	return o
}

func TestNewServiceOrder(t *testing.T) {
	o := newOrder(t)

	assert.Equal(t, ServiceOrderStatusReceived, o.Status())
	assert.Equal(t, "engine noise", o.Description())
	require.Len(t, o.History(), 1)
	assert.Equal(t, ServiceOrderStatusReceived, o.History()[0].Status)
	assert.Equal(t, t0, o.CreatedAt())
	assert.Nil(t, o.StartedAt())

	_, err := NewServiceOrder(NewServiceOrderParams{ID: "x", CustomerID: " ", VehicleID: "v"}, t0)
	assert.True(t, errors.Is(err, ErrInvalidServiceOrder))
}

func TestServiceOrder_ChangeStatus(t *testing.T) {
	t.Run("skipping finished is rejected", func(t *testing.T) {
		o := walk(t, newOrder(t),
			ServiceOrderStatusDiagnosing,
			ServiceOrderStatusAwaitingApproval,
			ServiceOrderStatusInProgress,
		)

		_, err := o.ChangeStatus(ServiceOrderStatusDelivered, "", t0.Add(5*time.Hour))

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidStatusTransition))
		assert.Equal(t, ServiceOrderStatusInProgress, o.Status())
		assert.Len(t, o.History(), 4)
	})

	t.Run("full lifecycle records history and timestamps", func(t *testing.T) {
		o := walk(t, newOrder(t),
			ServiceOrderStatusDiagnosing,
			ServiceOrderStatusAwaitingApproval,
			ServiceOrderStatusDiagnosing,
			ServiceOrderStatusAwaitingApproval,
			ServiceOrderStatusInProgress,
			ServiceOrderStatusFinished,
			ServiceOrderStatusDelivered,
		)

		h := o.History()
		require.Len(t, h, 8)
		assert.Equal(t, "status changed from RECEIVED to DIAGNOSING", h[1].Notes)
		assert.Equal(t, ServiceOrderStatusDelivered, h[7].Status)
		require.NotNil(t, o.StartedAt())
		require.NotNil(t, o.CompletedAt())
		require.NotNil(t, o.DeliveredAt())
		assert.True(t, o.IsLocked())
	})

	t.Run("custom notes are kept", func(t *testing.T) {
		o, err := newOrder(t).ChangeStatus(ServiceOrderStatusDiagnosing, "  mechanic on it ", t0)
		require.NoError(t, err)
		assert.Equal(t, "mechanic on it", o.History()[1].Notes)
	})

	t.Run("every edge outside the table fails", func(t *testing.T) {
		all := []ServiceOrderStatus{
			ServiceOrderStatusReceived,
			ServiceOrderStatusDiagnosing,
			ServiceOrderStatusAwaitingApproval,
			ServiceOrderStatusInProgress,
			ServiceOrderStatusFinished,
			ServiceOrderStatusDelivered,
		}
		for _, from := range all {
			for _, to := range all {
				o := RestoreServiceOrder(ServiceOrderSnapshot{ID: "os", Status: from})
				_, err := o.ChangeStatus(to, "", t0)
				if from.CanTransitionTo(to) {
					assert.NoError(t, err, "%s -> %s", from, to)
				} else {
					assert.True(t, errors.Is(err, ErrInvalidStatusTransition), "%s -> %s", from, to)
				}
			}
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := newOrder(t).ChangeStatus("PARKED", "", t0)
		assert.True(t, errors.Is(err, ErrInvalidStatusTransition))
	})
}

func TestServiceOrder_ConvenienceTransitions(t *testing.T) {
	o := newOrder(t)

	_, err := o.StartExecution(t0)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	_, err = o.Finish(t0)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	_, err = o.Deliver(t0)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	o = walk(t, o, ServiceOrderStatusDiagnosing, ServiceOrderStatusAwaitingApproval)
	o, err = o.StartExecution(t0)
	require.NoError(t, err)
	o, err = o.Finish(t0)
	require.NoError(t, err)
	o, err = o.Deliver(t0)
	require.NoError(t, err)
	assert.Equal(t, ServiceOrderStatusDelivered, o.Status())
}

func TestServiceOrder_AddService(t *testing.T) {
	t.Run("same id replaces the line", func(t *testing.T) {
		first, err := NewServiceLineItem("S1", "Oil change", 1, brl(t, 100))
		require.NoError(t, err)
		second, err := NewServiceLineItem("S1", "Oil change", 1, brl(t, 200))
		require.NoError(t, err)

		o, err := newOrder(t).AddService(first, t0)
		require.NoError(t, err)
		o, err = o.AddService(second, t0)
		require.NoError(t, err)

		services := o.Services()
		require.Len(t, services, 1)
		assert.True(t, services[0].TotalPrice.Amount().Equal(brl(t, 200).Amount()))
	})

	t.Run("receiver is left untouched", func(t *testing.T) {
		o := newOrder(t)
		line, _ := NewServiceLineItem("S1", "Alignment", 2, brl(t, 50))

		next, err := o.AddService(line, t0.Add(time.Minute))
		require.NoError(t, err)

		assert.Empty(t, o.Services())
		assert.Len(t, next.Services(), 1)
		assert.Equal(t, t0.Add(time.Minute), next.UpdatedAt())
	})

	t.Run("invalid line", func(t *testing.T) {
		_, err := newOrder(t).AddService(ServiceLineItem{ServiceID: "S1", Quantity: 0}, t0)
		assert.True(t, errors.Is(err, ErrInvalidQuantity))
	})
}

func TestServiceOrder_PartsAndTotals(t *testing.T) {
	o := newOrder(t)
	s1, _ := NewServiceLineItem("S1", "Brake service", 1, brl(t, 150))
	s2, _ := NewServiceLineItem("S2", "Inspection", 2, brl(t, 40))
	p1, _ := NewPartLineItem("P1", "Brake pad", 4, brl(t, 35.5))

	var err error
	o, err = o.AddService(s1, t0)
	require.NoError(t, err)
	o, err = o.AddService(s2, t0)
	require.NoError(t, err)
	o, err = o.AddPart(p1, t0)
	require.NoError(t, err)

	services, err := o.TotalServicePrice()
	require.NoError(t, err)
	parts, err := o.TotalPartsPrice()
	require.NoError(t, err)
	total, err := o.TotalPrice()
	require.NoError(t, err)

	assert.Equal(t, "230", services.Amount().String())
	assert.Equal(t, "142", parts.Amount().String())
	assert.Equal(t, "372", total.Amount().String())

	o, err = o.RemovePart("P1", t0)
	require.NoError(t, err)
	o, err = o.RemoveService("missing", t0)
	require.NoError(t, err)
	total, err = o.TotalPrice()
	require.NoError(t, err)
	assert.Equal(t, "230", total.Amount().String())
	assert.Empty(t, o.Parts())
	assert.Len(t, o.Services(), 2)
}

func TestServiceOrder_EmptyTotalsAreZero(t *testing.T) {
	total, err := newOrder(t).TotalPrice()
	require.NoError(t, err)
	assert.True(t, total.IsZero())
	assert.Equal(t, valueobjects.CurrencyBRL, total.Currency())
}

func TestServiceOrder_LockedAfterDelivery(t *testing.T) {
	line, _ := NewServiceLineItem("S1", "Wash", 1, brl(t, 30))
	part, _ := NewPartLineItem("P1", "Filter", 1, brl(t, 30))
	o, err := newOrder(t).AddService(line, t0)
	require.NoError(t, err)
	o = walk(t, o,
		ServiceOrderStatusDiagnosing,
		ServiceOrderStatusAwaitingApproval,
		ServiceOrderStatusInProgress,
		ServiceOrderStatusFinished,
		ServiceOrderStatusDelivered,
	)

	_, err = o.AddService(line, t0)
	assert.True(t, errors.Is(err, ErrAggregateLocked))
	_, err = o.RemoveService("S1", t0)
	assert.True(t, errors.Is(err, ErrAggregateLocked))
	_, err = o.AddPart(part, t0)
	assert.True(t, errors.Is(err, ErrAggregateLocked))
	_, err = o.RemovePart("P1", t0)
	assert.True(t, errors.Is(err, ErrAggregateLocked))
	_, err = o.AssignMechanic("mec-1", t0)
	assert.True(t, errors.Is(err, ErrAggregateLocked))
	_, err = o.UpdateDiagnosis("late", t0)
	assert.True(t, errors.Is(err, ErrAggregateLocked))
	assert.Len(t, o.Services(), 1)
}

func TestServiceOrder_AssignMechanicAndDiagnosis(t *testing.T) {
	o, err := newOrder(t).AssignMechanic(" mec-7 ", t0)
	require.NoError(t, err)
	assert.Equal(t, "mec-7", o.MechanicID())

	_, err = o.AssignMechanic("", t0)
	assert.True(t, errors.Is(err, ErrInvalidMechanic))

	o, err = o.UpdateDiagnosis("worn timing belt", t0)
	require.NoError(t, err)
	assert.Equal(t, "worn timing belt", o.Diagnosis())
}

func TestServiceOrder_SnapshotRoundTrip(t *testing.T) {
	line, _ := NewServiceLineItem("S1", "Wash", 1, brl(t, 30))
	o, err := newOrder(t).AddService(line, t0)
	require.NoError(t, err)
	o = walk(t, o, ServiceOrderStatusDiagnosing)

	snap := o.Snapshot()
	snap.Version = 3
	restored := RestoreServiceOrder(snap)

	assert.Equal(t, o.ID(), restored.ID())
	assert.Equal(t, o.Status(), restored.Status())
	assert.Equal(t, o.History(), restored.History())
	assert.Equal(t, int64(3), restored.Version())

	snap.Services[0].Name = "mutated"
	assert.Equal(t, "Wash", restored.Services()[0].Name)
}
