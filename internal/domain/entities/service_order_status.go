package entities

import "slices"

// ServiceOrderStatus is a step of the service order workflow.
type ServiceOrderStatus string

const (
	ServiceOrderStatusReceived         ServiceOrderStatus = "RECEIVED"
	ServiceOrderStatusDiagnosing       ServiceOrderStatus = "DIAGNOSING"
	ServiceOrderStatusAwaitingApproval ServiceOrderStatus = "AWAITING_APPROVAL"
	ServiceOrderStatusInProgress       ServiceOrderStatus = "IN_PROGRESS"
	ServiceOrderStatusFinished         ServiceOrderStatus = "FINISHED"
	ServiceOrderStatusDelivered        ServiceOrderStatus = "DELIVERED"
)

// ServiceOrderTransitions lists every legal edge. AWAITING_APPROVAL -> DIAGNOSING
// is the re-diagnosis path after a rejected budget; DELIVERED is terminal.
var ServiceOrderTransitions = map[ServiceOrderStatus][]ServiceOrderStatus{
	ServiceOrderStatusReceived:         {ServiceOrderStatusDiagnosing},
	ServiceOrderStatusDiagnosing:       {ServiceOrderStatusAwaitingApproval},
	ServiceOrderStatusAwaitingApproval: {ServiceOrderStatusInProgress, ServiceOrderStatusDiagnosing},
	ServiceOrderStatusInProgress:       {ServiceOrderStatusFinished},
	ServiceOrderStatusFinished:         {ServiceOrderStatusDelivered},
	ServiceOrderStatusDelivered:        {},
}

func (s ServiceOrderStatus) Valid() bool {
	_, ok := ServiceOrderTransitions[s]
	return ok
}

func (s ServiceOrderStatus) IsTerminal() bool {
	return s.Valid() && len(ServiceOrderTransitions[s]) == 0
}

// CanTransitionTo reports whether s -> to is an edge of ServiceOrderTransitions.
func (s ServiceOrderStatus) CanTransitionTo(to ServiceOrderStatus) bool {
	return slices.Contains(ServiceOrderTransitions[s], to)
}
