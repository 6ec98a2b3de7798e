package entities

import "errors"

var (
	// * Validation errors.
	ErrInvalidName         = errors.New("invalid name")
	ErrInvalidPhone        = errors.New("invalid phone")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidCustomer     = errors.New("invalid customer")
	ErrInvalidCustomerType = errors.New("invalid customer type")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidLineItem     = errors.New("invalid line item")
	ErrInvalidBudgetItem   = errors.New("invalid budget item")
	ErrInvalidServiceOrder = errors.New("invalid service order")
	ErrInvalidBudget       = errors.New("invalid budget")
	ErrInvalidMechanic     = errors.New("invalid mechanic")
	ErrInvalidCatalogItem  = errors.New("invalid catalog item")
	ErrItemsRequired       = errors.New("budget requires at least one item")

	// * Consistency errors.
	ErrDocumentTypeMismatch = errors.New("document does not match customer type")
	ErrAggregateLocked      = errors.New("service order is delivered and cannot be modified")
	ErrInsufficientStock    = errors.New("insufficient part stock")

	// * State-machine errors.
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidTransition       = errors.New("invalid transition")
	ErrOnlyDraftCanBeSent      = errors.New("only draft budgets can be sent")
	ErrOnlySentCanBeApproved   = errors.New("only sent budgets can be approved")
	ErrOnlySentCanBeRejected   = errors.New("only sent budgets can be rejected")
	ErrOnlySentCanExpire       = errors.New("only sent budgets can expire")
	ErrExpiredCannotBeApproved = errors.New("expired budget cannot be approved")
	ErrBudgetNotExpired        = errors.New("budget is still within its validity window")
)
