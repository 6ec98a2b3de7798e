package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type BudgetItemType string

const (
	BudgetItemTypeService BudgetItemType = "SERVICE"
	BudgetItemTypePart    BudgetItemType = "PART"
)

// ItemRef identifies what a budget item prices. The only implementations are
// ServiceRef and PartRef, so an item always references exactly one of them.
type ItemRef interface {
	ItemType() BudgetItemType
	RefID() string
	sealed()
}

type ServiceRef struct {
	ServiceID string
}

func (r ServiceRef) ItemType() BudgetItemType { return BudgetItemTypeService }
func (r ServiceRef) RefID() string            { return r.ServiceID }
func (ServiceRef) sealed()                    {}

type PartRef struct {
	PartID string
}

func (r PartRef) ItemType() BudgetItemType { return BudgetItemTypePart }
func (r PartRef) RefID() string            { return r.PartID }
func (PartRef) sealed()                    {}

// NewItemRef builds the variant matching itemType.
func NewItemRef(itemType BudgetItemType, refID string) (ItemRef, error) {
	refID = strings.TrimSpace(refID)
	if refID == "" {
		return nil, fmt.Errorf("%w: missing reference id", ErrInvalidBudgetItem)
	}
	switch itemType {
	case BudgetItemTypeService:
		return ServiceRef{ServiceID: refID}, nil
	case BudgetItemTypePart:
		return PartRef{PartID: refID}, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidBudgetItem, itemType)
	}
}

// BudgetItem is one priced line of a budget. Amounts are plain decimals since
// they are persisted verbatim.
type BudgetItem struct {
	ID          string
	Ref         ItemRef
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

func NewBudgetItem(id string, ref ItemRef, description string, quantity int, unitPrice decimal.Decimal) (BudgetItem, error) {
	id = strings.TrimSpace(id)
	switch {
	case id == "":
		return BudgetItem{}, fmt.Errorf("%w: missing id", ErrInvalidBudgetItem)
	case ref == nil || strings.TrimSpace(ref.RefID()) == "":
		return BudgetItem{}, fmt.Errorf("%w: missing reference", ErrInvalidBudgetItem)
	case quantity <= 0:
		return BudgetItem{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	case unitPrice.IsNegative():
		return BudgetItem{}, fmt.Errorf("%w: negative unit price", ErrInvalidBudgetItem)
	}

	return BudgetItem{
		ID:          id,
		Ref:         ref,
		Description: strings.TrimSpace(description),
		Quantity:    quantity,
		UnitPrice:   unitPrice.Round(2),
		Total:       unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2),
	}, nil
}

func (i BudgetItem) Type() BudgetItemType {
	if i.Ref == nil {
		return ""
	}
	return i.Ref.ItemType()
}

func (i BudgetItem) ServiceID() (string, bool) {
	r, ok := i.Ref.(ServiceRef)
	return r.ServiceID, ok
}

func (i BudgetItem) PartID() (string, bool) {
	r, ok := i.Ref.(PartRef)
	return r.PartID, ok
}
