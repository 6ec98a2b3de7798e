package entities

import (
	"fmt"
	"strings"

	"oficina_xpto/internal/domain/valueobjects"

	"github.com/shopspring/decimal"
)

// ServiceLineItem is a labour entry of a service order, unique per ServiceID.
type ServiceLineItem struct {
	ServiceID  string
	Name       string
	Quantity   int
	UnitPrice  valueobjects.Money
	TotalPrice valueobjects.Money
}

// PartLineItem is a part entry of a service order, unique per PartID.
type PartLineItem struct {
	PartID     string
	Name       string
	Quantity   int
	UnitPrice  valueobjects.Money
	TotalPrice valueobjects.Money
}

func NewServiceLineItem(serviceID, name string, quantity int, unitPrice valueobjects.Money) (ServiceLineItem, error) {
	total, err := lineTotal(serviceID, quantity, unitPrice)
	if err != nil {
		return ServiceLineItem{}, err
	}
	return ServiceLineItem{
		ServiceID:  strings.TrimSpace(serviceID),
		Name:       strings.TrimSpace(name),
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: total,
	}, nil
}

func NewPartLineItem(partID, name string, quantity int, unitPrice valueobjects.Money) (PartLineItem, error) {
	total, err := lineTotal(partID, quantity, unitPrice)
	if err != nil {
		return PartLineItem{}, err
	}
	return PartLineItem{
		PartID:     strings.TrimSpace(partID),
		Name:       strings.TrimSpace(name),
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: total,
	}, nil
}

func lineTotal(id string, quantity int, unitPrice valueobjects.Money) (valueobjects.Money, error) {
	if strings.TrimSpace(id) == "" {
		return valueobjects.Money{}, fmt.Errorf("%w: missing id", ErrInvalidLineItem)
	}
	if quantity <= 0 {
		return valueobjects.Money{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	return unitPrice.Multiply(decimal.NewFromInt(int64(quantity)))
}

func validateLine(id string, quantity int) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLineItem)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	return nil
}
