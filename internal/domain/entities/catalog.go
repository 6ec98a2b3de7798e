package entities

import (
	"fmt"
	"strings"

	"oficina_xpto/internal/domain/valueobjects"
)

// CatalogService is a labour item offered by the workshop.
type CatalogService struct {
	ID               string
	Name             string
	Price            valueobjects.Money
	EstimatedMinutes int
}

// Part is a stocked component that can be billed on a service order.
type Part struct {
	ID    string
	Name  string
	Price valueobjects.Money
	Stock int
}

func NewCatalogService(id, name string, price valueobjects.Money, estimatedMinutes int) (CatalogService, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	switch {
	case id == "":
		return CatalogService{}, fmt.Errorf("%w: missing id", ErrInvalidCatalogItem)
	case name == "":
		return CatalogService{}, fmt.Errorf("%w: missing name", ErrInvalidCatalogItem)
	case estimatedMinutes < 0:
		return CatalogService{}, fmt.Errorf("%w: negative estimated minutes", ErrInvalidCatalogItem)
	}
	return CatalogService{ID: id, Name: name, Price: price, EstimatedMinutes: estimatedMinutes}, nil
}

func NewPart(id, name string, price valueobjects.Money, stock int) (Part, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	switch {
	case id == "":
		return Part{}, fmt.Errorf("%w: missing id", ErrInvalidCatalogItem)
	case name == "":
		return Part{}, fmt.Errorf("%w: missing name", ErrInvalidCatalogItem)
	case stock < 0:
		return Part{}, fmt.Errorf("%w: negative stock", ErrInvalidCatalogItem)
	}
	return Part{ID: id, Name: name, Price: price, Stock: stock}, nil
}

// LineItem prices quantity units of the service at its catalog price.
func (s CatalogService) LineItem(quantity int) (ServiceLineItem, error) {
	return NewServiceLineItem(s.ID, s.Name, quantity, s.Price)
}

// LineItem prices quantity units of the part, failing when stock is short.
func (p Part) LineItem(quantity int) (PartLineItem, error) {
	if quantity > p.Stock {
		return PartLineItem{}, fmt.Errorf("%w: %d requested, %d in stock", ErrInsufficientStock, quantity, p.Stock)
	}
	return NewPartLineItem(p.ID, p.Name, quantity, p.Price)
}
