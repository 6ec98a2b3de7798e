package entities

import (
	"fmt"
	"strings"
	"time"

	"oficina_xpto/internal/domain/valueobjects"
)

type CustomerType string

const (
	CustomerTypeIndividual CustomerType = "INDIVIDUAL"
	CustomerTypeCompany    CustomerType = "COMPANY"
)

const (
	minNameLength    = 2
	minPhoneLength   = 10
	minAddressLength = 10
)

// CustomerTypeForDocument derives the only customer type a document admits:
// CPF for individuals, CNPJ for companies.
func CustomerTypeForDocument(doc valueobjects.Document) CustomerType {
	if doc.IsCNPJ() {
		return CustomerTypeCompany
	}
	return CustomerTypeIndividual
}

func (t CustomerType) Valid() bool {
	return t == CustomerTypeIndividual || t == CustomerTypeCompany
}

// Customer keeps its type consistent with the digit length of its document.
type Customer struct {
	id             string
	document       valueobjects.Document
	customerType   CustomerType
	name           string
	email          valueobjects.Email
	phone          string
	address        string
	additionalInfo string
	createdAt      time.Time
	updatedAt      time.Time
	version        int64
}

// NewCustomerParams carries raw input; NewCustomer trims and validates it.
// An empty Type is derived from the document.
type NewCustomerParams struct {
	ID             string
	Document       string
	Type           CustomerType
	Name           string
	Email          string
	Phone          string
	Address        string
	AdditionalInfo string
}

func NewCustomer(p NewCustomerParams, now time.Time) (Customer, error) {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return Customer{}, fmt.Errorf("%w: missing id", ErrInvalidCustomer)
	}

	doc, err := valueobjects.NewDocument(p.Document)
	if err != nil {
		return Customer{}, err
	}
	email, err := valueobjects.NewEmail(p.Email)
	if err != nil {
		return Customer{}, err
	}

	customerType := p.Type
	if customerType == "" {
		customerType = CustomerTypeForDocument(doc)
	}
	if !customerType.Valid() {
		return Customer{}, fmt.Errorf("%w: %q", ErrInvalidCustomerType, customerType)
	}
	if CustomerTypeForDocument(doc) != customerType {
		return Customer{}, fmt.Errorf("%w: %s with %d-digit document", ErrDocumentTypeMismatch, customerType, len(doc.String()))
	}

	name, phone, address, err := validatePersonalInfo(p.Name, p.Phone, p.Address)
	if err != nil {
		return Customer{}, err
	}

	return Customer{
		id:             id,
		document:       doc,
		customerType:   customerType,
		name:           name,
		email:          email,
		phone:          phone,
		address:        address,
		additionalInfo: strings.TrimSpace(p.AdditionalInfo),
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func (c Customer) UpdatePersonalInfo(name, phone, address, additionalInfo string, now time.Time) (Customer, error) {
	name, phone, address, err := validatePersonalInfo(name, phone, address)
	if err != nil {
		return Customer{}, err
	}

	next := c
	next.name = name
	next.phone = phone
	next.address = address
	next.additionalInfo = strings.TrimSpace(additionalInfo)
	next.updatedAt = now
	return next, nil
}

func (c Customer) ChangeEmail(raw string, now time.Time) (Customer, error) {
	email, err := valueobjects.NewEmail(raw)
	if err != nil {
		return Customer{}, err
	}

	next := c
	next.email = email
	next.updatedAt = now
	return next, nil
}

// ChangeDocument accepts only a document of the same kind as the current type.
func (c Customer) ChangeDocument(raw string, now time.Time) (Customer, error) {
	doc, err := valueobjects.NewDocument(raw)
	if err != nil {
		return Customer{}, err
	}
	if CustomerTypeForDocument(doc) != c.customerType {
		return Customer{}, fmt.Errorf("%w: %s with %d-digit document", ErrDocumentTypeMismatch, c.customerType, len(doc.String()))
	}

	next := c
	next.document = doc
	next.updatedAt = now
	return next, nil
}

func (c Customer) IsCompany() bool    { return c.customerType == CustomerTypeCompany }
func (c Customer) IsIndividual() bool { return c.customerType == CustomerTypeIndividual }

func (c Customer) ID() string                      { return c.id }
func (c Customer) Document() valueobjects.Document { return c.document }
func (c Customer) Type() CustomerType              { return c.customerType }
func (c Customer) Name() string                    { return c.name }
func (c Customer) Email() valueobjects.Email       { return c.email }
func (c Customer) Phone() string                   { return c.phone }
func (c Customer) Address() string                 { return c.address }
func (c Customer) AdditionalInfo() string          { return c.additionalInfo }
func (c Customer) CreatedAt() time.Time            { return c.createdAt }
func (c Customer) UpdatedAt() time.Time            { return c.updatedAt }
func (c Customer) Version() int64                  { return c.version }

type CustomerSnapshot struct {
	ID             string
	Document       string
	Type           CustomerType
	Name           string
	Email          string
	Phone          string
	Address        string
	AdditionalInfo string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int64
}

func (c Customer) Snapshot() CustomerSnapshot {
	return CustomerSnapshot{
		ID:             c.id,
		Document:       c.document.String(),
		Type:           c.customerType,
		Name:           c.name,
		Email:          c.email.String(),
		Phone:          c.phone,
		Address:        c.address,
		AdditionalInfo: c.additionalInfo,
		CreatedAt:      c.createdAt,
		UpdatedAt:      c.updatedAt,
		Version:        c.version,
	}
}

// RestoreCustomer rebuilds a customer from storage. Document and email are
// re-parsed so corrupted rows surface as errors instead of invalid aggregates.
func RestoreCustomer(s CustomerSnapshot) (Customer, error) {
	doc, err := valueobjects.NewDocument(s.Document)
	if err != nil {
		return Customer{}, err
	}
	email, err := valueobjects.NewEmail(s.Email)
	if err != nil {
		return Customer{}, err
	}
	return Customer{
		id:             s.ID,
		document:       doc,
		customerType:   s.Type,
		name:           s.Name,
		email:          email,
		phone:          s.Phone,
		address:        s.Address,
		additionalInfo: s.AdditionalInfo,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
		version:        s.Version,
	}, nil
}

func validatePersonalInfo(name, phone, address string) (string, string, string, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	address = strings.TrimSpace(address)
	switch {
	case len([]rune(name)) < minNameLength:
		return "", "", "", fmt.Errorf("%w: must have at least %d characters", ErrInvalidName, minNameLength)
	case len([]rune(phone)) < minPhoneLength:
		return "", "", "", fmt.Errorf("%w: must have at least %d characters", ErrInvalidPhone, minPhoneLength)
	case len([]rune(address)) < minAddressLength:
		return "", "", "", fmt.Errorf("%w: must have at least %d characters", ErrInvalidAddress, minAddressLength)
	}
	return name, phone, address, nil
}
