package entities

import (
	"fmt"
	"strings"
	"time"
)

// Mechanic is a workshop employee that can be assigned to service orders.
//
// Storage model (DynamoDB):
//   - PK: id
type Mechanic struct {
	ID        string
	Name      string
	Specialty string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewMechanic(id, name, specialty string, now time.Time) (Mechanic, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" {
		return Mechanic{}, fmt.Errorf("%w: missing id", ErrInvalidMechanic)
	}
	if len([]rune(name)) < minNameLength {
		return Mechanic{}, fmt.Errorf("%w: name", ErrInvalidMechanic)
	}
	return Mechanic{
		ID:        id,
		Name:      name,
		Specialty: strings.TrimSpace(specialty),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CanBeAssigned reports whether the mechanic may take new orders.
func (m Mechanic) CanBeAssigned() bool {
	return m.Active
}
