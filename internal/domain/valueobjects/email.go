package valueobjects

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrInvalidEmail = errors.New("invalid email")

const maxEmailLength = 255

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is a trimmed, lower-cased address in local@domain.tld shape.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" || len(v) > maxEmailLength || !emailPattern.MatchString(v) {
		return Email{}, fmt.Errorf("%w: %q", ErrInvalidEmail, raw)
	}
	return Email{value: v}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
