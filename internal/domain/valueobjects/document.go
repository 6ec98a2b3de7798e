package valueobjects

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDocument = errors.New("invalid document")

const (
	cpfLength  = 11
	cnpjLength = 14
)

// Document is a Brazilian tax id kept as digits only. Eleven digits make a
// CPF (individual), fourteen a CNPJ (company); both carry check digits.
type Document struct {
	value string
}

func NewDocument(raw string) (Document, error) {
	digits := onlyDigits(raw)
	switch len(digits) {
	case cpfLength:
		if !validCPF(digits) {
			return Document{}, fmt.Errorf("%w: bad CPF check digits", ErrInvalidDocument)
		}
	case cnpjLength:
		if !validCNPJ(digits) {
			return Document{}, fmt.Errorf("%w: bad CNPJ check digits", ErrInvalidDocument)
		}
	default:
		return Document{}, fmt.Errorf("%w: expected 11 or 14 digits, got %d", ErrInvalidDocument, len(digits))
	}
	return Document{value: digits}, nil
}

func (d Document) String() string {
	return d.value
}

func (d Document) IsCPF() bool {
	return len(d.value) == cpfLength
}

func (d Document) IsCNPJ() bool {
	return len(d.value) == cnpjLength
}

func (d Document) Equals(other Document) bool {
	return d.value == other.value
}

// Formatted applies the CPF (###.###.###-##) or CNPJ (##.###.###/####-##) mask.
func (d Document) Formatted() string {
	v := d.value
	switch len(v) {
	case cpfLength:
		return v[0:3] + "." + v[3:6] + "." + v[6:9] + "-" + v[9:11]
	case cnpjLength:
		return v[0:2] + "." + v[2:5] + "." + v[5:8] + "/" + v[8:12] + "-" + v[12:14]
	default:
		return v
	}
}

func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

func validCPF(d string) bool {
	if allSameDigit(d) {
		return false
	}
	for n := 9; n <= 10; n++ {
		sum := 0
		for i := 0; i < n; i++ {
			sum += int(d[i]-'0') * (n + 1 - i)
		}
		check := (sum * 10) % 11 % 10
		if check != int(d[n]-'0') {
			return false
		}
	}
	return true
}

var cnpjWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

func validCNPJ(d string) bool {
	if allSameDigit(d) {
		return false
	}
	for n := 12; n <= 13; n++ {
		weights := cnpjWeights[13-n:]
		sum := 0
		for i := 0; i < n; i++ {
			sum += int(d[i]-'0') * weights[i]
		}
		check := sum % 11
		if check < 2 {
			check = 0
		} else {
			check = 11 - check
		}
		if check != int(d[n]-'0') {
			return false
		}
	}
	return true
}
