package valueobjects

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency is an ISO 4217 code accepted by the workshop.
type Currency string

const (
	CurrencyBRL Currency = "BRL"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"

	DefaultCurrency = CurrencyBRL
)

var supportedCurrencies = map[Currency]currency.Unit{
	CurrencyBRL: currency.BRL,
	CurrencyUSD: currency.USD,
	CurrencyEUR: currency.EUR,
}

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidCurrency  = errors.New("invalid currency")
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrInvalidFactor    = errors.New("invalid factor")
	ErrInvalidDivisor   = errors.New("invalid divisor")
)

const moneyScale = 2

// Money is an immutable, non-negative amount rounded to cents.
//
// Every operation returns a new value; operations across currencies fail
// with ErrCurrencyMismatch.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney validates and rounds amount. An empty currency selects BRL.
func NewMoney(amount decimal.Decimal, cur Currency) (Money, error) {
	if cur == "" {
		cur = DefaultCurrency
	}
	if _, ok := supportedCurrencies[cur]; !ok {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, cur)
	}
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount.String())
	}
	return Money{amount: amount.Round(moneyScale), currency: cur}, nil
}

func NewMoneyFromFloat(amount float64, cur Currency) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), cur)
}

// ZeroMoney returns a zero amount in cur, falling back to BRL for unsupported codes.
func ZeroMoney(cur Currency) Money {
	if _, ok := supportedCurrencies[cur]; !ok {
		cur = DefaultCurrency
	}
	return Money{amount: decimal.Zero, currency: cur}
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() Currency {
	if m.currency == "" {
		return DefaultCurrency
	}
	return m.currency
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Add(other.amount), m.Currency())
}

// Subtract fails with ErrInvalidAmount when other is greater than m.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Sub(other.amount), m.Currency())
}

func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if factor.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrInvalidFactor, factor.String())
	}
	return NewMoney(m.amount.Mul(factor), m.Currency())
}

func (m Money) Divide(divisor decimal.Decimal) (Money, error) {
	if divisor.Sign() <= 0 {
		return Money{}, fmt.Errorf("%w: %s", ErrInvalidDivisor, divisor.String())
	}
	return NewMoney(m.amount.Div(divisor), m.Currency())
}

func (m Money) Equals(other Money) bool {
	return m.Currency() == other.Currency() && m.amount.Equal(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// Formatted renders the amount for display. BRL uses pt-BR grouping
// ("R$ 1.234,56"); other currencies use the generic currency formatter.
func (m Money) Formatted() string {
	value := m.amount.InexactFloat64()
	if m.Currency() == CurrencyBRL {
		p := message.NewPrinter(language.BrazilianPortuguese)
		return p.Sprintf("R$ %.2f", value)
	}
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprintf("%v %.2f", currency.Symbol(supportedCurrencies[m.Currency()]), value)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Currency(), m.amount.StringFixed(moneyScale))
}

func (m Money) sameCurrency(other Money) error {
	if m.Currency() != other.Currency() {
		return fmt.Errorf("%w: %s != %s", ErrCurrencyMismatch, m.Currency(), other.Currency())
	}
	return nil
}

// SumMoney adds values starting from zero in cur.
func SumMoney(cur Currency, values ...Money) (Money, error) {
	total := ZeroMoney(cur)
	for _, v := range values {
		next, err := total.Add(v)
		if err != nil {
			return Money{}, err
		}
		total = next
	}
	return total, nil
}
