package response

import "oficina_xpto/internal/domain/valueobjects"

type MoneyResponse struct {
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

func FromMoney(m valueobjects.Money) MoneyResponse {
	return MoneyResponse{
		Amount:    m.Amount().StringFixed(2),
		Currency:  string(m.Currency()),
		Formatted: m.Formatted(),
	}
}
