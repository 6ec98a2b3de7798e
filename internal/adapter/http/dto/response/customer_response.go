package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type CustomerResponse struct {
	ID                string    `json:"id"`
	Document          string    `json:"document"`
	DocumentFormatted string    `json:"document_formatted"`
	Type              string    `json:"type"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Address           string    `json:"address"`
	AdditionalInfo    string    `json:"additional_info,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	Version           int64     `json:"version"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                c.ID(),
		Document:          c.Document().String(),
		DocumentFormatted: c.Document().Formatted(),
		Type:              string(c.Type()),
		Name:              c.Name(),
		Email:             c.Email().String(),
		Phone:             c.Phone(),
		Address:           c.Address(),
		AdditionalInfo:    c.AdditionalInfo(),
		CreatedAt:         c.CreatedAt(),
		UpdatedAt:         c.UpdatedAt(),
		Version:           c.Version(),
	}
}
