package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type CatalogServiceResponse struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Price            MoneyResponse `json:"price"`
	EstimatedMinutes int           `json:"estimated_minutes"`
}

func FromCatalogService(s entities.CatalogService) CatalogServiceResponse {
	return CatalogServiceResponse{ID: s.ID, Name: s.Name, Price: FromMoney(s.Price), EstimatedMinutes: s.EstimatedMinutes}
}

type PartResponse struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Price MoneyResponse `json:"price"`
	Stock int           `json:"stock"`
}

func FromPart(p entities.Part) PartResponse {
	return PartResponse{ID: p.ID, Name: p.Name, Price: FromMoney(p.Price), Stock: p.Stock}
}

type MechanicResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromMechanic(m entities.Mechanic) MechanicResponse {
	return MechanicResponse{
		ID:        m.ID,
		Name:      m.Name,
		Specialty: m.Specialty,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
