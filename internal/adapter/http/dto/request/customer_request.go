package request

import (
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
)

type CreateCustomerRequest struct {
	Document       string `json:"document" binding:"required"`
	Type           string `json:"type"`
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Address        string `json:"address" binding:"required"`
	AdditionalInfo string `json:"additional_info"`
}

func (r CreateCustomerRequest) ToInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		Document:       r.Document,
		Type:           entities.CustomerType(r.Type),
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		AdditionalInfo: r.AdditionalInfo,
	}
}

type UpdatePersonalInfoRequest struct {
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Address        string `json:"address" binding:"required"`
	AdditionalInfo string `json:"additional_info"`
}

func (r UpdatePersonalInfoRequest) ToInput() usecase.UpdatePersonalInfoInput {
	return usecase.UpdatePersonalInfoInput{
		Name:           r.Name,
		Phone:          r.Phone,
		Address:        r.Address,
		AdditionalInfo: r.AdditionalInfo,
	}
}

type ChangeEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

type ChangeDocumentRequest struct {
	Document string `json:"document" binding:"required"`
}
