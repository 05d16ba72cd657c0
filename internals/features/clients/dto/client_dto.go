package dto

import (
	"github.com/google/uuid"

	"kirimku_backend/internals/features/clients/model"
)

type CreateClientRequest struct {
	ClientUserID    uuid.UUID `json:"client_user_id" validate:"required"`
	ClientName      string    `json:"client_name" validate:"required,min=2,max=100"`
	ClientEmail     string    `json:"client_email" validate:"required,email,max=120"`
	ClientPhone     *string   `json:"client_phone" validate:"omitempty,max=30"`
	ClientCompany   *string   `json:"client_company" validate:"omitempty,max=120"`
	ClientAddress   *string   `json:"client_address" validate:"omitempty"`
	ClientCountryID *int      `json:"client_country_id" validate:"omitempty,gt=0"`
}

type UpdateClientRequest struct {
	ClientName      *string `json:"client_name" validate:"omitempty,min=2,max=100"`
	ClientPhone     *string `json:"client_phone" validate:"omitempty,max=30"`
	ClientCompany   *string `json:"client_company" validate:"omitempty,max=120"`
	ClientAddress   *string `json:"client_address" validate:"omitempty"`
	ClientCountryID *int    `json:"client_country_id" validate:"omitempty,gt=0"`
	ClientStatus    *string `json:"client_status" validate:"omitempty,oneof=active suspended"`
}

func (r CreateClientRequest) ToModel() model.ClientModel {
	return model.ClientModel{
		ClientUserID:    r.ClientUserID,
		ClientName:      r.ClientName,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     r.ClientPhone,
		ClientCompany:   r.ClientCompany,
		ClientAddress:   r.ClientAddress,
		ClientCountryID: r.ClientCountryID,
		ClientStatus:    model.ClientStatusActive,
	}
}
