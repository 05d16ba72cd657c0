package dto

import (
	"kirimku_backend/internals/features/masterdata/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreateCountryRequest struct {
	CountryName   string `json:"country_name" validate:"required,min=2,max=80"`
	CountryCode   string `json:"country_code" validate:"required,min=2,max=3"`
	CountryStatus string `json:"country_status" validate:"omitempty,oneof=active inactive"`
}

type UpdateCountryRequest struct {
	CountryName   *string `json:"country_name" validate:"omitempty,min=2,max=80"`
	CountryCode   *string `json:"country_code" validate:"omitempty,min=2,max=3"`
	CountryStatus *string `json:"country_status" validate:"omitempty,oneof=active inactive"`
}

type CreateShipmentTypeRequest struct {
	ShipmentTypeName          string `json:"shipment_type_name" validate:"required,min=2,max=80"`
	ShipmentTypeEstimatedDays int    `json:"shipment_type_estimated_days" validate:"omitempty,min=0,max=365"`
	ShipmentTypeStatus        string `json:"shipment_type_status" validate:"omitempty,oneof=active inactive"`
}

type UpdateShipmentTypeRequest struct {
	ShipmentTypeName          *string `json:"shipment_type_name" validate:"omitempty,min=2,max=80"`
	ShipmentTypeEstimatedDays *int    `json:"shipment_type_estimated_days" validate:"omitempty,min=0,max=365"`
	ShipmentTypeStatus        *string `json:"shipment_type_status" validate:"omitempty,oneof=active inactive"`
}

type CreateCargoCategoryRequest struct {
	CargoCategoryName   string `json:"cargo_category_name" validate:"required,min=2,max=80"`
	CargoCategoryUnit   string `json:"cargo_category_unit" validate:"omitempty,oneof=kg cbm pcs"`
	CargoCategoryStatus string `json:"cargo_category_status" validate:"omitempty,oneof=active inactive"`
}

type UpdateCargoCategoryRequest struct {
	CargoCategoryName   *string `json:"cargo_category_name" validate:"omitempty,min=2,max=80"`
	CargoCategoryUnit   *string `json:"cargo_category_unit" validate:"omitempty,oneof=kg cbm pcs"`
	CargoCategoryStatus *string `json:"cargo_category_status" validate:"omitempty,oneof=active inactive"`
}

/* =========================================================
   MAPPERS
========================================================= */

func (r CreateCountryRequest) ToModel() model.CountryModel {
	status := r.CountryStatus
	if status == "" {
		status = "active"
	}
	return model.CountryModel{
		CountryName:   r.CountryName,
		CountryCode:   r.CountryCode,
		CountryStatus: status,
	}
}

func (r CreateShipmentTypeRequest) ToModel() model.ShipmentTypeModel {
	status := r.ShipmentTypeStatus
	if status == "" {
		status = "active"
	}
	return model.ShipmentTypeModel{
		ShipmentTypeName:          r.ShipmentTypeName,
		ShipmentTypeEstimatedDays: r.ShipmentTypeEstimatedDays,
		ShipmentTypeStatus:        status,
	}
}

func (r CreateCargoCategoryRequest) ToModel() model.CargoCategoryModel {
	unit := r.CargoCategoryUnit
	if unit == "" {
		unit = "kg"
	}
	status := r.CargoCategoryStatus
	if status == "" {
		status = "active"
	}
	return model.CargoCategoryModel{
		CargoCategoryName:   r.CargoCategoryName,
		CargoCategoryUnit:   unit,
		CargoCategoryStatus: status,
	}
}
