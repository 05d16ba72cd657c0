package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"kirimku_backend/internals/features/shipping/warehouses/model"
)

type CreateWarehouseRequest struct {
	WarehouseName         string   `json:"warehouse_name" validate:"required,min=2,max=100"`
	WarehouseCode         string   `json:"warehouse_code" validate:"required,min=2,max=20"`
	WarehouseAddress      string   `json:"warehouse_address" validate:"required"`
	WarehouseCountryID    int      `json:"warehouse_country_id" validate:"required,gt=0"`
	WarehouseCapabilities []string `json:"warehouse_capabilities" validate:"omitempty,dive,max=50"`
}

type UpdateWarehouseRequest struct {
	WarehouseName         *string  `json:"warehouse_name" validate:"omitempty,min=2,max=100"`
	WarehouseAddress      *string  `json:"warehouse_address" validate:"omitempty"`
	WarehouseCountryID    *int     `json:"warehouse_country_id" validate:"omitempty,gt=0"`
	WarehouseCapabilities []string `json:"warehouse_capabilities" validate:"omitempty,dive,max=50"`
	WarehouseStatus       *string  `json:"warehouse_status" validate:"omitempty,oneof=active inactive"`
}

type CreateWarehouseStaffRequest struct {
	WarehouseStaffWarehouseID uuid.UUID `json:"warehouse_staff_warehouse_id" validate:"required"`
	WarehouseStaffUserID      uuid.UUID `json:"warehouse_staff_user_id" validate:"required"`
	WarehouseStaffPosition    string    `json:"warehouse_staff_position" validate:"required,max=50"`
}

func (r CreateWarehouseRequest) ToModel() model.WarehouseModel {
	return model.WarehouseModel{
		WarehouseName:         r.WarehouseName,
		WarehouseCode:         r.WarehouseCode,
		WarehouseAddress:      r.WarehouseAddress,
		WarehouseCountryID:    r.WarehouseCountryID,
		WarehouseCapabilities: pq.StringArray(r.WarehouseCapabilities),
		WarehouseStatus:       model.WarehouseStatusActive,
	}
}

func (r CreateWarehouseStaffRequest) ToModel() model.WarehouseStaffModel {
	return model.WarehouseStaffModel{
		WarehouseStaffWarehouseID: r.WarehouseStaffWarehouseID,
		WarehouseStaffUserID:      r.WarehouseStaffUserID,
		WarehouseStaffPosition:    r.WarehouseStaffPosition,
	}
}
