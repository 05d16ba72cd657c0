package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	WarehouseStatusActive   = "active"
	WarehouseStatusInactive = "inactive"
)

type WarehouseModel struct {
	WarehouseID uuid.UUID `gorm:"column:warehouse_id;type:uuid;default:gen_random_uuid();primaryKey" json:"warehouse_id"`

	WarehouseName    string `gorm:"column:warehouse_name;type:varchar(100);not null" json:"warehouse_name"`
	WarehouseCode    string `gorm:"column:warehouse_code;type:varchar(20);uniqueIndex;not null" json:"warehouse_code"`
	WarehouseAddress string `gorm:"column:warehouse_address;not null" json:"warehouse_address"`

	WarehouseCountryID int `gorm:"column:warehouse_country_id;not null;index" json:"warehouse_country_id"`

	// e.g. {"cold_storage","customs_bonded","fragile_handling"}
	WarehouseCapabilities pq.StringArray `gorm:"column:warehouse_capabilities;type:text[]" json:"warehouse_capabilities"`

	WarehouseStatus string `gorm:"column:warehouse_status;type:varchar(20);not null;default:'active'" json:"warehouse_status"`

	CreatedAt time.Time      `gorm:"column:warehouse_created_at;autoCreateTime" json:"warehouse_created_at"`
	UpdatedAt time.Time      `gorm:"column:warehouse_updated_at;autoUpdateTime" json:"warehouse_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:warehouse_deleted_at;index" json:"warehouse_deleted_at,omitempty"`
}

func (WarehouseModel) TableName() string { return "warehouses" }

type WarehouseStaffModel struct {
	WarehouseStaffID uuid.UUID `gorm:"column:warehouse_staff_id;type:uuid;default:gen_random_uuid();primaryKey" json:"warehouse_staff_id"`

	WarehouseStaffWarehouseID uuid.UUID `gorm:"column:warehouse_staff_warehouse_id;type:uuid;not null;index" json:"warehouse_staff_warehouse_id"`
	WarehouseStaffUserID      uuid.UUID `gorm:"column:warehouse_staff_user_id;type:uuid;not null;index" json:"warehouse_staff_user_id"`

	WarehouseStaffPosition string `gorm:"column:warehouse_staff_position;type:varchar(50);not null" json:"warehouse_staff_position"`

	CreatedAt time.Time      `gorm:"column:warehouse_staff_created_at;autoCreateTime" json:"warehouse_staff_created_at"`
	UpdatedAt time.Time      `gorm:"column:warehouse_staff_updated_at;autoUpdateTime" json:"warehouse_staff_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:warehouse_staff_deleted_at;index" json:"warehouse_staff_deleted_at,omitempty"`
}

func (WarehouseStaffModel) TableName() string { return "warehouse_staff" }
