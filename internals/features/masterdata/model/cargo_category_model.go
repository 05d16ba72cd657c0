package model

import (
	"time"

	"gorm.io/gorm"
)

type CargoCategoryModel struct {
	CargoCategoryID   int    `gorm:"column:cargo_category_id;primaryKey;autoIncrement" json:"cargo_category_id"`
	CargoCategoryName string `gorm:"column:cargo_category_name;type:varchar(80);not null;uniqueIndex" json:"cargo_category_name"`
	CargoCategoryUnit string `gorm:"column:cargo_category_unit;type:varchar(16);not null;default:'kg'" json:"cargo_category_unit"` // kg, cbm, pcs

	CargoCategoryStatus string `gorm:"column:cargo_category_status;type:varchar(16);not null;default:'active'" json:"cargo_category_status"`

	CreatedAt time.Time      `gorm:"column:cargo_category_created_at;autoCreateTime" json:"cargo_category_created_at"`
	UpdatedAt time.Time      `gorm:"column:cargo_category_updated_at;autoUpdateTime" json:"cargo_category_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:cargo_category_deleted_at;index" json:"cargo_category_deleted_at,omitempty"`
}

func (CargoCategoryModel) TableName() string { return "cargo_categories" }
