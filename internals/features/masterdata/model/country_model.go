package model

import (
	"time"

	"gorm.io/gorm"
)

type CountryModel struct {
	CountryID   int    `gorm:"column:country_id;primaryKey;autoIncrement" json:"country_id"`
	CountryName string `gorm:"column:country_name;type:varchar(80);not null;uniqueIndex" json:"country_name"`
	CountryCode string `gorm:"column:country_code;type:varchar(3);not null" json:"country_code"` // ISO 3166-1 alpha-2/3
	CountryStatus string `gorm:"column:country_status;type:varchar(16);not null;default:'active'" json:"country_status"`

	CreatedAt time.Time      `gorm:"column:country_created_at;autoCreateTime" json:"country_created_at"`
	UpdatedAt time.Time      `gorm:"column:country_updated_at;autoUpdateTime" json:"country_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:country_deleted_at;index" json:"country_deleted_at,omitempty"`
}

func (CountryModel) TableName() string { return "countries" }
