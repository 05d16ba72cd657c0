package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ClientStatusActive    = "active"
	ClientStatusSuspended = "suspended"
)

type ClientModel struct {
	ClientID uuid.UUID `gorm:"column:client_id;type:uuid;default:gen_random_uuid();primaryKey" json:"client_id"`

	// Account this profile belongs to. One profile per account.
	ClientUserID uuid.UUID `gorm:"column:client_user_id;type:uuid;uniqueIndex;not null" json:"client_user_id"`

	ClientName    string  `gorm:"column:client_name;type:varchar(100);not null" json:"client_name"`
	ClientEmail   string  `gorm:"column:client_email;type:varchar(120);uniqueIndex;not null" json:"client_email"`
	ClientPhone   *string `gorm:"column:client_phone;type:varchar(30)" json:"client_phone,omitempty"`
	ClientCompany *string `gorm:"column:client_company;type:varchar(120)" json:"client_company,omitempty"`
	ClientAddress *string `gorm:"column:client_address" json:"client_address,omitempty"`

	ClientCountryID *int `gorm:"column:client_country_id" json:"client_country_id,omitempty"`

	ClientStatus string `gorm:"column:client_status;type:varchar(20);not null;default:'active'" json:"client_status"`

	CreatedAt time.Time      `gorm:"column:client_created_at;autoCreateTime" json:"client_created_at"`
	UpdatedAt time.Time      `gorm:"column:client_updated_at;autoUpdateTime" json:"client_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:client_deleted_at;index" json:"client_deleted_at,omitempty"`
}

func (ClientModel) TableName() string { return "clients" }
