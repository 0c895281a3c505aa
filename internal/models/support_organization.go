package models

import "gorm.io/datatypes"

type SupportOrganization struct {
	BaseModel
	Name        string                      `gorm:"type:varchar(255);not null;index" json:"name"`
	Type        string                      `gorm:"type:varchar(100);not null" json:"type"`
	Latitude    float64                     `gorm:"not null" json:"latitude"`
	Longitude   float64                     `gorm:"not null" json:"longitude"`
	Address     string                      `gorm:"type:varchar(500);not null" json:"address"`
	Contact     string                      `gorm:"type:varchar(100);not null" json:"contact"`
	Email       string                      `gorm:"type:varchar(255);not null" json:"email"`
	Website     *string                     `gorm:"type:varchar(255)" json:"website"`
	Services    datatypes.JSONSlice[string] `json:"services"`
	OpenHours   string                      `gorm:"type:varchar(255);not null" json:"open_hours"`
	Description *string                     `gorm:"type:text" json:"description"`
	Languages   datatypes.JSONSlice[string] `json:"languages"`
	IsActive    bool                        `gorm:"not null;default:true" json:"is_active"`
}

// Типы организаций поддержки
const (
	SupportOrgTypeNGO        = "NGO"
	SupportOrgTypeLegalAid   = "Legal Aid"
	SupportOrgTypeHealthcare = "Healthcare"
	SupportOrgTypeShelter    = "Shelter"
)
