package models

import "time"

type Job struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CompanyID    uint       `gorm:"not null;index" json:"company_id"`
	Title        string     `gorm:"type:varchar(255);not null;index" json:"title"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	Location     string     `gorm:"type:varchar(255);not null" json:"location"`
	Salary       string     `gorm:"type:varchar(100);not null" json:"salary"`
	Requirements *string    `gorm:"type:text" json:"requirements"`
	Benefits     *string    `gorm:"type:text" json:"benefits"`
	IsActive     bool       `gorm:"not null;default:true;index" json:"is_active"`
	PostedAt     time.Time  `gorm:"autoCreateTime;index" json:"posted_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	ExpiresAt    *time.Time `json:"expires_at"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"-"`
}
