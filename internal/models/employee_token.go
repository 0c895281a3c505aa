package models

import "time"

// EmployeeToken - одноразовый токен, подтверждающий работу в компании.
// После погашения (IsUsed) больше не может верифицировать отзыв.
type EmployeeToken struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Token         string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"-"`
	CompanyID     uint       `gorm:"not null;index" json:"company_id"`
	EmployeeName  *string    `gorm:"type:varchar(255)" json:"employee_name"`
	EmployeeEmail *string    `gorm:"type:varchar(255)" json:"employee_email"`
	JobTitle      *string    `gorm:"type:varchar(255)" json:"job_title"`
	IsUsed        bool       `gorm:"not null;default:false" json:"is_used"`
	IsActive      bool       `gorm:"not null;default:true" json:"is_active"`
	ExpiresAt     *time.Time `json:"expires_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UsedAt        *time.Time `json:"used_at"`
}

// IsRedeemable - токен активен, не использован и не просрочен на момент now
func (t *EmployeeToken) IsRedeemable(now time.Time) bool {
	if !t.IsActive || t.IsUsed {
		return false
	}
	return t.ExpiresAt == nil || t.ExpiresAt.After(now)
}
