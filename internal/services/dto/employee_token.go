package dto

import "time"

// IssueEmployeeTokenRequest - выпуск токена сотрудника (служебная операция)
type IssueEmployeeTokenRequest struct {
	CompanyID     uint          `json:"company_id" validate:"required"`
	EmployeeName  *string       `json:"employee_name" validate:"omitempty,max=255"`
	EmployeeEmail *string       `json:"employee_email" validate:"omitempty,email,max=255"`
	JobTitle      *string       `json:"job_title" validate:"omitempty,max=255"`
	TTL           time.Duration `json:"-"`
}

type IssuedEmployeeToken struct {
	ID        uint       `json:"id"`
	Token     string     `json:"token"`
	CompanyID uint       `json:"company_id"`
	ExpiresAt *time.Time `json:"expires_at"`
}
