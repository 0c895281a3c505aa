package dto

import "time"

type CreateJobRequest struct {
	CompanyID    uint       `json:"company_id" validate:"required"`
	Title        string     `json:"title" validate:"required,min=3,max=255"`
	Description  string     `json:"description" validate:"required,min=20,max=5000"`
	Location     string     `json:"location" validate:"required,min=2,max=255"`
	Salary       string     `json:"salary" validate:"required,min=2,max=100"`
	Requirements *string    `json:"requirements" validate:"omitempty,max=5000"`
	Benefits     *string    `json:"benefits" validate:"omitempty,max=5000"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

// UpdateJobRequest - patch: применяются только переданные поля
type UpdateJobRequest struct {
	Title        *string    `json:"title" validate:"omitempty,min=3,max=255"`
	Description  *string    `json:"description" validate:"omitempty,min=20,max=5000"`
	Location     *string    `json:"location" validate:"omitempty,min=2,max=255"`
	Salary       *string    `json:"salary" validate:"omitempty,min=2,max=100"`
	Requirements *string    `json:"requirements" validate:"omitempty,max=5000"`
	Benefits     *string    `json:"benefits" validate:"omitempty,max=5000"`
	IsActive     *bool      `json:"is_active"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

func (r *UpdateJobRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Location != nil {
		fields["location"] = *r.Location
	}
	if r.Salary != nil {
		fields["salary"] = *r.Salary
	}
	if r.Requirements != nil {
		fields["requirements"] = *r.Requirements
	}
	if r.Benefits != nil {
		fields["benefits"] = *r.Benefits
	}
	if r.IsActive != nil {
		fields["is_active"] = *r.IsActive
	}
	if r.ExpiresAt != nil {
		fields["expires_at"] = r.ExpiresAt.UTC()
	}
	return fields
}
