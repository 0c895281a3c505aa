package dto

import (
	"time"

	"korus_backend/internal/models"
)

type CreateReviewRequest struct {
	CompanyID            uint    `json:"company_id" validate:"required"`
	JobID                *uint   `json:"job_id"`
	RatingWorkConditions float64 `json:"rating_work_conditions" validate:"rating"`
	RatingPay            float64 `json:"rating_pay" validate:"rating"`
	RatingTreatment      float64 `json:"rating_treatment" validate:"rating"`
	RatingSafety         float64 `json:"rating_safety" validate:"rating"`
	Comment              string  `json:"comment" validate:"required,min=20,max=5000"`
	// По умолчанию отзыв анонимный
	IsAnonymous   *bool   `json:"is_anonymous"`
	EmployeeToken *string `json:"employee_token" validate:"omitempty,max=255"`
}

func (r *CreateReviewRequest) Anonymous() bool {
	return r.IsAnonymous == nil || *r.IsAnonymous
}

type ReviewResponse struct {
	ID                   uint      `json:"id"`
	CompanyID            uint      `json:"company_id"`
	JobID                *uint     `json:"job_id"`
	RatingWorkConditions float64   `json:"rating_work_conditions"`
	RatingPay            float64   `json:"rating_pay"`
	RatingTreatment      float64   `json:"rating_treatment"`
	RatingSafety         float64   `json:"rating_safety"`
	Comment              string    `json:"comment"`
	IsAnonymous          bool      `json:"is_anonymous"`
	VerifiedEmployee     bool      `json:"verified_employee"`
	HelpfulCount         int       `json:"helpful_count"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func NewReviewResponse(r *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:                   r.ID,
		CompanyID:            r.CompanyID,
		JobID:                r.JobID,
		RatingWorkConditions: r.RatingWorkConditions,
		RatingPay:            r.RatingPay,
		RatingTreatment:      r.RatingTreatment,
		RatingSafety:         r.RatingSafety,
		Comment:              r.Comment,
		IsAnonymous:          r.IsAnonymous,
		VerifiedEmployee:     r.VerifiedEmployee,
		HelpfulCount:         r.HelpfulCount,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func NewReviewResponseList(reviews []models.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewResponse(&reviews[i]))
	}
	return out
}
