package dto

import (
	"time"

	"korus_backend/internal/models"
)

// UpdateCompanyRequest - patch: применяются только переданные поля
type UpdateCompanyRequest struct {
	CompanyName *string `json:"company_name" validate:"omitempty,min=2,max=255"`
	Industry    *string `json:"industry" validate:"omitempty,min=2,max=100"`
	Location    *string `json:"location" validate:"omitempty,min=2,max=255"`
	Country     *string `json:"country" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Website     *string `json:"website" validate:"omitempty,url,max=255"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
}

// Fields возвращает только заполненные колонки
func (r *UpdateCompanyRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.CompanyName != nil {
		fields["company_name"] = *r.CompanyName
	}
	if r.Industry != nil {
		fields["industry"] = *r.Industry
	}
	if r.Location != nil {
		fields["location"] = *r.Location
	}
	if r.Country != nil {
		fields["country"] = *r.Country
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Website != nil {
		fields["website"] = *r.Website
	}
	if r.Phone != nil {
		fields["phone"] = *r.Phone
	}
	return fields
}

// CompanyPublic - публичный профиль (без email, телефона и статуса аккаунта)
type CompanyPublic struct {
	ID                   uint      `json:"id"`
	CompanyName          string    `json:"company_name"`
	Industry             string    `json:"industry"`
	Location             string    `json:"location"`
	Country              string    `json:"country"`
	Description          *string   `json:"description"`
	Website              *string   `json:"website"`
	OverallRating        float64   `json:"overall_rating"`
	TotalReviews         int       `json:"total_reviews"`
	TrustScore           float64   `json:"trust_score"`
	Verified             bool      `json:"verified"`
	RatingWorkConditions float64   `json:"rating_work_conditions"`
	RatingPay            float64   `json:"rating_pay"`
	RatingTreatment      float64   `json:"rating_treatment"`
	RatingSafety         float64   `json:"rating_safety"`
	CreatedAt            time.Time `json:"created_at"`
}

// CompanyResponse - полный профиль для самой компании
type CompanyResponse struct {
	CompanyPublic
	Email            string    `json:"email"`
	Phone            *string   `json:"phone"`
	SocialMediaScore float64   `json:"social_media_score"`
	IsActive         bool      `json:"is_active"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewCompanyPublic(c *models.Company) *CompanyPublic {
	return &CompanyPublic{
		ID:                   c.ID,
		CompanyName:          c.CompanyName,
		Industry:             c.Industry,
		Location:             c.Location,
		Country:              c.Country,
		Description:          c.Description,
		Website:              c.Website,
		OverallRating:        c.OverallRating,
		TotalReviews:         c.TotalReviews,
		TrustScore:           c.TrustScore,
		Verified:             c.Verified,
		RatingWorkConditions: c.RatingWorkConditions,
		RatingPay:            c.RatingPay,
		RatingTreatment:      c.RatingTreatment,
		RatingSafety:         c.RatingSafety,
		CreatedAt:            c.CreatedAt,
	}
}

func NewCompanyResponse(c *models.Company) *CompanyResponse {
	return &CompanyResponse{
		CompanyPublic:    *NewCompanyPublic(c),
		Email:            c.Email,
		Phone:            c.Phone,
		SocialMediaScore: c.SocialMediaScore,
		IsActive:         c.IsActive,
		UpdatedAt:        c.UpdatedAt,
	}
}

func NewCompanyPublicList(companies []models.Company) []*CompanyPublic {
	out := make([]*CompanyPublic, 0, len(companies))
	for i := range companies {
		out = append(out, NewCompanyPublic(&companies[i]))
	}
	return out
}
