package models

// Review - отзыв работника о компании. После создания меняется только HelpfulCount.
type Review struct {
	BaseModel
	CompanyID uint  `gorm:"not null;index" json:"company_id"`
	JobID     *uint `gorm:"index" json:"job_id"`

	RatingWorkConditions float64 `gorm:"not null;check:chk_reviews_rating_work_conditions,rating_work_conditions >= 1 AND rating_work_conditions <= 5" json:"rating_work_conditions"`
	RatingPay            float64 `gorm:"not null;check:chk_reviews_rating_pay,rating_pay >= 1 AND rating_pay <= 5" json:"rating_pay"`
	RatingTreatment      float64 `gorm:"not null;check:chk_reviews_rating_treatment,rating_treatment >= 1 AND rating_treatment <= 5" json:"rating_treatment"`
	RatingSafety         float64 `gorm:"not null;check:chk_reviews_rating_safety,rating_safety >= 1 AND rating_safety <= 5" json:"rating_safety"`

	Comment          string `gorm:"type:text;not null" json:"comment"`
	IsAnonymous      bool   `gorm:"not null" json:"is_anonymous"`
	VerifiedEmployee bool   `gorm:"not null;default:false" json:"verified_employee"`
	// Замаскированный токен сотрудника, сохраняется только при успешной верификации
	EmployeeToken *string `gorm:"type:varchar(255)" json:"-"`
	HelpfulCount  int     `gorm:"not null;default:0" json:"helpful_count"`

	// Relations
	Company *Company `gorm:"foreignKey:CompanyID" json:"-"`
	Job     *Job     `gorm:"foreignKey:JobID;constraint:OnDelete:SET NULL" json:"-"`
}
