package models

// Company - аккаунт работодателя. Блок рейтингов (Rating*, OverallRating,
// TrustScore, TotalReviews) пишет только сервис пересчета рейтингов.
type Company struct {
	BaseModel
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"type:varchar(255);not null" json:"-"`
	CompanyName  string  `gorm:"type:varchar(255);not null;index" json:"company_name"`
	Industry     string  `gorm:"type:varchar(100);not null" json:"industry"`
	Location     string  `gorm:"type:varchar(255);not null" json:"location"`
	Country      string  `gorm:"type:varchar(100);not null" json:"country"`
	Description  *string `gorm:"type:text" json:"description"`
	Website      *string `gorm:"type:varchar(255)" json:"website"`
	Phone        *string `gorm:"type:varchar(50)" json:"phone"`

	OverallRating        float64 `gorm:"default:0" json:"overall_rating"`
	TotalReviews         int     `gorm:"default:0" json:"total_reviews"`
	SocialMediaScore     float64 `gorm:"default:0" json:"social_media_score"`
	TrustScore           float64 `gorm:"default:0" json:"trust_score"`
	Verified             bool    `gorm:"default:false" json:"verified"`
	RatingWorkConditions float64 `gorm:"default:0" json:"rating_work_conditions"`
	RatingPay            float64 `gorm:"default:0" json:"rating_pay"`
	RatingTreatment      float64 `gorm:"default:0" json:"rating_treatment"`
	RatingSafety         float64 `gorm:"default:0" json:"rating_safety"`

	IsActive bool `gorm:"default:true;not null" json:"is_active"`

	// Relations
	Jobs           []Job           `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews        []Review        `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
	EmployeeTokens []EmployeeToken `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
}
