package dto

// RegisterRequest - регистрация компании
type RegisterRequest struct {
	Email       string  `json:"email" validate:"required,email,max=255"`
	Password    string  `json:"password" validate:"required,strong-password,max=72"`
	CompanyName string  `json:"company_name" validate:"required,min=2,max=255"`
	Industry    string  `json:"industry" validate:"required,min=2,max=100"`
	Location    string  `json:"location" validate:"required,min=2,max=255"`
	Country     string  `json:"country" validate:"required,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Website     *string `json:"website" validate:"omitempty,url,max=255"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
}

// LoginRequest принимает JSON {email, password} и OAuth2-форму {username, password}
type LoginRequest struct {
	Email    string `json:"email" form:"username" validate:"required,max=255"`
	Password string `json:"password" form:"password" validate:"required"`
}

// TokenResponse - ответ логина
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	CompanyID   uint   `json:"company_id"`
	CompanyName string `json:"company_name"`
}

const TokenTypeBearer = "bearer"
