package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenConfig - явная конфигурация сервиса токенов, собирается из config.Config
type TokenConfig struct {
	Secret string
	// AccessTTL - срок жизни токена, выдаваемого при логине
	AccessTTL time.Duration
	// DefaultTTL используется, когда ttl не передан
	DefaultTTL time.Duration
}

// Claims - полезная нагрузка access токена. Subject содержит email компании.
type Claims struct {
	CompanyID uint `json:"company_id"`
	jwt.RegisteredClaims
}

// TokenData - проверенные данные из токена
type TokenData struct {
	Email     string
	CompanyID uint
	ExpiresAt time.Time
}

type TokenService struct {
	cfg TokenConfig
	now func() time.Time
}

type TokenOption func(*TokenService)

// WithClock подменяет источник времени (для тестов)
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) {
		s.now = now
	}
}

func NewTokenService(cfg TokenConfig, opts ...TokenOption) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token secret is required")
	}
	if cfg.DefaultTTL <= 0 {
		cfg.DefaultTTL = 15 * time.Minute
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 24 * time.Hour
	}

	s := &TokenService{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *TokenService) AccessTTL() time.Duration {
	return s.cfg.AccessTTL
}

// IssueToken подписывает HS256 токен; ttl <= 0 означает DefaultTTL
func (s *TokenService) IssueToken(email string, companyID uint, ttl time.Duration) (string, error) {
	if email == "" || companyID == 0 {
		return "", errors.New("required inputs are missing to generate token")
	}
	if ttl <= 0 {
		ttl = s.cfg.DefaultTTL
	}

	now := s.now()
	claims := Claims{
		CompanyID: companyID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", errors.New("unable to sign the token")
	}
	return signed, nil
}

// ValidateToken никогда не возвращает ошибку наружу: false означает
// неверную подпись, чужой алгоритм, отсутствие claims или истекший срок.
func (s *TokenService) ValidateToken(tokenString string) (*TokenData, bool) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, false
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, false
	}

	if claims.Subject == "" || claims.CompanyID == 0 {
		return nil, false
	}

	return &TokenData{
		Email:     claims.Subject,
		CompanyID: claims.CompanyID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, true
}
