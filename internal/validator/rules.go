package validator

import (
	"log"

	"korus_backend/internal/auth"

	"github.com/go-playground/validator/v10"
)

const (
	minRating = 1.0
	maxRating = 5.0
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Без правил приложение не должно запускаться
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'strong-password': 8+ символов, цифра и заглавная буква
	mustRegister("strong-password", validateStrongPassword)

	// 'rating': оценка в закрытом интервале [1, 5]
	mustRegister("rating", validateRating)
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	return auth.ValidatePassword(fl.Field().String()) == nil
}

func validateRating(fl validator.FieldLevel) bool {
	value := fl.Field().Float()
	return value >= minRating && value <= maxRating
}
