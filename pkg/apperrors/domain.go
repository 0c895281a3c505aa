package apperrors

import (
	"net/http"
)

/*
Предопределенные ошибки домена. Сервисы возвращают их напрямую,
хендлеры отдают через HandleError.
*/

// --- Auth ---

// ErrInvalidCredentials - неверный email, пароль или неактивный аккаунт.
// Причина намеренно не раскрывается.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Incorrect email or password",
	http.StatusUnauthorized,
)

// ErrCouldNotValidateCredentials - токен отсутствует, невалиден или просрочен.
var ErrCouldNotValidateCredentials = New(
	CodeInvalidToken,
	"auth",
	"Could not validate credentials",
	http.StatusUnauthorized,
)

// ErrInactiveAccount - токен валиден, но аккаунт компании отключен.
var ErrInactiveAccount = New(
	CodeInactiveAccount,
	"auth",
	"Company account is inactive",
	http.StatusForbidden,
)

var ErrEmailAlreadyRegistered = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusBadRequest,
)

// --- Companies ---

var ErrCompanyNotFound = New(
	CodeNotFound,
	"company",
	"Company not found",
	http.StatusNotFound,
)

// --- Jobs ---

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

var ErrJobForeignCompany = New(
	CodeForbidden,
	"job",
	"You can only create jobs for your own company",
	http.StatusForbidden,
)

var ErrNotJobOwner = New(
	CodeForbidden,
	"job",
	"You can only modify your own job listings",
	http.StatusForbidden,
)

// --- Reviews ---

var ErrReviewNotFound = New(
	CodeNotFound,
	"review",
	"Review not found",
	http.StatusNotFound,
)

// ErrReviewJobMismatch - job_id указывает на вакансию другой компании.
var ErrReviewJobMismatch = New(
	CodeInvalidOperation,
	"review",
	"Job does not belong to the reviewed company",
	http.StatusBadRequest,
)

// --- Support organizations ---

var ErrSupportOrgNotFound = New(
	CodeNotFound,
	"support_organization",
	"Support organization not found",
	http.StatusNotFound,
)
