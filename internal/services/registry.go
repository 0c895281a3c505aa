package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService          AuthService
	CompanyService       CompanyService
	JobService           JobService
	ReviewService        ReviewService
	RatingService        RatingService
	EmployeeTokenService EmployeeTokenService
	StatisticsService    StatisticsService
	SupportOrgService    SupportOrgService
}
