package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	RootHandler       *RootHandler
	AuthHandler       *AuthHandler
	CompanyHandler    *CompanyHandler
	JobHandler        *JobHandler
	ReviewHandler     *ReviewHandler
	SupportOrgHandler *SupportOrgHandler
	StatisticsHandler *StatisticsHandler
}
