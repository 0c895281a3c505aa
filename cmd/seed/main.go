// Команда seed: миграция схемы, демо-данные и выпуск токенов сотрудников.
//
//	go run ./cmd/seed -sample
//	go run ./cmd/seed -issue-token -company-id 1 -employee-name "Jane Doe" -ttl 720h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"korus_backend/database"
	"korus_backend/internal/config"
	"korus_backend/internal/logger"
	"korus_backend/internal/models"
	"korus_backend/internal/repositories"
	"korus_backend/internal/services"
	"korus_backend/internal/services/dto"

	"gorm.io/gorm"
)

func main() {
	migrate := flag.Bool("migrate", true, "run schema migration")
	sample := flag.Bool("sample", false, "seed sample companies, jobs, reviews and support organizations")
	issueToken := flag.Bool("issue-token", false, "issue a single-use employee verification token")
	companyID := flag.Uint("company-id", 0, "company id for -issue-token")
	employeeName := flag.String("employee-name", "", "optional employee name for -issue-token")
	employeeEmail := flag.String("employee-email", "", "optional employee email for -issue-token")
	jobTitle := flag.String("job-title", "", "optional job title for -issue-token")
	ttl := flag.Duration("ttl", 0, "token lifetime for -issue-token (0 = never expires)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)

	db, err := database.Open(database.OptionsFromConfig(cfg))
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if *migrate {
		if err := database.AutoMigrate(db); err != nil {
			logger.Fatal("Failed to migrate database", "error", err)
		}
	}

	seeder := newSeeder()

	if *sample {
		if err := seeder.seedSampleData(db); err != nil {
			logger.Fatal("Failed to seed sample data", "error", err)
		}
	}

	if *issueToken {
		req := &dto.IssueEmployeeTokenRequest{
			CompanyID:     *companyID,
			EmployeeName:  optional(*employeeName),
			EmployeeEmail: optional(*employeeEmail),
			JobTitle:      optional(*jobTitle),
			TTL:           *ttl,
		}
		issued, err := seeder.tokens.Issue(db, req)
		if err != nil {
			logger.Fatal("Failed to issue employee token", "error", err, "company_id", *companyID)
		}
		// Токен печатается один раз: в отзывах хранится только замаскированная версия
		fmt.Fprintln(os.Stdout, issued.Token)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type seeder struct {
	companyRepo repositories.CompanyRepository
	auth        services.AuthService
	jobs        services.JobService
	reviews     services.ReviewService
	tokens      services.EmployeeTokenService
	supportOrgs services.SupportOrgService
}

func newSeeder() *seeder {
	companyRepo := repositories.NewCompanyRepository()
	reviewRepo := repositories.NewReviewRepository()
	jobRepo := repositories.NewJobRepository()
	tokens := services.NewEmployeeTokenService(repositories.NewEmployeeTokenRepository(), companyRepo, time.Now)
	ratings := services.NewRatingService(reviewRepo, companyRepo)

	return &seeder{
		companyRepo: companyRepo,
		// Регистрация не выпускает JWT, сервис токенов не нужен
		auth:        services.NewAuthService(companyRepo, nil),
		jobs:        services.NewJobService(jobRepo),
		reviews:     services.NewReviewService(reviewRepo, companyRepo, jobRepo, tokens, ratings),
		tokens:      tokens,
		supportOrgs: services.NewSupportOrgService(repositories.NewSupportOrgRepository()),
	}
}

const samplePassword = "SecurePass123"

type sampleCompany struct {
	company dto.RegisterRequest
	job     dto.CreateJobRequest
	review  dto.CreateReviewRequest
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

var sampleData = []sampleCompany{
	{
		company: dto.RegisterRequest{
			Email:       "contact@globalconstruction.com",
			CompanyName: "Global Construction Co.",
			Industry:    "Construction",
			Location:    "Dubai, UAE",
			Country:     "UAE",
			Description: strPtr("Leading construction company in the Middle East"),
			Website:     strPtr("https://globalconstruction.com"),
		},
		job: dto.CreateJobRequest{
			Title:        "Construction Worker",
			Description:  "General construction work including heavy lifting, scaffolding, and site preparation. Experience preferred but not required.",
			Location:     "Dubai, UAE",
			Salary:       "$800-1200/month",
			Requirements: strPtr("Physical fitness, willingness to work outdoors, basic safety training"),
			Benefits:     strPtr("Housing provided, health insurance, annual bonus"),
		},
		review: dto.CreateReviewRequest{
			RatingWorkConditions: 2.0,
			RatingPay:            3.0,
			RatingTreatment:      1.5,
			RatingSafety:         2.0,
			Comment:              "Long hours with minimal breaks. Safety equipment not always provided. Pay was delayed multiple times. Management needs improvement.",
			IsAnonymous:          boolPtr(true),
		},
	},
	{
		company: dto.RegisterRequest{
			Email:       "hr@pacificag.com",
			CompanyName: "Pacific Agriculture Ltd.",
			Industry:    "Agriculture",
			Location:    "California, USA",
			Country:     "USA",
			Description: strPtr("Sustainable farming and agriculture"),
			Website:     strPtr("https://pacificag.com"),
		},
		job: dto.CreateJobRequest{
			Title:        "Agricultural Worker",
			Description:  "Seasonal farm work including harvesting, planting, and crop maintenance. Housing provided on-site.",
			Location:     "California, USA",
			Salary:       "$15-18/hour",
			Requirements: strPtr("No experience necessary, training provided"),
			Benefits:     strPtr("Housing, meals, transportation, overtime pay"),
		},
		review: dto.CreateReviewRequest{
			RatingWorkConditions: 4.0,
			RatingPay:            3.5,
			RatingTreatment:      4.0,
			RatingSafety:         3.5,
			Comment:              "Fair treatment and decent pay. Housing conditions could be better but management is responsive to concerns. Overall positive experience.",
			IsAnonymous:          boolPtr(false),
		},
	},
	{
		company: dto.RegisterRequest{
			Email:       "info@medhospitality.com",
			CompanyName: "Mediterranean Hospitality Group",
			Industry:    "Hospitality",
			Location:    "Athens, Greece",
			Country:     "Greece",
			Description: strPtr("Premium hospitality services"),
			Website:     strPtr("https://medhospitality.com"),
		},
		job: dto.CreateJobRequest{
			Title:        "Hotel Staff",
			Description:  "Various positions available in housekeeping, kitchen, and front desk. Full training provided.",
			Location:     "Athens, Greece",
			Salary:       "€1200-1500/month",
			Requirements: strPtr("Customer service skills, basic English"),
			Benefits:     strPtr("Meals, uniform, tips, career advancement"),
		},
		review: dto.CreateReviewRequest{
			RatingWorkConditions: 4.5,
			RatingPay:            4.0,
			RatingTreatment:      4.5,
			RatingSafety:         4.0,
			Comment:              "Excellent working environment. Management treats staff with respect. Good opportunities for advancement. Highly recommend!",
			IsAnonymous:          boolPtr(false),
		},
	},
}

var sampleSupportOrgs = []models.SupportOrganization{
	{
		Name:        "Migrant Workers Rights Center",
		Type:        models.SupportOrgTypeLegalAid,
		Latitude:    25.2048,
		Longitude:   55.2708,
		Address:     "123 Sheikh Zayed Road, Dubai, UAE",
		Contact:     "+971-4-123-4567",
		Email:       "help@mwrc.ae",
		Services:    []string{"Legal consultation", "Contract review", "Dispute resolution", "Rights education"},
		OpenHours:   "Mon-Fri: 9AM-6PM",
		Description: strPtr("Providing legal support and advocacy for migrant workers"),
		Languages:   []string{"English", "Arabic", "Hindi"},
		IsActive:    true,
	},
	{
		Name:        "International Labor Organization",
		Type:        models.SupportOrgTypeNGO,
		Latitude:    37.7749,
		Longitude:   -122.4194,
		Address:     "456 Market Street, San Francisco, CA",
		Contact:     "+1-415-555-0123",
		Email:       "support@ilo-usa.org",
		Services:    []string{"Worker advocacy", "Fair labor standards", "Training programs", "Emergency assistance"},
		OpenHours:   "Mon-Fri: 8AM-5PM",
		Description: strPtr("Global organization promoting workers' rights"),
		Languages:   []string{"English", "Spanish"},
		IsActive:    true,
	},
}

// seedSampleData создает демо-данные через сервисы: рейтинги считаются
// штатным пересчетом, а отзывы верифицируются выпущенными токенами.
// Сервисы открывают собственные транзакции, поэтому внешней здесь нет.
func (s *seeder) seedSampleData(db *gorm.DB) error {
	for _, sample := range sampleData {
		reg := sample.company
		reg.Password = samplePassword
		company, err := s.auth.Register(db, &reg)
		if err != nil {
			return fmt.Errorf("register %s: %w", reg.Email, err)
		}
		if err := s.companyRepo.UpdateCompanyFields(db, company.ID, map[string]interface{}{"verified": true}); err != nil {
			return err
		}

		jobReq := sample.job
		jobReq.CompanyID = company.ID
		job, err := s.jobs.CreateJob(db, company.ID, &jobReq)
		if err != nil {
			return fmt.Errorf("create job for %s: %w", reg.Email, err)
		}

		issued, err := s.tokens.Issue(db, &dto.IssueEmployeeTokenRequest{CompanyID: company.ID})
		if err != nil {
			return err
		}

		reviewReq := sample.review
		reviewReq.CompanyID = company.ID
		reviewReq.JobID = &job.ID
		reviewReq.EmployeeToken = &issued.Token
		if _, err := s.reviews.CreateReview(db, &reviewReq); err != nil {
			return fmt.Errorf("create review for %s: %w", reg.Email, err)
		}

		logger.Info("Seeded company", "email", reg.Email, "company_id", company.ID)
	}

	for i := range sampleSupportOrgs {
		if err := s.supportOrgs.CreateSupportOrg(db, &sampleSupportOrgs[i]); err != nil {
			return err
		}
	}

	logger.Info("Sample data seeded",
		"companies", len(sampleData),
		"support_organizations", len(sampleSupportOrgs),
		"password", samplePassword,
	)
	return nil
}
