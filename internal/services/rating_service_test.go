package services_test

import (
	"testing"

	"korus_backend/internal/models"
	"korus_backend/internal/repositories"
	"korus_backend/internal/services"
	"korus_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func review(work, pay, treatment, safety float64, verified bool) models.Review {
	return models.Review{
		RatingWorkConditions: work,
		RatingPay:            pay,
		RatingTreatment:      treatment,
		RatingSafety:         safety,
		VerifiedEmployee:     verified,
	}
}

func TestComputeRatings(t *testing.T) {
	tests := []struct {
		name    string
		reviews []models.Review
		want    services.RatingBlock
	}{
		{
			name:    "single verified review",
			reviews: []models.Review{review(4, 4, 4, 4, true)},
			want: services.RatingBlock{
				WorkConditions: 4, Pay: 4, Treatment: 4, Safety: 4,
				Overall: 4, Trust: 4.5, TotalReviews: 1,
			},
		},
		{
			name:    "half verified",
			reviews: []models.Review{review(4, 4, 4, 4, true), review(2, 3, 4, 5, false)},
			want: services.RatingBlock{
				WorkConditions: 3, Pay: 3.5, Treatment: 4, Safety: 4.5,
				Overall: 3.75, Trust: 4, TotalReviews: 2,
			},
		},
		{
			name:    "trust clamped to five",
			reviews: []models.Review{review(5, 5, 5, 5, true), review(5, 5, 5, 5, true)},
			want: services.RatingBlock{
				WorkConditions: 5, Pay: 5, Treatment: 5, Safety: 5,
				Overall: 5, Trust: 5, TotalReviews: 2,
			},
		},
		{
			name:    "rounded to two places",
			reviews: []models.Review{review(1, 1, 1, 1, false), review(2, 2, 2, 2, false), review(2, 2, 2, 2, false)},
			want: services.RatingBlock{
				WorkConditions: 1.67, Pay: 1.67, Treatment: 1.67, Safety: 1.67,
				Overall: 1.67, Trust: 1.67, TotalReviews: 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := services.ComputeRatings(tt.reviews)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeRatings_NoReviews(t *testing.T) {
	_, ok := services.ComputeRatings(nil)
	assert.False(t, ok)
}

// TestRatingService_RecomputeKeepsBlockWithoutReviews - пересчет без отзывов блок не трогает,
// а синхронизация после удаления обнуляет его
func TestRatingService_RecomputeKeepsBlockWithoutReviews(t *testing.T) {
	db := helpers.OpenTestDB(t)
	company := helpers.CreateCompany(t, db, &models.Company{OverallRating: 3.5, TrustScore: 3.5, TotalReviews: 7}, "")

	svc := services.NewRatingService(repositories.NewReviewRepository(), repositories.NewCompanyRepository())

	require.NoError(t, svc.RecomputeCompanyRatings(db, company.ID))
	var stored models.Company
	require.NoError(t, db.First(&stored, company.ID).Error)
	assert.Equal(t, 3.5, stored.OverallRating)
	assert.Equal(t, 7, stored.TotalReviews)

	require.NoError(t, svc.SyncCompanyRatings(db, company.ID))
	require.NoError(t, db.First(&stored, company.ID).Error)
	assert.Zero(t, stored.OverallRating)
	assert.Zero(t, stored.TrustScore)
	assert.Zero(t, stored.TotalReviews)
}
