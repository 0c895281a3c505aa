package handlers

import (
	"net/http"

	"korus_backend/internal/services"
	"korus_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

// RegisterRoutes: все маршруты отзывов публичные, автор отзыва не аутентифицируется
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reviews := rg.Group("/reviews")
	{
		reviews.GET("", h.ListReviews)
		reviews.POST("", h.CreateReview)
		reviews.GET("/:id", h.GetReview)
		reviews.POST("/:id/helpful", h.MarkHelpful)
	}
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	companyID, err := ParseOptionalQueryID(c, "company_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	skip, limit := ParsePagination(c)

	reviews, err := h.reviewService.ListReviews(h.GetDB(c), companyID, skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req dto.CreateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	review, err := h.reviewService.GetReview(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) MarkHelpful(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	review, err := h.reviewService.MarkHelpful(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}
