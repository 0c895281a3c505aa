package handlers

import (
	"net/http"

	"korus_backend/internal/services"
	"korus_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/jobs")
	{
		public.GET("", h.ListJobs)
		public.GET("/:id", h.GetJob)
	}

	protected := rg.Group("/jobs")
	protected.Use(h.RequireAuth())
	{
		protected.POST("", h.CreateJob)
		protected.PUT("/:id", h.UpdateJob)
		protected.DELETE("/:id", h.DeleteJob)
	}
}

// ListJobs - активные вакансии, ?company_id= фильтрует по компании
func (h *JobHandler) ListJobs(c *gin.Context) {
	companyID, err := ParseOptionalQueryID(c, "company_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	skip, limit := ParsePagination(c)

	jobs, err := h.jobService.ListJobs(h.GetDB(c), companyID, skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	job, err := h.jobService.GetJob(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	company, ok := h.GetAndAuthorizeCompany(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(h.GetDB(c), company.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	company, ok := h.GetAndAuthorizeCompany(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(h.GetDB(c), company.ID, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	company, ok := h.GetAndAuthorizeCompany(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.jobService.DeleteJob(h.GetDB(c), company.ID, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
