package handlers

import (
	"net/http"

	"korus_backend/internal/services"
	"korus_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/companies")
	{
		public.GET("", h.ListCompanies)
		public.GET("/:id", h.GetCompany)
	}

	// Компания может менять и удалять только свой аккаунт
	own := rg.Group("/companies/me")
	own.Use(h.RequireAuth())
	{
		own.PUT("", h.UpdateMe)
		own.DELETE("", h.DeleteMe)
	}
}

func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	skip, limit := ParsePagination(c)

	companies, err := h.companyService.ListCompanies(h.GetDB(c), skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, companies)
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	company, err := h.companyService.GetCompany(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) UpdateMe(c *gin.Context) {
	company, ok := h.GetAndAuthorizeCompany(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	updated, err := h.companyService.UpdateProfile(h.GetDB(c), company.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *CompanyHandler) DeleteMe(c *gin.Context) {
	company, ok := h.GetAndAuthorizeCompany(c)
	if !ok {
		return
	}

	if err := h.companyService.DeleteAccount(h.GetDB(c), company.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
