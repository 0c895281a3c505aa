package handlers

import (
	"net/http"

	"korus_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SupportOrgHandler struct {
	*BaseHandler
	supportOrgService services.SupportOrgService
}

func NewSupportOrgHandler(base *BaseHandler, supportOrgService services.SupportOrgService) *SupportOrgHandler {
	return &SupportOrgHandler{
		BaseHandler:       base,
		supportOrgService: supportOrgService,
	}
}

func (h *SupportOrgHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orgs := rg.Group("/support-organizations")
	{
		orgs.GET("", h.ListSupportOrgs)
		orgs.GET("/:id", h.GetSupportOrg)
	}
}

func (h *SupportOrgHandler) ListSupportOrgs(c *gin.Context) {
	skip, limit := ParsePagination(c)

	orgs, err := h.supportOrgService.ListSupportOrgs(h.GetDB(c), skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, orgs)
}

func (h *SupportOrgHandler) GetSupportOrg(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	org, err := h.supportOrgService.GetSupportOrg(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}
