package http

import (
	"net/http"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	templateUC usecasecontract.ITemplateUseCase
}

func NewTemplateHandler(templateUC usecasecontract.ITemplateUseCase) *TemplateHandler {
	return &TemplateHandler{templateUC: templateUC}
}

// ListTemplates handles GET /api/templates.
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.templateUC.ListTemplates(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, templates)
}

// ListCategories handles GET /api/templates/categories.
func (h *TemplateHandler) ListCategories(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.templateUC.ListCategories(c.Request.Context()))
}

// ListByCategory handles GET /api/templates/category/:id.
func (h *TemplateHandler) ListByCategory(c *gin.Context) {
	templates, err := h.templateUC.ListByCategory(c.Request.Context(), entity.TemplateCategory(c.Param("id")))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, templates)
}

// GetTemplate handles GET /api/templates/:id.
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	template, err := h.templateUC.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, template)
}

// SearchTemplates handles GET /api/templates/search?query=.
func (h *TemplateHandler) SearchTemplates(c *gin.Context) {
	templates, err := h.templateUC.SearchTemplates(c.Request.Context(), c.Query("query"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, templates)
}
