// internal/handlers/showcase.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/humbertopaiva/ango-admin-backend/internal/i18n"
	"github.com/humbertopaiva/ango-admin-backend/internal/services"
	"github.com/humbertopaiva/ango-admin-backend/internal/utils"
)

type ShowcaseHandler struct {
	showcaseService *services.ShowcaseService
}

func NewShowcaseHandler(showcaseService *services.ShowcaseService) *ShowcaseHandler {
	return &ShowcaseHandler{
		showcaseService: showcaseService,
	}
}

// GET /showcase
func (h *ShowcaseHandler) List(c *gin.Context) {
	companyID, _ := utils.GetCompanyIDFromContext(c)

	entries, err := h.showcaseService.List(c.Request.Context(), companyID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"showcase": entries})
}

// POST /showcase
func (h *ShowcaseHandler) Add(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)

	var req struct {
		ProductID string `json:"product_id" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	entry, err := h.showcaseService.Add(c.Request.Context(), companyID, req.ProductID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyShowcaseAdded),
		"entry":   entry,
	})
}

// DELETE /showcase/:id
func (h *ShowcaseHandler) Remove(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)
	id := c.Param("id")

	if err := h.showcaseService.Remove(c.Request.Context(), companyID, id); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyShowcaseRemoved),
	})
}
