// internal/handlers/addon.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/humbertopaiva/ango-admin-backend/internal/i18n"
	"github.com/humbertopaiva/ango-admin-backend/internal/services"
	"github.com/humbertopaiva/ango-admin-backend/internal/utils"
)

type AddonHandler struct {
	addonService *services.AddonService
}

func NewAddonHandler(addonService *services.AddonService) *AddonHandler {
	return &AddonHandler{
		addonService: addonService,
	}
}

// GET /addon-lists
func (h *AddonHandler) List(c *gin.Context) {
	companyID, _ := utils.GetCompanyIDFromContext(c)

	lists, err := h.addonService.List(c.Request.Context(), companyID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"addon_lists": lists})
}

// POST /addon-lists
func (h *AddonHandler) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)

	var req services.CreateAddonListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	list, err := h.addonService.Create(c.Request.Context(), companyID, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyAddonListCreated),
		"addon_list": list,
	})
}

// PATCH /addon-lists/:id
func (h *AddonHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)
	id := c.Param("id")

	var req services.UpdateAddonListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	list, err := h.addonService.Update(c.Request.Context(), companyID, id, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyAddonListUpdated),
		"addon_list": list,
	})
}

// DELETE /addon-lists/:id
func (h *AddonHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)
	id := c.Param("id")

	if err := h.addonService.Delete(c.Request.Context(), companyID, id); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAddonListDeleted),
	})
}
