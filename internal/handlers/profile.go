// internal/handlers/profile.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/humbertopaiva/ango-admin-backend/internal/i18n"
	"github.com/humbertopaiva/ango-admin-backend/internal/services"
	"github.com/humbertopaiva/ango-admin-backend/internal/utils"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GET /profile
func (h *ProfileHandler) Get(c *gin.Context) {
	companyID, _ := utils.GetCompanyIDFromContext(c)

	profile, err := h.profileService.Get(c.Request.Context(), companyID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"profile": profile})
}

// PATCH /profile
func (h *ProfileHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), companyID, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProfileUpdated),
		"profile": profile,
	})
}
