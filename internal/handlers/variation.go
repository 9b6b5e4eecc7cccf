// internal/handlers/variation.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/humbertopaiva/ango-admin-backend/internal/apperrors"
	"github.com/humbertopaiva/ango-admin-backend/internal/i18n"
	"github.com/humbertopaiva/ango-admin-backend/internal/services"
	"github.com/humbertopaiva/ango-admin-backend/internal/utils"
)

type VariationHandler struct {
	registryService *services.VariationRegistryService
	resolverService *services.ResolverService
}

func NewVariationHandler(registryService *services.VariationRegistryService, resolverService *services.ResolverService) *VariationHandler {
	return &VariationHandler{
		registryService: registryService,
		resolverService: resolverService,
	}
}

// GET /variations
func (h *VariationHandler) List(c *gin.Context) {
	companyID, _ := utils.GetCompanyIDFromContext(c)

	types, err := h.registryService.List(c.Request.Context(), companyID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"variations": types})
}

// GET /variations/available?product_id=...
//
// Axes already claimed by another product are filtered out; the axis
// held by product_id itself stays listed so an edit form can show the
// current selection.
func (h *VariationHandler) ListAvailable(c *gin.Context) {
	companyID, _ := utils.GetCompanyIDFromContext(c)
	currentProductID := c.Query("product_id")

	types, err := h.resolverService.AvailableTypesForProduct(c.Request.Context(), companyID, currentProductID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"variations": types})
}

// POST /variations
func (h *VariationHandler) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)

	var req services.CreateVariationTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	variationType, err := h.registryService.Create(c.Request.Context(), companyID, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":   i18n.T(lang, i18n.KeyVariationCreated),
		"variation": variationType,
	})
}

// PATCH /variations/:id
func (h *VariationHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)
	id := c.Param("id")

	var req services.UpdateVariationTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	variationType, err := h.registryService.Update(c.Request.Context(), companyID, id, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":   i18n.T(lang, i18n.KeyVariationUpdated),
		"variation": variationType,
	})
}

// DELETE /variations/:id
func (h *VariationHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)
	id := c.Param("id")

	if err := h.registryService.Delete(c.Request.Context(), companyID, id); err != nil {
		var refErr *apperrors.ReferentialIntegrityError
		if errors.As(err, &refErr) {
			utils.ErrorResponse(c, refErr.HTTPStatus(), refErr.Category(), i18n.T(lang, i18n.KeyVariationInUse), refErr.Dependent)
			return
		}
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVariationDeleted),
	})
}
