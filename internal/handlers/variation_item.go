// internal/handlers/variation_item.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/humbertopaiva/ango-admin-backend/internal/i18n"
	"github.com/humbertopaiva/ango-admin-backend/internal/services"
	"github.com/humbertopaiva/ango-admin-backend/internal/utils"
)

type VariationItemHandler struct {
	itemService     *services.VariationItemService
	resolverService *services.ResolverService
}

func NewVariationItemHandler(itemService *services.VariationItemService, resolverService *services.ResolverService) *VariationItemHandler {
	return &VariationItemHandler{
		itemService:     itemService,
		resolverService: resolverService,
	}
}

// GET /products/:id/variation-items
func (h *VariationItemHandler) ListForProduct(c *gin.Context) {
	productID := c.Param("id")

	items, err := h.itemService.ListForProduct(c.Request.Context(), productID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"items": items})
}

// GET /products/:id/variation-items/available?variation_type_id=...
//
// Returns the axis values not yet claimed as items on this product,
// with an explicit exhausted flag when none remain.
func (h *VariationItemHandler) ListAvailableValues(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)
	productID := c.Param("id")
	variationTypeID := c.Query("variation_type_id")

	availability, err := h.resolverService.AvailableValuesForProduct(c.Request.Context(), companyID, productID, variationTypeID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	resp := gin.H{"availability": availability}
	if availability.Exhausted {
		resp["message"] = i18n.T(lang, i18n.KeyVariationExhausted)
	}
	utils.SuccessResponse(c, resp)
}

// POST /variation-items
func (h *VariationItemHandler) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)

	var req services.CreateVariationItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), companyID, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVariationItemCreated),
		"item":    item,
	})
}

// PATCH /products/:id/variation-items/:itemId
func (h *VariationItemHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)
	productID := c.Param("id")
	itemID := c.Param("itemId")

	var req services.UpdateVariationItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), companyID, productID, itemID, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVariationItemUpdated),
		"item":    item,
	})
}

// DELETE /products/:id/variation-items/:itemId
func (h *VariationItemHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)
	productID := c.Param("id")
	itemID := c.Param("itemId")

	if err := h.itemService.Delete(c.Request.Context(), companyID, productID, itemID); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVariationItemDeleted),
	})
}
