// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/humbertopaiva/ango-admin-backend/internal/i18n"
	"github.com/humbertopaiva/ango-admin-backend/internal/services"
	"github.com/humbertopaiva/ango-admin-backend/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	companyID, _ := utils.GetCompanyIDFromContext(c)

	categories, err := h.categoryService.List(c.Request.Context(), companyID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"categories": categories})
}

// POST /categories
func (h *CategoryHandler) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)

	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), companyID, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyCategoryCreated),
		"category": category,
	})
}

// PATCH /categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)
	id := c.Param("id")

	var req services.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), companyID, id, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyCategoryUpdated),
		"category": category,
	})
}

// DELETE /categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)
	id := c.Param("id")

	if err := h.categoryService.Delete(c.Request.Context(), companyID, id); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCategoryDeleted),
	})
}
