// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/humbertopaiva/ango-admin-backend/internal/i18n"
	"github.com/humbertopaiva/ango-admin-backend/internal/services"
	"github.com/humbertopaiva/ango-admin-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// GET /products
func (h *ProductHandler) List(c *gin.Context) {
	companyID, _ := utils.GetCompanyIDFromContext(c)
	params := utils.GetPaginationParams(c)

	products, err := h.productService.List(c.Request.Context(), companyID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	// The upstream list endpoint has no pagination, so the page is
	// sliced out of the cached snapshot.
	start, end := utils.PageBounds(len(products), params)
	result := utils.CreatePaginationResult(products[start:end], int64(len(products)), params)
	utils.PaginatedResponse(c, result)
}

// GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	productID := c.Param("id")

	product, err := h.productService.Get(c.Request.Context(), productID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"product": product})
}

// POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.Create(c.Request.Context(), companyID, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated),
		"product": product,
	})
}

// PATCH /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)
	productID := c.Param("id")

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.Update(c.Request.Context(), companyID, productID, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": product,
	})
}

// DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)
	productID := c.Param("id")

	if err := h.productService.Delete(c.Request.Context(), companyID, productID); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
	})
}

// PUT /products/:id/variation
func (h *ProductHandler) AssignVariation(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)
	productID := c.Param("id")

	var req struct {
		VariationTypeID string `json:"variation_type_id" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.AssignVariation(c.Request.Context(), companyID, productID, req.VariationTypeID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductVariationSet),
		"product": product,
	})
}

// DELETE /products/:id/variation
func (h *ProductHandler) ClearVariation(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	companyID, _ := utils.GetCompanyIDFromContext(c)
	productID := c.Param("id")

	product, err := h.productService.ClearVariation(c.Request.Context(), companyID, productID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductVariationCleared),
		"product": product,
	})
}
