// internal/catalog/products.go
package catalog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/humbertopaiva/ango-admin-backend/internal/models"
)

type CreateProductRequest struct {
	CompanyID   string            `json:"company_id"`
	CategoryID  string            `json:"category_id,omitempty"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Price       float64           `json:"price"`
	Image       string            `json:"image,omitempty"`
	Visibility  models.Visibility `json:"visibility"`
}

type UpdateProductRequest struct {
	CategoryID  *string            `json:"category_id,omitempty"`
	Name        *string            `json:"name,omitempty"`
	Description *string            `json:"description,omitempty"`
	Price       *float64           `json:"price,omitempty"`
	Image       *string            `json:"image,omitempty"`
	Visibility  *models.Visibility `json:"visibility,omitempty"`
	Status      *string            `json:"status,omitempty"`
}

// SetProductVariationRequest updates only the variation linkage of a
// product. A nil VariationTypeID clears the link.
type SetProductVariationRequest struct {
	VariationTypeID *string `json:"variation_type_id"`
	HasVariation    bool    `json:"has_variation"`
}

func (c *Client) ListProducts(ctx context.Context, companyID string) ([]models.Product, int, error) {
	var products []models.Product
	total, err := c.getList(ctx, "/products/company/"+companyID, &products)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.getOne(ctx, "/products/"+id, &product); err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (*models.Product, error) {
	var created models.Product
	if err := c.do(ctx, http.MethodPost, "/products", req, &created); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*models.Product, error) {
	var updated models.Product
	if err := c.do(ctx, http.MethodPatch, "/products/"+id, req, &updated); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return &updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/products/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

func (c *Client) SetProductVariation(ctx context.Context, id string, req SetProductVariationRequest) (*models.Product, error) {
	var updated models.Product
	if err := c.do(ctx, http.MethodPatch, "/products/"+id+"/variation", req, &updated); err != nil {
		return nil, fmt.Errorf("failed to set variation of product %s: %w", id, err)
	}
	return &updated, nil
}
