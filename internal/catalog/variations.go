// internal/catalog/variations.go
package catalog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/humbertopaiva/ango-admin-backend/internal/models"
)

// CreateVariationTypeRequest mirrors the upstream write shape for an axis.
type CreateVariationTypeRequest struct {
	CompanyID string   `json:"company_id"`
	Name      string   `json:"name"`
	Values    []string `json:"values"`
}

// UpdateVariationTypeRequest is a partial update; nil fields are left
// untouched upstream.
type UpdateVariationTypeRequest struct {
	Name   *string   `json:"name,omitempty"`
	Values *[]string `json:"values,omitempty"`
}

// CreateVariationItemRequest mirrors the upstream write shape for a SKU.
type CreateVariationItemRequest struct {
	ProductID        string            `json:"product_id"`
	VariationTypeID  string            `json:"variation_type_id"`
	Value            string            `json:"value"`
	Price            float64           `json:"price"`
	PromotionalPrice *float64          `json:"promotional_price,omitempty"`
	Description      string            `json:"description,omitempty"`
	Image            string            `json:"image,omitempty"`
	Available        bool              `json:"available"`
	Visibility       models.Visibility `json:"visibility"`
	MaxCartQuantity  *int              `json:"max_cart_quantity,omitempty"`
}

// UpdateVariationItemRequest is a partial update of a SKU.
type UpdateVariationItemRequest struct {
	Value            *string            `json:"value,omitempty"`
	Price            *float64           `json:"price,omitempty"`
	PromotionalPrice *float64           `json:"promotional_price,omitempty"`
	Description      *string            `json:"description,omitempty"`
	Image            *string            `json:"image,omitempty"`
	Available        *bool              `json:"available,omitempty"`
	Visibility       *models.Visibility `json:"visibility,omitempty"`
	MaxCartQuantity  *int               `json:"max_cart_quantity,omitempty"`
}

func (c *Client) ListVariationTypes(ctx context.Context, companyID string) ([]models.VariationType, int, error) {
	var types []models.VariationType
	total, err := c.getList(ctx, "/variations/company/"+companyID, &types)
	if err != nil {
		return nil, 0, err
	}
	return types, total, nil
}

func (c *Client) CreateVariationType(ctx context.Context, req CreateVariationTypeRequest) (*models.VariationType, error) {
	var created models.VariationType
	if err := c.do(ctx, http.MethodPost, "/variations", req, &created); err != nil {
		return nil, fmt.Errorf("failed to create variation type: %w", err)
	}
	return &created, nil
}

func (c *Client) UpdateVariationType(ctx context.Context, id string, req UpdateVariationTypeRequest) (*models.VariationType, error) {
	var updated models.VariationType
	if err := c.do(ctx, http.MethodPatch, "/variations/"+id, req, &updated); err != nil {
		return nil, fmt.Errorf("failed to update variation type %s: %w", id, err)
	}
	return &updated, nil
}

func (c *Client) DeleteVariationType(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/variations/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete variation type %s: %w", id, err)
	}
	return nil
}

func (c *Client) ListVariationItems(ctx context.Context, productID string) ([]models.VariationItem, int, error) {
	var items []models.VariationItem
	total, err := c.getList(ctx, "/products/"+productID+"/variations", &items)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (c *Client) CreateVariationItem(ctx context.Context, req CreateVariationItemRequest) (*models.VariationItem, error) {
	var created models.VariationItem
	if err := c.do(ctx, http.MethodPost, "/variation-items", req, &created); err != nil {
		return nil, fmt.Errorf("failed to create variation item: %w", err)
	}
	return &created, nil
}

func (c *Client) UpdateVariationItem(ctx context.Context, id string, req UpdateVariationItemRequest) (*models.VariationItem, error) {
	var updated models.VariationItem
	if err := c.do(ctx, http.MethodPatch, "/variation-items/"+id, req, &updated); err != nil {
		return nil, fmt.Errorf("failed to update variation item %s: %w", id, err)
	}
	return &updated, nil
}

func (c *Client) DeleteVariationItem(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/variation-items/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete variation item %s: %w", id, err)
	}
	return nil
}
