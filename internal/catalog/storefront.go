// internal/catalog/storefront.go
package catalog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/humbertopaiva/ango-admin-backend/internal/models"
)

type CreateCategoryRequest struct {
	CompanyID  string            `json:"company_id"`
	Name       string            `json:"name"`
	Image      string            `json:"image,omitempty"`
	Visibility models.Visibility `json:"visibility"`
}

type UpdateCategoryRequest struct {
	Name       *string            `json:"name,omitempty"`
	Image      *string            `json:"image,omitempty"`
	Visibility *models.Visibility `json:"visibility,omitempty"`
	Status     *string            `json:"status,omitempty"`
}

type CreateAddonListRequest struct {
	CompanyID string             `json:"company_id"`
	Name      string             `json:"name"`
	Required  bool               `json:"required"`
	MaxPicks  *int               `json:"max_picks,omitempty"`
	Items     []models.AddonItem `json:"items"`
}

type UpdateAddonListRequest struct {
	Name     *string             `json:"name,omitempty"`
	Required *bool               `json:"required,omitempty"`
	MaxPicks *int                `json:"max_picks,omitempty"`
	Items    *[]models.AddonItem `json:"items,omitempty"`
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Description *string `json:"description,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	Banner      *string `json:"banner,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	WhatsApp    *string `json:"whatsapp,omitempty"`
	Address     *string `json:"address,omitempty"`
}

func (c *Client) ListCategories(ctx context.Context, companyID string) ([]models.Category, int, error) {
	var categories []models.Category
	total, err := c.getList(ctx, "/categories/company/"+companyID, &categories)
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (c *Client) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*models.Category, error) {
	var created models.Category
	if err := c.do(ctx, http.MethodPost, "/categories", req, &created); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &created, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, req UpdateCategoryRequest) (*models.Category, error) {
	var updated models.Category
	if err := c.do(ctx, http.MethodPatch, "/categories/"+id, req, &updated); err != nil {
		return nil, fmt.Errorf("failed to update category %s: %w", id, err)
	}
	return &updated, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/categories/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	return nil
}

func (c *Client) ListAddonLists(ctx context.Context, companyID string) ([]models.AddonList, int, error) {
	var lists []models.AddonList
	total, err := c.getList(ctx, "/addon-lists/company/"+companyID, &lists)
	if err != nil {
		return nil, 0, err
	}
	return lists, total, nil
}

func (c *Client) CreateAddonList(ctx context.Context, req CreateAddonListRequest) (*models.AddonList, error) {
	var created models.AddonList
	if err := c.do(ctx, http.MethodPost, "/addon-lists", req, &created); err != nil {
		return nil, fmt.Errorf("failed to create addon list: %w", err)
	}
	return &created, nil
}

func (c *Client) UpdateAddonList(ctx context.Context, id string, req UpdateAddonListRequest) (*models.AddonList, error) {
	var updated models.AddonList
	if err := c.do(ctx, http.MethodPatch, "/addon-lists/"+id, req, &updated); err != nil {
		return nil, fmt.Errorf("failed to update addon list %s: %w", id, err)
	}
	return &updated, nil
}

func (c *Client) DeleteAddonList(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/addon-lists/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete addon list %s: %w", id, err)
	}
	return nil
}

func (c *Client) ListShowcase(ctx context.Context, companyID string) ([]models.ShowcaseEntry, int, error) {
	var entries []models.ShowcaseEntry
	total, err := c.getList(ctx, "/showcase/company/"+companyID, &entries)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (c *Client) AddShowcaseEntry(ctx context.Context, companyID, productID string) (*models.ShowcaseEntry, error) {
	payload := map[string]string{"company_id": companyID, "product_id": productID}
	var created models.ShowcaseEntry
	if err := c.do(ctx, http.MethodPost, "/showcase", payload, &created); err != nil {
		return nil, fmt.Errorf("failed to add showcase entry: %w", err)
	}
	return &created, nil
}

func (c *Client) RemoveShowcaseEntry(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/showcase/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to remove showcase entry %s: %w", id, err)
	}
	return nil
}

func (c *Client) GetProfile(ctx context.Context, companyID string) (*models.Profile, error) {
	var profile models.Profile
	if err := c.getOne(ctx, "/profile/company/"+companyID, &profile); err != nil {
		return nil, fmt.Errorf("failed to fetch profile of company %s: %w", companyID, err)
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, companyID string, req UpdateProfileRequest) (*models.Profile, error) {
	var updated models.Profile
	if err := c.do(ctx, http.MethodPatch, "/profile/company/"+companyID, req, &updated); err != nil {
		return nil, fmt.Errorf("failed to update profile of company %s: %w", companyID, err)
	}
	return &updated, nil
}
