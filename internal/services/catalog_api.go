// internal/services/catalog_api.go
package services

import (
	"context"

	"github.com/humbertopaiva/ango-admin-backend/internal/catalog"
	"github.com/humbertopaiva/ango-admin-backend/internal/models"
)

// CatalogAPI is the slice of the upstream client the services depend
// on. Narrowing it to an interface keeps every service testable
// against a fake backend.
type CatalogAPI interface {
	ListVariationTypes(ctx context.Context, companyID string) ([]models.VariationType, int, error)
	CreateVariationType(ctx context.Context, req catalog.CreateVariationTypeRequest) (*models.VariationType, error)
	UpdateVariationType(ctx context.Context, id string, req catalog.UpdateVariationTypeRequest) (*models.VariationType, error)
	DeleteVariationType(ctx context.Context, id string) error

	ListVariationItems(ctx context.Context, productID string) ([]models.VariationItem, int, error)
	CreateVariationItem(ctx context.Context, req catalog.CreateVariationItemRequest) (*models.VariationItem, error)
	UpdateVariationItem(ctx context.Context, id string, req catalog.UpdateVariationItemRequest) (*models.VariationItem, error)
	DeleteVariationItem(ctx context.Context, id string) error

	ListProducts(ctx context.Context, companyID string) ([]models.Product, int, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, req catalog.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req catalog.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	SetProductVariation(ctx context.Context, id string, req catalog.SetProductVariationRequest) (*models.Product, error)

	ListCategories(ctx context.Context, companyID string) ([]models.Category, int, error)
	CreateCategory(ctx context.Context, req catalog.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req catalog.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListAddonLists(ctx context.Context, companyID string) ([]models.AddonList, int, error)
	CreateAddonList(ctx context.Context, req catalog.CreateAddonListRequest) (*models.AddonList, error)
	UpdateAddonList(ctx context.Context, id string, req catalog.UpdateAddonListRequest) (*models.AddonList, error)
	DeleteAddonList(ctx context.Context, id string) error

	ListShowcase(ctx context.Context, companyID string) ([]models.ShowcaseEntry, int, error)
	AddShowcaseEntry(ctx context.Context, companyID, productID string) (*models.ShowcaseEntry, error)
	RemoveShowcaseEntry(ctx context.Context, id string) error

	GetProfile(ctx context.Context, companyID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, companyID string, req catalog.UpdateProfileRequest) (*models.Profile, error)
}
