// internal/services/snapshots.go
package services

import (
	"context"

	"github.com/humbertopaiva/ango-admin-backend/internal/cache"
	"github.com/humbertopaiva/ango-admin-backend/internal/models"
	"github.com/humbertopaiva/ango-admin-backend/internal/refresher"
)

func variationTypesKey(companyID string) cache.Key {
	return cache.Key{Resource: cache.ResourceVariationTypes, ScopeID: companyID}
}

func variationItemsKey(productID string) cache.Key {
	return cache.Key{Resource: cache.ResourceVariationItems, ScopeID: productID}
}

func productsKey(companyID string) cache.Key {
	return cache.Key{Resource: cache.ResourceProducts, ScopeID: companyID}
}

func productKey(productID string) cache.Key {
	return cache.Key{Resource: cache.ResourceProduct, ScopeID: productID}
}

func categoriesKey(companyID string) cache.Key {
	return cache.Key{Resource: cache.ResourceCategories, ScopeID: companyID}
}

func addonListsKey(companyID string) cache.Key {
	return cache.Key{Resource: cache.ResourceAddonLists, ScopeID: companyID}
}

func showcaseKey(companyID string) cache.Key {
	return cache.Key{Resource: cache.ResourceShowcase, ScopeID: companyID}
}

func profileKey(companyID string) cache.Key {
	return cache.Key{Resource: cache.ResourceProfile, ScopeID: companyID}
}

// Snapshots is the shared read side of the engine: cached, refresher-
// mediated views of the upstream that the registry, resolver and item
// store all validate against. The resolver is a pure function of
// these snapshots and persists nothing itself.
type Snapshots struct {
	api       CatalogAPI
	refresher *refresher.Refresher
}

func NewSnapshots(api CatalogAPI, r *refresher.Refresher) *Snapshots {
	return &Snapshots{api: api, refresher: r}
}

func (s *Snapshots) VariationTypes(ctx context.Context, companyID string) ([]models.VariationType, error) {
	value, err := s.refresher.Load(ctx, variationTypesKey(companyID), func(ctx context.Context) (interface{}, int, int, error) {
		types, total, err := s.api.ListVariationTypes(ctx, companyID)
		return types, len(types), total, err
	})
	if err != nil {
		return nil, err
	}
	types, _ := value.([]models.VariationType)
	return types, nil
}

func (s *Snapshots) VariationItems(ctx context.Context, productID string) ([]models.VariationItem, error) {
	value, err := s.refresher.Load(ctx, variationItemsKey(productID), func(ctx context.Context) (interface{}, int, int, error) {
		items, total, err := s.api.ListVariationItems(ctx, productID)
		return items, len(items), total, err
	})
	if err != nil {
		return nil, err
	}
	items, _ := value.([]models.VariationItem)
	return items, nil
}

func (s *Snapshots) Products(ctx context.Context, companyID string) ([]models.Product, error) {
	value, err := s.refresher.Load(ctx, productsKey(companyID), func(ctx context.Context) (interface{}, int, int, error) {
		products, total, err := s.api.ListProducts(ctx, companyID)
		return products, len(products), total, err
	})
	if err != nil {
		return nil, err
	}
	products, _ := value.([]models.Product)
	return products, nil
}

func (s *Snapshots) Product(ctx context.Context, productID string) (*models.Product, error) {
	value, err := s.refresher.Load(ctx, productKey(productID), func(ctx context.Context) (interface{}, int, int, error) {
		product, err := s.api.GetProduct(ctx, productID)
		return product, 1, -1, err
	})
	if err != nil {
		return nil, err
	}
	product, _ := value.(*models.Product)
	return product, nil
}
