package services_test

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/humbertopaiva/ango-admin-backend/internal/cache"
	"github.com/humbertopaiva/ango-admin-backend/internal/catalog"
	"github.com/humbertopaiva/ango-admin-backend/internal/models"
	"github.com/humbertopaiva/ango-admin-backend/internal/refresher"
)

// MockCatalogAPI is a testify mock of the upstream client.
type MockCatalogAPI struct {
	mock.Mock
}

func (m *MockCatalogAPI) ListVariationTypes(ctx context.Context, companyID string) ([]models.VariationType, int, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]models.VariationType), args.Int(1), args.Error(2)
}

func (m *MockCatalogAPI) CreateVariationType(ctx context.Context, req catalog.CreateVariationTypeRequest) (*models.VariationType, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VariationType), args.Error(1)
}

func (m *MockCatalogAPI) UpdateVariationType(ctx context.Context, id string, req catalog.UpdateVariationTypeRequest) (*models.VariationType, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VariationType), args.Error(1)
}

func (m *MockCatalogAPI) DeleteVariationType(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogAPI) ListVariationItems(ctx context.Context, productID string) ([]models.VariationItem, int, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]models.VariationItem), args.Int(1), args.Error(2)
}

func (m *MockCatalogAPI) CreateVariationItem(ctx context.Context, req catalog.CreateVariationItemRequest) (*models.VariationItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VariationItem), args.Error(1)
}

func (m *MockCatalogAPI) UpdateVariationItem(ctx context.Context, id string, req catalog.UpdateVariationItemRequest) (*models.VariationItem, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VariationItem), args.Error(1)
}

func (m *MockCatalogAPI) DeleteVariationItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogAPI) ListProducts(ctx context.Context, companyID string) ([]models.Product, int, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]models.Product), args.Int(1), args.Error(2)
}

func (m *MockCatalogAPI) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogAPI) CreateProduct(ctx context.Context, req catalog.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogAPI) UpdateProduct(ctx context.Context, id string, req catalog.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogAPI) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogAPI) SetProductVariation(ctx context.Context, id string, req catalog.SetProductVariationRequest) (*models.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogAPI) ListCategories(ctx context.Context, companyID string) ([]models.Category, int, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]models.Category), args.Int(1), args.Error(2)
}

func (m *MockCatalogAPI) CreateCategory(ctx context.Context, req catalog.CreateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCatalogAPI) UpdateCategory(ctx context.Context, id string, req catalog.UpdateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCatalogAPI) DeleteCategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogAPI) ListAddonLists(ctx context.Context, companyID string) ([]models.AddonList, int, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]models.AddonList), args.Int(1), args.Error(2)
}

func (m *MockCatalogAPI) CreateAddonList(ctx context.Context, req catalog.CreateAddonListRequest) (*models.AddonList, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AddonList), args.Error(1)
}

func (m *MockCatalogAPI) UpdateAddonList(ctx context.Context, id string, req catalog.UpdateAddonListRequest) (*models.AddonList, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AddonList), args.Error(1)
}

func (m *MockCatalogAPI) DeleteAddonList(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogAPI) ListShowcase(ctx context.Context, companyID string) ([]models.ShowcaseEntry, int, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]models.ShowcaseEntry), args.Int(1), args.Error(2)
}

func (m *MockCatalogAPI) AddShowcaseEntry(ctx context.Context, companyID, productID string) (*models.ShowcaseEntry, error) {
	args := m.Called(ctx, companyID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShowcaseEntry), args.Error(1)
}

func (m *MockCatalogAPI) RemoveShowcaseEntry(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogAPI) GetProfile(ctx context.Context, companyID string) (*models.Profile, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockCatalogAPI) UpdateProfile(ctx context.Context, companyID string, req catalog.UpdateProfileRequest) (*models.Profile, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

// newTestRefresher builds a refresher over a fresh store with a tiny
// retry delay so inconsistency paths run fast in tests.
func newTestRefresher() *refresher.Refresher {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return refresher.New(cache.NewStore(), refresher.ReadConsistencyPolicy{
		RetryDelay: time.Millisecond,
	}, time.Minute, log)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}
