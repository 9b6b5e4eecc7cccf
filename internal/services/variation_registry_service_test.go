package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/humbertopaiva/ango-admin-backend/internal/apperrors"
	"github.com/humbertopaiva/ango-admin-backend/internal/catalog"
	"github.com/humbertopaiva/ango-admin-backend/internal/models"
	"github.com/humbertopaiva/ango-admin-backend/internal/services"
)

func newRegistryService(api *MockCatalogAPI) *services.VariationRegistryService {
	r := newTestRefresher()
	return services.NewVariationRegistryService(api, r, services.NewSnapshots(api, r), testLogger())
}

func TestNormalizeValues(t *testing.T) {
	values := services.NormalizeValues([]string{" P ", "M", "", "P", "  ", "G"})
	assert.Equal(t, []string{"P", "M", "G"}, values)
}

func TestRegistryCreate_Success(t *testing.T) {
	api := new(MockCatalogAPI)
	svc := newRegistryService(api)

	created := &models.VariationType{ID: "vt-1", CompanyID: "company-1", Name: "Tamanho", Values: []string{"P", "M", "G"}}
	api.On("CreateVariationType", mock.Anything, catalog.CreateVariationTypeRequest{
		CompanyID: "company-1",
		Name:      "Tamanho",
		Values:    []string{"P", "M", "G"},
	}).Return(created, nil)

	got, err := svc.Create(context.Background(), "company-1", &services.CreateVariationTypeRequest{
		Name:   "  Tamanho ",
		Values: []string{"P", "M", "P", " G "},
	})

	assert.NoError(t, err)
	assert.Equal(t, created, got)
	api.AssertExpectations(t)
}

// An empty name or a value set that normalizes to nothing never reaches
// the upstream.
func TestRegistryCreate_RejectsInvalidInputBeforeNetwork(t *testing.T) {
	api := new(MockCatalogAPI)
	svc := newRegistryService(api)

	_, err := svc.Create(context.Background(), "company-1", &services.CreateVariationTypeRequest{
		Name:   "   ",
		Values: []string{"P"},
	})
	var validation *apperrors.ValidationError
	assert.ErrorAs(t, err, &validation)

	_, err = svc.Create(context.Background(), "company-1", &services.CreateVariationTypeRequest{
		Name:   "Tamanho",
		Values: []string{"", "  "},
	})
	assert.ErrorAs(t, err, &validation)

	api.AssertNotCalled(t, "CreateVariationType", mock.Anything, mock.Anything)
}

func TestRegistryCreate_InvalidatesTypesSnapshot(t *testing.T) {
	api := new(MockCatalogAPI)
	svc := newRegistryService(api)

	api.On("ListVariationTypes", mock.Anything, "company-1").Return([]models.VariationType{}, 0, nil)
	api.On("CreateVariationType", mock.Anything, mock.Anything).Return(&models.VariationType{ID: "vt-1"}, nil)

	_, err := svc.List(context.Background(), "company-1")
	assert.NoError(t, err)
	_, err = svc.List(context.Background(), "company-1")
	assert.NoError(t, err)
	api.AssertNumberOfCalls(t, "ListVariationTypes", 1)

	_, err = svc.Create(context.Background(), "company-1", &services.CreateVariationTypeRequest{
		Name: "Cor", Values: []string{"Azul"},
	})
	assert.NoError(t, err)

	_, err = svc.List(context.Background(), "company-1")
	assert.NoError(t, err)
	api.AssertNumberOfCalls(t, "ListVariationTypes", 2)
}

func TestRegistryDelete_RefusedWhileProductAllocated(t *testing.T) {
	api := new(MockCatalogAPI)
	svc := newRegistryService(api)

	products := []models.Product{
		{ID: "prod-1", Variation: models.VariationByID("vt-size")},
	}
	api.On("ListProducts", mock.Anything, "company-1").Return(products, 1, nil)

	err := svc.Delete(context.Background(), "company-1", "vt-size")

	var refErr *apperrors.ReferentialIntegrityError
	assert.ErrorAs(t, err, &refErr)
	assert.Equal(t, "product", refErr.Dependent)
	api.AssertNotCalled(t, "DeleteVariationType", mock.Anything, mock.Anything)
}

// Items can survive a cleared allocation upstream; the guard catches
// those too.
func TestRegistryDelete_RefusedWhileOrphanedItemExists(t *testing.T) {
	api := new(MockCatalogAPI)
	svc := newRegistryService(api)

	products := []models.Product{{ID: "prod-1"}}
	items := []models.VariationItem{
		{ID: "item-1", ProductID: "prod-1", VariationTypeID: "vt-size", Value: "P"},
	}
	api.On("ListProducts", mock.Anything, "company-1").Return(products, 1, nil)
	api.On("ListVariationItems", mock.Anything, "prod-1").Return(items, 1, nil)

	err := svc.Delete(context.Background(), "company-1", "vt-size")

	var refErr *apperrors.ReferentialIntegrityError
	assert.ErrorAs(t, err, &refErr)
	assert.Equal(t, "variation_item", refErr.Dependent)
	api.AssertNotCalled(t, "DeleteVariationType", mock.Anything, mock.Anything)
}

func TestRegistryDelete_Success(t *testing.T) {
	api := new(MockCatalogAPI)
	svc := newRegistryService(api)

	products := []models.Product{{ID: "prod-1"}}
	api.On("ListProducts", mock.Anything, "company-1").Return(products, 1, nil)
	api.On("ListVariationItems", mock.Anything, "prod-1").Return([]models.VariationItem{}, 0, nil)
	api.On("DeleteVariationType", mock.Anything, "vt-unused").Return(nil)

	err := svc.Delete(context.Background(), "company-1", "vt-unused")

	assert.NoError(t, err)
	api.AssertExpectations(t)
}

func TestRegistryUpdate_NormalizesValues(t *testing.T) {
	api := new(MockCatalogAPI)
	svc := newRegistryService(api)

	normalized := []string{"P", "M"}
	api.On("UpdateVariationType", mock.Anything, "vt-1", catalog.UpdateVariationTypeRequest{
		Values: &normalized,
	}).Return(&models.VariationType{ID: "vt-1", Values: normalized}, nil)

	values := []string{" P", "M ", "P"}
	updated, err := svc.Update(context.Background(), "company-1", "vt-1", &services.UpdateVariationTypeRequest{
		Values: &values,
	})

	assert.NoError(t, err)
	assert.Equal(t, normalized, updated.Values)
	api.AssertExpectations(t)
}
