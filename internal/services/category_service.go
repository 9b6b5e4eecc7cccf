// internal/services/category_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/humbertopaiva/ango-admin-backend/internal/apperrors"
	"github.com/humbertopaiva/ango-admin-backend/internal/cache"
	"github.com/humbertopaiva/ango-admin-backend/internal/catalog"
	"github.com/humbertopaiva/ango-admin-backend/internal/models"
	"github.com/humbertopaiva/ango-admin-backend/internal/refresher"
	"github.com/humbertopaiva/ango-admin-backend/internal/utils"
)

type CategoryService struct {
	api       CatalogAPI
	refresher *refresher.Refresher
	snapshots *Snapshots
	log       *logrus.Logger
}

type CreateCategoryRequest struct {
	Name       string            `json:"name" validate:"required,min=2,max=255"`
	Image      string            `json:"image,omitempty"`
	Visibility models.Visibility `json:"visibility"`
}

type UpdateCategoryRequest struct {
	Name       *string            `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Image      *string            `json:"image,omitempty"`
	Visibility *models.Visibility `json:"visibility,omitempty"`
	Status     *string            `json:"status,omitempty"`
}

func NewCategoryService(api CatalogAPI, r *refresher.Refresher, snapshots *Snapshots, log *logrus.Logger) *CategoryService {
	return &CategoryService{api: api, refresher: r, snapshots: snapshots, log: log}
}

func (s *CategoryService) List(ctx context.Context, companyID string) ([]models.Category, error) {
	value, err := s.refresher.Load(ctx, categoriesKey(companyID), func(ctx context.Context) (interface{}, int, int, error) {
		categories, total, err := s.api.ListCategories(ctx, companyID)
		return categories, len(categories), total, err
	})
	if err != nil {
		return nil, err
	}
	categories, _ := value.([]models.Category)
	return categories, nil
}

func (s *CategoryService) Create(ctx context.Context, companyID string, req *CreateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	created, err := s.api.CreateCategory(ctx, catalog.CreateCategoryRequest{
		CompanyID:  companyID,
		Name:       req.Name,
		Image:      req.Image,
		Visibility: req.Visibility,
	})
	if err != nil {
		return nil, err
	}

	s.refresher.Invalidate(categoriesKey(companyID))
	s.log.WithField("category_id", created.ID).Info("Category created")
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, companyID, id string, req *UpdateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updated, err := s.api.UpdateCategory(ctx, id, catalog.UpdateCategoryRequest{
		Name:       req.Name,
		Image:      req.Image,
		Visibility: req.Visibility,
		Status:     req.Status,
	})
	if err != nil {
		return nil, err
	}

	s.refresher.Invalidate(categoriesKey(companyID))
	return updated, nil
}

// Delete refuses while any product still belongs to the category.
func (s *CategoryService) Delete(ctx context.Context, companyID, id string) error {
	products, err := s.snapshots.Products(ctx, companyID)
	if err != nil {
		return fmt.Errorf("failed to load products for integrity check: %w", err)
	}
	for _, p := range products {
		if p.CategoryID == id {
			return apperrors.NewReferentialIntegrityError("category", "product",
				fmt.Sprintf("product %s still belongs to this category", p.ID))
		}
	}

	if err := s.api.DeleteCategory(ctx, id); err != nil {
		return err
	}

	s.refresher.Invalidate(categoriesKey(companyID))
	return nil
}

// Watch keeps the category list bounded-stale while the categories
// screen is open.
func (s *CategoryService) Watch(companyID string) *refresher.Subscription {
	return s.refresher.Watch(categoriesKey(companyID), func(ctx context.Context, key cache.Key) {
		if _, err := s.List(ctx, companyID); err != nil {
			s.log.WithError(err).Warn("Poll refetch of categories failed")
		}
	})
}
