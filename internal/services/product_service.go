// internal/services/product_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/humbertopaiva/ango-admin-backend/internal/apperrors"
	"github.com/humbertopaiva/ango-admin-backend/internal/catalog"
	"github.com/humbertopaiva/ango-admin-backend/internal/models"
	"github.com/humbertopaiva/ango-admin-backend/internal/refresher"
	"github.com/humbertopaiva/ango-admin-backend/internal/utils"
)

type ProductService struct {
	api       CatalogAPI
	refresher *refresher.Refresher
	snapshots *Snapshots
	resolver  *ResolverService
	log       *logrus.Logger
}

type CreateProductRequest struct {
	CategoryID  string            `json:"category_id,omitempty"`
	Name        string            `json:"name" validate:"required,min=2,max=255"`
	Description string            `json:"description,omitempty"`
	Price       float64           `json:"price" validate:"required,gt=0"`
	Image       string            `json:"image,omitempty"`
	Visibility  models.Visibility `json:"visibility"`
}

type UpdateProductRequest struct {
	CategoryID  *string            `json:"category_id,omitempty"`
	Name        *string            `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description *string            `json:"description,omitempty"`
	Price       *float64           `json:"price,omitempty" validate:"omitempty,gt=0"`
	Image       *string            `json:"image,omitempty"`
	Visibility  *models.Visibility `json:"visibility,omitempty"`
	Status      *string            `json:"status,omitempty"`
}

func NewProductService(api CatalogAPI, r *refresher.Refresher, snapshots *Snapshots, resolver *ResolverService, log *logrus.Logger) *ProductService {
	return &ProductService{
		api:       api,
		refresher: r,
		snapshots: snapshots,
		resolver:  resolver,
		log:       log,
	}
}

func (s *ProductService) List(ctx context.Context, companyID string) ([]models.Product, error) {
	return s.snapshots.Products(ctx, companyID)
}

func (s *ProductService) Get(ctx context.Context, productID string) (*models.Product, error) {
	return s.snapshots.Product(ctx, productID)
}

func (s *ProductService) Create(ctx context.Context, companyID string, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	created, err := s.api.CreateProduct(ctx, catalog.CreateProductRequest{
		CompanyID:   companyID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Visibility:  req.Visibility,
	})
	if err != nil {
		return nil, err
	}

	s.refresher.Invalidate(productsKey(companyID))
	s.log.WithFields(logrus.Fields{
		"product_id": created.ID,
		"company_id": companyID,
	}).Info("Product created")

	return created, nil
}

func (s *ProductService) Update(ctx context.Context, companyID, productID string, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updated, err := s.api.UpdateProduct(ctx, productID, catalog.UpdateProductRequest{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Visibility:  req.Visibility,
		Status:      req.Status,
	})
	if err != nil {
		return nil, err
	}

	s.refresher.Invalidate(productKey(productID), productsKey(companyID))
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, companyID, productID string) error {
	if err := s.api.DeleteProduct(ctx, productID); err != nil {
		return err
	}

	s.refresher.Invalidate(
		productKey(productID),
		productsKey(companyID),
		variationItemsKey(productID),
		variationTypesKey(companyID),
	)
	s.log.WithFields(logrus.Fields{
		"product_id": productID,
		"company_id": companyID,
	}).Info("Product deleted")

	return nil
}

// AssignVariation allocates an axis to a product. Axes are exclusive:
// the axis must not be allocated to any other product, though a
// product may always re-assert its own current axis.
func (s *ProductService) AssignVariation(ctx context.Context, companyID, productID, variationTypeID string) (*models.Product, error) {
	available, err := s.resolver.AvailableTypesForProduct(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}

	found := false
	for _, t := range available {
		if t.ID == variationTypeID {
			found = true
			break
		}
	}
	if !found {
		return nil, apperrors.NewValidationError("variation_type_id",
			"variation is already allocated to another product or does not exist")
	}

	updated, err := s.api.SetProductVariation(ctx, productID, catalog.SetProductVariationRequest{
		VariationTypeID: &variationTypeID,
		HasVariation:    true,
	})
	if err != nil {
		return nil, err
	}

	s.refresher.Invalidate(productKey(productID), productsKey(companyID), variationTypesKey(companyID))
	s.log.WithFields(logrus.Fields{
		"product_id":        productID,
		"variation_type_id": variationTypeID,
	}).Info("Variation allocated to product")

	return updated, nil
}

// ClearVariation removes a product's axis allocation. It refuses
// while variation items still exist so an item never loses its axis.
func (s *ProductService) ClearVariation(ctx context.Context, companyID, productID string) (*models.Product, error) {
	items, err := s.snapshots.VariationItems(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load variation items: %w", err)
	}
	if len(items) > 0 {
		return nil, apperrors.NewReferentialIntegrityError("product variation", "variation_item",
			fmt.Sprintf("%d variation items still exist", len(items)))
	}

	updated, err := s.api.SetProductVariation(ctx, productID, catalog.SetProductVariationRequest{
		VariationTypeID: nil,
		HasVariation:    false,
	})
	if err != nil {
		return nil, err
	}

	s.refresher.Invalidate(productKey(productID), productsKey(companyID), variationTypesKey(companyID))
	return updated, nil
}
