// internal/services/variation_item_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/humbertopaiva/ango-admin-backend/internal/apperrors"
	"github.com/humbertopaiva/ango-admin-backend/internal/cache"
	"github.com/humbertopaiva/ango-admin-backend/internal/catalog"
	"github.com/humbertopaiva/ango-admin-backend/internal/models"
	"github.com/humbertopaiva/ango-admin-backend/internal/refresher"
	"github.com/humbertopaiva/ango-admin-backend/internal/utils"
)

// VariationItemService owns the materialized SKUs of a product. Every
// create/update re-validates the allocation invariants against the
// latest snapshot before any network call, because the upstream is
// not trusted to validate them. Every successful mutation invalidates
// the product's item list, the product detail and the company's axis
// list, since value availability changes for everyone viewing the
// axis.
type VariationItemService struct {
	api       CatalogAPI
	refresher *refresher.Refresher
	snapshots *Snapshots
	log       *logrus.Logger
}

type CreateVariationItemRequest struct {
	ProductID        string            `json:"product_id" validate:"required"`
	VariationTypeID  string            `json:"variation_type_id" validate:"required"`
	Value            string            `json:"value" validate:"required"`
	Price            float64           `json:"price" validate:"required,gt=0"`
	PromotionalPrice *float64          `json:"promotional_price,omitempty"`
	Description      string            `json:"description,omitempty"`
	Image            string            `json:"image,omitempty"`
	Available        bool              `json:"available"`
	Visibility       models.Visibility `json:"visibility"`
	MaxCartQuantity  *int              `json:"max_cart_quantity,omitempty" validate:"omitempty,min=1"`
}

type UpdateVariationItemRequest struct {
	Value            *string            `json:"value,omitempty"`
	Price            *float64           `json:"price,omitempty" validate:"omitempty,gt=0"`
	PromotionalPrice *float64           `json:"promotional_price,omitempty"`
	ClearPromotional bool               `json:"clear_promotional,omitempty"`
	Description      *string            `json:"description,omitempty"`
	Image            *string            `json:"image,omitempty"`
	Available        *bool              `json:"available,omitempty"`
	Visibility       *models.Visibility `json:"visibility,omitempty"`
	MaxCartQuantity  *int               `json:"max_cart_quantity,omitempty" validate:"omitempty,min=1"`
}

func NewVariationItemService(api CatalogAPI, r *refresher.Refresher, snapshots *Snapshots, log *logrus.Logger) *VariationItemService {
	return &VariationItemService{
		api:       api,
		refresher: r,
		snapshots: snapshots,
		log:       log,
	}
}

func (s *VariationItemService) ListForProduct(ctx context.Context, productID string) ([]models.VariationItem, error) {
	return s.snapshots.VariationItems(ctx, productID)
}

func (s *VariationItemService) Create(ctx context.Context, companyID string, req *CreateVariationItemRequest) (*models.VariationItem, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	value := strings.TrimSpace(req.Value)
	if value == "" {
		return nil, apperrors.NewValidationError("value", "value must not be empty")
	}

	if req.PromotionalPrice != nil && *req.PromotionalPrice >= req.Price {
		return nil, apperrors.NewValidationError("promotional_price", "promotional price must be lower than the price")
	}

	product, err := s.snapshots.Product(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if product.Variation.TypeID() != req.VariationTypeID {
		return nil, apperrors.NewValidationError("variation_type_id", "product is not allocated to this variation")
	}

	axis, err := s.findAxis(ctx, companyID, req.VariationTypeID)
	if err != nil {
		return nil, err
	}
	if !axis.HasValue(value) {
		return nil, apperrors.NewValidationError("value",
			fmt.Sprintf("%q is not a value of variation %q", value, axis.Name))
	}

	items, err := s.snapshots.VariationItems(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to load variation items: %w", err)
	}
	for _, item := range items {
		if item.VariationTypeID == req.VariationTypeID && item.Value == value {
			return nil, apperrors.NewValidationError("value",
				fmt.Sprintf("value %q already exists for this product", value))
		}
	}

	created, err := s.api.CreateVariationItem(ctx, catalog.CreateVariationItemRequest{
		ProductID:        req.ProductID,
		VariationTypeID:  req.VariationTypeID,
		Value:            value,
		Price:            req.Price,
		PromotionalPrice: req.PromotionalPrice,
		Description:      req.Description,
		Image:            req.Image,
		Available:        req.Available,
		Visibility:       req.Visibility,
		MaxCartQuantity:  req.MaxCartQuantity,
	})
	if err != nil {
		// Nothing changed upstream; caches stay as they are.
		return nil, err
	}

	s.invalidateAfterMutation(companyID, req.ProductID)
	s.log.WithFields(logrus.Fields{
		"variation_item_id": created.ID,
		"product_id":        req.ProductID,
		"value":             value,
	}).Info("Variation item created")

	return created, nil
}

func (s *VariationItemService) Update(ctx context.Context, companyID, productID, itemID string, req *UpdateVariationItemRequest) (*models.VariationItem, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	items, err := s.snapshots.VariationItems(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load variation items: %w", err)
	}

	var current *models.VariationItem
	for i := range items {
		if items[i].ID == itemID {
			current = &items[i]
			break
		}
	}
	if current == nil {
		return nil, apperrors.NewNotFoundError("variation_item", itemID)
	}

	patch := catalog.UpdateVariationItemRequest{
		Price:            req.Price,
		Description:      req.Description,
		Image:            req.Image,
		Available:        req.Available,
		Visibility:       req.Visibility,
		MaxCartQuantity:  req.MaxCartQuantity,
		PromotionalPrice: req.PromotionalPrice,
	}

	if req.Value != nil {
		value := strings.TrimSpace(*req.Value)
		if value == "" {
			return nil, apperrors.NewValidationError("value", "value must not be empty")
		}
		if value != current.Value {
			axis, err := s.findAxis(ctx, companyID, current.VariationTypeID)
			if err != nil {
				return nil, err
			}
			if !axis.HasValue(value) {
				return nil, apperrors.NewValidationError("value",
					fmt.Sprintf("%q is not a value of variation %q", value, axis.Name))
			}
			for _, item := range items {
				if item.ID != itemID && item.VariationTypeID == current.VariationTypeID && item.Value == value {
					return nil, apperrors.NewValidationError("value",
						fmt.Sprintf("value %q already exists for this product", value))
				}
			}
		}
		patch.Value = &value
	}

	// The price relation is checked against the effective values after
	// the patch, not just the changed fields.
	price := current.Price
	if req.Price != nil {
		price = *req.Price
	}
	promo := current.PromotionalPrice
	if req.ClearPromotional {
		// The upstream treats a zero promotional price as removal.
		zero := 0.0
		patch.PromotionalPrice = &zero
		promo = nil
	} else if req.PromotionalPrice != nil {
		promo = req.PromotionalPrice
	}
	if promo != nil && *promo >= price {
		return nil, apperrors.NewValidationError("promotional_price", "promotional price must be lower than the price")
	}

	updated, err := s.api.UpdateVariationItem(ctx, itemID, patch)
	if err != nil {
		return nil, err
	}

	s.invalidateAfterMutation(companyID, productID)
	return updated, nil
}

func (s *VariationItemService) Delete(ctx context.Context, companyID, productID, itemID string) error {
	if err := s.api.DeleteVariationItem(ctx, itemID); err != nil {
		return err
	}

	s.invalidateAfterMutation(companyID, productID)
	s.log.WithFields(logrus.Fields{
		"variation_item_id": itemID,
		"product_id":        productID,
	}).Info("Variation item deleted")

	return nil
}

// WatchProduct returns a subscription that keeps the product's item
// list bounded-stale while its detail view is open. Each poll tick
// marks the list stale and refetches it through the consistency
// policy; cancelling the subscription stops the poll and any pending
// retry.
func (s *VariationItemService) WatchProduct(productID string) *refresher.Subscription {
	return s.refresher.Watch(variationItemsKey(productID), func(ctx context.Context, key cache.Key) {
		if _, err := s.snapshots.VariationItems(ctx, productID); err != nil {
			s.log.WithError(err).WithField("product_id", productID).
				Warn("Poll refetch of variation items failed")
		}
	})
}

func (s *VariationItemService) findAxis(ctx context.Context, companyID, variationTypeID string) (*models.VariationType, error) {
	types, err := s.snapshots.VariationTypes(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load variation types: %w", err)
	}
	for i := range types {
		if types[i].ID == variationTypeID {
			return &types[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError("variation", variationTypeID)
}

func (s *VariationItemService) invalidateAfterMutation(companyID, productID string) {
	s.refresher.Invalidate(
		variationItemsKey(productID),
		productKey(productID),
		variationTypesKey(companyID),
	)
}
