// internal/services/showcase_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/humbertopaiva/ango-admin-backend/internal/apperrors"
	"github.com/humbertopaiva/ango-admin-backend/internal/models"
	"github.com/humbertopaiva/ango-admin-backend/internal/refresher"
)

// ShowcaseService manages the products pinned to the storefront
// showcase. Reordering is handled elsewhere; here entries are only
// listed, added and removed.
type ShowcaseService struct {
	api       CatalogAPI
	refresher *refresher.Refresher
	snapshots *Snapshots
	log       *logrus.Logger
}

func NewShowcaseService(api CatalogAPI, r *refresher.Refresher, snapshots *Snapshots, log *logrus.Logger) *ShowcaseService {
	return &ShowcaseService{api: api, refresher: r, snapshots: snapshots, log: log}
}

func (s *ShowcaseService) List(ctx context.Context, companyID string) ([]models.ShowcaseEntry, error) {
	value, err := s.refresher.Load(ctx, showcaseKey(companyID), func(ctx context.Context) (interface{}, int, int, error) {
		entries, total, err := s.api.ListShowcase(ctx, companyID)
		return entries, len(entries), total, err
	})
	if err != nil {
		return nil, err
	}
	entries, _ := value.([]models.ShowcaseEntry)
	return entries, nil
}

// Add pins a product. The product must exist and not already be
// pinned.
func (s *ShowcaseService) Add(ctx context.Context, companyID, productID string) (*models.ShowcaseEntry, error) {
	products, err := s.snapshots.Products(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	found := false
	for _, p := range products {
		if p.ID == productID {
			found = true
			break
		}
	}
	if !found {
		return nil, apperrors.NewNotFoundError("product", productID)
	}

	entries, err := s.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.ProductID == productID {
			return nil, apperrors.NewValidationError("product_id", "product is already in the showcase")
		}
	}

	created, err := s.api.AddShowcaseEntry(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}

	s.refresher.Invalidate(showcaseKey(companyID))
	s.log.WithField("product_id", productID).Info("Product added to showcase")
	return created, nil
}

func (s *ShowcaseService) Remove(ctx context.Context, companyID, entryID string) error {
	if err := s.api.RemoveShowcaseEntry(ctx, entryID); err != nil {
		return err
	}

	s.refresher.Invalidate(showcaseKey(companyID))
	return nil
}
