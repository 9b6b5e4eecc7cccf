// internal/services/variation_registry_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/humbertopaiva/ango-admin-backend/internal/apperrors"
	"github.com/humbertopaiva/ango-admin-backend/internal/catalog"
	"github.com/humbertopaiva/ango-admin-backend/internal/models"
	"github.com/humbertopaiva/ango-admin-backend/internal/refresher"
)

// VariationRegistryService owns the variation axes of a company. It
// caches nothing itself; reads go through the shared snapshots and
// every mutation invalidates the company's axis list.
type VariationRegistryService struct {
	api       CatalogAPI
	refresher *refresher.Refresher
	snapshots *Snapshots
	log       *logrus.Logger
}

type CreateVariationTypeRequest struct {
	Name   string   `json:"name" validate:"required"`
	Values []string `json:"values" validate:"required"`
}

type UpdateVariationTypeRequest struct {
	Name   *string   `json:"name,omitempty"`
	Values *[]string `json:"values,omitempty"`
}

func NewVariationRegistryService(api CatalogAPI, r *refresher.Refresher, snapshots *Snapshots, log *logrus.Logger) *VariationRegistryService {
	return &VariationRegistryService{
		api:       api,
		refresher: r,
		snapshots: snapshots,
		log:       log,
	}
}

// NormalizeValues trims each value, drops empties and removes
// duplicates while preserving first-seen order.
func NormalizeValues(values []string) []string {
	seen := make(map[string]bool, len(values))
	normalized := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		normalized = append(normalized, v)
	}
	return normalized
}

func (s *VariationRegistryService) List(ctx context.Context, companyID string) ([]models.VariationType, error) {
	return s.snapshots.VariationTypes(ctx, companyID)
}

func (s *VariationRegistryService) Create(ctx context.Context, companyID string, req *CreateVariationTypeRequest) (*models.VariationType, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "name must not be empty")
	}

	values := NormalizeValues(req.Values)
	if len(values) == 0 {
		return nil, apperrors.NewValidationError("values", "at least one non-empty value is required")
	}

	created, err := s.api.CreateVariationType(ctx, catalog.CreateVariationTypeRequest{
		CompanyID: companyID,
		Name:      name,
		Values:    values,
	})
	if err != nil {
		return nil, err
	}

	s.refresher.Invalidate(variationTypesKey(companyID))
	s.log.WithFields(logrus.Fields{
		"variation_type_id": created.ID,
		"company_id":        companyID,
		"values":            len(values),
	}).Info("Variation type created")

	return created, nil
}

// Update edits an axis. Shrinking the value set does not touch items
// that already materialized a removed value: they stay as-is and the
// resolver simply never offers the value again.
func (s *VariationRegistryService) Update(ctx context.Context, companyID, id string, req *UpdateVariationTypeRequest) (*models.VariationType, error) {
	patch := catalog.UpdateVariationTypeRequest{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name", "name must not be empty")
		}
		patch.Name = &name
	}

	if req.Values != nil {
		values := NormalizeValues(*req.Values)
		if len(values) == 0 {
			return nil, apperrors.NewValidationError("values", "at least one non-empty value is required")
		}
		patch.Values = &values
	}

	updated, err := s.api.UpdateVariationType(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.refresher.Invalidate(variationTypesKey(companyID))
	return updated, nil
}

// Delete removes an axis, refusing while any product is allocated to
// it or any item realizes it. The check runs client-side against the
// latest snapshots; the upstream is not assumed to enforce it.
func (s *VariationRegistryService) Delete(ctx context.Context, companyID, id string) error {
	products, err := s.snapshots.Products(ctx, companyID)
	if err != nil {
		return fmt.Errorf("failed to load products for integrity check: %w", err)
	}

	for _, p := range products {
		if p.Variation.TypeID() == id {
			return apperrors.NewReferentialIntegrityError("variation", "product",
				fmt.Sprintf("product %s is allocated to this variation", p.ID))
		}
	}

	// Orphaned items can survive a cleared allocation upstream, so the
	// item lists are checked as well.
	for _, p := range products {
		items, err := s.snapshots.VariationItems(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("failed to load items of product %s for integrity check: %w", p.ID, err)
		}
		for _, item := range items {
			if item.VariationTypeID == id {
				return apperrors.NewReferentialIntegrityError("variation", "variation_item",
					fmt.Sprintf("item %s of product %s realizes this variation", item.ID, p.ID))
			}
		}
	}

	if err := s.api.DeleteVariationType(ctx, id); err != nil {
		return err
	}

	s.refresher.Invalidate(variationTypesKey(companyID))
	s.log.WithFields(logrus.Fields{
		"variation_type_id": id,
		"company_id":        companyID,
	}).Info("Variation type deleted")

	return nil
}
