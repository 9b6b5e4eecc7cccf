// internal/services/resolver.go
package services

import (
	"context"
	"fmt"

	"github.com/humbertopaiva/ango-admin-backend/internal/apperrors"
	"github.com/humbertopaiva/ango-admin-backend/internal/models"
)

// AvailableTypes returns every axis not currently allocated to a
// product, plus the axis allocated to currentProductID itself so that
// editing a product never hides its own axis. Pass "" when creating a
// new product.
func AvailableTypes(types []models.VariationType, products []models.Product, currentProductID string) []models.VariationType {
	allocated := make(map[string]bool, len(products))
	for _, p := range products {
		if currentProductID != "" && p.ID == currentProductID {
			continue
		}
		if id := p.Variation.TypeID(); id != "" {
			allocated[id] = true
		}
	}

	available := make([]models.VariationType, 0, len(types))
	for _, t := range types {
		if !allocated[t.ID] {
			available = append(available, t)
		}
	}
	return available
}

// AvailableValues returns the axis values not yet materialized as
// items of productID under typ, preserving the axis order. A value
// removed from the axis after being materialized is simply never
// offered again; the existing item stays untouched.
func AvailableValues(typ models.VariationType, items []models.VariationItem, productID string) []string {
	used := make(map[string]bool, len(items))
	for _, item := range items {
		if item.ProductID == productID && item.VariationTypeID == typ.ID {
			used[item.Value] = true
		}
	}

	available := make([]string, 0, len(typ.Values))
	for _, value := range typ.Values {
		if !used[value] {
			available = append(available, value)
		}
	}
	return available
}

// ValueAvailability is the resolver's answer for one (product, axis)
// pair. Remaining == 0 is a signalled exhaustion state the UI must
// surface, not an error.
type ValueAvailability struct {
	VariationTypeID string   `json:"variation_type_id"`
	Values          []string `json:"values"`
	Remaining       int      `json:"remaining"`
	Exhausted       bool     `json:"exhausted"`
}

// ResolverService answers the two allocation queries over the cached
// snapshots. It never writes anything.
type ResolverService struct {
	snapshots *Snapshots
}

func NewResolverService(snapshots *Snapshots) *ResolverService {
	return &ResolverService{snapshots: snapshots}
}

// AvailableTypesForProduct lists the axes a product form may offer.
func (s *ResolverService) AvailableTypesForProduct(ctx context.Context, companyID, currentProductID string) ([]models.VariationType, error) {
	types, err := s.snapshots.VariationTypes(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load variation types: %w", err)
	}
	products, err := s.snapshots.Products(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return AvailableTypes(types, products, currentProductID), nil
}

// AvailableValuesForProduct lists the values still open for new items
// of productID under the given axis.
func (s *ResolverService) AvailableValuesForProduct(ctx context.Context, companyID, productID, variationTypeID string) (*ValueAvailability, error) {
	types, err := s.snapshots.VariationTypes(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load variation types: %w", err)
	}

	var axis *models.VariationType
	for i := range types {
		if types[i].ID == variationTypeID {
			axis = &types[i]
			break
		}
	}
	if axis == nil {
		return nil, apperrors.NewNotFoundError("variation", variationTypeID)
	}

	items, err := s.snapshots.VariationItems(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load variation items: %w", err)
	}

	values := AvailableValues(*axis, items, productID)
	return &ValueAvailability{
		VariationTypeID: variationTypeID,
		Values:          values,
		Remaining:       len(values),
		Exhausted:       len(values) == 0,
	}, nil
}
