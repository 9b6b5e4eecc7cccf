// internal/services/addon_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/humbertopaiva/ango-admin-backend/internal/catalog"
	"github.com/humbertopaiva/ango-admin-backend/internal/models"
	"github.com/humbertopaiva/ango-admin-backend/internal/refresher"
	"github.com/humbertopaiva/ango-admin-backend/internal/utils"
)

type AddonService struct {
	api       CatalogAPI
	refresher *refresher.Refresher
	log       *logrus.Logger
}

type CreateAddonListRequest struct {
	Name     string             `json:"name" validate:"required,min=2,max=255"`
	Required bool               `json:"required"`
	MaxPicks *int               `json:"max_picks,omitempty" validate:"omitempty,min=1"`
	Items    []models.AddonItem `json:"items" validate:"required,min=1,dive"`
}

type UpdateAddonListRequest struct {
	Name     *string             `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Required *bool               `json:"required,omitempty"`
	MaxPicks *int                `json:"max_picks,omitempty" validate:"omitempty,min=1"`
	Items    *[]models.AddonItem `json:"items,omitempty"`
}

func NewAddonService(api CatalogAPI, r *refresher.Refresher, log *logrus.Logger) *AddonService {
	return &AddonService{api: api, refresher: r, log: log}
}

func (s *AddonService) List(ctx context.Context, companyID string) ([]models.AddonList, error) {
	value, err := s.refresher.Load(ctx, addonListsKey(companyID), func(ctx context.Context) (interface{}, int, int, error) {
		lists, total, err := s.api.ListAddonLists(ctx, companyID)
		return lists, len(lists), total, err
	})
	if err != nil {
		return nil, err
	}
	lists, _ := value.([]models.AddonList)
	return lists, nil
}

func (s *AddonService) Create(ctx context.Context, companyID string, req *CreateAddonListRequest) (*models.AddonList, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	created, err := s.api.CreateAddonList(ctx, catalog.CreateAddonListRequest{
		CompanyID: companyID,
		Name:      req.Name,
		Required:  req.Required,
		MaxPicks:  req.MaxPicks,
		Items:     req.Items,
	})
	if err != nil {
		return nil, err
	}

	s.refresher.Invalidate(addonListsKey(companyID))
	s.log.WithField("addon_list_id", created.ID).Info("Addon list created")
	return created, nil
}

func (s *AddonService) Update(ctx context.Context, companyID, id string, req *UpdateAddonListRequest) (*models.AddonList, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updated, err := s.api.UpdateAddonList(ctx, id, catalog.UpdateAddonListRequest{
		Name:     req.Name,
		Required: req.Required,
		MaxPicks: req.MaxPicks,
		Items:    req.Items,
	})
	if err != nil {
		return nil, err
	}

	s.refresher.Invalidate(addonListsKey(companyID))
	return updated, nil
}

func (s *AddonService) Delete(ctx context.Context, companyID, id string) error {
	if err := s.api.DeleteAddonList(ctx, id); err != nil {
		return err
	}

	s.refresher.Invalidate(addonListsKey(companyID))
	return nil
}
