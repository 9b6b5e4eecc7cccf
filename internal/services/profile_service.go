// internal/services/profile_service.go
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

type ProfileService struct {
	api       CatalogAPI
	refresher *refresher.Refresher
	log       *logrus.Logger
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,min=2,max=255"`
	Description *string `json:"description,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	Banner      *string `json:"banner,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	WhatsApp    *string `json:"whatsapp,omitempty"`
	Address     *string `json:"address,omitempty"`
}

func NewProfileService(api CatalogAPI, r *refresher.Refresher, log *logrus.Logger) *ProfileService {
	return &ProfileService{api: api, refresher: r, log: log}
}

func (s *ProfileService) Get(ctx context.Context, companyID string) (*models.Profile, error) {
	value, err := s.refresher.Load(ctx, profileKey(companyID), func(ctx context.Context) (interface{}, int, int, error) {
		profile, err := s.api.GetProfile(ctx, companyID)
		return profile, 1, -1, err
	})
	if err != nil {
		return nil, err
	}
	profile, _ := value.(*models.Profile)
	return profile, nil
}

func (s *ProfileService) Update(ctx context.Context, companyID string, req *UpdateProfileRequest) (*models.Profile, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updated, err := s.api.UpdateProfile(ctx, companyID, catalog.UpdateProfileRequest{
		DisplayName: req.DisplayName,
		Description: req.Description,
		Logo:        req.Logo,
		Banner:      req.Banner,
		Phone:       req.Phone,
		WhatsApp:    req.WhatsApp,
		Address:     req.Address,
	})
	if err != nil {
		return nil, err
	}

	s.refresher.Invalidate(profileKey(companyID))
	s.log.WithField("company_id", companyID).Info("Profile updated")
	return updated, nil
}
