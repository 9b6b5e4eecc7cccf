// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/humbertopaiva/ango-admin-backend/internal/config"
	"github.com/humbertopaiva/ango-admin-backend/internal/utils"
)

// AuthService authenticates the administrator account. It is a thin
// collaborator: credentials come from configuration, sessions are
// stateless JWTs carrying the managed company id.
type AuthService struct {
	cfg *config.Config
	log *logrus.Logger
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Email        string `json:"email"`
	CompanyID    string `json:"company_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"` // in seconds
}

func NewAuthService(cfg *config.Config, log *logrus.Logger) *AuthService {
	return &AuthService{cfg: cfg, log: log}
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	admin := s.cfg.Admin
	if admin.Email == "" || req.Email != admin.Email || !utils.CheckPassword(req.Password, admin.PasswordHash) {
		s.log.WithField("email", req.Email).Warn("Failed login attempt")
		return nil, errors.New("invalid email or password")
	}

	return s.issueTokens(admin)
}

func (s *AuthService) Refresh(refreshToken string) (*AuthResponse, error) {
	subject, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	admin := s.cfg.Admin
	if subject != admin.Email {
		return nil, errors.New("refresh token does not match the admin account")
	}

	return s.issueTokens(admin)
}

func (s *AuthService) issueTokens(admin config.AdminConfig) (*AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(admin.Email, admin.CompanyID, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken(admin.Email, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResponse{
		Email:        admin.Email,
		CompanyID:    admin.CompanyID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.cfg.JWT.AccessTokenTTL * 3600, // Convert hours to seconds
	}, nil
}
