package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/humbertopaiva/ango-admin-backend/internal/config"
	"github.com/humbertopaiva/ango-admin-backend/internal/services"
	"github.com/humbertopaiva/ango-admin-backend/internal/utils"
)

func newAuthService(t *testing.T) *services.AuthService {
	t.Helper()

	hash, err := utils.HashPassword("s3nha-forte")
	assert.NoError(t, err)

	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
		Admin: config.AdminConfig{
			Email:        "admin@empresa.com.br",
			PasswordHash: hash,
			CompanyID:    "company-1",
		},
	}
	utils.SetJWTSecret(cfg.JWT.SecretKey)
	return services.NewAuthService(cfg, testLogger())
}

func TestLogin_Success(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Login(&services.LoginRequest{
		Email:    "admin@empresa.com.br",
		Password: "s3nha-forte",
	})

	assert.NoError(t, err)
	assert.Equal(t, "company-1", resp.CompanyID)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)

	claims, err := utils.ValidateJWT(resp.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "admin@empresa.com.br", claims.Email)
	assert.Equal(t, "company-1", claims.CompanyID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(&services.LoginRequest{
		Email:    "admin@empresa.com.br",
		Password: "errada",
	})
	assert.Error(t, err)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(&services.LoginRequest{
		Email:    "outra@empresa.com.br",
		Password: "s3nha-forte",
	})
	assert.Error(t, err)
}

func TestRefresh_IssuesNewAccessToken(t *testing.T) {
	svc := newAuthService(t)

	login, err := svc.Login(&services.LoginRequest{
		Email:    "admin@empresa.com.br",
		Password: "s3nha-forte",
	})
	assert.NoError(t, err)

	refreshed, err := svc.Refresh(login.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, "company-1", refreshed.CompanyID)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefresh_RejectsGarbageToken(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Refresh("not-a-token")
	assert.Error(t, err)
}

// The refresh path enforces the subject, not just the signature.
func TestRefresh_RejectsForeignSubject(t *testing.T) {
	svc := newAuthService(t)

	foreign, err := utils.GenerateRefreshToken("intruso@exemplo.com", 1)
	assert.NoError(t, err)

	_, err = svc.Refresh(foreign)
	assert.Error(t, err)
}
