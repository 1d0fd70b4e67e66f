package service

import (
	"errors"
	"time"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrPasswordRequired   = errors.New("password is required")
	ErrAuthDisabled       = errors.New("token issuance is disabled: ADMIN_PASSWORD_HASH is not set")
)

// AuthService issues admin bearer tokens.
type AuthService struct {
	adminHash string
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService. An empty adminHash disables IssueToken.
func NewAuthService(adminHash, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		adminHash: adminHash,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// IssueToken verifies the admin password and returns a signed token.
func (s *AuthService) IssueToken(req model.TokenRequest) (model.TokenResponse, error) {
	if s.adminHash == "" {
		return model.TokenResponse{}, ErrAuthDisabled
	}
	if req.Password == "" {
		return model.TokenResponse{}, ErrPasswordRequired
	}

	match, err := crypto.VerifySecret(req.Password, s.adminHash)
	if err != nil {
		return model.TokenResponse{}, err
	}
	if !match {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.jwtExpiry).UTC().Truncate(time.Second)
	token, err := crypto.GenerateToken(crypto.AdminSubject, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}
