package service

import (
	"context"

	"github.com/avelis/spendtrack-backend/internal/domain"
	"github.com/google/uuid"
)

// AuthService resolves validated token identities to local user rows. Token
// validation itself happens in the auth middleware; this service only deals
// with the mapping from Auth0 subject to owner identity.
type AuthService struct {
	userRepo domain.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// ResolveOwner upserts the user row for a validated token subject and
// returns it. First-time callers get a row created from their token claims.
func (s *AuthService) ResolveOwner(ctx context.Context, auth0ID, email string, name *string) (*domain.User, error) {
	return s.userRepo.CreateOrGetByAuth0ID(ctx, auth0ID, email, name)
}

// GetUser retrieves a user by their resolved owner ID.
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
