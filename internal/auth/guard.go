package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/repository"
)

// Identity describes the live identity behind a verified admin token.
type Identity struct {
	UserID   uint
	Username string
	IsAdmin  bool
}

// Guard resolves bearer tokens to user identities and enforces role
// requirements against the user store.
type Guard struct {
	jwt   *JWTService
	users repository.UserRepository
}

// NewGuard creates a new authorization guard.
func NewGuard(jwt *JWTService, users repository.UserRepository) *Guard {
	return &Guard{jwt: jwt, users: users}
}

// RequireUser verifies the token and returns the authenticated user id.
func (g *Guard) RequireUser(tokenString string) (uint, error) {
	id, err := g.jwt.ExtractUserID(tokenString)
	if err != nil {
		return 0, apperrors.ErrInvalidToken
	}
	return id, nil
}

// RequireAdmin verifies the token and re-reads the current user record.
// The embedded is_admin claim is never trusted on its own: privileges may
// have been revoked since the token was issued, so the live record governs.
func (g *Guard) RequireAdmin(ctx context.Context, tokenString string) (*Identity, error) {
	id, err := g.jwt.ExtractUserID(tokenString)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := g.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	if !user.IsAdmin {
		return nil, apperrors.ErrAdminRequired
	}

	return &Identity{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}, nil
}
