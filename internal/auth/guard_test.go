package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, offset, limit int) ([]model.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.UserRepository) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

func TestGuard_RequireUser(t *testing.T) {
	jwtSvc := NewJWTService("test-secret", time.Minute)
	guard := NewGuard(jwtSvc, nil)

	token, err := jwtSvc.GenerateAccessToken(&model.User{ID: 7, Username: "bob", Email: "bob@x.com"})
	require.NoError(t, err)

	id, err := guard.RequireUser(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)

	_, err = guard.RequireUser("garbage")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, err = guard.RequireUser("")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestGuard_RequireAdmin_LiveRecordGoverns(t *testing.T) {
	jwtSvc := NewJWTService("test-secret", time.Minute)

	// Token minted while the user was still an admin
	token, err := jwtSvc.GenerateAccessToken(&model.User{ID: 7, Username: "bob", Email: "bob@x.com", IsAdmin: true})
	require.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(7)).
		Return(&model.User{ID: 7, Username: "bob", IsAdmin: false}, nil)

	guard := NewGuard(jwtSvc, repo)

	// Demoted since issuance: the embedded is_admin claim must not win
	_, err = guard.RequireAdmin(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrAdminRequired)
	repo.AssertExpectations(t)
}

func TestGuard_RequireAdmin_UserDeleted(t *testing.T) {
	jwtSvc := NewJWTService("test-secret", time.Minute)

	token, err := jwtSvc.GenerateAccessToken(&model.User{ID: 7, Username: "bob", IsAdmin: true})
	require.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

	guard := NewGuard(jwtSvc, repo)

	_, err = guard.RequireAdmin(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestGuard_RequireAdmin_Promoted(t *testing.T) {
	jwtSvc := NewJWTService("test-secret", time.Minute)

	// Token minted before promotion still says is_admin=false
	token, err := jwtSvc.GenerateAccessToken(&model.User{ID: 7, Username: "bob", IsAdmin: false})
	require.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(7)).
		Return(&model.User{ID: 7, Username: "bob", IsAdmin: true}, nil)

	guard := NewGuard(jwtSvc, repo)

	identity, err := guard.RequireAdmin(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), identity.UserID)
	assert.Equal(t, "bob", identity.Username)
	assert.True(t, identity.IsAdmin)
}

func TestGuard_RequireAdmin_InvalidToken(t *testing.T) {
	jwtSvc := NewJWTService("test-secret", time.Minute)
	guard := NewGuard(jwtSvc, new(MockUserRepository))

	_, err := guard.RequireAdmin(context.Background(), "garbage")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
