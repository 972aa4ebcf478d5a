package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kirankuma274/feedback-collection-system/internal/apperr"
	"github.com/kirankuma274/feedback-collection-system/internal/models"
	"github.com/kirankuma274/feedback-collection-system/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserStore struct {
	users map[primitive.ObjectID]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[primitive.ObjectID]models.User{}}
}

func (s *fakeUserStore) Insert(_ context.Context, user models.User) error {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return store.ErrDuplicateKey
		}
	}
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (s *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return user, nil
}

func (s *fakeUserStore) ListAll(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, user := range s.users {
		out = append(out, user)
	}
	return out, nil
}

func TestRegisterHashesPasswordAndDefaultsRole(t *testing.T) {
	users := newFakeUserStore()
	service := NewAuthService(users, "secret")

	user, err := service.Register(context.Background(), "Asha", "asha@example.com", "password123", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, VerifyPassword("password123", user.Password))
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	users := newFakeUserStore()
	service := NewAuthService(users, "secret")

	_, err := service.Register(context.Background(), "Asha", "asha@example.com", "password123", "")
	require.NoError(t, err)

	_, err = service.Register(context.Background(), "Other", "asha@example.com", "hunter2aa", "")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "conflict", appErr.Code)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	service := NewAuthService(newFakeUserStore(), "secret")

	_, err := service.Register(context.Background(), "Asha", "asha@example.com", "password123", "root")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "validation_error", appErr.Code)
}

func TestLoginIssuesTokenWithIdentityClaims(t *testing.T) {
	users := newFakeUserStore()
	service := NewAuthService(users, "secret")

	registered, err := service.Register(context.Background(), "Asha", "asha@example.com", "password123", "admin")
	require.NoError(t, err)

	tokenString, user, err := service.Login(context.Background(), "asha@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, registered.ID.Hex(), claims["user_id"])
	assert.Equal(t, "admin", claims["role"])
	assert.NotNil(t, claims["exp"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	users := newFakeUserStore()
	service := NewAuthService(users, "secret")

	_, err := service.Register(context.Background(), "Asha", "asha@example.com", "password123", "")
	require.NoError(t, err)

	for _, attempt := range []struct{ email, password string }{
		{"asha@example.com", "wrong-password"},
		{"nobody@example.com", "password123"},
	} {
		_, _, err := service.Login(context.Background(), attempt.email, attempt.password)
		var appErr *apperr.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "unauthenticated", appErr.Code)
		assert.Equal(t, "Invalid credentials", appErr.Message)
	}
}
