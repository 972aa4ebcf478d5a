package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kirankuma274/feedback-collection-system/internal/apperr"
	"github.com/kirankuma274/feedback-collection-system/internal/models"
	"github.com/kirankuma274/feedback-collection-system/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL bounds how long an issued identity token stays valid.
const tokenTTL = 2 * time.Hour

type AuthService struct {
	users     store.UserStore
	jwtSecret string
}

func NewAuthService(users store.UserStore, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret}
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateJWT signs an identity token carrying the user id and role.
func (s *AuthService) GenerateJWT(userID string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// Register creates a new user account. Duplicate emails fail with a
// conflict; the unique index on email is the source of truth.
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (models.User, error) {
	if name == "" || email == "" || password == "" {
		return models.User{}, apperr.Validation("name, email and password are required")
	}
	parsedRole, err := models.ParseRole(role)
	if err != nil {
		return models.User{}, apperr.Validation("invalid role")
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		return models.User{}, apperr.Internal("failed to hash password")
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		Role:      parsedRole,
		CreatedAt: time.Now(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return models.User{}, apperr.Conflict("User already exists")
		}
		return models.User{}, apperr.Internal("failed to create user")
	}
	return user, nil
}

// Login authenticates a user and returns a signed identity token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// Same message for unknown email and bad password.
		return "", models.User{}, apperr.Unauthenticated("Invalid credentials")
	}
	if !VerifyPassword(password, user.Password) {
		return "", models.User{}, apperr.Unauthenticated("Invalid credentials")
	}

	token, err := s.GenerateJWT(user.ID.Hex(), user.Role)
	if err != nil {
		return "", models.User{}, apperr.Internal("failed to sign token")
	}
	return token, user, nil
}
