package auth

import (
	"fmt"
	"time"

	"taskask-backend/internal/database/models"
	apperrors "taskask-backend/internal/errors"
	"taskask-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims are the JWT claims carried by a bearer token. The core never
// parses tokens outside this package; handlers receive the resolved identity.
type AuthClaims struct {
	UserID uuid.UUID   `json:"user_id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// AuthService issues and validates bearer tokens for registered users
type AuthService struct {
	userRepo repository.UserRepositoryInterface
	hasher   *BcryptHasher
	secret   []byte
	expiry   time.Duration
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo repository.UserRepositoryInterface, hasher *BcryptHasher, secret string, expiryHours int) *AuthService {
	if expiryHours <= 0 {
		expiryHours = 24
	}
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		secret:   []byte(secret),
		expiry:   time.Duration(expiryHours) * time.Hour,
	}
}

// Login verifies the credentials and returns a signed token plus the user
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil || user == nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if !s.hasher.Verify(user.PasswordHash, password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, apperrors.ErrInactiveUser
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT parses and verifies a bearer token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.NewAuthenticationError("invalid token claims")
	}
	return claims, nil
}
