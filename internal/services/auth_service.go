package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"lapak/internal/models"
	"lapak/internal/repositories"
)

// ErrInvalidCredentials is returned for both an unknown username and a
// wrong password, so login responses never reveal which usernames exist.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService handles business logic for seller authentication.
type AuthService struct {
	sellerRepo repositories.SellerRepository
	jwtSecret  []byte
	tokenTTL   time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(sellerRepo repositories.SellerRepository, jwtSecret string) *AuthService {
	return &AuthService{
		sellerRepo: sellerRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   time.Hour, // Token valid for 1 hour
	}
}

// RegisterSeller hashes the password and persists a new seller record.
// Returns repositories.ErrSellerExists when the username is taken.
func (s *AuthService) RegisterSeller(ctx context.Context, username, password string) error {
	if existing, err := s.sellerRepo.GetByUsername(ctx, username); err == nil && existing != nil {
		return fmt.Errorf("username %s: %w", username, repositories.ErrSellerExists)
	}

	// bcrypt.DefaultCost is cost factor 10
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	seller := &models.Seller{
		Username: username,
		Password: string(hashedPassword),
	}
	if err := s.sellerRepo.Create(ctx, seller); err != nil {
		if errors.Is(err, repositories.ErrSellerExists) {
			return err
		}
		return fmt.Errorf("failed to register seller: %w", err)
	}
	return nil
}

// LoginSeller authenticates a seller and returns a signed JWT if successful.
func (s *AuthService) LoginSeller(ctx context.Context, username, password string) (string, error) {
	seller, err := s.sellerRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrSellerNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up seller: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(seller.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"seller_id": seller.ID,
		"username":  seller.Username,
		"exp":       now.Add(s.tokenTTL).Unix(),
		"iat":       now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT, returning the claims if the
// signature matches and the token has not expired.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
