package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"lapak/internal/models"
)

// MockSellerRepository is an in-memory implementation of SellerRepository.
type MockSellerRepository struct {
	sellers map[string]models.Seller // keyed by ID
	mu      sync.RWMutex
}

// NewMockSellerRepository creates a new instance of MockSellerRepository.
func NewMockSellerRepository() *MockSellerRepository {
	return &MockSellerRepository{
		sellers: make(map[string]models.Seller),
	}
}

// Create adds a new seller, enforcing username uniqueness.
func (r *MockSellerRepository) Create(ctx context.Context, seller *models.Seller) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.sellers {
		if s.Username == seller.Username {
			return fmt.Errorf("username %s: %w", seller.Username, ErrSellerExists)
		}
	}

	if seller.ID == "" {
		seller.ID = uuid.New().String()
	}
	seller.CreatedAt = time.Now()
	r.sellers[seller.ID] = *seller
	return nil
}

// GetByUsername returns a seller by their username.
func (r *MockSellerRepository) GetByUsername(ctx context.Context, username string) (*models.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sellers {
		if s.Username == username {
			seller := s
			return &seller, nil
		}
	}
	return nil, fmt.Errorf("seller with username %s: %w", username, ErrSellerNotFound)
}

// GetByID returns a seller by their ID.
func (r *MockSellerRepository) GetByID(ctx context.Context, id string) (*models.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seller, ok := r.sellers[id]
	if !ok {
		return nil, fmt.Errorf("seller with ID %s: %w", id, ErrSellerNotFound)
	}
	return &seller, nil
}
