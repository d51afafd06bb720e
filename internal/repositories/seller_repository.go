package repositories

import (
	"context"

	"lapak/internal/models"
)

// SellerRepository defines the interface for seller data access.
type SellerRepository interface {
	Create(ctx context.Context, seller *models.Seller) error
	GetByUsername(ctx context.Context, username string) (*models.Seller, error)
	GetByID(ctx context.Context, id string) (*models.Seller, error)
}
