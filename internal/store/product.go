package store

import (
	"context"

	"github.com/ecofinds/ecofinds-api/internal/domain"
)

// ProductStore defines the interface for product data persistence.
type ProductStore interface {
	// Create saves a new product and assigns its ID.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, product *domain.Product) error

	// List returns all products in the store's natural order.
	List(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves a product by its unique ID.
	// Returns ErrProductNotFound if the product does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// Update persists the full state of an existing product.
	// Returns ErrProductNotFound if no row matched the product's ID.
	Update(ctx context.Context, product *domain.Product) error

	// Delete removes a product by ID.
	// Returns ErrProductNotFound if no row matched.
	Delete(ctx context.Context, id int64) error
}
