package repository

import (
	"context"
	"errors"

	"github.com/Lixing-Zhang/product-api/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateName   = errors.New("product name already exists")
)

// ProductRepository defines the interface for product data access.
// Every write commits on its own; nothing spans calls.
type ProductRepository interface {
	// Create inserts p and sets p.ID to the assigned id.
	Create(ctx context.Context, p *models.Product) error
	// GetAll returns every product ordered by id.
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	// Update overwrites all mutable fields of the row with id p.ID.
	Update(ctx context.Context, p *models.Product) error
	// Delete removes the row and returns it as it was before removal.
	Delete(ctx context.Context, id int64) (*models.Product, error)
}
