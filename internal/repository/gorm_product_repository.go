package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Lixing-Zhang/product-api/internal/database"
	"github.com/Lixing-Zhang/product-api/internal/models"
)

// GormProductRepository implements ProductRepository on a relational table
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a repository backed by db.
// The product table must already exist, see database.Migrate.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Create inserts a new product
func (r *GormProductRepository) Create(ctx context.Context, p *models.Product) error {
	p.ID = 0
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return translate(err, "create product")
	}
	return nil
}

// GetAll returns all products
func (r *GormProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, translate(err, "list products")
	}
	return products, nil
}

// GetByID returns a product by its ID
func (r *GormProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err, "get product")
	}
	return &p, nil
}

// Update overwrites name, description, price and qty of an existing product
func (r *GormProductRepository) Update(ctx context.Context, p *models.Product) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		if err := tx.First(&existing, p.ID).Error; err != nil {
			return err
		}

		existing.Name = p.Name
		existing.Description = p.Description
		existing.Price = p.Price
		existing.Qty = p.Qty

		// Select forces zero values (empty strings, 0 qty) to be written too.
		if err := tx.Select("name", "description", "price", "qty").Updates(&existing).Error; err != nil {
			return err
		}
		*p = existing
		return nil
	})
	if err != nil {
		return translate(err, "update product")
	}
	return nil
}

// Delete removes a product and returns the deleted row
func (r *GormProductRepository) Delete(ctx context.Context, id int64) (*models.Product, error) {
	var deleted models.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, id).Error
	})
	if err != nil {
		return nil, translate(err, "delete product")
	}
	return &deleted, nil
}

// translate maps gorm and driver errors onto the repository's sentinel errors.
func translate(err error, op string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrProductNotFound
	case database.IsUniqueViolation(err):
		return ErrDuplicateName
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
