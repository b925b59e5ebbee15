package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Lixing-Zhang/product-api/internal/models"
)

// InMemoryProductRepository implements ProductRepository with in-memory storage.
// Ids are never reused after a delete.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products map[int64]models.Product
	lastID   int64
}

// NewInMemoryProductRepository creates an empty in-memory product repository
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: make(map[int64]models.Product),
	}
}

// Create inserts a new product
func (r *InMemoryProductRepository) Create(ctx context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(p.Name, 0) {
		return ErrDuplicateName
	}

	r.lastID++
	p.ID = r.lastID
	r.products[p.ID] = *p
	return nil
}

// GetAll returns all products ordered by ID
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	})
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// Update overwrites all mutable fields of an existing product
func (r *InMemoryProductRepository) Update(ctx context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[p.ID]; !exists {
		return ErrProductNotFound
	}
	if r.nameTaken(p.Name, p.ID) {
		return ErrDuplicateName
	}

	r.products[p.ID] = *p
	return nil
}

// Delete removes a product and returns the deleted row
func (r *InMemoryProductRepository) Delete(ctx context.Context, id int64) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	delete(r.products, id)
	return &product, nil
}

// nameTaken reports whether a product other than exceptID already uses name.
// Callers must hold r.mu.
func (r *InMemoryProductRepository) nameTaken(name string, exceptID int64) bool {
	for id, product := range r.products {
		if id != exceptID && product.Name == name {
			return true
		}
	}
	return false
}
