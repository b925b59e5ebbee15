package service

import (
	"context"

	"github.com/Lixing-Zhang/product-api/internal/models"
	"github.com/Lixing-Zhang/product-api/internal/repository"
)

// ProductFields holds the caller-supplied columns of a product
type ProductFields struct {
	Name        string
	Description string
	Price       float64
	Qty         int
}

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// CreateProduct stores a new product and returns it with its assigned ID
func (s *ProductService) CreateProduct(ctx context.Context, f ProductFields) (*models.Product, error) {
	product := f.apply(models.Product{})
	if err := s.repo.Create(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts returns all products
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProduct replaces every mutable field of the product with the given ID
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, f ProductFields) (*models.Product, error) {
	product := f.apply(models.Product{ID: id})
	if err := s.repo.Update(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product and returns it as it was before deletion
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.Delete(ctx, id)
}

func (f ProductFields) apply(p models.Product) models.Product {
	p.Name = f.Name
	p.Description = f.Description
	p.Price = f.Price
	p.Qty = f.Qty
	return p
}
