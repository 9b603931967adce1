package services

import (
	"context"
	"errors"
	"strings"

	"wms2/internal/models"
	"wms2/internal/repositories"

	"github.com/google/uuid"
)

type ProductService interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	List(ctx context.Context, limit, offset int) ([]*models.Product, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*models.Product, error)
	Count(ctx context.Context) (int, error)
}

type productService struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) ProductService {
	return &productService{
		productRepo: productRepo,
	}
}

func (s *productService) Create(ctx context.Context, product *models.Product) error {
	if product.Code == "" {
		return errors.New("product code is required")
	}

	if product.Name == "" {
		return errors.New("product name is required")
	}

	if product.UnitOfMeasure == "" {
		return errors.New("product unit of measure is required")
	}

	// Check for duplicate code
	existing, err := s.productRepo.GetByCode(ctx, product.Code)
	if err == nil && existing != nil {
		return errors.New("product with this code already exists")
	}

	product.ID = uuid.New()

	return s.productRepo.Create(ctx, product)
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *productService) Update(ctx context.Context, product *models.Product) error {
	if product.Code == "" {
		return errors.New("product code is required")
	}

	if product.Name == "" {
		return errors.New("product name is required")
	}

	if product.UnitOfMeasure == "" {
		return errors.New("product unit of measure is required")
	}

	// A different product may not take over this code
	existing, err := s.productRepo.GetByCode(ctx, product.Code)
	if err == nil && existing != nil && existing.ID != product.ID {
		return errors.New("product with this code already exists")
	}

	return s.productRepo.Update(ctx, product)
}

func (s *productService) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	return s.productRepo.List(ctx, limit, offset)
}

func (s *productService) Search(ctx context.Context, query string, limit, offset int) ([]*models.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.productRepo.List(ctx, limit, offset)
	}
	return s.productRepo.Search(ctx, query, limit, offset)
}

func (s *productService) Count(ctx context.Context) (int, error) {
	return s.productRepo.Count(ctx)
}
