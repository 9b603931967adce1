package services

import (
	"context"
	"errors"

	"wms2/internal/models"
	"wms2/internal/repositories"

	"github.com/google/uuid"
)

type WarehouseService interface {
	Create(ctx context.Context, warehouse *models.Warehouse) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Warehouse, error)
	Update(ctx context.Context, warehouse *models.Warehouse) error
	List(ctx context.Context, limit, offset int) ([]*models.Warehouse, error)
}

type warehouseService struct {
	warehouseRepo repositories.WarehouseRepository
}

func NewWarehouseService(warehouseRepo repositories.WarehouseRepository) WarehouseService {
	return &warehouseService{
		warehouseRepo: warehouseRepo,
	}
}

func (s *warehouseService) Create(ctx context.Context, warehouse *models.Warehouse) error {
	if warehouse.Name == "" {
		return errors.New("warehouse name is required")
	}

	// Check for duplicate name
	existing, err := s.warehouseRepo.GetByName(ctx, warehouse.Name)
	if err == nil && existing != nil {
		return errors.New("warehouse with this name already exists")
	}

	warehouse.ID = uuid.New()

	return s.warehouseRepo.Create(ctx, warehouse)
}

func (s *warehouseService) GetByID(ctx context.Context, id uuid.UUID) (*models.Warehouse, error) {
	return s.warehouseRepo.GetByID(ctx, id)
}

func (s *warehouseService) Update(ctx context.Context, warehouse *models.Warehouse) error {
	if warehouse.Name == "" {
		return errors.New("warehouse name is required")
	}

	existing, err := s.warehouseRepo.GetByName(ctx, warehouse.Name)
	if err == nil && existing != nil && existing.ID != warehouse.ID {
		return errors.New("warehouse with this name already exists")
	}

	return s.warehouseRepo.Update(ctx, warehouse)
}

func (s *warehouseService) List(ctx context.Context, limit, offset int) ([]*models.Warehouse, error) {
	return s.warehouseRepo.List(ctx, limit, offset)
}
