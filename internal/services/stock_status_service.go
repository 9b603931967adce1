package services

import (
	"context"
	"errors"

	"wms2/internal/models"
	"wms2/internal/repositories"

	"github.com/google/uuid"
)

type StockStatusService interface {
	Create(ctx context.Context, status *models.StockStatus) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.StockStatus, error)
	Update(ctx context.Context, status *models.StockStatus) error
	List(ctx context.Context, limit, offset int) ([]*models.StockStatus, error)
}

type stockStatusService struct {
	stockStatusRepo repositories.StockStatusRepository
}

func NewStockStatusService(stockStatusRepo repositories.StockStatusRepository) StockStatusService {
	return &stockStatusService{
		stockStatusRepo: stockStatusRepo,
	}
}

func (s *stockStatusService) Create(ctx context.Context, status *models.StockStatus) error {
	if status.Description == "" {
		return errors.New("stock status description is required")
	}

	status.ID = uuid.New()

	return s.stockStatusRepo.Create(ctx, status)
}

func (s *stockStatusService) GetByID(ctx context.Context, id uuid.UUID) (*models.StockStatus, error) {
	return s.stockStatusRepo.GetByID(ctx, id)
}

func (s *stockStatusService) Update(ctx context.Context, status *models.StockStatus) error {
	if status.Description == "" {
		return errors.New("stock status description is required")
	}

	return s.stockStatusRepo.Update(ctx, status)
}

func (s *stockStatusService) List(ctx context.Context, limit, offset int) ([]*models.StockStatus, error) {
	return s.stockStatusRepo.List(ctx, limit, offset)
}
