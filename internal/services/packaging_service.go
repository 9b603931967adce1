package services

import (
	"context"
	"errors"

	"wms2/internal/models"
	"wms2/internal/repositories"

	"github.com/google/uuid"
)

type PackagingService interface {
	Create(ctx context.Context, packaging *models.Packaging) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Packaging, error)
	Update(ctx context.Context, packaging *models.Packaging) error
	List(ctx context.Context, limit, offset int) ([]*models.Packaging, error)
}

type packagingService struct {
	packagingRepo repositories.PackagingRepository
}

func NewPackagingService(packagingRepo repositories.PackagingRepository) PackagingService {
	return &packagingService{
		packagingRepo: packagingRepo,
	}
}

func (s *packagingService) Create(ctx context.Context, packaging *models.Packaging) error {
	if packaging.Name == "" {
		return errors.New("packaging name is required")
	}

	if packaging.ConversionFactor <= 0 {
		return errors.New("packaging conversion factor must be greater than 0")
	}

	packaging.ID = uuid.New()

	return s.packagingRepo.Create(ctx, packaging)
}

func (s *packagingService) GetByID(ctx context.Context, id uuid.UUID) (*models.Packaging, error) {
	return s.packagingRepo.GetByID(ctx, id)
}

func (s *packagingService) Update(ctx context.Context, packaging *models.Packaging) error {
	if packaging.Name == "" {
		return errors.New("packaging name is required")
	}

	if packaging.ConversionFactor <= 0 {
		return errors.New("packaging conversion factor must be greater than 0")
	}

	return s.packagingRepo.Update(ctx, packaging)
}

func (s *packagingService) List(ctx context.Context, limit, offset int) ([]*models.Packaging, error) {
	return s.packagingRepo.List(ctx, limit, offset)
}
