package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"wms2/internal/caching"
	"wms2/internal/models"
	"wms2/internal/repositories"

	"github.com/google/uuid"
)

// locationCacheTTL bounds staleness of the cached aisle and bin listings.
const locationCacheTTL = 10 * time.Minute

// LocationService manages aisles and bins and validates that a
// warehouse/aisle/bin triple forms a real path through the structure.
type LocationService interface {
	CreateAisle(ctx context.Context, aisle *models.Aisle) error
	GetAisle(ctx context.Context, id uuid.UUID) (*models.Aisle, error)
	UpdateAisle(ctx context.Context, aisle *models.Aisle) error
	ListAisles(ctx context.Context, limit, offset int) ([]*models.Aisle, error)
	AislesByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]*models.Aisle, error)

	CreateBin(ctx context.Context, bin *models.Bin) error
	GetBin(ctx context.Context, id uuid.UUID) (*models.Bin, error)
	UpdateBin(ctx context.Context, bin *models.Bin) error
	ListBins(ctx context.Context, limit, offset int) ([]*models.Bin, error)
	BinsByAisle(ctx context.Context, aisleID uuid.UUID) ([]*models.Bin, error)

	ValidatePath(ctx context.Context, warehouseID, aisleID, binID uuid.UUID) error
}

type locationService struct {
	warehouseRepo repositories.WarehouseRepository
	aisleRepo     repositories.AisleRepository
	binRepo       repositories.BinRepository
	cacheSvc      caching.CacheService
}

func NewLocationService(
	warehouseRepo repositories.WarehouseRepository,
	aisleRepo repositories.AisleRepository,
	binRepo repositories.BinRepository,
	cacheSvc caching.CacheService,
) LocationService {
	return &locationService{
		warehouseRepo: warehouseRepo,
		aisleRepo:     aisleRepo,
		binRepo:       binRepo,
		cacheSvc:      cacheSvc,
	}
}

func (s *locationService) CreateAisle(ctx context.Context, aisle *models.Aisle) error {
	if aisle.Name == "" {
		return errors.New("aisle name is required")
	}

	if _, err := s.warehouseRepo.GetByID(ctx, aisle.WarehouseID); err != nil {
		return fmt.Errorf("warehouse not found: %w", err)
	}

	aisle.ID = uuid.New()

	if err := s.aisleRepo.Create(ctx, aisle); err != nil {
		return err
	}

	if err := s.cacheSvc.DeleteWarehouseAisles(ctx, aisle.WarehouseID); err != nil {
		log.Printf("Failed to invalidate aisle cache: %v", err)
	}
	return nil
}

func (s *locationService) GetAisle(ctx context.Context, id uuid.UUID) (*models.Aisle, error) {
	return s.aisleRepo.GetByID(ctx, id)
}

func (s *locationService) UpdateAisle(ctx context.Context, aisle *models.Aisle) error {
	if aisle.Name == "" {
		return errors.New("aisle name is required")
	}

	if _, err := s.warehouseRepo.GetByID(ctx, aisle.WarehouseID); err != nil {
		return fmt.Errorf("warehouse not found: %w", err)
	}

	existing, err := s.aisleRepo.GetByID(ctx, aisle.ID)
	if err != nil {
		return fmt.Errorf("aisle not found: %w", err)
	}

	if err := s.aisleRepo.Update(ctx, aisle); err != nil {
		return err
	}

	// Invalidate old and new parent listings in case the aisle moved
	if err := s.cacheSvc.DeleteWarehouseAisles(ctx, existing.WarehouseID); err != nil {
		log.Printf("Failed to invalidate aisle cache: %v", err)
	}
	if existing.WarehouseID != aisle.WarehouseID {
		if err := s.cacheSvc.DeleteWarehouseAisles(ctx, aisle.WarehouseID); err != nil {
			log.Printf("Failed to invalidate aisle cache: %v", err)
		}
	}
	return nil
}

func (s *locationService) ListAisles(ctx context.Context, limit, offset int) ([]*models.Aisle, error) {
	return s.aisleRepo.List(ctx, limit, offset)
}

func (s *locationService) AislesByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]*models.Aisle, error) {
	if cached, err := s.cacheSvc.GetWarehouseAisles(ctx, warehouseID); err == nil && cached != nil {
		return cached, nil
	}

	if _, err := s.warehouseRepo.GetByID(ctx, warehouseID); err != nil {
		return nil, fmt.Errorf("warehouse not found: %w", err)
	}

	aisles, err := s.aisleRepo.ListByWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheSvc.SetWarehouseAisles(ctx, warehouseID, aisles, locationCacheTTL); err != nil {
		log.Printf("Failed to cache aisles for warehouse %s: %v", warehouseID, err)
	}
	return aisles, nil
}

func (s *locationService) CreateBin(ctx context.Context, bin *models.Bin) error {
	if bin.Name == "" {
		return errors.New("bin name is required")
	}

	if _, err := s.aisleRepo.GetByID(ctx, bin.AisleID); err != nil {
		return fmt.Errorf("aisle not found: %w", err)
	}

	bin.ID = uuid.New()

	if err := s.binRepo.Create(ctx, bin); err != nil {
		return err
	}

	if err := s.cacheSvc.DeleteAisleBins(ctx, bin.AisleID); err != nil {
		log.Printf("Failed to invalidate bin cache: %v", err)
	}
	return nil
}

func (s *locationService) GetBin(ctx context.Context, id uuid.UUID) (*models.Bin, error) {
	return s.binRepo.GetByID(ctx, id)
}

func (s *locationService) UpdateBin(ctx context.Context, bin *models.Bin) error {
	if bin.Name == "" {
		return errors.New("bin name is required")
	}

	if _, err := s.aisleRepo.GetByID(ctx, bin.AisleID); err != nil {
		return fmt.Errorf("aisle not found: %w", err)
	}

	existing, err := s.binRepo.GetByID(ctx, bin.ID)
	if err != nil {
		return fmt.Errorf("bin not found: %w", err)
	}

	if err := s.binRepo.Update(ctx, bin); err != nil {
		return err
	}

	if err := s.cacheSvc.DeleteAisleBins(ctx, existing.AisleID); err != nil {
		log.Printf("Failed to invalidate bin cache: %v", err)
	}
	if existing.AisleID != bin.AisleID {
		if err := s.cacheSvc.DeleteAisleBins(ctx, bin.AisleID); err != nil {
			log.Printf("Failed to invalidate bin cache: %v", err)
		}
	}
	return nil
}

func (s *locationService) ListBins(ctx context.Context, limit, offset int) ([]*models.Bin, error) {
	return s.binRepo.List(ctx, limit, offset)
}

func (s *locationService) BinsByAisle(ctx context.Context, aisleID uuid.UUID) ([]*models.Bin, error) {
	if cached, err := s.cacheSvc.GetAisleBins(ctx, aisleID); err == nil && cached != nil {
		return cached, nil
	}

	if _, err := s.aisleRepo.GetByID(ctx, aisleID); err != nil {
		return nil, fmt.Errorf("aisle not found: %w", err)
	}

	bins, err := s.binRepo.ListByAisle(ctx, aisleID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheSvc.SetAisleBins(ctx, aisleID, bins, locationCacheTTL); err != nil {
		log.Printf("Failed to cache bins for aisle %s: %v", aisleID, err)
	}
	return bins, nil
}

// ValidatePath checks the whole containment chain. The bin must belong to
// the aisle and the aisle to the warehouse, not merely all three exist.
func (s *locationService) ValidatePath(ctx context.Context, warehouseID, aisleID, binID uuid.UUID) error {
	if _, err := s.warehouseRepo.GetByID(ctx, warehouseID); err != nil {
		return fmt.Errorf("warehouse not found: %w", err)
	}

	aisle, err := s.aisleRepo.GetByID(ctx, aisleID)
	if err != nil {
		return fmt.Errorf("aisle not found: %w", err)
	}
	if aisle.WarehouseID != warehouseID {
		return errors.New("aisle does not belong to the given warehouse")
	}

	bin, err := s.binRepo.GetByID(ctx, binID)
	if err != nil {
		return fmt.Errorf("bin not found: %w", err)
	}
	if bin.AisleID != aisleID {
		return errors.New("bin does not belong to the given aisle")
	}

	return nil
}
