package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wms2/internal/models"
	"wms2/internal/repositories"

	"github.com/google/uuid"
)

// SlottingService records where received stock physically lives.
type SlottingService interface {
	Create(ctx context.Context, assignment *models.SlotAssignment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SlotAssignment, error)
	Update(ctx context.Context, assignment *models.SlotAssignment) error
	List(ctx context.Context, limit, offset int) ([]*models.SlotAssignmentView, error)
}

type slottingService struct {
	assignmentRepo  repositories.SlotAssignmentRepository
	productRepo     repositories.ProductRepository
	stockStatusRepo repositories.StockStatusRepository
	receiptRepo     repositories.GoodsReceiptRepository
	employeeRepo    repositories.EmployeeRepository
	locationSvc     LocationService
}

func NewSlottingService(
	assignmentRepo repositories.SlotAssignmentRepository,
	productRepo repositories.ProductRepository,
	stockStatusRepo repositories.StockStatusRepository,
	receiptRepo repositories.GoodsReceiptRepository,
	employeeRepo repositories.EmployeeRepository,
	locationSvc LocationService,
) SlottingService {
	return &slottingService{
		assignmentRepo:  assignmentRepo,
		productRepo:     productRepo,
		stockStatusRepo: stockStatusRepo,
		receiptRepo:     receiptRepo,
		employeeRepo:    employeeRepo,
		locationSvc:     locationSvc,
	}
}

func (s *slottingService) checkReferences(ctx context.Context, assignment *models.SlotAssignment) error {
	if _, err := s.productRepo.GetByID(ctx, assignment.ProductID); err != nil {
		return fmt.Errorf("product not found: %w", err)
	}

	if _, err := s.stockStatusRepo.GetByID(ctx, assignment.StatusID); err != nil {
		return fmt.Errorf("stock status not found: %w", err)
	}

	if _, err := s.employeeRepo.GetByID(ctx, assignment.RegisteredBy); err != nil {
		return fmt.Errorf("registering employee not found: %w", err)
	}

	if assignment.ReceiptID != nil {
		if _, err := s.receiptRepo.GetByID(ctx, *assignment.ReceiptID); err != nil {
			return fmt.Errorf("goods receipt not found: %w", err)
		}
	}

	return s.locationSvc.ValidatePath(ctx, assignment.WarehouseID, assignment.AisleID, assignment.BinID)
}

func (s *slottingService) Create(ctx context.Context, assignment *models.SlotAssignment) error {
	if assignment.Quantity <= 0 {
		return errors.New("quantity must be greater than 0")
	}

	if err := s.checkReferences(ctx, assignment); err != nil {
		return err
	}

	assignment.ID = uuid.New()
	if assignment.RegisteredAt.IsZero() {
		assignment.RegisteredAt = time.Now()
	}

	return s.assignmentRepo.Create(ctx, assignment)
}

func (s *slottingService) GetByID(ctx context.Context, id uuid.UUID) (*models.SlotAssignment, error) {
	return s.assignmentRepo.GetByID(ctx, id)
}

func (s *slottingService) Update(ctx context.Context, assignment *models.SlotAssignment) error {
	if assignment.Quantity <= 0 {
		return errors.New("quantity must be greater than 0")
	}

	if _, err := s.assignmentRepo.GetByID(ctx, assignment.ID); err != nil {
		return fmt.Errorf("slot assignment not found: %w", err)
	}

	if err := s.checkReferences(ctx, assignment); err != nil {
		return err
	}

	return s.assignmentRepo.Update(ctx, assignment)
}

func (s *slottingService) List(ctx context.Context, limit, offset int) ([]*models.SlotAssignmentView, error) {
	return s.assignmentRepo.List(ctx, limit, offset)
}
