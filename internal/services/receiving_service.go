package services

import (
	"context"
	"errors"
	"fmt"

	"wms2/internal/models"
	"wms2/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoodsReceiptWithLines bundles a receipt header with its line items for
// the entry screens, which always edit both together.
type GoodsReceiptWithLines struct {
	Receipt *models.GoodsReceipt       `json:"receipt"`
	Lines   []*models.GoodsReceiptLine `json:"lines"`
	Total   decimal.Decimal            `json:"total"`
}

// NewGoodsReceiptWithLines builds the bundle, totalling the lines
// (quantity times unit value each).
func NewGoodsReceiptWithLines(receipt *models.GoodsReceipt, lines []*models.GoodsReceiptLine) *GoodsReceiptWithLines {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Total())
	}
	return &GoodsReceiptWithLines{Receipt: receipt, Lines: lines, Total: total}
}

type ReceivingService interface {
	Create(ctx context.Context, receipt *models.GoodsReceipt, lines []*models.GoodsReceiptLine) error
	Get(ctx context.Context, id uuid.UUID) (*GoodsReceiptWithLines, error)
	Update(ctx context.Context, receipt *models.GoodsReceipt, lines []*models.GoodsReceiptLine) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	List(ctx context.Context, limit, offset int) ([]*models.GoodsReceipt, error)
}

type receivingService struct {
	receiptRepo   repositories.GoodsReceiptRepository
	productRepo   repositories.ProductRepository
	packagingRepo repositories.PackagingRepository
}

func NewReceivingService(
	receiptRepo repositories.GoodsReceiptRepository,
	productRepo repositories.ProductRepository,
	packagingRepo repositories.PackagingRepository,
) ReceivingService {
	return &receivingService{
		receiptRepo:   receiptRepo,
		productRepo:   productRepo,
		packagingRepo: packagingRepo,
	}
}

func (s *receivingService) validate(receipt *models.GoodsReceipt, lines []*models.GoodsReceiptLine) error {
	if receipt.InvoiceNumber == "" {
		return errors.New("invoice number is required")
	}

	if receipt.Supplier == "" {
		return errors.New("supplier is required")
	}

	if receipt.ReceiptDate.IsZero() {
		return errors.New("receipt date is required")
	}

	if receipt.Status != "" && !models.ValidReceiptStatus(receipt.Status) {
		return fmt.Errorf("invalid receipt status: %s", receipt.Status)
	}

	if len(lines) == 0 {
		return errors.New("at least one line item is required")
	}

	for i, line := range lines {
		if line.Quantity <= 0 {
			return fmt.Errorf("line %d: quantity must be greater than 0", i+1)
		}
		if line.UnitValue.IsNegative() {
			return fmt.Errorf("line %d: unit value must not be negative", i+1)
		}
	}

	return nil
}

func (s *receivingService) checkLineReferences(ctx context.Context, lines []*models.GoodsReceiptLine) error {
	for i, line := range lines {
		if _, err := s.productRepo.GetByID(ctx, line.ProductID); err != nil {
			return fmt.Errorf("line %d: product not found", i+1)
		}
		if _, err := s.packagingRepo.GetByID(ctx, line.PackagingID); err != nil {
			return fmt.Errorf("line %d: packaging not found", i+1)
		}
	}
	return nil
}

func (s *receivingService) Create(ctx context.Context, receipt *models.GoodsReceipt, lines []*models.GoodsReceiptLine) error {
	if receipt.Status == "" {
		receipt.Status = models.ReceiptStatusPending
	}

	if err := s.validate(receipt, lines); err != nil {
		return err
	}

	if err := s.checkLineReferences(ctx, lines); err != nil {
		return err
	}

	receipt.ID = uuid.New()
	for _, line := range lines {
		line.ID = uuid.New()
		line.ReceiptID = receipt.ID
	}

	return s.receiptRepo.CreateWithLines(ctx, receipt, lines)
}

func (s *receivingService) Get(ctx context.Context, id uuid.UUID) (*GoodsReceiptWithLines, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lines, err := s.receiptRepo.ListLines(ctx, id)
	if err != nil {
		return nil, err
	}

	return NewGoodsReceiptWithLines(receipt, lines), nil
}

func (s *receivingService) Update(ctx context.Context, receipt *models.GoodsReceipt, lines []*models.GoodsReceiptLine) error {
	if err := s.validate(receipt, lines); err != nil {
		return err
	}

	if _, err := s.receiptRepo.GetByID(ctx, receipt.ID); err != nil {
		return fmt.Errorf("goods receipt not found: %w", err)
	}

	if err := s.checkLineReferences(ctx, lines); err != nil {
		return err
	}

	for _, line := range lines {
		line.ID = uuid.New()
		line.ReceiptID = receipt.ID
	}

	return s.receiptRepo.UpdateWithLines(ctx, receipt, lines)
}

func (s *receivingService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !models.ValidReceiptStatus(status) {
		return fmt.Errorf("invalid receipt status: %s", status)
	}

	if _, err := s.receiptRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("goods receipt not found: %w", err)
	}

	return s.receiptRepo.UpdateStatus(ctx, id, status)
}

func (s *receivingService) List(ctx context.Context, limit, offset int) ([]*models.GoodsReceipt, error) {
	return s.receiptRepo.List(ctx, limit, offset)
}
