package dashboard

import (
	"context"
	"log"
	"strings"
	"time"

	"wms2/internal/caching"
	"wms2/internal/models"
	"wms2/internal/repositories"
)

// summaryTTL bounds staleness between scheduled refreshes.
const summaryTTL = 5 * time.Minute

// damageKeyword flags stock statuses that represent damaged goods, e.g.
// "Avariado" or "Avaria parcial". Matching is case-insensitive.
const damageKeyword = "avari"

// Service aggregates the landing-page numbers: catalog size, stock totals,
// quantity by warehouse and by status, and receipt counts by status.
type Service interface {
	Summary(ctx context.Context) (*models.DashboardSummary, error)
	RefreshSummary(ctx context.Context) (*models.DashboardSummary, error)
}

type service struct {
	productRepo    repositories.ProductRepository
	assignmentRepo repositories.SlotAssignmentRepository
	receiptRepo    repositories.GoodsReceiptRepository
	cacheSvc       caching.CacheService
}

func NewService(
	productRepo repositories.ProductRepository,
	assignmentRepo repositories.SlotAssignmentRepository,
	receiptRepo repositories.GoodsReceiptRepository,
	cacheSvc caching.CacheService,
) Service {
	return &service{
		productRepo:    productRepo,
		assignmentRepo: assignmentRepo,
		receiptRepo:    receiptRepo,
		cacheSvc:       cacheSvc,
	}
}

func (s *service) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	if cached, err := s.cacheSvc.GetDashboardSummary(ctx); err == nil && cached != nil {
		return cached, nil
	}

	return s.RefreshSummary(ctx)
}

// RefreshSummary recomputes the aggregates and rewrites the cache entry.
func (s *service) RefreshSummary(ctx context.Context) (*models.DashboardSummary, error) {
	totalProducts, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalAssignments, err := s.assignmentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	byWarehouse, err := s.assignmentRepo.SumByWarehouse(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.assignmentRepo.SumByStatus(ctx)
	if err != nil {
		return nil, err
	}

	receiptsByStatus, err := s.receiptRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	totalStock := 0
	for _, w := range byWarehouse {
		totalStock += w.Quantity
	}

	damaged := 0
	for _, st := range byStatus {
		if strings.Contains(strings.ToLower(st.Description), damageKeyword) {
			damaged += st.Quantity
		}
	}

	pending := 0
	for _, rc := range receiptsByStatus {
		if rc.Status == models.ReceiptStatusPending {
			pending += rc.Count
		}
	}

	summary := &models.DashboardSummary{
		TotalProducts:      totalProducts,
		TotalAssignments:   totalAssignments,
		TotalStockQuantity: totalStock,
		DamagedQuantity:    damaged,
		PendingReceipts:    pending,
		StockByWarehouse:   byWarehouse,
		StockByStatus:      byStatus,
		ReceiptsByStatus:   receiptsByStatus,
	}

	if err := s.cacheSvc.SetDashboardSummary(ctx, summary, summaryTTL); err != nil {
		log.Printf("Failed to cache dashboard summary: %v", err)
	}

	return summary, nil
}
