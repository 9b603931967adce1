package services

import (
	"context"
	"io"
	"time"

	"wms2/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepo) GetByCode(ctx context.Context, code string) (*models.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepo) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepo) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductRepo) Search(ctx context.Context, query string, limit, offset int) ([]*models.Product, error) {
	args := m.Called(ctx, query, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockPackagingRepo struct {
	mock.Mock
}

func (m *MockPackagingRepo) Create(ctx context.Context, packaging *models.Packaging) error {
	args := m.Called(ctx, packaging)
	return args.Error(0)
}

func (m *MockPackagingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Packaging, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Packaging), args.Error(1)
}

func (m *MockPackagingRepo) Update(ctx context.Context, packaging *models.Packaging) error {
	args := m.Called(ctx, packaging)
	return args.Error(0)
}

func (m *MockPackagingRepo) List(ctx context.Context, limit, offset int) ([]*models.Packaging, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Packaging), args.Error(1)
}

type MockStockStatusRepo struct {
	mock.Mock
}

func (m *MockStockStatusRepo) Create(ctx context.Context, status *models.StockStatus) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *MockStockStatusRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.StockStatus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StockStatus), args.Error(1)
}

func (m *MockStockStatusRepo) Update(ctx context.Context, status *models.StockStatus) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *MockStockStatusRepo) List(ctx context.Context, limit, offset int) ([]*models.StockStatus, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StockStatus), args.Error(1)
}

type MockWarehouseRepo struct {
	mock.Mock
}

func (m *MockWarehouseRepo) Create(ctx context.Context, warehouse *models.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepo) GetByName(ctx context.Context, name string) (*models.Warehouse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepo) Update(ctx context.Context, warehouse *models.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepo) List(ctx context.Context, limit, offset int) ([]*models.Warehouse, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Warehouse), args.Error(1)
}

type MockAisleRepo struct {
	mock.Mock
}

func (m *MockAisleRepo) Create(ctx context.Context, aisle *models.Aisle) error {
	args := m.Called(ctx, aisle)
	return args.Error(0)
}

func (m *MockAisleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Aisle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Aisle), args.Error(1)
}

func (m *MockAisleRepo) Update(ctx context.Context, aisle *models.Aisle) error {
	args := m.Called(ctx, aisle)
	return args.Error(0)
}

func (m *MockAisleRepo) List(ctx context.Context, limit, offset int) ([]*models.Aisle, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Aisle), args.Error(1)
}

func (m *MockAisleRepo) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]*models.Aisle, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Aisle), args.Error(1)
}

type MockBinRepo struct {
	mock.Mock
}

func (m *MockBinRepo) Create(ctx context.Context, bin *models.Bin) error {
	args := m.Called(ctx, bin)
	return args.Error(0)
}

func (m *MockBinRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Bin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bin), args.Error(1)
}

func (m *MockBinRepo) Update(ctx context.Context, bin *models.Bin) error {
	args := m.Called(ctx, bin)
	return args.Error(0)
}

func (m *MockBinRepo) List(ctx context.Context, limit, offset int) ([]*models.Bin, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bin), args.Error(1)
}

func (m *MockBinRepo) ListByAisle(ctx context.Context, aisleID uuid.UUID) ([]*models.Bin, error) {
	args := m.Called(ctx, aisleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bin), args.Error(1)
}

type MockGoodsReceiptRepo struct {
	mock.Mock
}

func (m *MockGoodsReceiptRepo) CreateWithLines(ctx context.Context, receipt *models.GoodsReceipt, lines []*models.GoodsReceiptLine) error {
	args := m.Called(ctx, receipt, lines)
	return args.Error(0)
}

func (m *MockGoodsReceiptRepo) UpdateWithLines(ctx context.Context, receipt *models.GoodsReceipt, lines []*models.GoodsReceiptLine) error {
	args := m.Called(ctx, receipt, lines)
	return args.Error(0)
}

func (m *MockGoodsReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.GoodsReceipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GoodsReceipt), args.Error(1)
}

func (m *MockGoodsReceiptRepo) List(ctx context.Context, limit, offset int) ([]*models.GoodsReceipt, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.GoodsReceipt), args.Error(1)
}

func (m *MockGoodsReceiptRepo) ListLines(ctx context.Context, receiptID uuid.UUID) ([]*models.GoodsReceiptLine, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.GoodsReceiptLine), args.Error(1)
}

func (m *MockGoodsReceiptRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockGoodsReceiptRepo) CountByStatus(ctx context.Context) ([]*models.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StatusCount), args.Error(1)
}

func (m *MockGoodsReceiptRepo) Report(ctx context.Context, filter *models.ReceiptReportFilter) ([]*models.GoodsReceipt, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.GoodsReceipt), args.Error(1)
}

type MockSlotAssignmentRepo struct {
	mock.Mock
}

func (m *MockSlotAssignmentRepo) Create(ctx context.Context, assignment *models.SlotAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockSlotAssignmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.SlotAssignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SlotAssignment), args.Error(1)
}

func (m *MockSlotAssignmentRepo) Update(ctx context.Context, assignment *models.SlotAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockSlotAssignmentRepo) List(ctx context.Context, limit, offset int) ([]*models.SlotAssignmentView, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SlotAssignmentView), args.Error(1)
}

func (m *MockSlotAssignmentRepo) StockReport(ctx context.Context, filter *models.StockReportFilter) ([]*models.SlotAssignmentView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SlotAssignmentView), args.Error(1)
}

func (m *MockSlotAssignmentRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockSlotAssignmentRepo) SumByWarehouse(ctx context.Context) ([]*models.WarehouseQuantity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.WarehouseQuantity), args.Error(1)
}

func (m *MockSlotAssignmentRepo) SumByStatus(ctx context.Context) ([]*models.StatusQuantity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StatusQuantity), args.Error(1)
}

type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, employee *models.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Employee, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepo) Update(ctx context.Context, employee *models.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepo) List(ctx context.Context, limit, offset int) ([]*models.Employee, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Employee), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetDashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardSummary), args.Error(1)
}

func (m *MockCacheService) SetDashboardSummary(ctx context.Context, summary *models.DashboardSummary, ttl time.Duration) error {
	args := m.Called(ctx, summary, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteDashboardSummary(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCacheService) GetWarehouseAisles(ctx context.Context, warehouseID uuid.UUID) ([]*models.Aisle, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Aisle), args.Error(1)
}

func (m *MockCacheService) SetWarehouseAisles(ctx context.Context, warehouseID uuid.UUID, aisles []*models.Aisle, ttl time.Duration) error {
	args := m.Called(ctx, warehouseID, aisles, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteWarehouseAisles(ctx context.Context, warehouseID uuid.UUID) error {
	args := m.Called(ctx, warehouseID)
	return args.Error(0)
}

func (m *MockCacheService) GetAisleBins(ctx context.Context, aisleID uuid.UUID) ([]*models.Bin, error) {
	args := m.Called(ctx, aisleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bin), args.Error(1)
}

func (m *MockCacheService) SetAisleBins(ctx context.Context, aisleID uuid.UUID, bins []*models.Bin, ttl time.Duration) error {
	args := m.Called(ctx, aisleID, bins, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteAisleBins(ctx context.Context, aisleID uuid.UUID) error {
	args := m.Called(ctx, aisleID)
	return args.Error(0)
}

type MockMinioService struct {
	mock.Mock
}

func (m *MockMinioService) UploadReport(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64) error {
	args := m.Called(ctx, bucketName, objectName, reader, objectSize)
	return args.Error(0)
}

func (m *MockMinioService) EnsureBucketExists(ctx context.Context, bucketName string) error {
	args := m.Called(ctx, bucketName)
	return args.Error(0)
}
