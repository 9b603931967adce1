package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"wms2/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportServiceTestSuite struct {
	suite.Suite
	mockAssignments *MockSlotAssignmentRepo
	mockReceipts    *MockGoodsReceiptRepo
	mockMinio       *MockMinioService
	service         ReportService
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockAssignments = &MockSlotAssignmentRepo{}
	suite.mockReceipts = &MockGoodsReceiptRepo{}
	suite.mockMinio = &MockMinioService{}
	suite.service = NewReportService(suite.mockAssignments, suite.mockReceipts, suite.mockMinio, "reports")

	suite.mockAssignments.Test(suite.T())
	suite.mockReceipts.Test(suite.T())
	suite.mockMinio.Test(suite.T())
}

func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.mockAssignments.AssertExpectations(suite.T())
	suite.mockReceipts.AssertExpectations(suite.T())
	suite.mockMinio.AssertExpectations(suite.T())
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (suite *ReportServiceTestSuite) TestStockReportCSV_RendersRows() {
	ctx := context.Background()
	filter := &models.StockReportFilter{}
	view := &models.SlotAssignmentView{
		SlotAssignment: models.SlotAssignment{
			Quantity:     30,
			RegisteredAt: time.Date(2025, 7, 21, 14, 0, 0, 0, time.UTC),
		},
		ProductName:   "Caixa, madeira",
		ProductCode:   "CX-01",
		WarehouseName: "Central",
		BinName:       "B-03",
		StatusDesc:    "Disponível",
	}

	suite.mockAssignments.On("StockReport", ctx, filter).Return([]*models.SlotAssignmentView{view}, nil)
	suite.mockMinio.On("UploadReport", ctx, "reports", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	data, filename, err := suite.service.StockReportCSV(ctx, filter)

	suite.NoError(err)
	expected := "Product,Code,Warehouse,Bin,Quantity,Status,Date\n" +
		"\"Caixa, madeira\",CX-01,Central,B-03,30,Disponível,2025-07-21\n"
	suite.Equal(expected, string(data))
	suite.Equal(fmt.Sprintf("relatorio_estoque_%s.csv", time.Now().Format("2006-01-02")), filename)
}

func (suite *ReportServiceTestSuite) TestStockReportCSV_ArchiveFailureDoesNotBlock() {
	ctx := context.Background()
	filter := &models.StockReportFilter{}

	suite.mockAssignments.On("StockReport", ctx, filter).Return([]*models.SlotAssignmentView{}, nil)
	suite.mockMinio.On("UploadReport", ctx, "reports", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	data, filename, err := suite.service.StockReportCSV(ctx, filter)

	suite.NoError(err)
	suite.Equal("Product,Code,Warehouse,Bin,Quantity,Status,Date\n", string(data))
	suite.NotEmpty(filename)
}

func (suite *ReportServiceTestSuite) TestStockReportCSV_RepoErrorPropagates() {
	ctx := context.Background()
	filter := &models.StockReportFilter{}

	suite.mockAssignments.On("StockReport", ctx, filter).Return(nil, errors.New("query failed"))

	data, filename, err := suite.service.StockReportCSV(ctx, filter)

	suite.EqualError(err, "query failed")
	suite.Nil(data)
	suite.Empty(filename)
	suite.mockMinio.AssertNotCalled(suite.T(), "UploadReport")
}

func (suite *ReportServiceTestSuite) TestReceiptReportCSV_RendersRows() {
	ctx := context.Background()
	filter := &models.ReceiptReportFilter{}
	receipts := []*models.GoodsReceipt{
		{
			ID:            uuid.New(),
			ReceiptDate:   time.Date(2025, 7, 18, 0, 0, 0, 0, time.UTC),
			InvoiceNumber: "NF-2044",
			Supplier:      "Acme Distribuidora",
			Status:        models.ReceiptStatusProcessed,
		},
	}

	suite.mockReceipts.On("Report", ctx, filter).Return(receipts, nil)
	suite.mockMinio.On("UploadReport", ctx, "reports", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	data, filename, err := suite.service.ReceiptReportCSV(ctx, filter)

	suite.NoError(err)
	expected := "Date,Invoice,Supplier,Status\n" +
		"2025-07-18,NF-2044,Acme Distribuidora,Processed\n"
	suite.Equal(expected, string(data))
	suite.Equal(fmt.Sprintf("relatorio_recebimento_%s.csv", time.Now().Format("2006-01-02")), filename)
}

func (suite *ReportServiceTestSuite) TestArchiveObjectNameUsesMonthPrefix() {
	ctx := context.Background()
	filter := &models.ReceiptReportFilter{}

	suite.mockReceipts.On("Report", ctx, filter).Return([]*models.GoodsReceipt{}, nil)
	suite.mockMinio.On("UploadReport", ctx, "reports",
		fmt.Sprintf("%s/relatorio_recebimento_%s.csv", time.Now().Format("2006/01"), time.Now().Format("2006-01-02")),
		mock.Anything, mock.Anything).Return(nil)

	_, _, err := suite.service.ReceiptReportCSV(ctx, filter)

	suite.NoError(err)
}
