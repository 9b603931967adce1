package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"wms2/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReceivingServiceTestSuite struct {
	suite.Suite
	mockReceipts   *MockGoodsReceiptRepo
	mockProducts   *MockProductRepo
	mockPackagings *MockPackagingRepo
	service        ReceivingService
}

func (suite *ReceivingServiceTestSuite) SetupTest() {
	suite.mockReceipts = &MockGoodsReceiptRepo{}
	suite.mockProducts = &MockProductRepo{}
	suite.mockPackagings = &MockPackagingRepo{}
	suite.service = NewReceivingService(suite.mockReceipts, suite.mockProducts, suite.mockPackagings)

	suite.mockReceipts.Test(suite.T())
	suite.mockProducts.Test(suite.T())
	suite.mockPackagings.Test(suite.T())
}

func (suite *ReceivingServiceTestSuite) TearDownTest() {
	suite.mockReceipts.AssertExpectations(suite.T())
	suite.mockProducts.AssertExpectations(suite.T())
	suite.mockPackagings.AssertExpectations(suite.T())
}

func TestReceivingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceivingServiceTestSuite))
}

func (suite *ReceivingServiceTestSuite) receipt() *models.GoodsReceipt {
	return &models.GoodsReceipt{
		InvoiceNumber: "NF-2044",
		ReceiptDate:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Supplier:      "Acme Distribuidora",
	}
}

func (suite *ReceivingServiceTestSuite) line() *models.GoodsReceiptLine {
	return &models.GoodsReceiptLine{
		ProductID:   uuid.New(),
		PackagingID: uuid.New(),
		Quantity:    12,
		UnitValue:   decimal.RequireFromString("19.90"),
	}
}

func (suite *ReceivingServiceTestSuite) expectLineReferences(ctx context.Context, lines ...*models.GoodsReceiptLine) {
	for _, l := range lines {
		suite.mockProducts.On("GetByID", ctx, l.ProductID).Return(&models.Product{ID: l.ProductID}, nil)
		suite.mockPackagings.On("GetByID", ctx, l.PackagingID).Return(&models.Packaging{ID: l.PackagingID}, nil)
	}
}

func (suite *ReceivingServiceTestSuite) TestCreate_DefaultsStatusAndAssignsIdentity() {
	ctx := context.Background()
	receipt := suite.receipt()
	lines := []*models.GoodsReceiptLine{suite.line(), suite.line()}

	suite.expectLineReferences(ctx, lines...)
	suite.mockReceipts.On("CreateWithLines", ctx, receipt, lines).Return(nil)

	err := suite.service.Create(ctx, receipt, lines)

	suite.NoError(err)
	suite.Equal(models.ReceiptStatusPending, receipt.Status)
	suite.NotEqual(uuid.Nil, receipt.ID)
	for _, l := range lines {
		suite.NotEqual(uuid.Nil, l.ID)
		suite.Equal(receipt.ID, l.ReceiptID)
	}
}

func (suite *ReceivingServiceTestSuite) TestCreate_MissingInvoiceNumber() {
	ctx := context.Background()
	receipt := suite.receipt()
	receipt.InvoiceNumber = ""

	err := suite.service.Create(ctx, receipt, nil)

	suite.EqualError(err, "invoice number is required")
	suite.mockReceipts.AssertNotCalled(suite.T(), "CreateWithLines")
}

func (suite *ReceivingServiceTestSuite) TestCreate_InvalidStatus() {
	ctx := context.Background()
	receipt := suite.receipt()
	receipt.Status = "Arquivado"

	err := suite.service.Create(ctx, receipt, nil)

	suite.EqualError(err, "invalid receipt status: Arquivado")
	suite.mockReceipts.AssertNotCalled(suite.T(), "CreateWithLines")
}

func (suite *ReceivingServiceTestSuite) TestCreate_RequiresAtLeastOneLine() {
	ctx := context.Background()

	err := suite.service.Create(ctx, suite.receipt(), nil)

	suite.EqualError(err, "at least one line item is required")
	suite.mockReceipts.AssertNotCalled(suite.T(), "CreateWithLines")
}

func (suite *ReceivingServiceTestSuite) TestCreate_NonPositiveLineQuantity() {
	ctx := context.Background()
	line := suite.line()
	line.Quantity = 0

	err := suite.service.Create(ctx, suite.receipt(), []*models.GoodsReceiptLine{line})

	suite.EqualError(err, "line 1: quantity must be greater than 0")
	suite.mockProducts.AssertNotCalled(suite.T(), "GetByID")
	suite.mockReceipts.AssertNotCalled(suite.T(), "CreateWithLines")
}

func (suite *ReceivingServiceTestSuite) TestCreate_NegativeUnitValue() {
	ctx := context.Background()
	good := suite.line()
	bad := suite.line()
	bad.UnitValue = decimal.RequireFromString("-0.01")

	err := suite.service.Create(ctx, suite.receipt(), []*models.GoodsReceiptLine{good, bad})

	suite.EqualError(err, "line 2: unit value must not be negative")
	suite.mockReceipts.AssertNotCalled(suite.T(), "CreateWithLines")
}

func (suite *ReceivingServiceTestSuite) TestCreate_UnknownProduct() {
	ctx := context.Background()
	line := suite.line()

	suite.mockProducts.On("GetByID", ctx, line.ProductID).Return(nil, errors.New("no rows in result set"))

	err := suite.service.Create(ctx, suite.receipt(), []*models.GoodsReceiptLine{line})

	suite.EqualError(err, "line 1: product not found")
	suite.mockReceipts.AssertNotCalled(suite.T(), "CreateWithLines")
}

func (suite *ReceivingServiceTestSuite) TestUpdate_RegeneratesLineIdentity() {
	ctx := context.Background()
	receipt := suite.receipt()
	receipt.ID = uuid.New()
	receipt.Status = models.ReceiptStatusPending

	line := suite.line()
	staleID := uuid.New()
	line.ID = staleID
	line.ReceiptID = uuid.New()
	lines := []*models.GoodsReceiptLine{line}

	suite.mockReceipts.On("GetByID", ctx, receipt.ID).Return(receipt, nil)
	suite.expectLineReferences(ctx, line)
	suite.mockReceipts.On("UpdateWithLines", ctx, receipt, lines).Return(nil)

	err := suite.service.Update(ctx, receipt, lines)

	suite.NoError(err)
	suite.NotEqual(staleID, line.ID)
	suite.Equal(receipt.ID, line.ReceiptID)
}

func (suite *ReceivingServiceTestSuite) TestUpdate_ReceiptNotFound() {
	ctx := context.Background()
	receipt := suite.receipt()
	receipt.ID = uuid.New()

	suite.mockReceipts.On("GetByID", ctx, receipt.ID).Return(nil, errors.New("no rows in result set"))

	err := suite.service.Update(ctx, receipt, []*models.GoodsReceiptLine{suite.line()})

	suite.ErrorContains(err, "goods receipt not found")
	suite.mockReceipts.AssertNotCalled(suite.T(), "UpdateWithLines")
}

func (suite *ReceivingServiceTestSuite) TestUpdateStatus_Success() {
	ctx := context.Background()
	receiptID := uuid.New()

	suite.mockReceipts.On("GetByID", ctx, receiptID).Return(&models.GoodsReceipt{ID: receiptID}, nil)
	suite.mockReceipts.On("UpdateStatus", ctx, receiptID, models.ReceiptStatusProcessed).Return(nil)

	err := suite.service.UpdateStatus(ctx, receiptID, models.ReceiptStatusProcessed)

	suite.NoError(err)
}

func (suite *ReceivingServiceTestSuite) TestUpdateStatus_InvalidStatus() {
	ctx := context.Background()

	err := suite.service.UpdateStatus(ctx, uuid.New(), "Done")

	suite.EqualError(err, "invalid receipt status: Done")
	suite.mockReceipts.AssertNotCalled(suite.T(), "UpdateStatus")
}

func (suite *ReceivingServiceTestSuite) TestGet_BundlesHeaderLinesAndTotal() {
	ctx := context.Background()
	receiptID := uuid.New()
	receipt := &models.GoodsReceipt{ID: receiptID, InvoiceNumber: "NF-2044"}
	lines := []*models.GoodsReceiptLine{
		{ID: uuid.New(), ReceiptID: receiptID, Quantity: 3, UnitValue: decimal.RequireFromString("19.90")},
		{ID: uuid.New(), ReceiptID: receiptID, Quantity: 2, UnitValue: decimal.RequireFromString("0.35")},
	}

	suite.mockReceipts.On("GetByID", ctx, receiptID).Return(receipt, nil)
	suite.mockReceipts.On("ListLines", ctx, receiptID).Return(lines, nil)

	bundle, err := suite.service.Get(ctx, receiptID)

	suite.NoError(err)
	suite.Equal(receipt, bundle.Receipt)
	suite.Equal(lines, bundle.Lines)
	suite.True(bundle.Total.Equal(decimal.RequireFromString("60.40")))
}

func (suite *ReceivingServiceTestSuite) TestBundleTotal_EmptyLineSetIsZero() {
	bundle := NewGoodsReceiptWithLines(suite.receipt(), nil)

	suite.True(bundle.Total.IsZero())
}
