package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"
	"time"

	"wms2/internal/models"
	"wms2/internal/repositories"
)

// ReportService renders the stock-position and receipt-history reports as
// CSV. Every export is also archived to object storage; archival failures
// are logged but never block the download.
type ReportService interface {
	StockReportCSV(ctx context.Context, filter *models.StockReportFilter) ([]byte, string, error)
	ReceiptReportCSV(ctx context.Context, filter *models.ReceiptReportFilter) ([]byte, string, error)
}

type reportService struct {
	assignmentRepo repositories.SlotAssignmentRepository
	receiptRepo    repositories.GoodsReceiptRepository
	minioSvc       MinioService
	reportBucket   string
}

func NewReportService(
	assignmentRepo repositories.SlotAssignmentRepository,
	receiptRepo repositories.GoodsReceiptRepository,
	minioSvc MinioService,
	reportBucket string,
) ReportService {
	return &reportService{
		assignmentRepo: assignmentRepo,
		receiptRepo:    receiptRepo,
		minioSvc:       minioSvc,
		reportBucket:   reportBucket,
	}
}

func reportFilename(kind string) string {
	return fmt.Sprintf("relatorio_%s_%s.csv", kind, time.Now().Format("2006-01-02"))
}

func (s *reportService) StockReportCSV(ctx context.Context, filter *models.StockReportFilter) ([]byte, string, error) {
	views, err := s.assignmentRepo.StockReport(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Product", "Code", "Warehouse", "Bin", "Quantity", "Status", "Date"}); err != nil {
		return nil, "", err
	}
	for _, v := range views {
		record := []string{
			v.ProductName,
			v.ProductCode,
			v.WarehouseName,
			v.BinName,
			strconv.Itoa(v.Quantity),
			v.StatusDesc,
			v.RegisteredAt.Format("2006-01-02"),
		}
		if err := w.Write(record); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := reportFilename(models.ReportKindStock)
	s.archive(ctx, filename, buf.Bytes())
	return buf.Bytes(), filename, nil
}

func (s *reportService) ReceiptReportCSV(ctx context.Context, filter *models.ReceiptReportFilter) ([]byte, string, error) {
	receipts, err := s.receiptRepo.Report(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Date", "Invoice", "Supplier", "Status"}); err != nil {
		return nil, "", err
	}
	for _, r := range receipts {
		record := []string{
			r.ReceiptDate.Format("2006-01-02"),
			r.InvoiceNumber,
			r.Supplier,
			r.Status,
		}
		if err := w.Write(record); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := reportFilename(models.ReportKindReceipts)
	s.archive(ctx, filename, buf.Bytes())
	return buf.Bytes(), filename, nil
}

func (s *reportService) archive(ctx context.Context, filename string, data []byte) {
	if s.minioSvc == nil {
		return
	}
	objectName := fmt.Sprintf("%s/%s", time.Now().Format("2006/01"), filename)
	if err := s.minioSvc.UploadReport(ctx, s.reportBucket, objectName, bytes.NewReader(data), int64(len(data))); err != nil {
		log.Printf("Failed to archive report %s: %v", objectName, err)
	}
}
