package repositories

import (
	"context"
	"fmt"

	"wms2/internal/models"

	"github.com/google/uuid"
)

type GoodsReceiptRepository interface {
	CreateWithLines(ctx context.Context, receipt *models.GoodsReceipt, lines []*models.GoodsReceiptLine) error
	UpdateWithLines(ctx context.Context, receipt *models.GoodsReceipt, lines []*models.GoodsReceiptLine) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.GoodsReceipt, error)
	List(ctx context.Context, limit, offset int) ([]*models.GoodsReceipt, error)
	ListLines(ctx context.Context, receiptID uuid.UUID) ([]*models.GoodsReceiptLine, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	CountByStatus(ctx context.Context) ([]*models.StatusCount, error)
	Report(ctx context.Context, filter *models.ReceiptReportFilter) ([]*models.GoodsReceipt, error)
}

type goodsReceiptRepo struct {
	db DB
}

func NewGoodsReceiptRepository(db DB) GoodsReceiptRepository {
	return &goodsReceiptRepo{db: db}
}

const insertReceiptLineQuery = `
	INSERT INTO goods_receipt_lines (id, receipt_id, product_id, quantity, packaging_id, unit_value, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
`

func (r *goodsReceiptRepo) CreateWithLines(ctx context.Context, receipt *models.GoodsReceipt, lines []*models.GoodsReceiptLine) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO goods_receipts (id, invoice_number, receipt_date, supplier, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	_, err = tx.Exec(ctx, query, receipt.ID, receipt.InvoiceNumber, receipt.ReceiptDate, receipt.Supplier, receipt.Status)
	if err != nil {
		return err
	}

	for _, line := range lines {
		_, err = tx.Exec(ctx, insertReceiptLineQuery, line.ID, line.ReceiptID, line.ProductID, line.Quantity, line.PackagingID, line.UnitValue)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// UpdateWithLines replaces the full line set of a receipt. Header update,
// line delete and line reinsert happen inside a single transaction so a
// failed reinsert never leaves the receipt without its lines.
func (r *goodsReceiptRepo) UpdateWithLines(ctx context.Context, receipt *models.GoodsReceipt, lines []*models.GoodsReceiptLine) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE goods_receipts
		SET invoice_number = $1, receipt_date = $2, supplier = $3, status = $4, updated_at = NOW()
		WHERE id = $5
	`
	_, err = tx.Exec(ctx, query, receipt.InvoiceNumber, receipt.ReceiptDate, receipt.Supplier, receipt.Status, receipt.ID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `DELETE FROM goods_receipt_lines WHERE receipt_id = $1`, receipt.ID)
	if err != nil {
		return err
	}

	for _, line := range lines {
		_, err = tx.Exec(ctx, insertReceiptLineQuery, line.ID, line.ReceiptID, line.ProductID, line.Quantity, line.PackagingID, line.UnitValue)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *goodsReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.GoodsReceipt, error) {
	receipt := &models.GoodsReceipt{}
	query := `
		SELECT id, invoice_number, receipt_date, supplier, status, created_at, updated_at
		FROM goods_receipts
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&receipt.ID, &receipt.InvoiceNumber, &receipt.ReceiptDate, &receipt.Supplier, &receipt.Status, &receipt.CreatedAt, &receipt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func (r *goodsReceiptRepo) List(ctx context.Context, limit, offset int) ([]*models.GoodsReceipt, error) {
	query := `
		SELECT id, invoice_number, receipt_date, supplier, status, created_at, updated_at
		FROM goods_receipts
		ORDER BY receipt_date DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []*models.GoodsReceipt
	for rows.Next() {
		receipt := &models.GoodsReceipt{}
		if err := rows.Scan(&receipt.ID, &receipt.InvoiceNumber, &receipt.ReceiptDate, &receipt.Supplier, &receipt.Status, &receipt.CreatedAt, &receipt.UpdatedAt); err != nil {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}

func (r *goodsReceiptRepo) ListLines(ctx context.Context, receiptID uuid.UUID) ([]*models.GoodsReceiptLine, error) {
	query := `
		SELECT id, receipt_id, product_id, quantity, packaging_id, unit_value, created_at, updated_at
		FROM goods_receipt_lines
		WHERE receipt_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, receiptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []*models.GoodsReceiptLine
	for rows.Next() {
		line := &models.GoodsReceiptLine{}
		if err := rows.Scan(&line.ID, &line.ReceiptID, &line.ProductID, &line.Quantity, &line.PackagingID, &line.UnitValue, &line.CreatedAt, &line.UpdatedAt); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (r *goodsReceiptRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE goods_receipts
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, status, id)
	return err
}

func (r *goodsReceiptRepo) CountByStatus(ctx context.Context) ([]*models.StatusCount, error) {
	query := `
		SELECT status, COUNT(*)
		FROM goods_receipts
		GROUP BY status
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []*models.StatusCount
	for rows.Next() {
		count := &models.StatusCount{}
		if err := rows.Scan(&count.Status, &count.Count); err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}
	return counts, nil
}

func (r *goodsReceiptRepo) Report(ctx context.Context, filter *models.ReceiptReportFilter) ([]*models.GoodsReceipt, error) {
	query := `
		SELECT id, invoice_number, receipt_date, supplier, status, created_at, updated_at
		FROM goods_receipts
		WHERE ($1::timestamptz IS NULL OR receipt_date >= $1)
		  AND ($2::timestamptz IS NULL OR receipt_date <= $2)
		ORDER BY receipt_date DESC
	`
	rows, err := r.db.Query(ctx, query, filter.DateStart, filter.DateEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []*models.GoodsReceipt
	for rows.Next() {
		receipt := &models.GoodsReceipt{}
		if err := rows.Scan(&receipt.ID, &receipt.InvoiceNumber, &receipt.ReceiptDate, &receipt.Supplier, &receipt.Status, &receipt.CreatedAt, &receipt.UpdatedAt); err != nil {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}
