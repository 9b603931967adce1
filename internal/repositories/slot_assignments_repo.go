package repositories

import (
	"context"

	"wms2/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SlotAssignmentRepository interface {
	Create(ctx context.Context, assignment *models.SlotAssignment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SlotAssignment, error)
	Update(ctx context.Context, assignment *models.SlotAssignment) error
	List(ctx context.Context, limit, offset int) ([]*models.SlotAssignmentView, error)
	StockReport(ctx context.Context, filter *models.StockReportFilter) ([]*models.SlotAssignmentView, error)
	Count(ctx context.Context) (int, error)
	SumByWarehouse(ctx context.Context) ([]*models.WarehouseQuantity, error)
	SumByStatus(ctx context.Context) ([]*models.StatusQuantity, error)
}

type slotAssignmentRepo struct {
	db DBTX
}

func NewSlotAssignmentRepository(db DBTX) SlotAssignmentRepository {
	return &slotAssignmentRepo{db: db}
}

func (r *slotAssignmentRepo) Create(ctx context.Context, assignment *models.SlotAssignment) error {
	query := `
		INSERT INTO slot_assignments (id, product_id, receipt_id, warehouse_id, aisle_id, bin_id, quantity, registered_at, registered_by, status_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		assignment.ID, assignment.ProductID, assignment.ReceiptID, assignment.WarehouseID,
		assignment.AisleID, assignment.BinID, assignment.Quantity, assignment.RegisteredAt,
		assignment.RegisteredBy, assignment.StatusID)
	return err
}

func (r *slotAssignmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.SlotAssignment, error) {
	assignment := &models.SlotAssignment{}
	query := `
		SELECT id, product_id, receipt_id, warehouse_id, aisle_id, bin_id, quantity, registered_at, registered_by, status_id, created_at, updated_at
		FROM slot_assignments
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&assignment.ID, &assignment.ProductID, &assignment.ReceiptID, &assignment.WarehouseID,
		&assignment.AisleID, &assignment.BinID, &assignment.Quantity, &assignment.RegisteredAt,
		&assignment.RegisteredBy, &assignment.StatusID, &assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return assignment, nil
}

func (r *slotAssignmentRepo) Update(ctx context.Context, assignment *models.SlotAssignment) error {
	query := `
		UPDATE slot_assignments
		SET product_id = $1, receipt_id = $2, warehouse_id = $3, aisle_id = $4, bin_id = $5, quantity = $6, status_id = $7, updated_at = NOW()
		WHERE id = $8
	`
	_, err := r.db.Exec(ctx, query,
		assignment.ProductID, assignment.ReceiptID, assignment.WarehouseID, assignment.AisleID,
		assignment.BinID, assignment.Quantity, assignment.StatusID, assignment.ID)
	return err
}

const slotAssignmentViewSelect = `
	SELECT sa.id, sa.product_id, sa.receipt_id, sa.warehouse_id, sa.aisle_id, sa.bin_id,
	       sa.quantity, sa.registered_at, sa.registered_by, sa.status_id, sa.created_at, sa.updated_at,
	       p.name, p.code, w.name, a.name, b.name, ss.description, ss.color
	FROM slot_assignments sa
	JOIN products p ON p.id = sa.product_id
	JOIN warehouses w ON w.id = sa.warehouse_id
	JOIN aisles a ON a.id = sa.aisle_id
	JOIN bins b ON b.id = sa.bin_id
	JOIN stock_statuses ss ON ss.id = sa.status_id
`

func scanSlotAssignmentView(rows pgx.Rows) (*models.SlotAssignmentView, error) {
	view := &models.SlotAssignmentView{}
	err := rows.Scan(
		&view.ID, &view.ProductID, &view.ReceiptID, &view.WarehouseID, &view.AisleID, &view.BinID,
		&view.Quantity, &view.RegisteredAt, &view.RegisteredBy, &view.StatusID, &view.CreatedAt, &view.UpdatedAt,
		&view.ProductName, &view.ProductCode, &view.WarehouseName, &view.AisleName, &view.BinName,
		&view.StatusDesc, &view.StatusColor)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (r *slotAssignmentRepo) List(ctx context.Context, limit, offset int) ([]*models.SlotAssignmentView, error) {
	query := slotAssignmentViewSelect + `
	ORDER BY sa.registered_at DESC
	LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []*models.SlotAssignmentView
	for rows.Next() {
		view, err := scanSlotAssignmentView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *slotAssignmentRepo) StockReport(ctx context.Context, filter *models.StockReportFilter) ([]*models.SlotAssignmentView, error) {
	query := slotAssignmentViewSelect + `
	WHERE ($1::uuid IS NULL OR sa.product_id = $1)
	  AND ($2::uuid IS NULL OR sa.warehouse_id = $2)
	  AND ($3::timestamptz IS NULL OR sa.registered_at >= $3)
	  AND ($4::timestamptz IS NULL OR sa.registered_at <= $4)
	ORDER BY sa.registered_at DESC
	`
	rows, err := r.db.Query(ctx, query, filter.ProductID, filter.WarehouseID, filter.DateStart, filter.DateEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []*models.SlotAssignmentView
	for rows.Next() {
		view, err := scanSlotAssignmentView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *slotAssignmentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM slot_assignments`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *slotAssignmentRepo) SumByWarehouse(ctx context.Context) ([]*models.WarehouseQuantity, error) {
	query := `
		SELECT w.name, COALESCE(SUM(sa.quantity), 0)
		FROM slot_assignments sa
		JOIN warehouses w ON w.id = sa.warehouse_id
		GROUP BY w.name
		ORDER BY w.name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sums []*models.WarehouseQuantity
	for rows.Next() {
		sum := &models.WarehouseQuantity{}
		if err := rows.Scan(&sum.WarehouseName, &sum.Quantity); err != nil {
			return nil, err
		}
		sums = append(sums, sum)
	}
	return sums, nil
}

func (r *slotAssignmentRepo) SumByStatus(ctx context.Context) ([]*models.StatusQuantity, error) {
	query := `
		SELECT ss.description, ss.color, COALESCE(SUM(sa.quantity), 0)
		FROM slot_assignments sa
		JOIN stock_statuses ss ON ss.id = sa.status_id
		GROUP BY ss.description, ss.color
		ORDER BY ss.description
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sums []*models.StatusQuantity
	for rows.Next() {
		sum := &models.StatusQuantity{}
		if err := rows.Scan(&sum.Description, &sum.Color, &sum.Quantity); err != nil {
			return nil, err
		}
		sums = append(sums, sum)
	}
	return sums, nil
}
