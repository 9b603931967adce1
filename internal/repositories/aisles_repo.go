package repositories

import (
	"context"

	"wms2/internal/models"

	"github.com/google/uuid"
)

type AisleRepository interface {
	Create(ctx context.Context, aisle *models.Aisle) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Aisle, error)
	Update(ctx context.Context, aisle *models.Aisle) error
	List(ctx context.Context, limit, offset int) ([]*models.Aisle, error)
	ListByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]*models.Aisle, error)
}

type aisleRepo struct {
	db DBTX
}

func NewAisleRepository(db DBTX) AisleRepository {
	return &aisleRepo{db: db}
}

func (r *aisleRepo) Create(ctx context.Context, aisle *models.Aisle) error {
	query := `
		INSERT INTO aisles (id, name, warehouse_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, aisle.ID, aisle.Name, aisle.WarehouseID)
	return err
}

func (r *aisleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Aisle, error) {
	aisle := &models.Aisle{}
	query := `
		SELECT id, name, warehouse_id, created_at, updated_at
		FROM aisles
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&aisle.ID, &aisle.Name, &aisle.WarehouseID, &aisle.CreatedAt, &aisle.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return aisle, nil
}

func (r *aisleRepo) Update(ctx context.Context, aisle *models.Aisle) error {
	query := `
		UPDATE aisles
		SET name = $1, warehouse_id = $2, updated_at = NOW()
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, aisle.Name, aisle.WarehouseID, aisle.ID)
	return err
}

func (r *aisleRepo) List(ctx context.Context, limit, offset int) ([]*models.Aisle, error) {
	query := `
		SELECT id, name, warehouse_id, created_at, updated_at
		FROM aisles
		ORDER BY name
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var aisles []*models.Aisle
	for rows.Next() {
		aisle := &models.Aisle{}
		if err := rows.Scan(&aisle.ID, &aisle.Name, &aisle.WarehouseID, &aisle.CreatedAt, &aisle.UpdatedAt); err != nil {
			return nil, err
		}
		aisles = append(aisles, aisle)
	}
	return aisles, nil
}

func (r *aisleRepo) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]*models.Aisle, error) {
	query := `
		SELECT id, name, warehouse_id, created_at, updated_at
		FROM aisles
		WHERE warehouse_id = $1
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var aisles []*models.Aisle
	for rows.Next() {
		aisle := &models.Aisle{}
		if err := rows.Scan(&aisle.ID, &aisle.Name, &aisle.WarehouseID, &aisle.CreatedAt, &aisle.UpdatedAt); err != nil {
			return nil, err
		}
		aisles = append(aisles, aisle)
	}
	return aisles, nil
}
