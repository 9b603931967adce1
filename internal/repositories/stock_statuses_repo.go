package repositories

import (
	"context"

	"wms2/internal/models"

	"github.com/google/uuid"
)

type StockStatusRepository interface {
	Create(ctx context.Context, status *models.StockStatus) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.StockStatus, error)
	Update(ctx context.Context, status *models.StockStatus) error
	List(ctx context.Context, limit, offset int) ([]*models.StockStatus, error)
}

type stockStatusRepo struct {
	db DBTX
}

func NewStockStatusRepository(db DBTX) StockStatusRepository {
	return &stockStatusRepo{db: db}
}

func (r *stockStatusRepo) Create(ctx context.Context, status *models.StockStatus) error {
	query := `
		INSERT INTO stock_statuses (id, description, color, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, status.ID, status.Description, status.Color)
	return err
}

func (r *stockStatusRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.StockStatus, error) {
	status := &models.StockStatus{}
	query := `
		SELECT id, description, color, created_at, updated_at
		FROM stock_statuses
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&status.ID, &status.Description, &status.Color, &status.CreatedAt, &status.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return status, nil
}

func (r *stockStatusRepo) Update(ctx context.Context, status *models.StockStatus) error {
	query := `
		UPDATE stock_statuses
		SET description = $1, color = $2, updated_at = NOW()
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, status.Description, status.Color, status.ID)
	return err
}

func (r *stockStatusRepo) List(ctx context.Context, limit, offset int) ([]*models.StockStatus, error) {
	query := `
		SELECT id, description, color, created_at, updated_at
		FROM stock_statuses
		ORDER BY description
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []*models.StockStatus
	for rows.Next() {
		status := &models.StockStatus{}
		if err := rows.Scan(&status.ID, &status.Description, &status.Color, &status.CreatedAt, &status.UpdatedAt); err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
