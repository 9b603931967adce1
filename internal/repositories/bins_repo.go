package repositories

import (
	"context"

	"wms2/internal/models"

	"github.com/google/uuid"
)

type BinRepository interface {
	Create(ctx context.Context, bin *models.Bin) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Bin, error)
	Update(ctx context.Context, bin *models.Bin) error
	List(ctx context.Context, limit, offset int) ([]*models.Bin, error)
	ListByAisle(ctx context.Context, aisleID uuid.UUID) ([]*models.Bin, error)
}

type binRepo struct {
	db DBTX
}

func NewBinRepository(db DBTX) BinRepository {
	return &binRepo{db: db}
}

func (r *binRepo) Create(ctx context.Context, bin *models.Bin) error {
	query := `
		INSERT INTO bins (id, name, aisle_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, bin.ID, bin.Name, bin.AisleID)
	return err
}

func (r *binRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Bin, error) {
	bin := &models.Bin{}
	query := `
		SELECT id, name, aisle_id, created_at, updated_at
		FROM bins
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&bin.ID, &bin.Name, &bin.AisleID, &bin.CreatedAt, &bin.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return bin, nil
}

func (r *binRepo) Update(ctx context.Context, bin *models.Bin) error {
	query := `
		UPDATE bins
		SET name = $1, aisle_id = $2, updated_at = NOW()
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, bin.Name, bin.AisleID, bin.ID)
	return err
}

func (r *binRepo) List(ctx context.Context, limit, offset int) ([]*models.Bin, error) {
	query := `
		SELECT id, name, aisle_id, created_at, updated_at
		FROM bins
		ORDER BY name
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bins []*models.Bin
	for rows.Next() {
		bin := &models.Bin{}
		if err := rows.Scan(&bin.ID, &bin.Name, &bin.AisleID, &bin.CreatedAt, &bin.UpdatedAt); err != nil {
			return nil, err
		}
		bins = append(bins, bin)
	}
	return bins, nil
}

func (r *binRepo) ListByAisle(ctx context.Context, aisleID uuid.UUID) ([]*models.Bin, error) {
	query := `
		SELECT id, name, aisle_id, created_at, updated_at
		FROM bins
		WHERE aisle_id = $1
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query, aisleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bins []*models.Bin
	for rows.Next() {
		bin := &models.Bin{}
		if err := rows.Scan(&bin.ID, &bin.Name, &bin.AisleID, &bin.CreatedAt, &bin.UpdatedAt); err != nil {
			return nil, err
		}
		bins = append(bins, bin)
	}
	return bins, nil
}
