package repositories

import (
	"context"

	"wms2/internal/models"

	"github.com/google/uuid"
)

type PackagingRepository interface {
	Create(ctx context.Context, packaging *models.Packaging) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Packaging, error)
	Update(ctx context.Context, packaging *models.Packaging) error
	List(ctx context.Context, limit, offset int) ([]*models.Packaging, error)
}

type packagingRepo struct {
	db DBTX
}

func NewPackagingRepository(db DBTX) PackagingRepository {
	return &packagingRepo{db: db}
}

func (r *packagingRepo) Create(ctx context.Context, packaging *models.Packaging) error {
	query := `
		INSERT INTO packagings (id, name, conversion_factor, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, packaging.ID, packaging.Name, packaging.ConversionFactor)
	return err
}

func (r *packagingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Packaging, error) {
	packaging := &models.Packaging{}
	query := `
		SELECT id, name, conversion_factor, created_at, updated_at
		FROM packagings
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&packaging.ID, &packaging.Name, &packaging.ConversionFactor, &packaging.CreatedAt, &packaging.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return packaging, nil
}

func (r *packagingRepo) Update(ctx context.Context, packaging *models.Packaging) error {
	query := `
		UPDATE packagings
		SET name = $1, conversion_factor = $2, updated_at = NOW()
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, packaging.Name, packaging.ConversionFactor, packaging.ID)
	return err
}

func (r *packagingRepo) List(ctx context.Context, limit, offset int) ([]*models.Packaging, error) {
	query := `
		SELECT id, name, conversion_factor, created_at, updated_at
		FROM packagings
		ORDER BY name
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packagings []*models.Packaging
	for rows.Next() {
		packaging := &models.Packaging{}
		if err := rows.Scan(&packaging.ID, &packaging.Name, &packaging.ConversionFactor, &packaging.CreatedAt, &packaging.UpdatedAt); err != nil {
			return nil, err
		}
		packagings = append(packagings, packaging)
	}
	return packagings, nil
}
