package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"wms2/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ProductRepoTestSuite struct {
	suite.Suite
	mock      pgxmock.PgxPoolIface
	repo      ProductRepository
	productID uuid.UUID
	context   context.Context
}

func (suite *ProductRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewProductRepository(mock)
	suite.productID = uuid.New()
	suite.context = context.Background()
}

func (suite *ProductRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestProductRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}

func (suite *ProductRepoTestSuite) TestCreate_Success() {
	product := &models.Product{
		ID:            uuid.New(),
		Code:          "SKU-001",
		Name:          "Pallet Wrap",
		Description:   descPtr("Stretch film, 500mm"),
		UnitOfMeasure: "roll",
	}

	suite.mock.ExpectExec(`
		INSERT INTO products \(id, code, name, description, unit_of_measure, created_at, updated_at\)
		VALUES \(\$1, \$2, \$3, \$4, \$5, NOW\(\), NOW\(\)\)
	`).WithArgs(product.ID, product.Code, product.Name, product.Description, product.UnitOfMeasure).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, product)
	assert.NoError(suite.T(), err)
}

func (suite *ProductRepoTestSuite) TestCreate_DatabaseError() {
	product := &models.Product{
		ID:            uuid.New(),
		Code:          "SKU-002",
		Name:          "Shrink Film",
		UnitOfMeasure: "roll",
	}

	suite.mock.ExpectExec(`
		INSERT INTO products \(id, code, name, description, unit_of_measure, created_at, updated_at\)
		VALUES \(\$1, \$2, \$3, \$4, \$5, NOW\(\), NOW\(\)\)
	`).WithArgs(product.ID, product.Code, product.Name, product.Description, product.UnitOfMeasure).
		WillReturnError(errors.New("database connection failed"))

	err := suite.repo.Create(suite.context, product)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "database connection failed")
}

func (suite *ProductRepoTestSuite) TestGetByID_Success() {
	now := time.Now()

	suite.mock.ExpectQuery(`
		SELECT id, code, name, description, unit_of_measure, created_at, updated_at
		FROM products
		WHERE id = \$1
	`).WithArgs(suite.productID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "name", "description", "unit_of_measure", "created_at", "updated_at"}).
			AddRow(suite.productID, "SKU-001", "Pallet Wrap", descPtr("Stretch film"), "roll", now, now))

	result, err := suite.repo.GetByID(suite.context, suite.productID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.productID, result.ID)
	assert.Equal(suite.T(), "SKU-001", result.Code)
	assert.Equal(suite.T(), "Pallet Wrap", result.Name)
}

func (suite *ProductRepoTestSuite) TestGetByID_NotFound() {
	suite.mock.ExpectQuery(`
		SELECT id, code, name, description, unit_of_measure, created_at, updated_at
		FROM products
		WHERE id = \$1
	`).WithArgs(suite.productID).
		WillReturnError(pgx.ErrNoRows)

	result, err := suite.repo.GetByID(suite.context, suite.productID)
	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
	assert.Nil(suite.T(), result)
}

func (suite *ProductRepoTestSuite) TestGetByCode_Success() {
	now := time.Now()

	suite.mock.ExpectQuery(`
		SELECT id, code, name, description, unit_of_measure, created_at, updated_at
		FROM products
		WHERE code = \$1
	`).WithArgs("SKU-003").
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "name", "description", "unit_of_measure", "created_at", "updated_at"}).
			AddRow(uuid.New(), "SKU-003", "Corner Board", descPtr("Edge protector"), "unit", now, now))

	result, err := suite.repo.GetByCode(suite.context, "SKU-003")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "SKU-003", result.Code)
}

func (suite *ProductRepoTestSuite) TestSearch_MatchesNameOrCode() {
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "code", "name", "description", "unit_of_measure", "created_at", "updated_at"}).
		AddRow(uuid.New(), "WRAP-01", "Pallet Wrap", descPtr("Stretch film"), "roll", now, now).
		AddRow(uuid.New(), "SKU-044", "Wrap Dispenser", descPtr("Handheld"), "unit", now, now)

	suite.mock.ExpectQuery(`
		SELECT id, code, name, description, unit_of_measure, created_at, updated_at
		FROM products
		WHERE name ILIKE \$1 OR code ILIKE \$1
		ORDER BY name
		LIMIT \$2 OFFSET \$3
	`).WithArgs("%wrap%", 50, 0).
		WillReturnRows(rows)

	result, err := suite.repo.Search(suite.context, "wrap", 50, 0)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
	assert.Equal(suite.T(), "Pallet Wrap", result[0].Name)
	assert.Equal(suite.T(), "Wrap Dispenser", result[1].Name)
}

func (suite *ProductRepoTestSuite) TestList_EmptyResult() {
	rows := pgxmock.NewRows([]string{"id", "code", "name", "description", "unit_of_measure", "created_at", "updated_at"})

	suite.mock.ExpectQuery(`
		SELECT id, code, name, description, unit_of_measure, created_at, updated_at
		FROM products
		ORDER BY name
		LIMIT \$1 OFFSET \$2
	`).WithArgs(10, 0).
		WillReturnRows(rows)

	result, err := suite.repo.List(suite.context, 10, 0)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), result)
}

func (suite *ProductRepoTestSuite) TestCount_Success() {
	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

	count, err := suite.repo.Count(suite.context)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 42, count)
}

// Helper function to create string pointer
func descPtr(s string) *string {
	return &s
}
