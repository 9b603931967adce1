package services

import (
	"context"
	"errors"

	"wms2/internal/models"
	"wms2/internal/repositories"

	"github.com/google/uuid"
)

type EmployeeService interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Employee, error)
	Update(ctx context.Context, employee *models.Employee) error
	List(ctx context.Context, limit, offset int) ([]*models.Employee, error)
}

type employeeService struct {
	employeeRepo repositories.EmployeeRepository
	userRepo     repositories.UserRepository
}

func NewEmployeeService(employeeRepo repositories.EmployeeRepository, userRepo repositories.UserRepository) EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
	}
}

func (s *employeeService) Create(ctx context.Context, employee *models.Employee) error {
	if employee.Name == "" {
		return errors.New("employee name is required")
	}

	if employee.Role == "" {
		return errors.New("employee role is required")
	}

	if _, err := s.userRepo.GetByID(ctx, employee.UserID); err != nil {
		return errors.New("linked user account not found")
	}

	employee.ID = uuid.New()

	return s.employeeRepo.Create(ctx, employee)
}

func (s *employeeService) GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *employeeService) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Employee, error) {
	return s.employeeRepo.GetByUserID(ctx, userID)
}

func (s *employeeService) Update(ctx context.Context, employee *models.Employee) error {
	if employee.Name == "" {
		return errors.New("employee name is required")
	}

	if employee.Role == "" {
		return errors.New("employee role is required")
	}

	return s.employeeRepo.Update(ctx, employee)
}

func (s *employeeService) List(ctx context.Context, limit, offset int) ([]*models.Employee, error) {
	return s.employeeRepo.List(ctx, limit, offset)
}
