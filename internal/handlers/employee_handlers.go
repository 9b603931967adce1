package handlers

import (
	"net/http"

	"wms2/internal/common"
	"wms2/internal/models"
	"wms2/internal/services"

	"github.com/labstack/echo/v4"
)

// EmployeeHandlers handles employee HTTP requests
type EmployeeHandlers struct {
	employeeService services.EmployeeService
}

func NewEmployeeHandlers(employeeService services.EmployeeService) *EmployeeHandlers {
	return &EmployeeHandlers{
		employeeService: employeeService,
	}
}

// ListEmployees handles listing employees
func (h *EmployeeHandlers) ListEmployees(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}

	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	employees, err := h.employeeService.List(ctx, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list employees")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"employees": employees,
		"limit":     limit,
		"offset":    offset,
	})
}

// CreateEmployeeRequest represents the employee creation payload
type CreateEmployeeRequest struct {
	Name   string `json:"name" validate:"required"`
	Role   string `json:"role" validate:"required"`
	UserID string `json:"user_id" validate:"required"`
}

// CreateEmployee handles creating a new employee
func (h *EmployeeHandlers) CreateEmployee(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	userID, err := common.ValidateUUID(req.UserID, "user ID")
	if err != nil {
		return common.SendValidationError(c, "user_id", err.Error())
	}

	employee := &models.Employee{
		Name:   req.Name,
		Role:   req.Role,
		UserID: userID,
	}

	if err := h.employeeService.Create(ctx, employee); err != nil {
		return common.SendClientError(c, err.Error())
	}

	return c.JSON(http.StatusCreated, employee)
}

// GetEmployee handles getting employee details by ID
func (h *EmployeeHandlers) GetEmployee(c echo.Context) error {
	ctx := c.Request().Context()

	employeeID, err := common.ValidateUUID(c.Param("id"), "employee ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	employee, err := h.employeeService.GetByID(ctx, employeeID)
	if err != nil {
		return common.SendNotFoundError(c, "Employee")
	}

	return c.JSON(http.StatusOK, employee)
}

// UpdateEmployeeRequest represents the employee update payload
type UpdateEmployeeRequest struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

// UpdateEmployee handles updating employee details
func (h *EmployeeHandlers) UpdateEmployee(c echo.Context) error {
	ctx := c.Request().Context()

	employeeID, err := common.ValidateUUID(c.Param("id"), "employee ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req UpdateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	employee, err := h.employeeService.GetByID(ctx, employeeID)
	if err != nil {
		return common.SendNotFoundError(c, "Employee")
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Role != nil {
		employee.Role = *req.Role
	}

	if err := h.employeeService.Update(ctx, employee); err != nil {
		return common.SendClientError(c, err.Error())
	}

	return c.JSON(http.StatusOK, employee)
}
