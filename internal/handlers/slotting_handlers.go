package handlers

import (
	"net/http"
	"time"

	"wms2/internal/common"
	"wms2/internal/models"
	"wms2/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SlottingHandlers handles slot assignment HTTP requests
type SlottingHandlers struct {
	slottingService services.SlottingService
	employeeService services.EmployeeService
}

func NewSlottingHandlers(slottingService services.SlottingService, employeeService services.EmployeeService) *SlottingHandlers {
	return &SlottingHandlers{
		slottingService: slottingService,
		employeeService: employeeService,
	}
}

// ListAssignments handles listing slot assignments with display names
func (h *SlottingHandlers) ListAssignments(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}

	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	assignments, err := h.slottingService.List(ctx, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list slot assignments")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"assignments": assignments,
		"limit":       limit,
		"offset":      offset,
	})
}

// AssignmentRequest represents the slot assignment create and update payload
type AssignmentRequest struct {
	ProductID    string     `json:"product_id" validate:"required"`
	ReceiptID    *string    `json:"receipt_id"`
	WarehouseID  string     `json:"warehouse_id" validate:"required"`
	AisleID      string     `json:"aisle_id" validate:"required"`
	BinID        string     `json:"bin_id" validate:"required"`
	Quantity     int        `json:"quantity" validate:"required"`
	StatusID     string     `json:"status_id" validate:"required"`
	RegisteredAt *time.Time `json:"registered_at"`
}

func (r *AssignmentRequest) toModel() (*models.SlotAssignment, error) {
	productID, err := common.ValidateUUID(r.ProductID, "product ID")
	if err != nil {
		return nil, err
	}
	warehouseID, err := common.ValidateUUID(r.WarehouseID, "warehouse ID")
	if err != nil {
		return nil, err
	}
	aisleID, err := common.ValidateUUID(r.AisleID, "aisle ID")
	if err != nil {
		return nil, err
	}
	binID, err := common.ValidateUUID(r.BinID, "bin ID")
	if err != nil {
		return nil, err
	}
	statusID, err := common.ValidateUUID(r.StatusID, "status ID")
	if err != nil {
		return nil, err
	}

	var receiptID *uuid.UUID
	if r.ReceiptID != nil && *r.ReceiptID != "" {
		id, err := common.ValidateUUID(*r.ReceiptID, "receipt ID")
		if err != nil {
			return nil, err
		}
		receiptID = &id
	}

	assignment := &models.SlotAssignment{
		ProductID:   productID,
		ReceiptID:   receiptID,
		WarehouseID: warehouseID,
		AisleID:     aisleID,
		BinID:       binID,
		Quantity:    r.Quantity,
		StatusID:    statusID,
	}
	if r.RegisteredAt != nil {
		assignment.RegisteredAt = *r.RegisteredAt
	}
	return assignment, nil
}

// CreateAssignment handles registering stock at a location
func (h *SlottingHandlers) CreateAssignment(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}

	// Assignments are registered by the employee record, not the login account
	employee, err := h.employeeService.GetByUserID(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No employee record for the authenticated user")
	}

	var req AssignmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	assignment, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	assignment.RegisteredBy = employee.ID

	if err := h.slottingService.Create(ctx, assignment); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, assignment)
}

// GetAssignment handles getting slot assignment details by ID
func (h *SlottingHandlers) GetAssignment(c echo.Context) error {
	ctx := c.Request().Context()

	assignmentID, err := common.ValidateUUID(c.Param("id"), "assignment ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	assignment, err := h.slottingService.GetByID(ctx, assignmentID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Slot assignment not found")
	}

	return c.JSON(http.StatusOK, assignment)
}

// UpdateAssignment handles moving or correcting a slot assignment
func (h *SlottingHandlers) UpdateAssignment(c echo.Context) error {
	ctx := c.Request().Context()

	assignmentID, err := common.ValidateUUID(c.Param("id"), "assignment ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	existing, err := h.slottingService.GetByID(ctx, assignmentID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Slot assignment not found")
	}

	var req AssignmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	assignment, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	assignment.ID = assignmentID
	assignment.RegisteredBy = existing.RegisteredBy
	if assignment.RegisteredAt.IsZero() {
		assignment.RegisteredAt = existing.RegisteredAt
	}

	if err := h.slottingService.Update(ctx, assignment); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, assignment)
}
