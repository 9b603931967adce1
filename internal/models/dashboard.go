package models

type WarehouseQuantity struct {
	WarehouseName string `json:"warehouse_name"`
	Quantity      int    `json:"quantity"`
}

type StatusQuantity struct {
	Description string `json:"description"`
	Color       string `json:"color"`
	Quantity    int    `json:"quantity"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type DashboardSummary struct {
	TotalProducts      int                  `json:"total_products"`
	TotalAssignments   int                  `json:"total_assignments"`
	TotalStockQuantity int                  `json:"total_stock_quantity"`
	DamagedQuantity    int                  `json:"damaged_quantity"`
	PendingReceipts    int                  `json:"pending_receipts"`
	StockByWarehouse   []*WarehouseQuantity `json:"stock_by_warehouse"`
	StockByStatus      []*StatusQuantity    `json:"stock_by_status"`
	ReceiptsByStatus   []*StatusCount       `json:"receipts_by_status"`
}
