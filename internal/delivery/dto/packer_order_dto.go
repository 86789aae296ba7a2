package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type SubmitOrderRequest struct {
	PackerName  string `json:"packer_name" validate:"notblank,max=100"`
	OrderNumber string `json:"order_number" validate:"notblank,max=100"`
}

// Response DTOs

type PackerOrderResponse struct {
	ID          uuid.UUID `json:"id"`
	PackerName  string    `json:"packer_name"`
	OrderNumber string    `json:"order_number"`
	OrderDate   string    `json:"order_date"`
	RecordedAt  time.Time `json:"recorded_at"`
}

type PackerOrderListResponse struct {
	Orders []PackerOrderResponse `json:"orders"`
	Total  int                   `json:"total"`
	// Limit is the row limit applied to recent-order lists.
	Limit int `json:"limit,omitempty"`
}

type PackerStatisticsResponse struct {
	PackerName     string    `json:"packer_name"`
	TotalOrders    int64     `json:"total_orders"`
	LastRecordedAt time.Time `json:"last_recorded_at"`
}

type PackerStatisticsListResponse struct {
	Packers []PackerStatisticsResponse `json:"packers"`
	Total   int                        `json:"total"`
}

type PackerNamesResponse struct {
	Names []string `json:"names"`
}

type LegacyImportResponse struct {
	Imported   int `json:"imported"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped"`
}
