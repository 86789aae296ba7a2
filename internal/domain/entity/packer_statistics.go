package entity

import "time"

// PackerStatistics aggregates the orders recorded under one packer name.
type PackerStatistics struct {
	PackerName     string
	TotalOrders    int64
	LastRecordedAt time.Time
}
