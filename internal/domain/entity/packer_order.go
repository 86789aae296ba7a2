package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderDateLayout is the date format used for table rows and filter bounds.
const OrderDateLayout = "2006-01-02"

// PackerOrder records that a packer completed an order.
type PackerOrder struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PackerName  string    `gorm:"type:varchar(100);not null;index"`
	OrderNumber string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	RecordedAt  time.Time `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (PackerOrder) TableName() string {
	return "packer_orders"
}

// OrderDate returns the day the order was recorded as YYYY-MM-DD.
func (o PackerOrder) OrderDate() string {
	return o.RecordedAt.Format(OrderDateLayout)
}
