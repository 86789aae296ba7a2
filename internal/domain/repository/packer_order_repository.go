package repository

import (
	"context"
	"errors"

	"github.com/Kryptamyr/Packer-Tracker/internal/domain/entity"
)

// ErrDuplicateOrderNumber is returned by Create when the unique index on
// order_number rejects the row.
var ErrDuplicateOrderNumber = errors.New("order number already exists")

type PackerOrderRepository interface {
	Create(ctx context.Context, order *entity.PackerOrder) error
	FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.PackerOrder, error)
	FindAll(ctx context.Context) ([]entity.PackerOrder, error)
	FindRecent(ctx context.Context, limit int) ([]entity.PackerOrder, error)
	FindByPackerName(ctx context.Context, packerName string) ([]entity.PackerOrder, error)
	Statistics(ctx context.Context) ([]entity.PackerStatistics, error)
	Count(ctx context.Context) (int64, error)
}
