package repository

import (
	"context"
	"errors"

	"github.com/Kryptamyr/Packer-Tracker/internal/domain/entity"
	domainRepo "github.com/Kryptamyr/Packer-Tracker/internal/domain/repository"

	"gorm.io/gorm"
)

type packerOrderRepository struct {
	db *gorm.DB
}

func NewPackerOrderRepository(db *gorm.DB) domainRepo.PackerOrderRepository {
	return &packerOrderRepository{db: db}
}

func (r *packerOrderRepository) Create(ctx context.Context, order *entity.PackerOrder) error {
	err := r.db.WithContext(ctx).Create(order).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainRepo.ErrDuplicateOrderNumber
	}
	return err
}

func (r *packerOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.PackerOrder, error) {
	var order entity.PackerOrder
	err := r.db.WithContext(ctx).Where("order_number = ?", orderNumber).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *packerOrderRepository) FindAll(ctx context.Context) ([]entity.PackerOrder, error) {
	var orders []entity.PackerOrder
	if err := r.db.WithContext(ctx).Order("recorded_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *packerOrderRepository) FindRecent(ctx context.Context, limit int) ([]entity.PackerOrder, error) {
	var orders []entity.PackerOrder
	if err := r.db.WithContext(ctx).Order("recorded_at DESC").Limit(limit).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *packerOrderRepository) FindByPackerName(ctx context.Context, packerName string) ([]entity.PackerOrder, error) {
	var orders []entity.PackerOrder
	err := r.db.WithContext(ctx).
		Where("LOWER(packer_name) = LOWER(?)", packerName).
		Order("recorded_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *packerOrderRepository) Statistics(ctx context.Context) ([]entity.PackerStatistics, error) {
	var stats []entity.PackerStatistics
	err := r.db.WithContext(ctx).Model(&entity.PackerOrder{}).
		Select("packer_name, COUNT(*) AS total_orders, MAX(recorded_at) AS last_recorded_at").
		Group("packer_name").
		Order("packer_name ASC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *packerOrderRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.PackerOrder{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
