package usecase

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/Kryptamyr/Packer-Tracker/internal/domain/entity"
	"github.com/Kryptamyr/Packer-Tracker/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// memoryOrderRepo implements PackerOrderRepository for usecase tests.
type memoryOrderRepo struct {
	orders []entity.PackerOrder

	// createErr, when set, is returned by Create once and then cleared.
	createErr error
	findErr   error
}

var _ repository.PackerOrderRepository = (*memoryOrderRepo)(nil)

func (r *memoryOrderRepo) Create(ctx context.Context, order *entity.PackerOrder) error {
	if r.createErr != nil {
		err := r.createErr
		r.createErr = nil
		return err
	}
	for _, o := range r.orders {
		if o.OrderNumber == order.OrderNumber {
			return repository.ErrDuplicateOrderNumber
		}
	}
	order.ID = uuid.New()
	r.orders = append(r.orders, *order)
	return nil
}

func (r *memoryOrderRepo) FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.PackerOrder, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, o := range r.orders {
		if o.OrderNumber == orderNumber {
			found := o
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memoryOrderRepo) newestFirst() []entity.PackerOrder {
	out := append([]entity.PackerOrder(nil), r.orders...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].RecordedAt.After(out[j].RecordedAt) })
	return out
}

func (r *memoryOrderRepo) FindAll(ctx context.Context) ([]entity.PackerOrder, error) {
	return r.newestFirst(), nil
}

func (r *memoryOrderRepo) FindRecent(ctx context.Context, limit int) ([]entity.PackerOrder, error) {
	out := r.newestFirst()
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memoryOrderRepo) FindByPackerName(ctx context.Context, packerName string) ([]entity.PackerOrder, error) {
	var out []entity.PackerOrder
	for _, o := range r.newestFirst() {
		if strings.EqualFold(o.PackerName, packerName) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memoryOrderRepo) Statistics(ctx context.Context) ([]entity.PackerStatistics, error) {
	byName := map[string]*entity.PackerStatistics{}
	var stats []entity.PackerStatistics
	var order []string
	for _, o := range r.orders {
		s, ok := byName[o.PackerName]
		if !ok {
			s = &entity.PackerStatistics{PackerName: o.PackerName}
			byName[o.PackerName] = s
			order = append(order, o.PackerName)
		}
		s.TotalOrders++
		if o.RecordedAt.After(s.LastRecordedAt) {
			s.LastRecordedAt = o.RecordedAt
		}
	}
	for _, name := range order {
		stats = append(stats, *byName[name])
	}
	return stats, nil
}

func (r *memoryOrderRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.orders)), nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
