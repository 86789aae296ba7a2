package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Kryptamyr/Packer-Tracker/internal/converter"
	"github.com/Kryptamyr/Packer-Tracker/internal/delivery/dto"
	"github.com/Kryptamyr/Packer-Tracker/internal/domain/entity"
	"github.com/Kryptamyr/Packer-Tracker/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrPackerNameRequired   = errors.New("packer name is required")
	ErrOrderNumberRequired  = errors.New("order number is required")
	ErrOrderAlreadyRecorded = errors.New("order already recorded")
	ErrOrderNotFound        = errors.New("order not found")
)

// DuplicateOrderError reports the packer who already recorded an order.
// It matches ErrOrderAlreadyRecorded with errors.Is.
type DuplicateOrderError struct {
	OrderNumber string
	PackerName  string
}

func (e *DuplicateOrderError) Error() string {
	return fmt.Sprintf("order number %s has already been recorded by %s", e.OrderNumber, e.PackerName)
}

func (e *DuplicateOrderError) Is(target error) bool {
	return target == ErrOrderAlreadyRecorded
}

type PackerOrderUsecase interface {
	SubmitOrder(ctx context.Context, req *dto.SubmitOrderRequest) (*dto.PackerOrderResponse, error)
	SearchOrder(ctx context.Context, orderNumber string) (*dto.PackerOrderResponse, error)
	GetRecentOrders(ctx context.Context, limit int) (*dto.PackerOrderListResponse, error)
	GetOrdersByPacker(ctx context.Context, packerName string) (*dto.PackerOrderListResponse, error)
	GetAllOrders(ctx context.Context) (*dto.PackerOrderListResponse, error)
	GetPackerStatistics(ctx context.Context) (*dto.PackerStatisticsListResponse, error)
	GetPackerNames(ctx context.Context) (*dto.PackerNamesResponse, error)
}

type packerOrderUsecase struct {
	log         *logrus.Logger
	orderRepo   repository.PackerOrderRepository
	recentLimit int
	now         func() time.Time
}

func NewPackerOrderUsecase(log *logrus.Logger, orderRepo repository.PackerOrderRepository, recentLimit int) PackerOrderUsecase {
	if recentLimit < 1 {
		recentLimit = 10
	}
	return &packerOrderUsecase{
		log:         log,
		orderRepo:   orderRepo,
		recentLimit: recentLimit,
		now:         time.Now,
	}
}

func (u *packerOrderUsecase) SubmitOrder(ctx context.Context, req *dto.SubmitOrderRequest) (*dto.PackerOrderResponse, error) {
	packerName := strings.TrimSpace(req.PackerName)
	orderNumber := strings.TrimSpace(req.OrderNumber)

	if packerName == "" {
		return nil, ErrPackerNameRequired
	}
	if orderNumber == "" {
		return nil, ErrOrderNumberRequired
	}

	existing, err := u.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		u.log.Warnf("Failed to find order: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, &DuplicateOrderError{OrderNumber: orderNumber, PackerName: existing.PackerName}
	}

	order := &entity.PackerOrder{
		PackerName:  packerName,
		OrderNumber: orderNumber,
		RecordedAt:  u.now().UTC(),
	}

	if err := u.orderRepo.Create(ctx, order); err != nil {
		if errors.Is(err, repository.ErrDuplicateOrderNumber) {
			return nil, u.duplicateOf(ctx, orderNumber)
		}
		u.log.Warnf("Failed to create order: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"packer_name":  order.PackerName,
		"order_number": order.OrderNumber,
	}).Info("Order recorded")

	return converter.PackerOrderToResponse(order), nil
}

// duplicateOf builds the duplicate error for an order that another request
// inserted between our lookup and insert.
func (u *packerOrderUsecase) duplicateOf(ctx context.Context, orderNumber string) error {
	dup := &DuplicateOrderError{OrderNumber: orderNumber}
	existing, err := u.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		u.log.Warnf("Failed to find order after duplicate insert: %+v", err)
		return dup
	}
	if existing != nil {
		dup.PackerName = existing.PackerName
	}
	return dup
}

func (u *packerOrderUsecase) SearchOrder(ctx context.Context, orderNumber string) (*dto.PackerOrderResponse, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, ErrOrderNumberRequired
	}

	order, err := u.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		u.log.Warnf("Failed to find order: %+v", err)
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	return converter.PackerOrderToResponse(order), nil
}

func (u *packerOrderUsecase) GetRecentOrders(ctx context.Context, limit int) (*dto.PackerOrderListResponse, error) {
	if limit < 1 {
		limit = u.recentLimit
	}

	orders, err := u.orderRepo.FindRecent(ctx, limit)
	if err != nil {
		u.log.Warnf("Failed to find recent orders: %+v", err)
		return nil, err
	}

	resp := converter.PackerOrdersToListResponse(orders)
	resp.Limit = limit
	return resp, nil
}

func (u *packerOrderUsecase) GetOrdersByPacker(ctx context.Context, packerName string) (*dto.PackerOrderListResponse, error) {
	packerName = strings.TrimSpace(packerName)
	if packerName == "" {
		return converter.PackerOrdersToListResponse(nil), nil
	}

	orders, err := u.orderRepo.FindByPackerName(ctx, packerName)
	if err != nil {
		u.log.Warnf("Failed to find orders by packer: %+v", err)
		return nil, err
	}

	return converter.PackerOrdersToListResponse(orders), nil
}

func (u *packerOrderUsecase) GetAllOrders(ctx context.Context) (*dto.PackerOrderListResponse, error) {
	orders, err := u.orderRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all orders: %+v", err)
		return nil, err
	}

	return converter.PackerOrdersToListResponse(orders), nil
}

func (u *packerOrderUsecase) GetPackerStatistics(ctx context.Context) (*dto.PackerStatisticsListResponse, error) {
	stats, err := u.orderRepo.Statistics(ctx)
	if err != nil {
		u.log.Warnf("Failed to load packer statistics: %+v", err)
		return nil, err
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].PackerName < stats[j].PackerName
	})

	return converter.PackerStatisticsToListResponse(stats), nil
}

func (u *packerOrderUsecase) GetPackerNames(ctx context.Context) (*dto.PackerNamesResponse, error) {
	stats, err := u.GetPackerStatistics(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(stats.Packers))
	for i, s := range stats.Packers {
		names[i] = s.PackerName
	}

	return &dto.PackerNamesResponse{Names: names}, nil
}
