package handler

import (
	"context"
	"io"

	"github.com/Kryptamyr/Packer-Tracker/internal/delivery/dto"
	"github.com/Kryptamyr/Packer-Tracker/internal/domain/entity"
	"github.com/Kryptamyr/Packer-Tracker/internal/service"
	"github.com/Kryptamyr/Packer-Tracker/internal/usecase"

	"github.com/sirupsen/logrus"
)

// stubOrderUsecase returns canned results and records the last request.
type stubOrderUsecase struct {
	submitted *dto.SubmitOrderRequest
	submitErr error

	order     *dto.PackerOrderResponse
	searchErr error

	orders     *dto.PackerOrderListResponse
	ordersErr  error
	lastLimit  int
	lastPacker string

	stats *dto.PackerStatisticsListResponse
	names *dto.PackerNamesResponse
}

var _ usecase.PackerOrderUsecase = (*stubOrderUsecase)(nil)

func (s *stubOrderUsecase) SubmitOrder(ctx context.Context, req *dto.SubmitOrderRequest) (*dto.PackerOrderResponse, error) {
	s.submitted = req
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return &dto.PackerOrderResponse{PackerName: req.PackerName, OrderNumber: req.OrderNumber}, nil
}

func (s *stubOrderUsecase) SearchOrder(ctx context.Context, orderNumber string) (*dto.PackerOrderResponse, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.order, nil
}

func (s *stubOrderUsecase) GetRecentOrders(ctx context.Context, limit int) (*dto.PackerOrderListResponse, error) {
	s.lastLimit = limit
	list, err := s.list()
	if err != nil {
		return nil, err
	}

	applied := *list
	applied.Limit = limit
	if applied.Limit < 1 {
		applied.Limit = 10
	}
	return &applied, nil
}

func (s *stubOrderUsecase) GetOrdersByPacker(ctx context.Context, packerName string) (*dto.PackerOrderListResponse, error) {
	s.lastPacker = packerName
	return s.list()
}

func (s *stubOrderUsecase) GetAllOrders(ctx context.Context) (*dto.PackerOrderListResponse, error) {
	return s.list()
}

func (s *stubOrderUsecase) GetPackerStatistics(ctx context.Context) (*dto.PackerStatisticsListResponse, error) {
	if s.stats == nil {
		return &dto.PackerStatisticsListResponse{Packers: []dto.PackerStatisticsResponse{}}, nil
	}
	return s.stats, nil
}

func (s *stubOrderUsecase) GetPackerNames(ctx context.Context) (*dto.PackerNamesResponse, error) {
	if s.names == nil {
		return &dto.PackerNamesResponse{Names: []string{}}, nil
	}
	return s.names, nil
}

func (s *stubOrderUsecase) list() (*dto.PackerOrderListResponse, error) {
	if s.ordersErr != nil {
		return nil, s.ordersErr
	}
	if s.orders == nil {
		return &dto.PackerOrderListResponse{Orders: []dto.PackerOrderResponse{}}, nil
	}
	return s.orders, nil
}

// stubFlashService keeps flash messages per session in memory.
type stubFlashService struct {
	messages map[string][]entity.FlashMessage
}

var _ service.FlashService = (*stubFlashService)(nil)

func newStubFlashService() *stubFlashService {
	return &stubFlashService{messages: make(map[string][]entity.FlashMessage)}
}

func (s *stubFlashService) Add(ctx context.Context, sessionID string, msg entity.FlashMessage) error {
	s.messages[sessionID] = append(s.messages[sessionID], msg)
	return nil
}

func (s *stubFlashService) Pop(ctx context.Context, sessionID string) ([]entity.FlashMessage, error) {
	msgs := s.messages[sessionID]
	delete(s.messages, sessionID)
	return msgs, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
