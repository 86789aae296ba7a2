package converter

import (
	"github.com/Kryptamyr/Packer-Tracker/internal/delivery/dto"
	"github.com/Kryptamyr/Packer-Tracker/internal/domain/entity"
)

// PackerOrderToResponse converts a PackerOrder entity to PackerOrderResponse DTO
func PackerOrderToResponse(order *entity.PackerOrder) *dto.PackerOrderResponse {
	if order == nil {
		return nil
	}

	return &dto.PackerOrderResponse{
		ID:          order.ID,
		PackerName:  order.PackerName,
		OrderNumber: order.OrderNumber,
		OrderDate:   order.OrderDate(),
		RecordedAt:  order.RecordedAt,
	}
}

// PackerOrdersToListResponse converts a slice of PackerOrder entities to a list DTO
func PackerOrdersToListResponse(orders []entity.PackerOrder) *dto.PackerOrderListResponse {
	responses := make([]dto.PackerOrderResponse, len(orders))
	for i := range orders {
		responses[i] = *PackerOrderToResponse(&orders[i])
	}

	return &dto.PackerOrderListResponse{
		Orders: responses,
		Total:  len(responses),
	}
}

func PackerStatisticsToListResponse(stats []entity.PackerStatistics) *dto.PackerStatisticsListResponse {
	responses := make([]dto.PackerStatisticsResponse, len(stats))
	for i, s := range stats {
		responses[i] = dto.PackerStatisticsResponse{
			PackerName:     s.PackerName,
			TotalOrders:    s.TotalOrders,
			LastRecordedAt: s.LastRecordedAt,
		}
	}

	return &dto.PackerStatisticsListResponse{
		Packers: responses,
		Total:   len(responses),
	}
}
