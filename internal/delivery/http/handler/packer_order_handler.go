package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Kryptamyr/Packer-Tracker/internal/delivery/dto"
	"github.com/Kryptamyr/Packer-Tracker/internal/usecase"
	"github.com/Kryptamyr/Packer-Tracker/pkg/response"
	"github.com/Kryptamyr/Packer-Tracker/pkg/validator"

	"github.com/gorilla/mux"
)

type PackerOrderHandler struct {
	orderUsecase usecase.PackerOrderUsecase
	validator    *validator.CustomValidator
}

func NewPackerOrderHandler(orderUsecase usecase.PackerOrderUsecase, validator *validator.CustomValidator) *PackerOrderHandler {
	return &PackerOrderHandler{
		orderUsecase: orderUsecase,
		validator:    validator,
	}
}

// SubmitOrder handles POST /orders
func (h *PackerOrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.orderUsecase.SubmitOrder(r.Context(), &req)
	if err != nil {
		var dup *usecase.DuplicateOrderError
		switch {
		case errors.As(err, &dup):
			response.Conflict(w, "Order number "+dup.OrderNumber+" has already been recorded by "+dup.PackerName)
		case errors.Is(err, usecase.ErrPackerNameRequired), errors.Is(err, usecase.ErrOrderNumberRequired):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to record order")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Order recorded successfully", order)
}

// GetAllOrders handles GET /orders
func (h *PackerOrderHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderUsecase.GetAllOrders(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get orders")
		return
	}

	response.Success(w, http.StatusOK, "Orders retrieved successfully", orders)
}

// GetRecentOrders handles GET /orders/recent?limit=N
func (h *PackerOrderHandler) GetRecentOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	orders, err := h.orderUsecase.GetRecentOrders(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get recent orders")
		return
	}

	meta := &response.Meta{
		Limit: orders.Limit,
		Total: int64(orders.Total),
	}

	response.SuccessWithMeta(w, http.StatusOK, "Recent orders retrieved successfully", orders, meta)
}

// SearchOrder handles GET /orders/{orderNumber}
func (h *PackerOrderHandler) SearchOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber := mux.Vars(r)["orderNumber"]

	order, err := h.orderUsecase.SearchOrder(r.Context(), orderNumber)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			response.NotFound(w, "Order not found")
		case errors.Is(err, usecase.ErrOrderNumberRequired):
			response.Error(w, http.StatusBadRequest, "Order number is required", nil)
		default:
			response.InternalServerError(w, "Failed to search order")
		}
		return
	}

	response.Success(w, http.StatusOK, "Order retrieved successfully", order)
}

// GetPackerNames handles GET /packers
func (h *PackerOrderHandler) GetPackerNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.orderUsecase.GetPackerNames(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get packers")
		return
	}

	response.Success(w, http.StatusOK, "Packers retrieved successfully", names)
}

// GetPackerStatistics handles GET /packers/stats
func (h *PackerOrderHandler) GetPackerStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.orderUsecase.GetPackerStatistics(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get packer statistics")
		return
	}

	response.Success(w, http.StatusOK, "Packer statistics retrieved successfully", stats)
}

// GetOrdersByPacker handles GET /packers/{name}/orders
func (h *PackerOrderHandler) GetOrdersByPacker(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	orders, err := h.orderUsecase.GetOrdersByPacker(r.Context(), name)
	if err != nil {
		response.InternalServerError(w, "Failed to get orders")
		return
	}

	response.Success(w, http.StatusOK, "Orders retrieved successfully", orders)
}
