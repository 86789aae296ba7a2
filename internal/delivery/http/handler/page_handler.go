package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Kryptamyr/Packer-Tracker/internal/delivery/dto"
	"github.com/Kryptamyr/Packer-Tracker/internal/delivery/http/middleware"
	"github.com/Kryptamyr/Packer-Tracker/internal/delivery/http/view"
	"github.com/Kryptamyr/Packer-Tracker/internal/domain/entity"
	"github.com/Kryptamyr/Packer-Tracker/internal/orderfilter"
	"github.com/Kryptamyr/Packer-Tracker/internal/service"
	"github.com/Kryptamyr/Packer-Tracker/internal/usecase"

	"github.com/sirupsen/logrus"
)

// PageHandler serves the HTML pages.
type PageHandler struct {
	orderUsecase usecase.PackerOrderUsecase
	flashService service.FlashService
	renderer     *view.Renderer
	log          *logrus.Logger
}

func NewPageHandler(
	orderUsecase usecase.PackerOrderUsecase,
	flashService service.FlashService,
	renderer *view.Renderer,
	log *logrus.Logger,
) *PageHandler {
	return &PageHandler{
		orderUsecase: orderUsecase,
		flashService: flashService,
		renderer:     renderer,
		log:          log,
	}
}

// Index renders the submit form with any pending flash messages.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	page := view.IndexPage{}

	if sessionID, ok := middleware.GetSessionIDFromContext(r.Context()); ok {
		flashes, err := h.flashService.Pop(r.Context(), sessionID)
		if err != nil {
			h.log.Warnf("Failed to load flash messages: %+v", err)
		}
		page.Flashes = flashes
	}

	recent, err := h.orderUsecase.GetRecentOrders(r.Context(), 0)
	if err != nil {
		h.log.Warnf("Failed to load recent orders: %+v", err)
	} else {
		page.RecentOrders = recent.Orders
	}

	h.render(w, http.StatusOK, "index", page)
}

// Submit records a form submission and redirects back to the index.
func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	req := dto.SubmitOrderRequest{
		PackerName:  r.PostForm.Get("packer_name"),
		OrderNumber: r.PostForm.Get("order_number"),
	}

	order, err := h.orderUsecase.SubmitOrder(r.Context(), &req)
	h.flash(r.Context(), submitFlash(order, err))

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func submitFlash(order *dto.PackerOrderResponse, err error) entity.FlashMessage {
	if err == nil {
		return entity.FlashMessage{
			Category: entity.FlashSuccess,
			Message:  fmt.Sprintf("Successfully recorded! Packer %s completed order %s.", order.PackerName, order.OrderNumber),
		}
	}

	var dup *usecase.DuplicateOrderError
	switch {
	case errors.Is(err, usecase.ErrPackerNameRequired):
		return entity.FlashMessage{Category: entity.FlashError, Message: "Please enter a packer name."}
	case errors.Is(err, usecase.ErrOrderNumberRequired):
		return entity.FlashMessage{Category: entity.FlashError, Message: "Please enter an order number."}
	case errors.As(err, &dup):
		return entity.FlashMessage{
			Category: entity.FlashError,
			Message:  fmt.Sprintf("Order number %s has already been recorded by %s.", dup.OrderNumber, dup.PackerName),
		}
	default:
		return entity.FlashMessage{Category: entity.FlashError, Message: fmt.Sprintf("Error saving order: %v", err)}
	}
}

func (h *PageHandler) flash(ctx context.Context, msg entity.FlashMessage) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		return
	}
	if err := h.flashService.Add(ctx, sessionID, msg); err != nil {
		h.log.Warnf("Failed to queue flash message: %+v", err)
	}
}

// Orders renders every order with visibility set by the filter controls in
// the query string. clear=1 resets the controls.
func (h *PageHandler) Orders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderUsecase.GetAllOrders(r.Context())
	if err != nil {
		http.Error(w, "Failed to load orders", http.StatusInternalServerError)
		return
	}

	names, err := h.orderUsecase.GetPackerNames(r.Context())
	if err != nil {
		http.Error(w, "Failed to load packers", http.StatusInternalServerError)
		return
	}

	query := r.URL.Query()
	search := orderfilter.NewField(query.Get("search"))
	packer := orderfilter.NewField(query.Get("packer"))
	start := orderfilter.NewField(query.Get("start"))
	end := orderfilter.NewField(query.Get("end"))
	clearButton := orderfilter.NewButton()

	rows := view.NewOrderRows(orders.Orders)
	status := &view.StatusLine{}

	orderfilter.NewTable(orderfilter.Controls{
		Search:    search,
		Packer:    packer,
		StartDate: start,
		EndDate:   end,
		Clear:     clearButton,
	}, view.RowViews(rows), status)

	if query.Get("clear") != "" {
		clearButton.Click()
	}

	h.render(w, http.StatusOK, "orders", view.OrdersPage{
		Rows:    rows,
		Packers: names.Names,
		Filter: view.FilterValues{
			Search: search.Value(),
			Packer: packerOption(packer.Value(), names.Names),
			Start:  start.Value(),
			End:    end.Value(),
		},
		Status: status.Text,
		Total:  len(rows),
	})
}

// packerOption returns the dropdown entry matching value case-insensitively,
// the same way the table filter compares packers.
func packerOption(value string, names []string) string {
	for _, name := range names {
		if strings.EqualFold(name, value) {
			return name
		}
	}
	return value
}

func (h *PageHandler) render(w http.ResponseWriter, status int, name string, data interface{}) {
	if err := h.renderer.Render(w, status, name, data); err != nil {
		h.log.Errorf("Failed to render page: %+v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
