package http

import (
	"net/http"

	"github.com/Kryptamyr/Packer-Tracker/internal/delivery/http/handler"
	"github.com/Kryptamyr/Packer-Tracker/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	pageHandler        *handler.PageHandler
	packerOrderHandler *handler.PackerOrderHandler
	sessionMiddleware  *middleware.SessionMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	pageHandler *handler.PageHandler,
	packerOrderHandler *handler.PackerOrderHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		pageHandler:        pageHandler,
		packerOrderHandler: packerOrderHandler,
		sessionMiddleware:  sessionMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Order routes. /orders/recent is registered before /orders/{orderNumber}.
	api.HandleFunc("/orders", r.packerOrderHandler.SubmitOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders", r.packerOrderHandler.GetAllOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders/recent", r.packerOrderHandler.GetRecentOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders/{orderNumber}", r.packerOrderHandler.SearchOrder).Methods(http.MethodGet)

	// Packer routes
	api.HandleFunc("/packers", r.packerOrderHandler.GetPackerNames).Methods(http.MethodGet)
	api.HandleFunc("/packers/stats", r.packerOrderHandler.GetPackerStatistics).Methods(http.MethodGet)
	api.HandleFunc("/packers/{name}/orders", r.packerOrderHandler.GetOrdersByPacker).Methods(http.MethodGet)

	// Pages (session scoped for flash messages)
	pages := r.router.PathPrefix("/").Subrouter()
	pages.Use(r.sessionMiddleware.Handle)
	pages.HandleFunc("/", r.pageHandler.Index).Methods(http.MethodGet)
	pages.HandleFunc("/submit", r.pageHandler.Submit).Methods(http.MethodPost)
	pages.HandleFunc("/orders", r.pageHandler.Orders).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
