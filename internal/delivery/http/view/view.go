// Package view renders the HTML pages of the tracker.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/Kryptamyr/Packer-Tracker/internal/delivery/dto"
	"github.com/Kryptamyr/Packer-Tracker/internal/domain/entity"
	"github.com/Kryptamyr/Packer-Tracker/internal/orderfilter"
)

//go:embed templates/*.html
var templateFS embed.FS

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

// Render executes the named template into a buffer first so a failing
// template never leaves a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

type IndexPage struct {
	Flashes      []entity.FlashMessage
	RecentOrders []dto.PackerOrderResponse
}

// FilterValues are the control values the orders page is rendered with.
type FilterValues struct {
	Search string
	Packer string
	Start  string
	End    string
}

type OrdersPage struct {
	Rows    []*OrderRow
	Packers []string
	Filter  FilterValues
	Status  string
	Total   int
}

// OrderRow is one table row. It implements orderfilter.RowView.
type OrderRow struct {
	ID          string
	OrderNumber string
	PackerName  string
	OrderDate   string
	RecordedAt  string
	Hidden      bool
}

func (r *OrderRow) Row() orderfilter.Row {
	return orderfilter.Row{
		ID:          r.ID,
		OrderNumber: r.OrderNumber,
		PackerName:  r.PackerName,
		OrderDate:   r.OrderDate,
	}
}

func (r *OrderRow) SetVisible(visible bool) {
	r.Hidden = !visible
}

// NewOrderRows builds the table rows, all initially visible.
func NewOrderRows(orders []dto.PackerOrderResponse) []*OrderRow {
	rows := make([]*OrderRow, len(orders))
	for i, o := range orders {
		rows[i] = &OrderRow{
			ID:          o.ID.String(),
			OrderNumber: o.OrderNumber,
			PackerName:  o.PackerName,
			OrderDate:   o.OrderDate,
			RecordedAt:  o.RecordedAt.Format("2006-01-02 15:04:05"),
		}
	}
	return rows
}

// RowViews adapts rows for orderfilter.NewTable.
func RowViews(rows []*OrderRow) []orderfilter.RowView {
	views := make([]orderfilter.RowView, len(rows))
	for i, r := range rows {
		views[i] = r
	}
	return views
}

// StatusLine captures the results-count text for the template.
type StatusLine struct {
	Text string
}

func (s *StatusLine) SetText(text string) {
	s.Text = text
}
