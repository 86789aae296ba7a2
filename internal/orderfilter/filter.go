// Package orderfilter decides which rows of the orders table are visible for a
// given combination of search term, packer and date range.
package orderfilter

import (
	"fmt"
	"strings"
)

// Row is one order as rendered in the orders table.
// OrderDate must be zero-padded YYYY-MM-DD so string comparison orders dates.
type Row struct {
	ID          string
	OrderNumber string
	PackerName  string
	OrderDate   string
}

// Criteria is the combined set of filter values. Empty fields match every row.
type Criteria struct {
	SearchTerm     string
	SelectedPacker string
	StartDate      string // inclusive, YYYY-MM-DD
	EndDate        string // inclusive, YYYY-MM-DD
}

// IsEmpty reports whether no criterion is active.
func (c Criteria) IsEmpty() bool {
	return c.SearchTerm == "" && c.SelectedPacker == "" && c.StartDate == "" && c.EndDate == ""
}

// Matches reports whether row satisfies every active criterion.
func Matches(row Row, c Criteria) bool {
	return matchesSearch(row, c.SearchTerm) &&
		matchesPacker(row, c.SelectedPacker) &&
		matchesDate(row, c.StartDate, c.EndDate)
}

func matchesSearch(row Row, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(row.OrderNumber), strings.ToLower(term))
}

func matchesPacker(row Row, packer string) bool {
	if packer == "" {
		return true
	}
	return strings.ToLower(row.PackerName) == strings.ToLower(packer)
}

func matchesDate(row Row, start, end string) bool {
	if start != "" && row.OrderDate < start {
		return false
	}
	if end != "" && row.OrderDate > end {
		return false
	}
	return true
}

// SelectVisibleRows returns the IDs of the rows matching c, in input order.
func SelectVisibleRows(rows []Row, c Criteria) []string {
	visible := make([]string, 0, len(rows))
	for _, row := range rows {
		if Matches(row, c) {
			visible = append(visible, row.ID)
		}
	}
	return visible
}

// StatusText formats the visible-row count shown under the table.
func StatusText(count int) string {
	return fmt.Sprintf("Showing %d orders", count)
}
