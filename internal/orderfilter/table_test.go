package orderfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	row     Row
	visible bool
}

func (r *fakeRow) Row() Row { return r.row }
func (r *fakeRow) SetVisible(visible bool) { r.visible = visible }

func fakeRows(rows []Row) ([]RowView, []*fakeRow) {
	views := make([]RowView, len(rows))
	fakes := make([]*fakeRow, len(rows))
	for i, r := range rows {
		fakes[i] = &fakeRow{row: r}
		views[i] = fakes[i]
	}
	return views, fakes
}

func visibleIDs(fakes []*fakeRow) []string {
	var ids []string
	for _, f := range fakes {
		if f.visible {
			ids = append(ids, f.row.ID)
		}
	}
	return ids
}

type page struct {
	search, packer, start, end *Field
	clear                      *Button
	status                     *Status
}

func newPage() *page {
	return &page{
		search: NewField(""),
		packer: NewField(""),
		start:  NewField(""),
		end:    NewField(""),
		clear:  NewButton(),
		status: &Status{},
	}
}

func (p *page) controls() Controls {
	return Controls{Search: p.search, Packer: p.packer, StartDate: p.start, EndDate: p.end, Clear: p.clear}
}

func TestNewTable_InitialEvaluationShowsAll(t *testing.T) {
	p := newPage()
	views, fakes := fakeRows(sampleRows())

	NewTable(p.controls(), views, p.status)

	assert.Equal(t, []string{"1", "2", "3", "4"}, visibleIDs(fakes))
	assert.Equal(t, "Showing 4 orders", p.status.Text())
}

func TestNewTable_InitialEvaluationHonorsPresetValues(t *testing.T) {
	p := newPage()
	p.packer.SetValue("bob")
	views, fakes := fakeRows(sampleRows())

	tbl := NewTable(p.controls(), views, p.status)

	assert.Equal(t, []string{"4"}, visibleIDs(fakes))
	assert.Equal(t, "Showing 1 orders", p.status.Text())
	assert.Equal(t, Criteria{SelectedPacker: "bob"}, tbl.Criteria())
}

func TestTable_InputEventsRefilter(t *testing.T) {
	p := newPage()
	rows := []Row{
		{ID: "1", OrderNumber: "X-10", PackerName: "Alice", OrderDate: "2024-01-01"},
		{ID: "2", OrderNumber: "X-11", PackerName: "Bob", OrderDate: "2024-01-02"},
		{ID: "3", OrderNumber: "X-12", PackerName: "Alice", OrderDate: "2024-01-03"},
		{ID: "4", OrderNumber: "Y-13", PackerName: "Alice", OrderDate: "2024-01-04"},
	}
	views, fakes := fakeRows(rows)
	NewTable(p.controls(), views, p.status)

	p.search.Input("x-1")
	assert.Equal(t, []string{"1", "2", "3"}, visibleIDs(fakes))
	assert.Equal(t, "Showing 3 orders", p.status.Text())

	p.packer.Input("Alice")
	assert.Equal(t, []string{"1", "3"}, visibleIDs(fakes))
	assert.Equal(t, "Showing 2 orders", p.status.Text())

	p.end.Input("2024-01-02")
	assert.Equal(t, []string{"1"}, visibleIDs(fakes))
}

func TestTable_ClearRestoresEverything(t *testing.T) {
	p := newPage()
	views, fakes := fakeRows(sampleRows())
	NewTable(p.controls(), views, p.status)

	p.search.Input("ORD")
	p.packer.Input("Alice")
	p.start.Input("2024-01-10")
	p.end.Input("2024-01-09")
	require.Empty(t, visibleIDs(fakes))
	require.Equal(t, "Showing 0 orders", p.status.Text())

	p.clear.Click()

	assert.Equal(t, []string{"1", "2", "3", "4"}, visibleIDs(fakes))
	assert.Equal(t, "Showing 4 orders", p.status.Text())
	for _, f := range []*Field{p.search, p.packer, p.start, p.end} {
		assert.Empty(t, f.Value())
	}
}

func TestTable_SetValueDoesNotRefresh(t *testing.T) {
	p := newPage()
	views, fakes := fakeRows(sampleRows())
	tbl := NewTable(p.controls(), views, p.status)

	p.packer.SetValue("Bob")
	assert.Len(t, visibleIDs(fakes), 4)

	assert.Equal(t, 1, tbl.Refresh())
	assert.Equal(t, []string{"4"}, visibleIDs(fakes))
}

func TestTable_MissingControlsAreSkipped(t *testing.T) {
	search := NewField("200")
	views, fakes := fakeRows(sampleRows())

	tbl := NewTable(Controls{Search: search}, views, nil)

	assert.Equal(t, []string{"2"}, visibleIDs(fakes))
	assert.Equal(t, Criteria{SearchTerm: "200"}, tbl.Criteria())
	assert.Equal(t, 4, tbl.Clear())
	assert.Empty(t, search.Value())
}

func TestTable_NilFieldReadsEmpty(t *testing.T) {
	var missing *Field
	views, fakes := fakeRows(sampleRows())

	NewTable(Controls{Packer: missing}, views, nil)

	assert.Len(t, visibleIDs(fakes), 4)
}
