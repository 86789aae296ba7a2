package orderfilter

// Control is a filter input whose current value can be read and reset.
type Control interface {
	Value() string
	SetValue(v string)
}

// Notifier is implemented by controls that report user edits.
type Notifier interface {
	OnChange(fn func())
}

// Action is a clickable control such as the "clear filters" button.
type Action interface {
	OnClick(fn func())
}

// RowView is a rendered row whose visibility the table toggles.
type RowView interface {
	Row() Row
	SetVisible(visible bool)
}

// StatusView receives the "Showing N orders" text.
type StatusView interface {
	SetText(text string)
}

// Controls groups the filter inputs of the orders page. A nil field means the
// control is not present on the page and its criterion is never active.
type Controls struct {
	Search    Control
	Packer    Control
	StartDate Control
	EndDate   Control
	Clear     Action
}

func (c Controls) all() []Control {
	return []Control{c.Search, c.Packer, c.StartDate, c.EndDate}
}

// Table applies Criteria read from Controls to a fixed set of rows.
// It is driven by a single event loop and is not safe for concurrent use.
type Table struct {
	controls Controls
	rows     []RowView
	status   StatusView
}

// NewTable wires change listeners on the controls and evaluates the filter
// once so the initial render reflects any pre-set control values.
// status may be nil.
func NewTable(controls Controls, rows []RowView, status StatusView) *Table {
	t := &Table{
		controls: controls,
		rows:     rows,
		status:   status,
	}

	for _, c := range controls.all() {
		if n, ok := c.(Notifier); ok {
			n.OnChange(func() { t.Refresh() })
		}
	}
	if controls.Clear != nil {
		controls.Clear.OnClick(func() { t.Clear() })
	}

	t.Refresh()
	return t
}

// Criteria reads the current control values.
func (t *Table) Criteria() Criteria {
	return Criteria{
		SearchTerm:     valueOf(t.controls.Search),
		SelectedPacker: valueOf(t.controls.Packer),
		StartDate:      valueOf(t.controls.StartDate),
		EndDate:        valueOf(t.controls.EndDate),
	}
}

// Refresh re-evaluates every row, toggles its visibility and publishes the
// visible count. It returns that count.
func (t *Table) Refresh() int {
	criteria := t.Criteria()

	visible := 0
	for _, rv := range t.rows {
		ok := Matches(rv.Row(), criteria)
		rv.SetVisible(ok)
		if ok {
			visible++
		}
	}

	if t.status != nil {
		t.status.SetText(StatusText(visible))
	}
	return visible
}

// Clear empties every present control and refreshes once.
func (t *Table) Clear() int {
	for _, c := range t.controls.all() {
		if c != nil {
			c.SetValue("")
		}
	}
	return t.Refresh()
}

func valueOf(c Control) string {
	if c == nil {
		return ""
	}
	return c.Value()
}
