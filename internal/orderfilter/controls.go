package orderfilter

// Field is an in-memory text, select or date input.
type Field struct {
	value     string
	listeners []func()
}

func NewField(value string) *Field {
	return &Field{value: value}
}

// Value returns the current value. A nil Field reads as empty.
func (f *Field) Value() string {
	if f == nil {
		return ""
	}
	return f.value
}

// SetValue changes the value without notifying listeners, like assigning an
// input's value from script.
func (f *Field) SetValue(v string) {
	if f == nil {
		return
	}
	f.value = v
}

// Input changes the value as a user edit would and notifies listeners.
func (f *Field) Input(v string) {
	f.value = v
	for _, fn := range f.listeners {
		fn()
	}
}

func (f *Field) OnChange(fn func()) {
	if f == nil {
		return
	}
	f.listeners = append(f.listeners, fn)
}

// Button is an in-memory clickable control.
type Button struct {
	listeners []func()
}

func NewButton() *Button {
	return &Button{}
}

func (b *Button) Click() {
	for _, fn := range b.listeners {
		fn()
	}
}

func (b *Button) OnClick(fn func()) {
	b.listeners = append(b.listeners, fn)
}

// Status is an in-memory text node.
type Status struct {
	text string
}

func (s *Status) SetText(text string) {
	s.text = text
}

func (s *Status) Text() string {
	return s.text
}
