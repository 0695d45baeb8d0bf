package ui

// FocusManager tracks and rotates focus across a page's controls.
// Current is empty when nothing has focus.
type FocusManager struct {
	Current  string   // ID of the focused control
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// Reset replaces the tab order and clears focus.
func (f *FocusManager) Reset(order []string) {
	from := f.Current
	f.Order = order
	f.Current = ""
	if f.OnChange != nil && from != "" {
		f.OnChange(from, "")
	}
}

// Next advances focus to the next control in order.
// With nothing focused, the first control receives focus.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index()
	f.set(f.Order[(idx+1)%len(f.Order)])
	return f.Current
}

// Prev moves focus to the previous control in order.
// With nothing focused, the last control receives focus.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index()
	prev := idx - 1
	if prev < 0 {
		prev = len(f.Order) - 1
	}
	f.set(f.Order[prev])
	return f.Current
}

// SetFocus sets focus to the given control ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.set(id)
			return true
		}
	}
	return false
}

// Clear removes focus.
func (f *FocusManager) Clear() {
	f.set("")
}

func (f *FocusManager) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
