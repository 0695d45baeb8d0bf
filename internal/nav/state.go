package nav

// State owns the current page. It starts at home and changes only through
// Navigate or Go. It is not safe for concurrent use; the UI event loop is
// its only writer.
type State struct {
	current Page

	// OnChange, if set, is called after every navigation, including ones
	// that land on the page already showing.
	OnChange func(from, to Page)
}

// NewState returns a state showing the home page.
func NewState() *State {
	return &State{current: Home()}
}

// Current returns the page being shown.
func (s *State) Current() Page {
	return s.current
}

// Navigate parses target and makes it the current page. Unrecognized tags
// are accepted and become KindUnknown pages.
func (s *State) Navigate(target string) Page {
	return s.Go(Parse(target))
}

// Go makes p the current page.
func (s *State) Go(p Page) Page {
	from := s.current
	s.current = p
	if s.OnChange != nil {
		s.OnChange(from, p)
	}
	return p
}
