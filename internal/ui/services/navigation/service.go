package navigation

// Service moves the list cursor and keeps it inside the viewport
type Service struct {
	state   *State
	countFn func() int
}

// NewService creates a navigation service over a list whose length is
// reported by countFn
func NewService(countFn func() int) *Service {
	return &Service{
		state: &State{
			ViewportHeight: 20, // updated on the first WindowSizeMsg
		},
		countFn: countFn,
	}
}

// Cursor returns the current cursor position
func (s *Service) Cursor() int {
	return s.state.Cursor
}

// ViewportOffset returns the index of the first visible row
func (s *Service) ViewportOffset() int {
	return s.state.ViewportOffset
}

// ViewportHeight returns the number of visible rows
func (s *Service) ViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates the number of visible rows
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.ensureVisible()
}

// Navigate moves the cursor and reports whether it changed
func (s *Service) Navigate(direction Direction) bool {
	old := s.state.Cursor
	page := s.state.ViewportHeight - 1
	if page < 1 {
		page = 1
	}

	switch direction {
	case DirectionUp:
		s.state.Cursor = s.clampIndex(s.state.Cursor - 1)
	case DirectionDown:
		s.state.Cursor = s.clampIndex(s.state.Cursor + 1)
	case DirectionPageUp:
		s.state.Cursor = s.clampIndex(s.state.Cursor - page)
	case DirectionPageDown:
		s.state.Cursor = s.clampIndex(s.state.Cursor + page)
	case DirectionHome:
		s.state.Cursor = 0
	case DirectionEnd:
		s.state.Cursor = s.clampIndex(s.maxIndex())
	}
	s.ensureVisible()
	return old != s.state.Cursor
}

// MoveToIndex moves the cursor to index, clamped to the list
func (s *Service) MoveToIndex(index int) {
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
}

// Clamp pulls the cursor and viewport back inside a list that may have
// shrunk
func (s *Service) Clamp() {
	s.state.Cursor = s.clampIndex(s.state.Cursor)
	if maxOffset := s.maxIndex() - s.state.ViewportHeight + 1; s.state.ViewportOffset > maxOffset {
		s.state.ViewportOffset = maxOffset
	}
	if s.state.ViewportOffset < 0 {
		s.state.ViewportOffset = 0
	}
	s.ensureVisible()
}

func (s *Service) maxIndex() int {
	if s.countFn == nil {
		return 0
	}
	return s.countFn() - 1
}

func (s *Service) clampIndex(index int) int {
	if last := s.maxIndex(); index > last {
		index = last
	}
	if index < 0 {
		return 0
	}
	return index
}

// VisibleRows returns how many result rows fit in a viewport of height
// lines starting at offset, after the scroll indicator lines above and
// below are taken out. It is never less than one.
func VisibleRows(count, offset, height int) int {
	rows := height
	if offset > 0 {
		rows--
	}
	if count > offset+height {
		rows--
	}
	if rows < 1 {
		return 1
	}
	return rows
}

// Rows returns the number of rows drawn for the current viewport
func (s *Service) Rows() int {
	return VisibleRows(s.maxIndex()+1, s.state.ViewportOffset, s.state.ViewportHeight)
}

func (s *Service) ensureVisible() {
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
		return
	}
	for s.state.Cursor >= s.state.ViewportOffset+s.Rows() {
		s.state.ViewportOffset++
	}
}
