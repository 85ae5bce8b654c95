package paging

import "math"

// Snapshot is a copy of a [State] at one point in time.
type Snapshot struct {
	Index      int     `json:"index"`
	Count      int     `json:"count"`
	DragOffset float64 `json:"dragOffset"`
	Dragging   bool    `json:"dragging"`
}

// State is the single source of truth for which page is showing and how far
// the current drag has travelled.
//
// State is not safe for concurrent use. It is owned by one UI loop; other
// readers should be handed [Snapshot]s.
type State struct {
	observer   func(Snapshot)
	count      int
	index      int
	dragOffset float64
	dragging   bool
}

// StateOpt configures a [State].
type StateOpt func(*State)

// WithInitialIndex sets the page shown at mount. It is clamped like any other
// index.
func WithInitialIndex(i int) StateOpt {
	return func(s *State) {
		s.index = i
	}
}

// WithObserver registers fn to be called after every mutation.
func WithObserver(fn func(Snapshot)) StateOpt {
	return func(s *State) {
		s.observer = fn
	}
}

// NewState creates a [State] for count pages.
func NewState(count int, opts ...StateOpt) *State {
	s := &State{count: max(0, count)}
	for _, opt := range opts {
		opt(s)
	}

	s.index = ClampIndex(s.index, s.count)

	return s
}

// Count returns the number of pages.
func (s *State) Count() int {
	return s.count
}

// Index returns the committed page.
func (s *State) Index() int {
	return s.index
}

// DragOffset returns the live translation of the active gesture, or 0.
func (s *State) DragOffset() float64 {
	return s.dragOffset
}

// Dragging reports whether a gesture is active.
func (s *State) Dragging() bool {
	return s.dragging
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Index:      s.index,
		Count:      s.count,
		DragOffset: s.dragOffset,
		Dragging:   s.dragging,
	}
}

// SetIndex clamps i into range and commits it. It returns the committed index.
func (s *State) SetIndex(i int) int {
	s.index = ClampIndex(i, s.count)
	s.notify()

	return s.index
}

// BeginDrag starts a gesture with a zero offset.
func (s *State) BeginDrag() {
	s.dragging = true
	s.dragOffset = 0
	s.notify()
}

// UpdateDrag records the live cumulative translation of the active gesture.
// Overshoot is kept as-is and only resolved by [State.EndDrag]. Calls outside
// a gesture are ignored.
func (s *State) UpdateDrag(delta float64) {
	if !s.dragging {
		return
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return
	}

	s.dragOffset = delta
	s.notify()
}

// EndDrag resolves the gesture with [Target], commits the result and resets
// the offset. It returns the committed index.
//
// An EndDrag without an active gesture resolves a zero offset, so calling it
// twice in a row leaves the index where the first call put it.
func (s *State) EndDrag(pageWidth float64) int {
	s.index = Target(s.index, s.count, s.dragOffset, pageWidth)
	s.dragOffset = 0
	s.dragging = false
	s.notify()

	return s.index
}

// CancelDrag ends a gesture interrupted by the host. The last known offset is
// resolved like a normal release, so the state never stays mid-drag.
func (s *State) CancelDrag(pageWidth float64) int {
	return s.EndDrag(pageWidth)
}

// VisualOffset returns the strip translation to draw: the resting offset of
// the committed page, plus the live offset while dragging.
func (s *State) VisualOffset(pageWidth float64) float64 {
	return RestingOffset(s.index, pageWidth) + s.dragOffset
}

func (s *State) notify() {
	if s.observer != nil {
		s.observer(s.Snapshot())
	}
}
