package pixgui

// stateEntry wraps a state value with frame tracking for staleness detection.
type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore is a type-safe store for per-widget state that drops entries
// no widget touched during the previous frame. Each Context owns its stores
// and advances them from its own frame counter, so independent GUIs never
// share state.
//
// The GUI runs on a single thread, so FrameStore is not safe for
// concurrent use.
type FrameStore[T any] struct {
	states map[ID]*stateEntry[T]
	frame  uint64
	evict  func(id ID, value T)
}

// NewFrameStore creates an empty store. evict, when non-nil, is called for
// every entry dropped by Cleanup or Clear.
func NewFrameStore[T any](evict func(id ID, value T)) *FrameStore[T] {
	return &FrameStore[T]{
		states: make(map[ID]*stateEntry[T]),
		evict:  evict,
	}
}

// Get retrieves state for the given ID, or creates it with defaultVal if not found.
// Returns a pointer to the state, allowing direct modification.
// The state is marked as used this frame.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	if entry, ok := s.states[id]; ok {
		entry.lastFrame = s.frame
		return &entry.value
	}
	entry := &stateEntry[T]{value: defaultVal, lastFrame: s.frame}
	s.states[id] = entry
	return &entry.value
}

// Lookup returns the state for id without creating it or marking it used.
func (s *FrameStore[T]) Lookup(id ID) (T, bool) {
	if entry, ok := s.states[id]; ok {
		return entry.value, true
	}
	var zero T
	return zero, false
}

// Set stores state for an ID and marks it used this frame.
func (s *FrameStore[T]) Set(id ID, value T) {
	if entry, ok := s.states[id]; ok {
		entry.value = value
		entry.lastFrame = s.frame
		return
	}
	s.states[id] = &stateEntry[T]{value: value, lastFrame: s.frame}
}

// Delete removes state for an ID without calling evict.
func (s *FrameStore[T]) Delete(id ID) {
	delete(s.states, id)
}

// NextFrame advances the store to a new frame and drops entries that were
// not touched in the frame that just ended.
func (s *FrameStore[T]) NextFrame() {
	s.Cleanup(s.frame)
	s.frame++
}

// Cleanup removes all entries last used before frame.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	for id, entry := range s.states {
		if entry.lastFrame < frame {
			delete(s.states, id)
			if s.evict != nil {
				s.evict(id, entry.value)
			}
		}
	}
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	return len(s.states)
}

// Clear removes all entries immediately.
func (s *FrameStore[T]) Clear() {
	for id, entry := range s.states {
		delete(s.states, id)
		if s.evict != nil {
			s.evict(id, entry.value)
		}
	}
}
