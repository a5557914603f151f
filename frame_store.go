package layout

// stateEntry wraps a value with frame tracking for staleness detection.
type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore is a type-safe keyed store that drops entries that were not
// touched during the previous frame.
//
// The GUI keeps one store for its retained group nodes; list views and
// custom controls can keep their own:
//
//	var toggles = layout.NewFrameStore[bool]()
//
//	on := toggles.Get(frame, id, func() bool { return false })
//
// A FrameStore is owned by one GUI and used from the goroutine that runs
// its frames; it is not safe for concurrent use.
type FrameStore[T any] struct {
	states  map[ID]*stateEntry[T]
	onEvict func(id ID, v T)
}

// NewFrameStore creates an empty store.
func NewFrameStore[T any]() *FrameStore[T] {
	return &FrameStore[T]{states: make(map[ID]*stateEntry[T])}
}

// OnEvict registers a callback invoked for each entry removed by Cleanup.
func (s *FrameStore[T]) OnEvict(fn func(id ID, v T)) {
	s.onEvict = fn
}

// Get retrieves the entry for id, creating it with create if missing.
// The entry is marked as used in frame.
func (s *FrameStore[T]) Get(frame uint64, id ID, create func() T) (*T, bool) {
	if entry, ok := s.states[id]; ok {
		entry.lastFrame = frame
		return &entry.value, false
	}
	entry := &stateEntry[T]{value: create(), lastFrame: frame}
	s.states[id] = entry
	return &entry.value, true
}

// GetIfExists retrieves an entry only if it already exists.
// Does NOT create it or mark it as used.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	if entry, ok := s.states[id]; ok {
		return &entry.value
	}
	return nil
}

// Touch marks an existing entry as used in frame.
func (s *FrameStore[T]) Touch(frame uint64, id ID) {
	if entry, ok := s.states[id]; ok {
		entry.lastFrame = frame
	}
}

// Delete explicitly removes an entry.
func (s *FrameStore[T]) Delete(id ID) {
	delete(s.states, id)
}

// Cleanup removes every entry that was not used in the previous frame.
// Call it once when frame starts.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	if frame == 0 {
		return
	}
	threshold := frame - 1
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			delete(s.states, id)
			if s.onEvict != nil {
				s.onEvict(id, entry.value)
			}
		}
	}
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	return len(s.states)
}
