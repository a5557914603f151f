package layout

import "slices"

// Sequence is the host-owned data behind a list view. The list only ever
// removes, inserts, moves or clears; mutations must be visible to Len and At
// before the list's next draw.
type Sequence[T any] interface {
	Len() int
	At(i int) T
	RemoveAt(i int)
	Insert(i int, v T)
	// Move removes the element at from and inserts it so it ends up at to.
	Move(from, to int)
	Clear()
}

// SliceSequence is a Sequence over a slice.
type SliceSequence[T any] struct {
	Items []T
}

// NewSliceSequence wraps items. The slice is used in place.
func NewSliceSequence[T any](items []T) *SliceSequence[T] {
	return &SliceSequence[T]{Items: items}
}

func (s *SliceSequence[T]) Len() int { return len(s.Items) }

func (s *SliceSequence[T]) At(i int) T { return s.Items[i] }

func (s *SliceSequence[T]) RemoveAt(i int) {
	s.Items = slices.Delete(s.Items, i, i+1)
}

func (s *SliceSequence[T]) Insert(i int, v T) {
	s.Items = slices.Insert(s.Items, i, v)
}

func (s *SliceSequence[T]) Move(from, to int) {
	if from == to {
		return
	}
	v := s.Items[from]
	s.Items = slices.Insert(slices.Delete(s.Items, from, from+1), to, v)
}

func (s *SliceSequence[T]) Clear() {
	clear(s.Items)
	s.Items = s.Items[:0]
}

// Append adds v at the end.
func (s *SliceSequence[T]) Append(v ...T) {
	s.Items = append(s.Items, v...)
}
