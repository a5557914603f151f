package layout_test

import (
	"slices"
	"testing"

	"github.com/go-theft-auto/layout"
)

func TestSliceSequenceMove(t *testing.T) {
	s := layout.NewSliceSequence([]string{"a", "b", "c", "d", "e"})

	s.Move(1, 3)
	if want := []string{"a", "c", "d", "b", "e"}; !slices.Equal(s.Items, want) {
		t.Errorf("Move(1, 3) = %v, want %v", s.Items, want)
	}
	s.Move(3, 1)
	if want := []string{"a", "b", "c", "d", "e"}; !slices.Equal(s.Items, want) {
		t.Errorf("Move(3, 1) = %v, want %v", s.Items, want)
	}
	s.Move(2, 2)
	if s.At(2) != "c" {
		t.Errorf("Move to the same index changed the data: %v", s.Items)
	}
	s.Move(0, 4)
	if want := []string{"b", "c", "d", "e", "a"}; !slices.Equal(s.Items, want) {
		t.Errorf("Move(0, 4) = %v, want %v", s.Items, want)
	}
}

func TestSliceSequenceEdits(t *testing.T) {
	s := layout.NewSliceSequence[int](nil)
	s.Append(1, 2, 3)
	s.Insert(0, 0)
	s.Insert(s.Len(), 4)
	if want := []int{0, 1, 2, 3, 4}; !slices.Equal(s.Items, want) {
		t.Fatalf("after inserts = %v, want %v", s.Items, want)
	}

	s.RemoveAt(2)
	if want := []int{0, 1, 3, 4}; !slices.Equal(s.Items, want) {
		t.Errorf("RemoveAt(2) = %v, want %v", s.Items, want)
	}
	s.RemoveAt(s.Len() - 1)
	if s.Len() != 3 || s.At(2) != 3 {
		t.Errorf("RemoveAt(last) = %v", s.Items)
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Clear left %d items", s.Len())
	}
}
