package layout

import "testing"

func TestFrameStoreCleanup(t *testing.T) {
	s := NewFrameStore[int]()
	var evicted []ID
	s.OnEvict(func(id ID, _ int) { evicted = append(evicted, id) })

	v, created := s.Get(1, 10, func() int { return 5 })
	if !created || *v != 5 {
		t.Fatalf("Get created=%v value=%d", created, *v)
	}
	*v = 6
	s.Get(1, 11, func() int { return 0 })

	if v, created := s.Get(2, 10, func() int { return 0 }); created || *v != 6 {
		t.Errorf("second Get should return the stored value, got created=%v value=%d", created, *v)
	}
	s.Cleanup(3)
	if s.Len() != 1 || s.GetIfExists(11) != nil {
		t.Fatalf("entry untouched since frame 1 should be evicted, len=%d", s.Len())
	}
	if len(evicted) != 1 || evicted[0] != 11 {
		t.Errorf("evicted = %v, want [11]", evicted)
	}

	s.Touch(4, 10)
	s.Cleanup(5)
	if s.GetIfExists(10) == nil {
		t.Error("touched entry was evicted")
	}
	s.Delete(10)
	if s.Len() != 0 {
		t.Errorf("Delete left %d entries", s.Len())
	}
}
