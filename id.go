package layout

import (
	"encoding/binary"
	"hash/fnv"
)

// ID uniquely identifies a retained group node or a control.
// IDs are stable across frames and across the passes of one frame.
type ID uint64

// hashLabel hashes a caller-supplied label.
func hashLabel(label string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(label))
	return h.Sum64()
}

// deriveID combines a parent key, a label hash and the occurrence index of
// that label among its siblings. Unlike a call counter, a sibling appearing
// or disappearing in one pass does not shift the keys of differently
// labelled siblings.
func deriveID(parent ID, labelHash uint64, occurrence int) ID {
	h := fnv.New64a()
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(parent))
	binary.LittleEndian.PutUint64(buf[8:16], labelHash)
	binary.LittleEndian.PutUint64(buf[16:24], uint64(occurrence))
	h.Write(buf[:])
	id := ID(h.Sum64())
	if id == 0 {
		id = 1
	}
	return id
}

// keyScope hands out child keys under one parent for the duration of a pass.
type keyScope struct {
	parent ID
	seen   map[uint64]int
}

func (s *keyScope) reset(parent ID) {
	s.parent = parent
	if s.seen == nil {
		s.seen = make(map[uint64]int)
	} else {
		clear(s.seen)
	}
}

// next returns the key for the next child named label.
func (s *keyScope) next(label string) ID {
	h := hashLabel(label)
	n := s.seen[h]
	s.seen[h] = n + 1
	return deriveID(s.parent, h, n)
}

// ControlID returns a stable control identifier for hot/keyboard tracking,
// derived from the active group's key.
func (ctx *Context) ControlID(label string) ID {
	parent := ID(0)
	if ctx.current != nil {
		parent = ctx.current.id
	}
	return deriveID(parent, hashLabel("control:"+label), 0)
}
