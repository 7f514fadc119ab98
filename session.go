// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pick

import (
	"sync/atomic"

	"github.com/bits-and-blooms/bitset"
)

// A session is the bounded operation that hands slots to one selector
// invocation and resolves the returned slots back into values. Sessions
// have exactly two states: preparing (slots constructed, selector not yet
// finished) and resolved (selector returned, slots invalid). There is no
// retry state; the selector runs exactly once per session.

type sessionState uint8

const (
	statePreparing sessionState = iota
	stateResolved
)

// sessionIDs issues a fresh id per session. Slots carry the id of the
// session that issued them, so a stale slot fails resolution even if its
// owner pointer happens to alias a later session.
var sessionIDs atomic.Uint64

type session[T any] struct {
	id       uint64
	values   []T
	slots    []Slot[T]
	consumed *bitset.BitSet // nil when selecting with replacement
	state    sessionState
}

// openSession builds one slot per source position, in source order. The
// session borrows the source's backing values read-only; it never mutates
// or copies them.
func openSession[T any](src Source[T]) *session[T] {
	s := &session[T]{
		id:     sessionIDs.Add(1),
		values: src.values,
	}
	if !src.replace {
		s.consumed = acquireConsumed()
	}
	s.slots = make([]Slot[T], len(src.values))
	for i := range s.slots {
		s.slots[i] = Slot[T]{owner: s, id: s.id, index: i}
	}
	return s
}

// issued reports whether a slot carrying id belongs to this session and
// the session is still in its selector invocation.
func (s *session[T]) issued(id uint64) bool {
	return s.id == id && s.state == statePreparing
}

// resolve transitions the session to resolved and maps each chosen slot
// back to its underlying value, in exactly the order, arity, and
// repetition the selector chose. It never reorders or deduplicates.
//
// All-or-nothing: the first unsound slot aborts resolution with no partial
// output.
func (s *session[T]) resolve(chosen []Slot[T]) ([]T, error) {
	s.state = stateResolved
	out := make([]T, 0, len(chosen))
	for pos, c := range chosen {
		if c.owner != s || c.id != s.id {
			return nil, &ErrForeignSlot{Position: pos}
		}
		if s.consumed != nil {
			if s.consumed.Test(uint(c.index)) {
				return nil, &ErrSlotConsumed{Index: c.index}
			}
			s.consumed.Set(uint(c.index))
		}
		out = append(out, s.values[c.index])
	}
	return out, nil
}

// close invalidates the session's slots and returns its consumed bitmap to
// the pool. Safe to call after resolve; also runs when the selector
// panics, so retained slots are dead either way.
func (s *session[T]) close() {
	s.state = stateResolved
	s.values = nil
	s.slots = nil
	if s.consumed != nil {
		releaseConsumed(s.consumed)
		s.consumed = nil
	}
}
