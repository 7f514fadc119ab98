// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pick

// Slot is an opaque handle identifying one position, and therefore one
// value, within a single selection session. Slots are handed to the
// selector function by the session; there is no public constructor, so the
// selector's only source of slots is the argument it was given. This is
// what makes the origin guarantee hold.
//
// A Slot is valid only within the dynamic extent of the selector
// invocation that received it. The zero Slot belongs to no session and can
// never resolve.
type Slot[T any] struct {
	owner *session[T]
	id    uint64
	index int
}

// Value allows the selector to inspect the value this slot identifies.
// The value is a read-only view; the backing source is never mutated.
//
// Panics if the slot is used outside its selection session — the zero
// Slot, or a slot retained past the end of the selector invocation.
func (s Slot[T]) Value() T {
	if s.owner == nil || !s.owner.issued(s.id) {
		panic("pick: slot used outside its selection session")
	}
	return s.owner.values[s.index]
}
