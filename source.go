// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pick

import "slices"

// Source holds an ordered, fixed collection of values offered for
// selection. A Source is immutable once constructed and freely reusable:
// every selection call opens an independent session with fresh slots, and
// concurrent selections share only the read-only backing values.
type Source[T any] struct {
	values  []T
	replace bool
}

// Of constructs a Source from values in a fixed, known order. The values
// are cloned, so later mutation of the argument slice cannot reach into a
// live selection.
//
// By default slots are single-use within a session (selection without
// replacement); see [Source.WithReplacement].
func Of[T any](values ...T) Source[T] {
	return Source[T]{values: slices.Clone(values)}
}

// WithReplacement returns a Source whose selections permit the same slot
// to be returned more than once. The receiver is unchanged.
func (s Source[T]) WithReplacement() Source[T] {
	s.replace = true
	return s
}

// Len returns the number of values offered.
func (s Source[T]) Len() int {
	return len(s.values)
}

// Values returns a copy of the offered values in source order.
func (s Source[T]) Values() []T {
	return slices.Clone(s.values)
}

// Select runs one selection session over the source. The selector choose
// receives one slot per source position, in source order, and returns
// whichever slots it picks — any subset, any order, any arity, and (with
// replacement) any repetition. The chosen slots are resolved back into
// their underlying values in exactly the order returned.
//
// Every resolved value is guaranteed to originate from the source: slots
// have no public constructor, so choose can only return slots it was
// given. Returning a slot twice without replacement fails with
// [ErrSlotConsumed]; returning a slot from outside the session fails with
// [ErrForeignSlot]. choose is invoked exactly once.
func (s Source[T]) Select(choose func(slots []Slot[T]) []Slot[T]) ([]T, error) {
	sess := openSession(s)
	defer sess.close()
	return sess.resolve(choose(sess.slots))
}

// SelectN runs one selection session whose output arity is declared up
// front: choose must return exactly n slots.
//
// The arity is validated on both sides of the selector invocation.
// Requesting more distinct elements than the source offers fails with
// [ErrInsufficientSlots] before choose runs; a returned sequence of any
// other length fails with [ErrArityMismatch] before any resolution.
func (s Source[T]) SelectN(n int, choose func(slots []Slot[T]) []Slot[T]) ([]T, error) {
	if err := s.checkArity(n); err != nil {
		return nil, err
	}
	sess := openSession(s)
	defer sess.close()
	chosen := choose(sess.slots)
	if len(chosen) != n {
		return nil, &ErrArityMismatch{Want: n, Got: len(chosen)}
	}
	return sess.resolve(chosen)
}

// SelectOne runs one selection session for exactly one value. This is the
// common case of forcing an external chooser — a UI prompt, a strategy
// callback — to pick one of the offered values and nothing else.
func (s Source[T]) SelectOne(choose func(slots []Slot[T]) Slot[T]) (T, error) {
	var zero T
	if err := s.checkArity(1); err != nil {
		return zero, err
	}
	sess := openSession(s)
	defer sess.close()
	out, err := sess.resolve([]Slot[T]{choose(sess.slots)})
	if err != nil {
		return zero, err
	}
	return out[0], nil
}

// checkArity rejects declared arities the source cannot satisfy, before
// any slot is handed out. With replacement a non-empty source satisfies
// any non-negative arity; without replacement the arity is capped by the
// number of distinct slots.
func (s Source[T]) checkArity(n int) error {
	switch {
	case n < 0:
		return &ErrArityMismatch{Want: n, Got: 0}
	case n == 0:
		return nil
	case len(s.values) == 0:
		return &ErrInsufficientSlots{Want: n, Have: 0}
	case !s.replace && n > len(s.values):
		return &ErrInsufficientSlots{Want: n, Have: len(s.values)}
	}
	return nil
}
