// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pick provides guaranteed selection from a fixed set of values
// in Go.
//
// The core type [Source] holds an ordered, fixed collection of values and
// hands out opaque [Slot] handles to an externally supplied selector
// function. Whatever slots the selector returns are resolved back into the
// underlying values — and because slots have no public constructor and are
// scoped to a single selection session, every resolved value is provably
// one of the original values. A selector cannot substitute or fabricate a
// result.
//
// # Design Philosophy
//
// pick provides:
//   - An origin guarantee: output values always trace back to the source
//   - Opaque, session-scoped handles with no public constructor
//   - Selector-determined output shape: any subset, any order, any arity
//
// The guarantee is enforced at runtime: each [Slot] carries a session id
// and a position index, and resolution validates both against the session
// that issued the slot. A slot smuggled out of one selection and returned
// from another fails resolution with [ErrForeignSlot].
//
// # Core Operations
//
// Construction:
//
//   - [Of]: Build a [Source] from values in a fixed, known order
//   - [Source.WithReplacement]: Permit the same slot to be chosen twice
//
// Selection:
//
//   - [Source.Select]: Free-form selection — any arity the selector likes
//   - [Source.SelectN]: Declared-arity selection of exactly n values
//   - [Source.SelectOne]: Selection of exactly one value
//
// Inspection:
//
//   - [Source.Len], [Source.Values]: Access the offered values
//   - [Slot.Value]: Read-only view of the value a slot identifies
//
// # Selection Policies
//
// By default selection is without replacement: each slot may be returned
// at most once per session, mirroring one-shot consumption of the
// underlying element. Returning a slot twice fails with [ErrSlotConsumed].
// A source built with [Source.WithReplacement] lifts this restriction, so
// a selector may repeat a slot freely.
//
// # Error Handling
//
// Selector-result defects are reported as typed errors from the selection
// call, matched with errors.As:
//
//   - [ErrInsufficientSlots]: Declared arity exceeds the distinct slots available
//   - [ErrArityMismatch]: Selector returned a different count than declared
//   - [ErrSlotConsumed]: Slot returned twice without replacement
//   - [ErrForeignSlot]: Slot does not originate from the current session
//
// None of these are transient; they indicate a defect in the selector
// function. Misusing a [Slot] itself — calling Value on a slot retained
// past the end of its session — panics, analogous to resuming an affine
// continuation twice.
//
// # Session Lifecycle
//
// Each selection call opens a fresh session: slots are constructed, the
// selector is invoked exactly once, and the returned slots are resolved.
// Sessions have exactly two states, preparing and resolved; there is no
// retry. A [Source] is freely reusable — concurrent selections on the same
// source are safe because sessions share only the immutable backing
// values. Slots must not escape the selector invocation that received
// them.
//
// # Example
//
//	greetings := pick.Of("Hi", "how", "are ya?")
//
//	chosen, err := greetings.Select(func(slots []pick.Slot[string]) []pick.Slot[string] {
//		// slots allow inspection of the values
//		first, third := slots[0], slots[2]
//		return []pick.Slot[string]{first, third}
//	})
//	// chosen == []string{"Hi", "are ya?"}, err == nil
package pick
