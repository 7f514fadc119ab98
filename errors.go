// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pick

import "fmt"

// Selection errors report selector-function defects. They are returned
// synchronously from the selection call and are never transient: the only
// recovery is fixing the selector.

// ErrInsufficientSlots indicates a declared arity that requests more
// distinct elements than the source offers. It is raised before the
// selector function is invoked.
type ErrInsufficientSlots struct {
	Want int
	Have int
}

func (e *ErrInsufficientSlots) Error() string {
	return fmt.Sprintf("insufficient distinct elements: want %d, have %d", e.Want, e.Have)
}

// ErrArityMismatch indicates a selector that returned a different number
// of slots than its declared arity.
type ErrArityMismatch struct {
	Want int
	Got  int
}

func (e *ErrArityMismatch) Error() string {
	return fmt.Sprintf("selection arity mismatch: want %d slots, got %d", e.Want, e.Got)
}

// ErrSlotConsumed indicates a slot returned more than once from a
// selection without replacement. Index is the slot's position in the
// source.
type ErrSlotConsumed struct {
	Index int
}

func (e *ErrSlotConsumed) Error() string {
	return fmt.Sprintf("slot %d already consumed", e.Index)
}

// ErrForeignSlot indicates a returned slot that does not originate from
// the current selection session: the zero Slot, a slot retained from an
// earlier session, or a slot issued by a different source. Position is the
// slot's position in the selector's returned sequence.
type ErrForeignSlot struct {
	Position int
}

func (e *ErrForeignSlot) Error() string {
	return fmt.Sprintf("foreign slot at position %d: slot does not belong to this selection", e.Position)
}
