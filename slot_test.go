// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pick_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/pick"
)

func TestSlotValueInsideSession(t *testing.T) {
	src := pick.Of("Hi", "how", "are ya?")

	_, err := src.Select(func(slots []pick.Slot[string]) []pick.Slot[string] {
		assert.Equal(t, "Hi", slots[0].Value())
		assert.Equal(t, "how", slots[1].Value())
		assert.Equal(t, "are ya?", slots[2].Value())
		return nil
	})

	require.NoError(t, err)
}

func TestSlotValueDoesNotConsume(t *testing.T) {
	src := pick.Of(42)

	chosen, err := src.Select(func(slots []pick.Slot[int]) []pick.Slot[int] {
		// Inspection is free; only returning a slot spends it.
		_ = slots[0].Value()
		_ = slots[0].Value()
		return slots
	})

	require.NoError(t, err)
	assert.Equal(t, []int{42}, chosen)
}

func TestZeroSlotValuePanics(t *testing.T) {
	var slot pick.Slot[int]

	assert.PanicsWithValue(t, "pick: slot used outside its selection session", func() {
		_ = slot.Value()
	})
}

func TestRetainedSlotValuePanics(t *testing.T) {
	src := pick.Of("gone")

	var retained pick.Slot[string]
	_, err := src.Select(func(slots []pick.Slot[string]) []pick.Slot[string] {
		retained = slots[0]
		return nil
	})
	require.NoError(t, err)

	assert.PanicsWithValue(t, "pick: slot used outside its selection session", func() {
		_ = retained.Value()
	})
}

func TestRetainedSlotValuePanicsAfterError(t *testing.T) {
	src := pick.Of(1, 2)

	var retained pick.Slot[int]
	_, err := src.Select(func(slots []pick.Slot[int]) []pick.Slot[int] {
		retained = slots[1]
		return []pick.Slot[int]{slots[0], slots[0]}
	})
	var consumed *pick.ErrSlotConsumed
	require.ErrorAs(t, err, &consumed)

	// A failed resolution still closes the session.
	assert.Panics(t, func() {
		_ = retained.Value()
	})
}
