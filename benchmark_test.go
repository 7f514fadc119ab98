// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pick_test

import (
	"testing"

	"code.hybscloud.com/pick"
)

func BenchmarkSelectIdentity(b *testing.B) {
	src := pick.Of(0, 1, 2, 3, 4, 5, 6, 7)
	for b.Loop() {
		_, _ = src.Select(func(slots []pick.Slot[int]) []pick.Slot[int] {
			return slots
		})
	}
}

func BenchmarkSelectPair(b *testing.B) {
	src := pick.Of("Hi", "how", "are ya?")
	for b.Loop() {
		_, _ = src.Select(func(slots []pick.Slot[string]) []pick.Slot[string] {
			return []pick.Slot[string]{slots[0], slots[2]}
		})
	}
}

func BenchmarkSelectWithReplacement(b *testing.B) {
	src := pick.Of(0, 1, 2, 3).WithReplacement()
	for b.Loop() {
		_, _ = src.Select(func(slots []pick.Slot[int]) []pick.Slot[int] {
			return []pick.Slot[int]{slots[1], slots[1], slots[1]}
		})
	}
}

func BenchmarkSelectN(b *testing.B) {
	src := pick.Of(0, 1, 2, 3, 4, 5, 6, 7)
	for b.Loop() {
		_, _ = src.SelectN(2, func(slots []pick.Slot[int]) []pick.Slot[int] {
			return []pick.Slot[int]{slots[7], slots[0]}
		})
	}
}

func BenchmarkSelectOne(b *testing.B) {
	src := pick.Of("clubs", "diamonds", "hearts", "spades")
	for b.Loop() {
		_, _ = src.SelectOne(func(slots []pick.Slot[string]) pick.Slot[string] {
			return slots[3]
		})
	}
}
