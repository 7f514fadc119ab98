// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pick

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// Pool for consumed-position bitmaps. Sessions are single-use, so each
// bitmap is acquired for one resolution and cleared on release. Released
// bitmaps keep their capacity, so repeated selections over same-sized
// sources stop allocating for consumption tracking.

var consumedPool = sync.Pool{New: func() any { return new(bitset.BitSet) }}

func acquireConsumed() *bitset.BitSet {
	return consumedPool.Get().(*bitset.BitSet)
}

// releaseConsumed clears b and returns it to the pool.
func releaseConsumed(b *bitset.BitSet) {
	b.ClearAll()
	consumedPool.Put(b)
}
