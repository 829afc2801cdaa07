// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/swapmeet/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.Equal(t, uint64(0), c.Uint64(), "not zero at start")

	for i := 0; i < 5; i += 1 {
		assert.True(t, c.IncrementIfBelow(5), "increment below limit")
	}
	assert.Equal(t, uint64(5), c.Uint64(), "after increment")

	for i := 4; i >= 0; i -= 1 {
		assert.Equal(t, uint64(i), c.Decrement(), "wrong value after decrement")
	}

	// twos complement -1
	c.Decrement()
	assert.Equal(t, ^uint64(0), c.Uint64(), "did not underflow")
}

func TestIncrementIfBelow(t *testing.T) {
	var c counter.Counter

	wg := sync.WaitGroup{}
	accepted := uint64(0)
	for i := 0; i < 50; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.IncrementIfBelow(10) {
				atomic.AddUint64(&accepted, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(10), c.Uint64(), "counter exceeded limit")
	assert.Equal(t, uint64(10), atomic.LoadUint64(&accepted), "wrong number accepted")
	assert.False(t, c.IncrementIfBelow(10), "increment at limit")
}
