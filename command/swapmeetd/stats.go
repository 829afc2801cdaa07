// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swapmeet/rpc"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodic memory and connection summary
func memstats() {

	log := logger.New("memory")

	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		a := m.Alloc / mega
		t := m.TotalAlloc / mega
		s := m.Sys / mega
		log.Warnf("allocated: %d M  cumulative: %d M  OS virtual: %d M  goroutines: %d  rpc connections: %d",
			a, t, s, runtime.NumGoroutine(), rpc.Connections())

		time.Sleep(statsDelay)
	}
}
