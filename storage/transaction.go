// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swapmeet/fault"
)

// Transaction - a set of writes to several pools applied atomically
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	Commit() error
	Abort()
}

type transactionData struct {
	sync.Mutex
	batch *leveldb.Batch
}

// NewTransaction - start collecting writes
func NewTransaction() Transaction {
	return &transactionData{
		batch: new(leveldb.Batch),
	}
}

// Put - queue a key/value pair for a pool
func (t *transactionData) Put(p *PoolHandle, key []byte, value []byte) {
	t.Lock()
	t.batch.Put(p.prefixKey(key), value)
	t.Unlock()
}

// Commit - write all queued records
//
// a database write failure panics, the same as a single pool write
func (t *transactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return fault.ErrNotInitialised
	}

	err := poolData.database.Write(t.batch, nil)
	logger.PanicIfError("transaction.Commit", err)
	t.batch.Reset()
	return nil
}

// Abort - discard all queued records
func (t *transactionData) Abort() {
	t.Lock()
	t.batch.Reset()
	t.Unlock()
}
