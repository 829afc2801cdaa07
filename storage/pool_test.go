// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/swapmeet/fault"
	"github.com/bitmark-inc/swapmeet/storage"
)

func TestLastElement(t *testing.T) {
	databaseFileName := setup(t)
	defer teardown(databaseFileName)

	p := storage.Pool.Journal

	_, found := p.LastElement()
	assert.False(t, found, "empty pool has a last element")

	write(t, p, 1, 300)

	last, found := p.LastElement()
	assert.True(t, found, "missing last element")
	assert.Equal(t, sequenceKey(300), last.Key, "wrong last key")
	assert.Equal(t, []byte("record-300"), last.Value, "wrong last value")

	// other pools are not visible
	_, found = storage.Pool.Withdrawals.LastElement()
	assert.False(t, found, "withdrawals not empty")
}

func TestFetchSequenceKeys(t *testing.T) {
	databaseFileName := setup(t)
	defer teardown(databaseFileName)

	p := storage.Pool.Journal
	write(t, p, 1, 600)
	write(t, storage.Pool.Withdrawals, 1, 10)

	cursor := p.NewFetchCursor().Seek(sequenceKey(250))
	n := uint64(250)
	for {
		data, err := cursor.Fetch(64)
		assert.Nil(t, err, "fetch error")
		if 0 == len(data) {
			break
		}
		assert.True(t, len(data) <= 64, "page too large")
		for _, e := range data {
			assert.Equal(t, n, binary.BigEndian.Uint64(e.Key), "out of sequence")
			n += 1
		}
	}
	assert.Equal(t, uint64(601), n, "wrong number of elements")

	_, err := cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count accepted")

	var empty *storage.FetchCursor
	_, err = empty.Fetch(1)
	assert.Equal(t, fault.ErrInvalidCursor, err, "nil cursor accepted")
}

func TestMap(t *testing.T) {
	databaseFileName := setup(t)
	defer teardown(databaseFileName)

	p := storage.Pool.Withdrawals
	write(t, p, 1, 5)

	n := uint64(0)
	err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		assert.Equal(t, sequenceKey(n), key, "wrong key")
		if 3 == n {
			return fault.ErrInvalidOperation
		}
		return nil
	})
	assert.Equal(t, fault.ErrInvalidOperation, err, "map did not stop")
	assert.Equal(t, uint64(3), n, "wrong count")

	n = 0
	err = p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, uint64(5), n, "wrong total")
}

func TestTransaction(t *testing.T) {
	databaseFileName := setup(t)
	defer teardown(databaseFileName)

	trx := storage.NewTransaction()
	trx.Put(storage.Pool.Journal, sequenceKey(1), []byte("entry"))
	trx.Put(storage.Pool.Withdrawals, sequenceKey(1), []byte("payout"))

	// nothing visible before commit
	_, found := storage.Pool.Journal.LastElement()
	assert.False(t, found, "visible before commit")

	err := trx.Commit()
	assert.Nil(t, err, "commit error")

	last, found := storage.Pool.Journal.LastElement()
	assert.True(t, found, "missing journal entry")
	assert.Equal(t, []byte("entry"), last.Value, "wrong journal entry")
	last, found = storage.Pool.Withdrawals.LastElement()
	assert.True(t, found, "missing withdrawal")
	assert.Equal(t, []byte("payout"), last.Value, "wrong withdrawal")

	trx.Put(storage.Pool.Journal, sequenceKey(2), []byte("dropped"))
	trx.Abort()
	assert.Nil(t, trx.Commit(), "empty commit error")

	last, _ = storage.Pool.Journal.LastElement()
	assert.Equal(t, sequenceKey(1), last.Key, "aborted write visible")
}

func TestCommitAfterFinalise(t *testing.T) {
	databaseFileName := setup(t)

	trx := storage.NewTransaction()
	trx.Put(storage.Pool.Journal, sequenceKey(1), []byte("late"))

	teardown(databaseFileName)

	assert.Equal(t, fault.ErrNotInitialised, trx.Commit(), "commit without database")
}

func TestDoubleInitialise(t *testing.T) {
	databaseFileName := setup(t)
	defer teardown(databaseFileName)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise accepted")
}
