// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package journal - append only record of accepted calls
//
// each record is written together with any escrow withdrawal staged
// by the same call so that a restart never repeats a payout
package journal

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/fault"
	"github.com/bitmark-inc/swapmeet/storage"
)

const (
	amountSize = 8
)

// Journal - sequenced call records on top of the storage pools
type Journal struct {
	sync.Mutex
	log    *logger.L
	next   uint64
	trx    storage.Transaction
	staged bool
}

// New - open the journal, storage must already be initialised
func New(log *logger.L) (*Journal, error) {
	if nil == storage.Pool.Journal {
		return nil, fault.ErrNotInitialised
	}

	next := uint64(1)
	last, found := storage.Pool.Journal.LastElement()
	if found {
		if 8 != len(last.Key) {
			return nil, fault.ErrInvalidKeyLength
		}
		next = binary.BigEndian.Uint64(last.Key) + 1
	}

	log.Infof("next journal sequence: %d", next)

	return &Journal{
		log:  log,
		next: next,
		trx:  storage.NewTransaction(),
	}, nil
}

// Next - sequence number the next record will have
func (j *Journal) Next() uint64 {
	j.Lock()
	defer j.Unlock()
	return j.next
}

// Append - write a record and any staged withdrawal
func (j *Journal) Append(record []byte) (uint64, error) {
	if 0 == len(record) {
		return 0, fault.ErrMissingParameters
	}

	j.Lock()
	defer j.Unlock()

	sequence := j.next
	j.trx.Put(storage.Pool.Journal, sequenceKey(sequence), record)

	err := j.trx.Commit()
	if nil != err {
		j.trx.Abort()
		j.staged = false
		return 0, err
	}

	j.log.Debugf("append: %d  withdrawal: %t  record: %s", sequence, j.staged, record)

	j.staged = false
	j.next += 1
	return sequence, nil
}

// Pay - stage a withdrawal to be written with the next record
func (j *Journal) Pay(identity account.Account, amount uint64) error {
	if identity.IsZero() {
		return fault.ErrInvalidAccount
	}

	j.Lock()
	defer j.Unlock()

	if j.staged {
		return fault.ErrInvalidOperation
	}

	value := make([]byte, amountSize, amountSize+64)
	binary.BigEndian.PutUint64(value, amount)
	value = append(value, identity.Bytes()...)

	j.trx.Put(storage.Pool.Withdrawals, sequenceKey(j.next), value)
	j.staged = true

	j.log.Infof("stage withdrawal: %d  to: %s", amount, identity)
	return nil
}

// Discard - drop anything staged by a call that was not accepted
func (j *Journal) Discard() {
	j.Lock()
	j.trx.Abort()
	j.staged = false
	j.Unlock()
}

// Replay - run a function on every record in sequence order
func (j *Journal) Replay(f func(sequence uint64, record []byte) error) error {
	expected := uint64(1)
	return storage.Pool.Journal.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if 8 != len(key) {
			return fault.ErrInvalidKeyLength
		}
		sequence := binary.BigEndian.Uint64(key)
		if sequence != expected {
			j.log.Criticalf("journal gap: expected: %d  actual: %d", expected, sequence)
			return fault.ErrJournalSequenceGap
		}
		expected += 1
		return f(sequence, value)
	})
}

// Entry - one journalled call
type Entry struct {
	Sequence uint64
	Record   []byte
}

// Page - at most count records, the first having a sequence of at least start
func (j *Journal) Page(start uint64, count int) ([]Entry, error) {
	elements, err := storage.Pool.Journal.NewFetchCursor().Seek(sequenceKey(start)).Fetch(count)
	if nil != err {
		return nil, err
	}

	entries := make([]Entry, 0, len(elements))
	for _, e := range elements {
		if 8 != len(e.Key) {
			return nil, fault.ErrInvalidKeyLength
		}
		entries = append(entries, Entry{
			Sequence: binary.BigEndian.Uint64(e.Key),
			Record:   e.Value,
		})
	}
	return entries, nil
}

// Withdrawals - run a function on every recorded payout
func (j *Journal) Withdrawals(f func(sequence uint64, identity account.Account, amount uint64) error) error {
	return storage.Pool.Withdrawals.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if 8 != len(key) || len(value) <= amountSize {
			return fault.ErrInvalidKeyLength
		}
		identity, err := account.FromBytes(value[amountSize:])
		if nil != err {
			return err
		}
		return f(binary.BigEndian.Uint64(key), identity, binary.BigEndian.Uint64(value[:amountSize]))
	})
}

func sequenceKey(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}
