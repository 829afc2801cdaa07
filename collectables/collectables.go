// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package collectables - serialised access to the registry, escrow and swaps
//
// each state changing call holds the lock for its whole duration and
// either succeeds completely or changes nothing; events raised by a
// successful call are journalled first and then published in order
package collectables

import (
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swapmeet/access"
	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/escrow"
	"github.com/bitmark-inc/swapmeet/event"
	"github.com/bitmark-inc/swapmeet/fault"
	"github.com/bitmark-inc/swapmeet/messagebus"
	"github.com/bitmark-inc/swapmeet/registry"
	"github.com/bitmark-inc/swapmeet/swap"
)

// Journal - durable record of accepted calls
type Journal interface {
	Append(record []byte) (uint64, error)
	Discard()
}

// Source - supplies previously journalled calls in order
type Source interface {
	Replay(func(sequence uint64, record []byte) error) error
}

// Collectables - the whole swap meet state
type Collectables struct {
	sync.RWMutex

	log *logger.L

	access   *access.Control
	registry *registry.Registry
	ledger   *escrow.Ledger
	engine   *swap.Engine

	pending event.Recorder
	bus     *messagebus.Bus
	journal Journal
	payout  escrow.Payout

	replaying bool
}

// New - create an empty state
//
// journal may be nil in which case nothing is recorded
func New(log *logger.L, owner account.Account, bus *messagebus.Bus, journal Journal, payout escrow.Payout) (*Collectables, error) {
	if nil == log || nil == bus || nil == payout {
		return nil, fault.ErrMissingParameters
	}

	control, err := access.New(owner)
	if nil != err {
		return nil, err
	}

	c := &Collectables{
		log:     log,
		access:  control,
		bus:     bus,
		journal: journal,
		payout:  payout,
	}
	c.registry = registry.New(log, control, &c.pending)
	c.ledger = escrow.New(log)
	c.engine = swap.New(log, c.registry, c.ledger, &c.pending)

	log.Infof("owner: %s", owner)
	return c, nil
}

// Owner - the administrative account
func (c *Collectables) Owner() account.Account {
	return c.access.Owner()
}

// run one state changing call
//
// must not hold lock
func (c *Collectables) apply(record *call, f func() error) error {
	c.Lock()
	defer c.Unlock()

	if record.Caller.IsZero() {
		return fault.ErrRequiredCaller
	}

	err := f()
	if nil != err {
		c.pending.Reset()
		if nil != c.journal {
			c.journal.Discard()
		}
		c.log.Debugf("%s by: %s  error: %s", record.Operation, record.Caller, err)
		return err
	}

	events := c.pending.Take()
	if c.replaying {
		return nil
	}

	if nil != c.journal {
		data, err := json.Marshal(record)
		logger.PanicIfError("collectables: encode journal record", err)
		sequence, err := c.journal.Append(data)
		logger.PanicIfError("collectables: append journal", err)
		c.log.Debugf("%s by: %s  journal: %d", record.Operation, record.Caller, sequence)
	}

	for _, e := range events {
		c.bus.Publish(e)
	}
	return nil
}

// Restore - apply journalled calls without recording or publishing them
func (c *Collectables) Restore(source Source) (int, error) {
	c.Lock()
	c.replaying = true
	c.Unlock()

	defer func() {
		c.Lock()
		c.replaying = false
		c.Unlock()
	}()

	n := 0
	err := source.Replay(func(sequence uint64, data []byte) error {
		var record call
		err := json.Unmarshal(data, &record)
		if nil != err {
			c.log.Criticalf("journal: %d  decode error: %s", sequence, err)
			return err
		}
		err = c.dispatch(&record)
		if nil != err {
			c.log.Criticalf("journal: %d  %s  replay error: %s", sequence, record.Operation, err)
			return err
		}
		n += 1
		return nil
	})
	if nil != err {
		return n, err
	}

	c.log.Infof("restored: %d calls", n)
	return n, nil
}

// no transfer happens when a journalled withdrawal is replayed
var replayPayout = escrow.PayoutFunc(func(account.Account, uint64) error {
	return nil
})
