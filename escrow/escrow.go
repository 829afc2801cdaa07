// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package escrow - locked and redeemable balances
//
// each operation computes every new balance before writing any of
// them, so an overflow leaves the ledger unchanged
package escrow

import (
	"math/bits"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/fault"
)

// Payout - transfers a withdrawn amount out of the ledger
type Payout interface {
	Pay(identity account.Account, amount uint64) error
}

// PayoutFunc - adapter to use a function as a Payout
type PayoutFunc func(identity account.Account, amount uint64) error

// Pay - call f
func (f PayoutFunc) Pay(identity account.Account, amount uint64) error {
	return f(identity, amount)
}

// Totals - ledger wide sums
//
// Locked + Redeemable == Deposited - Withdrawn
type Totals struct {
	Locked     uint64 `json:"locked"`
	Redeemable uint64 `json:"redeemable"`
	Deposited  uint64 `json:"deposited"`
	Withdrawn  uint64 `json:"withdrawn"`
}

type balance struct {
	locked     uint64
	redeemable uint64
}

// Ledger - balances per identity
type Ledger struct {
	log      *logger.L
	balances map[account.Account]*balance
	totals   Totals
}

// New - empty ledger
func New(log *logger.L) *Ledger {
	return &Ledger{
		log:      log,
		balances: make(map[account.Account]*balance),
	}
}

func (l *Ledger) get(identity account.Account) balance {
	if b, ok := l.balances[identity]; ok {
		return *b
	}
	return balance{}
}

func (l *Ledger) set(identity account.Account, b balance) {
	if 0 == b.locked && 0 == b.redeemable {
		delete(l.balances, identity)
		return
	}
	l.balances[identity] = &b
}

// CanLock - check that Lock would succeed
func (l *Ledger) CanLock(identity account.Account, amount uint64) error {
	_, _, err := l.lock(identity, amount)
	return err
}

func (l *Ledger) lock(identity account.Account, amount uint64) (balance, Totals, error) {
	b := l.get(identity)
	t := l.totals

	var overflow bool
	if b.locked, overflow = add(b.locked, amount); overflow {
		return b, t, fault.ErrArithmeticOverflow
	}
	if t.Locked, overflow = add(t.Locked, amount); overflow {
		return b, t, fault.ErrArithmeticOverflow
	}
	if t.Deposited, overflow = add(t.Deposited, amount); overflow {
		return b, t, fault.ErrArithmeticOverflow
	}
	return b, t, nil
}

// Lock - move an attached amount into the locked pool of identity
func (l *Ledger) Lock(identity account.Account, amount uint64) error {
	if identity.IsZero() {
		return fault.ErrInvalidAccount
	}
	b, t, err := l.lock(identity, amount)
	if nil != err {
		return err
	}
	l.set(identity, b)
	l.totals = t
	l.log.Debugf("lock: %d  for: %s", amount, identity)
	return nil
}

// Release - move amount from locked to redeemable for the same identity
func (l *Ledger) Release(identity account.Account, amount uint64) error {
	b := l.get(identity)
	t := l.totals

	var overflow bool
	if b.locked, overflow = sub(b.locked, amount); overflow {
		return fault.ErrArithmeticOverflow
	}
	if b.redeemable, overflow = add(b.redeemable, amount); overflow {
		return fault.ErrArithmeticOverflow
	}
	if t.Locked, overflow = sub(t.Locked, amount); overflow {
		return fault.ErrArithmeticOverflow
	}
	if t.Redeemable, overflow = add(t.Redeemable, amount); overflow {
		return fault.ErrArithmeticOverflow
	}

	l.set(identity, b)
	l.totals = t
	l.log.Debugf("release: %d  to: %s", amount, identity)
	return nil
}

// Settle - exchange locked amounts between two parties
//
// amountA leaves a's locked pool for b's redeemable pool and amountB
// leaves b's locked pool for a's redeemable pool
func (l *Ledger) Settle(a account.Account, amountA uint64, b account.Account, amountB uint64) error {
	if a == b {
		return fault.ErrSelfSwap
	}
	ba := l.get(a)
	bb := l.get(b)
	t := l.totals

	var overflow bool
	if ba.locked, overflow = sub(ba.locked, amountA); overflow {
		return fault.ErrArithmeticOverflow
	}
	if bb.locked, overflow = sub(bb.locked, amountB); overflow {
		return fault.ErrArithmeticOverflow
	}
	if bb.redeemable, overflow = add(bb.redeemable, amountA); overflow {
		return fault.ErrArithmeticOverflow
	}
	if ba.redeemable, overflow = add(ba.redeemable, amountB); overflow {
		return fault.ErrArithmeticOverflow
	}
	moved, overflow := add(amountA, amountB)
	if overflow {
		return fault.ErrArithmeticOverflow
	}
	if t.Locked, overflow = sub(t.Locked, moved); overflow {
		return fault.ErrArithmeticOverflow
	}
	if t.Redeemable, overflow = add(t.Redeemable, moved); overflow {
		return fault.ErrArithmeticOverflow
	}

	l.set(a, ba)
	l.set(b, bb)
	l.totals = t
	l.log.Debugf("settle: %s: %d <-> %s: %d", a, amountA, b, amountB)
	return nil
}

// Take - pay out the whole redeemable balance of identity
//
// the balance is zeroed before the payout runs and restored if the
// payout fails
func (l *Ledger) Take(identity account.Account, payout Payout) (uint64, error) {
	b := l.get(identity)
	amount := b.redeemable
	if 0 == amount {
		return 0, fault.ErrNothingToRedeem
	}

	t := l.totals
	withdrawn, overflow := add(t.Withdrawn, amount)
	if overflow {
		return 0, fault.ErrArithmeticOverflow
	}

	saved := b
	savedTotals := t

	b.redeemable = 0
	t.Redeemable -= amount
	t.Withdrawn = withdrawn
	l.set(identity, b)
	l.totals = t

	err := payout.Pay(identity, amount)
	if nil != err {
		l.log.Errorf("payout: %d  to: %s  error: %s", amount, identity, err)
		l.set(identity, saved)
		l.totals = savedTotals
		return 0, err
	}

	l.log.Infof("take: %d  by: %s", amount, identity)
	return amount, nil
}

// Redeemable - withdrawable balance of identity
func (l *Ledger) Redeemable(identity account.Account) uint64 {
	return l.get(identity).redeemable
}

// Locked - balance of identity committed to open swaps
func (l *Ledger) Locked(identity account.Account) uint64 {
	return l.get(identity).locked
}

// Totals - ledger wide sums
func (l *Ledger) Totals() Totals {
	return l.totals
}

// Accounts - number of identities holding a balance
func (l *Ledger) Accounts() int {
	return len(l.balances)
}

func add(a uint64, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, 0 != carry
}

func sub(a uint64, b uint64) (uint64, bool) {
	diff, borrow := bits.Sub64(a, b, 0)
	return diff, 0 != borrow
}
