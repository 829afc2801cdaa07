// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow_test

import (
	"errors"
	"math"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/escrow"
	"github.com/bitmark-inc/swapmeet/fault"
	"github.com/bitmark-inc/swapmeet/fixtures"
)

func setup() *escrow.Ledger {
	fixtures.SetupTestLogger()
	return escrow.New(logger.New(fixtures.LogCategory))
}

func teardown() {
	fixtures.TeardownTestLogger()
}

func conserved(t *testing.T, l *escrow.Ledger) {
	totals := l.Totals()
	assert.Equal(t, totals.Deposited-totals.Withdrawn, totals.Locked+totals.Redeemable, "value not conserved: %+v", totals)
}

func TestLockAndRelease(t *testing.T) {
	l := setup()
	defer teardown()

	assert.Nil(t, l.Lock(fixtures.Bob, 100), "lock")
	assert.Equal(t, uint64(100), l.Locked(fixtures.Bob), "wrong locked")
	assert.Equal(t, uint64(0), l.Redeemable(fixtures.Bob), "wrong redeemable")
	conserved(t, l)

	assert.Equal(t, fault.ErrArithmeticOverflow, l.Release(fixtures.Bob, 101), "underflow accepted")
	assert.Equal(t, uint64(100), l.Locked(fixtures.Bob), "changed by failed release")

	assert.Nil(t, l.Release(fixtures.Bob, 100), "release")
	assert.Equal(t, uint64(0), l.Locked(fixtures.Bob), "wrong locked after release")
	assert.Equal(t, uint64(100), l.Redeemable(fixtures.Bob), "wrong redeemable after release")
	conserved(t, l)

	assert.Equal(t, fault.ErrInvalidAccount, l.Lock(account.Account{}, 1), "zero account accepted")
}

func TestLockOverflow(t *testing.T) {
	l := setup()
	defer teardown()

	assert.Nil(t, l.Lock(fixtures.Alice, math.MaxUint64), "lock max")
	assert.Equal(t, fault.ErrArithmeticOverflow, l.CanLock(fixtures.Bob, 1), "total overflow allowed")
	assert.Equal(t, fault.ErrArithmeticOverflow, l.Lock(fixtures.Alice, 1), "overflow accepted")
	assert.Equal(t, uint64(math.MaxUint64), l.Locked(fixtures.Alice), "changed by failed lock")
	assert.Equal(t, uint64(0), l.Locked(fixtures.Bob), "bob changed")
	conserved(t, l)
}

func TestSettle(t *testing.T) {
	l := setup()
	defer teardown()

	assert.Nil(t, l.Lock(fixtures.Bob, 100), "lock bob")
	assert.Nil(t, l.Lock(fixtures.Alice, 30), "lock alice")

	assert.Equal(t, fault.ErrArithmeticOverflow, l.Settle(fixtures.Bob, 100, fixtures.Alice, 31), "overdraw accepted")
	assert.Equal(t, uint64(100), l.Locked(fixtures.Bob), "bob changed by failed settle")
	assert.Equal(t, uint64(30), l.Locked(fixtures.Alice), "alice changed by failed settle")
	assert.Equal(t, fault.ErrSelfSwap, l.Settle(fixtures.Bob, 1, fixtures.Bob, 1), "self settle accepted")

	assert.Nil(t, l.Settle(fixtures.Bob, 100, fixtures.Alice, 30), "settle")
	assert.Equal(t, uint64(0), l.Locked(fixtures.Bob), "bob still locked")
	assert.Equal(t, uint64(0), l.Locked(fixtures.Alice), "alice still locked")
	assert.Equal(t, uint64(30), l.Redeemable(fixtures.Bob), "wrong bob redeemable")
	assert.Equal(t, uint64(100), l.Redeemable(fixtures.Alice), "wrong alice redeemable")
	conserved(t, l)
}

func TestTake(t *testing.T) {
	l := setup()
	defer teardown()

	paid := map[account.Account]uint64{}
	payout := escrow.PayoutFunc(func(identity account.Account, amount uint64) error {
		// balance must already be zero when the transfer happens
		assert.Equal(t, uint64(0), l.Redeemable(identity), "balance not zeroed before payout")
		paid[identity] += amount
		return nil
	})

	_, err := l.Take(fixtures.Bob, payout)
	assert.Equal(t, fault.ErrNothingToRedeem, err, "empty balance redeemed")

	assert.Nil(t, l.Lock(fixtures.Bob, 100), "lock")
	assert.Nil(t, l.Release(fixtures.Bob, 100), "release")

	amount, err := l.Take(fixtures.Bob, payout)
	assert.Nil(t, err, "take")
	assert.Equal(t, uint64(100), amount, "wrong amount")
	assert.Equal(t, uint64(100), paid[fixtures.Bob], "wrong payout")
	assert.Equal(t, uint64(0), l.Redeemable(fixtures.Bob), "balance kept")
	assert.Equal(t, 0, l.Accounts(), "empty balance kept")
	conserved(t, l)

	_, err = l.Take(fixtures.Bob, payout)
	assert.Equal(t, fault.ErrNothingToRedeem, err, "double withdrawal")
	assert.Equal(t, escrow.Totals{Deposited: 100, Withdrawn: 100}, l.Totals(), "wrong totals")
}

func TestTakeReentrant(t *testing.T) {
	l := setup()
	defer teardown()

	assert.Nil(t, l.Lock(fixtures.Bob, 50), "lock")
	assert.Nil(t, l.Release(fixtures.Bob, 50), "release")

	calls := 0
	var payout escrow.PayoutFunc
	payout = func(identity account.Account, amount uint64) error {
		calls += 1
		_, err := l.Take(identity, payout)
		assert.Equal(t, fault.ErrNothingToRedeem, err, "reentrant take succeeded")
		return nil
	}

	amount, err := l.Take(fixtures.Bob, payout)
	assert.Nil(t, err, "take")
	assert.Equal(t, uint64(50), amount, "wrong amount")
	assert.Equal(t, 1, calls, "wrong payout calls")
	conserved(t, l)
}

func TestTakePayoutFailure(t *testing.T) {
	l := setup()
	defer teardown()

	assert.Nil(t, l.Lock(fixtures.Bob, 100), "lock")
	assert.Nil(t, l.Release(fixtures.Bob, 100), "release")
	before := l.Totals()

	failure := errors.New("transfer refused")
	_, err := l.Take(fixtures.Bob, escrow.PayoutFunc(func(account.Account, uint64) error {
		return failure
	}))
	assert.Equal(t, failure, err, "wrong error")
	assert.Equal(t, uint64(100), l.Redeemable(fixtures.Bob), "balance not restored")
	assert.Equal(t, before, l.Totals(), "totals not restored")
}
