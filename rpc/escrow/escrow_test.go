// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/escrow"
	"github.com/bitmark-inc/swapmeet/fault"
	"github.com/bitmark-inc/swapmeet/fixtures"
	"github.com/bitmark-inc/swapmeet/mode"
	rpcescrow "github.com/bitmark-inc/swapmeet/rpc/escrow"
	"github.com/bitmark-inc/swapmeet/rpc/idempotent"
	"github.com/bitmark-inc/swapmeet/rpc/mocks"
)

func newEscrow(ctl *gomock.Controller) (*rpcescrow.Escrow, *mocks.MockBalances) {
	b := mocks.NewMockBalances(ctl)
	e := rpcescrow.New(
		logger.New(fixtures.LogCategory),
		b,
		idempotent.New(idempotent.DefaultExpiry),
		func(m mode.Mode) bool { return mode.Normal == m },
		func() bool { return true },
	)
	return e, b
}

func TestRedeemable(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, b := newEscrow(ctl)

	b.EXPECT().Redeemable(fixtures.Alice).Return(100 * fixtures.Finney).Times(1)
	b.EXPECT().Locked(fixtures.Alice).Return(200 * fixtures.Finney).Times(1)

	var reply rpcescrow.BalanceReply
	err := e.Redeemable(&rpcescrow.BalanceArguments{Identity: fixtures.Alice}, &reply)
	assert.Nil(t, err, "wrong Redeemable")
	assert.Equal(t, fixtures.Alice, reply.Identity, "wrong identity")
	assert.Equal(t, 100*fixtures.Finney, reply.Redeemable, "wrong redeemable")
	assert.Equal(t, 200*fixtures.Finney, reply.Locked, "wrong locked")

	err = e.Redeemable(&rpcescrow.BalanceArguments{Identity: account.Account{}}, &reply)
	assert.Equal(t, fault.ErrInvalidAccount, err, "zero identity accepted")
}

func TestTotals(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, b := newEscrow(ctl)

	b.EXPECT().Totals().Return(escrow.Totals{Locked: 1, Redeemable: 2, Deposited: 5, Withdrawn: 2}).Times(1)

	var reply rpcescrow.TotalsReply
	err := e.Totals(&rpcescrow.TotalsArguments{}, &reply)
	assert.Nil(t, err, "wrong Totals")
	assert.Equal(t, rpcescrow.TotalsReply{Locked: 1, Redeemable: 2, Deposited: 5, Withdrawn: 2}, reply, "wrong totals")
}

func TestTake(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, b := newEscrow(ctl)

	b.EXPECT().TakeRedeemableEscrow(fixtures.Alice).Return(100*fixtures.Finney, nil).Times(1)
	b.EXPECT().TakeRedeemableEscrow(fixtures.Bob).Return(uint64(0), fault.ErrNothingToRedeem).Times(1)

	arg := rpcescrow.TakeArguments{Caller: fixtures.Alice, RequestID: "take-1"}

	var reply rpcescrow.TakeReply
	err := e.Take(&arg, &reply)
	assert.Nil(t, err, "wrong Take")
	assert.Equal(t, 100*fixtures.Finney, reply.Amount, "wrong amount")

	// a retried take reports the original payout instead of failing
	var retry rpcescrow.TakeReply
	err = e.Take(&arg, &retry)
	assert.Nil(t, err, "wrong retry")
	assert.Equal(t, reply, retry, "wrong retry amount")

	err = e.Take(&rpcescrow.TakeArguments{Caller: fixtures.Bob}, &reply)
	assert.Equal(t, fault.ErrNothingToRedeem, err, "wrong error")
}
