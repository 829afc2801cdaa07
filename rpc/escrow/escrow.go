// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/escrow"
	"github.com/bitmark-inc/swapmeet/fault"
	"github.com/bitmark-inc/swapmeet/mode"
	"github.com/bitmark-inc/swapmeet/rpc/idempotent"
	"github.com/bitmark-inc/swapmeet/rpc/ratelimit"
)

const (
	rateLimitEscrow = 100
	rateBurstEscrow = 50
)

// Balances - the escrow operations served by this area
type Balances interface {
	Redeemable(identity account.Account) uint64
	Locked(identity account.Account) uint64
	Totals() escrow.Totals
	TakeRedeemableEscrow(caller account.Account) (uint64, error)
}

// Escrow - type for the RPC
type Escrow struct {
	Log              *logger.L
	Limiter          *rate.Limiter
	IsNormalMode     func(mode.Mode) bool
	IsTestingNetwork func() bool
	balances         Balances
	cache            *idempotent.Cache
}

// New - create the escrow RPC area
func New(log *logger.L, balances Balances, cache *idempotent.Cache, isNormalMode func(mode.Mode) bool, isTestingNetwork func() bool) *Escrow {
	return &Escrow{
		Log:              log,
		Limiter:          rate.NewLimiter(rateLimitEscrow, rateBurstEscrow),
		IsNormalMode:     isNormalMode,
		IsTestingNetwork: isTestingNetwork,
		balances:         balances,
		cache:            cache,
	}
}

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Identity account.Account `json:"identity"`
}

// BalanceReply - escrow held for one identity
type BalanceReply struct {
	Identity   account.Account `json:"identity"`
	Redeemable uint64          `json:"redeemable,string"`
	Locked     uint64          `json:"locked,string"`
}

// Redeemable - balances of an identity
func (e *Escrow) Redeemable(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	if arguments.Identity.IsZero() {
		return fault.ErrInvalidAccount
	}

	reply.Identity = arguments.Identity
	reply.Redeemable = e.balances.Redeemable(arguments.Identity)
	reply.Locked = e.balances.Locked(arguments.Identity)
	return nil
}

// TotalsArguments - arguments for RPC
type TotalsArguments struct{}

// TotalsReply - ledger wide sums
type TotalsReply struct {
	Locked     uint64 `json:"locked,string"`
	Redeemable uint64 `json:"redeemable,string"`
	Deposited  uint64 `json:"deposited,string"`
	Withdrawn  uint64 `json:"withdrawn,string"`
}

// Totals - ledger wide sums
func (e *Escrow) Totals(arguments *TotalsArguments, reply *TotalsReply) error {

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	t := e.balances.Totals()
	*reply = TotalsReply(t)
	return nil
}

// TakeArguments - arguments for RPC
type TakeArguments struct {
	Caller    account.Account `json:"caller"`
	RequestID string          `json:"requestId"`
}

// TakeReply - amount paid out
type TakeReply struct {
	Amount uint64 `json:"amount,string"`
}

// Take - pay out the caller's whole redeemable balance
func (e *Escrow) Take(arguments *TakeArguments, reply *TakeReply) error {

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	if !e.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringReplay
	}
	if arguments.Caller.IsZero() {
		return fault.ErrRequiredCaller
	}
	if arguments.Caller.IsTesting() != e.IsTestingNetwork() {
		return fault.ErrWrongNetworkForPublicKey
	}

	result, err := e.cache.Do(arguments.Caller, arguments.RequestID, "Escrow.Take", arguments, func() (interface{}, error) {
		amount, err := e.balances.TakeRedeemableEscrow(arguments.Caller)
		return TakeReply{Amount: amount}, err
	})
	if nil != err {
		return err
	}

	cached, ok := result.(TakeReply)
	if !ok {
		return fault.ErrRequestIDReused
	}
	*reply = cached

	e.Log.Infof("Take: %d by: %s", reply.Amount, arguments.Caller)
	return nil
}
