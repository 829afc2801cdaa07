// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/swapmeet/account"
	rpcescrow "github.com/bitmark-inc/swapmeet/rpc/escrow"
)

// Redeemable - escrow balances of an identity
func (c *Client) Redeemable(identity account.Account) (*rpcescrow.BalanceReply, error) {
	arguments := rpcescrow.BalanceArguments{
		Identity: identity,
	}
	var reply rpcescrow.BalanceReply
	if err := c.call("Escrow.Redeemable", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Totals - ledger wide sums
func (c *Client) Totals() (*rpcescrow.TotalsReply, error) {
	var reply rpcescrow.TotalsReply
	if err := c.call("Escrow.Totals", &rpcescrow.TotalsArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Redeem - withdraw the caller's whole redeemable balance
func (c *Client) Redeem() (*rpcescrow.TakeReply, error) {
	id, err := MakeRequestID()
	if nil != err {
		return nil, err
	}

	arguments := rpcescrow.TakeArguments{
		Caller:    c.caller,
		RequestID: id,
	}
	var reply rpcescrow.TakeReply
	if err := c.call("Escrow.Take", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
