// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package collectables

import (
	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/digest"
	"github.com/bitmark-inc/swapmeet/event"
	"github.com/bitmark-inc/swapmeet/swap"
)

// AddCategory - owner only
func (c *Collectables) AddCategory(caller account.Account, name string) error {
	return c.apply(&call{
		Operation: opAddCategory,
		Caller:    caller,
		Name:      name,
	}, func() error {
		return c.registry.AddCategory(name, caller)
	})
}

// AddCollector - register or rename the caller
func (c *Collectables) AddCollector(caller account.Account, name string) error {
	return c.apply(&call{
		Operation: opAddCollector,
		Caller:    caller,
		Name:      name,
	}, func() error {
		return c.registry.AddCollector(name, caller)
	})
}

// AddCollection - returns the index of the new collection in its category
func (c *Collectables) AddCollection(caller account.Account, name string, tags string, category string) (int, error) {
	index := 0
	err := c.apply(&call{
		Operation: opAddCollection,
		Caller:    caller,
		Name:      name,
		Tags:      tags,
		Category:  category,
	}, func() error {
		var err error
		index, err = c.registry.AddCollection(name, tags, category, caller)
		return err
	})
	return index, err
}

// AddItem - collection owner only
func (c *Collectables) AddItem(caller account.Account, category string, collection int, name string, contentHash digest.Digest, value uint64, swappable bool) error {
	return c.apply(&call{
		Operation:  opAddItem,
		Caller:     caller,
		Category:   category,
		Collection: collection,
		Name:       name,
		Hash:       &contentHash,
		Value:      value,
		Swappable:  swappable,
	}, func() error {
		return c.registry.AddItem(category, collection, name, contentHash, value, swappable, caller)
	})
}

// RemoveItem - collection owner only
func (c *Collectables) RemoveItem(caller account.Account, category string, collection int, name string) error {
	return c.apply(&call{
		Operation:  opRemoveItem,
		Caller:     caller,
		Category:   category,
		Collection: collection,
		Name:       name,
	}, func() error {
		return c.registry.RemoveItem(category, collection, name, caller)
	})
}

// AddProposedSwap - payable, returns the swapper's and the swappee's slots
func (c *Collectables) AddProposedSwap(caller account.Account, proposal swap.Proposal, value uint64) (int, int, error) {
	swapperIndex := 0
	swappeeIndex := 0
	err := c.apply(&call{
		Operation: opProposeSwap,
		Caller:    caller,
		Value:     value,
		Proposal:  &proposal,
	}, func() error {
		var err error
		swapperIndex, swappeeIndex, err = c.engine.Propose(caller, proposal, value)
		return err
	})
	return swapperIndex, swappeeIndex, err
}

// RejectSwap - swappee only
func (c *Collectables) RejectSwap(caller account.Account, category string, collection int, index int) error {
	return c.apply(&call{
		Operation:  opRejectSwap,
		Caller:     caller,
		Category:   category,
		Collection: collection,
		Index:      index,
	}, func() error {
		return c.engine.Reject(caller, category, collection, index)
	})
}

// ConfirmSwap - payable, swappee only
func (c *Collectables) ConfirmSwap(caller account.Account, category string, collection int, index int, address digest.Digest, value uint64) error {
	return c.apply(&call{
		Operation:  opConfirmSwap,
		Caller:     caller,
		Value:      value,
		Category:   category,
		Collection: collection,
		Index:      index,
		Hash:       &address,
	}, func() error {
		return c.engine.Confirm(caller, category, collection, index, address, value)
	})
}

// AddTrackingReference - for the caller's own leg
func (c *Collectables) AddTrackingReference(caller account.Account, category string, collection int, index int, reference string, leg swap.Leg) error {
	return c.apply(&call{
		Operation:  opAddTracking,
		Caller:     caller,
		Category:   category,
		Collection: collection,
		Index:      index,
		Reference:  reference,
		Leg:        leg,
	}, func() error {
		return c.engine.AddTrackingReference(caller, category, collection, index, reference, leg)
	})
}

// MarkItemReceived - for the caller's own leg
func (c *Collectables) MarkItemReceived(caller account.Account, category string, collection int, index int, leg swap.Leg) error {
	return c.apply(&call{
		Operation:  opMarkReceived,
		Caller:     caller,
		Category:   category,
		Collection: collection,
		Index:      index,
		Leg:        leg,
	}, func() error {
		return c.engine.MarkItemReceived(caller, category, collection, index, leg)
	})
}

// TakeRedeemableEscrow - pay out the caller's whole redeemable balance
func (c *Collectables) TakeRedeemableEscrow(caller account.Account) (uint64, error) {
	amount := uint64(0)
	err := c.apply(&call{
		Operation: opTakeRedeemable,
		Caller:    caller,
	}, func() error {
		payout := c.payout
		if c.replaying {
			payout = replayPayout
		}
		var err error
		amount, err = c.ledger.Take(caller, payout)
		if nil != err {
			return err
		}
		c.pending.Emit(event.EscrowRedeemed{
			Identity: caller,
			Amount:   amount,
		})
		return nil
	})
	return amount, err
}
