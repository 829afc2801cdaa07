// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package collectables

import (
	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/digest"
	"github.com/bitmark-inc/swapmeet/escrow"
	"github.com/bitmark-inc/swapmeet/registry"
	"github.com/bitmark-inc/swapmeet/swap"
)

// CategoryCount - number of categories
func (c *Collectables) CategoryCount() int {
	c.RLock()
	defer c.RUnlock()
	return c.registry.CategoryCount()
}

// Category - name of the category at index
func (c *Collectables) Category(index int) (string, error) {
	c.RLock()
	defer c.RUnlock()
	return c.registry.Category(index)
}

// Categories - all category names in order
func (c *Collectables) Categories() []string {
	c.RLock()
	defer c.RUnlock()
	n := c.registry.CategoryCount()
	names := make([]string, 0, n)
	for i := 0; i < n; i += 1 {
		name, _ := c.registry.Category(i)
		names = append(names, name)
	}
	return names
}

// CollectionCount - number of collections in a category
func (c *Collectables) CollectionCount(category string) (int, error) {
	c.RLock()
	defer c.RUnlock()
	return c.registry.CollectionCount(category)
}

// Collection - details of a collection
func (c *Collectables) Collection(category string, index int) (registry.Collection, error) {
	c.RLock()
	defer c.RUnlock()
	return c.registry.Collection(category, index)
}

// Item - details of an item
func (c *Collectables) Item(category string, collection int, name string) (registry.Item, error) {
	c.RLock()
	defer c.RUnlock()
	return c.registry.Item(category, collection, name)
}

// Items - item names of a collection
func (c *Collectables) Items(category string, collection int) ([]string, error) {
	c.RLock()
	defer c.RUnlock()
	return c.registry.Items(category, collection)
}

// IsCollector - true if identity registered
func (c *Collectables) IsCollector(identity account.Account) bool {
	c.RLock()
	defer c.RUnlock()
	return c.registry.IsCollector(identity)
}

// Collector - display name of a collector
func (c *Collectables) Collector(identity account.Account) (string, error) {
	c.RLock()
	defer c.RUnlock()
	return c.registry.Collector(identity)
}

// ProposedSwap - a live swap in the caller's book
func (c *Collectables) ProposedSwap(caller account.Account, category string, collection int, index int) (swap.Details, error) {
	c.RLock()
	defer c.RUnlock()
	return c.engine.ProposedSwap(caller, category, collection, index)
}

// ConfirmedSwap - a confirmed or completed swap in the caller's book
func (c *Collectables) ConfirmedSwap(caller account.Account, category string, collection int, index int) (swap.Details, error) {
	c.RLock()
	defer c.RUnlock()
	return c.engine.ConfirmedSwap(caller, category, collection, index)
}

// Tracking - shipment records of a swap in the caller's book
func (c *Collectables) Tracking(caller account.Account, category string, collection int, index int) ([2]swap.Tracking, error) {
	c.RLock()
	defer c.RUnlock()
	return c.engine.Tracking(caller, category, collection, index)
}

// IsProposalSent - true while the caller has an open proposal for the offered item
func (c *Collectables) IsProposalSent(caller account.Account, category string, collection int, offeredHash digest.Digest) bool {
	c.RLock()
	defer c.RUnlock()
	return c.engine.IsProposalSent(caller, category, collection, offeredHash)
}

// ConfirmedCount - confirmed or completed swaps of the caller
func (c *Collectables) ConfirmedCount(caller account.Account) int {
	c.RLock()
	defer c.RUnlock()
	return c.engine.ConfirmedCount(caller)
}

// Book - live slots of the caller's book
func (c *Collectables) Book(caller account.Account, category string, collection int) []swap.Slot {
	c.RLock()
	defer c.RUnlock()
	return c.engine.Book(caller, category, collection)
}

// Redeemable - withdrawable balance
func (c *Collectables) Redeemable(identity account.Account) uint64 {
	c.RLock()
	defer c.RUnlock()
	return c.ledger.Redeemable(identity)
}

// Locked - balance committed to open swaps
func (c *Collectables) Locked(identity account.Account) uint64 {
	c.RLock()
	defer c.RUnlock()
	return c.ledger.Locked(identity)
}

// Totals - ledger wide sums
func (c *Collectables) Totals() escrow.Totals {
	c.RLock()
	defer c.RUnlock()
	return c.ledger.Totals()
}

// Audit - difference between locked escrow and the value held by open swaps
//
// zero when the ledger and the swaps agree
func (c *Collectables) Audit() (uint64, error) {
	c.RLock()
	defer c.RUnlock()
	locked, err := c.engine.LockedBySwaps()
	if nil != err {
		return 0, err
	}
	totals := c.ledger.Totals()
	if totals.Locked > locked {
		return totals.Locked - locked, nil
	}
	return locked - totals.Locked, nil
}
