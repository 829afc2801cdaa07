// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/fault"
)

// the swap engine records which swap holds an item; the handle is a
// back reference only, the registry never follows it

// Outstanding - handle of the swap holding an item, zero if none
func (r *Registry) Outstanding(categoryName string, collectionIndex int, itemName string) (uint64, error) {
	c, err := r.collection(categoryName, collectionIndex)
	if nil != err {
		return 0, err
	}
	i, ok := c.items[itemName]
	if !ok {
		return 0, fault.ErrUnknownItem
	}
	return i.outstanding, nil
}

// CollectionOwner - owner of a collection
func (r *Registry) CollectionOwner(categoryName string, collectionIndex int) (account.Account, error) {
	c, err := r.collection(categoryName, collectionIndex)
	if nil != err {
		return account.Account{}, err
	}
	return c.owner, nil
}

// SetOutstanding - attach an item to a swap
func (r *Registry) SetOutstanding(categoryName string, collectionIndex int, itemName string, handle uint64) error {
	if 0 == handle {
		return fault.ErrInvalidOperation
	}
	c, err := r.collection(categoryName, collectionIndex)
	if nil != err {
		return err
	}
	i, ok := c.items[itemName]
	if !ok {
		return fault.ErrUnknownItem
	}
	if 0 != i.outstanding && handle != i.outstanding {
		return fault.ErrProposalAlreadyOutstanding
	}
	i.outstanding = handle
	return nil
}

// ClearOutstanding - detach an item, only if it is held by the given swap
//
// the item may have been removed and re-added since, in which case
// there is nothing to clear
func (r *Registry) ClearOutstanding(categoryName string, collectionIndex int, itemName string, handle uint64) {
	c, err := r.collection(categoryName, collectionIndex)
	if nil != err {
		return
	}
	i, ok := c.items[itemName]
	if !ok || handle != i.outstanding {
		return
	}
	i.outstanding = 0
}
