// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package collectables

import (
	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/digest"
	"github.com/bitmark-inc/swapmeet/fault"
	"github.com/bitmark-inc/swapmeet/swap"
)

// journalled operation names
const (
	opAddCategory    = "addCategory"
	opAddCollector   = "addCollector"
	opAddCollection  = "addCollection"
	opAddItem        = "addItem"
	opRemoveItem     = "removeItem"
	opProposeSwap    = "addProposedSwap"
	opRejectSwap     = "rejectSwap"
	opConfirmSwap    = "confirmSwap"
	opAddTracking    = "addTrackingReference"
	opMarkReceived   = "markItemReceived"
	opTakeRedeemable = "takeRedeemableEscrow"
)

// a state changing call as stored in the journal
//
// Value is the attached value for payable calls and the item value
// for addItem
type call struct {
	Operation  string          `json:"op"`
	Caller     account.Account `json:"caller"`
	Value      uint64          `json:"value,omitempty"`
	Name       string          `json:"name,omitempty"`
	Tags       string          `json:"tags,omitempty"`
	Category   string          `json:"category,omitempty"`
	Collection int             `json:"collection,omitempty"`
	Index      int             `json:"index,omitempty"`
	Hash       *digest.Digest  `json:"hash,omitempty"`
	Swappable  bool            `json:"swappable,omitempty"`
	Proposal   *swap.Proposal  `json:"proposal,omitempty"`
	Reference  string          `json:"reference,omitempty"`
	Leg        swap.Leg        `json:"leg,omitempty"`
}

func (r *call) hash() digest.Digest {
	if nil == r.Hash {
		return digest.Digest{}
	}
	return *r.Hash
}

// re-run a journalled call
func (c *Collectables) dispatch(r *call) error {
	switch r.Operation {
	case opAddCategory:
		return c.AddCategory(r.Caller, r.Name)
	case opAddCollector:
		return c.AddCollector(r.Caller, r.Name)
	case opAddCollection:
		_, err := c.AddCollection(r.Caller, r.Name, r.Tags, r.Category)
		return err
	case opAddItem:
		return c.AddItem(r.Caller, r.Category, r.Collection, r.Name, r.hash(), r.Value, r.Swappable)
	case opRemoveItem:
		return c.RemoveItem(r.Caller, r.Category, r.Collection, r.Name)
	case opProposeSwap:
		if nil == r.Proposal {
			return fault.ErrMissingParameters
		}
		_, _, err := c.AddProposedSwap(r.Caller, *r.Proposal, r.Value)
		return err
	case opRejectSwap:
		return c.RejectSwap(r.Caller, r.Category, r.Collection, r.Index)
	case opConfirmSwap:
		return c.ConfirmSwap(r.Caller, r.Category, r.Collection, r.Index, r.hash(), r.Value)
	case opAddTracking:
		return c.AddTrackingReference(r.Caller, r.Category, r.Collection, r.Index, r.Reference, r.Leg)
	case opMarkReceived:
		return c.MarkItemReceived(r.Caller, r.Category, r.Collection, r.Index, r.Leg)
	case opTakeRedeemable:
		_, err := c.TakeRedeemableEscrow(r.Caller)
		return err
	default:
		return fault.ErrInvalidOperation
	}
}
