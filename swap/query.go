// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package swap

import (
	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/digest"
	"github.com/bitmark-inc/swapmeet/fault"
)

// Party - one side of a swap as seen by a query
type Party struct {
	Identity   account.Account `json:"identity"`
	Collection int             `json:"collection"`
	Index      int             `json:"index"`
	Item       string          `json:"item"`
	ItemHash   digest.Digest   `json:"itemHash"`
	Address    digest.Digest   `json:"address"`
}

// Details - a swap as seen by one of its parties
type Details struct {
	Category string `json:"category"`
	Status   Status `json:"status"`
	Value    uint64 `json:"value"`
	Swapper  Party  `json:"swapper"`
	Swappee  Party  `json:"swappee"`
}

// Slot - a live entry of a book
type Slot struct {
	Index  int    `json:"index"`
	Status Status `json:"status"`
	Leg    Leg    `json:"leg"`
}

func (r *record) details() Details {
	party := func(s side) Party {
		return Party{
			Identity:   s.identity,
			Collection: s.collection,
			Index:      s.slot,
			Item:       s.item,
			ItemHash:   s.itemHash,
			Address:    s.address,
		}
	}
	return Details{
		Category: r.category,
		Status:   r.status,
		Value:    r.value,
		Swapper:  party(r.legs[SwapperLeg]),
		Swappee:  party(r.legs[SwappeeLeg]),
	}
}

// ProposedSwap - any live swap in the caller's book
func (e *Engine) ProposedSwap(caller account.Account, category string, collection int, slot int) (Details, error) {
	_, r, err := e.lookup(caller, category, collection, slot)
	if nil != err {
		return Details{}, err
	}
	return r.details(), nil
}

// ConfirmedSwap - a confirmed or completed swap in the caller's book
func (e *Engine) ConfirmedSwap(caller account.Account, category string, collection int, slot int) (Details, error) {
	_, r, err := e.lookup(caller, category, collection, slot)
	if nil != err {
		return Details{}, err
	}
	if Confirmed != r.status && Completed != r.status {
		return Details{}, fault.ErrUnknownProposal
	}
	return r.details(), nil
}

// Tracking - shipment records indexed by Leg, empty once completed
func (e *Engine) Tracking(caller account.Account, category string, collection int, slot int) ([2]Tracking, error) {
	_, r, err := e.lookup(caller, category, collection, slot)
	if nil != err {
		return [2]Tracking{}, err
	}
	if Confirmed != r.status && Completed != r.status {
		return [2]Tracking{}, fault.ErrUnknownProposal
	}
	return r.tracking, nil
}

// IsProposalSent - true while the caller has an open proposal offering
// the item with the given hash from the collection
func (e *Engine) IsProposalSent(caller account.Account, category string, collection int, offeredHash digest.Digest) bool {
	for _, h := range e.books[bookKey{caller, category, collection}] {
		if noHandle == h {
			continue
		}
		r := e.arena[h-1]
		if nil == r || (Proposed != r.status && Confirmed != r.status) {
			continue
		}
		swapper := r.legs[SwapperLeg]
		if swapper.identity == caller && swapper.itemHash == offeredHash {
			return true
		}
	}
	return false
}

// ConfirmedCount - confirmed or completed swaps the caller is party to
func (e *Engine) ConfirmedCount(caller account.Account) int {
	n := 0
	for _, r := range e.arena {
		if nil == r || (Confirmed != r.status && Completed != r.status) {
			continue
		}
		if caller == r.legs[SwapperLeg].identity || caller == r.legs[SwappeeLeg].identity {
			n += 1
		}
	}
	return n
}

// Book - live slots of the caller's book in slot order
//
// a slot freed by rejection is given to the next proposal, so a slot
// index names a particular swap only until that swap is rejected
func (e *Engine) Book(caller account.Account, category string, collection int) []Slot {
	slots := []Slot{}
	for i, h := range e.books[bookKey{caller, category, collection}] {
		if noHandle == h {
			continue
		}
		r := e.arena[h-1]
		if nil == r {
			continue
		}
		leg := SwapperLeg
		if caller == r.legs[SwappeeLeg].identity {
			leg = SwappeeLeg
		}
		slots = append(slots, Slot{
			Index:  i,
			Status: r.status,
			Leg:    leg,
		})
	}
	return slots
}

// Count - number of live swaps in the arena
func (e *Engine) Count() int {
	n := 0
	for _, r := range e.arena {
		if nil != r {
			n += 1
		}
	}
	return n
}

// LockedBySwaps - audit that every locked balance is backed by a swap
//
// returns the sum of values locked by open swaps, which must equal
// the ledger's locked total
func (e *Engine) LockedBySwaps() (uint64, error) {
	total := uint64(0)
	for _, r := range e.arena {
		if nil == r {
			continue
		}
		n := uint64(0)
		switch r.status {
		case Proposed:
			n = r.value
		case Confirmed:
			if r.value > ^uint64(0)/2 {
				return 0, fault.ErrArithmeticOverflow
			}
			n = 2 * r.value
		}
		if total+n < total {
			return 0, fault.ErrArithmeticOverflow
		}
		total += n
	}
	return total, nil
}
