// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package swap - proposal, confirmation, tracking and completion of swaps
//
// swap records live in an append only arena addressed by a Handle;
// each party sees a swap through a slot in its own book, one book per
// (party, category, collection)
package swap

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/digest"
	"github.com/bitmark-inc/swapmeet/escrow"
	"github.com/bitmark-inc/swapmeet/event"
	"github.com/bitmark-inc/swapmeet/fault"
	"github.com/bitmark-inc/swapmeet/registry"
)

// MaximumReferenceLength - bytes allowed in a shipment reference
const MaximumReferenceLength = 32

// Handle - arena position of a swap, zero is never used
type Handle uint64

// free book slot
const noHandle Handle = 0

// Tracking - shipment state of one leg
type Tracking struct {
	Reference string `json:"reference"`
	Received  bool   `json:"received"`
}

// one party's view of a swap
type side struct {
	identity   account.Account
	collection int
	slot       int
	item       string
	itemHash   digest.Digest
	address    digest.Digest
}

type record struct {
	category string
	status   Status
	value    uint64
	legs     [2]side
	tracking [2]Tracking
}

type bookKey struct {
	party      account.Account
	category   string
	collection int
}

// Engine - the swap state machine
type Engine struct {
	log      *logger.L
	registry *registry.Registry
	ledger   *escrow.Ledger
	sink     event.Sink

	arena []*record // index = handle - 1, nil once rejected
	books map[bookKey][]Handle
}

// New - create an engine
func New(log *logger.L, r *registry.Registry, l *escrow.Ledger, sink event.Sink) *Engine {
	return &Engine{
		log:      log,
		registry: r,
		ledger:   l,
		sink:     sink,
		books:    make(map[bookKey][]Handle),
	}
}

// Proposal - arguments to Propose
type Proposal struct {
	Category          string          `json:"category"`
	SwapperCollection int             `json:"swapperCollection"`
	SwappeeCollection int             `json:"swappeeCollection"`
	Swappee           account.Account `json:"swappee"`
	SwapperAddress    digest.Digest   `json:"swapperAddress"`
	Wanted            string          `json:"wanted"`
	Offered           string          `json:"offered"`
}

// Propose - offer an item of the caller's for one of the swappee's
//
// value is locked in the caller's escrow; returns the slots assigned
// in the swapper's and the swappee's books
func (e *Engine) Propose(caller account.Account, p Proposal, value uint64) (int, int, error) {
	if !e.registry.IsCollector(caller) {
		return 0, 0, fault.ErrNotACollector
	}

	owner, err := e.registry.CollectionOwner(p.Category, p.SwapperCollection)
	if nil != err {
		return 0, 0, err
	}
	if owner != caller {
		return 0, 0, fault.ErrNotCollectionOwner
	}

	offered, err := e.registry.Item(p.Category, p.SwapperCollection, p.Offered)
	if nil != err {
		return 0, 0, err
	}
	if !offered.Swappable {
		return 0, 0, fault.ErrItemNotSwappable
	}
	if offered.Outstanding {
		return 0, 0, fault.ErrProposalAlreadyOutstanding
	}

	if caller == p.Swappee {
		return 0, 0, fault.ErrSelfSwap
	}

	owner, err = e.registry.CollectionOwner(p.Category, p.SwappeeCollection)
	if nil != err || owner != p.Swappee {
		return 0, 0, fault.ErrUnknownTargetItem
	}
	wanted, err := e.registry.Item(p.Category, p.SwappeeCollection, p.Wanted)
	if nil != err {
		return 0, 0, fault.ErrUnknownTargetItem
	}
	if !wanted.Swappable {
		return 0, 0, fault.ErrItemNotSwappable
	}

	err = e.ledger.CanLock(caller, value)
	if nil != err {
		return 0, 0, err
	}

	// all checks passed
	r := &record{
		category: p.Category,
		status:   Proposed,
		value:    value,
	}
	r.legs[SwapperLeg] = side{
		identity:   caller,
		collection: p.SwapperCollection,
		item:       p.Offered,
		itemHash:   offered.ContentHash,
		address:    p.SwapperAddress,
	}
	r.legs[SwappeeLeg] = side{
		identity:   p.Swappee,
		collection: p.SwappeeCollection,
		item:       p.Wanted,
		itemHash:   wanted.ContentHash,
	}

	e.arena = append(e.arena, r)
	h := Handle(len(e.arena))

	r.legs[SwapperLeg].slot = e.place(bookKey{caller, p.Category, p.SwapperCollection}, h)
	r.legs[SwappeeLeg].slot = e.place(bookKey{p.Swappee, p.Category, p.SwappeeCollection}, h)

	err = e.registry.SetOutstanding(p.Category, p.SwapperCollection, p.Offered, uint64(h))
	logger.PanicIfError("swap.Propose set outstanding", err)
	err = e.ledger.Lock(caller, value)
	logger.PanicIfError("swap.Propose lock", err)

	e.log.Infof("proposed: %d  %s: %q[%d]/%d -> %s: %q[%d]/%d  value: %d",
		h,
		caller, p.Offered, p.SwapperCollection, r.legs[SwapperLeg].slot,
		p.Swappee, p.Wanted, p.SwappeeCollection, r.legs[SwappeeLeg].slot,
		value)

	e.sink.Emit(event.ProposalSent{
		Category:          p.Category,
		Swapper:           caller,
		SwapperCollection: p.SwapperCollection,
		SwapperIndex:      r.legs[SwapperLeg].slot,
		Swappee:           p.Swappee,
		SwappeeCollection: p.SwappeeCollection,
		Index:             r.legs[SwappeeLeg].slot,
	})
	return r.legs[SwapperLeg].slot, r.legs[SwappeeLeg].slot, nil
}

// Reject - swappee refuses a proposal, the swapper's value becomes redeemable
func (e *Engine) Reject(caller account.Account, category string, collection int, slot int) error {
	h, r, err := e.lookup(caller, category, collection, slot)
	if nil != err {
		return err
	}
	if Proposed != r.status {
		return fault.ErrUnknownProposal
	}
	if caller != r.legs[SwappeeLeg].identity {
		return fault.ErrUnauthorized
	}

	swapper := r.legs[SwapperLeg]
	err = e.ledger.Release(swapper.identity, r.value)
	if nil != err {
		return err
	}

	e.registry.ClearOutstanding(category, swapper.collection, swapper.item, uint64(h))
	for _, s := range r.legs {
		e.free(bookKey{s.identity, category, s.collection}, s.slot)
	}
	r.status = Rejected
	e.arena[h-1] = nil

	e.log.Infof("rejected: %d  refund: %d  to: %s", h, r.value, swapper.identity)

	e.sink.Emit(event.SwapRejected{
		Category: category,
		Swapper:  swapper.identity,
		Swappee:  caller,
		Index:    slot,
		Refunded: r.value,
	})
	return nil
}

// Confirm - swappee accepts a proposal with a matching value
func (e *Engine) Confirm(caller account.Account, category string, collection int, slot int, swappeeAddress digest.Digest, value uint64) error {
	h, r, err := e.lookup(caller, category, collection, slot)
	if nil != err {
		return err
	}
	if Proposed != r.status {
		return fault.ErrUnknownProposal
	}
	swappee := r.legs[SwappeeLeg]
	if caller != swappee.identity {
		return fault.ErrUnauthorized
	}
	if value != r.value {
		return fault.ErrValueMismatch
	}

	// the wanted item may have changed since the proposal
	owner, err := e.registry.CollectionOwner(category, swappee.collection)
	if nil != err || owner != caller {
		return fault.ErrUnknownTargetItem
	}
	wanted, err := e.registry.Item(category, swappee.collection, swappee.item)
	if nil != err || wanted.ContentHash != swappee.itemHash {
		return fault.ErrUnknownTargetItem
	}
	if wanted.Outstanding {
		return fault.ErrProposalAlreadyOutstanding
	}

	err = e.ledger.Lock(caller, value)
	if nil != err {
		return err
	}
	err = e.registry.SetOutstanding(category, swappee.collection, swappee.item, uint64(h))
	logger.PanicIfError("swap.Confirm set outstanding", err)

	r.legs[SwappeeLeg].address = swappeeAddress
	r.tracking = [2]Tracking{}
	r.status = Confirmed

	e.log.Infof("confirmed: %d  value: %d", h, value)

	e.sink.Emit(event.ConfirmationSent{
		Category: category,
		Sender:   r.legs[SwapperLeg].identity,
		Receiver: caller,
		Index:    slot,
	})
	return nil
}

// AddTrackingReference - record the shipment reference for the caller's leg
func (e *Engine) AddTrackingReference(caller account.Account, category string, collection int, slot int, reference string, leg Leg) error {
	_, r, err := e.confirmedLeg(caller, category, collection, slot, leg)
	if nil != err {
		return err
	}
	if len(reference) > MaximumReferenceLength {
		return fault.ErrReferenceTooLong
	}
	r.tracking[leg].Reference = reference
	return nil
}

// MarkItemReceived - the caller received the item owed on its leg
//
// once both legs have been received the swap completes and each
// party's locked value becomes redeemable by the other
func (e *Engine) MarkItemReceived(caller account.Account, category string, collection int, slot int, leg Leg) error {
	h, r, err := e.confirmedLeg(caller, category, collection, slot, leg)
	if nil != err {
		return err
	}
	if r.tracking[leg].Received {
		return nil
	}

	other := SwappeeLeg
	if SwappeeLeg == leg {
		other = SwapperLeg
	}
	if !r.tracking[other].Received {
		r.tracking[leg].Received = true
		e.log.Infof("received: %d  by: %s", h, leg)
		return nil
	}

	swapper := r.legs[SwapperLeg]
	swappee := r.legs[SwappeeLeg]
	err = e.ledger.Settle(swapper.identity, r.value, swappee.identity, r.value)
	if nil != err {
		return err
	}

	e.registry.ClearOutstanding(category, swapper.collection, swapper.item, uint64(h))
	e.registry.ClearOutstanding(category, swappee.collection, swappee.item, uint64(h))
	r.tracking = [2]Tracking{}
	r.status = Completed

	e.log.Infof("completed: %d", h)

	e.sink.Emit(event.SwapCompleted{
		Category: category,
		Swapper:  swapper.identity,
		Swappee:  swappee.identity,
		Index:    swappee.slot,
	})
	return nil
}

// find the record the caller's slot refers to
func (e *Engine) lookup(caller account.Account, category string, collection int, slot int) (Handle, *record, error) {
	book := e.books[bookKey{caller, category, collection}]
	if slot < 0 || slot >= len(book) || noHandle == book[slot] {
		return noHandle, nil, fault.ErrUnknownProposal
	}
	h := book[slot]
	r := e.arena[h-1]
	if nil == r {
		return noHandle, nil, fault.ErrUnknownProposal
	}
	return h, r, nil
}

func (e *Engine) confirmedLeg(caller account.Account, category string, collection int, slot int, leg Leg) (Handle, *record, error) {
	if !leg.Valid() {
		return noHandle, nil, fault.ErrInvalidLeg
	}
	h, r, err := e.lookup(caller, category, collection, slot)
	if nil != err {
		return noHandle, nil, err
	}
	if Confirmed != r.status {
		return noHandle, nil, fault.ErrUnknownProposal
	}
	if caller != r.legs[leg].identity {
		return noHandle, nil, fault.ErrUnauthorized
	}
	return h, r, nil
}

// put a handle in the lowest free slot of a book
func (e *Engine) place(key bookKey, h Handle) int {
	book := e.books[key]
	for i, existing := range book {
		if noHandle == existing {
			book[i] = h
			return i
		}
	}
	e.books[key] = append(book, h)
	return len(book)
}

func (e *Engine) free(key bookKey, slot int) {
	book := e.books[key]
	book[slot] = noHandle

	// trim trailing free slots
	n := len(book)
	for n > 0 && noHandle == book[n-1] {
		n -= 1
	}
	if 0 == n {
		delete(e.books, key)
		return
	}
	e.books[key] = book[:n]
}
