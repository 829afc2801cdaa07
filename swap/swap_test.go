// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package swap_test

import (
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/swapmeet/access"
	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/escrow"
	"github.com/bitmark-inc/swapmeet/event"
	"github.com/bitmark-inc/swapmeet/fault"
	"github.com/bitmark-inc/swapmeet/fixtures"
	"github.com/bitmark-inc/swapmeet/registry"
	"github.com/bitmark-inc/swapmeet/swap"
)

const (
	shop  = "Coles Little Shop"
	alice = 0 // Alice's collection
	bob   = 1 // Bob's collection
	carol = 2 // Carol's collection
)

var value = 100 * fixtures.Finney

type testData struct {
	registry *registry.Registry
	ledger   *escrow.Ledger
	engine   *swap.Engine
	recorder *event.Recorder
}

func setup(t *testing.T) testData {
	fixtures.SetupTestLogger()
	log := logger.New(fixtures.LogCategory)

	control, err := access.New(fixtures.Owner)
	if nil != err {
		t.Fatalf("access error: %s", err)
	}
	recorder := &event.Recorder{}
	r := registry.New(log, control, recorder)
	l := escrow.New(log)
	d := testData{
		registry: r,
		ledger:   l,
		engine:   swap.New(log, r, l, recorder),
		recorder: recorder,
	}

	must(t, r.AddCategory(shop, fixtures.Owner))
	for _, c := range []struct {
		name     string
		identity account.Account
		item     string
	}{
		{"Alice", fixtures.Alice, "Vegemite"},
		{"Bob", fixtures.Bob, "Eggs"},
		{"Carol", fixtures.Carol, "Milk"},
	} {
		must(t, r.AddCollector(c.name, c.identity))
		_, err := r.AddCollection("Little Shop of "+c.name, "", shop, c.identity)
		must(t, err)
	}
	must(t, r.AddItem(shop, alice, "Vegemite", fixtures.VegemiteHash, value, true, fixtures.Alice))
	must(t, r.AddItem(shop, alice, "Display Case", fixtures.RemoveMeHash, 0, false, fixtures.Alice))
	must(t, r.AddItem(shop, bob, "Eggs", fixtures.EggsHash, value, true, fixtures.Bob))
	must(t, r.AddItem(shop, carol, "Milk", fixtures.RemoveMeHash, value, true, fixtures.Carol))

	recorder.Reset()
	return d
}

func teardown() {
	fixtures.TeardownTestLogger()
}

func must(t *testing.T, err error) {
	if nil != err {
		t.Fatalf("setup error: %s", err)
	}
}

// Bob offers his eggs for Alice's vegemite
func bobProposal() swap.Proposal {
	return swap.Proposal{
		Category:          shop,
		SwapperCollection: bob,
		SwappeeCollection: alice,
		Swappee:           fixtures.Alice,
		SwapperAddress:    fixtures.BobAddressHash,
		Wanted:            "Vegemite",
		Offered:           "Eggs",
	}
}

func (d testData) checkConservation(t *testing.T) {
	locked, err := d.engine.LockedBySwaps()
	assert.Nil(t, err, "locked by swaps")
	totals := d.ledger.Totals()
	assert.Equal(t, totals.Locked, locked, "locked escrow not backed by swaps")
	assert.Equal(t, totals.Deposited-totals.Withdrawn, totals.Locked+totals.Redeemable, "value not conserved")
}

func TestProposeAndReject(t *testing.T) {
	d := setup(t)
	defer teardown()

	swapperIndex, index, err := d.engine.Propose(fixtures.Bob, bobProposal(), value)
	assert.Nil(t, err, "propose")
	assert.Equal(t, 0, swapperIndex, "wrong swapper index")
	assert.Equal(t, 0, index, "wrong swappee index")
	assert.Equal(t, []event.Event{event.ProposalSent{
		Category:          shop,
		Swapper:           fixtures.Bob,
		SwapperCollection: bob,
		SwapperIndex:      0,
		Swappee:           fixtures.Alice,
		SwappeeCollection: alice,
		Index:             0,
	}}, d.recorder.Take(), "wrong events")

	assert.Equal(t, value, d.ledger.Locked(fixtures.Bob), "value not locked")
	d.checkConservation(t)

	// both parties see the same swap through their own books
	forAlice, err := d.engine.ProposedSwap(fixtures.Alice, shop, alice, 0)
	assert.Nil(t, err, "alice view")
	forBob, err := d.engine.ProposedSwap(fixtures.Bob, shop, bob, 0)
	assert.Nil(t, err, "bob view")
	assert.Equal(t, forAlice, forBob, "views differ")
	assert.Equal(t, swap.Proposed, forAlice.Status, "wrong status")
	assert.Equal(t, "Vegemite", forAlice.Swappee.Item, "wrong wanted item")
	assert.Equal(t, fixtures.VegemiteHash, forAlice.Swappee.ItemHash, "wrong wanted hash")
	assert.Equal(t, fixtures.EggsHash, forAlice.Swapper.ItemHash, "wrong offered hash")
	assert.Equal(t, fixtures.BobAddressHash, forAlice.Swapper.Address, "wrong swapper address")
	assert.Equal(t, value, forAlice.Value, "wrong value")

	assert.True(t, d.engine.IsProposalSent(fixtures.Bob, shop, bob, fixtures.EggsHash), "proposal not sent")
	assert.False(t, d.engine.IsProposalSent(fixtures.Alice, shop, alice, fixtures.VegemiteHash), "swappee reported as sender")

	// one outstanding proposal per item
	_, _, err = d.engine.Propose(fixtures.Bob, bobProposal(), value)
	assert.Equal(t, fault.ErrProposalAlreadyOutstanding, err, "second proposal accepted")

	// only the swappee can reject
	assert.Equal(t, fault.ErrUnauthorized, d.engine.Reject(fixtures.Bob, shop, bob, 0), "swapper rejected")
	assert.Equal(t, fault.ErrUnknownProposal, d.engine.Reject(fixtures.Alice, shop, alice, 1), "empty slot rejected")

	assert.Nil(t, d.engine.Reject(fixtures.Alice, shop, alice, 0), "reject")
	assert.Equal(t, []event.Event{event.SwapRejected{
		Category: shop,
		Swapper:  fixtures.Bob,
		Swappee:  fixtures.Alice,
		Index:    0,
		Refunded: value,
	}}, d.recorder.Take(), "wrong events")

	_, err = d.engine.ProposedSwap(fixtures.Alice, shop, alice, 0)
	assert.Equal(t, fault.ErrUnknownProposal, err, "rejected swap readable")
	_, err = d.engine.ProposedSwap(fixtures.Bob, shop, bob, 0)
	assert.Equal(t, fault.ErrUnknownProposal, err, "rejected swap readable by swapper")

	assert.Equal(t, value, d.ledger.Redeemable(fixtures.Bob), "refund not redeemable")
	assert.Equal(t, uint64(0), d.ledger.Locked(fixtures.Bob), "value still locked")
	assert.Equal(t, fault.ErrUnknownProposal, d.engine.Reject(fixtures.Alice, shop, alice, 0), "double reject")

	eggs, _ := d.registry.Item(shop, bob, "Eggs")
	assert.False(t, eggs.Outstanding, "offered item still outstanding")
	assert.False(t, d.engine.IsProposalSent(fixtures.Bob, shop, bob, fixtures.EggsHash), "rejected proposal still sent")
	d.checkConservation(t)
}

func TestProposePreconditions(t *testing.T) {
	d := setup(t)
	defer teardown()

	with := func(f func(p *swap.Proposal)) swap.Proposal {
		p := bobProposal()
		f(&p)
		return p
	}

	tests := []struct {
		name     string
		caller   account.Account
		proposal swap.Proposal
		err      error
	}{
		{"unregistered", fixtures.Owner, bobProposal(), fault.ErrNotACollector},
		{"category", fixtures.Bob, with(func(p *swap.Proposal) { p.Category = "Woolworths" }), fault.ErrUnknownCategory},
		{"collection", fixtures.Bob, with(func(p *swap.Proposal) { p.SwapperCollection = 7 }), fault.ErrUnknownCollection},
		{"not owner", fixtures.Bob, with(func(p *swap.Proposal) { p.SwapperCollection = carol }), fault.ErrNotCollectionOwner},
		{"offered", fixtures.Bob, with(func(p *swap.Proposal) { p.Offered = "Bacon" }), fault.ErrUnknownItem},
		{"self", fixtures.Bob, with(func(p *swap.Proposal) { p.Swappee = fixtures.Bob }), fault.ErrSelfSwap},
		{"wanted", fixtures.Bob, with(func(p *swap.Proposal) { p.Wanted = "Marmite" }), fault.ErrUnknownTargetItem},
		{"target owner", fixtures.Bob, with(func(p *swap.Proposal) { p.Swappee = fixtures.Carol }), fault.ErrUnknownTargetItem},
		{"target collection", fixtures.Bob, with(func(p *swap.Proposal) { p.SwappeeCollection = 9 }), fault.ErrUnknownTargetItem},
		{"wanted not swappable", fixtures.Bob, with(func(p *swap.Proposal) { p.Wanted = "Display Case" }), fault.ErrItemNotSwappable},
	}

	for _, test := range tests {
		_, _, err := d.engine.Propose(test.caller, test.proposal, value)
		assert.Equal(t, test.err, err, "%s: wrong error", test.name)
	}

	// offered item not swappable
	_, _, err := d.engine.Propose(fixtures.Alice, swap.Proposal{
		Category:          shop,
		SwapperCollection: alice,
		SwappeeCollection: bob,
		Swappee:           fixtures.Bob,
		Wanted:            "Eggs",
		Offered:           "Display Case",
	}, 0)
	assert.Equal(t, fault.ErrItemNotSwappable, err, "unswappable offer accepted")

	// nothing changed
	assert.Equal(t, 0, d.engine.Count(), "swap created by failed proposal")
	assert.Equal(t, 0, d.recorder.Len(), "events from failed proposal")
	assert.Equal(t, escrow.Totals{}, d.ledger.Totals(), "escrow changed by failed proposal")
	eggs, _ := d.registry.Item(shop, bob, "Eggs")
	assert.False(t, eggs.Outstanding, "item marked by failed proposal")
}

func TestConfirmAndComplete(t *testing.T) {
	d := setup(t)
	defer teardown()

	_, _, err := d.engine.Propose(fixtures.Bob, bobProposal(), value)
	assert.Nil(t, err, "propose")
	d.recorder.Reset()

	_, err = d.engine.ConfirmedSwap(fixtures.Alice, shop, alice, 0)
	assert.Equal(t, fault.ErrUnknownProposal, err, "unconfirmed swap reported as confirmed")

	assert.Equal(t, fault.ErrValueMismatch, d.engine.Confirm(fixtures.Alice, shop, alice, 0, fixtures.AliceAddressHash, value-1), "wrong value accepted")
	assert.Equal(t, fault.ErrUnauthorized, d.engine.Confirm(fixtures.Bob, shop, bob, 0, fixtures.BobAddressHash, value), "swapper confirmed")
	assert.Equal(t, uint64(0), d.ledger.Locked(fixtures.Alice), "locked by failed confirm")

	assert.Nil(t, d.engine.Confirm(fixtures.Alice, shop, alice, 0, fixtures.AliceAddressHash, value), "confirm")
	assert.Equal(t, []event.Event{event.ConfirmationSent{
		Category: shop,
		Sender:   fixtures.Bob,
		Receiver: fixtures.Alice,
		Index:    0,
	}}, d.recorder.Take(), "wrong events")
	assert.Equal(t, value, d.ledger.Locked(fixtures.Alice), "swappee value not locked")
	d.checkConservation(t)

	assert.Equal(t, fault.ErrUnknownProposal, d.engine.Confirm(fixtures.Alice, shop, alice, 0, fixtures.AliceAddressHash, value), "double confirm")
	assert.Equal(t, fault.ErrUnknownProposal, d.engine.Reject(fixtures.Alice, shop, alice, 0), "confirmed swap rejected")

	details, err := d.engine.ConfirmedSwap(fixtures.Bob, shop, bob, 0)
	assert.Nil(t, err, "confirmed swap")
	assert.Equal(t, swap.Confirmed, details.Status, "wrong status")
	assert.Equal(t, fixtures.AliceAddressHash, details.Swappee.Address, "swappee address not recorded")
	assert.Equal(t, 1, d.engine.ConfirmedCount(fixtures.Alice), "wrong alice count")
	assert.Equal(t, 1, d.engine.ConfirmedCount(fixtures.Bob), "wrong bob count")
	assert.Equal(t, 0, d.engine.ConfirmedCount(fixtures.Carol), "wrong carol count")

	vegemite, _ := d.registry.Item(shop, alice, "Vegemite")
	assert.True(t, vegemite.Outstanding, "wanted item not outstanding")

	// shipment
	assert.Nil(t, d.engine.AddTrackingReference(fixtures.Bob, shop, bob, 0, "AUSPOST-1234", swap.SwapperLeg), "bob tracking")
	assert.Nil(t, d.engine.MarkItemReceived(fixtures.Bob, shop, bob, 0, swap.SwapperLeg), "bob received")
	assert.Nil(t, d.engine.MarkItemReceived(fixtures.Bob, shop, bob, 0, swap.SwapperLeg), "bob received twice")

	tracking, err := d.engine.Tracking(fixtures.Alice, shop, alice, 0)
	assert.Nil(t, err, "tracking")
	assert.Equal(t, swap.Tracking{Reference: "AUSPOST-1234", Received: true}, tracking[swap.SwapperLeg], "wrong swapper tracking")
	assert.Equal(t, swap.Tracking{}, tracking[swap.SwappeeLeg], "swappee tracking changed")

	details, _ = d.engine.ConfirmedSwap(fixtures.Alice, shop, alice, 0)
	assert.Equal(t, swap.Confirmed, details.Status, "completed by one receipt")
	assert.Equal(t, uint64(0), d.ledger.Redeemable(fixtures.Alice), "released by one receipt")
	assert.Equal(t, 0, d.recorder.Len(), "events before completion")

	assert.Nil(t, d.engine.MarkItemReceived(fixtures.Alice, shop, alice, 0, swap.SwappeeLeg), "alice received")
	assert.Equal(t, []event.Event{event.SwapCompleted{
		Category: shop,
		Swapper:  fixtures.Bob,
		Swappee:  fixtures.Alice,
		Index:    0,
	}}, d.recorder.Take(), "wrong events")

	details, err = d.engine.ConfirmedSwap(fixtures.Alice, shop, alice, 0)
	assert.Nil(t, err, "completed swap")
	assert.Equal(t, swap.Completed, details.Status, "not completed")
	assert.Equal(t, swap.Status(3), details.Status, "wrong completed value")

	tracking, err = d.engine.Tracking(fixtures.Bob, shop, bob, 0)
	assert.Nil(t, err, "completed tracking")
	assert.Equal(t, [2]swap.Tracking{}, tracking, "tracking kept after completion")

	assert.Equal(t, value, d.ledger.Redeemable(fixtures.Alice), "alice not paid")
	assert.Equal(t, value, d.ledger.Redeemable(fixtures.Bob), "bob not paid")
	assert.Equal(t, uint64(0), d.ledger.Locked(fixtures.Alice), "alice still locked")
	assert.Equal(t, uint64(0), d.ledger.Locked(fixtures.Bob), "bob still locked")
	d.checkConservation(t)

	assert.Equal(t, 1, d.engine.ConfirmedCount(fixtures.Alice), "completed not counted")
	assert.False(t, d.engine.IsProposalSent(fixtures.Bob, shop, bob, fixtures.EggsHash), "completed swap still sent")
	assert.Equal(t, fault.ErrUnknownProposal, d.engine.MarkItemReceived(fixtures.Alice, shop, alice, 0, swap.SwappeeLeg), "completed swap marked")

	vegemite, _ = d.registry.Item(shop, alice, "Vegemite")
	assert.False(t, vegemite.Outstanding, "wanted item still outstanding")
	eggs, _ := d.registry.Item(shop, bob, "Eggs")
	assert.False(t, eggs.Outstanding, "offered item still outstanding")
}

func TestSlotNumbering(t *testing.T) {
	d := setup(t)
	defer teardown()

	_, index, err := d.engine.Propose(fixtures.Bob, bobProposal(), value)
	assert.Nil(t, err, "propose")
	assert.Equal(t, 0, index, "wrong first index")
	assert.Nil(t, d.engine.Reject(fixtures.Alice, shop, alice, 0), "reject")

	// rejection frees the slot
	_, index, err = d.engine.Propose(fixtures.Bob, bobProposal(), value)
	assert.Nil(t, err, "re-propose")
	assert.Equal(t, 0, index, "slot not reused after rejection")

	// Carol also wants the vegemite
	_, index, err = d.engine.Propose(fixtures.Carol, swap.Proposal{
		Category:          shop,
		SwapperCollection: carol,
		SwappeeCollection: alice,
		Swappee:           fixtures.Alice,
		Wanted:            "Vegemite",
		Offered:           "Milk",
	}, 0)
	assert.Nil(t, err, "carol propose")
	assert.Equal(t, 1, index, "wrong second index")

	assert.Equal(t, []swap.Slot{
		{Index: 0, Status: swap.Proposed, Leg: swap.SwappeeLeg},
		{Index: 1, Status: swap.Proposed, Leg: swap.SwappeeLeg},
	}, d.engine.Book(fixtures.Alice, shop, alice), "wrong book")

	// the vegemite can only go to one of them
	assert.Nil(t, d.engine.Confirm(fixtures.Alice, shop, alice, 1, fixtures.AliceAddressHash, 0), "confirm carol")
	assert.Equal(t, fault.ErrProposalAlreadyOutstanding, d.engine.Confirm(fixtures.Alice, shop, alice, 0, fixtures.AliceAddressHash, value), "vegemite promised twice")

	assert.Nil(t, d.engine.MarkItemReceived(fixtures.Carol, shop, carol, 0, swap.SwapperLeg), "carol received")
	assert.Nil(t, d.engine.MarkItemReceived(fixtures.Alice, shop, alice, 1, swap.SwappeeLeg), "alice received")

	// completion keeps the slot
	assert.Nil(t, d.engine.Reject(fixtures.Alice, shop, alice, 0), "reject bob")
	_, index, err = d.engine.Propose(fixtures.Bob, bobProposal(), value)
	assert.Nil(t, err, "propose again")
	assert.Equal(t, 0, index, "lowest free slot not used")
	_, index, err = d.engine.Propose(fixtures.Carol, swap.Proposal{
		Category:          shop,
		SwapperCollection: carol,
		SwappeeCollection: alice,
		Swappee:           fixtures.Alice,
		Wanted:            "Vegemite",
		Offered:           "Milk",
	}, 0)
	assert.Nil(t, err, "carol again")
	assert.Equal(t, 2, index, "completed slot reused")
	d.checkConservation(t)
}

func TestTrackingErrors(t *testing.T) {
	d := setup(t)
	defer teardown()

	_, _, err := d.engine.Propose(fixtures.Bob, bobProposal(), value)
	assert.Nil(t, err, "propose")

	assert.Equal(t, fault.ErrUnknownProposal, d.engine.AddTrackingReference(fixtures.Bob, shop, bob, 0, "x", swap.SwapperLeg), "tracking before confirm")
	assert.Equal(t, fault.ErrUnknownProposal, d.engine.MarkItemReceived(fixtures.Bob, shop, bob, 0, swap.SwapperLeg), "received before confirm")
	_, err = d.engine.Tracking(fixtures.Bob, shop, bob, 0)
	assert.Equal(t, fault.ErrUnknownProposal, err, "tracking read before confirm")

	assert.Nil(t, d.engine.Confirm(fixtures.Alice, shop, alice, 0, fixtures.AliceAddressHash, value), "confirm")

	assert.Equal(t, fault.ErrInvalidLeg, d.engine.AddTrackingReference(fixtures.Bob, shop, bob, 0, "x", swap.Leg(2)), "bad leg accepted")
	assert.Equal(t, fault.ErrUnauthorized, d.engine.AddTrackingReference(fixtures.Bob, shop, bob, 0, "x", swap.SwappeeLeg), "other leg accepted")
	assert.Equal(t, fault.ErrUnauthorized, d.engine.MarkItemReceived(fixtures.Alice, shop, alice, 0, swap.SwapperLeg), "other leg received")
	assert.Equal(t, fault.ErrUnknownProposal, d.engine.MarkItemReceived(fixtures.Carol, shop, carol, 0, swap.SwapperLeg), "stranger received")
	assert.Equal(t, fault.ErrReferenceTooLong, d.engine.AddTrackingReference(fixtures.Alice, shop, alice, 0, strings.Repeat("x", 33), swap.SwappeeLeg), "long reference accepted")
	assert.Nil(t, d.engine.AddTrackingReference(fixtures.Alice, shop, alice, 0, strings.Repeat("x", 32), swap.SwappeeLeg), "maximum reference")
}

func TestConfirmRemovedTarget(t *testing.T) {
	d := setup(t)
	defer teardown()

	_, _, err := d.engine.Propose(fixtures.Bob, bobProposal(), value)
	assert.Nil(t, err, "propose")

	// the wanted item is not held until confirmation
	assert.Nil(t, d.registry.RemoveItem(shop, alice, "Vegemite", fixtures.Alice), "remove wanted")
	assert.Equal(t, fault.ErrUnknownTargetItem, d.engine.Confirm(fixtures.Alice, shop, alice, 0, fixtures.AliceAddressHash, value), "removed target confirmed")

	// a different item under the same name is not the one proposed for
	assert.Nil(t, d.registry.AddItem(shop, alice, "Vegemite", fixtures.EggsHash, value, true, fixtures.Alice), "re-add")
	assert.Equal(t, fault.ErrUnknownTargetItem, d.engine.Confirm(fixtures.Alice, shop, alice, 0, fixtures.AliceAddressHash, value), "replaced target confirmed")

	assert.Equal(t, fault.ErrItemHasOutstandingProposal, d.registry.RemoveItem(shop, bob, "Eggs", fixtures.Bob), "offered item removed")
	assert.Nil(t, d.engine.Reject(fixtures.Alice, shop, alice, 0), "reject")
	assert.Nil(t, d.registry.RemoveItem(shop, bob, "Eggs", fixtures.Bob), "offered item held after reject")
}
