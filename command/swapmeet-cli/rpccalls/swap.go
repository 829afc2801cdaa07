// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"strings"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/digest"
	"github.com/bitmark-inc/swapmeet/fault"
	rpcswap "github.com/bitmark-inc/swapmeet/rpc/swap"
	"github.com/bitmark-inc/swapmeet/swap"
)

// ProposalData - an offer of one of the caller's items for one of the swappee's
type ProposalData struct {
	Category          string
	SwapperCollection int
	SwappeeCollection int
	Swappee           account.Account
	Address           digest.Digest
	Wanted            string
	Offered           string
	Value             uint64
}

// SlotData - a swap in the caller's book
type SlotData struct {
	Category   string
	Collection int
	Index      int
}

// ParseLeg - convert "swapper" or "swappee" to a leg
func ParseLeg(s string) (swap.Leg, error) {
	switch strings.ToLower(s) {
	case "swapper", "r":
		return swap.SwapperLeg, nil
	case "swappee", "e":
		return swap.SwappeeLeg, nil
	default:
		return 0, fault.ErrInvalidLeg
	}
}

func (c *Client) slotArguments(slot *SlotData) (rpcswap.SlotArguments, error) {
	id, err := MakeRequestID()
	if nil != err {
		return rpcswap.SlotArguments{}, err
	}
	return rpcswap.SlotArguments{
		Caller:     c.caller,
		RequestID:  id,
		Category:   slot.Category,
		Collection: slot.Collection,
		Index:      slot.Index,
	}, nil
}

// Propose - send a proposal with the value as escrow
func (c *Client) Propose(proposal *ProposalData) (*rpcswap.ProposeReply, error) {
	id, err := MakeRequestID()
	if nil != err {
		return nil, err
	}

	arguments := rpcswap.ProposeArguments{
		Caller:            c.caller,
		RequestID:         id,
		Category:          proposal.Category,
		SwapperCollection: proposal.SwapperCollection,
		SwappeeCollection: proposal.SwappeeCollection,
		Swappee:           proposal.Swappee,
		Address:           proposal.Address,
		Wanted:            proposal.Wanted,
		Offered:           proposal.Offered,
		Value:             proposal.Value,
	}
	var reply rpcswap.ProposeReply
	if err := c.call("Swap.Propose", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Reject - either party withdraws a proposal
func (c *Client) Reject(slot *SlotData) (*rpcswap.SlotReply, error) {
	arguments, err := c.slotArguments(slot)
	if nil != err {
		return nil, err
	}

	var reply rpcswap.SlotReply
	if err := c.call("Swap.Reject", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Confirm - swappee accepts with a matching escrow value
func (c *Client) Confirm(slot *SlotData, address digest.Digest, value uint64) (*rpcswap.SlotReply, error) {
	slotArguments, err := c.slotArguments(slot)
	if nil != err {
		return nil, err
	}

	arguments := rpcswap.ConfirmArguments{
		SlotArguments: slotArguments,
		Address:       address,
		Value:         value,
	}
	var reply rpcswap.SlotReply
	if err := c.call("Swap.Confirm", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// AddTracking - record the shipping reference of a leg
func (c *Client) AddTracking(slot *SlotData, reference string, leg swap.Leg) (*rpcswap.SlotReply, error) {
	slotArguments, err := c.slotArguments(slot)
	if nil != err {
		return nil, err
	}

	arguments := rpcswap.TrackingArguments{
		SlotArguments: slotArguments,
		Reference:     reference,
		Leg:           leg,
	}
	var reply rpcswap.SlotReply
	if err := c.call("Swap.AddTracking", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// MarkReceived - recipient acknowledges delivery of a leg
func (c *Client) MarkReceived(slot *SlotData, leg swap.Leg) (*rpcswap.SlotReply, error) {
	slotArguments, err := c.slotArguments(slot)
	if nil != err {
		return nil, err
	}

	arguments := rpcswap.ReceivedArguments{
		SlotArguments: slotArguments,
		Leg:           leg,
	}
	var reply rpcswap.SlotReply
	if err := c.call("Swap.MarkReceived", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Details - any live swap in the caller's book
func (c *Client) Details(slot *SlotData) (*rpcswap.DetailsReply, error) {
	arguments := rpcswap.SlotArguments{
		Caller:     c.caller,
		Category:   slot.Category,
		Collection: slot.Collection,
		Index:      slot.Index,
	}
	var reply rpcswap.DetailsReply
	if err := c.call("Swap.Proposed", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Tracking - shipment state of both legs of a confirmed swap
func (c *Client) Tracking(slot *SlotData) (*rpcswap.TrackingReply, error) {
	arguments := rpcswap.SlotArguments{
		Caller:     c.caller,
		Category:   slot.Category,
		Collection: slot.Collection,
		Index:      slot.Index,
	}
	var reply rpcswap.TrackingReply
	if err := c.call("Swap.Tracking", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Book - live slots in one of the caller's books
func (c *Client) Book(category string, collection int) (*rpcswap.BookReply, error) {
	arguments := rpcswap.BookArguments{
		Caller:     c.caller,
		Category:   category,
		Collection: collection,
	}
	var reply rpcswap.BookReply
	if err := c.call("Swap.Book", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ConfirmedCount - confirmed and completed swaps of the caller
func (c *Client) ConfirmedCount() (*rpcswap.ConfirmedCountReply, error) {
	arguments := rpcswap.ConfirmedCountArguments{
		Caller: c.caller,
	}
	var reply rpcswap.ConfirmedCountReply
	if err := c.call("Swap.ConfirmedCount", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
