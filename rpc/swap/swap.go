// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package swap

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/digest"
	"github.com/bitmark-inc/swapmeet/fault"
	"github.com/bitmark-inc/swapmeet/mode"
	"github.com/bitmark-inc/swapmeet/rpc/idempotent"
	"github.com/bitmark-inc/swapmeet/rpc/ratelimit"
	"github.com/bitmark-inc/swapmeet/swap"
)

const (
	rateLimitSwap = 200
	rateBurstSwap = 100
)

// Swaps - the swap engine operations served by this area
type Swaps interface {
	AddProposedSwap(caller account.Account, proposal swap.Proposal, value uint64) (int, int, error)
	RejectSwap(caller account.Account, category string, collection int, index int) error
	ConfirmSwap(caller account.Account, category string, collection int, index int, address digest.Digest, value uint64) error
	AddTrackingReference(caller account.Account, category string, collection int, index int, reference string, leg swap.Leg) error
	MarkItemReceived(caller account.Account, category string, collection int, index int, leg swap.Leg) error
	ProposedSwap(caller account.Account, category string, collection int, index int) (swap.Details, error)
	ConfirmedSwap(caller account.Account, category string, collection int, index int) (swap.Details, error)
	Tracking(caller account.Account, category string, collection int, index int) ([2]swap.Tracking, error)
	IsProposalSent(caller account.Account, category string, collection int, offeredHash digest.Digest) bool
	ConfirmedCount(caller account.Account) int
	Book(caller account.Account, category string, collection int) []swap.Slot
}

// Swap - type for the RPC
type Swap struct {
	Log              *logger.L
	Limiter          *rate.Limiter
	IsNormalMode     func(mode.Mode) bool
	IsTestingNetwork func() bool
	swaps            Swaps
	cache            *idempotent.Cache
}

// New - create the swap RPC area
func New(log *logger.L, swaps Swaps, cache *idempotent.Cache, isNormalMode func(mode.Mode) bool, isTestingNetwork func() bool) *Swap {
	return &Swap{
		Log:              log,
		Limiter:          rate.NewLimiter(rateLimitSwap, rateBurstSwap),
		IsNormalMode:     isNormalMode,
		IsTestingNetwork: isTestingNetwork,
		swaps:            swaps,
		cache:            cache,
	}
}

func (s *Swap) checkCaller(caller account.Account) error {
	if caller.IsZero() {
		return fault.ErrRequiredCaller
	}
	if caller.IsTesting() != s.IsTestingNetwork() {
		return fault.ErrWrongNetworkForPublicKey
	}
	return nil
}

func (s *Swap) writable(caller account.Account) error {
	if !s.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringReplay
	}
	return s.checkCaller(caller)
}

// Swap propose
// ------------

// ProposeArguments - arguments for RPC
type ProposeArguments struct {
	Caller            account.Account `json:"caller"`
	RequestID         string          `json:"requestId"`
	Category          string          `json:"category"`
	SwapperCollection int             `json:"swapperCollection"`
	SwappeeCollection int             `json:"swappeeCollection"`
	Swappee           account.Account `json:"swappee"`
	Address           digest.Digest   `json:"address"`
	Wanted            string          `json:"wanted"`
	Offered           string          `json:"offered"`
	Value             uint64          `json:"value,string"`
}

// ProposeReply - the slots in the swapper's and swappee's books
type ProposeReply struct {
	SwapperIndex int `json:"swapperIndex"`
	SwappeeIndex int `json:"swappeeIndex"`
}

// Propose - offer one of the caller's items for one of the swappee's
func (s *Swap) Propose(arguments *ProposeArguments, reply *ProposeReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if err := s.writable(arguments.Caller); nil != err {
		return err
	}

	proposal := swap.Proposal{
		Category:          arguments.Category,
		SwapperCollection: arguments.SwapperCollection,
		SwappeeCollection: arguments.SwappeeCollection,
		Swappee:           arguments.Swappee,
		SwapperAddress:    arguments.Address,
		Wanted:            arguments.Wanted,
		Offered:           arguments.Offered,
	}

	s.Log.Infof("Propose: %q for: %q category: %q by: %s to: %s", arguments.Offered, arguments.Wanted, arguments.Category, arguments.Caller, arguments.Swappee)

	result, err := s.cache.Do(arguments.Caller, arguments.RequestID, "Swap.Propose", arguments, func() (interface{}, error) {
		swapperIndex, swappeeIndex, err := s.swaps.AddProposedSwap(arguments.Caller, proposal, arguments.Value)
		return ProposeReply{SwapperIndex: swapperIndex, SwappeeIndex: swappeeIndex}, err
	})
	if nil != err {
		return err
	}

	cached, ok := result.(ProposeReply)
	if !ok {
		return fault.ErrRequestIDReused
	}
	*reply = cached
	return nil
}

// Swap transitions
// ----------------

// SlotArguments - address of a swap in the caller's book
//
// rejected slots are reused by later proposals, so a transition
// retried without a RequestID may act on a newer swap in the same
// slot; clients that retry must send a RequestID
type SlotArguments struct {
	Caller     account.Account `json:"caller"`
	RequestID  string          `json:"requestId"`
	Category   string          `json:"category"`
	Collection int             `json:"collection"`
	Index      int             `json:"index"`
}

// ConfirmArguments - arguments for RPC
type ConfirmArguments struct {
	SlotArguments
	Address digest.Digest `json:"address"`
	Value   uint64        `json:"value,string"`
}

// TrackingArguments - arguments for RPC
type TrackingArguments struct {
	SlotArguments
	Reference string   `json:"reference"`
	Leg       swap.Leg `json:"leg"`
}

// ReceivedArguments - arguments for RPC
type ReceivedArguments struct {
	SlotArguments
	Leg swap.Leg `json:"leg"`
}

// SlotReply - the swap that was changed
type SlotReply struct {
	Category   string `json:"category"`
	Collection int    `json:"collection"`
	Index      int    `json:"index"`
}

// request is the complete argument structure, so that a repeated
// request id is only answered from the cache for an identical call
func (s *Swap) transition(method string, arguments *SlotArguments, request interface{}, reply *SlotReply, f func() error) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if err := s.writable(arguments.Caller); nil != err {
		return err
	}

	result, err := s.cache.Do(arguments.Caller, arguments.RequestID, method, request, func() (interface{}, error) {
		return SlotReply{
			Category:   arguments.Category,
			Collection: arguments.Collection,
			Index:      arguments.Index,
		}, f()
	})
	if nil != err {
		return err
	}

	cached, ok := result.(SlotReply)
	if !ok {
		return fault.ErrRequestIDReused
	}
	*reply = cached
	return nil
}

// Reject - swappee declines a proposal, refunding the swapper
func (s *Swap) Reject(arguments *SlotArguments, reply *SlotReply) error {
	s.Log.Infof("Reject: category: %q collection: %d index: %d by: %s", arguments.Category, arguments.Collection, arguments.Index, arguments.Caller)
	return s.transition("Swap.Reject", arguments, arguments, reply, func() error {
		return s.swaps.RejectSwap(arguments.Caller, arguments.Category, arguments.Collection, arguments.Index)
	})
}

// Confirm - swappee accepts a proposal with a matching deposit
func (s *Swap) Confirm(arguments *ConfirmArguments, reply *SlotReply) error {
	s.Log.Infof("Confirm: category: %q collection: %d index: %d by: %s", arguments.Category, arguments.Collection, arguments.Index, arguments.Caller)
	return s.transition("Swap.Confirm", &arguments.SlotArguments, arguments, reply, func() error {
		return s.swaps.ConfirmSwap(
			arguments.Caller,
			arguments.Category,
			arguments.Collection,
			arguments.Index,
			arguments.Address,
			arguments.Value,
		)
	})
}

// AddTracking - record the shipment reference of the caller's leg
func (s *Swap) AddTracking(arguments *TrackingArguments, reply *SlotReply) error {
	s.Log.Infof("AddTracking: category: %q collection: %d index: %d leg: %s by: %s", arguments.Category, arguments.Collection, arguments.Index, arguments.Leg, arguments.Caller)
	return s.transition("Swap.AddTracking", &arguments.SlotArguments, arguments, reply, func() error {
		return s.swaps.AddTrackingReference(
			arguments.Caller,
			arguments.Category,
			arguments.Collection,
			arguments.Index,
			arguments.Reference,
			arguments.Leg,
		)
	})
}

// MarkReceived - the caller acknowledges receipt of the item shipped to them
func (s *Swap) MarkReceived(arguments *ReceivedArguments, reply *SlotReply) error {
	s.Log.Infof("MarkReceived: category: %q collection: %d index: %d leg: %s by: %s", arguments.Category, arguments.Collection, arguments.Index, arguments.Leg, arguments.Caller)
	return s.transition("Swap.MarkReceived", &arguments.SlotArguments, arguments, reply, func() error {
		return s.swaps.MarkItemReceived(
			arguments.Caller,
			arguments.Category,
			arguments.Collection,
			arguments.Index,
			arguments.Leg,
		)
	})
}

// Swap queries
// ------------

// DetailsReply - result of a swap lookup
type DetailsReply struct {
	Swap swap.Details `json:"swap"`
}

// Proposed - any live swap in the caller's book
func (s *Swap) Proposed(arguments *SlotArguments, reply *DetailsReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if err := s.checkCaller(arguments.Caller); nil != err {
		return err
	}

	d, err := s.swaps.ProposedSwap(arguments.Caller, arguments.Category, arguments.Collection, arguments.Index)
	if nil != err {
		return err
	}

	reply.Swap = d
	return nil
}

// Confirmed - a confirmed or completed swap in the caller's book
func (s *Swap) Confirmed(arguments *SlotArguments, reply *DetailsReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if err := s.checkCaller(arguments.Caller); nil != err {
		return err
	}

	d, err := s.swaps.ConfirmedSwap(arguments.Caller, arguments.Category, arguments.Collection, arguments.Index)
	if nil != err {
		return err
	}

	reply.Swap = d
	return nil
}

// TrackingReply - shipment state of both legs
type TrackingReply struct {
	Swapper swap.Tracking `json:"swapper"`
	Swappee swap.Tracking `json:"swappee"`
}

// Tracking - shipment state of a confirmed swap
func (s *Swap) Tracking(arguments *SlotArguments, reply *TrackingReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if err := s.checkCaller(arguments.Caller); nil != err {
		return err
	}

	t, err := s.swaps.Tracking(arguments.Caller, arguments.Category, arguments.Collection, arguments.Index)
	if nil != err {
		return err
	}

	reply.Swapper = t[swap.SwapperLeg]
	reply.Swappee = t[swap.SwappeeLeg]
	return nil
}

// IsProposalSentArguments - arguments for RPC
type IsProposalSentArguments struct {
	Caller     account.Account `json:"caller"`
	Category   string          `json:"category"`
	Collection int             `json:"collection"`
	Offered    digest.Digest   `json:"offered"`
}

// IsProposalSentReply - result of RPC
type IsProposalSentReply struct {
	Sent bool `json:"sent"`
}

// IsProposalSent - check whether the caller has a live proposal offering an item
func (s *Swap) IsProposalSent(arguments *IsProposalSentArguments, reply *IsProposalSentReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if err := s.checkCaller(arguments.Caller); nil != err {
		return err
	}

	reply.Sent = s.swaps.IsProposalSent(arguments.Caller, arguments.Category, arguments.Collection, arguments.Offered)
	return nil
}

// ConfirmedCountArguments - arguments for RPC
type ConfirmedCountArguments struct {
	Caller account.Account `json:"caller"`
}

// ConfirmedCountReply - result of RPC
type ConfirmedCountReply struct {
	Count int `json:"count"`
}

// ConfirmedCount - number of confirmed or completed swaps of the caller
func (s *Swap) ConfirmedCount(arguments *ConfirmedCountArguments, reply *ConfirmedCountReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if err := s.checkCaller(arguments.Caller); nil != err {
		return err
	}

	reply.Count = s.swaps.ConfirmedCount(arguments.Caller)
	return nil
}

// BookArguments - arguments for RPC
type BookArguments struct {
	Caller     account.Account `json:"caller"`
	Category   string          `json:"category"`
	Collection int             `json:"collection"`
}

// BookReply - live slots of a book
type BookReply struct {
	Slots []swap.Slot `json:"slots"`
}

// Book - list the live slots of one of the caller's books
func (s *Swap) Book(arguments *BookArguments, reply *BookReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if err := s.checkCaller(arguments.Caller); nil != err {
		return err
	}

	reply.Slots = s.swaps.Book(arguments.Caller, arguments.Category, arguments.Collection)
	return nil
}
