// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - notifications emitted by successful state changes
package event

import (
	"github.com/bitmark-inc/swapmeet/account"
)

// names used on the message bus and by the publisher
const (
	RegistrationConfirmedName = "registrationConfirmed"
	CategoryAddedName         = "categoryAdded"
	CollectionAddedName       = "collectionAdded"
	ProposalSentName          = "proposalSent"
	SwapRejectedName          = "swapRejected"
	ConfirmationSentName      = "confirmationSent"
	SwapCompletedName         = "swapCompleted"
	EscrowRedeemedName        = "escrowRedeemed"
)

// Event - anything that can be published
type Event interface {
	Name() string
}

// Sink - receives events in the order they occur
type Sink interface {
	Emit(Event)
}

// RegistrationConfirmed - a collector registered or renamed
type RegistrationConfirmed struct {
	Identity  account.Account `json:"identity"`
	Collector string          `json:"name"`
}

// CategoryAdded - the owner created a category
type CategoryAdded struct {
	Category string `json:"name"`
	Index    int    `json:"index"`
}

// CollectionAdded - a collector created a collection
type CollectionAdded struct {
	Category   string          `json:"category"`
	Index      int             `json:"index"`
	Collection string          `json:"name"`
	Owner      account.Account `json:"owner"`
}

// ProposalSent - a swap was proposed
//
// Index is the slot in the swappee's book, SwapperIndex the slot in
// the swapper's book
type ProposalSent struct {
	Category          string          `json:"category"`
	Swapper           account.Account `json:"swapper"`
	SwapperCollection int             `json:"swapperCollection"`
	SwapperIndex      int             `json:"swapperIndex"`
	Swappee           account.Account `json:"swappee"`
	SwappeeCollection int             `json:"swappeeCollection"`
	Index             int             `json:"index"`
}

// SwapRejected - the swappee refused a proposal
type SwapRejected struct {
	Category string          `json:"category"`
	Swapper  account.Account `json:"swapper"`
	Swappee  account.Account `json:"swappee"`
	Index    int             `json:"index"`
	Refunded uint64          `json:"refunded"`
}

// ConfirmationSent - the swappee accepted a proposal
//
// Sender is the swapper and Receiver the swappee
type ConfirmationSent struct {
	Category string          `json:"category"`
	Sender   account.Account `json:"sender"`
	Receiver account.Account `json:"receiver"`
	Index    int             `json:"index"`
}

// SwapCompleted - both parties received their items
type SwapCompleted struct {
	Category string          `json:"category"`
	Swapper  account.Account `json:"swapper"`
	Swappee  account.Account `json:"swappee"`
	Index    int             `json:"index"`
}

// EscrowRedeemed - a redeemable balance was paid out
type EscrowRedeemed struct {
	Identity account.Account `json:"identity"`
	Amount   uint64          `json:"amount"`
}

// Name - bus name of the event
func (RegistrationConfirmed) Name() string { return RegistrationConfirmedName }

// Name - bus name of the event
func (CategoryAdded) Name() string { return CategoryAddedName }

// Name - bus name of the event
func (CollectionAdded) Name() string { return CollectionAddedName }

// Name - bus name of the event
func (ProposalSent) Name() string { return ProposalSentName }

// Name - bus name of the event
func (SwapRejected) Name() string { return SwapRejectedName }

// Name - bus name of the event
func (ConfirmationSent) Name() string { return ConfirmationSentName }

// Name - bus name of the event
func (SwapCompleted) Name() string { return SwapCompletedName }

// Name - bus name of the event
func (EscrowRedeemed) Name() string { return EscrowRedeemedName }
