// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from front ends requiring swapmeetd services
//
// standard golang RPC services can be used on the client side to
// access these services
//
// areas:
//
//   Registry.*  categories, collectors, collections and items
//   Swap.*      proposals, confirmations, shipment tracking
//   Escrow.*    balances and redemption
//   Node.*      daemon state
package rpc
