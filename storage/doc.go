// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. sequence     = big endian uint64 (8 bytes), first record is 1
// 4. account      = packed account (key variant ++ 32 byte public key)
// 5. amount       = big endian uint64 (8 bytes)
// 6. *others*     = byte values of various length
//
// Journal:
//
//   J ++ sequence              - accepted state changing call
//                                data: JSON encoded call record
//
// Withdrawals:
//
//   W ++ sequence              - escrow paid out by the call at the same journal sequence
//                                data: amount ++ account
package storage
