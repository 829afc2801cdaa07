// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mocks

//go:generate mockgen -destination=catalogue.go -package=mocks github.com/bitmark-inc/swapmeet/rpc/registry Catalogue
//go:generate mockgen -destination=swaps.go -package=mocks github.com/bitmark-inc/swapmeet/rpc/swap Swaps
//go:generate mockgen -destination=balances.go -package=mocks github.com/bitmark-inc/swapmeet/rpc/escrow Balances
//go:generate mockgen -destination=notifications.go -package=mocks github.com/bitmark-inc/swapmeet/rpc/node Notifications
