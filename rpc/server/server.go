// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/counter"
	"github.com/bitmark-inc/swapmeet/mode"
	"github.com/bitmark-inc/swapmeet/rpc/escrow"
	"github.com/bitmark-inc/swapmeet/rpc/idempotent"
	"github.com/bitmark-inc/swapmeet/rpc/node"
	"github.com/bitmark-inc/swapmeet/rpc/registry"
	"github.com/bitmark-inc/swapmeet/rpc/swap"
)

// Backend - everything the RPC areas call
type Backend interface {
	registry.Catalogue
	swap.Swaps
	escrow.Balances
	Owner() account.Account
}

// Server - an rpc.Server with all areas registered
type Server struct {
	*rpc.Server
	limiters []*rate.Limiter
}

// Create - register all RPC areas
func Create(log *logger.L, version string, rpcCount *counter.Counter, backend Backend, notifications node.Notifications) *Server {

	start := time.Now().UTC()
	cache := idempotent.New(idempotent.DefaultExpiry)

	r := registry.New(log, backend, cache, mode.Is, mode.IsTesting)
	s := swap.New(log, backend, cache, mode.Is, mode.IsTesting)
	e := escrow.New(log, backend, cache, mode.Is, mode.IsTesting)
	n := node.New(log, start, version, backend.Owner(), notifications, rpcCount)

	server := rpc.NewServer()

	_ = server.Register(r)
	_ = server.Register(s)
	_ = server.Register(e)
	_ = server.Register(n)

	return &Server{
		Server:   server,
		limiters: []*rate.Limiter{r.Limiter, s.Limiter, e.Limiter, n.Limiter},
	}
}

// SetRate - change the request rate of every area
//
// zero values leave the current setting unchanged
func (s *Server) SetRate(limit float64, burst int) {
	for _, l := range s.limiters {
		if limit > 0 {
			l.SetLimit(rate.Limit(limit))
		}
		if burst > 0 {
			l.SetBurst(burst)
		}
	}
}
