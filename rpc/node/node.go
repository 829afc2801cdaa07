// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/counter"
	"github.com/bitmark-inc/swapmeet/mode"
	"github.com/bitmark-inc/swapmeet/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Notifications - state of the event bus
type Notifications interface {
	Sequence() uint64
	Subscribers() int
}

// Node - type for RPC calls
type Node struct {
	Log           *logger.L
	Limiter       *rate.Limiter
	Start         time.Time
	Version       string
	Owner         account.Account
	Notifications Notifications
	counter       *counter.Counter
}

// New - create the node RPC area
func New(log *logger.L, start time.Time, version string, owner account.Account, notifications Notifications, counter *counter.Counter) *Node {
	return &Node{
		Log:           log,
		Limiter:       rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:         start,
		Version:       version,
		Owner:         owner,
		Notifications: notifications,
		counter:       counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Network     string          `json:"network"`
	Mode        string          `json:"mode"`
	Owner       account.Account `json:"owner"`
	RPCs        uint64          `json:"rpcs"`
	Events      uint64          `json:"events,string"`
	Subscribers int             `json:"subscribers"`
	Version     string          `json:"version"`
	Uptime      string          `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Network = mode.Network()
	reply.Mode = mode.String()
	reply.Owner = node.Owner
	reply.RPCs = node.counter.Uint64()
	reply.Events = node.Notifications.Sequence()
	reply.Subscribers = node.Notifications.Subscribers()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
