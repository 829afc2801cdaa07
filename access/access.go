// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package access - single owner administrative control
package access

import (
	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/fault"
)

// Control - records the owner fixed at construction
type Control struct {
	owner account.Account
}

// New - create a control for the given owner
func New(owner account.Account) (*Control, error) {
	if owner.IsZero() {
		return nil, fault.ErrInvalidAccount
	}
	return &Control{owner: owner}, nil
}

// Owner - the administrative account
func (c *Control) Owner() account.Account {
	return c.owner
}

// IsOwner - true if caller is the owner
func (c *Control) IsOwner(caller account.Account) bool {
	return !caller.IsZero() && caller == c.owner
}

// RequireOwner - fail with ErrUnauthorized unless caller is the owner
func (c *Control) RequireOwner(caller account.Account) error {
	if !c.IsOwner(caller) {
		return fault.ErrUnauthorized
	}
	return nil
}
