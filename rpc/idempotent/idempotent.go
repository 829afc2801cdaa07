// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package idempotent remembers the replies to mutating requests so that
// a client retrying with the same request id gets the original reply
// instead of executing the call a second time
package idempotent

import (
	"encoding/json"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/digest"
	"github.com/bitmark-inc/swapmeet/fault"
)

// DefaultExpiry - how long a reply is kept
const DefaultExpiry = 10 * time.Minute

// MaximumRequestIDLength - longer ids are truncated
const MaximumRequestIDLength = 64

type entry struct {
	fingerprint digest.Digest
	done        chan struct{}
	reply       interface{}
	err         error
}

// Cache - replies keyed by caller and request id
type Cache struct {
	c *cache.Cache
}

// New - create a cache whose entries expire after expiry
func New(expiry time.Duration) *Cache {
	return &Cache{
		c: cache.New(expiry, 2*expiry),
	}
}

// Do - run f once per caller and request id
//
// a repeat must name the same method with the same arguments,
// otherwise fault.ErrRequestIDReused is returned and f is not run.
// An empty request id always runs f; failed calls are not remembered
// because they changed nothing and may be retried
func (c *Cache) Do(caller account.Account, requestID string, method string, arguments interface{}, f func() (interface{}, error)) (interface{}, error) {
	if "" == requestID {
		return f()
	}
	if len(requestID) > MaximumRequestIDLength {
		requestID = requestID[:MaximumRequestIDLength]
	}

	fingerprint, err := requestFingerprint(method, arguments)
	if nil != err {
		return nil, err
	}

	key := caller.String() + "/" + requestID

	e := &entry{
		fingerprint: fingerprint,
		done:        make(chan struct{}),
	}
	if err := c.c.Add(key, e, cache.DefaultExpiration); nil != err {
		if x, found := c.c.Get(key); found {
			previous := x.(*entry)
			if previous.fingerprint != fingerprint {
				return nil, fault.ErrRequestIDReused
			}
			<-previous.done
			return previous.reply, previous.err
		}
		// expired between the two calls
		return f()
	}

	e.reply, e.err = f()
	close(e.done)

	if nil != e.err {
		c.c.Delete(key)
	}
	return e.reply, e.err
}

// Count - number of remembered requests
func (c *Cache) Count() int {
	return c.c.ItemCount()
}

// hash of the method name and its JSON encoded arguments
func requestFingerprint(method string, arguments interface{}) (digest.Digest, error) {
	data, err := json.Marshal(arguments)
	if nil != err {
		return digest.Digest{}, err
	}
	buffer := make([]byte, 0, len(method)+1+len(data))
	buffer = append(buffer, method...)
	buffer = append(buffer, 0)
	buffer = append(buffer, data...)
	return digest.New(buffer), nil
}
