// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"net/rpc/jsonrpc"
	"os"
	"sync/atomic"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/collectables"
	"github.com/bitmark-inc/swapmeet/command/swapmeet-cli/rpccalls"
	"github.com/bitmark-inc/swapmeet/counter"
	"github.com/bitmark-inc/swapmeet/escrow"
	"github.com/bitmark-inc/swapmeet/fault"
	"github.com/bitmark-inc/swapmeet/fixtures"
	"github.com/bitmark-inc/swapmeet/messagebus"
	"github.com/bitmark-inc/swapmeet/mode"
	"github.com/bitmark-inc/swapmeet/rpc/certificate"
	"github.com/bitmark-inc/swapmeet/rpc/server"
	"github.com/bitmark-inc/swapmeet/swap"
)

var (
	address     string
	fingerprint string

	// number of accepted connections to close straight after the handshake
	dropConnections int32
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()

	log := logger.New(fixtures.LogCategory)

	_ = mode.Initialise(true)
	mode.Set(mode.Normal)

	bus := messagebus.New(log, messagebus.DefaultHistory, messagebus.DefaultQueueSize)
	payout := escrow.PayoutFunc(func(account.Account, uint64) error {
		return nil
	})
	c, err := collectables.New(log, fixtures.Owner, bus, nil, payout)
	if nil != err {
		fmt.Printf("collectables error: %s\n", err)
		os.Exit(1)
	}

	count := counter.Counter(0)
	s := server.Create(log, "1.0", &count, c, bus)
	s.SetRate(10000, 1000)

	tlsConfig, fin, err := certificate.Get(log, "test", fixtures.Certificate(), fixtures.Key())
	if nil != err {
		fmt.Printf("certificate error: %s\n", err)
		os.Exit(1)
	}
	fingerprint = hex.EncodeToString(fin[:])

	l, err := tls.Listen("tcp", "127.0.0.1:0", tlsConfig)
	if nil != err {
		fmt.Printf("listen error: %s\n", err)
		os.Exit(1)
	}
	address = l.Addr().String()

	go func() {
		for {
			conn, err := l.Accept()
			if nil != err {
				return
			}
			if atomic.AddInt32(&dropConnections, -1) >= 0 {
				_ = conn.(*tls.Conn).Handshake()
				_ = conn.Close()
				continue
			}
			atomic.StoreInt32(&dropConnections, 0)
			go s.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	rc := m.Run()

	_ = l.Close()
	_ = mode.Finalise()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newClient(t *testing.T, caller account.Account) *rpccalls.Client {
	client, err := rpccalls.NewClient(&rpccalls.Options{
		Connect:     address,
		Fingerprint: fingerprint,
		Caller:      caller,
		Retries:     1,
	}, ioutil.Discard)
	require.Nil(t, err, "connect")
	return client
}

func TestVerification(t *testing.T) {
	_, err := rpccalls.NewClient(&rpccalls.Options{Connect: address}, ioutil.Discard)
	assert.Equal(t, rpccalls.ErrNoVerification, err, "wrong error")

	wrong := hex.EncodeToString(make([]byte, 32))
	_, err = rpccalls.NewClient(&rpccalls.Options{Connect: address, Fingerprint: wrong}, ioutil.Discard)
	assert.NotNil(t, err, "wrong fingerprint accepted")

	client, err := rpccalls.NewClient(&rpccalls.Options{Connect: address, Insecure: true}, ioutil.Discard)
	require.Nil(t, err, "insecure connect")
	defer client.Close()

	info, err := client.GetInfo()
	assert.Nil(t, err, "info")
	assert.Equal(t, "1.0", info.Version, "wrong version")
	assert.Equal(t, fixtures.Owner, info.Owner, "wrong owner")
}

func TestParseLeg(t *testing.T) {
	leg, err := rpccalls.ParseLeg("Swapper")
	assert.Nil(t, err, "swapper")
	assert.Equal(t, swap.SwapperLeg, leg, "wrong leg")

	leg, err = rpccalls.ParseLeg("swappee")
	assert.Nil(t, err, "swappee")
	assert.Equal(t, swap.SwappeeLeg, leg, "wrong leg")

	_, err = rpccalls.ParseLeg("both")
	assert.Equal(t, fault.ErrInvalidLeg, err, "wrong error")
}

func TestSwapFlow(t *testing.T) {
	owner := newClient(t, fixtures.Owner)
	defer owner.Close()
	alice := newClient(t, fixtures.Alice)
	defer alice.Close()
	bob := newClient(t, fixtures.Bob)
	defer bob.Close()

	_, err := owner.AddCategory("games")
	require.Nil(t, err, "add category")

	_, err = alice.AddCategory("toys")
	assert.EqualError(t, err, fault.ErrUnauthorized.Error(), "wrong error")

	categories, err := owner.Categories()
	require.Nil(t, err, "categories")
	assert.Contains(t, categories, "games", "missing category")

	_, err = alice.AddCollector("alice")
	require.Nil(t, err, "alice register")
	_, err = bob.AddCollector("bob")
	require.Nil(t, err, "bob register")

	registration, err := owner.IsCollector(fixtures.Alice)
	require.Nil(t, err, "is collector")
	assert.True(t, registration.Registered, "alice not registered")
	assert.Equal(t, "alice", registration.Name, "wrong name")

	aliceCollection, err := alice.AddCollection("games", "alice games", "boxed")
	require.Nil(t, err, "alice collection")
	bobCollection, err := bob.AddCollection("games", "bob games", "")
	require.Nil(t, err, "bob collection")

	_, err = alice.AddItem(&rpccalls.ItemData{
		Category:    "games",
		Collection:  aliceCollection.Index,
		Name:        "chess",
		ContentHash: fixtures.VegemiteHash,
		Value:       fixtures.Finney,
		Swappable:   true,
	})
	require.Nil(t, err, "alice item")
	_, err = bob.AddItem(&rpccalls.ItemData{
		Category:    "games",
		Collection:  bobCollection.Index,
		Name:        "go",
		ContentHash: fixtures.EggsHash,
		Value:       fixtures.Finney,
		Swappable:   true,
	})
	require.Nil(t, err, "bob item")

	items, err := owner.Items("games", aliceCollection.Index)
	require.Nil(t, err, "items")
	assert.Equal(t, []string{"chess"}, items.Names, "wrong items")

	item, err := owner.Item("games", bobCollection.Index, "go")
	require.Nil(t, err, "item")
	assert.Equal(t, fixtures.EggsHash, item.Item.ContentHash, "wrong hash")

	collections, err := owner.Collections("games", 0, 10)
	require.Nil(t, err, "collections")
	assert.Equal(t, 2, len(collections.Collections), "wrong collection count")

	value := 3 * fixtures.Finney
	proposed, err := bob.Propose(&rpccalls.ProposalData{
		Category:          "games",
		SwapperCollection: bobCollection.Index,
		SwappeeCollection: aliceCollection.Index,
		Swappee:           fixtures.Alice,
		Address:           fixtures.BobAddressHash,
		Wanted:            "chess",
		Offered:           "go",
		Value:             value,
	})
	require.Nil(t, err, "propose")

	aliceSlot := &rpccalls.SlotData{Category: "games", Collection: aliceCollection.Index, Index: proposed.SwappeeIndex}
	bobSlot := &rpccalls.SlotData{Category: "games", Collection: bobCollection.Index, Index: proposed.SwapperIndex}

	details, err := alice.Details(aliceSlot)
	require.Nil(t, err, "details")
	assert.Equal(t, swap.Proposed, details.Swap.Status, "wrong status")

	_, err = alice.Confirm(aliceSlot, fixtures.AliceAddressHash, value-1)
	assert.EqualError(t, err, fault.ErrValueMismatch.Error(), "wrong error")

	_, err = alice.Confirm(aliceSlot, fixtures.AliceAddressHash, value)
	require.Nil(t, err, "confirm")

	_, err = bob.AddTracking(bobSlot, "TRACK-1", swap.SwapperLeg)
	require.Nil(t, err, "tracking")

	tracking, err := alice.Tracking(aliceSlot)
	require.Nil(t, err, "tracking query")
	assert.Equal(t, "TRACK-1", tracking.Swapper.Reference, "wrong reference")

	_, err = bob.MarkReceived(bobSlot, swap.SwapperLeg)
	require.Nil(t, err, "bob received")
	_, err = alice.MarkReceived(aliceSlot, swap.SwappeeLeg)
	require.Nil(t, err, "alice received")

	count, err := bob.ConfirmedCount()
	require.Nil(t, err, "confirmed count")
	assert.Equal(t, 1, count.Count, "wrong confirmed count")

	book, err := bob.Book("games", bobCollection.Index)
	require.Nil(t, err, "book")
	assert.Equal(t, 1, len(book.Slots), "wrong book size")

	balance, err := owner.Redeemable(fixtures.Bob)
	require.Nil(t, err, "redeemable")
	assert.Equal(t, value, balance.Redeemable, "wrong redeemable")

	taken, err := bob.Redeem()
	require.Nil(t, err, "redeem")
	assert.Equal(t, value, taken.Amount, "wrong amount")

	_, err = bob.Redeem()
	assert.EqualError(t, err, fault.ErrNothingToRedeem.Error(), "wrong error")

	totals, err := owner.Totals()
	require.Nil(t, err, "totals")
	assert.Equal(t, totals.Deposited-totals.Withdrawn, totals.Locked+totals.Redeemable, "not conserved")
}

func TestReconnect(t *testing.T) {
	atomic.StoreInt32(&dropConnections, 1)

	client := newClient(t, fixtures.Carol)
	defer client.Close()

	// first connection was dropped so this needs the retry
	reply, err := client.AddCollector("carol")
	require.Nil(t, err, "register after reconnect")
	assert.Equal(t, fixtures.Carol, reply.Identity, "wrong identity")
}

func TestNoRetry(t *testing.T) {
	atomic.StoreInt32(&dropConnections, 1)

	client, err := rpccalls.NewClient(&rpccalls.Options{
		Connect:     address,
		Fingerprint: fingerprint,
		Caller:      fixtures.Carol,
		Retries:     0,
	}, ioutil.Discard)
	require.Nil(t, err, "connect")
	defer client.Close()

	_, err = client.GetInfo()
	assert.NotNil(t, err, "call on dropped connection succeeded")
}
