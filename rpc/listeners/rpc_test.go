// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/swapmeet/counter"
	"github.com/bitmark-inc/swapmeet/fault"
	"github.com/bitmark-inc/swapmeet/fixtures"
	"github.com/bitmark-inc/swapmeet/rpc/certificate"
	"github.com/bitmark-inc/swapmeet/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func newServer(t *testing.T) *rpc.Server {
	s := rpc.NewServer()
	err := s.Register(Add{})
	if err != nil {
		t.Fatalf("register with error: %s", err)
	}
	return s
}

func serverTLS(t *testing.T) (*tls.Config, [32]byte) {
	tlsConfig, fin, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		fixtures.Certificate(),
		fixtures.Key(),
	)
	if err != nil {
		t.Fatalf("get certificate with error: %s", err)
	}
	return tlsConfig, fin
}

func call(address string) (int, error) {
	c, err := tls.Dial("tcp", address, &tls.Config{InsecureSkipVerify: true})
	if err != nil {
		return 0, err
	}
	client := jsonrpc.NewClient(c)
	defer client.Close()

	var reply int
	err = client.Call("Add.Add", &AddArg{A: 2, B: 5}, &reply)
	return reply, err
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	listen := fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Bandwidth:          10000000,
		Listen:             []string{listen},
	}

	count := counter.Counter(0)
	tlsConfig, fin := serverTLS(t)

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, newServer(t), tlsConfig, fin)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")

	reply, err := call(listen)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, 7, reply, "wrong result")

	l.Stop()

	_, err = call(listen)
	assert.NotNil(t, err, "call after stop")
}

func TestRpcListenerConnectionLimit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	listen := fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)
	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Bandwidth:          10000000,
		Listen:             []string{listen},
	}

	count := counter.Counter(0)
	tlsConfig, fin := serverTLS(t)

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, newServer(t), tlsConfig, fin)
	assert.Nil(t, err, "wrong NewRPC")
	assert.Nil(t, l.Serve(), "wrong Serve")
	defer l.Stop()

	// hold the only connection open
	c1, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if err != nil {
		t.Fatalf("dial with error: %s", err)
	}
	client1 := jsonrpc.NewClient(c1)
	defer client1.Close()

	var reply int
	err = client1.Call("Add.Add", &AddArg{A: 1, B: 1}, &reply)
	assert.Nil(t, err, "first connection")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")

	_, err = call(listen)
	assert.NotNil(t, err, "second connection accepted")
}

func TestRpcListenerConfigurationErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	listen := fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)

	tests := []struct {
		name          string
		configuration listeners.RPCConfiguration
		err           error
	}{
		{
			name: "connection count too small",
			configuration: listeners.RPCConfiguration{
				MaximumConnections: 0,
				Bandwidth:          10000000,
				Listen:             []string{listen},
			},
			err: fault.ErrMissingParameters,
		},
		{
			name: "bandwidth too small",
			configuration: listeners.RPCConfiguration{
				MaximumConnections: 1,
				Bandwidth:          100,
				Listen:             []string{listen},
			},
			err: fault.ErrMissingParameters,
		},
		{
			name: "empty listen",
			configuration: listeners.RPCConfiguration{
				MaximumConnections: 1,
				Bandwidth:          10000000,
				Listen:             []string{},
			},
			err: fault.ErrMissingParameters,
		},
		{
			name: "invalid address",
			configuration: listeners.RPCConfiguration{
				MaximumConnections: 5,
				Bandwidth:          10000000,
				Listen:             []string{"1"},
			},
			err: fault.ErrInvalidIPAddress,
		},
		{
			name: "listen all",
			configuration: listeners.RPCConfiguration{
				MaximumConnections: 5,
				Bandwidth:          10000000,
				Listen:             []string{"*:1234"},
			},
			err: nil,
		},
		{
			name: "listen ipv6",
			configuration: listeners.RPCConfiguration{
				MaximumConnections: 5,
				Bandwidth:          10000000,
				Listen:             []string{"[::1]:1234"},
			},
			err: nil,
		},
	}

	for _, test := range tests {
		count := counter.Counter(0)
		_, err := listeners.NewRPC(
			&test.configuration,
			logger.New(fixtures.LogCategory),
			&count,
			rpc.NewServer(),
			&tls.Config{},
			[32]byte{},
		)
		assert.Equal(t, test.err, err, test.name)
	}
}

func TestRpcListenerServeWhenInvalidTLSConfig(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	listen := fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Bandwidth:          10000000,
		Listen:             []string{listen},
	}

	count := counter.Counter(0)

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, [32]byte{})
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.NotNil(t, err, "serve without certificate")
}
