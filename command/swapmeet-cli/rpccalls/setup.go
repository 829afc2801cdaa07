// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"errors"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/rpc/certificate"
)

// ErrFingerprintMismatch - server certificate is not the expected one
var ErrFingerprintMismatch = errors.New("server certificate fingerprint mismatch")

// ErrNoVerification - neither a fingerprint nor insecure was requested
var ErrNoVerification = errors.New("server fingerprint is required unless insecure is set")

// Options - how to reach a swapmeetd
type Options struct {
	Connect     string
	Fingerprint string // hex SHA3-256 of the server certificate
	Insecure    bool   // accept any server certificate
	Caller      account.Account
	Retries     int
	Verbose     bool
}

// Client - to hold RPC connections streams
type Client struct {
	conn      net.Conn
	client    *rpc.Client
	connect   string
	tlsConfig *tls.Config
	caller    account.Account
	retries   int
	verbose   bool
	handle    io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a swapmeetd
func NewClient(options *Options, handle io.Writer) (*Client, error) {

	tlsConfig, err := makeTLSConfig(options)
	if nil != err {
		return nil, err
	}

	r := &Client{
		connect:   options.Connect,
		tlsConfig: tlsConfig,
		caller:    options.Caller,
		retries:   options.Retries,
		verbose:   options.Verbose,
		handle:    handle,
	}

	err = r.dial()
	if nil != err {
		return nil, err
	}
	return r, nil
}

// the daemon uses a self-signed certificate so normal chain
// verification is replaced by comparing its fingerprint
func makeTLSConfig(options *Options) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	if "" == options.Fingerprint {
		if !options.Insecure {
			return nil, ErrNoVerification
		}
		return tlsConfig, nil
	}

	expected, err := hex.DecodeString(options.Fingerprint)
	if nil != err {
		return nil, err
	}

	tlsConfig.VerifyPeerCertificate = func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
		if 0 == len(rawCerts) {
			return ErrFingerprintMismatch
		}
		actual := certificate.Fingerprint(rawCerts[0])
		if !bytes.Equal(expected, actual[:]) {
			return ErrFingerprintMismatch
		}
		return nil
	}
	return tlsConfig, nil
}

func (c *Client) dial() error {
	conn, err := tls.Dial("tcp", c.connect, c.tlsConfig)
	if err != nil {
		return err
	}
	c.conn = conn
	c.client = jsonrpc.NewClient(conn)
	return nil
}

// Close - shutdown the swapmeetd connection
func (c *Client) Close() {
	if nil != c.client {
		c.client.Close()
		c.client = nil
	}
}

// Caller - the identity used for requests
func (c *Client) Caller() account.Account {
	return c.caller
}

// call a method, reconnecting and resending on transport failure
//
// mutating requests carry a request id so the daemon executes a
// resent request at most once
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {

	c.printJson(method+" request", arguments)

	var err error
	for attempt := 0; attempt <= c.retries; attempt += 1 {
		if nil == c.client {
			if err = c.dial(); nil != err {
				continue
			}
		}

		err = c.client.Call(method, arguments, reply)
		if _, ok := err.(rpc.ServerError); ok || nil == err {
			break
		}

		// connection is unusable after a transport error
		c.Close()
	}
	if nil != err {
		return err
	}

	c.printJson(method+" reply", reply)
	return nil
}

// MakeRequestID - random identifier for a mutating request
func MakeRequestID() (string, error) {
	b := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, b); nil != err {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
