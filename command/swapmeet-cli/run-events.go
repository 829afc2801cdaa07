// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"time"

	zmq "github.com/pebbe/zmq4"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/swapmeet/zmqutil"
)

const eventTimeout = 120 * time.Second

type eventResult struct {
	Name     string          `json:"name"`
	Envelope json.RawMessage `json:"envelope"`
}

func runEvents(c *cli.Context) error {

	m := getMetadata(c)

	publisher, err := checkName(c, "publisher")
	if nil != err {
		return err
	}
	serverKeyFile, err := checkName(c, "server-key")
	if nil != err {
		return err
	}
	count := c.Int("count")

	serverPublicKey, err := zmqutil.ReadPublicKeyFile(serverKeyFile)
	if nil != err {
		return err
	}

	// a fresh client key for each run
	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	socket, err := zmqutil.NewSubscriber(
		[]byte(zmq.Z85decode(privateKey)),
		[]byte(zmq.Z85decode(publicKey)),
		serverPublicKey,
		publisher,
		eventTimeout,
	)
	if nil != err {
		return err
	}
	defer socket.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "subscribed to: %s\n", publisher)
	}

	for n := 0; 0 == count || n < count; n += 1 {
		frames, err := socket.RecvMessageBytes(0)
		if nil != err {
			return err
		}
		if 2 != len(frames) {
			return fmt.Errorf("unexpected frame count: %d", len(frames))
		}

		printJson(m.w, eventResult{
			Name:     string(frames[0]),
			Envelope: json.RawMessage(frames[1]),
		})
	}
	return nil
}
