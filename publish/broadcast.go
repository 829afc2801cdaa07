// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/swapmeet/event"
	"github.com/bitmark-inc/swapmeet/messagebus"
	"github.com/bitmark-inc/swapmeet/zmqutil"
)

const (
	zapDomain = "swapmeet-publish"
)

// Envelope - payload of the second frame of a published message
type Envelope struct {
	Sequence uint64      `json:"sequence,string"`
	Event    event.Event `json:"event"`
}

type broadcaster struct {
	log     *logger.L
	bus     *messagebus.Bus
	socket4 *zmq.Socket
	socket6 *zmq.Socket
	last    uint64 // sequence of the last message sent
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(log *logger.L, privateKey []byte, publicKey []byte, broadcast []string, bus *messagebus.Bus) error {

	brdc.log = log
	brdc.bus = bus

	log.Info("initialising…")

	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, zapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	brdc.socket4 = socket4
	brdc.socket6 = socket6
	brdc.last = bus.Sequence()

	return nil
}

// Run - wait for bus messages and send them to all subscribers
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	subscription := brdc.bus.Subscribe()

loop:
	for {
		log.Debug("waiting…")

		select {
		case <-shutdown:
			break loop

		case message, ok := <-subscription.C():
			if !ok {
				subscription = brdc.resubscribe()
				continue loop
			}
			brdc.process(message)
		}
	}

	subscription.Close()

	if nil != brdc.socket4 {
		_ = brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		_ = brdc.socket6.Close()
	}

	log.Info("stopped")
}

// the bus drops a subscriber that falls behind, so continue after the
// last message sent if it is still in the history
func (brdc *broadcaster) resubscribe() *messagebus.Subscription {
	subscription, err := brdc.bus.SubscribeFrom(brdc.last + 1)
	if nil == err {
		return subscription
	}
	brdc.log.Warnf("messages after: %d lost  error: %s", brdc.last, err)
	return brdc.bus.Subscribe()
}

// send one message to both sockets
func (brdc *broadcaster) process(message messagebus.Message) {
	brdc.last = message.Sequence

	data, err := json.Marshal(Envelope{
		Sequence: message.Sequence,
		Event:    message.Event,
	})
	logger.PanicIfError("publish: encode event", err)

	name := message.Name()
	brdc.log.Debugf("%s: %d  data: %s", name, message.Sequence, data)

	for _, socket := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil == socket {
			continue
		}
		_, err := socket.SendMessage(name, data)
		if nil != err {
			brdc.log.Errorf("send error: %s", err)
		}
	}
}
