// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swapmeet/event"
	"github.com/bitmark-inc/swapmeet/fault"
)

// default sizes
const (
	DefaultHistory   = 1000
	DefaultQueueSize = 100
)

// Message - an event with its position in the total order
type Message struct {
	Sequence uint64
	Event    event.Event
}

// Name - the event name
func (m Message) Name() string {
	return m.Event.Name()
}

// Bus - ordered publish/subscribe
type Bus struct {
	sync.Mutex

	log *logger.L

	sequence  uint64
	history   []Message // ring buffer
	start     int       // oldest entry in history
	count     int
	queueSize int

	nextID      int
	subscribers map[int]*Subscription
}

// Subscription - a receiver of messages
type Subscription struct {
	bus    *Bus
	id     int
	queue  chan Message
	closed bool
}

// New - create a bus
func New(log *logger.L, historySize int, queueSize int) *Bus {
	if historySize <= 0 {
		historySize = DefaultHistory
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Bus{
		log:         log,
		history:     make([]Message, historySize),
		queueSize:   queueSize,
		subscribers: make(map[int]*Subscription),
	}
}

// Sequence - number of the last message published
func (b *Bus) Sequence() uint64 {
	b.Lock()
	defer b.Unlock()
	return b.sequence
}

// Emit - publish, for use as an event sink
func (b *Bus) Emit(e event.Event) {
	b.Publish(e)
}

// Publish - assign a sequence number and deliver to every subscriber
//
// never blocks: a subscriber whose queue is full is closed and must
// resubscribe from its last processed sequence
func (b *Bus) Publish(e event.Event) Message {
	b.Lock()
	defer b.Unlock()

	b.sequence += 1
	m := Message{
		Sequence: b.sequence,
		Event:    e,
	}

	// record in history
	n := len(b.history)
	if b.count < n {
		b.history[(b.start+b.count)%n] = m
		b.count += 1
	} else {
		b.history[b.start] = m
		b.start = (b.start + 1) % n
	}

	for id, s := range b.subscribers {
		select {
		case s.queue <- m:
		default:
			b.log.Warnf("subscriber: %d  lagging at sequence: %d", id, m.Sequence)
			b.drop(s)
		}
	}
	return m
}

// Subscribe - receive messages published from now on
func (b *Bus) Subscribe() *Subscription {
	b.Lock()
	defer b.Unlock()
	return b.subscribe(nil)
}

// SubscribeFrom - receive all messages from sequence onwards
//
// fails if the oldest requested message is no longer in the history
func (b *Bus) SubscribeFrom(sequence uint64) (*Subscription, error) {
	b.Lock()
	defer b.Unlock()

	if 0 == sequence {
		sequence = 1
	}
	if sequence > b.sequence+1 {
		return nil, fault.ErrInvalidCursor
	}

	oldest := b.sequence + 1 - uint64(b.count)
	if sequence < oldest {
		return nil, fault.ErrInvalidCursor
	}

	n := len(b.history)
	backlog := make([]Message, 0, b.sequence+1-sequence)
	for i := int(sequence - oldest); i < b.count; i += 1 {
		backlog = append(backlog, b.history[(b.start+i)%n])
	}
	return b.subscribe(backlog), nil
}

// must hold lock
func (b *Bus) subscribe(backlog []Message) *Subscription {
	s := &Subscription{
		bus:   b,
		id:    b.nextID,
		queue: make(chan Message, b.queueSize+len(backlog)),
	}
	b.nextID += 1
	for _, m := range backlog {
		s.queue <- m
	}
	b.subscribers[s.id] = s
	b.log.Debugf("subscribe: %d  backlog: %d", s.id, len(backlog))
	return s
}

// must hold lock
func (b *Bus) drop(s *Subscription) {
	if s.closed {
		return
	}
	s.closed = true
	delete(b.subscribers, s.id)
	close(s.queue)
}

// Subscribers - number of live subscriptions
func (b *Bus) Subscribers() int {
	b.Lock()
	defer b.Unlock()
	return len(b.subscribers)
}

// Close - stop all subscriptions
func (b *Bus) Close() {
	b.Lock()
	defer b.Unlock()
	for _, s := range b.subscribers {
		b.drop(s)
	}
}

// C - channel to read from, closed when the subscription ends
func (s *Subscription) C() <-chan Message {
	return s.queue
}

// Close - stop receiving
func (s *Subscription) Close() {
	s.bus.Lock()
	s.bus.drop(s)
	s.bus.Unlock()
}
