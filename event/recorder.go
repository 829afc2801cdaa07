// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

// Recorder - a sink that keeps events until they are taken
type Recorder struct {
	events []Event
}

// Emit - append to the pending list
func (r *Recorder) Emit(e Event) {
	r.events = append(r.events, e)
}

// Take - return the pending events and reset
func (r *Recorder) Take() []Event {
	events := r.events
	r.events = nil
	return events
}

// Reset - drop the pending events
func (r *Recorder) Reset() {
	r.events = nil
}

// Len - number of pending events
func (r *Recorder) Len() int {
	return len(r.events)
}
