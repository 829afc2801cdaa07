// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - ordered fan out of events to subscribers
//
// every published event is given the next sequence number and kept
// in a bounded history so that a subscriber that fell behind can
// resume from the last sequence it processed; subscribers must
// therefore tolerate seeing a message more than once
package messagebus
