// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package swap

import (
	"strconv"

	"github.com/bitmark-inc/swapmeet/fault"
)

// Status - lifecycle of a swap
type Status uint8

// swap states, values are fixed
const (
	Proposed  Status = 0
	Rejected  Status = 1
	Confirmed Status = 2
	Completed Status = 3
)

var statusNames = []string{"proposed", "rejected", "confirmed", "completed"}

// String - lower case name
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// MarshalText - the status name
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText - the status name
func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if name == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return fault.ErrInvalidOperation
}

// Leg - one side of a swap
type Leg uint8

// the two parties
const (
	SwapperLeg Leg = 0
	SwappeeLeg Leg = 1
)

// Valid - true for the two defined legs
func (l Leg) Valid() bool {
	return SwapperLeg == l || SwappeeLeg == l
}

// String - name of the party
func (l Leg) String() string {
	switch l {
	case SwapperLeg:
		return "swapper"
	case SwappeeLeg:
		return "swappee"
	default:
		return "leg(" + strconv.Itoa(int(l)) + ")"
	}
}
