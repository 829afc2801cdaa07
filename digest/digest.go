// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - fixed size opaque digests
//
// used for item content hashes (the off-registry artifact) and for
// the hashed postal addresses exchanged by the parties of a swap
package digest

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/swapmeet/fault"
)

// Length - number of bytes in the digest
const Length = 32

// Digest - stored in the byte order it was supplied
// represented as 0x prefixed hex for print and JSON
type Digest [Length]byte

// New - SHA3-256 of a byte slice
func New(record []byte) Digest {
	return sha3.Sum256(record)
}

// FromBytes - convert and validate a byte slice to a digest
func FromBytes(digest *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidDigest
	}
	copy(digest[:], buffer)
	return nil
}

// FromString - parse hex with an optional 0x prefix
func FromString(s string) (Digest, error) {
	var d Digest
	err := d.UnmarshalText([]byte(s))
	return d, err
}

// IsZero - true if no digest was set
func (digest Digest) IsZero() bool {
	return digest == Digest{}
}

// String - 0x prefixed hex for the fmt package (for %s)
func (digest Digest) String() string {
	return "0x" + hex.EncodeToString(digest[:])
}

// GoString - for %#v
func (digest Digest) GoString() string {
	return "<digest:" + hex.EncodeToString(digest[:]) + ">"
}

// Scan - hex representation to a digest for the fmt scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		return c >= '0' && c <= '9' || c >= 'A' && c <= 'F' || c >= 'a' && c <= 'f' || 'x' == c || 'X' == c
	})
	if nil != err {
		return err
	}
	return digest.UnmarshalText(token)
}

// MarshalText - convert digest to 0x prefixed hex text
func (digest Digest) MarshalText() ([]byte, error) {
	return []byte(digest.String()), nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	text := strings.TrimPrefix(strings.TrimPrefix(string(s), "0x"), "0X")
	if hex.EncodedLen(Length) != len(text) {
		return fault.ErrInvalidDigest
	}
	buffer := make([]byte, Length)
	if _, err := hex.Decode(buffer, []byte(text)); nil != err {
		return fault.ErrInvalidDigest
	}
	copy(digest[:], buffer)
	return nil
}
