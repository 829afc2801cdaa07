// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/swapmeet/fault"
)

// enumeration of supported key algorithms
const (
	ed25519Algorithm = 1
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm

	// single byte key variant ++ public key
	packedLength = 1 + ed25519.PublicKeySize
)

// Account - identity of a collector or of the registry owner
//
// this is a comparable value so it can be used directly as a map key;
// the zero value is not a valid identity
type Account struct {
	test      bool
	publicKey [ed25519.PublicKeySize]byte
}

// New - create an account from an ed25519 public key
func New(publicKey ed25519.PublicKey, test bool) (Account, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return Account{}, fault.ErrInvalidKeyLength
	}
	a := Account{
		test: test,
	}
	copy(a.publicKey[:], publicKey)
	if a.IsZero() {
		return Account{}, fault.ErrInvalidAccount
	}
	return a, nil
}

// FromBase58 - convert a Base58 encoded string to an account
func FromBase58(accountBase58Encoded string) (Account, error) {
	decoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(decoded) {
		return Account{}, fault.ErrInvalidAccount
	}
	if len(decoded) != packedLength+checksumLength {
		return Account{}, fault.ErrInvalidKeyLength
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return Account{}, fault.ErrChecksumMismatch
	}

	return FromBytes(decoded[:checksumStart])
}

// FromBytes - convert a packed key variant ++ public key to an account
func FromBytes(packed []byte) (Account, error) {
	if len(packed) != packedLength {
		return Account{}, fault.ErrInvalidKeyLength
	}

	keyVariant := packed[0]
	if keyVariant&publicKeyCode != publicKeyCode {
		return Account{}, fault.ErrNotPublicKey
	}
	if keyVariant>>algorithmShift != ed25519Algorithm {
		return Account{}, fault.ErrInvalidKeyType
	}

	return New(ed25519.PublicKey(packed[1:]), 0 != keyVariant&testKeyCode)
}

// IsZero - true for the unset account
func (a Account) IsZero() bool {
	return a == Account{}
}

// IsTesting - true for test network keys
func (a Account) IsTesting() bool {
	return a.test
}

// PublicKey - a copy of the raw public key
func (a Account) PublicKey() ed25519.PublicKey {
	k := make([]byte, ed25519.PublicKeySize)
	copy(k, a.publicKey[:])
	return k
}

// Bytes - packed key variant ++ public key
func (a Account) Bytes() []byte {
	keyVariant := byte(ed25519Algorithm<<algorithmShift) | publicKeyCode
	if a.test {
		keyVariant |= testKeyCode
	}
	buffer := make([]byte, 1, packedLength+checksumLength)
	buffer[0] = keyVariant
	return append(buffer, a.publicKey[:]...)
}

// String - base58 text with a four byte SHA3 checksum
func (a Account) String() string {
	if a.IsZero() {
		return ""
	}
	buffer := a.Bytes()
	checksum := sha3.Sum256(buffer)
	return base58.Encode(append(buffer, checksum[:checksumLength]...))
}

// GoString - for %#v
func (a Account) GoString() string {
	return "<account:" + a.String() + ">"
}

// MarshalText - convert an account to base58 for JSON
func (a Account) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 text to an account
func (a *Account) UnmarshalText(s []byte) error {
	if 0 == len(s) {
		*a = Account{}
		return nil
	}
	account, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = account
	return nil
}
