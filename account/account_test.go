// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/fault"
)

func makeAccount(t *testing.T, test bool) account.Account {
	publicKey, _, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	a, err := account.New(publicKey, test)
	if nil != err {
		t.Fatalf("new account error: %s", err)
	}
	return a
}

func TestBase58RoundTrip(t *testing.T) {
	for _, test := range []bool{false, true} {
		a := makeAccount(t, test)

		s := a.String()
		b, err := account.FromBase58(s)
		assert.Nil(t, err, "wrong FromBase58")
		assert.Equal(t, a, b, "accounts differ")
		assert.Equal(t, test, b.IsTesting(), "wrong network")
	}
}

func TestChecksumMismatch(t *testing.T) {
	a := makeAccount(t, true)
	s := []byte(a.String())

	// alter one character in the middle of the text
	if '2' == s[10] {
		s[10] = '3'
	} else {
		s[10] = '2'
	}

	_, err := account.FromBase58(string(s))
	assert.NotNil(t, err, "corrupt account accepted")
}

func TestInvalidKeys(t *testing.T) {
	_, err := account.New(ed25519.PublicKey{1, 2, 3}, false)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short key accepted")

	_, err = account.New(make(ed25519.PublicKey, ed25519.PublicKeySize), false)
	assert.Equal(t, fault.ErrInvalidAccount, err, "zero key accepted")

	_, err = account.FromBase58("")
	assert.Equal(t, fault.ErrInvalidAccount, err, "empty text accepted")

	packed := makeAccount(t, false).Bytes()
	packed[0] = 0x20 // not a public key
	_, err = account.FromBytes(packed)
	assert.Equal(t, fault.ErrNotPublicKey, err, "private key variant accepted")
}

func TestUsableAsMapKey(t *testing.T) {
	a := makeAccount(t, true)
	b, _ := account.FromBase58(a.String())

	m := map[account.Account]int{a: 1}
	m[b] += 1
	assert.Equal(t, 1, len(m), "equal accounts must share a key")
	assert.Equal(t, 2, m[a], "wrong count")
}

func TestJSON(t *testing.T) {
	a := makeAccount(t, true)

	type wrapper struct {
		Owner account.Account `json:"owner"`
	}

	buffer, err := json.Marshal(wrapper{Owner: a})
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"owner":"`+a.String()+`"}`, string(buffer), "wrong JSON")

	var w wrapper
	err = json.Unmarshal(buffer, &w)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, a, w.Owner, "wrong account")
	assert.False(t, w.Owner.IsZero(), "zero account")
}
