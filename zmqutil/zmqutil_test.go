// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/swapmeet/fault"
	"github.com/bitmark-inc/swapmeet/zmqutil"
)

func TestCanonicalAddress(t *testing.T) {
	tests := []struct {
		address  string
		endpoint string
		v6       bool
		err      error
	}{
		{"127.0.0.1:2135", "tcp://127.0.0.1:2135", false, nil},
		{"[::1]:2135", "tcp://[::1]:2135", true, nil},
		{"*:2135", "tcp://*:2135", true, nil},
		{"localhost:2135", "", false, fault.ErrInvalidIPAddress},
		{"127.0.0.1", "", false, fault.ErrInvalidIPAddress},
		{"", "", false, fault.ErrInvalidIPAddress},
	}

	for _, test := range tests {
		endpoint, v6, err := zmqutil.CanonicalAddress(test.address)
		assert.Equal(t, test.err, err, test.address)
		assert.Equal(t, test.endpoint, endpoint, test.address)
		assert.Equal(t, test.v6, v6, test.address)
	}
}

func TestKeyPair(t *testing.T) {
	dir, err := ioutil.TempDir("", "zmqutil")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	public := filepath.Join(dir, "publisher.public")
	private := filepath.Join(dir, "publisher.private")

	err = zmqutil.MakeKeyPair(public, private)
	assert.Nil(t, err, "make key pair")

	publicKey, err := zmqutil.ReadPublicKeyFile(public)
	assert.Nil(t, err, "read public key")
	assert.Equal(t, 32, len(publicKey), "public key length")

	privateKey, err := zmqutil.ReadPrivateKeyFile(private)
	assert.Nil(t, err, "read private key")
	assert.Equal(t, 32, len(privateKey), "private key length")

	// swapped files are rejected
	_, err = zmqutil.ReadPublicKeyFile(private)
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "private key read as public")
	_, err = zmqutil.ReadPrivateKeyFile(public)
	assert.Equal(t, fault.ErrInvalidPrivateKeyFile, err, "public key read as private")

	err = zmqutil.MakeKeyPair(public, private)
	assert.Equal(t, fault.ErrKeyFileExists, err, "overwrote key files")
}

func TestParseKey(t *testing.T) {
	_, _, err := zmqutil.ParseKey("PUBLIC:0102")
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "short public key")

	_, _, err = zmqutil.ParseKey("PRIVATE:0102")
	assert.Equal(t, fault.ErrInvalidPrivateKeyFile, err, "short private key")

	_, _, err = zmqutil.ParseKey("SECRET:0102")
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "unknown tag")

	key := "PUBLIC:" + "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff" + "\n"
	data, private, err := zmqutil.ParseKey(key)
	assert.Nil(t, err, "valid key")
	assert.False(t, private, "public key reported private")
	assert.Equal(t, byte(0x11), data[1], "wrong key byte")
}
