// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
package fixtures

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/digest"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// the accounts used by the original regression scenario
var (
	Owner = MakeAccount("owner")
	Alice = MakeAccount("alice")
	Bob   = MakeAccount("bob")
	Carol = MakeAccount("carol")
)

// content and address hashes used by the regression scenario
var (
	VegemiteHash     = mustDigest("0x7d5a99f603f231d53a4f39d1521f98d2e8bb279cf29bebfd0687dc98458e7f89")
	EggsHash         = mustDigest("0x4b5a99f603f231d53a4f39d1521f98d2e8bb279cf29bebfd0687dc98458e7f89")
	RemoveMeHash     = mustDigest("0x6e5a99f603f231d53a4f39d1521f98d2e8bb279cf29bebfd0687dc98458e7f89")
	BobAddressHash   = mustDigest("0x7e5a99f603f231d53a4f39d1521f98d2e8bb279cf29bebfd0687dc98458e7f89")
	AliceAddressHash = mustDigest("0x665a99f603f231d53a4f39d1521f98d2e8bb279cf29bebfd0687dc98458e7f89")
)

// Finney - 10^15 of the smallest currency unit
const Finney = uint64(1000000000000000)

// MakeAccount - deterministic test network account derived from a name
func MakeAccount(name string) account.Account {
	seed := sha3.Sum256([]byte("swapmeet test seed: " + name))
	privateKey := ed25519.NewKeyFromSeed(seed[:])
	a, err := account.New(privateKey.Public().(ed25519.PublicKey), true)
	if nil != err {
		panic(fmt.Sprintf("fixture account: %q error: %s", name, err))
	}
	return a
}

func mustDigest(s string) digest.Digest {
	d, err := digest.FromString(s)
	if nil != err {
		panic(fmt.Sprintf("fixture digest: %q error: %s", s, err))
	}
	return d
}

// SetupTestLogger - log to a private directory at critical level only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the log directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
