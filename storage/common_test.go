// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"encoding/binary"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/swapmeet/fixtures"
	"github.com/bitmark-inc/swapmeet/storage"
)

// common test setup routines

// configure for testing, returns the database name
func setup(t *testing.T) string {
	fixtures.SetupTestLogger()

	directory, err := ioutil.TempDir("", "swapmeet-storage")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	databaseFileName := filepath.Join(directory, "test.leveldb")

	err = storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return databaseFileName
}

// post test cleanup
func teardown(databaseFileName string) {
	storage.Finalise()
	os.RemoveAll(filepath.Dir(databaseFileName))
	fixtures.TeardownTestLogger()
}

// write records through a committed transaction
func write(t *testing.T, p *storage.PoolHandle, first uint64, last uint64) {
	trx := storage.NewTransaction()
	for i := first; i <= last; i += 1 {
		trx.Put(p, sequenceKey(i), []byte(fmt.Sprintf("record-%d", i)))
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

func sequenceKey(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}
