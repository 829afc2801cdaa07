// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/command/swapmeet-cli/rpccalls"
	"github.com/bitmark-inc/swapmeet/digest"
)

func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(&m.options, m.e)
}

func checkName(c *cli.Context, name string) (string, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		return "", fmt.Errorf("%s is required", name)
	}
	return s, nil
}

func checkIndex(c *cli.Context, name string) (int, error) {
	n := c.Int(name)
	if n < 0 {
		return 0, fmt.Errorf("%s is required", name)
	}
	return n, nil
}

func checkValue(c *cli.Context, name string) (uint64, error) {
	v := c.Uint64(name)
	if 0 == v {
		return 0, fmt.Errorf("%s must be greater than zero", name)
	}
	return v, nil
}

// an identity flag, falling back to the caller
func checkIdentity(c *cli.Context, name string, m *metadata) (account.Account, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		if m.options.Caller.IsZero() {
			return account.Account{}, fmt.Errorf("%s or caller is required", name)
		}
		return m.options.Caller, nil
	}
	return account.FromBase58(s)
}

// shipping addresses never leave the client, only their hash
func checkAddress(c *cli.Context, name string) (digest.Digest, error) {
	s, err := checkName(c, name)
	if nil != err {
		return digest.Digest{}, err
	}
	return digest.New([]byte(s)), nil
}

func checkContentHash(c *cli.Context) (digest.Digest, error) {
	hash := strings.TrimSpace(c.String("hash"))
	file := strings.TrimSpace(c.String("file"))

	switch {
	case "" != hash && "" != file:
		return digest.Digest{}, fmt.Errorf("only one of hash or file can be given")
	case "" != hash:
		return digest.FromString(hash)
	case "" != file:
		content, err := ioutil.ReadFile(file)
		if nil != err {
			return digest.Digest{}, err
		}
		return digest.New(content), nil
	default:
		return digest.Digest{}, fmt.Errorf("hash or file is required")
	}
}

func checkSlot(c *cli.Context) (*rpccalls.SlotData, error) {
	category, err := checkName(c, "category")
	if nil != err {
		return nil, err
	}
	collection, err := checkIndex(c, "collection")
	if nil != err {
		return nil, err
	}
	index, err := checkIndex(c, "index")
	if nil != err {
		return nil, err
	}
	return &rpccalls.SlotData{
		Category:   category,
		Collection: collection,
		Index:      index,
	}, nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
