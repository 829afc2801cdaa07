// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runRedeemable(c *cli.Context) error {

	m := getMetadata(c)

	if c.Bool("totals") {
		client, err := connect(m)
		if nil != err {
			return err
		}
		defer client.Close()

		response, err := client.Totals()
		if nil != err {
			return err
		}
		printJson(m.w, response)
		return nil
	}

	identity, err := checkIdentity(c, "identity", m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Redeemable(identity)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runRedeem(c *cli.Context) error {

	m := getMetadata(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Redeem()
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
