// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/command/swapmeet-cli/rpccalls"
	"github.com/bitmark-inc/swapmeet/swap"
)

func runPropose(c *cli.Context) error {

	m := getMetadata(c)

	category, err := checkName(c, "category")
	if nil != err {
		return err
	}
	swapperCollection, err := checkIndex(c, "collection")
	if nil != err {
		return err
	}
	offered, err := checkName(c, "offered")
	if nil != err {
		return err
	}
	swappeeText, err := checkName(c, "swappee")
	if nil != err {
		return err
	}
	swappee, err := account.FromBase58(swappeeText)
	if nil != err {
		return err
	}
	swappeeCollection, err := checkIndex(c, "swappee-collection")
	if nil != err {
		return err
	}
	wanted, err := checkName(c, "wanted")
	if nil != err {
		return err
	}
	address, err := checkAddress(c, "address")
	if nil != err {
		return err
	}
	value, err := checkValue(c, "value")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Propose(&rpccalls.ProposalData{
		Category:          category,
		SwapperCollection: swapperCollection,
		SwappeeCollection: swappeeCollection,
		Swappee:           swappee,
		Address:           address,
		Wanted:            wanted,
		Offered:           offered,
		Value:             value,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runReject(c *cli.Context) error {

	m := getMetadata(c)

	slot, err := checkSlot(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Reject(slot)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runConfirm(c *cli.Context) error {

	m := getMetadata(c)

	slot, err := checkSlot(c)
	if nil != err {
		return err
	}
	address, err := checkAddress(c, "address")
	if nil != err {
		return err
	}
	value, err := checkValue(c, "value")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Confirm(slot, address, value)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTrack(c *cli.Context) error {

	m := getMetadata(c)

	slot, err := checkSlot(c)
	if nil != err {
		return err
	}
	reference, err := checkName(c, "reference")
	if nil != err {
		return err
	}
	leg, err := checkLeg(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AddTracking(slot, reference, leg)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runReceived(c *cli.Context) error {

	m := getMetadata(c)

	slot, err := checkSlot(c)
	if nil != err {
		return err
	}
	leg, err := checkLeg(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.MarkReceived(slot, leg)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

type swapResult struct {
	Swap     swap.Details        `json:"swap"`
	Tracking *swapTrackingResult `json:"tracking,omitempty"`
}

type swapTrackingResult struct {
	Swapper swap.Tracking `json:"swapper"`
	Swappee swap.Tracking `json:"swappee"`
}

func runSwap(c *cli.Context) error {

	m := getMetadata(c)

	slot, err := checkSlot(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	details, err := client.Details(slot)
	if nil != err {
		return err
	}

	result := swapResult{
		Swap: details.Swap,
	}

	// only confirmed swaps have tracking
	if tracking, err := client.Tracking(slot); nil == err {
		result.Tracking = &swapTrackingResult{
			Swapper: tracking.Swapper,
			Swappee: tracking.Swappee,
		}
	}

	printJson(m.w, result)
	return nil
}

func runBook(c *cli.Context) error {

	m := getMetadata(c)

	category, err := checkName(c, "category")
	if nil != err {
		return err
	}
	collection, err := checkIndex(c, "collection")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Book(category, collection)
	if nil != err {
		return err
	}

	count, err := client.ConfirmedCount()
	if nil != err {
		return err
	}

	printJson(m.w, struct {
		Slots     []swap.Slot `json:"slots"`
		Confirmed int         `json:"confirmed"`
	}{
		Slots:     response.Slots,
		Confirmed: count.Count,
	})
	return nil
}

func checkLeg(c *cli.Context) (swap.Leg, error) {
	s, err := checkName(c, "leg")
	if nil != err {
		return 0, err
	}
	return rpccalls.ParseLeg(s)
}
