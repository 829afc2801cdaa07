// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/swapmeet/command/swapmeet-cli/rpccalls"
)

func runCategories(c *cli.Context) error {

	m := getMetadata(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	names, err := client.Categories()
	if nil != err {
		return err
	}

	printJson(m.w, names)
	return nil
}

func runAddCategory(c *cli.Context) error {

	m := getMetadata(c)

	name, err := checkName(c, "name")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AddCategory(name)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runRegister(c *cli.Context) error {

	m := getMetadata(c)

	name, err := checkName(c, "name")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AddCollector(name)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runCollector(c *cli.Context) error {

	m := getMetadata(c)

	identity, err := checkIdentity(c, "identity", m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.IsCollector(identity)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runAddCollection(c *cli.Context) error {

	m := getMetadata(c)

	category, err := checkName(c, "category")
	if nil != err {
		return err
	}
	name, err := checkName(c, "name")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AddCollection(category, name, c.String("tags"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runCollections(c *cli.Context) error {

	m := getMetadata(c)

	category, err := checkName(c, "category")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Collections(category, c.Int("start"), c.Int("count"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runItems(c *cli.Context) error {

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

	if name := c.String("name"); "" != name {
		response, err := client.Item(category, collection, name)
		if nil != err {
			return err
		}
		printJson(m.w, response)
		return nil
	}

	response, err := client.Items(category, collection)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runAddItem(c *cli.Context) error {

	m := getMetadata(c)

	category, err := checkName(c, "category")
	if nil != err {
		return err
	}
	collection, err := checkIndex(c, "collection")
	if nil != err {
		return err
	}
	name, err := checkName(c, "name")
	if nil != err {
		return err
	}
	contentHash, err := checkContentHash(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AddItem(&rpccalls.ItemData{
		Category:    category,
		Collection:  collection,
		Name:        name,
		ContentHash: contentHash,
		Value:       c.Uint64("value"),
		Swappable:   c.Bool("swappable"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runRemoveItem(c *cli.Context) error {

	m := getMetadata(c)

	category, err := checkName(c, "category")
	if nil != err {
		return err
	}
	collection, err := checkIndex(c, "collection")
	if nil != err {
		return err
	}
	name, err := checkName(c, "name")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RemoveItem(category, collection, name)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
