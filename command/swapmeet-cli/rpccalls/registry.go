// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/digest"
	"github.com/bitmark-inc/swapmeet/rpc/registry"
)

// ItemData - a new item for one of the caller's collections
type ItemData struct {
	Category    string
	Collection  int
	Name        string
	ContentHash digest.Digest
	Value       uint64
	Swappable   bool
}

// AddCategory - owner creates a category
func (c *Client) AddCategory(name string) (*registry.AddCategoryReply, error) {
	id, err := MakeRequestID()
	if nil != err {
		return nil, err
	}

	arguments := registry.AddCategoryArguments{
		Caller:    c.caller,
		RequestID: id,
		Name:      name,
	}
	var reply registry.AddCategoryReply
	if err := c.call("Registry.AddCategory", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// AddCollector - register the caller under a display name
func (c *Client) AddCollector(name string) (*registry.AddCollectorReply, error) {
	id, err := MakeRequestID()
	if nil != err {
		return nil, err
	}

	arguments := registry.AddCollectorArguments{
		Caller:    c.caller,
		RequestID: id,
		Name:      name,
	}
	var reply registry.AddCollectorReply
	if err := c.call("Registry.AddCollector", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// AddCollection - create a collection in a category
func (c *Client) AddCollection(category string, name string, tags string) (*registry.AddCollectionReply, error) {
	id, err := MakeRequestID()
	if nil != err {
		return nil, err
	}

	arguments := registry.AddCollectionArguments{
		Caller:    c.caller,
		RequestID: id,
		Category:  category,
		Name:      name,
		Tags:      tags,
	}
	var reply registry.AddCollectionReply
	if err := c.call("Registry.AddCollection", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// AddItem - add an item to a collection
func (c *Client) AddItem(item *ItemData) (*registry.ItemChangeReply, error) {
	id, err := MakeRequestID()
	if nil != err {
		return nil, err
	}

	arguments := registry.AddItemArguments{
		Caller:      c.caller,
		RequestID:   id,
		Category:    item.Category,
		Collection:  item.Collection,
		Name:        item.Name,
		ContentHash: item.ContentHash,
		Value:       item.Value,
		Swappable:   item.Swappable,
	}
	var reply registry.ItemChangeReply
	if err := c.call("Registry.AddItem", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// RemoveItem - remove an item from a collection
func (c *Client) RemoveItem(category string, collection int, name string) (*registry.ItemChangeReply, error) {
	id, err := MakeRequestID()
	if nil != err {
		return nil, err
	}

	arguments := registry.RemoveItemArguments{
		Caller:     c.caller,
		RequestID:  id,
		Category:   category,
		Collection: collection,
		Name:       name,
	}
	var reply registry.ItemChangeReply
	if err := c.call("Registry.RemoveItem", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Categories - every category name, following the pages
func (c *Client) Categories() ([]string, error) {
	names := []string{}
	start := 0
	for {
		arguments := registry.CategoriesArguments{
			Start: start,
			Count: registry.MaximumListCount,
		}
		var reply registry.CategoriesReply
		if err := c.call("Registry.Categories", &arguments, &reply); nil != err {
			return nil, err
		}
		names = append(names, reply.Categories...)
		if 0 == len(reply.Categories) || reply.Next <= start {
			return names, nil
		}
		start = reply.Next
	}
}

// Collections - one page of the collections of a category
func (c *Client) Collections(category string, start int, count int) (*registry.CollectionsReply, error) {
	arguments := registry.CollectionsArguments{
		Category: category,
		Start:    start,
		Count:    count,
	}
	var reply registry.CollectionsReply
	if err := c.call("Registry.Collections", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Items - the item names of a collection
func (c *Client) Items(category string, collection int) (*registry.ItemsReply, error) {
	arguments := registry.ItemsArguments{
		Category:   category,
		Collection: collection,
	}
	var reply registry.ItemsReply
	if err := c.call("Registry.Items", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Item - details of one item
func (c *Client) Item(category string, collection int, name string) (*registry.ItemReply, error) {
	arguments := registry.ItemArguments{
		Category:   category,
		Collection: collection,
		Name:       name,
	}
	var reply registry.ItemReply
	if err := c.call("Registry.Item", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// IsCollector - registration state of an identity
func (c *Client) IsCollector(identity account.Account) (*registry.CollectorReply, error) {
	arguments := registry.CollectorArguments{
		Identity: identity,
	}
	var reply registry.CollectorReply
	if err := c.call("Registry.IsCollector", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
