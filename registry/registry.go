// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - categories, collectors, collections and items
//
// every mutation validates all of its preconditions before changing
// anything, so a failed call leaves the registry untouched
package registry

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swapmeet/access"
	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/digest"
	"github.com/bitmark-inc/swapmeet/event"
	"github.com/bitmark-inc/swapmeet/fault"
)

// Registry - the catalogue
type Registry struct {
	log    *logger.L
	access *access.Control
	sink   event.Sink

	categories    []*category
	categoryIndex map[string]int
	collectors    map[account.Account]string
}

type category struct {
	name        string
	collections []*collection
}

type collection struct {
	name  string
	owner account.Account
	tags  string
	items map[string]*item
	names []string // insertion order
}

type item struct {
	contentHash digest.Digest
	value       uint64
	swappable   bool
	outstanding uint64 // handle of the swap holding this item, zero if none
}

// Collection - details of a collection
type Collection struct {
	Name      string          `json:"name"`
	Owner     account.Account `json:"owner"`
	Tags      string          `json:"tags"`
	ItemCount int             `json:"itemCount"`
}

// Item - details of an item
type Item struct {
	Name        string        `json:"name"`
	ContentHash digest.Digest `json:"contentHash"`
	Value       uint64        `json:"value"`
	Swappable   bool          `json:"swappable"`
	Outstanding bool          `json:"outstanding"`
}

// New - create an empty registry
func New(log *logger.L, control *access.Control, sink event.Sink) *Registry {
	return &Registry{
		log:           log,
		access:        control,
		sink:          sink,
		categoryIndex: make(map[string]int),
		collectors:    make(map[account.Account]string),
	}
}

// AddCategory - owner only
func (r *Registry) AddCategory(name string, caller account.Account) error {
	if err := r.access.RequireOwner(caller); nil != err {
		return err
	}
	if "" == name {
		return fault.ErrEmptyName
	}
	if _, ok := r.categoryIndex[name]; ok {
		return fault.ErrDuplicateCategory
	}

	index := len(r.categories)
	r.categories = append(r.categories, &category{
		name: name,
	})
	r.categoryIndex[name] = index

	r.log.Infof("category: %d: %q", index, name)
	r.sink.Emit(event.CategoryAdded{
		Category: name,
		Index:    index,
	})
	return nil
}

// AddCollector - register the caller, a repeat call replaces the name
func (r *Registry) AddCollector(name string, caller account.Account) error {
	if caller.IsZero() {
		return fault.ErrRequiredCaller
	}
	if "" == name {
		return fault.ErrEmptyName
	}

	if previous, ok := r.collectors[caller]; ok {
		r.log.Infof("collector: %s renamed: %q -> %q", caller, previous, name)
	} else {
		r.log.Infof("collector: %s registered: %q", caller, name)
	}
	r.collectors[caller] = name

	r.sink.Emit(event.RegistrationConfirmed{
		Identity:  caller,
		Collector: name,
	})
	return nil
}

// IsCollector - true if the identity has registered
func (r *Registry) IsCollector(identity account.Account) bool {
	_, ok := r.collectors[identity]
	return ok
}

// Collector - display name of a registered collector
func (r *Registry) Collector(identity account.Account) (string, error) {
	name, ok := r.collectors[identity]
	if !ok {
		return "", fault.ErrUnknownCollector
	}
	return name, nil
}

// AddCollection - create a collection owned by the caller, returns its index
func (r *Registry) AddCollection(name string, tags string, categoryName string, caller account.Account) (int, error) {
	if !r.IsCollector(caller) {
		return 0, fault.ErrNotACollector
	}
	c, err := r.category(categoryName)
	if nil != err {
		return 0, err
	}
	if "" == name {
		return 0, fault.ErrEmptyName
	}

	index := len(c.collections)
	c.collections = append(c.collections, &collection{
		name:  name,
		owner: caller,
		tags:  tags,
		items: make(map[string]*item),
	})

	r.log.Infof("collection: %q[%d]: %q  owner: %s", categoryName, index, name, caller)
	r.sink.Emit(event.CollectionAdded{
		Category:   categoryName,
		Index:      index,
		Collection: name,
		Owner:      caller,
	})
	return index, nil
}

// AddItem - collection owner only
func (r *Registry) AddItem(categoryName string, collectionIndex int, itemName string, contentHash digest.Digest, value uint64, swappable bool, caller account.Account) error {
	c, err := r.ownedCollection(categoryName, collectionIndex, caller)
	if nil != err {
		return err
	}
	if "" == itemName {
		return fault.ErrEmptyName
	}
	if _, ok := c.items[itemName]; ok {
		return fault.ErrDuplicateItem
	}

	c.items[itemName] = &item{
		contentHash: contentHash,
		value:       value,
		swappable:   swappable,
	}
	c.names = append(c.names, itemName)

	r.log.Debugf("item: %q[%d]: %q  value: %d  swappable: %t", categoryName, collectionIndex, itemName, value, swappable)
	return nil
}

// RemoveItem - collection owner only, refused while a swap holds the item
func (r *Registry) RemoveItem(categoryName string, collectionIndex int, itemName string, caller account.Account) error {
	c, err := r.ownedCollection(categoryName, collectionIndex, caller)
	if nil != err {
		return err
	}
	i, ok := c.items[itemName]
	if !ok {
		return fault.ErrUnknownItem
	}
	if 0 != i.outstanding {
		return fault.ErrItemHasOutstandingProposal
	}

	delete(c.items, itemName)
	for n, name := range c.names {
		if name == itemName {
			c.names = append(c.names[:n], c.names[n+1:]...)
			break
		}
	}

	r.log.Debugf("remove item: %q[%d]: %q", categoryName, collectionIndex, itemName)
	return nil
}

// CategoryCount - number of categories
func (r *Registry) CategoryCount() int {
	return len(r.categories)
}

// Category - name of the category at an index
func (r *Registry) Category(index int) (string, error) {
	if index < 0 || index >= len(r.categories) {
		return "", fault.ErrUnknownCategory
	}
	return r.categories[index].name, nil
}

// CollectionCount - number of collections in a category
func (r *Registry) CollectionCount(categoryName string) (int, error) {
	c, err := r.category(categoryName)
	if nil != err {
		return 0, err
	}
	return len(c.collections), nil
}

// Collection - details of a collection
func (r *Registry) Collection(categoryName string, index int) (Collection, error) {
	c, err := r.collection(categoryName, index)
	if nil != err {
		return Collection{}, err
	}
	return Collection{
		Name:      c.name,
		Owner:     c.owner,
		Tags:      c.tags,
		ItemCount: len(c.items),
	}, nil
}

// Item - details of a named item
func (r *Registry) Item(categoryName string, collectionIndex int, itemName string) (Item, error) {
	c, err := r.collection(categoryName, collectionIndex)
	if nil != err {
		return Item{}, err
	}
	i, ok := c.items[itemName]
	if !ok {
		return Item{}, fault.ErrUnknownItem
	}
	return Item{
		Name:        itemName,
		ContentHash: i.contentHash,
		Value:       i.value,
		Swappable:   i.swappable,
		Outstanding: 0 != i.outstanding,
	}, nil
}

// Items - item names of a collection in the order they were added
func (r *Registry) Items(categoryName string, collectionIndex int) ([]string, error) {
	c, err := r.collection(categoryName, collectionIndex)
	if nil != err {
		return nil, err
	}
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names, nil
}

func (r *Registry) category(name string) (*category, error) {
	index, ok := r.categoryIndex[name]
	if !ok {
		return nil, fault.ErrUnknownCategory
	}
	return r.categories[index], nil
}

func (r *Registry) collection(categoryName string, index int) (*collection, error) {
	c, err := r.category(categoryName)
	if nil != err {
		return nil, err
	}
	if index < 0 || index >= len(c.collections) {
		return nil, fault.ErrUnknownCollection
	}
	return c.collections[index], nil
}

func (r *Registry) ownedCollection(categoryName string, index int, caller account.Account) (*collection, error) {
	c, err := r.collection(categoryName, index)
	if nil != err {
		return nil, err
	}
	if c.owner != caller {
		return nil, fault.ErrNotCollectionOwner
	}
	return c, nil
}
