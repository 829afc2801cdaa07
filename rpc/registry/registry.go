// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/digest"
	"github.com/bitmark-inc/swapmeet/fault"
	"github.com/bitmark-inc/swapmeet/mode"
	"github.com/bitmark-inc/swapmeet/registry"
	"github.com/bitmark-inc/swapmeet/rpc/idempotent"
	"github.com/bitmark-inc/swapmeet/rpc/ratelimit"
)

const (
	rateLimitRegistry = 200
	rateBurstRegistry = 100

	// MaximumListCount - page size limit for list calls
	MaximumListCount = 100
)

// Catalogue - the registry operations served by this area
type Catalogue interface {
	AddCategory(caller account.Account, name string) error
	AddCollector(caller account.Account, name string) error
	AddCollection(caller account.Account, name string, tags string, category string) (int, error)
	AddItem(caller account.Account, category string, collection int, name string, contentHash digest.Digest, value uint64, swappable bool) error
	RemoveItem(caller account.Account, category string, collection int, name string) error
	Categories() []string
	CollectionCount(category string) (int, error)
	Collection(category string, index int) (registry.Collection, error)
	Item(category string, collection int, name string) (registry.Item, error)
	Items(category string, collection int) ([]string, error)
	IsCollector(identity account.Account) bool
	Collector(identity account.Account) (string, error)
}

// Registry - type for the RPC
type Registry struct {
	Log              *logger.L
	Limiter          *rate.Limiter
	IsNormalMode     func(mode.Mode) bool
	IsTestingNetwork func() bool
	catalogue        Catalogue
	cache            *idempotent.Cache
}

// New - create the registry RPC area
func New(log *logger.L, catalogue Catalogue, cache *idempotent.Cache, isNormalMode func(mode.Mode) bool, isTestingNetwork func() bool) *Registry {
	return &Registry{
		Log:              log,
		Limiter:          rate.NewLimiter(rateLimitRegistry, rateBurstRegistry),
		IsNormalMode:     isNormalMode,
		IsTestingNetwork: isTestingNetwork,
		catalogue:        catalogue,
		cache:            cache,
	}
}

// check a mutating request can be executed
func (r *Registry) writable(caller account.Account) error {
	if !r.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringReplay
	}
	if caller.IsZero() {
		return fault.ErrRequiredCaller
	}
	if caller.IsTesting() != r.IsTestingNetwork() {
		return fault.ErrWrongNetworkForPublicKey
	}
	return nil
}

// Registry add category
// ---------------------

// AddCategoryArguments - arguments for RPC
type AddCategoryArguments struct {
	Caller    account.Account `json:"caller"`
	RequestID string          `json:"requestId"`
	Name      string          `json:"name"`
}

// AddCategoryReply - result of add category
type AddCategoryReply struct {
	Name string `json:"name"`
}

// AddCategory - owner only
func (r *Registry) AddCategory(arguments *AddCategoryArguments, reply *AddCategoryReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if err := r.writable(arguments.Caller); nil != err {
		return err
	}

	r.Log.Infof("AddCategory: %q by: %s", arguments.Name, arguments.Caller)

	result, err := r.cache.Do(arguments.Caller, arguments.RequestID, "Registry.AddCategory", arguments, func() (interface{}, error) {
		err := r.catalogue.AddCategory(arguments.Caller, arguments.Name)
		return AddCategoryReply{Name: arguments.Name}, err
	})
	if nil != err {
		return err
	}

	cached, ok := result.(AddCategoryReply)
	if !ok {
		return fault.ErrRequestIDReused
	}
	*reply = cached
	return nil
}

// Registry add collector
// ----------------------

// AddCollectorArguments - arguments for RPC
type AddCollectorArguments struct {
	Caller    account.Account `json:"caller"`
	RequestID string          `json:"requestId"`
	Name      string          `json:"name"`
}

// AddCollectorReply - result of registration
type AddCollectorReply struct {
	Identity account.Account `json:"identity"`
	Name     string          `json:"name"`
}

// AddCollector - register the caller as a collector
func (r *Registry) AddCollector(arguments *AddCollectorArguments, reply *AddCollectorReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if err := r.writable(arguments.Caller); nil != err {
		return err
	}

	r.Log.Infof("AddCollector: %q identity: %s", arguments.Name, arguments.Caller)

	result, err := r.cache.Do(arguments.Caller, arguments.RequestID, "Registry.AddCollector", arguments, func() (interface{}, error) {
		err := r.catalogue.AddCollector(arguments.Caller, arguments.Name)
		return AddCollectorReply{Identity: arguments.Caller, Name: arguments.Name}, err
	})
	if nil != err {
		return err
	}

	cached, ok := result.(AddCollectorReply)
	if !ok {
		return fault.ErrRequestIDReused
	}
	*reply = cached
	return nil
}

// Registry add collection
// -----------------------

// AddCollectionArguments - arguments for RPC
type AddCollectionArguments struct {
	Caller    account.Account `json:"caller"`
	RequestID string          `json:"requestId"`
	Category  string          `json:"category"`
	Name      string          `json:"name"`
	Tags      string          `json:"tags"`
}

// AddCollectionReply - index of the new collection
type AddCollectionReply struct {
	Category string `json:"category"`
	Index    int    `json:"index"`
}

// AddCollection - create a collection owned by the caller
func (r *Registry) AddCollection(arguments *AddCollectionArguments, reply *AddCollectionReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if err := r.writable(arguments.Caller); nil != err {
		return err
	}

	r.Log.Infof("AddCollection: %q category: %q by: %s", arguments.Name, arguments.Category, arguments.Caller)

	result, err := r.cache.Do(arguments.Caller, arguments.RequestID, "Registry.AddCollection", arguments, func() (interface{}, error) {
		index, err := r.catalogue.AddCollection(arguments.Caller, arguments.Name, arguments.Tags, arguments.Category)
		return AddCollectionReply{Category: arguments.Category, Index: index}, err
	})
	if nil != err {
		return err
	}

	cached, ok := result.(AddCollectionReply)
	if !ok {
		return fault.ErrRequestIDReused
	}
	*reply = cached
	return nil
}

// Registry add and remove item
// ----------------------------

// AddItemArguments - arguments for RPC
type AddItemArguments struct {
	Caller      account.Account `json:"caller"`
	RequestID   string          `json:"requestId"`
	Category    string          `json:"category"`
	Collection  int             `json:"collection"`
	Name        string          `json:"name"`
	ContentHash digest.Digest   `json:"contentHash"`
	Value       uint64          `json:"value,string"`
	Swappable   bool            `json:"swappable"`
}

// RemoveItemArguments - arguments for RPC
type RemoveItemArguments struct {
	Caller     account.Account `json:"caller"`
	RequestID  string          `json:"requestId"`
	Category   string          `json:"category"`
	Collection int             `json:"collection"`
	Name       string          `json:"name"`
}

// ItemChangeReply - the item that was added or removed
type ItemChangeReply struct {
	Category   string `json:"category"`
	Collection int    `json:"collection"`
	Name       string `json:"name"`
}

// AddItem - add an item to one of the caller's collections
func (r *Registry) AddItem(arguments *AddItemArguments, reply *ItemChangeReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if err := r.writable(arguments.Caller); nil != err {
		return err
	}

	r.Log.Infof("AddItem: %q category: %q collection: %d by: %s", arguments.Name, arguments.Category, arguments.Collection, arguments.Caller)

	result, err := r.cache.Do(arguments.Caller, arguments.RequestID, "Registry.AddItem", arguments, func() (interface{}, error) {
		err := r.catalogue.AddItem(
			arguments.Caller,
			arguments.Category,
			arguments.Collection,
			arguments.Name,
			arguments.ContentHash,
			arguments.Value,
			arguments.Swappable,
		)
		return ItemChangeReply{
			Category:   arguments.Category,
			Collection: arguments.Collection,
			Name:       arguments.Name,
		}, err
	})
	if nil != err {
		return err
	}

	cached, ok := result.(ItemChangeReply)
	if !ok {
		return fault.ErrRequestIDReused
	}
	*reply = cached
	return nil
}

// RemoveItem - remove an item from one of the caller's collections
func (r *Registry) RemoveItem(arguments *RemoveItemArguments, reply *ItemChangeReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if err := r.writable(arguments.Caller); nil != err {
		return err
	}

	r.Log.Infof("RemoveItem: %q category: %q collection: %d by: %s", arguments.Name, arguments.Category, arguments.Collection, arguments.Caller)

	result, err := r.cache.Do(arguments.Caller, arguments.RequestID, "Registry.RemoveItem", arguments, func() (interface{}, error) {
		err := r.catalogue.RemoveItem(arguments.Caller, arguments.Category, arguments.Collection, arguments.Name)
		return ItemChangeReply{
			Category:   arguments.Category,
			Collection: arguments.Collection,
			Name:       arguments.Name,
		}, err
	})
	if nil != err {
		return err
	}

	cached, ok := result.(ItemChangeReply)
	if !ok {
		return fault.ErrRequestIDReused
	}
	*reply = cached
	return nil
}

// Registry lists
// --------------

// CategoriesArguments - arguments for RPC
type CategoriesArguments struct {
	Start int `json:"start"`
	Count int `json:"count"`
}

// CategoriesReply - one page of category names
type CategoriesReply struct {
	Categories []string `json:"categories"`
	Next       int      `json:"next"`
}

// Categories - list category names in creation order
func (r *Registry) Categories(arguments *CategoriesArguments, reply *CategoriesReply) error {

	if err := ratelimit.LimitN(r.Limiter, arguments.Count, MaximumListCount); nil != err {
		return err
	}

	all := r.catalogue.Categories()
	from, to := page(arguments.Start, arguments.Count, len(all))

	reply.Categories = all[from:to]
	reply.Next = to
	return nil
}

// CollectionsArguments - arguments for RPC
type CollectionsArguments struct {
	Category string `json:"category"`
	Start    int    `json:"start"`
	Count    int    `json:"count"`
}

// CollectionRecord - a collection with its index
type CollectionRecord struct {
	Index int `json:"index"`
	registry.Collection
}

// CollectionsReply - one page of collections
type CollectionsReply struct {
	Collections []CollectionRecord `json:"collections"`
	Next        int                `json:"next"`
}

// Collections - list the collections of a category
func (r *Registry) Collections(arguments *CollectionsArguments, reply *CollectionsReply) error {

	if err := ratelimit.LimitN(r.Limiter, arguments.Count, MaximumListCount); nil != err {
		return err
	}

	n, err := r.catalogue.CollectionCount(arguments.Category)
	if nil != err {
		return err
	}

	from, to := page(arguments.Start, arguments.Count, n)

	records := make([]CollectionRecord, 0, to-from)
	for i := from; i < to; i += 1 {
		c, err := r.catalogue.Collection(arguments.Category, i)
		if nil != err {
			return err
		}
		records = append(records, CollectionRecord{Index: i, Collection: c})
	}

	reply.Collections = records
	reply.Next = to
	return nil
}

// Registry details
// ----------------

// CollectionArguments - arguments for RPC
type CollectionArguments struct {
	Category string `json:"category"`
	Index    int    `json:"index"`
}

// Collection - details of one collection
func (r *Registry) Collection(arguments *CollectionArguments, reply *CollectionRecord) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	c, err := r.catalogue.Collection(arguments.Category, arguments.Index)
	if nil != err {
		return err
	}

	reply.Index = arguments.Index
	reply.Collection = c
	return nil
}

// ItemArguments - arguments for RPC
type ItemArguments struct {
	Category   string `json:"category"`
	Collection int    `json:"collection"`
	Name       string `json:"name"`
}

// ItemReply - details of one item
type ItemReply struct {
	Item registry.Item `json:"item"`
}

// Item - details of one item
func (r *Registry) Item(arguments *ItemArguments, reply *ItemReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	item, err := r.catalogue.Item(arguments.Category, arguments.Collection, arguments.Name)
	if nil != err {
		return err
	}

	reply.Item = item
	return nil
}

// ItemsArguments - arguments for RPC
type ItemsArguments struct {
	Category   string `json:"category"`
	Collection int    `json:"collection"`
}

// ItemsReply - item names in insertion order
type ItemsReply struct {
	Names []string `json:"names"`
}

// Items - list the item names of a collection
func (r *Registry) Items(arguments *ItemsArguments, reply *ItemsReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	names, err := r.catalogue.Items(arguments.Category, arguments.Collection)
	if nil != err {
		return err
	}

	reply.Names = names
	return nil
}

// Registry collectors
// -------------------

// CollectorArguments - arguments for RPC
type CollectorArguments struct {
	Identity account.Account `json:"identity"`
}

// CollectorReply - registration of an identity
type CollectorReply struct {
	Identity   account.Account `json:"identity"`
	Registered bool            `json:"registered"`
	Name       string          `json:"name,omitempty"`
}

// Collector - name of a registered collector
func (r *Registry) Collector(arguments *CollectorArguments, reply *CollectorReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	name, err := r.catalogue.Collector(arguments.Identity)
	if nil != err {
		return err
	}

	reply.Identity = arguments.Identity
	reply.Registered = true
	reply.Name = name
	return nil
}

// IsCollector - check registration without failing
func (r *Registry) IsCollector(arguments *CollectorArguments, reply *CollectorReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	reply.Identity = arguments.Identity
	reply.Registered = r.catalogue.IsCollector(arguments.Identity)
	return nil
}

// clip a start/count pair to n elements
func page(start int, count int, n int) (int, int) {
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end := start + count
	if end > n {
		end = n
	}
	return start, end
}
