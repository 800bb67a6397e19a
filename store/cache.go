package store

import (
	"bytes"

	"github.com/google/btree"
)

// treeDegree is the btree branching factor. Caches hold one block worth
// of writes at most, so a small degree is enough.
const treeDegree = 2

// MemStore returns a store that lives only in memory. Every test and the
// genesis validation run on top of it.
func MemStore() CacheableKVStore {
	var null nullStore
	return NewBTreeCache(null, NewMemBatch(null), nil)
}

// entry is a cached key. A deleted entry hides the key from the parent.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

func (e entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(entry).key) < 0
}

// BTreeCache keeps uncommitted writes in a btree in front of a read only
// parent. All writes are also queued in a batch, so Write replays them on
// the parent in the order they happened.
type BTreeCache struct {
	tree    *btree.BTree
	free    *btree.FreeList
	parent  ReadOnlyKVStore
	pending Batch
}

var _ KVCacheWrap = BTreeCache{}

// NewBTreeCache returns an empty cache over parent. Writes reach parent
// only through pending. Nested caches may share free to reuse btree nodes,
// pass nil to allocate a new list.
func NewBTreeCache(parent ReadOnlyKVStore, pending Batch, free *btree.FreeList) BTreeCache {
	if free == nil {
		free = btree.NewFreeList(btree.DefaultFreeListSize)
	}
	return BTreeCache{
		tree:    btree.NewWithFreeList(treeDegree, free),
		free:    free,
		parent:  parent,
		pending: pending,
	}
}

// CacheWrap stacks another cache on top of this one. Writing it makes its
// changes visible here, not in the parent.
func (c BTreeCache) CacheWrap() KVCacheWrap {
	return NewBTreeCache(c, c.NewBatch(), c.free)
}

func (c BTreeCache) NewBatch() Batch {
	return NewMemBatch(c)
}

// Write applies all cached changes to the parent and empties the cache.
func (c BTreeCache) Write() error {
	err := c.pending.Write()
	c.Discard()
	return err
}

// Discard drops all cached changes. The pending batch is left alone and
// must not be written afterwards.
func (c BTreeCache) Discard() {
	c.tree.Clear(true)
}

func (c BTreeCache) Set(key, value []byte) error {
	c.tree.ReplaceOrInsert(entry{key: key, value: value})
	return c.pending.Set(key, value)
}

func (c BTreeCache) Delete(key []byte) error {
	c.tree.ReplaceOrInsert(entry{key: key, deleted: true})
	return c.pending.Delete(key)
}

func (c BTreeCache) Get(key []byte) ([]byte, error) {
	if e, ok := c.lookup(key); ok {
		if e.deleted {
			return nil, nil
		}
		return e.value, nil
	}
	return c.parent.Get(key)
}

func (c BTreeCache) Has(key []byte) (bool, error) {
	if e, ok := c.lookup(key); ok {
		return !e.deleted, nil
	}
	return c.parent.Has(key)
}

func (c BTreeCache) lookup(key []byte) (entry, bool) {
	item := c.tree.Get(entry{key: key})
	if item == nil {
		return entry{}, false
	}
	return item.(entry), true
}
