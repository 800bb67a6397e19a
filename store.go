package custody

// Records are always addressed by their full key. None of the stores
// below can be iterated.

// ReadOnlyKVStore is the read side of every store. Both methods panic on
// a nil key.
type ReadOnlyKVStore interface {
	// Get returns nil when key is not set.
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
}

// SetDeleter is the write side shared by stores and batches. Both methods
// panic on a nil key.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is what handlers read and write.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter

	// NewBatch returns a batch whose operations are applied together on
	// Write.
	NewBatch() Batch
}

// Batch collects writes until Write applies them.
type Batch interface {
	SetDeleter
	Write() error
}

// CacheableKVStore can open a cache layer above itself.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap holds uncommitted writes above a parent store. Reads see the
// cached writes first. Write pushes them to the parent and Discard drops
// them. The layer can itself be wrapped, which gives nested savepoints.
type KVCacheWrap interface {
	CacheableKVStore
	Write() error
	Discard()
}

// CommitKVStore is the persistent root store. Every Commit creates a new
// version.
type CommitKVStore interface {
	// Get reads the last committed version.
	Get(key []byte) ([]byte, error)

	// CacheWrap returns a cache layer for changes of the next version.
	CacheWrap() KVCacheWrap

	Commit() (CommitID, error)

	// LoadLatestVersion opens the newest complete version. A commit
	// interrupted by a crash is ignored.
	LoadLatestVersion() error

	LatestVersion() (CommitID, error)
}

// CommitID identifies a committed version by number and merkle root.
type CommitID struct {
	Version int64
	Hash    []byte
}
