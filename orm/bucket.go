package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

var validBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket stores records of the proto type under the "<name>:" prefix.
// Embed it in a type safe wrapper rather than using it directly.
type Bucket struct {
	name   string
	prefix []byte
	proto  Cloneable
}

var (
	_ Reader               = Bucket{}
	_ custody.QueryHandler = Bucket{}
)

// NewBucket panics on a name that is not 3 to 10 lowercase letters or
// underscores.
func NewBucket(name string, proto Cloneable) Bucket {
	if !validBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return Bucket{
		name:   name,
		prefix: []byte(name + ":"),
		proto:  proto,
	}
}

func (b Bucket) Name() string {
	return b.name
}

// DBKey returns the prefixed key. The result never shares memory with
// key or with the prefix.
func (b Bucket) DBKey(key []byte) []byte {
	full := make([]byte, 0, len(b.prefix)+len(key))
	full = append(full, b.prefix...)
	return append(full, key...)
}

// Get returns nil when nothing is stored under key.
func (b Bucket) Get(db custody.ReadOnlyKVStore, key []byte) (Object, error) {
	raw, err := db.Get(b.DBKey(key))
	switch {
	case err != nil:
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	case raw == nil:
		return nil, nil
	}
	return b.Parse(key, raw)
}

func (b Bucket) Has(db custody.ReadOnlyKVStore, key []byte) (bool, error) {
	ok, err := db.Has(b.DBKey(key))
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return ok, nil
}

// Parse decodes a stored value into a fresh clone of the proto. A value
// that does not decode is reported as ErrState.
func (b Bucket) Parse(key, value []byte) (Object, error) {
	obj := b.proto.Clone()
	if err := obj.Value().Unmarshal(value); err != nil {
		return nil, errors.Wrapf(errors.ErrState, "unmarshal %s: %s", b.name, err)
	}
	obj.SetKey(key)
	return obj, nil
}

// Save validates obj and writes it under its key.
func (b Bucket) Save(db custody.KVStore, obj Object) error {
	if err := obj.Validate(); err != nil {
		return err
	}
	raw, err := obj.Value().Marshal()
	if err != nil {
		return err
	}
	if err := db.Set(b.DBKey(obj.Key()), raw); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Delete is a no-op for a missing key.
func (b Bucket) Delete(db custody.KVStore, key []byte) error {
	if err := db.Delete(b.DBKey(key)); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Register exposes the bucket as "/<path>". An empty path uses the bucket
// name.
func (b Bucket) Register(path string, r custody.QueryRouter) {
	if path == "" {
		path = b.name
	}
	r.Register("/"+path, b)
}

// Query returns the raw record stored under data, or nil.
func (b Bucket) Query(db custody.ReadOnlyKVStore, data []byte) ([]byte, error) {
	raw, err := db.Get(b.DBKey(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return raw, nil
}
