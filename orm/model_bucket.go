package orm

import (
	"reflect"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// Model is a record stored by a ModelBucket. It has the method set of
// CloneableData.
type Model interface {
	custody.Persistent
	Validate() error
	Copy() CloneableData
}

// ModelBucket reads and writes models by primary key.
type ModelBucket interface {
	// One loads the model stored under key into dest. It fails with
	// ErrNotFound for a missing key and with ErrType when dest is not of
	// the stored type.
	One(db custody.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns ErrNotFound for a missing key.
	Has(db custody.ReadOnlyKVStore, key []byte) error

	// Put validates m and writes it under key.
	Put(db custody.KVStore, key []byte, m Model) error

	// Delete returns ErrNotFound for a missing key.
	Delete(db custody.KVStore, key []byte) error

	Register(path string, r custody.QueryRouter)
}

// NewModelBucket returns a bucket storing models of the type of m.
func NewModelBucket(name string, m Model) ModelBucket {
	return modelBucket{b: NewBucket(name, NewSimpleObj(nil, m))}
}

type modelBucket struct {
	b Bucket
}

var _ ModelBucket = modelBucket{}

func (mb modelBucket) One(db custody.ReadOnlyKVStore, key []byte, dest Model) error {
	obj, err := mb.b.Get(db, key)
	if err != nil {
		return err
	}
	if obj == nil || obj.Value() == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	src := reflect.ValueOf(obj.Value())
	dst := reflect.ValueOf(dest)
	if !src.Type().AssignableTo(dst.Type()) {
		return errors.Wrapf(errors.ErrType, "%T cannot be represented as %T", obj.Value(), dest)
	}
	dst.Elem().Set(src.Elem())
	return nil
}

func (mb modelBucket) Has(db custody.ReadOnlyKVStore, key []byte) error {
	switch ok, err := mb.b.Has(db, key); {
	case err != nil:
		return err
	case !ok:
		return errors.Wrapf(errors.ErrNotFound, "key %q in %s", key, mb.b.Name())
	}
	return nil
}

func (mb modelBucket) Put(db custody.KVStore, key []byte, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	if err := mb.b.Save(db, NewSimpleObj(key, m)); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb modelBucket) Delete(db custody.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	return mb.b.Delete(db, key)
}

func (mb modelBucket) Register(path string, r custody.QueryRouter) {
	mb.b.Register(path, r)
}
