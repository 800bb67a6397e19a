/*
Package orm stores typed records in prefixed sections of a KVStore.

A Bucket owns every key starting with its name and holds one record type.
Records are read and written by primary key and the bucket can answer ABCI
queries for them. ModelBucket offers the same storage with a typed API
that loads straight into a destination model.
*/
package orm

import (
	"github.com/iov-one/custody"
)

// Validater reports whether a value may be written.
type Validater interface {
	Validate() error
}

// CloneableData is a record value. Copy returns a deep copy.
type CloneableData interface {
	custody.Persistent
	Validater
	Copy() CloneableData
}

// Keyed records know the primary key they are stored under.
type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable returns a new instance to decode a stored record into.
type Cloneable interface {
	Clone() Object
}

// Object is a record together with its key, as kept by a Bucket.
type Object interface {
	Keyed
	Cloneable
	Validater
	Value() custody.Persistent
}

// Reader loads an Object by key.
type Reader interface {
	Get(db custody.ReadOnlyKVStore, key []byte) (Object, error)
}
