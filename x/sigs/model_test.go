package sigs

import (
	"testing"

	"github.com/iov-one/custody/crypto"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserAccount(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()
	pub := crypto.GenPrivKeyEd25519().PublicKey()

	obj, err := bucket.Get(db, pub.Address())
	require.NoError(t, err)
	assert.Nil(t, obj)

	obj, err = bucket.GetOrCreate(db, pub)
	require.NoError(t, err)
	require.NoError(t, obj.Validate())
	user := AsUser(obj)
	assert.Equal(t, int64(0), user.Sequence)

	// GetOrCreate does not save.
	obj2, err := bucket.Get(db, pub.Address())
	require.NoError(t, err)
	assert.Nil(t, obj2)

	assert.True(t, ErrInvalidSequence.Is(user.CheckAndIncrementSequence(5)))
	require.NoError(t, user.CheckAndIncrementSequence(0))
	require.NoError(t, user.CheckAndIncrementSequence(1))
	require.NoError(t, bucket.Save(db, obj))

	obj2, err = bucket.GetOrCreate(db, pub)
	require.NoError(t, err)
	assert.Equal(t, int64(2), AsUser(obj2).Sequence)
	assert.Equal(t, pub, AsUser(obj2).Pubkey)
}

func TestUserSequenceOverflow(t *testing.T) {
	u := UserData{Sequence: (1 << 53) - 1}
	assert.True(t, errors.ErrOverflow.Is(u.CheckAndIncrementSequence(u.Sequence)))
}

func TestUserValidation(t *testing.T) {
	pub := crypto.GenPrivKeyEd25519().PublicKey()

	assert.Error(t, NewUser(nil).Validate())

	obj := NewUser(pub)
	require.NoError(t, obj.Validate())
	AsUser(obj).Sequence = -30
	assert.True(t, ErrInvalidSequence.Is(obj.Validate()))
}
