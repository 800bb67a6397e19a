package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleObj(t *testing.T) {
	key := []byte("foo")
	val := NewCounter(7)

	obj := NewSimpleObj(key, val)
	require.Equal(t, key, obj.Key())
	require.EqualValues(t, val, obj.Value())
	require.NoError(t, obj.Validate())

	o2 := obj.Clone()
	require.Equal(t, key, o2.Key())
	require.NoError(t, o2.Validate())

	// clone holds a fresh value that can be loaded into
	raw, err := val.Marshal()
	require.NoError(t, err)
	require.NoError(t, o2.Value().Unmarshal(raw))
	assert.EqualValues(t, val, o2.Value())

	// now modify original, should not affect clone
	val.Count = -1
	assert.Error(t, obj.Validate())
	assert.NoError(t, o2.Validate())

	// empty-ness is no good
	nokey := NewSimpleObj([]byte{}, NewCounter(1))
	assert.Error(t, nokey.Validate())
	nokey.SetKey([]byte{1, 3})
	assert.NoError(t, nokey.Validate())
}
