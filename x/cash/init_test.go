package cash

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
)

func TestInitState(t *testing.T) {
	addr := []byte("12345678901234567890")
	accts := []GenesisAccount{{Address: addr, Amount: 500}}
	bz, err := json.Marshal(accts)
	assert.Nil(t, err)

	addr2 := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28, 0x29, 0x30}
	bz2 := []byte(`[{"address":"0102030405060708090021222324252627282930", "amount": 50}]`)

	cases := map[string]struct {
		opts    custody.Options
		wantErr *errors.Error
		acct    []byte
		amount  uint64
	}{
		"no data": {
			opts: custody.Options{},
		},
		"unrelated data": {
			opts: custody.Options{"foo": []byte(`"bar"`)},
		},
		"bad format": {
			opts:    custody.Options{"cash": []byte(`[{"amount": "many"}]`)},
			wantErr: errors.ErrInput,
		},
		"missing address": {
			opts:    custody.Options{"cash": []byte(`[{"amount": 123}]`)},
			wantErr: errors.ErrEmpty,
		},
		"encoded account": {
			opts:   custody.Options{"cash": bz},
			acct:   addr,
			amount: 500,
		},
		"hardcoded account": {
			opts:   custody.Options{"cash": bz2},
			acct:   addr2,
			amount: 50,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			kv := store.MemStore()
			err := Initializer{}.FromGenesis(tc.opts, kv)
			assert.IsErr(t, tc.wantErr, err)
			if tc.acct == nil {
				return
			}
			got, err := NewController(NewBucket()).Balance(kv, tc.acct)
			assert.Nil(t, err)
			assert.Equal(t, tc.amount, got)
		})
	}
}
