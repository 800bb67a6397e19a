package escrow

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/gconf"
	"github.com/iov-one/custody/store"
	"github.com/iov-one/custody/x/cash"
)

func TestGenesisConfiguration(t *testing.T) {
	cases := map[string]struct {
		opts     string
		wantErr  *errors.Error
		wantConf Configuration
	}{
		"no configuration": {
			opts:     `{}`,
			wantConf: DefaultConfiguration(),
		},
		"custom configuration": {
			opts:     `{"conf": {"escrow": {"reserve_per_byte": 2, "storage_overhead": 10}}}`,
			wantConf: Configuration{ReservePerByte: 2, StorageOverhead: 10},
		},
		"partial configuration": {
			opts:     `{"conf": {"escrow": {"reserve_per_byte": 1}}}`,
			wantConf: Configuration{ReservePerByte: 1, StorageOverhead: DefaultStorageOverhead},
		},
		"malformed configuration": {
			opts:    `{"conf": {"escrow": {"reserve_per_byte": "many"}}}`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts custody.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.opts), &opts))

			db := store.MemStore()
			initer := Initializer{Minter: cash.NewController(cash.NewBucket())}
			err := initer.FromGenesis(opts, db)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}
			var conf Configuration
			assert.Nil(t, gconf.Load(db, BucketName, &conf))
			assert.Equal(t, tc.wantConf, conf)
		})
	}
}

func TestGenesisEscrows(t *testing.T) {
	buyer := custodytest.NewCondition().Address()
	seller := custodytest.NewCondition().Address()
	other := custodytest.NewCondition().Address()

	genesis := map[string]interface{}{
		"conf": map[string]interface{}{
			"escrow": Configuration{ReservePerByte: 1, StorageOverhead: 13},
		},
		"escrow": []interface{}{
			map[string]interface{}{
				"buyer":          buyer,
				"seller":         seller,
				"amount":         500,
				"created_at":     1000,
				"timeout_period": 60,
				"funded":         true,
			},
			map[string]interface{}{
				"buyer":          buyer,
				"seller":         other,
				"amount":         7,
				"created_at":     1000,
				"timeout_period": 60,
			},
		},
	}
	raw, err := json.Marshal(genesis)
	assert.Nil(t, err)
	var opts custody.Options
	assert.Nil(t, json.Unmarshal(raw, &opts))

	db := store.MemStore()
	cashctrl := cash.NewController(cash.NewBucket())
	initer := Initializer{Minter: cashctrl}
	assert.Nil(t, initer.FromGenesis(opts, db))

	ctrl := NewController(cashctrl, NewBucket())
	reserve := uint64(13 + RecordSize)

	funded, _, err := DeriveAddress(buyer, seller)
	assert.Nil(t, err)
	e, err := ctrl.State(db, funded)
	assert.Nil(t, err)
	assert.Equal(t, Funded, e.State)
	held, err := ctrl.Held(db, funded)
	assert.Nil(t, err)
	assert.Equal(t, reserve+500, held)

	created, _, err := DeriveAddress(buyer, other)
	assert.Nil(t, err)
	e, err = ctrl.State(db, created)
	assert.Nil(t, err)
	assert.Equal(t, Created, e.State)
	held, err = ctrl.Held(db, created)
	assert.Nil(t, err)
	assert.Equal(t, reserve, held)
}

func TestGenesisEscrowErrors(t *testing.T) {
	buyer := custodytest.NewCondition().Address()
	seller := custodytest.NewCondition().Address()

	entry := func(amount uint64) map[string]interface{} {
		return map[string]interface{}{
			"buyer":          buyer,
			"seller":         seller,
			"amount":         amount,
			"timeout_period": 60,
		}
	}

	cases := map[string]struct {
		escrows []interface{}
		minter  cash.CoinMinter
		wantErr *errors.Error
	}{
		"duplicate": {
			escrows: []interface{}{entry(1), entry(2)},
			minter:  cash.NewController(cash.NewBucket()),
			wantErr: errors.ErrDuplicate,
		},
		"zero amount": {
			escrows: []interface{}{entry(0)},
			minter:  cash.NewController(cash.NewBucket()),
			wantErr: errors.ErrAmount,
		},
		"zero timeout": {
			escrows: []interface{}{map[string]interface{}{
				"buyer":  buyer,
				"seller": seller,
				"amount": 1,
			}},
			minter:  cash.NewController(cash.NewBucket()),
			wantErr: ErrInvalidTimeout,
		},
		"no minter": {
			escrows: []interface{}{entry(1)},
			wantErr: errors.ErrHuman,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			raw, err := json.Marshal(map[string]interface{}{"escrow": tc.escrows})
			assert.Nil(t, err)
			var opts custody.Options
			assert.Nil(t, json.Unmarshal(raw, &opts))

			initer := Initializer{Minter: tc.minter}
			assert.IsErr(t, tc.wantErr, initer.FromGenesis(opts, store.MemStore()))
		})
	}
}

func TestGenesisArbiterEqualToBuyerIsDropped(t *testing.T) {
	buyer := custodytest.NewCondition().Address()
	seller := custodytest.NewCondition().Address()

	raw, err := json.Marshal(map[string]interface{}{
		"escrow": []interface{}{
			map[string]interface{}{
				"buyer":          buyer,
				"seller":         seller,
				"arbiter":        buyer,
				"amount":         10,
				"timeout_period": 60,
			},
		},
	})
	assert.Nil(t, err)
	var opts custody.Options
	assert.Nil(t, json.Unmarshal(raw, &opts))

	db := store.MemStore()
	cashctrl := cash.NewController(cash.NewBucket())
	initer := Initializer{Minter: cashctrl}
	assert.Nil(t, initer.FromGenesis(opts, db))

	addr, _, err := DeriveAddress(buyer, seller)
	assert.Nil(t, err)
	e, err := NewController(cashctrl, NewBucket()).State(db, addr)
	assert.Nil(t, err)
	if e.Arbiter != nil {
		t.Fatalf("want no arbiter, got %s", e.Arbiter)
	}
}
