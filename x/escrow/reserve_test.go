package escrow

import (
	"math"
	"testing"

	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/gconf"
	"github.com/iov-one/custody/store"
)

func TestMinimumReserve(t *testing.T) {
	cases := map[string]struct {
		conf    Configuration
		size    uint64
		want    uint64
		wantErr *errors.Error
	}{
		"default record": {
			conf: DefaultConfiguration(),
			size: RecordSize,
			want: (128 + 87) * 6960,
		},
		"empty account": {
			conf: DefaultConfiguration(),
			size: 0,
			want: 128 * 6960,
		},
		"free storage": {
			conf: Configuration{StorageOverhead: 128},
			size: RecordSize,
			want: 0,
		},
		"size overflow": {
			conf:    Configuration{ReservePerByte: 1, StorageOverhead: 2},
			size:    math.MaxUint64 - 1,
			wantErr: errors.ErrOverflow,
		},
		"largest reserve": {
			conf: Configuration{ReservePerByte: math.MaxUint64 / 215, StorageOverhead: 128},
			size: RecordSize,
			want: 215 * (math.MaxUint64 / 215),
		},
		"multiplication overflow": {
			conf:    Configuration{ReservePerByte: math.MaxUint64 / 10, StorageOverhead: 128},
			size:    RecordSize,
			wantErr: errors.ErrOverflow,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.conf.MinimumReserve(tc.size)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestTransferable(t *testing.T) {
	assert.Equal(t, uint64(0), transferable(10, 20))
	assert.Equal(t, uint64(0), transferable(20, 20))
	assert.Equal(t, uint64(5), transferable(25, 20))
	assert.Equal(t, uint64(25), transferable(25, 0))
}

func TestLoadConfiguration(t *testing.T) {
	db := store.MemStore()

	conf, err := loadConf(db)
	assert.Nil(t, err)
	assert.Equal(t, DefaultConfiguration(), conf)

	stored := Configuration{ReservePerByte: 2, StorageOverhead: 3}
	assert.Nil(t, gconf.Save(db, BucketName, &stored))

	conf, err = loadConf(db)
	assert.Nil(t, err)
	assert.Equal(t, stored, conf)

	reserve, err := recordReserve(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64((3+RecordSize)*2), reserve)

	invalid := Configuration{ReservePerByte: math.MaxUint64}
	assert.IsErr(t, errors.ErrOverflow, gconf.Save(db, BucketName, &invalid))
}
