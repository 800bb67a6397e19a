package escrow

import (
	"math"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/gconf"
)

const (
	// DefaultStorageOverhead is the per record overhead, in bytes, that is
	// added to the record size when computing the reserve.
	DefaultStorageOverhead = 128
	// DefaultReservePerByte is the price of a stored byte.
	DefaultReservePerByte = 6960
)

// Configuration holds the storage reserve parameters.
type Configuration struct {
	ReservePerByte  uint64 `json:"reserve_per_byte"`
	StorageOverhead uint64 `json:"storage_overhead"`
}

var _ gconf.Configuration = (*Configuration)(nil)

// DefaultConfiguration is used when the genesis did not declare one.
func DefaultConfiguration() Configuration {
	return Configuration{
		ReservePerByte:  DefaultReservePerByte,
		StorageOverhead: DefaultStorageOverhead,
	}
}

func (c *Configuration) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, c)
}

// Validate ensures the reserve of a record can be computed.
func (c *Configuration) Validate() error {
	if _, err := c.MinimumReserve(RecordSize); err != nil {
		return errors.Wrap(err, "reserve configuration")
	}
	return nil
}

// MinimumReserve returns the amount that must stay with a record of given
// size.
func (c Configuration) MinimumReserve(size uint64) (uint64, error) {
	if size > math.MaxUint64-c.StorageOverhead {
		return 0, errors.Wrap(errors.ErrOverflow, "storage size")
	}
	total := c.StorageOverhead + size
	if c.ReservePerByte != 0 && total > math.MaxUint64/c.ReservePerByte {
		return 0, errors.Wrap(errors.ErrOverflow, "reserve")
	}
	return total * c.ReservePerByte, nil
}

// loadConf returns the stored configuration or the default one if none was
// stored.
func loadConf(db custody.ReadOnlyKVStore) (Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, BucketName, &conf); {
	case err == nil:
		return conf, nil
	case errors.ErrNotFound.Is(err):
		return DefaultConfiguration(), nil
	default:
		return Configuration{}, err
	}
}

// recordReserve returns the reserve every record must hold.
func recordReserve(db custody.ReadOnlyKVStore) (uint64, error) {
	conf, err := loadConf(db)
	if err != nil {
		return 0, err
	}
	return conf.MinimumReserve(RecordSize)
}

// transferable returns the part of the balance above the reserve.
func transferable(balance, reserve uint64) uint64 {
	if balance < reserve {
		return 0
	}
	return balance - reserve
}
