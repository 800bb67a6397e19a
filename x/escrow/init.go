package escrow

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/gconf"
	"github.com/iov-one/custody/x/cash"
)

var _ custody.Initializer = (*Initializer)(nil)

// Initializer fulfils the Initializer interface to load data from the genesis file
type Initializer struct {
	Minter cash.CoinMinter
}

// genesisEscrow is a record declared in the genesis file. Funds it holds are
// minted to the record address.
type genesisEscrow struct {
	Buyer         custody.Address      `json:"buyer"`
	Seller        custody.Address      `json:"seller"`
	Arbiter       custody.Address      `json:"arbiter"`
	Amount        uint64               `json:"amount"`
	CreatedAt     custody.UnixTime     `json:"created_at"`
	TimeoutPeriod custody.UnixDuration `json:"timeout_period"`
	Funded        bool                 `json:"funded"`
}

// FromGenesis stores the reserve configuration and any escrow records
// declared in the genesis file. The default configuration is used when
// the genesis does not declare one.
func (i *Initializer) FromGenesis(opts custody.Options, db custody.KVStore) error {
	conf := DefaultConfiguration()
	switch err := gconf.InitConfig(db, opts, BucketName, &conf); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		if err := gconf.Save(db, BucketName, &conf); err != nil {
			return errors.Wrap(err, "save default configuration")
		}
	default:
		return err
	}

	var escrows []genesisEscrow
	if err := opts.ReadOptions("escrow", &escrows); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot read escrows: %s", err)
	}
	if len(escrows) == 0 {
		return nil
	}
	if i.Minter == nil {
		return errors.Wrap(errors.ErrHuman, "minter required to load genesis escrows")
	}
	reserve, err := conf.MinimumReserve(RecordSize)
	if err != nil {
		return err
	}

	bucket := NewBucket()
	for j, g := range escrows {
		addr, bump, err := DeriveAddress(g.Buyer, g.Seller)
		if err != nil {
			return errors.Wrapf(err, "escrow %d", j)
		}
		if err := bucket.Has(db, addr); err == nil {
			return errors.Wrapf(errors.ErrDuplicate, "escrow %d", j)
		}
		e := Escrow{
			Buyer:         g.Buyer,
			Seller:        g.Seller,
			Arbiter:       effectiveArbiter(g.Buyer, g.Arbiter),
			Amount:        g.Amount,
			CreatedAt:     g.CreatedAt,
			TimeoutPeriod: g.TimeoutPeriod,
			State:         Created,
			Bump:          bump,
		}
		held := reserve
		if g.Funded {
			e.State = Funded
			if held+e.Amount < held {
				return errors.Wrapf(errors.ErrOverflow, "escrow %d", j)
			}
			held += e.Amount
		}
		if err := e.Validate(); err != nil {
			return errors.Wrapf(err, "escrow %d", j)
		}
		if err := bucket.Put(db, addr, &e); err != nil {
			return errors.Wrapf(err, "escrow %d", j)
		}
		if err := i.Minter.CoinMint(db, addr, held); err != nil {
			return errors.Wrapf(err, "escrow %d funds", j)
		}
	}
	return nil
}
