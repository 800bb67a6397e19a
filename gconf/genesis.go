package gconf

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// InitConfig saves the genesis configuration of pkg, found in the
// app_state under "conf" then pkg. A missing configuration is ErrNotFound.
//
//	{"conf": {"escrow": {"reserve_per_byte": 6960, "storage_overhead": 128}}}
func InitConfig(db Store, opts custody.Options, pkg string, conf Configuration) error {
	var all custody.Options
	if err := opts.ReadOptions("conf", &all); err != nil {
		return errors.Wrap(errors.ErrInput, "read conf: "+err.Error())
	}
	if _, ok := all[pkg]; !ok {
		return errors.Wrapf(errors.ErrNotFound, "no configuration in genesis for %q package", pkg)
	}
	if err := all.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(errors.ErrInput, "read configuration for %s: %s", pkg, err)
	}
	if err := Save(db, pkg, conf); err != nil {
		return errors.Wrapf(err, "save configuration for %s", pkg)
	}
	return nil
}
