package server

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/x/cash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGenesis(t *testing.T) {
	dir, err := ioutil.TempDir("", "custody-genesis-")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, ioutil.WriteFile(p, []byte(content), 0600))
		return p
	}

	valid := write("valid.json", `{"app_state": {"cash": [{"address": "0011223344556677889900112233445566778899", "amount": 5}]}}`)
	badAddr := write("bad.json", `{"app_state": {"cash": [{"address": "0011", "amount": 5}]}}`)
	empty := write("empty.json", `{"chain_id": "x"}`)

	var ini custody.Initializer = cash.Initializer{}
	assert.NoError(t, ValidateGenesis(ini, []string{valid}))
	assert.Error(t, ValidateGenesis(ini, []string{valid, badAddr}))
	assert.True(t, errors.ErrEmpty.Is(ValidateGenesis(ini, []string{empty})))
	assert.True(t, errors.ErrInput.Is(ValidateGenesis(ini, []string{filepath.Join(dir, "missing.json")})))
}
