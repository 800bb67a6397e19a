package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iov-one/custody/custodytest/assert"
)

func TestKeygenAndKeyaddr(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "key")

	generated := runCmd(t, cmdKeygen, nil, "-key", keyPath)
	printed := runCmd(t, cmdKeyaddr, nil, "-key", keyPath)
	assert.Equal(t, string(generated), string(printed))

	key, err := decodePrivateKey(keyPath)
	if err != nil {
		t.Fatalf("cannot decode key: %s", err)
	}
	assert.Equal(t, key.PublicKey().Address().String(), strings.TrimSpace(string(printed)))

	// An existing key must never be overwritten.
	var out bytes.Buffer
	if err := cmdKeygen(nil, &out, []string{"-key", keyPath}); err == nil {
		t.Fatal("want error when key file exists")
	}
}

func TestDecodePrivateKey(t *testing.T) {
	dir := t.TempDir()
	path, key := writeKey(t, dir, "key")

	got, err := decodePrivateKey(path)
	if err != nil {
		t.Fatalf("cannot decode key: %s", err)
	}
	assert.Equal(t, key.PublicKey().Address(), got.PublicKey().Address())

	if _, err := decodePrivateKey(filepath.Join(dir, "missing")); err == nil {
		t.Fatal("want error for a missing file")
	}

	short := filepath.Join(dir, "short")
	if err := os.WriteFile(short, key.Ed25519[:32], 0600); err != nil {
		t.Fatalf("cannot write key: %s", err)
	}
	if _, err := decodePrivateKey(short); err == nil {
		t.Fatal("want error for a seed only key")
	}
}
