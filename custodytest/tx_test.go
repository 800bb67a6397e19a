package custodytest

import (
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

func TestTxMsg(t *testing.T) {
	msg := &Msg{RoutePath: "test/path"}
	tx := &Tx{Msg: msg}

	if got := custody.GetPath(tx); got != "test/path" {
		t.Fatalf("unexpected path: %q", got)
	}

	var loaded Msg
	if err := custody.LoadMsg(tx, &loaded); err != nil {
		t.Fatalf("cannot load message: %s", err)
	}
	if loaded.RoutePath != "test/path" {
		t.Fatalf("unexpected message loaded: %+v", loaded)
	}

	broken := &Tx{Err: errors.ErrHuman}
	if got := custody.GetPath(broken); got != "(missing)" {
		t.Fatalf("unexpected path of a broken transaction: %q", got)
	}
	if err := custody.LoadMsg(&Tx{Msg: &Msg{Err: errors.ErrInput}}, &loaded); !errors.ErrInput.Is(err) {
		t.Fatalf("want invalid message error, got %+v", err)
	}
}

func TestTxIsNotSerializable(t *testing.T) {
	tx := &Tx{Msg: &Msg{RoutePath: "escrow/create"}}
	if _, err := tx.Marshal(); !errors.ErrHuman.Is(err) {
		t.Fatalf("want coding error, got %v", err)
	}
	if err := tx.Unmarshal([]byte("escrow")); !errors.ErrHuman.Is(err) {
		t.Fatalf("want coding error, got %v", err)
	}
}
