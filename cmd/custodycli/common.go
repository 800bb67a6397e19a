package main

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/custody/cmd/custodyd/app"
)

// writeTx serializes the transaction and prefixes it with its varint
// encoded length, the same way protocol buffer messages are streamed:
// https://developers.google.com/protocol-buffers/docs/techniques#streaming
func writeTx(w io.Writer, tx *app.Tx) (int, error) {
	raw, err := tx.Marshal()
	if err != nil {
		return 0, err
	}
	buf := proto.NewBuffer(nil)
	if err := buf.EncodeRawBytes(raw); err != nil {
		return 0, err
	}
	return w.Write(buf.Bytes())
}

// readTx decodes a single transaction written by writeTx.
func readTx(r io.Reader) (*app.Tx, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("no input data")
	}
	payload, err := proto.NewBuffer(raw).DecodeRawBytes(false)
	if err != nil {
		return nil, fmt.Errorf("cannot read transaction frame: %s", err)
	}
	var tx app.Tx
	if err := tx.Unmarshal(payload); err != nil {
		return nil, err
	}
	return &tx, nil
}
