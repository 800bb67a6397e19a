package orm

import (
	"github.com/iov-one/custody/errors"
	amino "github.com/tendermint/go-amino"
)

var testCodec = amino.NewCodec()

// Counter is a simple model used in tests.
type Counter struct {
	Count int64
}

func NewCounter(count int64) *Counter {
	return &Counter{Count: count}
}

func (c *Counter) Marshal() ([]byte, error) {
	return testCodec.MarshalBinaryBare(c)
}

func (c *Counter) Unmarshal(raw []byte) error {
	return testCodec.UnmarshalBinaryBare(raw, c)
}

func (c *Counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative count")
	}
	return nil
}

func (c *Counter) Copy() CloneableData {
	return &Counter{Count: c.Count}
}

// Label is another model, used to test bucket collisions.
type Label struct {
	Text string
}

func (l *Label) Marshal() ([]byte, error) {
	return testCodec.MarshalBinaryBare(l)
}

func (l *Label) Unmarshal(raw []byte) error {
	return testCodec.UnmarshalBinaryBare(raw, l)
}

func (l *Label) Validate() error {
	if l.Text == "" {
		return errors.Wrap(errors.ErrEmpty, "text")
	}
	return nil
}

func (l *Label) Copy() CloneableData {
	return &Label{Text: l.Text}
}
