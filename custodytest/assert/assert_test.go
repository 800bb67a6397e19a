package assert

import (
	"testing"

	"github.com/iov-one/custody/errors"
)

func TestAssertions(t *testing.T) {
	var typedNil *errors.Error

	cases := map[string]struct {
		run      func(Tester)
		wantFail bool
	}{
		"nil":                  {run: func(m Tester) { Nil(m, nil) }},
		"typed nil":            {run: func(m Tester) { Nil(m, typedNil) }},
		"nil slice":            {run: func(m Tester) { Nil(m, []byte(nil)) }},
		"non nil error":        {run: func(m Tester) { Nil(m, errors.ErrState) }, wantFail: true},
		"non nil integer":      {run: func(m Tester) { Nil(m, 0) }, wantFail: true},
		"equal bytes":          {run: func(m Tester) { Equal(m, []byte("a"), []byte("a")) }},
		"equal different type": {run: func(m Tester) { Equal(m, int64(1), 1) }, wantFail: true},
		"panics":               {run: func(m Tester) { Panics(m, func() { panic("boom") }) }},
		"does not panic":       {run: func(m Tester) { Panics(m, func() {}) }, wantFail: true},
		"same error":           {run: func(m Tester) { IsErr(m, errors.ErrEmpty, errors.ErrEmpty) }},
		"both nil":             {run: func(m Tester) { IsErr(m, nil, nil) }},
		"compared to nil":      {run: func(m Tester) { IsErr(m, nil, errors.ErrEmpty) }, wantFail: true},
		"wrapped error": {
			run: func(m Tester) { IsErr(m, errors.ErrEmpty, errors.Wrap(errors.ErrEmpty, "buyer")) },
		},
		"different kind": {
			run:      func(m Tester) { IsErr(m, errors.ErrEmpty, errors.ErrState) },
			wantFail: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			m := &failCounter{TB: t}
			tc.run(m)
			if failed := m.fails > 0; failed != tc.wantFail {
				t.Fatalf("want fail %v, got %d failures", tc.wantFail, m.fails)
			}
		})
	}
}

// failCounter counts failures instead of stopping the test.
type failCounter struct {
	testing.TB
	fails int
}

func (f *failCounter) Fatal(args ...interface{}) {
	f.TB.Log(args...)
	f.fails++
}

func (f *failCounter) Fatalf(s string, args ...interface{}) {
	f.TB.Logf(s, args...)
	f.fails++
}
