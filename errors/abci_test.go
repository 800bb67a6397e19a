package errors

import (
	stdlib "errors"
	"strings"
	"testing"
)

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"success": {
			err:      nil,
			wantCode: SuccessABCICode,
		},
		"registered error": {
			err:      ErrNotFound,
			wantCode: ErrNotFound.code,
			wantLog:  "not found",
		},
		"wrapped registered error": {
			err:      Wrap(Wrap(ErrUnauthorized, "not the buyer"), "release"),
			wantCode: ErrUnauthorized.code,
			wantLog:  "release: not the buyer: unauthorized",
		},
		"stdlib error is hidden": {
			err:      stdlib.New("disk on fire"),
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
		"stdlib error in debug mode": {
			err:      stdlib.New("disk on fire"),
			debug:    true,
			wantCode: internalABCICode,
			wantLog:  "disk on fire",
		},
		"panic details are hidden": {
			err:      Wrap(ErrPanic, "runtime error: index out of range"),
			wantCode: ErrPanic.code,
			wantLog:  "panic",
		},
		"custom coder": {
			err:      Wrap(customErr{}, "wrapped"),
			wantCode: 999,
			wantLog:  "wrapped: custom",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if !strings.HasPrefix(log, tc.wantLog) {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestABCIInfoDebugStack(t *testing.T) {
	_, log := ABCIInfo(Wrap(ErrState, "escrow released"), true)
	if !strings.Contains(log, "abci_test.go") {
		t.Fatalf("stack trace missing: %s", log)
	}
}

func TestFromABCICode(t *testing.T) {
	if got := FromABCICode(ErrState.ABCICode()); got != ErrState {
		t.Fatalf("want state error, got %v", got)
	}
	if got := FromABCICode(internalABCICode); got != nil {
		t.Fatalf("internal code must not map to an error, got %v", got)
	}
	if got := FromABCICode(987654); got != nil {
		t.Fatalf("want nil, got %v", got)
	}
}

type customErr struct{}

func (customErr) ABCICode() uint32 { return 999 }

func (customErr) Error() string { return "custom" }
