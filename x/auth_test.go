package x

import (
	"context"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
)

func TestMainSigner(t *testing.T) {
	buyer := custodytest.NewCondition()
	seller := custodytest.NewCondition()
	ctxAuth := &custodytest.CtxAuth{Key: "sigs"}

	cases := map[string]struct {
		ctx      custody.Context
		auth     Authenticator
		wantMain custody.Condition
	}{
		"no signature": {
			ctx:  context.Background(),
			auth: &custodytest.Auth{},
		},
		"single signer": {
			ctx:      context.Background(),
			auth:     &custodytest.Auth{Signers: []custody.Condition{seller}},
			wantMain: seller,
		},
		"first signer is the main one": {
			ctx:      ctxAuth.SetConditions(context.Background(), buyer, seller),
			auth:     ctxAuth,
			wantMain: buyer,
		},
		"conditions under another key are invisible": {
			ctx:  ctxAuth.SetConditions(context.Background(), buyer),
			auth: &custodytest.CtxAuth{Key: "other"},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantMain, MainSigner(tc.ctx, tc.auth))
			assert.Equal(t, tc.wantMain.Address(), MainSignerAddress(tc.ctx, tc.auth))
		})
	}
}
