package custody_test

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twenty is a valid address, hex encoded below.
var twenty = custody.Address("addr-of-twenty-bytes")

const twentyHex = "616464722d6f662d7477656e74792d6279746573"

func TestAddress(t *testing.T) {
	Convey("Given the address of a condition", t, func() {
		cond := custody.NewCondition("sigs", "ed25519", []byte("public key"))
		addr := cond.Address()

		Convey("it has the fixed length", func() {
			So(addr.Validate(), ShouldBeNil)
			So(len(addr), ShouldEqual, custody.AddressLength)
		})

		Convey("it is stable and unique", func() {
			So(addr, ShouldResemble, cond.Address())
			other := custody.NewCondition("sigs", "ed25519", []byte("another key"))
			So(addr.Equals(other.Address()), ShouldBeFalse)
		})

		Convey("a clone shares no memory", func() {
			clone := addr.Clone()
			clone[0]++
			So(addr.Equals(clone), ShouldBeFalse)
			So(custody.Address(nil).Clone(), ShouldBeNil)
		})
	})

	Convey("Address printing", t, func() {
		So(twenty.String(), ShouldEqual, "616464722D6F662D7477656E74792D6279746573")
		So(custody.Address(nil).String(), ShouldEqual, "(nil)")
	})

	Convey("Address validation", t, func() {
		So(twenty.Validate(), ShouldBeNil)
		So(errors.ErrEmpty.Is(custody.Address(nil).Validate()), ShouldBeTrue)
		So(errors.ErrInput.Is(custody.Address("short").Validate()), ShouldBeTrue)
	})

	Convey("Bech32 round trip", t, func() {
		enc, err := twenty.Bech32String("cust")
		So(err, ShouldBeNil)
		got, err := custody.ParseAddress("bech32:" + enc)
		So(err, ShouldBeNil)
		So(got, ShouldResemble, twenty)
	})
}

func TestParseAddress(t *testing.T) {
	cond := custody.NewCondition("escrow", "pda", []byte("digest"))

	cases := map[string]struct {
		enc      string
		wantErr  *errors.Error
		wantAddr custody.Address
	}{
		"plain hex":             {enc: twentyHex, wantAddr: twenty},
		"hex prefix":            {enc: "hex:" + twentyHex, wantAddr: twenty},
		"condition":             {enc: "cond:escrow/pda/646967657374", wantAddr: cond.Address()},
		"condition of two":      {enc: "cond:escrow/646967657374", wantErr: errors.ErrInput},
		"condition data no hex": {enc: "cond:escrow/pda/zz", wantErr: errors.ErrInput},
		"short hex":             {enc: "6865782d61646472", wantErr: errors.ErrInput},
		"not hex":               {enc: "escrow", wantErr: errors.ErrInput},
		"empty hex":             {enc: "hex:", wantErr: errors.ErrEmpty},
		"bad bech32":            {enc: "bech32:cust1xyz", wantErr: errors.ErrInput},
		"unknown format":        {enc: "base64:xxx", wantErr: errors.ErrType},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := custody.ParseAddress(tc.enc)
			require.True(t, tc.wantErr.Is(err), "got error %+v", err)
			assert.Equal(t, tc.wantAddr, got)
		})
	}
}

func TestAddressJSON(t *testing.T) {
	raw, err := json.Marshal(twenty)
	require.NoError(t, err)
	assert.Equal(t, `"`+"616464722D6F662D7477656E74792D6279746573"+`"`, string(raw))

	var got custody.Address
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, twenty, got)

	raw, err = json.Marshal(custody.Address(nil))
	require.NoError(t, err)
	assert.Equal(t, `""`, string(raw))
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Nil(t, got)

	err = json.Unmarshal([]byte(`"foobar:xxx"`), &got)
	assert.True(t, errors.ErrType.Is(err))
}

func TestCondition(t *testing.T) {
	Convey("Given a signature condition", t, func() {
		cond := custody.NewCondition("sigs", "ed25519", []byte("ABCD123456LHB"))

		Convey("it parses back into its parts", func() {
			ext, typ, data, err := cond.Parse()
			So(err, ShouldBeNil)
			So(ext, ShouldEqual, "sigs")
			So(typ, ShouldEqual, "ed25519")
			So(data, ShouldResemble, []byte("ABCD123456LHB"))
		})

		Convey("it prints the data in hex", func() {
			So(cond.String(), ShouldEqual, "sigs/ed25519/414243443132333435364C4842")
		})

		Convey("data may hold a newline", func() {
			So(custody.NewCondition("sigs", "ed25519", []byte("a\nb")).Validate(), ShouldBeNil)
		})
	})

	Convey("Malformed conditions are rejected", t, func() {
		for _, c := range []custody.Condition{nil, custody.Condition("sigs/ed25519"), custody.NewCondition("s", "ed25519", []byte("x"))} {
			So(errors.ErrInput.Is(c.Validate()), ShouldBeTrue)
		}
	})
}

func TestConditionJSON(t *testing.T) {
	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantCond custody.Condition
	}{
		"condition":       {json: `"escrow/pda/646967657374"`, wantCond: custody.NewCondition("escrow", "pda", []byte("digest"))},
		"missing part":    {json: `"escrow/646967657374"`, wantErr: errors.ErrInput},
		"data is not hex": {json: `"escrow/pda/zzzzz"`, wantErr: errors.ErrInput},
		"empty is nil":    {json: `""`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var got custody.Condition
			err := json.Unmarshal([]byte(tc.json), &got)
			require.True(t, tc.wantErr.Is(err), "got error %+v", err)
			assert.True(t, got.Equals(tc.wantCond), "got %s", got)
		})
	}

	raw, err := json.Marshal(custody.NewCondition("escrow", "pda", []byte("digest")))
	require.NoError(t, err)
	assert.Equal(t, `"escrow/pda/646967657374"`, string(raw))
	raw, err = json.Marshal(custody.Condition(nil))
	require.NoError(t, err)
	assert.Equal(t, `""`, string(raw))
}
