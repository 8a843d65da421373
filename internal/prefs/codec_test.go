package prefs

import (
	"reflect"
	"testing"
)

func testCodec() *Codec {
	return NewCodec([]string{"cardio", "strength", "yoga", "pilates", "hiit", "stretching"})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	codec := testCodec()

	cases := [][]string{
		{},
		{"cardio"},
		{"strength", "yoga"},
		{"cardio", "strength", "yoga", "pilates", "hiit", "stretching"},
	}

	for _, ids := range cases {
		decoded := codec.Decode(codec.Encode(ids))
		if !reflect.DeepEqual(decoded, ids) {
			t.Fatalf("round trip of %v gave %v", ids, decoded)
		}
	}
}

func TestEncodeCanonicalizesOrderAndDuplicates(t *testing.T) {
	codec := testCodec()

	encoded := codec.Encode([]string{"yoga", "cardio", "yoga"})
	if encoded != `["cardio","yoga"]` {
		t.Fatalf("expected canonical encoding, got %s", encoded)
	}
}

func TestDecodeDropsUnknownIDs(t *testing.T) {
	codec := testCodec()

	decoded := codec.Decode(`["cardio","aerobics_2019"]`)
	if !reflect.DeepEqual(decoded, []string{"cardio"}) {
		t.Fatalf("expected only the known id to survive, got %v", decoded)
	}
}

func TestDecodeIsTotal(t *testing.T) {
	codec := testCodec()

	for _, raw := range []string{"", "not json", `{"a":1}`, `[1,2,3]`, "null"} {
		decoded := codec.Decode(raw)
		if len(decoded) != 0 {
			t.Fatalf("expected empty set for %q, got %v", raw, decoded)
		}
	}
}

func TestEncodeIgnoresUnknownIDs(t *testing.T) {
	codec := testCodec()

	if got := codec.Encode([]string{"zumba"}); got != "[]" {
		t.Fatalf("expected empty encoding, got %s", got)
	}
}
