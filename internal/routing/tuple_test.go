package routing

import (
	"strings"
	"testing"

	routingerrors "github.com/arkilian/arkilian-go/internal/errors"
	"github.com/arkilian/arkilian-go/pkg/types"
)

func TestTupleSingletonDegeneratesToComponentHash(t *testing.T) {
	for _, c := range []types.Component{
		types.StringComponent("tenant-1"),
		types.NumberComponent(99),
		types.NullComponent(),
	} {
		direct1, err := HashComponentV1(c)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c, err)
		}
		tuple1, err := HashComponentsV1([]types.Component{c})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c, err)
		}
		if direct1 != tuple1 {
			t.Errorf("%s: V1 singleton tuple must equal the direct hash", c)
		}

		direct2, err := HashComponentV2(c)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c, err)
		}
		tuple2, err := HashComponentsV2([]types.Component{c})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c, err)
		}
		if direct2 != tuple2 {
			t.Errorf("%s: V2 singleton tuple must equal the direct hash", c)
		}
	}
}

func TestTupleEmptyRejected(t *testing.T) {
	if _, err := HashComponentsV1(nil); routingerrors.GetCode(err) != routingerrors.CodeEmptyKey {
		t.Errorf("V1: expected EMPTY_KEY, got %v", err)
	}
	if _, err := HashComponentsV2(nil); routingerrors.GetCode(err) != routingerrors.CodeEmptyKey {
		t.Errorf("V2: expected EMPTY_KEY, got %v", err)
	}
}

func TestTupleDeterministic(t *testing.T) {
	tuple := []types.Component{
		types.StringComponent("acme"),
		types.NumberComponent(42),
		types.BoolComponent(true),
	}
	a, err := HashComponentsV2(tuple)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := HashComponentsV2(tuple)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("repeated tuple hashing differs: %s vs %s", a, b)
	}
}

func TestTupleOrderSensitive(t *testing.T) {
	ab := []types.Component{types.StringComponent("a"), types.StringComponent("b")}
	ba := []types.Component{types.StringComponent("b"), types.StringComponent("a")}

	v1ab, err := HashComponentsV1(ab)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v1ba, err := HashComponentsV1(ba)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v1ab == v1ba {
		t.Error("V1: permuting distinct components should change the digest")
	}

	v2ab, err := HashComponentsV2(ab)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v2ba, err := HashComponentsV2(ba)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v2ab == v2ba {
		t.Error("V2: permuting distinct components should change the digest")
	}
}

func TestTuplePropagatesComponentErrors(t *testing.T) {
	tuple := []types.Component{
		types.StringComponent("ok"),
		types.StringComponent(strings.Repeat("a", 2049)),
	}
	_, err := HashComponentsV2(tuple)
	if routingerrors.GetCode(err) != routingerrors.CodeStringTooLong {
		t.Errorf("expected STRING_TOO_LONG from tuple hashing, got %v", err)
	}
	// V1 truncates instead; the same tuple hashes fine.
	if _, err := HashComponentsV1(tuple); err != nil {
		t.Errorf("V1 should truncate, got %v", err)
	}
}

func TestHashTupleDispatch(t *testing.T) {
	tuple := []types.Component{types.StringComponent("acme"), types.NumberComponent(1)}

	k1, err := HashTuple(types.PartitionKeyV1, tuple)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k1.Version() != types.PartitionKeyV1 {
		t.Errorf("got version %s, want v1", k1.Version())
	}
	want1, err := HashComponentsV1(tuple)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k1.V1() != want1 {
		t.Error("HashTuple v1 digest mismatch")
	}

	k2, err := HashTuple(types.PartitionKeyV2, tuple)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k2.Version() != types.PartitionKeyV2 {
		t.Errorf("got version %s, want v2", k2.Version())
	}
	want2, err := HashComponentsV2(tuple)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k2.V2() != want2 {
		t.Error("HashTuple v2 digest mismatch")
	}
}

func TestHashTupleUnknownVersion(t *testing.T) {
	_, err := HashTuple(types.PartitionKeyVersion(9), []types.Component{types.NullComponent()})
	if routingerrors.GetCode(err) != routingerrors.CodeUnknownVersion {
		t.Errorf("expected UNKNOWN_VERSION, got %v", err)
	}
}
