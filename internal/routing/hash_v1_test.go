package routing

import (
	"strings"
	"testing"

	"github.com/spaolacci/murmur3"

	"github.com/arkilian/arkilian-go/pkg/types"
)

func TestHashV1Deterministic(t *testing.T) {
	components := []types.Component{
		types.UndefinedComponent(),
		types.NullComponent(),
		types.BoolComponent(true),
		types.BoolComponent(false),
		types.NumberComponent(0),
		types.NumberComponent(-17.5),
		types.StringComponent(""),
		types.StringComponent("USA"),
		types.StringComponent(strings.Repeat("x", 500)),
	}
	for _, c := range components {
		first, err := HashComponentV1(c)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c, err)
		}
		second, err := HashComponentV1(c)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c, err)
		}
		if first != second {
			t.Errorf("%s: repeated hashing differs: %s vs %s", c, first, second)
		}
	}
}

func TestHashV1ValuelessDigestsDistinct(t *testing.T) {
	digests := map[V1Hash]string{}
	for _, c := range []types.Component{
		types.UndefinedComponent(),
		types.NullComponent(),
		types.BoolComponent(false),
		types.BoolComponent(true),
		types.StringComponent(""),
	} {
		h, err := HashComponentV1(c)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c, err)
		}
		if prev, dup := digests[h]; dup {
			t.Errorf("%s collides with %s: %s", c, prev, h)
		}
		digests[h] = c.String()
	}
}

// The cached constants are an optimization only; they must be bit-identical
// to hashing the canonical bytes on demand.
func TestHashV1CachedConstantsMatchDirectHash(t *testing.T) {
	tests := []struct {
		c         types.Component
		canonical []byte
	}{
		{types.UndefinedComponent(), []byte{0x00}},
		{types.NullComponent(), []byte{0x01}},
		{types.BoolComponent(false), []byte{0x02}},
		{types.BoolComponent(true), []byte{0x03}},
		{types.StringComponent(""), []byte{0x08}},
	}
	for _, tt := range tests {
		got, err := HashComponentV1(tt.c)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.c, err)
		}
		want := V1Hash(murmur3.Sum32WithSeed(tt.canonical, v1Seed))
		if got != want {
			t.Errorf("%s: cached %s, direct %s", tt.c, got, want)
		}
	}
}

func TestHashV1TruncationEquivalence(t *testing.T) {
	base := strings.Repeat("p", 100)
	long := base + strings.Repeat("q", 400)

	hBase, err := HashComponentV1(types.StringComponent(base))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hLong, err := HashComponentV1(types.StringComponent(long))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hBase != hLong {
		t.Errorf("strings equal in their first 100 UTF-16 units must hash equal: %s vs %s", hBase, hLong)
	}

	// The 100th unit still matters.
	differs := strings.Repeat("p", 99) + "z"
	hDiff, err := HashComponentV1(types.StringComponent(differs))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hDiff == hBase {
		t.Error("strings differing inside the truncation window should hash differently")
	}
}

func TestHashV1CaseSensitive(t *testing.T) {
	upper, err := HashComponentV1(types.StringComponent("USA"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lower, err := HashComponentV1(types.StringComponent("usa"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upper == lower {
		t.Error("hashing must be case-sensitive")
	}
}

func TestHashV1NumberMatchesCanonicalBytes(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 42.5, 1e308} {
		c := types.NumberComponent(f)
		got, err := HashComponentV1(c)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", f, err)
		}
		canonical, err := appendCanonical(nil, c, v1MaxStringLength, true)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", f, err)
		}
		want := V1Hash(murmur3.Sum32WithSeed(canonical, v1Seed))
		if got != want {
			t.Errorf("%v: got %s, want %s", f, got, want)
		}
	}
}

func TestHashPrimitiveAcceptsEmptyInput(t *testing.T) {
	// The primitive must be defined on zero-length input; for murmur3 with
	// seed 0 the 32-bit digest of empty input is 0.
	if murmur3.Sum32WithSeed(nil, v1Seed) != 0 {
		t.Error("murmur3 of empty input with seed 0 should be 0")
	}
}
