package routing

import (
	"github.com/spaolacci/murmur3"

	"github.com/arkilian/arkilian-go/pkg/types"
)

const (
	// v2Seed is the murmur3 seed shared with the server for generation V2.
	v2Seed uint32 = 0

	// v2MaxStringLength is the string cap in UTF-16 code units. Unlike V1,
	// strings over the cap are rejected, never truncated: truncating here
	// would silently change routing for keys the server refuses.
	v2MaxStringLength = 2048
)

var (
	v2Undefined   = mustHashV2(types.UndefinedComponent())
	v2Null        = mustHashV2(types.NullComponent())
	v2False       = mustHashV2(types.BoolComponent(false))
	v2True        = mustHashV2(types.BoolComponent(true))
	v2EmptyString = mustHashV2(types.StringComponent(""))
)

// HashComponentV2 hashes a single partition key component under generation
// V2: canonical bytes hashed with 128-bit murmur3 (x64 variant). Strings
// longer than 2048 UTF-16 code units fail with a validation error.
func HashComponentV2(c types.Component) (V2Hash, error) {
	switch c.Kind() {
	case types.ComponentUndefined:
		return v2Undefined, nil
	case types.ComponentNull:
		return v2Null, nil
	case types.ComponentFalse:
		return v2False, nil
	case types.ComponentTrue:
		return v2True, nil
	case types.ComponentString:
		if c.StringValue() == "" {
			return v2EmptyString, nil
		}
	}
	return hashComponentV2(c)
}

func hashComponentV2(c types.Component) (V2Hash, error) {
	var scratch [scratchSize]byte
	buf, err := appendCanonical(scratch[:0], c, v2MaxStringLength, false)
	if err != nil {
		return V2Hash{}, err
	}
	hi, lo := murmur3.Sum128WithSeed(buf, v2Seed)
	return V2Hash{Hi: hi, Lo: lo}, nil
}

// mustHashV2 is init-time only; the valueless components cannot fail.
func mustHashV2(c types.Component) V2Hash {
	h, err := hashComponentV2(c)
	if err != nil {
		panic(err)
	}
	return h
}
