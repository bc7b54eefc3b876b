package routing

import (
	"github.com/spaolacci/murmur3"

	"github.com/arkilian/arkilian-go/pkg/types"
)

const (
	// v1Seed is the murmur3 seed shared with the server for generation V1.
	v1Seed uint32 = 0

	// v1MaxStringLength is the string cap in UTF-16 code units; longer
	// strings are silently truncated under V1.
	v1MaxStringLength = 100
)

// Digests of the valueless cases, computed once at init through the same
// code path as on-demand hashing. Pure caching; results are bit-identical
// to recomputing.
var (
	v1Undefined   = mustHashV1(types.UndefinedComponent())
	v1Null        = mustHashV1(types.NullComponent())
	v1False       = mustHashV1(types.BoolComponent(false))
	v1True        = mustHashV1(types.BoolComponent(true))
	v1EmptyString = mustHashV1(types.StringComponent(""))
)

// HashComponentV1 hashes a single partition key component under generation
// V1: canonical bytes hashed with 32-bit murmur3. Strings longer than 100
// UTF-16 code units are truncated before hashing.
func HashComponentV1(c types.Component) (V1Hash, error) {
	switch c.Kind() {
	case types.ComponentUndefined:
		return v1Undefined, nil
	case types.ComponentNull:
		return v1Null, nil
	case types.ComponentFalse:
		return v1False, nil
	case types.ComponentTrue:
		return v1True, nil
	case types.ComponentString:
		if c.StringValue() == "" {
			return v1EmptyString, nil
		}
	}
	return hashComponentV1(c)
}

func hashComponentV1(c types.Component) (V1Hash, error) {
	var scratch [scratchSize]byte
	buf, err := appendCanonical(scratch[:0], c, v1MaxStringLength, true)
	if err != nil {
		return 0, err
	}
	return V1Hash(murmur3.Sum32WithSeed(buf, v1Seed)), nil
}

// mustHashV1 is init-time only; the valueless components cannot fail.
func mustHashV1(c types.Component) V1Hash {
	h, err := hashComponentV1(c)
	if err != nil {
		panic(err)
	}
	return h
}
