package routing

import (
	"fmt"

	"github.com/spaolacci/murmur3"

	"github.com/arkilian/arkilian-go/internal/errors"
	"github.com/arkilian/arkilian-go/pkg/types"
)

// Multi-path composition: each path component is hashed on its own, the
// digests are serialized big-endian at their natural width, concatenated in
// path order, and the concatenation is hashed once more with the same
// generation primitive. A single-path key skips the fold and is exactly the
// single-component hash.
//
// TODO: validate the fold layout against server reference vectors for
// multi-path containers before relying on it for routing; the single-value
// path needs no such validation.

// HashComponentsV1 folds an ordered tuple of partition key components into
// one generation-V1 effective key.
func HashComponentsV1(components []types.Component) (V1Hash, error) {
	if len(components) == 0 {
		return 0, errors.NewValidationError(errors.CodeEmptyKey, "partition key tuple has no components")
	}
	if len(components) == 1 {
		return HashComponentV1(components[0])
	}

	buf := make([]byte, 0, 4*len(components))
	for i, c := range components {
		h, err := HashComponentV1(c)
		if err != nil {
			return 0, fmt.Errorf("routing: component %d: %w", i, err)
		}
		b := h.Bytes()
		buf = append(buf, b[:]...)
	}
	return V1Hash(murmur3.Sum32WithSeed(buf, v1Seed)), nil
}

// HashComponentsV2 folds an ordered tuple of partition key components into
// one generation-V2 effective key.
func HashComponentsV2(components []types.Component) (V2Hash, error) {
	if len(components) == 0 {
		return V2Hash{}, errors.NewValidationError(errors.CodeEmptyKey, "partition key tuple has no components")
	}
	if len(components) == 1 {
		return HashComponentV2(components[0])
	}

	buf := make([]byte, 0, 16*len(components))
	for i, c := range components {
		h, err := HashComponentV2(c)
		if err != nil {
			return V2Hash{}, fmt.Errorf("routing: component %d: %w", i, err)
		}
		b := h.Bytes()
		buf = append(buf, b[:]...)
	}
	hi, lo := murmur3.Sum128WithSeed(buf, v2Seed)
	return V2Hash{Hi: hi, Lo: lo}, nil
}

// HashTuple is the version-generic surface consumed by the routing layer:
// it dispatches on the container's partition key version and returns a
// generation-tagged effective key.
func HashTuple(version types.PartitionKeyVersion, components []types.Component) (EffectiveKey, error) {
	switch version {
	case types.PartitionKeyV1:
		h, err := HashComponentsV1(components)
		if err != nil {
			return EffectiveKey{}, err
		}
		return NewEffectiveKeyV1(h), nil
	case types.PartitionKeyV2:
		h, err := HashComponentsV2(components)
		if err != nil {
			return EffectiveKey{}, err
		}
		return NewEffectiveKeyV2(h), nil
	default:
		return EffectiveKey{}, errors.NewRoutingError(errors.CodeUnknownVersion,
			fmt.Sprintf("partition key version %d", int(version)))
	}
}
