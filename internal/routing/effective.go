package routing

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/arkilian/arkilian-go/internal/errors"
	"github.com/arkilian/arkilian-go/pkg/types"
)

// V1Hash is a generation-V1 effective partition key digest: a 32-bit
// unsigned value, totally ordered by numeric magnitude. It is an immutable
// value type and is comparable, so it can be used directly as a map key.
type V1Hash uint32

// Compare returns -1, 0, or 1 ordering h against other.
func (h V1Hash) Compare(other V1Hash) int {
	switch {
	case h < other:
		return -1
	case h > other:
		return 1
	default:
		return 0
	}
}

// Less reports whether h orders before other.
func (h V1Hash) Less(other V1Hash) bool { return h < other }

// Equal reports whether the digests are bit-identical.
func (h V1Hash) Equal(other V1Hash) bool { return h == other }

// Bytes returns the digest as 4 big-endian bytes, so byte order and value
// order agree.
func (h V1Hash) Bytes() [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(h))
	return b
}

// String returns the digest as 8 uppercase hex characters.
func (h V1Hash) String() string {
	return fmt.Sprintf("%08X", uint32(h))
}

// V2Hash is a generation-V2 effective partition key digest: a 128-bit
// unsigned value ordered lexicographically, Hi lane first. Immutable and
// comparable like V1Hash. The two generations use distinct types so a
// cross-generation comparison does not compile.
type V2Hash struct {
	Hi, Lo uint64
}

// Compare returns -1, 0, or 1 ordering h against other.
func (h V2Hash) Compare(other V2Hash) int {
	switch {
	case h.Hi < other.Hi:
		return -1
	case h.Hi > other.Hi:
		return 1
	case h.Lo < other.Lo:
		return -1
	case h.Lo > other.Lo:
		return 1
	default:
		return 0
	}
}

// Less reports whether h orders before other.
func (h V2Hash) Less(other V2Hash) bool { return h.Compare(other) < 0 }

// Equal reports whether the digests are bit-identical.
func (h V2Hash) Equal(other V2Hash) bool { return h == other }

// Bytes returns the digest as 16 big-endian bytes, Hi lane first, so byte
// order and value order agree.
func (h V2Hash) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], h.Hi)
	binary.BigEndian.PutUint64(b[8:], h.Lo)
	return b
}

// String returns the digest as 32 uppercase hex characters.
func (h V2Hash) String() string {
	return fmt.Sprintf("%016X%016X", h.Hi, h.Lo)
}

// EffectiveKey is the version-generic effective partition key handed to the
// routing layer: a digest tagged with the generation that produced it.
// Digests from different generations are never ordered against each other;
// Compare reports that as a routing error instead of coercing.
type EffectiveKey struct {
	version types.PartitionKeyVersion
	v1      V1Hash
	v2      V2Hash
}

// NewEffectiveKeyV1 wraps a V1 digest.
func NewEffectiveKeyV1(h V1Hash) EffectiveKey {
	return EffectiveKey{version: types.PartitionKeyV1, v1: h}
}

// NewEffectiveKeyV2 wraps a V2 digest.
func NewEffectiveKeyV2(h V2Hash) EffectiveKey {
	return EffectiveKey{version: types.PartitionKeyV2, v2: h}
}

// Version returns the generation that produced the key.
func (k EffectiveKey) Version() types.PartitionKeyVersion { return k.version }

// V1 returns the V1 digest; meaningful only when Version is PartitionKeyV1.
func (k EffectiveKey) V1() V1Hash { return k.v1 }

// V2 returns the V2 digest; meaningful only when Version is PartitionKeyV2.
func (k EffectiveKey) V2() V2Hash { return k.v2 }

// Compare orders two keys of the same generation. Mixing generations is a
// caller bug and returns a GENERATION_MISMATCH error.
func (k EffectiveKey) Compare(other EffectiveKey) (int, error) {
	if k.version != other.version {
		return 0, errors.NewRoutingError(errors.CodeGenerationMismatch,
			fmt.Sprintf("cannot compare %s key against %s key", k.version, other.version))
	}
	switch k.version {
	case types.PartitionKeyV1:
		return k.v1.Compare(other.v1), nil
	case types.PartitionKeyV2:
		return k.v2.Compare(other.v2), nil
	default:
		return 0, errors.NewRoutingError(errors.CodeUnknownVersion,
			fmt.Sprintf("partition key version %s", k.version))
	}
}

// Equal reports whether both keys come from the same generation and carry
// bit-identical digests. Keys from different generations are never equal.
func (k EffectiveKey) Equal(other EffectiveKey) bool {
	return k == other
}

// Bytes returns the digest bytes at the generation's natural width.
func (k EffectiveKey) Bytes() []byte {
	if k.version == types.PartitionKeyV1 {
		b := k.v1.Bytes()
		return b[:]
	}
	b := k.v2.Bytes()
	return b[:]
}

// String returns the digest as uppercase hex.
func (k EffectiveKey) String() string {
	if k.version == types.PartitionKeyV1 {
		return k.v1.String()
	}
	return k.v2.String()
}

// Sum64 returns a container-level 64-bit key for auxiliary lookup
// structures (range caches and the like). It is FNV-1a over the version
// byte and digest bytes, deliberately distinct from the routing hash.
func (k EffectiveKey) Sum64() uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(k.version)})
	h.Write(k.Bytes())
	return h.Sum64()
}
