// Package routing computes effective partition keys: the hashed form of a
// document's partition key values used for partition assignment and range
// routing. The byte layout and hash parameters are a fixed contract shared
// with the server; any change here silently misroutes requests.
package routing

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf16"

	"github.com/arkilian/arkilian-go/internal/errors"
	"github.com/arkilian/arkilian-go/pkg/types"
)

// scratchSize covers the common case (numbers, short strings) so the
// canonical buffer stays on the stack in the hot path.
const scratchSize = 128

// appendCanonical appends the canonical byte sequence for a component:
// one type tag byte followed by the type-specific payload. Numbers are the
// 8-byte little-endian IEEE-754 double representation (NaN and infinities
// hash by their bit pattern, no special case). Strings are the UTF-8 bytes
// of the string after the generation's length policy is applied. The other
// kinds have no payload.
//
// maxStringLength and truncateOverlong are the generation policy: V1
// truncates, V2 rejects.
func appendCanonical(dst []byte, c types.Component, maxStringLength int, truncateOverlong bool) ([]byte, error) {
	kind := c.Kind()
	if !kind.Hashable() {
		return nil, errors.NewValidationError(errors.CodeUnsupportedValue,
			fmt.Sprintf("component type %s cannot be hashed", kind))
	}

	dst = append(dst, byte(kind))

	switch kind {
	case types.ComponentNumber:
		var payload [8]byte
		binary.LittleEndian.PutUint64(payload[:], math.Float64bits(c.Float64()))
		dst = append(dst, payload[:]...)
	case types.ComponentString:
		s := c.StringValue()
		if utf16Length(s) > maxStringLength {
			if !truncateOverlong {
				return nil, errors.NewValidationError(errors.CodeStringTooLong,
					fmt.Sprintf("string partition key value exceeds %d UTF-16 code units", maxStringLength))
			}
			s = truncateUTF16(s, maxStringLength)
		}
		dst = append(dst, s...)
	}

	return dst, nil
}

// utf16Length returns the length of s in UTF-16 code units: one unit per
// rune in the basic plane, two for a surrogate pair.
func utf16Length(s string) int {
	n := 0
	for _, r := range s {
		n++
		if r > 0xFFFF {
			n++
		}
	}
	return n
}

// truncateUTF16 cuts s to at most limit UTF-16 code units. The cut is by
// code unit count, not byte or rune count: it may land in the middle of a
// surrogate pair, in which case the dangling half decodes to U+FFFD. The
// server truncates the same way and the replacement bytes must be
// reproduced, not repaired.
func truncateUTF16(s string, limit int) string {
	units := utf16.Encode([]rune(s))
	if len(units) <= limit {
		return s
	}
	return string(utf16.Decode(units[:limit]))
}
