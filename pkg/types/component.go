package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// PartitionKeyComponentType is the one-byte discriminant prefixed to a
// component's canonical byte sequence before hashing. The values are part of
// the wire contract shared with the server and must never be renumbered.
type PartitionKeyComponentType byte

const (
	ComponentUndefined PartitionKeyComponentType = 0x00
	ComponentNull      PartitionKeyComponentType = 0x01
	ComponentFalse     PartitionKeyComponentType = 0x02
	ComponentTrue      PartitionKeyComponentType = 0x03

	// ComponentMinNumber and the other Min/Max tags are range boundaries used
	// by the server when describing partition key ranges. The client never
	// hashes them; they are reserved so the tag space stays aligned.
	ComponentMinNumber PartitionKeyComponentType = 0x04
	ComponentNumber    PartitionKeyComponentType = 0x05
	ComponentMaxNumber PartitionKeyComponentType = 0x06
	ComponentMinString PartitionKeyComponentType = 0x07
	ComponentString    PartitionKeyComponentType = 0x08
	ComponentMaxString PartitionKeyComponentType = 0x09

	// ComponentInfinity is the exclusive upper bound of the key space.
	ComponentInfinity PartitionKeyComponentType = 0xFF
)

// String returns the tag name for logging and error messages.
func (t PartitionKeyComponentType) String() string {
	switch t {
	case ComponentUndefined:
		return "undefined"
	case ComponentNull:
		return "null"
	case ComponentFalse:
		return "false"
	case ComponentTrue:
		return "true"
	case ComponentMinNumber:
		return "min_number"
	case ComponentNumber:
		return "number"
	case ComponentMaxNumber:
		return "max_number"
	case ComponentMinString:
		return "min_string"
	case ComponentString:
		return "string"
	case ComponentMaxString:
		return "max_string"
	case ComponentInfinity:
		return "infinity"
	default:
		return fmt.Sprintf("unknown(0x%02X)", byte(t))
	}
}

// Hashable reports whether the tag names a concrete value a document can
// carry, as opposed to a reserved range boundary.
func (t PartitionKeyComponentType) Hashable() bool {
	switch t {
	case ComponentUndefined, ComponentNull, ComponentFalse, ComponentTrue,
		ComponentNumber, ComponentString:
		return true
	default:
		return false
	}
}

// Component is one typed partition key value: exactly one of undefined,
// null, boolean, number, or string. It is an immutable value type; build
// instances through the constructors below.
type Component struct {
	kind PartitionKeyComponentType
	num  float64
	str  string
}

// UndefinedComponent returns the component for a path missing from the
// document.
func UndefinedComponent() Component {
	return Component{kind: ComponentUndefined}
}

// NullComponent returns the component for an explicit JSON null.
func NullComponent() Component {
	return Component{kind: ComponentNull}
}

// BoolComponent returns the true or false component.
func BoolComponent(b bool) Component {
	if b {
		return Component{kind: ComponentTrue}
	}
	return Component{kind: ComponentFalse}
}

// NumberComponent returns a numeric component. The value is carried as an
// IEEE-754 double; NaN and infinities are legal and hash by bit pattern.
func NumberComponent(f float64) Component {
	return Component{kind: ComponentNumber, num: f}
}

// StringComponent returns a string component. The empty string is a valid,
// distinct partition key value.
func StringComponent(s string) Component {
	return Component{kind: ComponentString, str: s}
}

// Kind returns the component's type tag.
func (c Component) Kind() PartitionKeyComponentType { return c.kind }

// Float64 returns the numeric value; meaningful only when Kind is
// ComponentNumber.
func (c Component) Float64() float64 { return c.num }

// StringValue returns the string value; meaningful only when Kind is
// ComponentString.
func (c Component) StringValue() string { return c.str }

// String renders the component for logs and error messages.
func (c Component) String() string {
	switch c.kind {
	case ComponentNumber:
		return strconv.FormatFloat(c.num, 'g', -1, 64)
	case ComponentString:
		return strconv.Quote(c.str)
	default:
		return c.kind.String()
	}
}

// ComponentFromValue classifies a decoded JSON value into a Component.
// Untyped nil maps to the null component. Typed nil pointers are rejected
// rather than coerced to null: a nil string where a string was expected is a
// caller bug and silently hashing it as null would misroute the request.
// Arrays and objects are not valid partition key values.
func ComponentFromValue(v interface{}) (Component, error) {
	switch val := v.(type) {
	case nil:
		return NullComponent(), nil
	case bool:
		return BoolComponent(val), nil
	case float64:
		return NumberComponent(val), nil
	case float32:
		return NumberComponent(float64(val)), nil
	case int:
		return NumberComponent(float64(val)), nil
	case int32:
		return NumberComponent(float64(val)), nil
	case int64:
		return NumberComponent(float64(val)), nil
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return Component{}, fmt.Errorf("types: invalid numeric partition key value %q: %w", val.String(), err)
		}
		return NumberComponent(f), nil
	case string:
		return StringComponent(val), nil
	case *string:
		if val == nil {
			return Component{}, ErrNilStringValue
		}
		return StringComponent(*val), nil
	case Component:
		return val, nil
	default:
		return Component{}, fmt.Errorf("types: unsupported partition key value type %T: %w", v, ErrUnsupportedValue)
	}
}
