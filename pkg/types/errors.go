package types

import "errors"

// Partition key definition errors
var (
	// ErrEmptyPaths is returned when a definition declares no paths
	ErrEmptyPaths = errors.New("partition key definition has no paths")

	// ErrInvalidPath is returned when a path is empty, lacks the leading
	// slash, or contains an empty segment
	ErrInvalidPath = errors.New("invalid partition key path")

	// ErrDuplicatePath is returned when the same path appears twice
	ErrDuplicatePath = errors.New("duplicate partition key path")

	// ErrUnknownVersion is returned when the definition names a hashing
	// generation this client does not implement
	ErrUnknownVersion = errors.New("unknown partition key version")
)

// Component classification errors
var (
	// ErrNilStringValue is returned when a nil string pointer is supplied
	// where a string partition key value is expected; it is never coerced
	// to the null component
	ErrNilStringValue = errors.New("nil string partition key value")

	// ErrUnsupportedValue is returned for values (arrays, objects, ...)
	// that cannot be partition key components
	ErrUnsupportedValue = errors.New("unsupported partition key value")
)
