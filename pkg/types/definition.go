package types

import (
	"fmt"
	"strings"
)

// PartitionKeyVersion selects which hashing generation a container uses.
// A container is fixed to one version for its lifetime; digests from
// different versions are never comparable.
type PartitionKeyVersion int

const (
	// PartitionKeyV1 hashes each component to a 32-bit digest and silently
	// truncates strings to 100 UTF-16 code units.
	PartitionKeyV1 PartitionKeyVersion = 1

	// PartitionKeyV2 hashes each component to a 128-bit digest and rejects
	// strings longer than 2048 UTF-16 code units.
	PartitionKeyV2 PartitionKeyVersion = 2
)

// String returns the version name.
func (v PartitionKeyVersion) String() string {
	switch v {
	case PartitionKeyV1:
		return "v1"
	case PartitionKeyV2:
		return "v2"
	default:
		return fmt.Sprintf("unknown(%d)", int(v))
	}
}

// Valid reports whether v names a known hashing generation.
func (v PartitionKeyVersion) Valid() bool {
	return v == PartitionKeyV1 || v == PartitionKeyV2
}

// PartitionKeyDefinition declares how documents in a container are
// partitioned: an ordered list of JSON paths and the hashing generation.
// Path order is significant; it is the order component values are extracted
// and folded.
type PartitionKeyDefinition struct {
	// Paths are slash-prefixed JSON paths, e.g. "/tenantId" or "/user/id".
	Paths []string `json:"paths" yaml:"paths"`

	// Version is the hashing generation for the container.
	Version PartitionKeyVersion `json:"version" yaml:"version"`
}

// Validate checks that the definition is well-formed.
func (d PartitionKeyDefinition) Validate() error {
	if len(d.Paths) == 0 {
		return ErrEmptyPaths
	}
	if !d.Version.Valid() {
		return fmt.Errorf("types: partition key version %d: %w", int(d.Version), ErrUnknownVersion)
	}
	seen := make(map[string]struct{}, len(d.Paths))
	for i, p := range d.Paths {
		if err := validatePath(p); err != nil {
			return fmt.Errorf("types: path %d (%q): %w", i, p, err)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("types: path %d (%q): %w", i, p, ErrDuplicatePath)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// PathSegments splits a definition path into its document field segments.
// "/user/id" yields ["user", "id"].
func PathSegments(path string) []string {
	return strings.Split(strings.TrimPrefix(path, "/"), "/")
}

func validatePath(p string) error {
	if p == "" || !strings.HasPrefix(p, "/") {
		return ErrInvalidPath
	}
	for _, seg := range PathSegments(p) {
		if seg == "" {
			return ErrInvalidPath
		}
	}
	return nil
}
