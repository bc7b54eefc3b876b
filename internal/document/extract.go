// Package document extracts typed partition key components from decoded
// JSON documents according to a container's partition key definition.
package document

import (
	stderrors "errors"
	"fmt"

	"github.com/arkilian/arkilian-go/internal/errors"
	"github.com/arkilian/arkilian-go/internal/routing"
	"github.com/arkilian/arkilian-go/pkg/types"
)

// Extract returns one component per definition path, in path order. A path
// missing from the document (or passing through a non-object value) yields
// the undefined component; an explicit JSON null yields the null component.
// The two are distinct partition key values and hash differently.
func Extract(doc map[string]interface{}, def types.PartitionKeyDefinition) ([]types.Component, error) {
	if err := def.Validate(); err != nil {
		return nil, errors.WrapValidationError(errors.CodeInvalidDefinition,
			"invalid partition key definition", err)
	}

	components := make([]types.Component, 0, len(def.Paths))
	for _, path := range def.Paths {
		value, found := lookup(doc, types.PathSegments(path))
		if !found {
			components = append(components, types.UndefinedComponent())
			continue
		}
		c, err := types.ComponentFromValue(value)
		if err != nil {
			code := errors.CodeUnsupportedValue
			if stderrors.Is(err, types.ErrNilStringValue) {
				code = errors.CodeNullStringComponent
			}
			return nil, errors.WrapValidationError(code, fmt.Sprintf("path %q", path), err)
		}
		components = append(components, c)
	}
	return components, nil
}

// ExtractKey extracts the document's partition key components and hashes
// them into the effective partition key for the definition's generation.
func ExtractKey(doc map[string]interface{}, def types.PartitionKeyDefinition) (routing.EffectiveKey, error) {
	components, err := Extract(doc, def)
	if err != nil {
		return routing.EffectiveKey{}, err
	}
	return routing.HashTuple(def.Version, components)
}

// lookup walks the path segments through nested JSON objects. The second
// return is false when the path does not resolve to a value.
func lookup(doc map[string]interface{}, segments []string) (interface{}, bool) {
	var current interface{} = doc
	for _, seg := range segments {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = obj[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
