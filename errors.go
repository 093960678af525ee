package protogen

import "errors"

// Sentinel errors.
var (
	// ErrUnsupportedType is returned when a column type expression cannot be
	// mapped to a proto2 field under the type grammar.
	ErrUnsupportedType = errors.New("protogen: unsupported column type")

	// ErrConfigNotFound is returned when no .protogen.yaml is found.
	ErrConfigNotFound = errors.New("protogen: no .protogen.yaml found")
)
