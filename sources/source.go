// Package sources adapts input formats into the records consumed by schema
// inference. Each source owns its format-specific extraction; classification
// stays in the inference and schema packages.
package sources

import (
	"errors"

	"f0oster/schemawiz/schema"
)

// Source errors.
var (
	ErrMalformedInput = errors.New("malformed source input")
)

// Source produces sample records for schema inference from one input format.
type Source interface {
	// Name identifies the source format.
	Name() string

	// Records extracts the ordered sample records.
	Records() ([]schema.Record, error)
}
