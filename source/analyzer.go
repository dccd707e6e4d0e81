package source

import (
	"context"

	"github.com/viant/docgraph/converter"
	"github.com/viant/docgraph/reflection"
)

// Analyzer produces the raw declaration graph and drives conversion lifecycle events
type Analyzer interface {
	// Convert runs one full conversion cycle on the converter
	Convert(ctx context.Context, conv *converter.Converter) (*reflection.Project, error)
	// Fingerprint returns hash of the analyzed input
	Fingerprint(ctx context.Context) (uint64, error)
}
