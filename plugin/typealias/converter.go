package typealias

import (
	"github.com/viant/docgraph/converter"
	"github.com/viant/docgraph/reflection"
)

// Priority runs the flattening ahead of the default reference converter
const Priority = 100

// DefaultAliases lists alias names whose union target is shown flattened
var DefaultAliases = []string{"EnumType", "ObjectValues"}

// Converter renders references to union aliases as the union itself
type Converter struct {
	aliases map[string]bool
}

// New creates flattening converter for the supplied alias names, DefaultAliases when none
func New(aliases ...string) *Converter {
	if len(aliases) == 0 {
		aliases = DefaultAliases
	}
	ret := &Converter{aliases: make(map[string]bool, len(aliases))}
	for _, alias := range aliases {
		ret.aliases[alias] = true
	}
	return ret
}

func (c *Converter) Priority() int {
	return Priority
}

// Supports returns true for a reference to a known alias resolving to a union
func (c *Converter) Supports(sourceType *converter.SourceType) bool {
	if sourceType.Kind != converter.SourceReference || !c.aliases[sourceType.Name] {
		return false
	}
	return sourceType.Resolved != nil && sourceType.Resolved.Kind == converter.SourceUnion
}

func (c *Converter) Convert(ctx *converter.Context, sourceType *converter.SourceType) reflection.Type {
	return &reflection.UnionType{Types: converter.ConvertTypes(ctx, sourceType.Resolved.Members)}
}
