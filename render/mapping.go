package render

import "github.com/viant/docgraph/reflection"

const (
	// IndexURL is the project document
	IndexURL      = "index.html"
	indexTemplate = "index.hbs"
)

// Mapping assigns own documents to reflections of the listed kinds
type Mapping struct {
	Kinds     []reflection.Kind `yaml:"kinds"`
	IsLeaf    bool              `yaml:"isLeaf,omitempty"` // Children become anchors in the same document
	Directory string            `yaml:"directory"`
	Template  string            `yaml:"template"`
}

// Matches returns true if mapping covers the kind
func (m *Mapping) Matches(kind reflection.Kind) bool {
	return kind.Is(m.Kinds...)
}

// DefaultMappings returns the standard kind to document table
func DefaultMappings() []*Mapping {
	return []*Mapping{
		{Kinds: []reflection.Kind{reflection.KindClass}, Directory: "classes", Template: "reflection.hbs"},
		{Kinds: []reflection.Kind{reflection.KindInterface}, Directory: "interfaces", Template: "reflection.hbs"},
		{Kinds: []reflection.Kind{reflection.KindEnum}, Directory: "enums", Template: "reflection.hbs"},
		{Kinds: []reflection.Kind{reflection.KindModule, reflection.KindExternalModule}, Directory: "modules", Template: "reflection.hbs"},
	}
}

func lookupMapping(mappings []*Mapping, kind reflection.Kind) *Mapping {
	for _, mapping := range mappings {
		if mapping.Matches(kind) {
			return mapping
		}
	}
	return nil
}
