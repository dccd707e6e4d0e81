package visibility

import (
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/viant/docgraph/reflection"
)

// DefaultExternalPatterns lists gitignore style patterns of third party sources
var DefaultExternalPatterns = []string{"node_modules/", "vendor/", "third_party/"}

// Origin classifies source files as first-party or external
type Origin struct {
	root     string
	base     string
	patterns *ignore.GitIgnore
}

// NewOrigin creates an origin classifier for the first-party root and external patterns.
// A relative root is resolved against the working directory.
func NewOrigin(root string, patterns ...string) *Origin {
	ret := &Origin{}
	if root != "" {
		ret.root = absolute(root)
	}
	if len(patterns) > 0 {
		ret.patterns = ignore.CompileIgnoreLines(patterns...)
	}
	return ret
}

// WithBase returns a copy resolving relative source files against the base directory
func (o *Origin) WithBase(base string) *Origin {
	if o == nil {
		return nil
	}
	ret := *o
	ret.base = base
	return &ret
}

// IsFirstParty returns true if file lies under the root and matches no external pattern
func (o *Origin) IsFirstParty(file string) bool {
	if o == nil || file == "" {
		return true
	}
	location := o.resolve(file)
	if o.root != "" {
		rel, err := filepath.Rel(o.root, location)
		if err != nil {
			return false
		}
		return o.contains(rel)
	}
	if o.base != "" && filepath.IsAbs(location) {
		if rel, err := filepath.Rel(o.base, location); err == nil && !isOutside(filepath.ToSlash(rel)) {
			return o.matchesNone(filepath.ToSlash(rel))
		}
	}
	return o.matchesNone(strings.TrimPrefix(filepath.ToSlash(location), "/"))
}

// resolve returns file location, relative files resolve against the base, or the working directory when a root is set
func (o *Origin) resolve(file string) string {
	switch {
	case filepath.IsAbs(file):
		return filepath.Clean(file)
	case o.base != "":
		return filepath.Join(o.base, file)
	case o.root != "":
		return absolute(file)
	}
	return file
}

func (o *Origin) contains(rel string) bool {
	rel = filepath.ToSlash(rel)
	if isOutside(rel) {
		return false
	}
	return o.matchesNone(rel)
}

func isOutside(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, "../")
}

func absolute(location string) string {
	if abs, err := filepath.Abs(location); err == nil {
		return abs
	}
	return filepath.Clean(location)
}

func (o *Origin) matchesNone(rel string) bool {
	if o.patterns == nil {
		return true
	}
	return !o.patterns.MatchesPath(rel)
}

// IsExternal returns true if every source lies outside the first-party root.
// Reflections without sources are treated as first-party.
func (o *Origin) IsExternal(sources []*reflection.Source) bool {
	if len(sources) == 0 {
		return false
	}
	for _, source := range sources {
		if source == nil || o.IsFirstParty(source.File) {
			return false
		}
	}
	return true
}
