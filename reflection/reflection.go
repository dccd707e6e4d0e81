package reflection

import (
	"strconv"
	"strings"
	"sync/atomic"
)

const unknownLocation = "<unknown>"

var lastID int64

// NextID returns process-unique reflection ID
func NextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Source represents provenance of a reflection
type Source struct {
	File string `yaml:"file"`
	Line int    `yaml:"line,omitempty"`
}

func (s *Source) String() string {
	if s == nil || s.File == "" {
		return unknownLocation
	}
	if s.Line == 0 {
		return s.File
	}
	return s.File + ":" + strconv.Itoa(s.Line)
}

// Reflection represents one documentable entity
type Reflection struct {
	ID             int           `yaml:"id"`
	Kind           Kind          `yaml:"kind"`
	Name           string        `yaml:"name"`
	ParentID       int           `yaml:"-"` // Registry key of the container
	Children       []*Reflection `yaml:"children,omitempty"`
	Comment        *Comment      `yaml:"comment,omitempty"`
	Sources        []*Source     `yaml:"sources,omitempty"`
	Type           Type          `yaml:"type,omitempty"`
	URL            string        `yaml:"url,omitempty"`
	Anchor         string        `yaml:"anchor,omitempty"`
	HasOwnDocument bool          `yaml:"hasOwnDocument,omitempty"`
}

// Location returns location of the first source, or <unknown>
func (r *Reflection) Location() string {
	if len(r.Sources) == 0 {
		return unknownLocation
	}
	return r.Sources[0].String()
}

// HasComment returns true if reflection has a non empty structured comment
func (r *Reflection) HasComment() bool {
	return !r.Comment.IsEmpty()
}

// ChildByName returns the first child with matching name and kind, skipping the excluded reflection
func (r *Reflection) ChildByName(name string, kind Kind, exclude *Reflection) *Reflection {
	for _, child := range r.Children {
		if child == exclude {
			continue
		}
		if child.Kind == kind && child.Name == name {
			return child
		}
	}
	return nil
}

func (r *Reflection) indexOf(child *Reflection) int {
	for i, candidate := range r.Children {
		if candidate == child {
			return i
		}
	}
	return -1
}

func (r *Reflection) removeChild(child *Reflection) bool {
	idx := r.indexOf(child)
	if idx == -1 {
		return false
	}
	copy(r.Children[idx:], r.Children[idx+1:])
	r.Children[len(r.Children)-1] = nil
	r.Children = r.Children[:len(r.Children)-1]
	return true
}

func (r *Reflection) String() string {
	builder := strings.Builder{}
	builder.WriteString(r.Name)
	builder.WriteString(" (")
	builder.WriteString(r.Kind.String())
	builder.WriteString(")")
	return builder.String()
}
