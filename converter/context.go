package converter

import (
	"github.com/go-logr/logr"
	"github.com/viant/docgraph/reflection"
)

// referenceKinds lists kinds a type reference can target
var referenceKinds = []reflection.Kind{reflection.KindClass, reflection.KindInterface, reflection.KindEnum, reflection.KindTypeAlias}

// reference represents a converted type reference waiting for its target
type reference struct {
	owner  *reflection.Reflection
	target *reflection.ReferenceType
}

// Context represents a single conversion cycle
type Context struct {
	Project    *reflection.Project
	Logger     logr.Logger
	converter  *Converter
	cycle      int
	phase      Phase
	owner      *reflection.Reflection
	references []*reference
}

// Cycle returns conversion cycle sequence number
func (c *Context) Cycle() int {
	return c.cycle
}

// Phase returns current cycle phase
func (c *Context) Phase() Phase {
	return c.phase
}

// RawComment returns unprocessed comment of the source node, or empty string
func (c *Context) RawComment(node SourceNode) string {
	if node == nil {
		return ""
	}
	return node.RawComment()
}

// ConvertType converts analyzer type with the highest priority supporting converter
func (c *Context) ConvertType(sourceType *SourceType) reflection.Type {
	if sourceType == nil {
		return nil
	}
	for _, candidate := range c.converter.typeConverters {
		if candidate.Supports(sourceType) {
			return candidate.Convert(c, sourceType)
		}
	}
	return &reflection.IntrinsicType{Name: "unknown"}
}

// ConvertTypeFor converts the type of the owner reflection, references are bound within the owner module
func (c *Context) ConvertTypeFor(owner *reflection.Reflection, sourceType *SourceType) reflection.Type {
	previous := c.owner
	c.owner = owner
	defer func() { c.owner = previous }()
	return c.ConvertType(sourceType)
}

// AddReference registers a reference to bind once all declarations exist
func (c *Context) AddReference(target *reflection.ReferenceType) {
	c.references = append(c.references, &reference{owner: c.owner, target: target})
}

// bindReferences sets reference targets from a single name index of the project.
// A declaration in the owner module wins, otherwise the only declaration with the name.
func (c *Context) bindReferences() {
	if c.Project == nil || len(c.references) == 0 {
		return
	}
	index := make(map[string][]*reflection.Reflection)
	c.Project.Walk(func(r *reflection.Reflection) bool {
		if r.Kind.Is(referenceKinds...) {
			index[r.Name] = append(index[r.Name], r)
		}
		return true
	})
	for _, item := range c.references {
		candidates := index[item.target.Name]
		if len(candidates) == 0 {
			continue
		}
		if len(candidates) == 1 {
			item.target.ReflectionID = candidates[0].ID
			continue
		}
		if item.owner == nil {
			continue
		}
		module := c.module(item.owner)
		for _, candidate := range candidates {
			if c.module(candidate) == module {
				item.target.ReflectionID = candidate.ID
				break
			}
		}
	}
	c.references = nil
}

func (c *Context) module(r *reflection.Reflection) *reflection.Reflection {
	if r.Kind.IsModule() {
		return r
	}
	return c.Project.Ancestor(r, reflection.KindModule, reflection.KindExternalModule)
}

func (c *Context) expect(phase Phase, event string, r *reflection.Reflection) bool {
	if c.phase == phase {
		return true
	}
	values := []interface{}{"event", event, "phase", c.phase}
	if r != nil {
		values = append(values, "reflection", r.String())
	}
	c.Logger.Info("ignored out of phase event", values...)
	return false
}
