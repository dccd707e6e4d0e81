package reflection

import (
	"fmt"
	"sort"
)

const (
	// RootID is the registry key of the project root
	RootID = 0
	// NoParent marks the project root parent
	NoParent = -1
)

// Project represents the root container and registry of all reflections
type Project struct {
	*Reflection
	Directory string // Absolute directory relative source file paths resolve against
	registry  map[int]*Reflection
}

// NewProject creates an empty project
func NewProject(name string) *Project {
	return &Project{
		Reflection: &Reflection{ID: RootID, Kind: KindProject, Name: name, ParentID: NoParent},
		registry:   make(map[int]*Reflection),
	}
}

// Root returns the project root reflection
func (p *Project) Root() *Reflection {
	return p.Reflection
}

// Lookup returns registered reflection by ID
func (p *Project) Lookup(id int) *Reflection {
	if id == RootID {
		return p.Reflection
	}
	return p.registry[id]
}

// Contains returns true if reflection ID is registered
func (p *Project) Contains(id int) bool {
	_, ok := p.registry[id]
	return ok
}

// Len returns number of registered reflections (root excluded)
func (p *Project) Len() int {
	return len(p.registry)
}

// Parent returns reflection container or nil for the root
func (p *Project) Parent(r *Reflection) *Reflection {
	if r == nil || r.ParentID == NoParent {
		return nil
	}
	return p.Lookup(r.ParentID)
}

// CreateReflection creates, attaches and registers a new reflection
func (p *Project) CreateReflection(kind Kind, name string, parent *Reflection) *Reflection {
	if parent == nil {
		parent = p.Reflection
	}
	ret := &Reflection{ID: NextID(), Kind: kind, Name: name}
	p.AddChild(parent, ret)
	return ret
}

// AddChild appends child to parent children and registers child subtree
func (p *Project) AddChild(parent, child *Reflection) {
	child.ParentID = parent.ID
	parent.Children = append(parent.Children, child)
	p.register(child)
}

func (p *Project) register(r *Reflection) {
	p.registry[r.ID] = r
	for _, child := range r.Children {
		child.ParentID = r.ID
		p.register(child)
	}
}

// Detach removes reflection from its parent children, reflection stays registered
func (p *Project) Detach(r *Reflection) {
	if parent := p.Parent(r); parent != nil {
		parent.removeChild(r)
	}
}

// Attach moves reflection under the new parent
func (p *Project) Attach(r, parent *Reflection) {
	p.Detach(r)
	r.ParentID = parent.ID
	parent.Children = append(parent.Children, r)
	p.registry[r.ID] = r
}

// Remove detaches reflection and unregisters its whole subtree
func (p *Project) Remove(r *Reflection) {
	if r == nil || r == p.Reflection {
		return
	}
	p.Detach(r)
	p.unregister(r)
}

func (p *Project) unregister(r *Reflection) {
	delete(p.registry, r.ID)
	for _, child := range r.Children {
		p.unregister(child)
	}
}

// Walk visits reflections depth-first in publication order, returning false skips children
func (p *Project) Walk(visitor func(r *Reflection) bool) {
	walk(p.Reflection.Children, visitor)
}

func walk(reflections []*Reflection, visitor func(r *Reflection) bool) {
	for _, r := range reflections {
		if visitor(r) {
			walk(r.Children, visitor)
		}
	}
}

// Ancestor returns nearest ancestor (reflection itself excluded) having one of supplied kinds
func (p *Project) Ancestor(r *Reflection, kinds ...Kind) *Reflection {
	for parent := p.Parent(r); parent != nil; parent = p.Parent(parent) {
		if parent.Kind.Is(kinds...) {
			return parent
		}
	}
	return nil
}

// Reflections returns registered reflections ordered by ID
func (p *Project) Reflections() []*Reflection {
	result := make([]*Reflection, 0, len(p.registry))
	for _, r := range p.registry {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Validate checks structural invariants of the graph
func (p *Project) Validate() error {
	reachable := 0
	var err error
	var check func(parent *Reflection)
	check = func(parent *Reflection) {
		for _, child := range parent.Children {
			if err != nil {
				return
			}
			reachable++
			if registered := p.registry[child.ID]; registered != child {
				err = fmt.Errorf("%v[%d] is not registered", child, child.ID)
				return
			}
			if child.ParentID != parent.ID {
				err = fmt.Errorf("%v[%d] parent %d, but listed by %d", child, child.ID, child.ParentID, parent.ID)
				return
			}
			if child.Kind == KindCallSignature && parent.Kind.IsModule() {
				err = fmt.Errorf("%v[%d] is not owned by a declaration", child, child.ID)
				return
			}
			check(child)
		}
	}
	check(p.Reflection)
	if err != nil {
		return err
	}
	if reachable != len(p.registry) {
		return fmt.Errorf("registry has %d reflections, but %d are reachable", len(p.registry), reachable)
	}
	return nil
}
