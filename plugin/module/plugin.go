package module

import (
	"github.com/viant/docgraph/converter"
	"github.com/viant/docgraph/reflection"
)

// Plugin relocates and merges external modules according to @module directives.
//
// A directive "@module a.b.c" moves the module under the a/b container chain and names it c;
// when a sibling of the same kind named c already exists, the module content is merged into it.
// "@preferred" makes the merged module comment replace the target comment.
type Plugin struct {
	directives []*Directive
}

// New creates a module rename plugin
func New() *Plugin {
	return &Plugin{}
}

// Begin resets collected directives
func (p *Plugin) Begin(ctx *converter.Context) {
	p.directives = nil
}

// DeclarationCreated collects directive of a new external module
func (p *Plugin) DeclarationCreated(ctx *converter.Context, r *reflection.Reflection, node converter.SourceNode) {
	if r.Kind != reflection.KindExternalModule {
		return
	}
	text := ctx.RawComment(node)
	if text == "" {
		text = commentText(r.Comment)
	}
	target, preferred, ok := ParseDirective(text)
	if !ok {
		return
	}
	p.directives = append(p.directives, &Directive{TargetPath: target, Preferred: preferred, SourceID: r.ID})
	stripMarkers(r.Comment)
}

// Directives returns directives collected in the current cycle
func (p *Plugin) Directives() []*Directive {
	return p.directives
}

// ResolveBegin applies collected directives in discovery order
func (p *Plugin) ResolveBegin(ctx *converter.Context) {
	for _, directive := range p.directives {
		p.apply(ctx, directive)
	}
	p.directives = nil
}

func (p *Plugin) apply(ctx *converter.Context, directive *Directive) {
	project := ctx.Project
	source := project.Lookup(directive.SourceID)
	segments := directive.Segments()
	if source == nil || len(segments) == 0 {
		return
	}
	container := project.Root()
	last := len(segments) - 1
	for _, segment := range segments[:last] {
		next := container.ChildByName(segment, reflection.KindExternalModule, source)
		if next == nil {
			next = project.CreateReflection(reflection.KindExternalModule, segment, container)
		}
		container = next
	}
	name := segments[last]
	target := container.ChildByName(name, source.Kind, source)
	if target == nil {
		ctx.Logger.V(1).Info("renamed module", "from", source.Name, "to", directive.TargetPath)
		source.Name = name
		project.Attach(source, container)
		return
	}
	ctx.Logger.V(1).Info("merged module", "from", source.Name, "into", directive.TargetPath, "preferred", directive.Preferred)
	children := append([]*reflection.Reflection(nil), source.Children...)
	for _, child := range children {
		project.Attach(child, target)
	}
	if directive.Preferred {
		target.Comment = source.Comment.Clone()
	}
	source.Children = nil
	project.Remove(source)
	stripMarkers(target.Comment)
}
