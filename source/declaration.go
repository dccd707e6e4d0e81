package source

import (
	"context"
	"fmt"

	"github.com/viant/docgraph/converter"
	"github.com/viant/docgraph/reflection"
)

// Declaration represents a documentable entity discovered by an analyzer
type Declaration struct {
	Kind     reflection.Kind       `yaml:"kind"`
	Name     string                `yaml:"name"`
	Comment  string                `yaml:"comment,omitempty"` // Raw doc comment as written in source
	Sources  []*reflection.Source  `yaml:"sources,omitempty"`
	Type     *converter.SourceType `yaml:"type,omitempty"`
	URL      string                `yaml:"url,omitempty"`
	Children []*Declaration        `yaml:"children,omitempty"`
}

// RawComment returns source doc comment
func (d *Declaration) RawComment() string {
	return d.Comment
}

// Add appends child declarations
func (d *Declaration) Add(children ...*Declaration) {
	d.Children = append(d.Children, children...)
}

// Replay runs one conversion cycle over the project: it creates a reflection per declaration in
// depth-first order, emitting declaration and signature events, then resolve and end.
// The returned error is the end phase error, the project is returned either way.
func Replay(ctx context.Context, conv *converter.Converter, project *reflection.Project, declarations []*Declaration) (*reflection.Project, error) {
	cycle := conv.Begin(project)
	for _, declaration := range declarations {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("conversion of %v interrupted: %w", project.Name, err)
		}
		emit(cycle, conv, project.Root(), declaration)
	}
	conv.ResolveBegin(cycle)
	return project, conv.End(cycle)
}

func emit(cycle *converter.Context, conv *converter.Converter, parent *reflection.Reflection, declaration *Declaration) {
	r := cycle.Project.CreateReflection(declaration.Kind, declaration.Name, parent)
	r.Comment = reflection.ParseComment(declaration.Comment)
	r.Sources = declaration.Sources
	r.URL = declaration.URL
	if declaration.Type != nil {
		r.Type = cycle.ConvertTypeFor(r, declaration.Type)
	}
	if r.Kind == reflection.KindCallSignature {
		conv.SignatureCreated(cycle, r, declaration)
	} else {
		conv.DeclarationCreated(cycle, r, declaration)
	}
	for _, child := range declaration.Children {
		emit(cycle, conv, r, child)
	}
}

// LinkAliases sets the resolved union on references to union type aliases declared within
// the declarations. Alias declarations themselves and resolved targets are not visited.
func LinkAliases(declarations []*Declaration) {
	aliases := make(map[string]*converter.SourceType)
	walk(declarations, func(declaration *Declaration) {
		if declaration.Kind == reflection.KindTypeAlias && declaration.Type != nil && declaration.Type.Kind == converter.SourceUnion {
			aliases[declaration.Name] = declaration.Type
		}
	})
	if len(aliases) == 0 {
		return
	}
	walk(declarations, func(declaration *Declaration) {
		if declaration.Kind != reflection.KindTypeAlias {
			link(declaration.Type, aliases)
		}
	})
}

func walk(declarations []*Declaration, visitor func(declaration *Declaration)) {
	for _, declaration := range declarations {
		visitor(declaration)
		walk(declaration.Children, visitor)
	}
}

func link(sourceType *converter.SourceType, aliases map[string]*converter.SourceType) {
	if sourceType == nil {
		return
	}
	switch sourceType.Kind {
	case converter.SourceReference:
		if alias, ok := aliases[sourceType.Name]; ok && sourceType.Resolved == nil {
			sourceType.Resolved = alias
		}
		for _, argument := range sourceType.Arguments {
			link(argument, aliases)
		}
	case converter.SourceUnion:
		for _, member := range sourceType.Members {
			link(member, aliases)
		}
	case converter.SourceArray:
		link(sourceType.Element, aliases)
	}
}
