package visibility

import (
	"regexp"
	"strings"

	"github.com/viant/docgraph/converter"
	"github.com/viant/docgraph/reflection"
)

// InternalTags mark a declaration as excluded from published output
var InternalTags = []string{"internal", "hidden", "ignore"}

// rawMarker matches an internal tag as a whole word in raw comment text
var rawMarker = regexp.MustCompile(`@(?:` + strings.Join(InternalTags, "|") + `)\b`)

var moduleLevelKinds = []reflection.Kind{
	reflection.KindEvent,
	reflection.KindFunction,
	reflection.KindMethod,
	reflection.KindEnum,
	reflection.KindVariable,
	reflection.KindClass,
	reflection.KindInterface,
	reflection.KindConstructor,
	reflection.KindProperty,
	reflection.KindAccessor,
	reflection.KindTypeAlias,
}

// raw comment markers are checked only for callables
var rawMarkerKinds = []reflection.Kind{
	reflection.KindFunction,
	reflection.KindMethod,
	reflection.KindConstructor,
}

// state holds per-cycle bookkeeping, it is replaced on every Begin
type state struct {
	seen         map[int]bool
	pending      map[int]bool
	pendingOrder []int
	documented   map[int]bool
	rawInternal  map[int]bool
	origin       *Origin
	queue        []int
	missing      []*Missing
}

func newState() *state {
	return &state{
		seen:        make(map[int]bool),
		pending:     make(map[int]bool),
		documented:  make(map[int]bool),
		rawInternal: make(map[int]bool),
	}
}

// Plugin removes internal and undocumented declarations and reports undocumented public API
type Plugin struct {
	origin *Origin
	strict bool
	state  *state
}

// Option represents plugin option
type Option func(p *Plugin)

// WithOrigin sets first-party origin classifier
func WithOrigin(origin *Origin) Option {
	return func(p *Plugin) {
		p.origin = origin
	}
}

// WithStrict controls whether missing documentation fails the cycle (default) or is only logged
func WithStrict(strict bool) Option {
	return func(p *Plugin) {
		p.strict = strict
	}
}

// New creates a visibility plugin
func New(options ...Option) *Plugin {
	ret := &Plugin{strict: true, state: newState()}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Begin resets per-cycle state, relative sources of the project resolve against its directory
func (p *Plugin) Begin(ctx *converter.Context) {
	p.state = newState()
	p.state.origin = p.origin.WithBase(ctx.Project.Directory)
}

// DeclarationCreated classifies a new declaration
func (p *Plugin) DeclarationCreated(ctx *converter.Context, r *reflection.Reflection, node converter.SourceNode) {
	p.visit(ctx, r, ctx.RawComment(node))
}

// SignatureCreated classifies a new call signature, the same way as declarations
func (p *Plugin) SignatureCreated(ctx *converter.Context, r *reflection.Reflection, node converter.SourceNode) {
	p.visit(ctx, r, ctx.RawComment(node))
}

func (p *Plugin) visit(ctx *converter.Context, r *reflection.Reflection, raw string) {
	project := ctx.Project
	module := project.Ancestor(r, reflection.KindExternalModule)
	if module != nil && !p.state.seen[module.ID] {
		p.state.seen[module.ID] = true
		p.state.pending[module.ID] = true
		p.state.pendingOrder = append(p.state.pendingOrder, module.ID)
	}
	if r.Kind.Is(rawMarkerKinds...) && hasRawMarker(raw) {
		p.state.rawInternal[r.ID] = true
	}
	if p.IsInternal(project, r) {
		p.state.queue = append(p.state.queue, r.ID)
		return
	}
	if !r.Kind.Is(moduleLevelKinds...) {
		return
	}
	if r.HasComment() || strings.TrimSpace(raw) != "" {
		p.state.documented[r.ID] = true
		if module != nil {
			delete(p.state.pending, module.ID)
		}
		return
	}
	p.state.queue = append(p.state.queue, r.ID)
	if r.Kind != reflection.KindVariable {
		p.state.missing = append(p.state.missing, newMissing(r))
	}
}

// IsInternal returns true if the reflection or any of its containers is internal.
// It is recomputed on every call since directives may reparent reflections.
func (p *Plugin) IsInternal(project *reflection.Project, r *reflection.Reflection) bool {
	for node := r; node != nil && node.Kind != reflection.KindProject; node = project.Parent(node) {
		if p.isOwnInternal(node) {
			return true
		}
	}
	return false
}

func (p *Plugin) isOwnInternal(r *reflection.Reflection) bool {
	switch {
	case strings.HasPrefix(r.Name, "_"):
		return true
	case r.Comment.HasTag(InternalTags...):
		return true
	case p.state.rawInternal[r.ID]:
		return true
	}
	return p.state.origin.IsExternal(r.Sources)
}

func hasRawMarker(raw string) bool {
	return raw != "" && rawMarker.MatchString(raw)
}

// ResolveBegin removes queued declarations and modules without documented members
func (p *Plugin) ResolveBegin(ctx *converter.Context) {
	project := ctx.Project
	for _, id := range p.state.queue {
		p.exclude(ctx, project.Lookup(id))
	}
	for _, id := range p.state.pendingOrder {
		if !p.state.pending[id] {
			continue
		}
		module := project.Lookup(id)
		if module == nil || p.hasDocumentedDescendant(module) {
			continue
		}
		p.exclude(ctx, module)
	}
	p.pruneEmptyModules(ctx, project.Root())
}

func (p *Plugin) exclude(ctx *converter.Context, r *reflection.Reflection) {
	project := ctx.Project
	// signatures are inseparable from their declaration
	for r != nil && r.Kind == reflection.KindCallSignature {
		r = project.Parent(r)
	}
	if r == nil || r.Kind == reflection.KindProject || !project.Contains(r.ID) {
		return
	}
	ctx.Logger.V(1).Info("excluded", "reflection", r.String(), "location", r.Location())
	project.Remove(r)
}

func (p *Plugin) hasDocumentedDescendant(r *reflection.Reflection) bool {
	for _, child := range r.Children {
		if p.state.documented[child.ID] || p.hasDocumentedDescendant(child) {
			return true
		}
	}
	return false
}

// pruneEmptyModules removes external modules left without children, bottom-up
func (p *Plugin) pruneEmptyModules(ctx *converter.Context, parent *reflection.Reflection) {
	children := append([]*reflection.Reflection(nil), parent.Children...)
	for _, child := range children {
		if child.Kind != reflection.KindExternalModule {
			continue
		}
		p.pruneEmptyModules(ctx, child)
		if len(child.Children) == 0 {
			p.exclude(ctx, child)
		}
	}
}

// End fails the cycle when public declarations lack documentation
func (p *Plugin) End(ctx *converter.Context) error {
	if len(p.state.missing) == 0 {
		return nil
	}
	err := NewMissingDocumentationError(p.state.missing)
	if p.strict {
		return err
	}
	for _, line := range err.Lines {
		ctx.Logger.Info("missing documentation", "declaration", line)
	}
	return nil
}
