package converter

import (
	"sort"

	"github.com/go-logr/logr"
	"github.com/viant/docgraph/reflection"
)

// Phase represents conversion cycle stage
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDeclaration
	PhaseResolve
	PhaseEnd
)

// Converter dispatches analyzer lifecycle events to registered plugins
type Converter struct {
	plugins        []Plugin
	typeConverters []TypeConverter
	logger         logr.Logger
	cycle          int
}

// Option represents converter option
type Option func(c *Converter)

// WithPlugins registers plugins, plugins are notified in registration order
func WithPlugins(plugins ...Plugin) Option {
	return func(c *Converter) {
		c.plugins = append(c.plugins, plugins...)
	}
}

// WithTypeConverters registers type converters
func WithTypeConverters(converters ...TypeConverter) Option {
	return func(c *Converter) {
		c.typeConverters = append(c.typeConverters, converters...)
	}
}

// WithLogger sets converter logger
func WithLogger(logger logr.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// New creates a converter
func New(options ...Option) *Converter {
	ret := &Converter{logger: logr.Discard()}
	for _, option := range options {
		option(ret)
	}
	ret.typeConverters = append(ret.typeConverters, defaultTypeConverters()...)
	// stable: earlier registration wins among equal priorities
	sort.SliceStable(ret.typeConverters, func(i, j int) bool {
		return ret.typeConverters[i].Priority() > ret.typeConverters[j].Priority()
	})
	return ret
}

// Plugins returns registered plugins
func (c *Converter) Plugins() []Plugin {
	return c.plugins
}

// Begin starts a new conversion cycle over the supplied project
func (c *Converter) Begin(project *reflection.Project) *Context {
	c.cycle++
	ctx := &Context{
		Project:   project,
		Logger:    c.logger.WithValues("cycle", c.cycle),
		converter: c,
		cycle:     c.cycle,
		phase:     PhaseDeclaration,
	}
	for _, plugin := range c.plugins {
		if handler, ok := plugin.(BeginHandler); ok {
			handler.Begin(ctx)
		}
	}
	return ctx
}

// DeclarationCreated notifies plugins about a new declaration reflection
func (c *Converter) DeclarationCreated(ctx *Context, r *reflection.Reflection, node SourceNode) {
	if !ctx.expect(PhaseDeclaration, "declarationCreated", r) {
		return
	}
	for _, plugin := range c.plugins {
		if handler, ok := plugin.(DeclarationHandler); ok {
			handler.DeclarationCreated(ctx, r, node)
		}
	}
}

// SignatureCreated notifies plugins about a new call signature reflection
func (c *Converter) SignatureCreated(ctx *Context, r *reflection.Reflection, node SourceNode) {
	if !ctx.expect(PhaseDeclaration, "signatureCreated", r) {
		return
	}
	for _, plugin := range c.plugins {
		if handler, ok := plugin.(SignatureHandler); ok {
			handler.SignatureCreated(ctx, r, node)
		}
	}
}

// ResolveBegin runs structural rewrites once all declarations exist
func (c *Converter) ResolveBegin(ctx *Context) {
	if !ctx.expect(PhaseDeclaration, "resolveBegin", nil) {
		return
	}
	ctx.phase = PhaseResolve
	ctx.bindReferences()
	for _, plugin := range c.plugins {
		if handler, ok := plugin.(ResolveHandler); ok {
			handler.ResolveBegin(ctx)
		}
	}
}

// End completes the cycle, it returns the first plugin error
func (c *Converter) End(ctx *Context) error {
	ctx.phase = PhaseEnd
	var result error
	for _, plugin := range c.plugins {
		handler, ok := plugin.(EndHandler)
		if !ok {
			continue
		}
		if err := handler.End(ctx); err != nil && result == nil {
			result = err
		}
	}
	return result
}
