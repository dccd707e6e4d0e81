package pipeline

import (
	"github.com/go-logr/logr"
	"github.com/viant/docgraph/config"
	"github.com/viant/docgraph/converter"
	"github.com/viant/docgraph/plugin/visibility"
	"github.com/viant/docgraph/render"
)

// Option represents pipeline option
type Option func(p *Pipeline)

// WithLogger sets pipeline and converter logger
func WithLogger(logger logr.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithOrigin sets first-party root and external source patterns
func WithOrigin(root string, patterns ...string) Option {
	return func(p *Pipeline) {
		p.origin = visibility.NewOrigin(root, patterns...)
	}
}

// WithStrict controls whether undocumented declarations fail the cycle
func WithStrict(strict bool) Option {
	return func(p *Pipeline) {
		p.strict = strict
	}
}

// WithMappings sets kind to document mappings of the URL walk
func WithMappings(mappings ...*render.Mapping) Option {
	return func(p *Pipeline) {
		p.mappings = mappings
	}
}

// WithAliases sets alias names flattened into their union
func WithAliases(aliases ...string) Option {
	return func(p *Pipeline) {
		p.aliases = aliases
	}
}

// WithPlugins registers additional plugins notified after the built-in passes
func WithPlugins(plugins ...converter.Plugin) Option {
	return func(p *Pipeline) {
		p.plugins = append(p.plugins, plugins...)
	}
}

// WithOptions applies build options
func WithOptions(options *config.Options) Option {
	return func(p *Pipeline) {
		WithOrigin(options.SourceRoot, options.ExternalPatterns...)(p)
		WithStrict(options.Strict)(p)
		WithMappings(options.Mappings...)(p)
		WithAliases(options.Aliases...)(p)
	}
}
