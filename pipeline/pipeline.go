package pipeline

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/viant/docgraph/converter"
	"github.com/viant/docgraph/plugin/module"
	"github.com/viant/docgraph/plugin/typealias"
	"github.com/viant/docgraph/plugin/visibility"
	"github.com/viant/docgraph/reflection"
	"github.com/viant/docgraph/render"
	"github.com/viant/docgraph/source"
)

// Result represents published graph of one completed cycle
type Result struct {
	Project     *reflection.Project
	URLs        []*render.URLMapping
	Fingerprint uint64
}

// Pipeline converts analyzer output into the published graph
type Pipeline struct {
	logger     logr.Logger
	origin     *visibility.Origin
	strict     bool
	mappings   []*render.Mapping
	aliases    []string
	plugins    []converter.Plugin
	modules    *module.Plugin
	visibility *visibility.Plugin
	converter  *converter.Converter
}

// New creates a pipeline with the module rename, visibility and alias flattening passes
func New(options ...Option) *Pipeline {
	ret := &Pipeline{logger: logr.Discard(), strict: true}
	for _, option := range options {
		option(ret)
	}
	ret.modules = module.New()
	ret.visibility = visibility.New(visibility.WithOrigin(ret.origin), visibility.WithStrict(ret.strict))
	plugins := append([]converter.Plugin{ret.modules, ret.visibility}, ret.plugins...)
	ret.converter = converter.New(
		converter.WithLogger(ret.logger),
		converter.WithPlugins(plugins...),
		converter.WithTypeConverters(typealias.New(ret.aliases...)),
	)
	return ret
}

// Converter returns underlying converter
func (p *Pipeline) Converter() *converter.Converter {
	return p.converter
}

// Run executes one conversion cycle and assigns URLs to the published graph.
// A missing documentation failure is returned together with the resolved graph.
func (p *Pipeline) Run(ctx context.Context, analyzer source.Analyzer) (*Result, error) {
	project, err := analyzer.Convert(ctx, p.converter)
	if project == nil {
		return nil, err
	}
	ret := &Result{Project: project}
	if err != nil {
		return ret, err
	}
	if err = project.Validate(); err != nil {
		return nil, fmt.Errorf("invalid graph %v: %w", project.Name, err)
	}
	ret.URLs = render.AssignURLs(project, p.mappings...)
	if ret.Fingerprint, err = project.Fingerprint(); err != nil {
		return nil, err
	}
	p.logger.V(1).Info("cycle completed", "project", project.Name, "reflections", project.Len(), "documents", len(ret.URLs))
	return ret, nil
}
