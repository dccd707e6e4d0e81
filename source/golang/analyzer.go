package golang

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/docgraph/converter"
	"github.com/viant/docgraph/reflection"
	"github.com/viant/docgraph/source"
)

// Analyzer converts Go packages under the root directory into declarations
type Analyzer struct {
	root              string
	name              string
	includeUnexported bool
}

// Option represents analyzer option
type Option func(a *Analyzer)

// WithName sets project name, root directory base name by default
func WithName(name string) Option {
	return func(a *Analyzer) {
		if name != "" {
			a.name = name
		}
	}
}

// WithUnexported includes unexported identifiers
func WithUnexported(flag bool) Option {
	return func(a *Analyzer) {
		a.includeUnexported = flag
	}
}

// New creates Go analyzer for the root directory
func New(root string, options ...Option) *Analyzer {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	ret := &Analyzer{root: root, name: filepath.Base(root)}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Convert implements source.Analyzer
func (a *Analyzer) Convert(ctx context.Context, conv *converter.Converter) (*reflection.Project, error) {
	declarations, err := a.Declarations(ctx)
	if err != nil {
		return nil, err
	}
	project := reflection.NewProject(a.name)
	project.Directory = a.root
	return source.Replay(ctx, conv, project, declarations)
}

// Fingerprint implements source.Analyzer
func (a *Analyzer) Fingerprint(ctx context.Context) (uint64, error) {
	files, err := a.files()
	if err != nil {
		return 0, err
	}
	return files.Fingerprint(ctx)
}

// Declarations returns one ExternalModule declaration per package directory
func (a *Analyzer) Declarations(ctx context.Context) ([]*source.Declaration, error) {
	files, err := a.files()
	if err != nil {
		return nil, err
	}
	var result []*source.Declaration
	for _, dir := range files.Dirs() {
		aPackage := newPackage(files.Relative(dir))
		for _, file := range files.ByDir[dir] {
			src, err := os.ReadFile(file)
			if err != nil {
				return nil, fmt.Errorf("failed to read file %s: %w", file, err)
			}
			inspector := &fileInspector{pkg: aPackage, path: files.Relative(file), src: src, includeUnexported: a.includeUnexported}
			if err = inspector.inspect(ctx); err != nil {
				return nil, fmt.Errorf("failed to inspect file %s: %w", file, err)
			}
		}
		aPackage.resolve(a.includeUnexported)
		if aPackage.module.Name == "." {
			aPackage.module.Name = aPackage.name
		}
		result = append(result, aPackage.module)
	}
	return result, nil
}

func (a *Analyzer) files() (*source.Files, error) {
	return source.Collect(a.root, isSource)
}

func isSource(name string) bool {
	return strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go")
}
