package typescript

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

// Analyzer converts TypeScript files under the root directory into declarations, one module per file
type Analyzer struct {
	root string
	name string
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

// New creates TypeScript analyzer for the root directory
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

// Declarations returns one ExternalModule declaration per source file named by its path without extension
func (a *Analyzer) Declarations(ctx context.Context) ([]*source.Declaration, error) {
	files, err := a.files()
	if err != nil {
		return nil, err
	}
	var result []*source.Declaration
	for _, dir := range files.Dirs() {
		for _, file := range files.ByDir[dir] {
			src, err := os.ReadFile(file)
			if err != nil {
				return nil, fmt.Errorf("failed to read file %s: %w", file, err)
			}
			inspector := newFileInspector(files.Relative(file), src)
			module, err := inspector.inspect(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to inspect file %s: %w", file, err)
			}
			result = append(result, module)
		}
	}
	source.LinkAliases(result)
	return result, nil
}

func (a *Analyzer) files() (*source.Files, error) {
	return source.Collect(a.root, isSource, "node_modules")
}

func isSource(name string) bool {
	if strings.HasSuffix(name, ".d.ts") || strings.Contains(name, ".test.") || strings.Contains(name, ".spec.") {
		return false
	}
	return strings.HasSuffix(name, ".ts") || strings.HasSuffix(name, ".tsx")
}

// moduleName returns file path without extension
func moduleName(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}
