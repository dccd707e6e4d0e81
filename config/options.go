package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/docgraph/plugin/typealias"
	"github.com/viant/docgraph/plugin/visibility"
	"github.com/viant/docgraph/render"
	"github.com/viant/docgraph/repository"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"

	LanguageGo         = "go"
	LanguageTypeScript = "typescript"
)

// Log represents logging options
type Log struct {
	Level  string `yaml:"level,omitempty" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format,omitempty" toml:"format"` // text or json
}

// Options represents documentation build options
type Options struct {
	Input             string            `yaml:"input" toml:"input"` // Source directory or YAML snapshot
	Name              string            `yaml:"name,omitempty" toml:"name"`
	Language          string            `yaml:"language,omitempty" toml:"language"`     // go or typescript, detected from input when empty
	SourceRoot        string            `yaml:"sourceRoot,omitempty" toml:"sourceRoot"` // First-party root, detected from input when empty
	ExternalPatterns  []string          `yaml:"externalPatterns,omitempty" toml:"externalPatterns"`
	Strict            bool              `yaml:"strict" toml:"strict"`
	IncludeUnexported bool              `yaml:"includeUnexported,omitempty" toml:"includeUnexported"`
	Output            string            `yaml:"output,omitempty" toml:"output"` // Manifest URL
	Mappings          []*render.Mapping `yaml:"mappings,omitempty" toml:"mappings"`
	Aliases           []string          `yaml:"aliases,omitempty" toml:"aliases"`
	Log               Log               `yaml:"log,omitempty" toml:"log"`
}

// Default returns options with default values
func Default() *Options {
	return &Options{
		Input:            ".",
		ExternalPatterns: append([]string{}, visibility.DefaultExternalPatterns...),
		Strict:           true,
		Output:           "docs/manifest.yaml",
		Mappings:         render.DefaultMappings(),
		Aliases:          append([]string{}, typealias.DefaultAliases...),
		Log:              Log{Level: "info", Format: LogFormatText},
	}
}

// Init resolves derived defaults: source root, project name and language come from the detected project
func (o *Options) Init(ctx context.Context, detector *repository.Detector) error {
	if o.Input == "" {
		o.Input = "."
	}
	if o.Log.Format == "" {
		o.Log.Format = LogFormatText
	}
	if o.SourceRoot != "" && o.Name != "" && o.Language != "" {
		return nil
	}
	location := o.Input
	if !isDirectory(location) {
		location = filepath.Dir(location)
	}
	project, err := detector.Detect(ctx, location)
	if err != nil {
		return fmt.Errorf("failed to detect project root: %w", err)
	}
	if o.SourceRoot == "" {
		o.SourceRoot = project.Root
	}
	if o.Name == "" {
		o.Name = project.Name
	}
	if o.Language == "" {
		o.Language = LanguageGo
		if project.Kind == repository.KindJavaScript {
			o.Language = LanguageTypeScript
		}
	}
	return nil
}

// Validate checks options consistency
func (o *Options) Validate() error {
	if o.Input == "" {
		return fmt.Errorf("input was empty")
	}
	switch strings.ToLower(o.Language) {
	case "", LanguageGo, LanguageTypeScript:
	default:
		return fmt.Errorf("unsupported language: %v", o.Language)
	}
	switch strings.ToLower(o.Log.Format) {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("unsupported log format: %v", o.Log.Format)
	}
	for i, mapping := range o.Mappings {
		if len(mapping.Kinds) == 0 || mapping.Directory == "" {
			return fmt.Errorf("invalid mapping[%d]: kinds and directory are required", i)
		}
	}
	return nil
}

func isDirectory(location string) bool {
	info, err := os.Stat(location)
	return err == nil && info.IsDir()
}
