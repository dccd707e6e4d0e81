package pipeline

import (
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/docgraph/config"
	"github.com/viant/docgraph/source"
	"github.com/viant/docgraph/source/golang"
	"github.com/viant/docgraph/source/typescript"
)

// NewAnalyzer returns snapshot analyzer for .yaml and .yml input, otherwise source analyzer of the configured language
func NewAnalyzer(options *config.Options, fs afs.Service) source.Analyzer {
	switch strings.ToLower(path.Ext(options.Input)) {
	case ".yaml", ".yml":
		return source.NewSnapshot(options.Input, fs)
	}
	if strings.EqualFold(options.Language, config.LanguageTypeScript) {
		return typescript.New(options.Input, typescript.WithName(options.Name))
	}
	return golang.New(options.Input, golang.WithName(options.Name), golang.WithUnexported(options.IncludeUnexported))
}
