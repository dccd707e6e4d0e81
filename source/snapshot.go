package source

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/docgraph/converter"
	"github.com/viant/docgraph/reflection"
	"gopkg.in/yaml.v3"
)

// Document represents a serialized declaration tree
type Document struct {
	Name         string         `yaml:"name"`
	Declarations []*Declaration `yaml:"declarations"`
}

// Snapshot replays a YAML declaration tree as conversion events
type Snapshot struct {
	URL string
	fs  afs.Service
}

// Load downloads and decodes the snapshot document
func (s *Snapshot) Load(ctx context.Context) (*Document, error) {
	data, err := s.fs.DownloadWithURL(ctx, s.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download snapshot %v: %w", s.URL, err)
	}
	ret := &Document{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %v: %w", s.URL, err)
	}
	if ret.Name == "" {
		ret.Name = "project"
	}
	return ret, nil
}

// Convert implements Analyzer
func (s *Snapshot) Convert(ctx context.Context, conv *converter.Converter) (*reflection.Project, error) {
	document, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	project := reflection.NewProject(document.Name)
	project.Directory = s.directory()
	return Replay(ctx, conv, project, document.Declarations)
}

// directory returns absolute directory of a local snapshot, snapshot source paths are relative to it
func (s *Snapshot) directory() string {
	if url.Scheme(s.URL, file.Scheme) != file.Scheme {
		return ""
	}
	location := filepath.Dir(url.Path(s.URL))
	if abs, err := filepath.Abs(location); err == nil {
		return abs
	}
	return location
}

// Fingerprint implements Analyzer
func (s *Snapshot) Fingerprint(ctx context.Context) (uint64, error) {
	data, err := s.fs.DownloadWithURL(ctx, s.URL)
	if err != nil {
		return 0, fmt.Errorf("failed to download snapshot %v: %w", s.URL, err)
	}
	return reflection.Fingerprint(data)
}

// NewSnapshot creates snapshot analyzer for the URL
func NewSnapshot(URL string, fs afs.Service) *Snapshot {
	if fs == nil {
		fs = afs.New()
	}
	return &Snapshot{URL: URL, fs: fs}
}
