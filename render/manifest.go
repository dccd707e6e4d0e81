package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/docgraph/reflection"
	"gopkg.in/yaml.v3"
)

// Anchor represents a reflection rendered within its container document
type Anchor struct {
	URL          string          `yaml:"url"`
	ReflectionID int             `yaml:"id"`
	Name         string          `yaml:"name"`
	Kind         reflection.Kind `yaml:"kind"`
	Document     string          `yaml:"document"`
}

// Manifest lists documents and anchors of the published graph for the renderer
type Manifest struct {
	Project     string        `yaml:"project"`
	Fingerprint uint64        `yaml:"fingerprint"`
	Pages       []*URLMapping `yaml:"pages"`
	Anchors     []*Anchor     `yaml:"anchors,omitempty"`
}

// NewManifest builds manifest from the project with assigned URLs
func NewManifest(project *reflection.Project, pages []*URLMapping) (*Manifest, error) {
	fingerprint, err := project.Fingerprint()
	if err != nil {
		return nil, err
	}
	ret := &Manifest{Project: project.Name, Fingerprint: fingerprint, Pages: pages}
	project.Walk(func(r *reflection.Reflection) bool {
		if r.URL != "" && !r.HasOwnDocument {
			ret.Anchors = append(ret.Anchors, &Anchor{
				URL:          r.URL,
				ReflectionID: r.ID,
				Name:         r.Name,
				Kind:         r.Kind,
				Document:     documentURL(r),
			})
		}
		return true
	})
	return ret, nil
}

// Write uploads manifest as YAML to the destination URL
func (m *Manifest) Write(ctx context.Context, fs afs.Service, URL string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err = fs.Upload(ctx, URL, 0644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload manifest %v: %w", URL, err)
	}
	return nil
}

// LoadManifest downloads manifest from the URL
func LoadManifest(ctx context.Context, fs afs.Service, URL string) (*Manifest, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download manifest %v: %w", URL, err)
	}
	ret := &Manifest{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode manifest %v: %w", URL, err)
	}
	return ret, nil
}
