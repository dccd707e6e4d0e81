package repository

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

// Marker represents a file or directory marking a project root
type Marker struct {
	Name string
	Kind string
}

// DefaultMarkers lists project root markers checked in order within each directory
var DefaultMarkers = []*Marker{
	{Name: "go.mod", Kind: KindGo},
	{Name: "package.json", Kind: KindJavaScript},
	{Name: "tsconfig.json", Kind: KindJavaScript},
	{Name: ".git", Kind: KindGit},
}

// Detector identifies the project root used as first-party source root
type Detector struct {
	markers []*Marker
	fs      afs.Service
}

// New creates a detector, DefaultMarkers are used when none are supplied
func New(markers ...*Marker) *Detector {
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	return &Detector{markers: markers, fs: afs.New()}
}

// Detect searches up from the location for the closest project marker.
// Without a marker the location directory itself is returned with KindUnknown.
func (d *Detector) Detect(ctx context.Context, location string) (*Project, error) {
	absPath, err := filepath.Abs(location)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to detect project for %v: %w", location, err)
	}
	startDir := absPath
	if !info.IsDir() {
		startDir = filepath.Dir(absPath)
	}
	ret := &Project{Root: startDir, Kind: KindUnknown, Name: filepath.Base(startDir)}
	root, marker, err := d.findRoot(ctx, startDir)
	if err != nil {
		return nil, err
	}
	if marker != nil {
		ret.Root = root
		ret.Kind = marker.Kind
		ret.Name = filepath.Base(root)
		if err = d.describe(ctx, ret); err != nil {
			return nil, err
		}
	}
	if rel, err := filepath.Rel(ret.Root, absPath); err == nil {
		ret.RelativePath = filepath.ToSlash(rel)
	}
	return ret, nil
}

func (d *Detector) findRoot(ctx context.Context, dir string) (string, *Marker, error) {
	for {
		for _, marker := range d.markers {
			ok, err := d.fs.Exists(ctx, filepath.Join(dir, marker.Name))
			if err != nil {
				return "", nil, err
			}
			if ok {
				return dir, marker, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil, nil
		}
		dir = parent
	}
}

// describe fills project name, Go module and git origin from root files
func (d *Detector) describe(ctx context.Context, project *Project) error {
	switch project.Kind {
	case KindGo:
		location := filepath.Join(project.Root, "go.mod")
		content, err := d.fs.DownloadWithURL(ctx, location)
		if err != nil {
			return fmt.Errorf("failed to download %v: %w", location, err)
		}
		mod, err := modfile.ParseLax(location, content, nil)
		if err != nil {
			return fmt.Errorf("failed to parse %v: %w", location, err)
		}
		if mod.Module != nil {
			project.Module = mod.Module
			project.Name = mod.Module.Mod.Path
		}
	case KindJavaScript:
		if content, err := d.fs.DownloadWithURL(ctx, filepath.Join(project.Root, "package.json")); err == nil {
			aPackage := struct {
				Name string `json:"name"`
			}{}
			if json.Unmarshal(content, &aPackage) == nil && aPackage.Name != "" {
				project.Name = aPackage.Name
			}
		}
	}
	project.Origin = d.gitOrigin(ctx, project.Root)
	return nil
}

// gitOrigin returns remote origin URL from git config, empty if absent
func (d *Detector) gitOrigin(ctx context.Context, root string) string {
	content, err := d.fs.DownloadWithURL(ctx, filepath.Join(root, ".git", "config"))
	if err != nil {
		return ""
	}
	scanner := bufio.NewScanner(bytes.NewReader(content))
	inOrigin := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") {
			inOrigin = line == `[remote "origin"]`
			continue
		}
		if key, value, ok := strings.Cut(line, "="); inOrigin && ok && strings.TrimSpace(key) == "url" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
