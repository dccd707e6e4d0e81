package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viant/docgraph/reflection"
)

// Files represents analyzed source files grouped by directory
type Files struct {
	Root  string
	ByDir map[string][]string
}

// Dirs returns sorted directories
func (f *Files) Dirs() []string {
	ret := make([]string, 0, len(f.ByDir))
	for dir := range f.ByDir {
		ret = append(ret, dir)
	}
	sort.Strings(ret)
	return ret
}

// Relative returns slash separated path relative to the root
func (f *Files) Relative(path string) string {
	rel, err := filepath.Rel(f.Root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// Fingerprint hashes relative paths and contents of all files
func (f *Files) Fingerprint(ctx context.Context) (uint64, error) {
	hash, err := reflection.NewHash()
	if err != nil {
		return 0, err
	}
	for _, dir := range f.Dirs() {
		for _, file := range f.ByDir[dir] {
			if err = ctx.Err(); err != nil {
				return 0, err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return 0, fmt.Errorf("failed to read file %s: %w", file, err)
			}
			hash.Write([]byte(f.Relative(file)))
			hash.Write([]byte{0})
			hash.Write(data)
		}
	}
	return hash.Sum64(), nil
}

// Collect walks the root and groups matching files by directory, skipping hidden,
// underscore prefixed, testdata and the listed directories
func Collect(root string, match func(name string) bool, skipDirs ...string) (*Files, error) {
	ret := &Files{Root: root, ByDir: make(map[string][]string)}
	skip := map[string]bool{"testdata": true}
	for _, dir := range skipDirs {
		skip[dir] = true
	}
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := entry.Name()
		if entry.IsDir() {
			if path != root && (skip[name] || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !match(name) {
			return nil
		}
		dir := filepath.Dir(path)
		ret.ByDir[dir] = append(ret.ByDir[dir], path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	for _, files := range ret.ByDir {
		sort.Strings(files)
	}
	return ret, nil
}
