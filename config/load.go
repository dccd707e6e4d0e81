package config

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Load downloads options from the URL over the defaults, TOML is used for .toml extension, YAML otherwise
func Load(ctx context.Context, fs afs.Service, URL string) (*Options, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download config %v: %w", URL, err)
	}
	ret := Default()
	switch strings.ToLower(path.Ext(URL)) {
	case ".toml":
		if _, err = toml.Decode(string(data), ret); err != nil {
			return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
		}
	default:
		if err = yaml.Unmarshal(data, ret); err != nil {
			return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
		}
	}
	return ret, nil
}
