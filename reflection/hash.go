package reflection

import (
	"fmt"
	"hash"

	"github.com/minio/highwayhash"
	"gopkg.in/yaml.v3"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Fingerprint returns 64-bit highwayhash of the data
func Fingerprint(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// Fingerprint returns hash of the canonical YAML form of the graph
func (p *Project) Fingerprint() (uint64, error) {
	data, err := yaml.Marshal(p.Reflection)
	if err != nil {
		return 0, fmt.Errorf("failed to encode project %v: %w", p.Name, err)
	}
	return Fingerprint(data)
}

// NewHash returns streaming 64-bit highwayhash sharing the Fingerprint key
func NewHash() (hash.Hash64, error) {
	return highwayhash.New64(key)
}
