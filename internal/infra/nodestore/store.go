// Package nodestore loads node collections from JSON or YAML files for the
// CLI. It is input loading only; the engines never write nodes back.
package nodestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shav/taskgrid/internal/domain"
)

// fileData is the node file structure.
type fileData struct {
	Nodes []domain.Node `json:"nodes" yaml:"nodes"`
}

// Store implements domain.NodeSource over a single node file. The format
// is chosen by extension: .yaml/.yml or .json.
type Store struct {
	path string
}

// Ensure Store implements domain.NodeSource.
var _ domain.NodeSource = (*Store)(nil)

// New creates a store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads all nodes from the file.
func (s *Store) Load() ([]domain.Node, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read nodes %s: %w", s.path, err)
	}

	var file fileData
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("decode nodes %s: %w", s.path, err)
		}
	default:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("decode nodes %s: %w", s.path, err)
		}
	}
	return file.Nodes, nil
}
