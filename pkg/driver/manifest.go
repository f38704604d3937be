package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is looked up in the working directory and its parents
// when no program path is given on the command line.
const ManifestFileName = "rinha.yml"

// ErrManifestNotFound reports that no rinha.yml exists between the start
// directory and the filesystem root.
var ErrManifestNotFound = errors.New("rinha.yml not found")

// Manifest describes a rinha project: a display name and the AST document to
// execute by default.
type Manifest struct {
	Name  string `yaml:"name"`
	Entry string `yaml:"entry"`

	// Path is where the manifest was loaded from; entry resolution is
	// relative to its directory.
	Path string `yaml:"-"`
}

// LoadManifest reads and decodes the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	var manifest Manifest
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&manifest); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	manifest.Path = abs
	return &manifest, nil
}

// FindManifest walks from dir toward the filesystem root looking for a
// rinha.yml, loading the first one found.
func FindManifest(dir string) (*Manifest, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for {
		candidate := filepath.Join(current, ManifestFileName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return LoadManifest(candidate)
		}
		parent := filepath.Dir(current)
		if parent == current {
			return nil, ErrManifestNotFound
		}
		current = parent
	}
}

// EntryPath resolves the manifest's entry relative to the manifest location.
func (m *Manifest) EntryPath() (string, error) {
	if m.Entry == "" {
		return "", fmt.Errorf("manifest %s does not name an entry", m.Path)
	}
	if filepath.IsAbs(m.Entry) {
		return m.Entry, nil
	}
	return filepath.Join(filepath.Dir(m.Path), m.Entry), nil
}
