package resource

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/arc"
	"gopkg.in/yaml.v3"
)

// ManifestVersion is the manifest format version written by this package.
const ManifestVersion = 1

// Manifest lists resource files by kind. It is usually read from YAML:
//
//	version: 1
//	base: assets
//	textures:
//	  player: sprites/player.png
//	  tiles: sprites/tiles.png
//	fonts:
//	  ui: fonts/ui.ttf
//	sounds:
//	  jump: sfx/jump.wav
//	files:
//	  theme: music/theme.ogg
//
// Sounds are decoded whole by LoadSound; long tracks belong under files
// and are streamed with OpenMusic.
type Manifest struct {
	Version  int               `yaml:"version"`
	Base     string            `yaml:"base,omitempty"`
	Textures map[string]string `yaml:"textures,omitempty"`
	Fonts    map[string]string `yaml:"fonts,omitempty"`
	Sounds   map[string]string `yaml:"sounds,omitempty"`
	Files    map[string]string `yaml:"files,omitempty"`
}

func (m *Manifest) normalize() {
	if m.Version == 0 {
		m.Version = ManifestVersion
	}
}

// ParseManifest decodes a YAML manifest.
func ParseManifest(data []byte) (Manifest, error) {
	if len(data) == 0 {
		return Manifest{}, ErrEmptyData
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("resource: parse manifest: %w", err)
	}
	if m.Version > ManifestVersion {
		return Manifest{}, fmt.Errorf("resource: unsupported manifest version %d", m.Version)
	}
	m.normalize()
	return m, nil
}

// LoadManifest reads a YAML manifest from disk. A relative Base (or an
// empty one) is resolved against the manifest's own directory so the
// manifest can be moved together with its assets.
func LoadManifest(path string) (Manifest, error) {
	// #nosec G304 -- manifest path is provided by the application
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("resource: read manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return Manifest{}, err
	}
	if !filepath.IsAbs(m.Base) {
		m.Base = filepath.Join(filepath.Dir(path), m.Base)
	}
	return m, nil
}

// Path resolves a manifest entry against Base.
func (m Manifest) Path(file string) string {
	if m.Base == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(m.Base, file)
}

// Marshal encodes the manifest as YAML.
func (m Manifest) Marshal() ([]byte, error) {
	m.normalize()
	out, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("resource: encode manifest: %w", err)
	}
	return out, nil
}

// Register adds every entry of files to mgr, resolving paths against the
// manifest's Base. Identifiers already registered are left untouched. It
// returns the number of entries added.
func Register[R any](mgr *Manager[string, R], m Manifest, files map[string]string) int {
	added := 0
	for id, file := range files {
		if mgr.AddFile(id, m.Path(file)) {
			added++
		}
	}
	arc.Logger().Info("resource: manifest registered", slog.Int("added", added), slog.Int("entries", len(files)))
	return added
}
