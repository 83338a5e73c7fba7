package resource

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleManifest = `
version: 1
base: assets
textures:
  player: sprites/player.png
  tiles: sprites/tiles.png
fonts:
  ui: fonts/ui.ttf
sounds:
  jump: sfx/jump.wav
`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}
	want := Manifest{
		Version: 1,
		Base:    "assets",
		Textures: map[string]string{
			"player": "sprites/player.png",
			"tiles":  "sprites/tiles.png",
		},
		Fonts:  map[string]string{"ui": "fonts/ui.ttf"},
		Sounds: map[string]string{"jump": "sfx/jump.wav"},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("ParseManifest() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseManifestErrors(t *testing.T) {
	if _, err := ParseManifest(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("ParseManifest(nil) error = %v, want ErrEmptyData", err)
	}
	if _, err := ParseManifest([]byte("textures: [oops")); err == nil {
		t.Error("ParseManifest(invalid yaml) error = nil")
	}
	if _, err := ParseManifest([]byte("version: 99\n")); err == nil {
		t.Error("ParseManifest(future version) error = nil")
	}
}

func TestManifestDefaultsVersion(t *testing.T) {
	m, err := ParseManifest([]byte("files:\n  a: a.bin\n"))
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}
	if m.Version != ManifestVersion {
		t.Errorf("Version = %d, want %d", m.Version, ManifestVersion)
	}
}

func TestLoadManifestResolvesBase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "assets.yaml")
	if err := os.WriteFile(path, []byte(sampleManifest), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}
	if want := filepath.Join(dir, "assets"); m.Base != want {
		t.Errorf("Base = %q, want %q", m.Base, want)
	}

	fl := newFakeLoader()
	mgr := NewManager[string](fl.load)
	if n := Register(mgr, m, m.Textures); n != 2 {
		t.Fatalf("Register() = %d, want 2", n)
	}
	if _, err := mgr.Load("player"); err != nil {
		t.Fatalf("Load(player) error = %v", err)
	}
	if want := filepath.Join(dir, "assets", "sprites", "player.png"); fl.calls[want] != 1 {
		t.Errorf("loader calls = %v, want one call for %s", fl.calls, want)
	}
	if n := Register(mgr, m, m.Textures); n != 0 {
		t.Errorf("second Register() = %d, want 0", n)
	}
}

func TestManifestMarshalRoundTrip(t *testing.T) {
	m := Manifest{Files: map[string]string{"theme": "music/theme.ogg"}}
	data, err := m.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got, err := ParseManifest(data)
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}
	m.Version = ManifestVersion
	if diff := cmp.Diff(m, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
