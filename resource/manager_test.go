package resource

import (
	"errors"
	"path/filepath"
	"testing"
)

// fakeLoader counts load attempts per path.
type fakeLoader struct {
	calls map[string]int
	fail  map[string]error
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{calls: map[string]int{}, fail: map[string]error{}}
}

type fakeTexture struct{ path string }

func (f *fakeLoader) load(path string) (*fakeTexture, error) {
	f.calls[path]++
	if err := f.fail[path]; err != nil {
		return nil, err
	}
	return &fakeTexture{path: path}, nil
}

func TestLoadUnregistered(t *testing.T) {
	fl := newFakeLoader()
	m := NewManager[string](fl.load)

	_, err := m.Load("missing")
	if !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("Load(unregistered) error = %v, want ErrNotRegistered", err)
	}
	if len(fl.calls) != 0 {
		t.Errorf("loader called %v for an unregistered id", fl.calls)
	}
}

func TestLoadIsMemoised(t *testing.T) {
	fl := newFakeLoader()
	m := NewManager[string](fl.load)
	if !m.AddFile("hero", "hero.png") {
		t.Fatal("AddFile() = false for a new id")
	}

	first, err := m.Load("hero")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if fl.calls["hero.png"] != 1 {
		t.Fatalf("first Load: loader called %d times, want 1", fl.calls["hero.png"])
	}

	second, err := m.Load("hero")
	if err != nil {
		t.Fatalf("second Load() error = %v", err)
	}
	if second != first {
		t.Error("second Load returned a different instance")
	}
	if fl.calls["hero.png"] != 1 {
		t.Errorf("second Load: loader called %d times, want 1", fl.calls["hero.png"])
	}

	if r, ok := m.Resource("hero"); !ok || r != first {
		t.Error("Resource() did not return the cached instance")
	}
}

func TestLoadFailureNotCached(t *testing.T) {
	fl := newFakeLoader()
	wantErr := errors.New("decode failed")
	fl.fail["bad.png"] = wantErr

	m := NewManager[int](fl.load)
	m.AddFile(7, "bad.png")

	r, err := m.Load(7)
	if !errors.Is(err, wantErr) {
		t.Fatalf("Load() error = %v, want %v", err, wantErr)
	}
	if r != nil {
		t.Errorf("Load() resource = %v, want nil on failure", r)
	}
	if _, ok := m.Resource(7); ok {
		t.Error("failed load was cached")
	}

	delete(fl.fail, "bad.png")
	if _, err := m.Load(7); err != nil {
		t.Errorf("Load() after fixing the file: %v", err)
	}
	if fl.calls["bad.png"] != 2 {
		t.Errorf("loader called %d times, want 2", fl.calls["bad.png"])
	}
}

func TestAddFileKeepsFirstRegistration(t *testing.T) {
	m := NewManager[string](newFakeLoader().load)
	m.AddFile("a", "one.png")
	if m.AddFile("a", "two.png") {
		t.Error("AddFile() = true for a duplicate id")
	}
	if p, _ := m.File("a"); p != "one.png" {
		t.Errorf("File() = %q, want one.png", p)
	}
}

func TestRemoveAndClear(t *testing.T) {
	fl := newFakeLoader()
	m := NewManager[string](fl.load)
	m.AddFile("a", "a.png")
	m.AddFile("b", "b.png")
	_, _ = m.Load("a")

	m.RemoveFile("a")
	if _, ok := m.File("a"); ok {
		t.Error("RemoveFile() left the registration")
	}
	if _, err := m.Load("a"); err != nil {
		t.Errorf("cached resource should survive RemoveFile, got %v", err)
	}

	m.RemoveResource("a")
	if _, err := m.Load("a"); !errors.Is(err, ErrNotRegistered) {
		t.Errorf("Load() after RemoveFile+RemoveResource error = %v", err)
	}

	_, _ = m.Load("b")
	m.ClearResources()
	if _, loaded := m.Len(); loaded != 0 {
		t.Errorf("ClearResources left %d resources", loaded)
	}
	_, _ = m.Load("b")
	if fl.calls["b.png"] != 2 {
		t.Errorf("Load after ClearResources: loader called %d times, want 2", fl.calls["b.png"])
	}

	m.Clear()
	if files, loaded := m.Len(); files != 0 || loaded != 0 {
		t.Errorf("Clear() left files=%d loaded=%d", files, loaded)
	}
}

func TestWithBaseDir(t *testing.T) {
	fl := newFakeLoader()
	base := t.TempDir()
	m := NewManager[string](fl.load, WithBaseDir(base))
	m.AddFile("rel", "tiles.png")
	abs := filepath.Join(base, "abs.png")
	m.AddFile("abs", abs)

	_, _ = m.Load("rel")
	_, _ = m.Load("abs")
	if fl.calls[filepath.Join(base, "tiles.png")] != 1 {
		t.Errorf("relative path not resolved against base: %v", fl.calls)
	}
	if fl.calls[abs] != 1 {
		t.Errorf("absolute path changed: %v", fl.calls)
	}
}

func TestNilLoader(t *testing.T) {
	m := NewManager[string, int](nil)
	m.AddFile("x", "x")
	if _, err := m.Load("x"); !errors.Is(err, ErrNilLoader) {
		t.Errorf("Load() error = %v, want ErrNilLoader", err)
	}
}

func TestMustLoadPanics(t *testing.T) {
	m := NewManager[string](newFakeLoader().load)
	defer func() {
		if recover() == nil {
			t.Error("MustLoad() did not panic for an unregistered id")
		}
	}()
	m.MustLoad("nope")
}
