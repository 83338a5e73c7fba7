package resource

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gogpu/arc"
)

// Loader loads a resource from a file path.
type Loader[R any] func(path string) (R, error)

// Manager maps identifiers to files and lazily loaded resources.
//
// The two tables are independent: removing a file keeps an already loaded
// resource cached, and removing a resource keeps the file registered so the
// next Load reads it again.
type Manager[K comparable, R any] struct {
	load      Loader[R]
	files     map[K]string
	resources map[K]R
	opts      options
}

// NewManager creates a Manager that loads resources with load.
func NewManager[K comparable, R any](load Loader[R], opts ...Option) *Manager[K, R] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager[K, R]{
		load:      load,
		files:     make(map[K]string),
		resources: make(map[K]R),
		opts:      o,
	}
}

// AddFile registers path under id. It returns false, leaving the existing
// registration in place, if id is already registered.
func (m *Manager[K, R]) AddFile(id K, path string) bool {
	if _, ok := m.files[id]; ok {
		return false
	}
	m.files[id] = path
	return true
}

// RemoveFile unregisters id.
func (m *Manager[K, R]) RemoveFile(id K) {
	delete(m.files, id)
}

// File returns the path registered under id.
func (m *Manager[K, R]) File(id K) (string, bool) {
	p, ok := m.files[id]
	return p, ok
}

// ClearFiles unregisters every file.
func (m *Manager[K, R]) ClearFiles() {
	clear(m.files)
}

// Load returns the resource for id, loading and caching it on first use.
//
// An unregistered id yields ErrNotRegistered. A loader failure is returned
// wrapped and nothing is cached, so a later Load tries again.
func (m *Manager[K, R]) Load(id K) (R, error) {
	if r, ok := m.resources[id]; ok {
		arc.Logger().Debug("resource: cache hit", slog.Any("id", id))
		return r, nil
	}

	var zero R
	path, ok := m.files[id]
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrNotRegistered, id)
	}
	if m.load == nil {
		return zero, ErrNilLoader
	}

	full := m.resolve(path)
	r, err := m.load(full)
	if err != nil {
		arc.Logger().Warn("resource: load failed", slog.Any("id", id), slog.String("path", full), slog.Any("err", err))
		return zero, fmt.Errorf("resource: load %v: %w", id, err)
	}
	m.resources[id] = r
	arc.Logger().Debug("resource: loaded", slog.Any("id", id), slog.String("path", full))
	return r, nil
}

// MustLoad is like Load but panics on error.
// Use only when a missing resource is a programming mistake.
func (m *Manager[K, R]) MustLoad(id K) R {
	r, err := m.Load(id)
	if err != nil {
		panic(err)
	}
	return r
}

// Resource returns the cached resource for id without loading it.
func (m *Manager[K, R]) Resource(id K) (R, bool) {
	r, ok := m.resources[id]
	return r, ok
}

// RemoveResource drops the cached resource for id.
func (m *Manager[K, R]) RemoveResource(id K) {
	delete(m.resources, id)
}

// ClearResources drops every cached resource.
func (m *Manager[K, R]) ClearResources() {
	clear(m.resources)
}

// Clear unregisters every file and drops every cached resource.
func (m *Manager[K, R]) Clear() {
	m.ClearFiles()
	m.ClearResources()
}

// Len returns the number of registered files and loaded resources.
func (m *Manager[K, R]) Len() (files, loaded int) {
	return len(m.files), len(m.resources)
}

func (m *Manager[K, R]) resolve(path string) string {
	if m.opts.baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.opts.baseDir, path)
}
