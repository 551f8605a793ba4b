package snowdata

import (
	"context"
	"fmt"
	"os"
)

// Provider supplies the data shown by every screen. Implementations are
// read-only: the screens never write back.
type Provider interface {
	// Snapshot returns the current data set.
	Snapshot(ctx context.Context) (*Snapshot, error)

	// Name identifies the data source in logs.
	Name() string
}

// StaticProvider serves the built-in snapshot.
type StaticProvider struct{}

var _ Provider = StaticProvider{}

// NewStaticProvider creates a provider backed by Default().
func NewStaticProvider() StaticProvider {
	return StaticProvider{}
}

func (StaticProvider) Snapshot(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Default(), nil
}

func (StaticProvider) Name() string {
	return "builtin"
}

// FileProvider serves a snapshot read from a JSON file. The file is read on
// every call so edits show up on the next launch of a screen.
type FileProvider struct {
	path string
}

var _ Provider = (*FileProvider)(nil)

// NewFileProvider creates a provider for the JSON snapshot at path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Snapshot(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	snap, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.path, err)
	}
	return snap, nil
}

func (p *FileProvider) Name() string {
	return "file:" + p.path
}

// NewProvider returns a FileProvider when path is set and the built-in
// provider otherwise.
func NewProvider(path string) Provider {
	if path == "" {
		return NewStaticProvider()
	}
	return NewFileProvider(path)
}
