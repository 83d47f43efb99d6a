package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/tinvalidate/create-validator/internal/render"
	"github.com/tinvalidate/create-validator/internal/templates"
)

// File names produced inside a group directory.
const (
	ImplementationExt = ".ts"
	SpecExt           = ".spec.ts"
	IndexFile         = "index.ts"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// TemplateSource supplies the implementation and spec templates.
type TemplateSource interface {
	Load() (*templates.Set, error)
}

// Result holds the outcome of a successful Materialize.
type Result struct {
	Identifier Identifier
	Dir        string
	Files      []string
	Index      string
	Warnings   []string
}

// Materializer writes validator skeletons below a root directory.
type Materializer struct {
	fs        afero.Fs
	root      string
	templates TemplateSource
	logger    *log.Logger
}

// Option configures a Materializer.
type Option func(*Materializer)

// WithLogger sets the logger used for side-effect diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(m *Materializer) { m.logger = l }
}

// New creates a Materializer writing below root on afs. root must already
// exist; only the group directory beneath it is ever created.
func New(afs afero.Fs, root string, src TemplateSource, opts ...Option) *Materializer {
	m := &Materializer{
		fs:        afs,
		root:      root,
		templates: src,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type target struct {
	kind string
	path string
	tmpl templates.File
}

// Materialize generates <root>/<group>/<name>.ts and <name>.spec.ts for the
// identifier raw and appends an export line to <root>/<group>/index.ts.
//
// Steps run in order and the first failure stops the run. A failure after a
// file has been written is not rolled back, except that the implementation
// file is removed if the spec file could not be created.
func (m *Materializer) Materialize(raw string) (*Result, error) {
	id, err := ParseIdentifier(raw)
	if err != nil {
		return nil, err
	}

	set, err := m.templates.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateUnavailable, err)
	}

	dir := filepath.Join(m.root, id.Group)
	if err := m.ensureDir(dir); err != nil {
		return nil, err
	}

	targets := []target{
		{kind: "implementation", path: filepath.Join(dir, id.Name+ImplementationExt), tmpl: set.Implementation},
		{kind: "spec", path: filepath.Join(dir, id.Name+SpecExt), tmpl: set.Spec},
	}

	// Both destinations are checked before anything is written so that a
	// collision never leaves half a pair behind.
	for _, t := range targets {
		if err := m.checkFree(t); err != nil {
			return nil, err
		}
	}

	params := id.Params()
	result := &Result{
		Identifier: id,
		Dir:        dir,
		Index:      filepath.Join(dir, IndexFile),
	}

	for _, t := range targets {
		for _, name := range render.Unknown(t.tmpl.Text, params) {
			m.logger.Warn("unknown placeholder renders empty", "template", t.tmpl.Name, "placeholder", name)
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: unknown placeholder %q rendered as empty", t.tmpl.Name, name))
		}
	}

	for _, t := range targets {
		if err := m.writeExclusive(t, render.Render(t.tmpl.Text, params)); err != nil {
			m.rollback(result.Files)
			return nil, err
		}
		result.Files = append(result.Files, t.path)
	}

	if err := m.appendIndex(result.Index, id); err != nil {
		return nil, err
	}

	return result, nil
}

// ensureDir creates dir one level deep. An existing directory is fine.
func (m *Materializer) ensureDir(dir string) error {
	err := m.fs.Mkdir(dir, dirPerm)
	if err == nil {
		m.logger.Debug("created directory", "path", dir)
		return nil
	}
	if !errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	info, statErr := m.fs.Stat(dir)
	if statErr != nil {
		return fmt.Errorf("checking directory %s: %w", dir, statErr)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists and is not a directory", dir)
	}
	return nil
}

func (m *Materializer) checkFree(t target) error {
	_, err := m.fs.Stat(t.path)
	if err == nil {
		return fmt.Errorf("%w: %s file %s", ErrDestinationExists, t.kind, t.path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", t.path, err)
	}
	return nil
}

// writeExclusive creates t.path and fails if it already exists, which also
// covers a file appearing after checkFree ran.
func (m *Materializer) writeExclusive(t target, content string) error {
	f, err := m.fs.OpenFile(t.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s file %s", ErrDestinationExists, t.kind, t.path)
	}
	if err != nil {
		return fmt.Errorf("creating %s: %w", t.path, err)
	}

	// This run created the file, so a failed write takes it out again.
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		m.rollback([]string{t.path})
		return fmt.Errorf("writing %s: %w", t.path, err)
	}
	if err := f.Close(); err != nil {
		m.rollback([]string{t.path})
		return fmt.Errorf("closing %s: %w", t.path, err)
	}

	m.logger.Debug("wrote file", "path", t.path, "template", t.tmpl.Name)
	return nil
}

// rollback removes files created earlier in the same run.
func (m *Materializer) rollback(paths []string) {
	for _, p := range paths {
		if err := m.fs.Remove(p); err != nil {
			m.logger.Error("removing partial output", "path", p, "error", err)
			continue
		}
		m.logger.Debug("removed partial output", "path", p)
	}
}
