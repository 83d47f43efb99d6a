package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"
)

//go:embed tmpl
var embeddedFS embed.FS

const (
	embeddedRoot = "tmpl"

	// SourceEmbedded is the Source of the set compiled into the binary.
	SourceEmbedded = "embedded"

	defaultName           = "default"
	defaultImplementation = "tin.ts"
	defaultSpec           = "tin.spec.ts"
)

// File is one loaded template.
type File struct {
	Name string
	Text string
}

// Set is a loaded template set.
type Set struct {
	Source         string
	Manifest       Manifest
	Implementation File
	Spec           File
}

// Loader reads a template set from a file system.
type Loader struct {
	fsys    fs.FS
	source  string
	version string
}

// Embedded returns a Loader for the set compiled into the binary. version is
// the running tool version, checked against the manifest's requires field.
func Embedded(version string) *Loader {
	sub, err := fs.Sub(embeddedFS, embeddedRoot)
	if err != nil {
		// Only reachable if the embed directive and embeddedRoot disagree.
		panic(fmt.Sprintf("embedded templates: %v", err))
	}
	return &Loader{fsys: sub, source: SourceEmbedded, version: version}
}

// Dir returns a Loader for a template directory on afs.
func Dir(afs afero.Fs, dir, version string) *Loader {
	return &Loader{
		fsys:    afero.NewIOFS(afero.NewBasePathFs(afs, dir)),
		source:  dir,
		version: version,
	}
}

// Source describes where the loader reads from.
func (l *Loader) Source() string {
	return l.source
}

// Load reads the manifest (if any) and both template files.
func (l *Loader) Load() (*Set, error) {
	m, err := l.loadManifest()
	if err != nil {
		return nil, err
	}

	if err := checkRequires(m, l.version); err != nil {
		return nil, err
	}

	impl, err := l.readTemplate(m.Implementation)
	if err != nil {
		return nil, err
	}
	spec, err := l.readTemplate(m.Spec)
	if err != nil {
		return nil, err
	}

	return &Set{
		Source:         l.source,
		Manifest:       *m,
		Implementation: impl,
		Spec:           spec,
	}, nil
}

// loadManifest reads template.yaml, falling back to the default file names
// when the set has no manifest.
func (l *Loader) loadManifest() (*Manifest, error) {
	data, err := fs.ReadFile(l.fsys, ManifestFile)
	if errors.Is(err, fs.ErrNotExist) {
		return &Manifest{
			Name:           defaultName,
			Implementation: defaultImplementation,
			Spec:           defaultSpec,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s from %s: %w", ManifestFile, l.source, err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s in %s: %w", ManifestFile, l.source, err)
	}
	return m, nil
}

func (l *Loader) readTemplate(name string) (File, error) {
	if !fs.ValidPath(name) {
		return File{}, fmt.Errorf("invalid template path %q in %s", name, l.source)
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return File{}, fmt.Errorf("reading template %s from %s: %w", name, l.source, err)
	}
	return File{Name: name, Text: string(data)}, nil
}

// checkRequires enforces the manifest's tool version constraint. Versions
// that are not semver (local "dev" builds) are not checked, and prerelease or
// git-describe versions are compared by their major.minor.patch core.
func checkRequires(m *Manifest, version string) error {
	if m.Requires == "" {
		return nil
	}

	c, err := semver.NewConstraint(m.Requires)
	if err != nil {
		return fmt.Errorf("template set %q: invalid requires constraint %q: %w", m.Name, m.Requires, err)
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return nil
	}

	core := semver.New(v.Major(), v.Minor(), v.Patch(), "", "")
	if !c.Check(core) {
		return fmt.Errorf("template set %q requires tool version %s, running %s", m.Name, m.Requires, v)
	}
	return nil
}
