package templates

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ManifestFile is the optional manifest at the root of a template set.
const ManifestFile = "template.yaml"

//go:embed schema/template.schema.json
var schemaBytes []byte

var printer = message.NewPrinter(language.English)

// Manifest describes a template set.
type Manifest struct {
	Name           string `yaml:"name" json:"name"`
	Description    string `yaml:"description,omitempty" json:"description,omitempty"`
	Requires       string `yaml:"requires,omitempty" json:"requires,omitempty"`
	Implementation string `yaml:"implementation,omitempty" json:"implementation,omitempty"`
	Spec           string `yaml:"spec,omitempty" json:"spec,omitempty"`
}

// ValidationIssue is a single schema violation in a manifest.
type ValidationIssue struct {
	Path    string // Instance location, e.g. "/name"
	Message string
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ParseManifest validates data against the manifest schema and decodes it.
// Omitted file names fall back to the defaults.
func ParseManifest(data []byte) (*Manifest, error) {
	issues, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		msgs := make([]string, 0, len(issues))
		for _, issue := range issues {
			msgs = append(msgs, issue.String())
		}
		return nil, fmt.Errorf("invalid manifest: %s", strings.Join(msgs, "; "))
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if m.Implementation == "" {
		m.Implementation = defaultImplementation
	}
	if m.Spec == "" {
		m.Spec = defaultSpec
	}
	return &m, nil
}

// Validate checks raw manifest YAML against the embedded schema. The error
// return is for unparsable input; schema violations are returned as issues.
func Validate(data []byte) ([]ValidationIssue, error) {
	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	// Manifests are flat string mappings, so the decoded map marshals to JSON
	// as is.
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	var ve *jsonschema.ValidationError
	switch err := schema.Validate(inst); {
	case err == nil:
		return nil, nil
	case !errors.As(err, &ve):
		return nil, fmt.Errorf("validating manifest: %w", err)
	}

	issues := leafIssues(ve)
	if len(issues) == 0 {
		issues = []ValidationIssue{{Message: ve.Error()}}
	}
	return issues, nil
}

var loadSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	const url = "template.schema.json"

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema JSON: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	schema, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return schema, nil
})

// leafIssues flattens the error tree into its innermost causes.
func leafIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	if len(ve.Causes) == 0 {
		issue := ValidationIssue{}
		if len(ve.InstanceLocation) > 0 {
			issue.Path = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		if ve.ErrorKind != nil {
			issue.Message = ve.ErrorKind.LocalizedString(printer)
		}
		return []ValidationIssue{issue}
	}

	var issues []ValidationIssue
	for _, cause := range ve.Causes {
		issues = append(issues, leafIssues(cause)...)
	}
	return issues
}
