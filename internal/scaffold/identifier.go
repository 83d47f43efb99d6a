package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tinvalidate/create-validator/internal/render"
)

// Placeholder names bound for every generated module.
const (
	ParamGroup     = "group"
	ParamName      = "name"
	ParamNameUpper = "name_upper"
)

// Identifier names a scaffold target: Group is the directory (a country code),
// Name the module inside it (a TIN scheme).
type Identifier struct {
	Group string
	Name  string
}

// ParseIdentifier splits raw ("us/ein") into its two segments.
func ParseIdentifier(raw string) (Identifier, error) {
	parts := strings.Split(filepath.ToSlash(raw), "/")
	if len(parts) != 2 {
		return Identifier{}, fmt.Errorf("%w: got %q", ErrInvalidIdentifierShape, raw)
	}

	id := Identifier{Group: parts[0], Name: parts[1]}
	if !isSegment(id.Group) || !isSegment(id.Name) || strings.Contains(id.Group, `\`) {
		return Identifier{}, fmt.Errorf("%w: got %q", ErrInvalidIdentifierShape, raw)
	}

	if i := strings.IndexAny(id.Name, `.\`); i >= 0 {
		return Identifier{}, fmt.Errorf("%w: found %q in %q", ErrReservedCharacter, id.Name[i:i+1], id.Name)
	}
	return id, nil
}

// isSegment reports whether s can stand as one directory level.
func isSegment(s string) bool {
	return s != "" && s != "." && s != ".."
}

// String returns the identifier in its "group/name" form.
func (id Identifier) String() string {
	return id.Group + "/" + id.Name
}

// Params returns the placeholder bindings for id.
func (id Identifier) Params() render.Params {
	return render.Params{
		ParamGroup:     id.Group,
		ParamName:      id.Name,
		ParamNameUpper: cases.Upper(language.Und).String(id.Name),
	}
}
