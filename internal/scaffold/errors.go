package scaffold

import "errors"

var (
	// ErrInvalidIdentifierShape means the identifier is not exactly two
	// non-empty path segments.
	ErrInvalidIdentifierShape = errors.New("expected path should be COUNTRY/TIN")

	// ErrReservedCharacter means the leaf segment holds a character reserved
	// for paths or file extensions.
	ErrReservedCharacter = errors.New("reserved character in TIN name")

	// ErrTemplateUnavailable means the template set could not be loaded.
	ErrTemplateUnavailable = errors.New("templates unavailable")

	// ErrDestinationExists means a file to be generated is already present.
	ErrDestinationExists = errors.New("destination exists")
)
