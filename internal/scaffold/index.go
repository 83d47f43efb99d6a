package scaffold

import (
	"fmt"
	"os"
)

// IndexLine returns the barrel export registering id.
func IndexLine(id Identifier) string {
	return fmt.Sprintf("export * as %s from './%s';\n", id.Name, id.Name)
}

// appendIndex adds id's export line to the index file, creating it if needed.
// Existing lines are left as they are.
func (m *Materializer) appendIndex(path string, id Identifier) error {
	f, err := m.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, filePerm)
	if err != nil {
		return fmt.Errorf("opening index %s: %w", path, err)
	}

	if _, err := f.WriteString(IndexLine(id)); err != nil {
		f.Close()
		return fmt.Errorf("appending to index %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing index %s: %w", path, err)
	}

	m.logger.Debug("registered module", "index", path, "module", id.Name)
	return nil
}
