package csvexport

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Saver is the file-save collaborator: the equivalent of a browser-mediated
// download in a headless host. Implementations persist the rendered bytes
// under the given filename.
type Saver interface {
	Save(ctx context.Context, data []byte, filename string) error
}

// utf8BOM helps spreadsheet applications recognize UTF-8 content.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileSaver writes exports into a local directory.
type FileSaver struct {
	dir string
	bom bool
}

// FileSaverOption configures a FileSaver.
type FileSaverOption func(*FileSaver)

// WithBOM prefixes saved files with a UTF-8 BOM for Excel compatibility.
func WithBOM() FileSaverOption {
	return func(s *FileSaver) {
		s.bom = true
	}
}

// NewFileSaver creates a saver writing into dir. The directory is created on
// first save if missing.
func NewFileSaver(dir string, opts ...FileSaverOption) *FileSaver {
	s := &FileSaver{dir: dir}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save writes data to dir/filename. Path components in filename are stripped
// to keep writes inside the target directory.
func (s *FileSaver) Save(ctx context.Context, data []byte, filename string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}

	name := sanitizeFilename(filename)
	content := data
	if s.bom {
		content = append(append([]byte{}, utf8BOM...), data...)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), content, 0o644); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}

// sanitizeFilename removes path components and NUL bytes from a filename to
// prevent traversal outside the target directory.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}
	return filename
}
