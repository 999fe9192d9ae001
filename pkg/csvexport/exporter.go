package csvexport

import (
	"context"
	"strings"
)

// Exporter composes CSV conversion with a save collaborator.
type Exporter struct {
	saver Saver
}

// NewExporter creates an exporter saving through the given collaborator.
func NewExporter(saver Saver) (*Exporter, error) {
	if saver == nil {
		return nil, ErrNilSaver
	}
	return &Exporter{saver: saver}, nil
}

// Export converts rows to CSV and saves them under filename (".csv" is
// appended when absent). Empty input fails with ErrEmptyData before any side
// effect.
func (e *Exporter) Export(ctx context.Context, rows []Row, filename string, headers []Header) error {
	if len(rows) == 0 {
		return ErrEmptyData
	}

	content := Convert(rows, headers)
	return e.saver.Save(ctx, []byte(content), EnsureExtension(filename, ".csv"))
}

// EnsureExtension appends ext to filename unless already present
// (case-insensitive).
func EnsureExtension(filename, ext string) string {
	if strings.HasSuffix(strings.ToLower(filename), strings.ToLower(ext)) {
		return filename
	}
	return filename + ext
}
