package csvexport

import (
	"fmt"
	"strings"
)

// Header maps a column title to the lookup key in each row. Header order
// defines column order in the output.
type Header struct {
	Label string
	Key   string
}

// Row is a single export record. Missing or nil values render as the empty
// string, never as "nil".
type Row map[string]any

// Convert serializes rows into CSV text: one header line followed by one
// line per row, joined by "\n". Every field is wrapped in double quotes with
// inner quotes doubled. Unconditional quoting is simpler than RFC 4180
// conditional quoting but always valid for parsers that accept quoted fields.
// Returns the empty string when rows is empty.
func Convert(rows []Row, headers []Header) string {
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	cells := make([]string, len(headers))

	for i, h := range headers {
		cells[i] = quote(h.Label)
	}
	b.WriteString(strings.Join(cells, ","))

	for _, row := range rows {
		b.WriteByte('\n')
		for i, h := range headers {
			cells[i] = quote(cellValue(row[h.Key]))
		}
		b.WriteString(strings.Join(cells, ","))
	}

	return b.String()
}

func cellValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
