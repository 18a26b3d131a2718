// Package export serializes flat records to CSV for the admin dashboard
// download buttons.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoData is returned when there are no rows to export.
var ErrNoData = errors.New("no data to export")

// bom is prefixed to the output so spreadsheet tools detect UTF-8.
const bom = "\xEF\xBB\xBF"

// Row is a flat record that remembers the order its keys were first set in.
type Row struct {
	keys   []string
	values map[string]any
}

func NewRow() *Row {
	return &Row{values: make(map[string]any)}
}

// Set records a value under key, preserving first-set order. Setting an
// existing key overwrites the value without changing its position.
func (r *Row) Set(key string, value any) *Row {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	return r
}

func (r *Row) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

func (r *Row) Keys() []string {
	return r.keys
}

// Options controls the export. Filename is used without its .csv suffix;
// Columns, when set, fixes the header instead of deriving it from the rows.
type Options struct {
	Filename string
	Columns  []string
}

// Filename returns the download file name for the options.
func (o Options) FileName() string {
	name := o.Filename
	if name == "" {
		name = "export"
	}
	return name + ".csv"
}

// Columns returns the header for a row set: the union of all keys across
// all rows in first-seen order.
func Columns(rows []*Row) []string {
	var cols []string
	seen := make(map[string]bool)
	for _, row := range rows {
		for _, k := range row.keys {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	return cols
}

// escapeCell converts a single value to its CSV cell text. nil becomes the
// empty string, slices join with "; ", everything else takes its fmt form.
// Embedded quotes are doubled and cells containing a comma, quote or
// newline are wrapped in quotes.
func escapeCell(value any) string {
	var cell string
	switch v := value.(type) {
	case nil:
		cell = ""
	case string:
		cell = v
	case []string:
		cell = strings.Join(v, "; ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		cell = strings.Join(parts, "; ")
	default:
		cell = fmt.Sprint(v)
	}
	cell = strings.ReplaceAll(cell, `"`, `""`)
	if strings.ContainsAny(cell, ",\"\n") {
		cell = `"` + cell + `"`
	}
	return cell
}

// Render produces the full CSV text, BOM included.
func Render(rows []*Row, opts Options) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoData
	}

	headers := opts.Columns
	if len(headers) == 0 {
		headers = Columns(rows)
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, ","))
	for _, row := range rows {
		cells := make([]string, 0, len(headers))
		for _, h := range headers {
			v, _ := row.Get(h)
			cells = append(cells, escapeCell(v))
		}
		lines = append(lines, strings.Join(cells, ","))
	}

	return bom + strings.Join(lines, "\n"), nil
}

// Write renders the rows and writes them to w.
func Write(w io.Writer, rows []*Row, opts Options) error {
	csv, err := Render(rows, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, csv)
	return err
}
