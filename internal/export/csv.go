// Package export builds downloadable artifacts: CSV text and the file names
// they are served under.
package export

import (
	"strings"
	"time"
)

// Field is one named cell of a flat export row.
type Field struct {
	Name  string
	Value string
}

// Record is an ordered field list. Order matters: when no explicit column
// set is given, the first record's field order becomes the header.
type Record []Field

func (r Record) get(name string) string {
	for _, f := range r {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// ToCSV encodes records as spreadsheet-safe CSV. Columns defaults to the
// first record's field order; every record is projected onto exactly those
// columns, missing fields as empty strings. Rows join with a single "\n" and
// there is no trailing newline. Empty input yields "".
func ToCSV(records []Record, columns []string) string {
	if len(records) == 0 {
		return ""
	}
	if columns == nil {
		columns = make([]string, 0, len(records[0]))
		for _, f := range records[0] {
			columns = append(columns, f.Name)
		}
	}

	var b strings.Builder
	for i, col := range columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escape(col))
	}
	for _, record := range records {
		b.WriteByte('\n')
		for i, col := range columns {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escape(record.get(col)))
		}
	}
	return b.String()
}

// escape quotes a field if and only if it contains a comma, a double quote
// or a newline, doubling interior quotes. Clean fields stay bare so the
// output round-trips byte for byte.
func escape(value string) string {
	if !strings.ContainsAny(value, ",\"\n\r") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// FileName builds the download name for an export artifact:
// <entity>-<yyyy-mm-dd>.<ext>.
func FileName(entity, ext string, now time.Time) string {
	name := sanitize(entity)
	if name == "" {
		name = "export"
	}
	return name + "-" + now.Format("2006-01-02") + "." + ext
}

func sanitize(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
