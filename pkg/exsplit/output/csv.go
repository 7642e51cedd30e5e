// Package output serializes extracted grids and writes artifacts.
package output

import (
	"strings"
)

// ToCSV serializes a grid as comma-delimited text.
//
// Rows are joined with "\n" and no trailing newline is written. A field that
// contains a comma, a double quote or a newline is wrapped in double quotes
// with every embedded double quote doubled.
func ToCSV(grid [][]string) string {
	var b strings.Builder
	for i, row := range grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			writeField(&b, field)
		}
	}
	return b.String()
}

func writeField(b *strings.Builder, field string) {
	if !strings.ContainsAny(field, ",\"\n") {
		b.WriteString(field)
		return
	}
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(field, `"`, `""`))
	b.WriteByte('"')
}
