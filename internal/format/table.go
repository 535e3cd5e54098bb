package format

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	apperrors "github.com/studybook-cli/studybook/pkg/errors"
)

// Column is one ordered column of a column-major table: a header name and
// its cell values, top to bottom.
type Column struct {
	Name   string
	Values []string
}

type tableOptions struct {
	headers   []string
	style     string
	showIndex bool
}

// TableOption customizes Table output.
type TableOption func(*tableOptions)

// WithHeaders sets an explicit header row.
func WithHeaders(headers ...string) TableOption {
	return func(o *tableOptions) { o.headers = headers }
}

// WithTableStyle selects the border style; only "grid" with unicode
// enabled uses line-drawing characters, everything else is plain ASCII.
func WithTableStyle(style string) TableOption {
	return func(o *tableOptions) { o.style = style }
}

// WithIndex prepends a "#" column with 1-based row numbers.
func WithIndex() TableOption {
	return func(o *tableOptions) { o.showIndex = true }
}

// Table renders row-major data as a bordered table. Column widths are the
// maximum character count of the header and every cell in that column;
// header cells are center-padded and rendered bold in the theme's primary
// color. Short rows are padded with empty cells.
func (f *Formatter) Table(rows [][]string, opts ...TableOption) string {
	o := tableOptions{style: "grid"}
	for _, opt := range opts {
		opt(&o)
	}
	return f.renderTable(rows, o)
}

// TableFromColumns renders column-major data, preserving the given column
// order. Headers default to the column names. Columns of unequal length
// are rejected with a ValidationError rather than silently truncated.
func (f *Formatter) TableFromColumns(cols []Column, opts ...TableOption) (string, error) {
	o := tableOptions{style: "grid"}
	for _, opt := range opts {
		opt(&o)
	}

	rowCount := 0
	if len(cols) > 0 {
		rowCount = len(cols[0].Values)
	}
	for _, col := range cols {
		if len(col.Values) != rowCount {
			return "", apperrors.NewValidationError(
				fmt.Sprintf("columns[%s]", col.Name),
				fmt.Sprintf("has %d rows, expected %d", len(col.Values), rowCount),
				nil,
			)
		}
	}

	if len(o.headers) == 0 {
		headers := make([]string, len(cols))
		for i, col := range cols {
			headers[i] = col.Name
		}
		o.headers = headers
	}

	rows := make([][]string, rowCount)
	for i := range rows {
		row := make([]string, len(cols))
		for j, col := range cols {
			row[j] = col.Values[i]
		}
		rows[i] = row
	}

	return f.renderTable(rows, o), nil
}

func (f *Formatter) renderTable(rows [][]string, o tableOptions) string {
	cfg := f.snapshot()
	glyphs := resolveTableStyle(o.style, cfg.UnicodeEnabled)

	headers := o.headers
	if o.showIndex {
		if len(headers) > 0 {
			headers = append([]string{"#"}, headers...)
		}
		indexed := make([][]string, len(rows))
		for i, row := range rows {
			indexed[i] = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		rows = indexed
	}

	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return ""
	}

	// Plain character count, not display width: cells are expected to be
	// unstyled stringified values.
	widths := make([]int, colCount)
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var out []string
	out = append(out, colorize(cfg, tableRule(glyphs, widths, glyphs.TopLeft, glyphs.TopMid, glyphs.TopRight), cfg.Theme.Muted))

	if len(headers) > 0 {
		cells := make([]string, colCount)
		for i := range cells {
			h := ""
			if i < len(headers) {
				h = headers[i]
			}
			padded := padWidth(h, widths[i], AlignCenter, utf8.RuneCountInString)
			cells[i] = colorize(cfg, padded, cfg.Theme.Primary, ColorBold)
		}
		out = append(out, tableRow(cfg, glyphs, cells))
		out = append(out, colorize(cfg, tableRule(glyphs, widths, glyphs.MidLeft, glyphs.MidMid, glyphs.MidRight), cfg.Theme.Muted))
	}

	for _, row := range rows {
		cells := make([]string, colCount)
		for i := range cells {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = padWidth(cell, widths[i], AlignLeft, utf8.RuneCountInString)
		}
		out = append(out, tableRow(cfg, glyphs, cells))
	}

	out = append(out, colorize(cfg, tableRule(glyphs, widths, glyphs.BottomLeft, glyphs.BottomMid, glyphs.BottomRight), cfg.Theme.Muted))

	return strings.Join(out, "\n")
}

func tableRule(glyphs tableGlyphs, widths []int, left, mid, right string) string {
	segments := make([]string, len(widths))
	for i, w := range widths {
		segments[i] = strings.Repeat(glyphs.Horizontal, w+2)
	}
	return left + strings.Join(segments, mid) + right
}

func tableRow(cfg Config, glyphs tableGlyphs, cells []string) string {
	sep := colorize(cfg, glyphs.Vertical, cfg.Theme.Muted)
	var b strings.Builder
	b.WriteString(sep)
	for _, cell := range cells {
		b.WriteString(" ")
		b.WriteString(cell)
		b.WriteString(" ")
		b.WriteString(sep)
	}
	return b.String()
}
