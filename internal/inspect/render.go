package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	mdwerrors "github.com/msto63/utf8x/foundation/core/errors"
)

// Renderer writes reports as a styled table or as JSON
type Renderer struct {
	// Color enables colored output
	Color bool

	// MaxRows limits the table rows, 0 shows all
	MaxRows int
}

var headers = []string{"#", "Char", "Codepoint", "Bytes", "Len", "Width", "Cluster"}

// Text renders the report as a summary followed by a table
func (r Renderer) Text(report *Report) string {
	st := newStyles(r.Color)

	var b strings.Builder
	b.WriteString(st.title.Render("Summary"))
	b.WriteString("\n")
	for _, line := range [][2]string{
		{"bytes", strconv.Itoa(report.Summary.Bytes)},
		{"scalars", strconv.Itoa(report.Summary.Scalars)},
		{"graphemes", strconv.Itoa(report.Summary.Graphemes)},
		{"width", strconv.Itoa(report.Summary.Width)},
		{"well-formed", r.flag(st, report.Summary.WellFormed, true)},
		{"multibyte", r.flag(st, report.Summary.Multibyte, false)},
		{"4-byte", r.flag(st, report.Summary.FourByte, false)},
	} {
		fmt.Fprintf(&b, "  %s %s\n", st.label.Render(fmt.Sprintf("%-12s", line[0])), line[1])
	}

	if len(report.Scalars) == 0 {
		return b.String()
	}

	rows := report.Scalars
	hidden := 0
	if r.MaxRows > 0 && len(rows) > r.MaxRows {
		hidden = len(rows) - r.MaxRows
		rows = rows[:r.MaxRows]
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.header
			case !rows[row].Valid:
				return st.invalid
			case rows[row].Size == 4:
				return st.wide
			default:
				return st.cell
			}
		})

	for _, sc := range rows {
		t.Row(
			strconv.Itoa(sc.Index),
			sc.Char,
			sc.Codepoint,
			sc.Bytes,
			strconv.Itoa(sc.Size),
			strconv.Itoa(sc.Width),
			strconv.Itoa(sc.Grapheme),
		)
	}

	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	if hidden > 0 {
		fmt.Fprintf(&b, "%s\n", st.label.Render(fmt.Sprintf("(%d more scalars)", hidden)))
	}
	return b.String()
}

func (r Renderer) flag(st styles, v, good bool) string {
	s := "no"
	if v {
		s = "yes"
	}
	if v == good {
		return st.ok.Render(s)
	}
	return st.bad.Render(s)
}

// JSON writes the report as indented JSON
func (r Renderer) JSON(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return mdwerrors.OperationFailed(mdwerrors.ModuleInspect, "render_json", err)
	}
	return nil
}

// Write renders the report in the named format ("text" or "json")
func (r Renderer) Write(w io.Writer, report *Report, format string) error {
	switch format {
	case "json":
		return r.JSON(w, report)
	case "text", "":
		if _, err := io.WriteString(w, r.Text(report)); err != nil {
			return mdwerrors.OperationFailed(mdwerrors.ModuleInspect, "render_text", err)
		}
		return nil
	default:
		return mdwerrors.InvalidInput(mdwerrors.ModuleInspect, "render", format, "text or json")
	}
}
