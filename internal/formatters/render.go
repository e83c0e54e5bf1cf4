package formatters

import (
	"fmt"
	"strings"
)

// style controls how headings, fields and lists are written
type style struct {
	name     string
	markdown bool
}

var (
	plainText = style{name: "text"}
	markdown  = style{name: "markdown", markdown: true}
)

// page accumulates one rendered document
type page struct {
	style
	b strings.Builder
}

func (p *page) title(format string, args ...any) {
	t := fmt.Sprintf(format, args...)
	if p.markdown {
		fmt.Fprintf(&p.b, "# %s\n\n", t)
		return
	}
	fmt.Fprintf(&p.b, "=== %s ===\n\n", strings.ToUpper(t))
}

func (p *page) section(format string, args ...any) {
	t := fmt.Sprintf(format, args...)
	if p.markdown {
		fmt.Fprintf(&p.b, "## %s\n\n", t)
		return
	}
	fmt.Fprintf(&p.b, "--- %s ---\n", t)
}

func (p *page) field(label string, value any) {
	if p.markdown {
		fmt.Fprintf(&p.b, "**%s:** %v\n\n", label, value)
		return
	}
	fmt.Fprintf(&p.b, "%s: %v\n", label, value)
}

// fieldIf writes the field only when value is non-empty
func (p *page) fieldIf(label, value string) {
	if value != "" {
		p.field(label, value)
	}
}

func (p *page) list(label string, items []string) {
	if len(items) == 0 {
		return
	}
	if label != "" {
		if p.markdown {
			fmt.Fprintf(&p.b, "**%s:**\n\n", label)
		} else {
			fmt.Fprintf(&p.b, "%s:\n", label)
		}
	}
	for _, item := range items {
		fmt.Fprintf(&p.b, "- %s\n", item)
	}
	p.b.WriteString("\n")
}

func (p *page) numbered(items []string) {
	for i, item := range items {
		fmt.Fprintf(&p.b, "%d. %s\n", i+1, item)
	}
	p.b.WriteString("\n")
}

func (p *page) para(text string) {
	p.b.WriteString(text)
	p.b.WriteString("\n\n")
}

func (p *page) gap() {
	if !p.markdown {
		p.b.WriteString("\n")
	}
}

// table writes rows as a markdown table or aligned text columns
func (p *page) table(header []string, rows [][]string) {
	if p.markdown {
		fmt.Fprintf(&p.b, "| %s |\n", strings.Join(header, " | "))
		fmt.Fprintf(&p.b, "|%s\n", strings.Repeat("---|", len(header)))
		for _, row := range rows {
			fmt.Fprintf(&p.b, "| %s |\n", strings.Join(row, " | "))
		}
		p.b.WriteString("\n")
		return
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}
	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Fprintln(&p.b, strings.TrimRight(strings.Join(parts, "  "), " "))
	}
	writeRow(header)
	for _, row := range rows {
		writeRow(row)
	}
	p.b.WriteString("\n")
}

// renderer adapts a typed render function to the Formatter interface
type renderer[T any] struct {
	style    style
	dataType string
	render   func(*page, T)
}

func newRenderer[T any](s style, dataType string, render func(*page, T)) *renderer[T] {
	return &renderer[T]{style: s, dataType: dataType, render: render}
}

func (r *renderer[T]) Format(data any) (string, error) {
	v, ok := data.(T)
	if !ok {
		return "", fmt.Errorf("expected %s, got %T", r.dataType, data)
	}
	p := &page{style: r.style}
	r.render(p, v)
	return p.b.String(), nil
}

func (r *renderer[T]) SupportedType() string {
	return r.dataType
}
