package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	// fatih/color disables these automatically when output is not a TTY
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgHiBlack)
	filledColor  = color.New(color.FgGreen)
)

// printer writes formatted command output to a single writer.
type printer struct {
	out io.Writer
}

func newPrinter(out io.Writer) *printer {
	return &printer{out: out}
}

// Section prints a section header
func (p *printer) Section(title string) {
	fmt.Fprintln(p.out)
	_, _ = headerColor.Fprintf(p.out, "▸ %s\n", title)
	fmt.Fprintln(p.out)
}

// Success prints a success message with a checkmark
func (p *printer) Success(msg string) {
	_, _ = successColor.Fprintf(p.out, "✓ %s\n", msg)
}

// Warning prints a warning message with a warning symbol
func (p *printer) Warning(msg string) {
	_, _ = warningColor.Fprintf(p.out, "⚠ %s\n", msg)
}

// Info prints an informational message
func (p *printer) Info(msg string) {
	fmt.Fprintln(p.out, msg)
}

// LabelValue prints a label-value pair
func (p *printer) LabelValue(label, value string) {
	_, _ = labelColor.Fprintf(p.out, "  %s: ", label)
	_, _ = valueColor.Fprintln(p.out, value)
}

// EmptyState prints a message when there's no data to show
func (p *printer) EmptyState(msg string) {
	_, _ = valueColor.Fprintf(p.out, "  %s\n", msg)
}

// List prints items with bullet points
func (p *printer) List(items []string, indent int) {
	indentStr := strings.Repeat("  ", indent)
	for _, item := range items {
		_, _ = infoColor.Fprintf(p.out, "%s• %s\n", indentStr, item)
	}
}

// Table prints rows under headers with padded columns. highlight, when
// non-nil, reports cells drawn in the fill color instead of the value color.
func (p *printer) Table(headers []string, rows [][]string, highlight func(row, col int) bool) {
	if len(headers) == 0 || len(rows) == 0 {
		return
	}

	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) && len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	fmt.Fprint(p.out, "  ")
	for i, header := range headers {
		if i > 0 {
			fmt.Fprint(p.out, "  ")
		}
		_, _ = headerColor.Fprintf(p.out, "%*s", colWidths[i], header)
	}
	fmt.Fprintln(p.out)

	fmt.Fprint(p.out, "  ")
	for i, width := range colWidths {
		if i > 0 {
			fmt.Fprint(p.out, "  ")
		}
		fmt.Fprint(p.out, strings.Repeat("-", width))
	}
	fmt.Fprintln(p.out)

	for r, row := range rows {
		fmt.Fprint(p.out, "  ")
		for i, cell := range row {
			if i >= len(colWidths) {
				break
			}
			if i > 0 {
				fmt.Fprint(p.out, "  ")
			}
			clr := valueColor
			if highlight != nil && highlight(r, i) {
				clr = filledColor
			}
			_, _ = clr.Fprintf(p.out, "%*s", colWidths[i], cell)
		}
		fmt.Fprintln(p.out)
	}
}

// formatError formats an error for display.
func formatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// PrintError prints an error message to w
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, formatError(err))
}

// pluralize renders a count with the matching noun
func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
