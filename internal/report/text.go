package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/edarioq/prop-ordering/internal/diag"
)

type palette struct {
	path    *color.Color
	err     *color.Color
	warning *color.Color
	dim     *color.Color
	summary *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path:    color.New(color.Underline),
		err:     color.New(color.FgRed),
		warning: color.New(color.FgYellow),
		dim:     color.New(color.Faint),
		summary: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.path, p.err, p.warning, p.dim, p.summary} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	if s == diag.SevError {
		return p.err
	}
	return p.warning
}

// writeText prints one block per file:
//
//	path
//	  line:col  severity  message  rule
//
// Columns are padded by display width so wide characters in messages or
// paths do not break alignment.
func writeText(w io.Writer, out Output, opts Options) error {
	p := newPalette(opts.Color)

	for _, f := range out.Files {
		if opts.Quiet && len(f.Violations) == 0 && f.Error == "" {
			continue
		}

		if _, err := fmt.Fprintln(w, p.path.Sprint(f.Path)); err != nil {
			return err
		}
		if f.Error != "" {
			if _, err := fmt.Fprintf(w, "  %s  %s\n", p.err.Sprint("error"), f.Error); err != nil {
				return err
			}
		}

		posWidth, sevWidth, msgWidth := columnWidths(f.Violations)
		for _, v := range f.Violations {
			pos := strconv.Itoa(v.Start.Line) + ":" + strconv.Itoa(v.Start.Column)
			sev := v.Severity.String()
			_, err := fmt.Fprintf(w, "  %s  %s  %s  %s\n",
				p.dim.Sprint(runewidth.FillRight(pos, posWidth)),
				p.severity(v.Severity).Sprint(runewidth.FillRight(sev, sevWidth)),
				runewidth.FillRight(v.Message, msgWidth),
				p.dim.Sprint(v.Rule),
			)
			if err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if out.Count == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, p.summary.Sprintf("✖ %d %s (%d fixable with --write)",
		out.Count, plural(out.Count, "problem", "problems"), out.Fixable))
	return err
}

func columnWidths(vs []diag.Violation) (pos, sev, msg int) {
	for _, v := range vs {
		pos = max(pos, runewidth.StringWidth(strconv.Itoa(v.Start.Line)+":"+strconv.Itoa(v.Start.Column)))
		sev = max(sev, runewidth.StringWidth(v.Severity.String()))
		msg = max(msg, runewidth.StringWidth(v.Message))
	}
	return pos, sev, msg
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
