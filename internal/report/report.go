// Package report renders lint results as text, JSON or msgpack.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/edarioq/prop-ordering/internal/diag"
)

// Format is an output format
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// Formats lists the supported formats
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatMsgpack}
}

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want text, json or msgpack)", name)
}

// FileReport is the result for one file
type FileReport struct {
	Path       string           `json:"path" msgpack:"path"`
	Changed    bool             `json:"changed" msgpack:"changed"`
	Fixed      int              `json:"fixed" msgpack:"fixed"`
	Error      string           `json:"error,omitempty" msgpack:"error,omitempty"`
	Violations []diag.Violation `json:"violations" msgpack:"violations"`
}

// Output is the root of every report
type Output struct {
	Files      []FileReport `json:"files" msgpack:"files"`
	Count      int          `json:"count" msgpack:"count"`
	Fixable    int          `json:"fixable" msgpack:"fixable"`
	ErrorFiles int          `json:"errorFiles" msgpack:"errorFiles"`
}

// Options tune the text renderer
type Options struct {
	Color bool
	// Quiet drops files without violations or errors
	Quiet bool
}

// NewOutput sorts files by path and computes totals
func NewOutput(files []FileReport) Output {
	out := Output{Files: make([]FileReport, len(files))}
	copy(out.Files, files)
	sort.Slice(out.Files, func(i, j int) bool {
		return out.Files[i].Path < out.Files[j].Path
	})

	for _, f := range out.Files {
		if f.Error != "" {
			out.ErrorFiles++
		}
		out.Count += len(f.Violations)
		for _, v := range f.Violations {
			if v.Fixable() {
				out.Fixable++
			}
		}
	}
	return out
}

// Write renders out in the given format
func Write(w io.Writer, format Format, out Output, opts Options) error {
	switch format {
	case FormatText:
		return writeText(w, out, opts)
	case FormatJSON:
		return writeJSON(w, out)
	case FormatMsgpack:
		return writeMsgpack(w, out)
	}
	return fmt.Errorf("unknown format %q", format)
}
