package app

import (
	"fmt"
	"io"

	"github.com/edarioq/prop-ordering/internal/processor"
	"github.com/edarioq/prop-ordering/internal/report"
)

type stats struct {
	totalFiles     int
	filesNeedSort  int
	filesNoChanges int
	errorFiles     int
	violations     int
	fixed          int
	remaining      int
}

func summarize(results []fileResult) stats {
	s := stats{totalFiles: len(results)}
	for _, r := range results {
		if r.err != nil {
			s.errorFiles++
			continue
		}
		s.violations += len(r.result.Violations)
		s.fixed += r.result.Fixed
		s.remaining += len(r.result.Remaining)
		if len(r.result.Violations) > 0 {
			s.filesNeedSort++
		} else {
			s.filesNoChanges++
		}
	}
	return s
}

func toFileReports(results []fileResult, write bool) []report.FileReport {
	out := make([]report.FileReport, 0, len(results))
	for _, r := range results {
		fr := report.FileReport{
			Path:       r.file,
			Changed:    r.result.Changed,
			Fixed:      r.result.Fixed,
			Violations: r.result.Violations,
		}
		// After writing only what is left in the file is still a problem
		if write {
			fr.Violations = r.result.Remaining
		}
		if r.err != nil {
			fr.Error = r.err.Error()
		}
		out = append(out, fr)
	}
	return out
}

func fileErrors(results []fileResult) []error {
	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
		}
	}
	return errs
}

func printSummary(w io.Writer, s stats, cfg processor.Config) {
	fmt.Fprintln(w, "─────────────────────────────────────")
	fmt.Fprintf(w, "Total files:    %d\n", s.totalFiles)

	switch {
	case cfg.Write:
		fmt.Fprintf(w, "Sorted:         %d\n", s.filesNeedSort)
		fmt.Fprintf(w, "No changes:     %d\n", s.filesNoChanges)
	case cfg.Check:
		fmt.Fprintf(w, "No changes:     %d\n", s.filesNoChanges)
		if s.filesNeedSort > 0 {
			fmt.Fprintf(w, "Need sorting:   %d ❌\n", s.filesNeedSort)
		}
	default:
		// Dry-run mode
		fmt.Fprintf(w, "Would sort:     %d\n", s.filesNeedSort)
		fmt.Fprintf(w, "No changes:     %d\n", s.filesNoChanges)
	}

	if s.errorFiles > 0 {
		fmt.Fprintf(w, "Errors:         %d\n", s.errorFiles)
	}

	if s.violations > 0 {
		fmt.Fprintf(w, "\nViolations:     %d\n", s.violations)
		if cfg.Write {
			fmt.Fprintf(w, "Fixed:          %d\n", s.fixed)
			fmt.Fprintf(w, "Remaining:      %d\n", s.remaining)
		}
	}
}
