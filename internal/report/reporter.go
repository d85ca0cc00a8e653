// Package report prints human-readable summaries of jsxattr batch runs.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/yacobolo/jsxattr"
	"golang.org/x/term"
)

// Reporter handles formatting and outputting batch results
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a new reporter. Colors are used when forceColor is set
// or the environment asks for them.
func NewReporter(w io.Writer, forceColor bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: shouldUseColors(forceColor),
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(forceColor bool) bool {
	// Explicit flag wins
	if forceColor {
		return true
	}

	// FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}

// PrintResult outputs the batch summary followed by every failed document
func (r *Reporter) PrintResult(result *jsxattr.Result, outputDir string) {
	status := StyleGreen
	if len(result.Failed) > 0 {
		status = StyleRed
	}

	fmt.Fprintf(r.w, "%s into %s\n",
		RenderStyle(status, fmt.Sprintf("Rendered %d of %s", result.FilesRendered,
			pluralizeCount(result.FilesScanned, "document", "documents")), r.useColors),
		RenderStyle(StyleCyan, outputDir, r.useColors))

	if result.FilesSkipped > 0 {
		fmt.Fprintf(r.w, "  %s\n", RenderStyle(StyleYellow,
			fmt.Sprintf("Skipped: %s", pluralizeCount(result.FilesSkipped, "file", "files")), r.useColors))
	}

	if len(result.Failed) == 0 {
		return
	}

	failed := make([]jsxattr.FileError, len(result.Failed))
	copy(failed, result.Failed)
	sort.Slice(failed, func(i, j int) bool {
		return failed[i].Path < failed[j].Path
	})

	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "%s:\n", RenderStyle(StyleRed, pluralizeCount(len(failed), "failure", "failures"), r.useColors))
	for _, f := range failed {
		fmt.Fprintf(r.w, "%s %v\n", RenderStyle(StyleCyan, f.Path+":", r.useColors), f.Err)
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --verbose to see every document as it is rendered", r.useColors))
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
