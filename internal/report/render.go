package report

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/linelint/linelint/internal/types"
)

type PrintOptions struct {
	NoColor      bool
	ShowSource   bool
	Duration     time.Duration
	FilesScanned int
	Cached       int
	Missing      int
}

// PrintText writes one line per violation in the order given:
//
//	<path>:<line>: Line is longer than <max> characters
//
// With ShowSource the offending line follows, indented, with a caret under
// the first character past the limit.
func PrintText(w io.Writer, vs []types.Violation, opts PrintOptions) {
	r := lipgloss.NewRenderer(w)
	loc := r.NewStyle().Bold(true)
	for _, v := range vs {
		if opts.NoColor {
			fmt.Fprintln(w, v.Message())
		} else {
			fmt.Fprintf(w, "%s: Line is longer than %d characters\n", loc.Render(v.Path+":"+strconv.Itoa(v.Line)), v.MaxLength)
		}
		if opts.ShowSource {
			printSource(w, v, opts.NoColor)
		}
	}
}

func printSource(w io.Writer, v types.Violation, noColor bool) {
	formatter := "terminal256"
	if noColor {
		formatter = "noop"
	}
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, v.Text, "tex", formatter, "monokai"); err != nil {
		buf.Reset()
		buf.WriteString(v.Text)
	}
	fmt.Fprintf(w, "    %s\n", strings.TrimRight(buf.String(), "\n"))
	fmt.Fprintf(w, "    %s^\n", strings.Repeat(" ", v.MaxLength))
}

// PrintTable renders violations sorted by path and line as a bordered table
// followed by the summary footer.
func PrintTable(w io.Writer, vs []types.Violation, opts PrintOptions) {
	sorted := append([]types.Violation(nil), vs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Path == sorted[j].Path {
			return sorted[i].Line < sorted[j].Line
		}
		return sorted[i].Path < sorted[j].Path
	})
	if len(sorted) == 0 {
		fmt.Fprintln(w, "No long lines found ✅")
	} else {
		table := tablewriter.NewWriter(w)
		table.Header("File", "Line", "Length", "Max")
		for _, v := range sorted {
			_ = table.Append([]string{v.Path, strconv.Itoa(v.Line), strconv.Itoa(v.Length), strconv.Itoa(v.MaxLength)})
		}
		_ = table.Render()
	}
	PrintSummary(w, vs, opts)
}

// PrintSummary writes the footer with counts and timing. Nothing is
// written when no statistics are available.
func PrintSummary(w io.Writer, vs []types.Violation, opts PrintOptions) {
	if opts.Duration <= 0 && opts.FilesScanned == 0 && opts.Cached == 0 && opts.Missing == 0 {
		return
	}
	files := map[string]bool{}
	for _, v := range vs {
		files[v.Path] = true
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Long lines: %d in %d file(s)\n", len(vs), len(files))
	if opts.FilesScanned > 0 {
		fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
	}
	if opts.Cached > 0 {
		fmt.Fprintf(w, "Unchanged (cached): %d\n", opts.Cached)
	}
	if opts.Missing > 0 {
		fmt.Fprintf(w, "Missing: %d\n", opts.Missing)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
}
