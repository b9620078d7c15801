package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/keysift/keysift/internal/types"
	"github.com/olekukonko/tablewriter"
)

type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
}

var (
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	keyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// PrintText writes one line per finding: path:line:column and the masked key.
func PrintText(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No API keys found ✅")
	} else {
		fmt.Fprintf(w, "Findings: %d\n", len(findings))
		for _, f := range findings {
			loc := fmt.Sprintf("%s:%d:%d", f.Path, f.Line, f.Column)
			mask := MaskKey(f.Key)
			if !opts.NoColor {
				loc = pathStyle.Render(loc)
				mask = keyStyle.Render(mask)
			}
			fmt.Fprintf(w, "%s  %s\n", loc, mask)
		}
	}
	printFooter(w, findings, opts)
}

// PrintTable renders findings as a bordered table.
func PrintTable(w io.Writer, findings []types.Finding, opts PrintOptions) error {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No API keys found ✅")
		printFooter(w, findings, opts)
		return nil
	}
	table := tablewriter.NewWriter(w)
	table.Header("Path", "Line", "Column", "Key")
	for _, f := range findings {
		if err := table.Append([]string{f.Path, strconv.Itoa(f.Line), strconv.Itoa(f.Column), MaskKey(f.Key)}); err != nil {
			return fmt.Errorf("table row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("table render: %w", err)
	}
	printFooter(w, findings, opts)
	return nil
}

func printFooter(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if opts.Duration <= 0 && opts.FilesScanned <= 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Findings: %d (unique keys: %d)\n", len(findings), UniqueCount(findings))
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
	if opts.FilesScanned > 0 {
		fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
	}
}

// MaskKey keeps the first and last four characters of a key.
func MaskKey(s string) string {
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "…" + s[len(s)-4:]
}
