package report

import (
	"fmt"
	"io"
)

// PreviewLimit caps how many keys PrintSummary lists.
const PreviewLimit = 5

// PrintSummary prints the extraction count and a short numbered preview.
func PrintSummary(w io.Writer, keys []string, outPath string) {
	fmt.Fprintf(w, "Extracted %d API keys and saved to %s\n", len(keys), outPath)
	if len(keys) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "First few API keys:")
	for i, k := range keys {
		if i >= PreviewLimit {
			break
		}
		fmt.Fprintf(w, "%d. %s\n", i+1, k)
	}
	if n := len(keys) - PreviewLimit; n > 0 {
		fmt.Fprintf(w, "... and %d more keys\n", n)
	}
}
