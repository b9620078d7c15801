package keysift

import (
	"fmt"

	"github.com/keysift/keysift/internal/extract"
	"github.com/spf13/cobra"
)

func newPatternCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pattern",
		Short: "Print the expression keys are matched with",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, extract.Pattern())
			fmt.Fprintf(w, "label=%q prefix=%q body=[%s]{%d}\n", extract.Label, extract.Prefix, extract.Alphabet, extract.BodyLen)
		},
	}
}
