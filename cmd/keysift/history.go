package keysift

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/keysift/keysift/internal/audit"
	"github.com/spf13/cobra"
)

var flagHistoryLimit int

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List audited extraction runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			al := audit.NewAuditLog(".")
			w := cmd.OutOrStdout()
			recs, err := al.LoadHistory()
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintln(w, "no audited runs")
				return nil
			}
			if err != nil {
				return err
			}
			for i, r := range recs {
				if flagHistoryLimit > 0 && i >= flagHistoryLimit {
					break
				}
				fmt.Fprintf(w, "%s  %-12s %3d keys (%d unique) from %s -> %s\n",
					r.Timestamp.Format("2006-01-02 15:04:05"), r.RunID, r.Total, r.Unique, r.Origin, r.Output)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "show at most N runs (0 = all)")
	return cmd
}
