package keysift

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/keysift/keysift/internal/audit"
	"github.com/keysift/keysift/internal/extract"
	"github.com/keysift/keysift/internal/input"
	"github.com/keysift/keysift/internal/logging"
	"github.com/keysift/keysift/internal/report"
	"github.com/keysift/keysift/pkg/core"
	"github.com/spf13/cobra"
)

// copyToClipboard is swapped in tests; headless CI has no clipboard.
var copyToClipboard = clipboard.WriteAll

func runExtract(cmd *cobra.Command, _ []string) error {
	log := logging.Logger()
	start := time.Now()
	inPath := orDefault(pickString(flagInput, localCfg.Input, globalCfg.Input), input.DefaultPath)
	outPath := orDefault(pickString(flagOutput, localCfg.Output, globalCfg.Output), report.DefaultKeysPath)
	stdout := cmd.OutOrStdout()
	// --json keeps stdout parseable
	prompt := stdout
	if flagJSON {
		prompt = cmd.ErrOrStderr()
	}

	src, err := input.Acquire(input.Options{Path: inPath, Stdin: cmd.InOrStdin(), Prompt: prompt})
	if err != nil {
		return err
	}
	log.Debug("input acquired", slog.String("origin", src.Origin), slog.Int("bytes", len(src.Text)))

	keys := extract.Extract(src.Text)
	if err := report.WriteKeys(outPath, keys); err != nil {
		return err
	}
	log.Info("keys written", slog.String("output", outPath), slog.Int("count", len(keys)))

	if flagJSON {
		if err := core.MarshalFindings(stdout, extract.Find(src.Origin, []byte(src.Text))); err != nil {
			return fmt.Errorf("json error: %w", err)
		}
	} else {
		report.PrintSummary(stdout, keys, outPath)
	}

	// side channels below never fail the run
	stderr := cmd.ErrOrStderr()
	if flagCopy && len(keys) > 0 {
		if err := copyToClipboard(strings.Join(keys, "\n")); err != nil {
			_, _ = fmt.Fprintln(stderr, "clipboard warning:", err)
		} else {
			_, _ = fmt.Fprintf(stderr, "copied %d keys to clipboard\n", len(keys))
		}
	}
	if pickBool(flagAudit, localCfg.Audit, globalCfg.Audit) {
		al := audit.NewAuditLog(".")
		if err := al.LogRun(audit.NewRunRecord(src.Origin, outPath, keys, time.Since(start))); err != nil {
			_, _ = fmt.Fprintln(stderr, "audit warning:", err)
			log.Warn("audit write failed", slog.String("error", err.Error()))
		}
	}
	return nil
}
