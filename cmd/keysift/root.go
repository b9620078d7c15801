package keysift

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/keysift/keysift/internal/config"
	"github.com/keysift/keysift/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagInput    string
	flagOutput   string
	flagJSON     bool
	flagCopy     bool
	flagAudit    bool
	flagNoColor  bool
	flagLogFile  string
	flagLogLevel string
	flagDebug    bool

	version = "0.1.0"

	// loaded in PersistentPreRunE from the working directory and XDG config
	localCfg, globalCfg config.FileConfig
)

// exitError carries a non-default exit status out of a command.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "keysift",
		Short:             "Extract labeled API keys from text",
		Long:              "keysift reads input.txt (or pasted text), extracts every labeled API key, writes them to api_keys.txt and prints a summary.",
		Version:           version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE:              runExtract,
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	pf.StringVar(&flagLogFile, "log-file", "", "write structured logs to this file (rotated)")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level: debug|info|warn|error")
	pf.BoolVar(&flagDebug, "debug", false, "debug logging (to stderr unless --log-file is set)")

	f := root.Flags()
	f.StringVarP(&flagInput, "input", "i", "", "input file (default input.txt; falls back to stdin when missing)")
	f.StringVarP(&flagOutput, "output", "o", "", "output file (default api_keys.txt)")
	f.BoolVar(&flagJSON, "json", false, "print findings as JSON instead of the summary")
	f.BoolVar(&flagCopy, "copy", false, "copy extracted keys to the clipboard")
	f.BoolVar(&flagAudit, "audit", false, "append a fingerprint-only record of this run to the audit log")

	root.AddCommand(newScanCmd(), newPatternCmd(), newConfigCmd(), newHistoryCmd(), newCompletionCmd())
	return root
}

// Execute runs the keysift CLI. It should be called by the main package.
func Execute() {
	if err := executeRoot(newRootCmd()); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

// executeRoot runs cmd and closes the log file on every path, including
// command errors where cobra skips post-run hooks.
func executeRoot(cmd *cobra.Command) error {
	defer func() { _ = logging.Close() }()
	return cmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	localCfg, globalCfg = config.FileConfig{}, config.FileConfig{}
	if c, err := config.LoadGlobal(); err == nil {
		globalCfg = c
	}
	if c, err := config.LoadLocal("."); err == nil {
		localCfg = c
	}
	log := logging.Init(logging.Config{
		File:  pickString(flagLogFile, localCfg.LogFile, globalCfg.LogFile),
		Level: pickString(flagLogLevel, localCfg.LogLevel, globalCfg.LogLevel),
		Debug: flagDebug,
	})
	log.Debug("command start", slog.String("command", cmd.CommandPath()), slog.String("version", version))
	return nil
}
