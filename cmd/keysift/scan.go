package keysift

import (
	"fmt"
	"path/filepath"

	"github.com/keysift/keysift/internal/config"
	"github.com/keysift/keysift/internal/engine"
	"github.com/keysift/keysift/internal/report"
	"github.com/keysift/keysift/pkg/core"
	"github.com/spf13/cobra"
)

var (
	flagPath              string
	flagInclude           string
	flagExclude           string
	flagMaxBytes          int64
	flagGit               bool
	flagNoDefaultExcludes bool
	flagScanJSON          bool
	flagSARIF             bool
	flagText              bool
	flagFail              bool
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a directory or git HEAD tree for labeled API keys",
		Args:  cobra.NoArgs,
		RunE:  runScan,
	}
	f := cmd.Flags()
	f.StringVarP(&flagPath, "path", "p", ".", "path to scan")
	f.StringVar(&flagInclude, "include", "", "comma-separated include globs")
	f.StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	f.Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this (0 = no limit)")
	f.BoolVar(&flagGit, "git", false, "scan the committed HEAD tree instead of the working tree")
	f.BoolVar(&flagNoDefaultExcludes, "no-default-excludes", false, "do not skip node_modules, vendor, images, archives")
	f.BoolVar(&flagScanJSON, "json", false, "emit JSON")
	f.BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	f.BoolVar(&flagText, "text", false, "output in plain text columnar format")
	f.BoolVar(&flagFail, "fail", false, "exit with status 1 when any key is found")
	return cmd
}

func runScan(cmd *cobra.Command, _ []string) error {
	abs, err := filepath.Abs(flagPath)
	if err != nil {
		return err
	}
	// scan root config overrides the working directory's
	lcfg := localCfg
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	maxBytes := flagMaxBytes
	if !cmd.Flags().Changed("max-bytes") {
		maxBytes = pickInt64(0, lcfg.MaxBytes, globalCfg.MaxBytes)
		if maxBytes == 0 {
			maxBytes = flagMaxBytes
		}
	}
	cfg := engine.Config{
		Root:              abs,
		IncludeGlobs:      pickString(flagInclude, lcfg.Include, globalCfg.Include),
		ExcludeGlobs:      pickString(flagExclude, lcfg.Exclude, globalCfg.Exclude),
		MaxBytes:          maxBytes,
		NoDefaultExcludes: flagNoDefaultExcludes,
		GitHead:           flagGit,
	}

	res, err := engine.Scan(cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}

	out := cmd.OutOrStdout()
	opts := report.PrintOptions{NoColor: colorDisabled(), Duration: res.Duration, FilesScanned: res.FilesScanned}
	switch {
	case flagSARIF:
		if err := report.WriteSARIF(out, res.Findings, version); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case flagScanJSON:
		if err := core.MarshalFindings(out, res.Findings); err != nil {
			return fmt.Errorf("json error: %w", err)
		}
	case flagText:
		report.PrintText(out, res.Findings, opts)
	default:
		if err := report.PrintTable(out, res.Findings, opts); err != nil {
			return err
		}
	}

	if flagFail && len(res.Findings) > 0 {
		return &exitError{code: 1}
	}
	return nil
}
