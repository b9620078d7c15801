package keysift

import (
	"fmt"
	"os"

	"github.com/keysift/keysift/internal/config"
	"github.com/keysift/keysift/internal/files"
	"github.com/keysift/keysift/internal/input"
	"github.com/keysift/keysift/internal/report"
	"github.com/spf13/cobra"
)

var (
	cfgOutput    string
	cfgForce     bool
	cfgGitignore bool
)

func newConfigCmd() *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .keysift.yml with the default settings",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	initCmd.Flags().StringVar(&cfgOutput, "output", ".keysift.yml", "output file path")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing file")
	initCmd.Flags().BoolVar(&cfgGitignore, "gitignore", true, "add the keys file and audit log to .gitignore")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the global config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := config.GlobalPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cfgCmd.AddCommand(initCmd, pathCmd)
	return cfgCmd
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(cfgOutput); err == nil && !cfgForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgOutput)
	}
	in, out := input.DefaultPath, report.DefaultKeysPath
	maxBytes := int64(1 << 20)
	noColor, auditRuns := false, false
	b, err := config.Marshal(config.FileConfig{
		Input:    &in,
		Output:   &out,
		NoColor:  &noColor,
		Audit:    &auditRuns,
		MaxBytes: &maxBytes,
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfgOutput, err)
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "wrote %s\n", cfgOutput)
	if !cfgGitignore {
		return nil
	}
	for _, p := range files.GeneratedIgnores(out) {
		added, err := files.AppendIgnore(".", p)
		if err != nil {
			return fmt.Errorf("update .gitignore: %w", err)
		}
		if added {
			fmt.Fprintf(w, "added %s to .gitignore\n", p)
		}
	}
	return nil
}
