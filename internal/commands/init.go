package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/trustrecon/trustrecon/internal/config"
	"github.com/trustrecon/trustrecon/internal/ledger"
)

func newInitCommand() *cobra.Command {
	var firm string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a trustrecon.yaml and an empty payment ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, firm); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized trustrecon project at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&firm, "firm", "", "firm name (required)")
	_ = cmd.MarkFlagRequired("firm")

	return cmd
}

func runInit(dir, firm string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default(firm)
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := ledger.NewFileStore(filepath.Join(dir, cfg.Payments.Path)).Init(); err != nil {
		return fmt.Errorf("creating payment ledger: %w", err)
	}
	return nil
}
