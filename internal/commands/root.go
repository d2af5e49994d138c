package commands

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/trustrecon/trustrecon/internal/buildinfo"
	"github.com/trustrecon/trustrecon/internal/config"
	"github.com/trustrecon/trustrecon/internal/logger"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	verbose    bool
	cfg        *config.Config
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "trustrecon",
		Short:   "Aged trust listings and attorney fee reconciliation",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.FileName, "project config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newTrustCommand(a))
	rootCmd.AddCommand(newBalancesCommand(a))
	rootCmd.AddCommand(newReconcileCommand(a))
	rootCmd.AddCommand(newPaymentCommand(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	level := zerolog.WarnLevel
	if a.verbose {
		level = zerolog.DebugLevel
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.WithContext(ctx, logger.New(cmd.ErrOrStderr(), level)))

	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// resolve interprets config-relative paths against the config file's directory.
func (a *app) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(a.configPath), path)
}
