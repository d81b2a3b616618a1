package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vaxtrack/cmd/vaxtrack/cmd/auth"
	"vaxtrack/cmd/vaxtrack/cmd/types"
	"vaxtrack/cmd/vaxtrack/cmd/vaccine"
	"vaxtrack/internal/app"
	"vaxtrack/internal/config"
	"vaxtrack/internal/utils/logger"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "vaxtrack",
	Short: "vaxtrack - personal vaccination record tracker",
	Long: `vaxtrack keeps your vaccination history on this device.

Register with your CPF, log in, record the vaccines you have taken and
their scheduled next doses, and check which dose is coming up next.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg := config.MustLoad()
	if debug {
		cfg.Env = config.EnvLocal
	}

	log := logger.New(cfg.Env)

	a, err := app.New(cfg, log)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.AppKey, a))
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(vaccine.VaccinesCmd)
}
