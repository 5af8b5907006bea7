package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/salario/internal/salario/app"
)

var (
	// Global flags, overriding the environment when set
	apiURL  string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "salario",
	Short: "Client manager with salary bonus calculation",
	Long: `salario lists, creates, edits and deletes client records held by a remote
clientes REST service, computing each client's bonus from salary and tenure.

Run without arguments to start the interactive manager.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication(cmd, app.ModeInteractive)
		if err != nil {
			return err
		}
		defer application.Close()

		return application.RunTUI(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "base URL of the clientes resource (env SALARIO_API_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-request timeout (env SALARIO_HTTP_TIMEOUT)")

	rootCmd.AddCommand(listCmd, getCmd, bonusCmd)
}

// newApplication merges flags over the environment and wires the application.
func newApplication(cmd *cobra.Command, mode app.Mode) (*app.Application, error) {
	cfg := app.LoadConfig()
	if cmd.Flags().Changed("api-url") {
		cfg.APIURL = apiURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.HTTPTimeout = timeout
	}

	application, err := app.New(cfg, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application, nil
}

func main() {
	// Load .env if present; real environment variables take precedence
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
