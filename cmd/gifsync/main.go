package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	configPath string
	envPath    string
	providers  []string
	rootCmd    = &cobra.Command{
		Use:   "gifsync",
		Short: "gifsync - exercise animation backfill",
		Long: `Fills a local directory with one animation per catalog exercise,
pulling from configured providers in order. Running it again only fetches
what is still missing.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPass,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./configs/config.yaml, $HOME/.gifsync, /etc/gifsync)")
	rootCmd.PersistentFlags().StringVar(&envPath, "env-file", ".env", "Env file with provider secrets")

	runCmd.Flags().StringSliceVarP(&providers, "provider", "p", nil, "Providers to use, in order (default: all enabled)")
	rootCmd.Flags().AddFlagSet(runCmd.Flags())

	historyCmd.Flags().Int("limit", 10, "Number of passes to show")
	coverageCmd.Flags().Bool("missing", false, "List catalog IDs without an asset")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(coverageCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(serveCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one pass over the catalog",
	Args:  cobra.NoArgs,
	RunE:  runPass,
}

func runPass(cmd *cobra.Command, args []string) error {
	a, err := buildApplication(configPath, envPath)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run, err := a.service.RunPass(ctx, providers)
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), run)
	return nil
}

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Show how much of the catalog is stored",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApplication(configPath, envPath)
		if err != nil {
			return err
		}
		defer a.Close()

		missing, _ := cmd.Flags().GetBool("missing")
		printCoverage(cmd.OutOrStdout(), a.service.Coverage(), missing)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded passes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApplication(configPath, envPath)
		if err != nil {
			return err
		}
		defer a.Close()

		if a.repo == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "History is disabled")
			return nil
		}

		limit, _ := cmd.Flags().GetInt("limit")
		runs, err := a.service.ListRuns(limit)
		if err != nil {
			return fmt.Errorf("failed to list passes: %w", err)
		}
		total, err := a.service.CountRuns()
		if err != nil {
			return fmt.Errorf("failed to count passes: %w", err)
		}
		printHistory(cmd.OutOrStdout(), runs, total)
		return nil
	},
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List configured providers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApplication(configPath, envPath)
		if err != nil {
			return err
		}
		defer a.Close()

		printProviders(cmd.OutOrStdout(), a.config)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
