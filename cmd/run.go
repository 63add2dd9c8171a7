package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sublingo/internal/config"
	"sublingo/internal/worker"
)

var runCmd = &cobra.Command{
	Use:   "run <job.yaml>",
	Short: "Process a batch of documents from a YAML job file",
	Long: `Run processes every document listed in a YAML job file, aligning each
against its transcript. Documents run concurrently up to the configured
limit; each document's pipeline stays sequential.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

var maxConcurrent int

func init() {
	defaults := config.Default()

	runCmd.Flags().IntVarP(&maxConcurrent, "max-concurrent", "j", defaults.MaxConcurrent, "max documents processed concurrently")

	rootCmd.AddCommand(runCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("max-concurrent") {
		maxConcurrent = cfg.MaxConcurrent
	}

	job, err := worker.LoadJob(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, err := worker.RunJob(ctx, job, cfg.Subtitle, maxConcurrent)
	if err != nil {
		return err
	}

	if !quiet {
		worker.WriteReport(os.Stdout, results)
	}
	return nil
}
