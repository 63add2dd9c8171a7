package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sublingo/internal/config"
)

var (
	verbose    bool
	quiet      bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "sublingo",
	Short: "Split transcripts into sentences and align translations to subtitle timestamps",
	Long: `Sublingo turns ASR word-level transcripts and translated sentences into
time-accurate subtitle files. It splits continuous text into display-sized
sentences using grammatical annotations, then maps each sentence back onto
the original audio timestamps and renders SRT/VTT output.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Optional .env for annotator endpoint and token.
		_ = godotenv.Load()
		setupLogging()
	},
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if url := os.Getenv("SUBLINGO_ANNOTATOR_URL"); url != "" {
		cfg.Annotator.URL = url
	}
	if token := os.Getenv("SUBLINGO_ANNOTATOR_TOKEN"); token != "" {
		cfg.Annotator.Token = token
	}
	return cfg, nil
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to TOML config file")
}
