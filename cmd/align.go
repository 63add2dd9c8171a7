package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"sublingo/internal/config"
	"sublingo/internal/worker"
)

var alignCmd = &cobra.Command{
	Use:   "align <transcript.json> <sentences.tsv>",
	Short: "Align sentence pairs to transcript timestamps and render subtitles",
	Long: `Align maps each source/translation sentence pair onto the word-level
timestamps of the ASR transcript, closes small gaps, splits overlong
subtitles, and writes SRT (and optionally VTT) files.`,
	Args: cobra.ExactArgs(2),
	RunE: runAlign,
}

var (
	alignOutputDir string
	alignVTT       bool

	gapThreshold     float64
	maxLength        int
	targetMultiplier float64
	minSimilarity    float64
	defaultDuration  float64
)

func init() {
	defaults := config.Default()

	alignCmd.Flags().StringVarP(&alignOutputDir, "output-dir", "o", "", "output directory (default: <transcript-dir>/subtitles)")
	alignCmd.Flags().BoolVar(&alignVTT, "vtt", false, "also write WebVTT files")
	alignCmd.Flags().Float64Var(&gapThreshold, "gap-threshold", defaults.Subtitle.GapThreshold, "maximum silence to close between segments, in seconds")
	alignCmd.Flags().IntVar(&maxLength, "max-length", defaults.Subtitle.MaxLength, "maximum display characters per subtitle")
	alignCmd.Flags().Float64Var(&targetMultiplier, "target-multiplier", defaults.Subtitle.TargetMultiplier, "translation display-weight multiplier")
	alignCmd.Flags().Float64Var(&minSimilarity, "min-similarity", defaults.Subtitle.MinSimilarity, "fuzzy-match similarity below which a match is logged as ambiguous")
	alignCmd.Flags().Float64Var(&defaultDuration, "default-duration", defaults.Subtitle.DefaultDuration, "placeholder segment duration for unmatched sentences, in seconds")

	rootCmd.AddCommand(alignCmd)
}

// alignSettings layers explicitly set flags over the loaded config.
func alignSettings(flags *pflag.FlagSet, cfg *config.Config) config.SubtitleSettings {
	s := cfg.Subtitle
	if flags.Changed("gap-threshold") {
		s.GapThreshold = gapThreshold
	}
	if flags.Changed("max-length") {
		s.MaxLength = maxLength
	}
	if flags.Changed("target-multiplier") {
		s.TargetMultiplier = targetMultiplier
	}
	if flags.Changed("min-similarity") {
		s.MinSimilarity = minSimilarity
	}
	if flags.Changed("default-duration") {
		s.DefaultDuration = defaultDuration
	}
	return s
}

func runAlign(cmd *cobra.Command, args []string) error {
	transcriptPath := args[0]
	sentencesPath := args[1]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir := alignOutputDir
	if outputDir == "" {
		outputDir = filepath.Join(filepath.Dir(transcriptPath), "subtitles")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := worker.Run(ctx, worker.Options{
		TranscriptPath: transcriptPath,
		SentencesPath:  sentencesPath,
		OutputDir:      outputDir,
		WriteVTT:       alignVTT,
		Settings:       alignSettings(cmd.Flags(), cfg),
	})
	if err != nil {
		return err
	}

	result.Document = strings.TrimSuffix(filepath.Base(transcriptPath), filepath.Ext(transcriptPath))
	if !quiet {
		worker.WriteReport(os.Stdout, []*worker.Result{result})
	}
	return nil
}
