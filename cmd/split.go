package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"sublingo/internal/config"
	"sublingo/internal/nlp"
	"sublingo/internal/splitter"
)

var splitCmd = &cobra.Command{
	Use:   "split <chunks-file>",
	Short: "Split transcript text into display-sized sentences",
	Long: `Split joins the chunk lines of a raw transcript with the language joiner
and runs the four-stage sentence splitting pipeline (punctuation marks,
commas, connectors, long-sentence cuts), writing one sentence per line.`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

var (
	splitLanguage string
	splitOutput   string

	maxSentenceLength int
	minSentenceLength int
	contextWords      int
	minPhraseLength   int
)

func init() {
	defaults := config.Default()

	splitCmd.Flags().StringVarP(&splitLanguage, "language", "l", defaults.SourceLanguage, "source language code")
	splitCmd.Flags().StringVarP(&splitOutput, "output", "o", "", "output path (default: <input>_sentences.txt)")
	splitCmd.Flags().IntVar(&maxSentenceLength, "max-sentence-length", defaults.Split.MaxSentenceLength, "maximum tokens per sentence")
	splitCmd.Flags().IntVar(&minSentenceLength, "min-sentence-length", defaults.Split.MinSentenceLength, "minimum tokens per long-sentence fragment")
	splitCmd.Flags().IntVar(&contextWords, "context-words", defaults.Split.ContextWords, "context words required around a connector cut")
	splitCmd.Flags().IntVar(&minPhraseLength, "min-phrase-length", defaults.Split.MinPhraseLength, "minimum words on each side of a comma cut")

	rootCmd.AddCommand(splitCmd)
}

// applySplitOverrides layers explicitly set flags over the loaded config, so
// a config file keeps its say for everything the user did not pass.
func applySplitOverrides(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("language") {
		cfg.SourceLanguage = splitLanguage
	}
	if flags.Changed("max-sentence-length") {
		cfg.Split.MaxSentenceLength = maxSentenceLength
	}
	if flags.Changed("min-sentence-length") {
		cfg.Split.MinSentenceLength = minSentenceLength
	}
	if flags.Changed("context-words") {
		cfg.Split.ContextWords = contextWords
	}
	if flags.Changed("min-phrase-length") {
		cfg.Split.MinPhraseLength = minPhraseLength
	}
}

func runSplit(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applySplitOverrides(cmd.Flags(), cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var chunks []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(strings.Trim(strings.TrimSpace(line), `"`))
		if line != "" {
			chunks = append(chunks, line)
		}
	}
	if len(chunks) == 0 {
		return fmt.Errorf("input %s is empty", inputPath)
	}

	annotator := nlp.NewRemoteClient(nlp.RemoteOptions{
		BaseURL:        cfg.Annotator.URL,
		Token:          cfg.Annotator.Token,
		Language:       cfg.SourceLanguage,
		RequestsPerMin: cfg.Annotator.RequestsPerMin,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pipeline := splitter.NewPipeline(annotator, cfg.SourceLanguage, cfg.Split)
	result, err := pipeline.Run(ctx, chunks)
	if err != nil {
		return err
	}

	outputPath := splitOutput
	if outputPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outputPath = base + "_sentences.txt"
	}

	var sb strings.Builder
	for _, sentence := range result.Sentences {
		sb.WriteString(sentence)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write sentences: %w", err)
	}

	fmt.Printf("wrote %d sentences to %s\n", len(result.Sentences), outputPath)
	return nil
}
