package splitter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"sublingo/internal/config"
	"sublingo/internal/nlp"
)

// StepStats records what one pipeline stage did.
type StepStats struct {
	Name        string
	InputCount  int
	OutputCount int
	SplitCount  int
	Elapsed     time.Duration
}

// Result carries the final sentence list and per-stage statistics.
type Result struct {
	Sentences []string
	Steps     []StepStats
}

// Pipeline runs the four splitting stages in fixed order. The order matters:
// each stage consumes the exact sentence boundaries the previous one
// produced.
type Pipeline struct {
	annotator nlp.Annotator
	language  string
	joiner    string
	settings  config.SplitSettings
}

// NewPipeline creates a split pipeline for the given language.
func NewPipeline(annotator nlp.Annotator, language string, settings config.SplitSettings) *Pipeline {
	return &Pipeline{
		annotator: annotator,
		language:  language,
		joiner:    config.Joiner(language),
		settings:  settings,
	}
}

// Run joins chunks with the language joiner and splits the text into
// sentences bounded by the configured maximum length.
func (p *Pipeline) Run(ctx context.Context, chunks []string) (*Result, error) {
	result := &Result{}
	text := strings.TrimSpace(strings.Join(chunks, p.joiner))
	sentences := []string{text}

	if p.settings.EnableMarkSplit {
		step := time.Now()
		mark := NewMarkSplitter(p.annotator, p.joiner)
		split, err := mark.Split(ctx, text)
		if err != nil {
			return nil, err
		}
		sentences = split
		result.record("split_by_mark", len(chunks), len(sentences), 0, step)
	}

	if p.settings.EnableCommaSplit && len(sentences) > 0 {
		step := time.Now()
		comma := NewCommaSplitter(p.annotator, p.settings.MinPhraseLength)
		split, count, err := comma.Split(ctx, sentences)
		if err != nil {
			return nil, err
		}
		result.record("split_by_comma", len(sentences), len(split), count, step)
		sentences = split
	}

	if p.settings.EnableConnectorSplit && len(sentences) > 0 {
		step := time.Now()
		conn := NewConnectorSplitter(p.annotator, p.language, p.settings.ContextWords)
		split, count, err := conn.Split(ctx, sentences)
		if err != nil {
			return nil, err
		}
		result.record("split_by_connector", len(sentences), len(split), count, step)
		sentences = split
	}

	if p.settings.EnableRootSplit && len(sentences) > 0 {
		step := time.Now()
		root := NewRootSplitter(p.annotator, p.joiner, p.settings.MaxSentenceLength, p.settings.MinSentenceLength)
		split, count, err := root.Split(ctx, sentences)
		if err != nil {
			return nil, err
		}
		result.record("split_by_root", len(sentences), len(split), count, step)
		sentences = split
	}

	final := sentences[:0]
	for _, s := range sentences {
		if s = strings.TrimSpace(s); s != "" {
			final = append(final, s)
		}
	}
	result.Sentences = final
	return result, nil
}

func (r *Result) record(name string, in, out, splits int, start time.Time) {
	elapsed := time.Since(start)
	r.Steps = append(r.Steps, StepStats{
		Name:        name,
		InputCount:  in,
		OutputCount: out,
		SplitCount:  splits,
		Elapsed:     elapsed,
	})
	slog.Info("split stage completed", "stage", name, "in", in, "out", out, "splits", splits)
}
