package worker

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"sublingo/internal/config"
	"sublingo/internal/subtitle"
)

// Options configures one document run.
type Options struct {
	TranscriptPath string
	SentencesPath  string
	OutputDir      string
	WriteVTT       bool
	Settings       config.SubtitleSettings
}

// Result summarizes one document run.
type Result struct {
	Document          string
	TotalSegments     int
	SplitSegments     int
	AlignmentIssues   int
	AverageDuration   float64
	AverageConfidence float64
	GeneratedFiles    []string
	Align             subtitle.AlignStats
}

// outputConfigs mirrors the generated subtitle file set: source only,
// translation only, and both orderings of the bilingual layout.
var outputConfigs = []struct {
	name    string
	columns []subtitle.Column
}{
	{"src", []subtitle.Column{subtitle.ColumnSource}},
	{"trans", []subtitle.Column{subtitle.ColumnTranslation}},
	{"src_trans", []subtitle.Column{subtitle.ColumnSource, subtitle.ColumnTranslation}},
	{"trans_src", []subtitle.Column{subtitle.ColumnTranslation, subtitle.ColumnSource}},
}

// Run aligns one document's sentence pairs against its transcript and writes
// the subtitle files.
func Run(ctx context.Context, opts Options) (*Result, error) {
	transcript, err := LoadTranscript(opts.TranscriptPath)
	if err != nil {
		return nil, err
	}
	pairs, err := LoadSentencePairs(opts.SentencesPath)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no sentence pairs in %s", opts.SentencesPath)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slog.Info("aligning timestamps",
		"words", len(transcript.Words),
		"sentences", len(pairs))

	aligner := subtitle.NewAligner(transcript.Words, opts.Settings.DefaultDuration, opts.Settings.MinSimilarity)
	segments := aligner.Align(pairs)

	segments = subtitle.OptimizeGaps(segments, opts.Settings.GapThreshold)

	lengthSplitter := &subtitle.LengthSplitter{
		MaxLength:        opts.Settings.MaxLength,
		TargetMultiplier: opts.Settings.TargetMultiplier,
	}
	segments, splitCount := lengthSplitter.Apply(segments)

	subtitle.PrepareDisplay(segments)

	files, err := writeSubtitleFiles(segments, opts)
	if err != nil {
		return nil, err
	}

	result := summarize(segments, aligner.Stats(), splitCount, opts)
	result.GeneratedFiles = files

	slog.Info("document completed",
		"segments", result.TotalSegments,
		"splits", result.SplitSegments,
		"alignment_issues", result.AlignmentIssues,
		"files", len(files))
	return result, nil
}

func summarize(segments []subtitle.Segment, align subtitle.AlignStats, splitCount int, opts Options) *Result {
	result := &Result{
		Document:      strings.TrimSuffix(filepath.Base(opts.TranscriptPath), filepath.Ext(opts.TranscriptPath)),
		TotalSegments: len(segments),
		SplitSegments: splitCount,
		Align:         align,
	}

	var totalDuration, totalConfidence float64
	for _, seg := range segments {
		totalDuration += seg.Duration
		totalConfidence += seg.Confidence
		if seg.Confidence < 1.0 {
			result.AlignmentIssues++
		}
	}
	if len(segments) > 0 {
		result.AverageDuration = totalDuration / float64(len(segments))
		result.AverageConfidence = totalConfidence / float64(len(segments))
	}
	return result
}

func writeSubtitleFiles(segments []subtitle.Segment, opts Options) ([]string, error) {
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var files []string
	for _, cfg := range outputConfigs {
		path := filepath.Join(opts.OutputDir, cfg.name+".srt")
		if err := os.WriteFile(path, []byte(subtitle.RenderSRT(segments, cfg.columns)), 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		files = append(files, path)

		if opts.WriteVTT {
			path = filepath.Join(opts.OutputDir, cfg.name+".vtt")
			if err := os.WriteFile(path, []byte(subtitle.RenderVTT(segments, cfg.columns)), 0644); err != nil {
				return nil, fmt.Errorf("write %s: %w", path, err)
			}
			files = append(files, path)
		}
	}
	return files, nil
}

// LoadTranscript reads and validates a word-level transcript JSON file.
func LoadTranscript(path string) (*subtitle.Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	var transcript subtitle.Transcript
	if err := json.Unmarshal(data, &transcript); err != nil {
		return nil, fmt.Errorf("parse transcript %s: %w", path, err)
	}
	if len(transcript.Words) == 0 {
		return nil, fmt.Errorf("transcript %s has no words", path)
	}
	if err := transcript.Validate(); err != nil {
		return nil, fmt.Errorf("transcript %s: %w", path, err)
	}
	return &transcript, nil
}

// LoadSentencePairs reads a TSV file of source<TAB>translation lines. A line
// without a tab is a source sentence with an empty translation.
func LoadSentencePairs(path string) ([]subtitle.SentencePair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read sentences: %w", err)
	}
	defer f.Close()

	var pairs []subtitle.SentencePair
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		source, translation, _ := strings.Cut(line, "\t")
		pairs = append(pairs, subtitle.SentencePair{
			Source:      strings.TrimSpace(source),
			Translation: strings.TrimSpace(translation),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan sentences %s: %w", path, err)
	}
	return pairs, nil
}
