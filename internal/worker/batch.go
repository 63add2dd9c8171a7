package worker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"sublingo/internal/config"
)

// JobDocument is one document entry in a batch job file.
type JobDocument struct {
	Name       string `yaml:"name"`
	Transcript string `yaml:"transcript"`
	Sentences  string `yaml:"sentences"`
	OutputDir  string `yaml:"output_dir"`
}

// Job is a YAML batch description: a list of documents sharing one settings
// block.
type Job struct {
	OutputDir string        `yaml:"output_dir"`
	VTT       bool          `yaml:"vtt"`
	Documents []JobDocument `yaml:"documents"`
}

// LoadJob reads and validates a batch job file.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}

	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parse job file %s: %w", path, err)
	}
	if len(job.Documents) == 0 {
		return nil, fmt.Errorf("job file %s lists no documents", path)
	}
	for i, doc := range job.Documents {
		if doc.Transcript == "" || doc.Sentences == "" {
			return nil, fmt.Errorf("job document %d: transcript and sentences are required", i)
		}
	}
	return &job, nil
}

func (d JobDocument) name() string {
	if d.Name != "" {
		return d.Name
	}
	return strings.TrimSuffix(filepath.Base(d.Transcript), filepath.Ext(d.Transcript))
}

// RunJob processes the job's documents with bounded concurrency. Each
// document runs the sequential pipeline on its own; only whole documents run
// in parallel.
func RunJob(ctx context.Context, job *Job, settings config.SubtitleSettings, maxConcurrent int) ([]*Result, error) {
	runID := uuid.NewString()[:8]
	log := slog.With("run_id", runID)
	log.Info("starting batch run", "documents", len(job.Documents), "max_concurrent", maxConcurrent)

	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	var (
		mu      sync.Mutex
		results []*Result
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i, doc := range job.Documents {
		i, doc := i, doc
		g.Go(func() error {
			outDir := doc.OutputDir
			if outDir == "" {
				outDir = filepath.Join(job.OutputDir, doc.name())
			}

			log.Info("processing document", "document", doc.name(), "position", fmt.Sprintf("%d/%d", i+1, len(job.Documents)))

			result, err := Run(gctx, Options{
				TranscriptPath: doc.Transcript,
				SentencesPath:  doc.Sentences,
				OutputDir:      outDir,
				WriteVTT:       job.VTT,
				Settings:       settings,
			})
			if err != nil {
				return fmt.Errorf("document %s: %w", doc.name(), err)
			}
			result.Document = doc.name()

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Document < results[j].Document
	})

	log.Info("batch run completed", "documents", len(results))
	return results, nil
}
