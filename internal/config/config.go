package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// SplitSettings holds sentence splitting parameters.
type SplitSettings struct {
	MaxSentenceLength int `toml:"max_sentence_length"`
	MinSentenceLength int `toml:"min_sentence_length"`
	ContextWords      int `toml:"context_words"`
	MinPhraseLength   int `toml:"min_phrase_length"`

	EnableMarkSplit      bool `toml:"enable_mark_split"`
	EnableCommaSplit     bool `toml:"enable_comma_split"`
	EnableConnectorSplit bool `toml:"enable_connector_split"`
	EnableRootSplit      bool `toml:"enable_root_split"`
}

// SubtitleSettings holds alignment and display parameters.
type SubtitleSettings struct {
	GapThreshold     float64 `toml:"gap_threshold"`
	MaxLength        int     `toml:"max_length"`
	TargetMultiplier float64 `toml:"target_multiplier"`
	MinSimilarity    float64 `toml:"min_similarity"`
	DefaultDuration  float64 `toml:"default_duration"`
}

// AnnotatorSettings holds the annotation service connection parameters. The
// URL and token may also come from SUBLINGO_ANNOTATOR_URL and
// SUBLINGO_ANNOTATOR_TOKEN.
type AnnotatorSettings struct {
	URL            string `toml:"url"`
	Token          string `toml:"token"`
	RequestsPerMin int    `toml:"requests_per_min"`
}

// Config holds the full application configuration.
type Config struct {
	SourceLanguage string `toml:"source_language"`
	TargetLanguage string `toml:"target_language"`
	MaxConcurrent  int    `toml:"max_concurrent"`

	Split     SplitSettings     `toml:"split"`
	Subtitle  SubtitleSettings  `toml:"subtitle"`
	Annotator AnnotatorSettings `toml:"annotator"`
}

// Default returns a Config with repository defaults.
func Default() *Config {
	return &Config{
		SourceLanguage: "en",
		TargetLanguage: "zh",
		MaxConcurrent:  3,
		Split: SplitSettings{
			MaxSentenceLength:    60,
			MinSentenceLength:    30,
			ContextWords:         5,
			MinPhraseLength:      3,
			EnableMarkSplit:      true,
			EnableCommaSplit:     true,
			EnableConnectorSplit: true,
			EnableRootSplit:      true,
		},
		Subtitle: SubtitleSettings{
			GapThreshold:     1.0,
			MaxLength:        50,
			TargetMultiplier: 1.2,
			MinSimilarity:    0.9,
			DefaultDuration:  2.0,
		},
		Annotator: AnnotatorSettings{
			URL:            "http://127.0.0.1:8765",
			RequestsPerMin: 120,
		},
	}
}

// Load reads a TOML config file over the defaults. A missing path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Split.MaxSentenceLength <= 0 {
		return fmt.Errorf("config: max_sentence_length must be positive, got %d", c.Split.MaxSentenceLength)
	}
	if c.Split.MinSentenceLength <= 0 || c.Split.MinSentenceLength > c.Split.MaxSentenceLength {
		return fmt.Errorf("config: min_sentence_length must be in (0, max_sentence_length], got %d", c.Split.MinSentenceLength)
	}
	if c.Subtitle.GapThreshold < 0 {
		return fmt.Errorf("config: gap_threshold must not be negative, got %f", c.Subtitle.GapThreshold)
	}
	if c.Subtitle.MaxLength <= 0 {
		return fmt.Errorf("config: max_length must be positive, got %d", c.Subtitle.MaxLength)
	}
	if c.Subtitle.TargetMultiplier <= 0 {
		return fmt.Errorf("config: target_multiplier must be positive, got %f", c.Subtitle.TargetMultiplier)
	}
	return nil
}
