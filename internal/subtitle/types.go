package subtitle

import "fmt"

// Word is a single word from the ASR transcript with timestamps in seconds.
type Word struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Transcript is the word-level ASR result for one document.
type Transcript struct {
	LanguageCode string `json:"language_code"`
	Text         string `json:"text"`
	Words        []Word `json:"words"`
}

// Validate checks the word stream contract: start <= end per word,
// non-decreasing starts across the stream.
func (t *Transcript) Validate() error {
	for i, w := range t.Words {
		if w.Start > w.End {
			return fmt.Errorf("word %d %q: start %.3f after end %.3f", i, w.Text, w.Start, w.End)
		}
		if i > 0 && w.Start < t.Words[i-1].Start {
			return fmt.Errorf("word %d %q: start %.3f before previous start %.3f", i, w.Text, w.Start, t.Words[i-1].Start)
		}
	}
	return nil
}

// SentencePair couples a source sentence with its translation.
type SentencePair struct {
	Source      string
	Translation string
}

// Segment is one subtitle unit.
type Segment struct {
	Index              int
	Start              float64
	End                float64
	Duration           float64
	SourceText         string
	TranslatedText     string
	DisplaySource      string
	DisplayTranslation string
	Confidence         float64
	NeedsSplit         bool
}

// Reindex renumbers segments in slice order.
func Reindex(segments []Segment) {
	for i := range segments {
		segments[i].Index = i
	}
}
