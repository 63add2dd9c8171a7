package splitter

import (
	"context"
	"testing"

	"sublingo/internal/nlp"
)

func TestConnectorSplitter_SplitsBeforeConnector(t *testing.T) {
	s := NewConnectorSplitter(newStub(), "en", 5)

	got, splits, err := s.Split(context.Background(), []string{
		"She finished the report early because the team needed results before the deadline",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"She finished the report early",
		"because the team needed results before the deadline",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d parts %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("part %d = %q, want %q", i, got[i], want[i])
		}
	}
	if splits != 1 {
		t.Errorf("splits = %d, want 1", splits)
	}
}

func TestConnectorSplitter_InsufficientContextNoSplit(t *testing.T) {
	s := NewConnectorSplitter(newStub(), "en", 5)

	input := "cats and dogs fight"
	got, splits, err := s.Split(context.Background(), []string{input})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != input {
		t.Errorf("expected no split, got %v", got)
	}
	if splits != 0 {
		t.Errorf("splits = %d, want 0", splits)
	}
}

func TestConnectorSplitter_ContractionPinsConnector(t *testing.T) {
	s := NewConnectorSplitter(newStub(), "en", 5)

	got, _, err := s.Split(context.Background(), []string{
		"She finished the report early that 's late because winter nights grew long again",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The cut lands before "because", never before the "that" glued to "'s".
	if len(got) != 2 {
		t.Fatalf("got %d parts %v, want 2", len(got), got)
	}
	if got[0] != "She finished the report early that 's late" {
		t.Errorf("part 0 = %q", got[0])
	}
	if got[1] != "because winter nights grew long again" {
		t.Errorf("part 1 = %q", got[1])
	}
}

func TestConnectorSplitter_ThatDependsOnAnnotation(t *testing.T) {
	input := "She finished the report early that the team needed results before deadline"

	// "that" marking a verb opens a clause.
	s := NewConnectorSplitter(newStub(), "en", 5)
	got, _, err := s.Split(context.Background(), []string{input})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("mark-annotated 'that' should split, got %v", got)
	}

	// "that" as a determiner on a noun head stays put.
	lexicon := make(map[string]lexEntry, len(englishLexicon))
	for k, v := range englishLexicon {
		lexicon[k] = v
	}
	lexicon["that"] = lexEntry{pos: nlp.POSPron, dep: nlp.DepDet, headPOS: nlp.POSNoun}

	s = NewConnectorSplitter(&stubAnnotator{lexicon: lexicon}, "en", 5)
	got, _, err = s.Split(context.Background(), []string{input})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != input {
		t.Errorf("determiner 'that' should not split, got %v", got)
	}
}

func TestConnectorSplitter_UnsupportedLanguage(t *testing.T) {
	s := NewConnectorSplitter(newStub(), "xx", 5)

	input := "She finished the report early because the team needed results before the deadline"
	got, splits, err := s.Split(context.Background(), []string{input})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || splits != 0 {
		t.Errorf("unsupported language must pass through, got %v (splits %d)", got, splits)
	}
}
