package nlp

import (
	"context"
	"errors"
)

// Universal POS tags used by the splitting policies. Any backend adapter must
// map its native tagset onto these.
const (
	POSVerb  = "VERB"
	POSAux   = "AUX"
	POSPron  = "PRON"
	POSNoun  = "NOUN"
	POSPropn = "PROPN"
	POSPunct = "PUNCT"
)

// Dependency labels used by the splitting policies.
const (
	DepNsubj     = "nsubj"
	DepNsubjPass = "nsubjpass"
	DepRoot      = "ROOT"
	DepMark      = "mark"
	DepDet       = "det"
	DepPron      = "pron"
	DepCase      = "case"
)

// ErrUnavailable is returned when the annotation backend cannot be reached or
// loaded. Sentence splitting treats this as fatal.
var ErrUnavailable = errors.New("nlp: annotator unavailable")

// Token is a single annotated token. Start and End are byte offsets into the
// text passed to Annotate, so callers can slice the original text instead of
// re-joining token strings.
type Token struct {
	Text    string `json:"text"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	POS     string `json:"pos"`
	Dep     string `json:"dep"`
	HeadPOS string `json:"head_pos"`
	SentEnd bool   `json:"is_sent_end"`
}

// IsPunct reports whether the token is punctuation.
func (t Token) IsPunct() bool {
	return t.POS == POSPunct
}

// Annotator provides linguistic annotations for a piece of text. Annotate is
// the only suspension point in the splitting pipeline; implementations should
// honor ctx cancellation.
type Annotator interface {
	Annotate(ctx context.Context, text string) ([]Token, error)
}
