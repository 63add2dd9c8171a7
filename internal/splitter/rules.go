package splitter

import (
	"strings"

	"sublingo/internal/nlp"
)

// connectorSets lists the connector words that may open a new sentence,
// per language.
var connectorSets = map[string][]string{
	"en": {"that", "which", "where", "when", "because", "but", "and", "or"},
	"zh": {"因为", "所以", "但是", "而且", "虽然", "如果", "即使", "尽管"},
	"ja": {"けれども", "しかし", "だから", "それで", "ので", "のに", "ため"},
	"fr": {"que", "qui", "où", "quand", "parce que", "mais", "et", "ou"},
	"ru": {"что", "который", "где", "когда", "потому что", "но", "и", "или"},
	"es": {"que", "cual", "donde", "cuando", "porque", "pero", "y", "o"},
	"de": {"dass", "welche", "wo", "wann", "weil", "aber", "und", "oder"},
	"it": {"che", "quale", "dove", "quando", "perché", "ma", "e", "o"},
}

// depRules keys the split decision on the connector's dependency label and
// the POS of its syntactic head.
type depRules struct {
	markDep     string
	detPronDeps []string
	verbPOS     string
	nounPOS     []string
}

var depRuleTable = map[string]depRules{
	"en": {nlp.DepMark, []string{nlp.DepDet, nlp.DepPron}, nlp.POSVerb, []string{nlp.POSNoun, nlp.POSPropn}},
	"zh": {nlp.DepMark, []string{nlp.DepDet, nlp.DepPron}, nlp.POSVerb, []string{nlp.POSNoun, nlp.POSPropn}},
	"ja": {nlp.DepMark, []string{nlp.DepCase}, nlp.POSVerb, []string{nlp.POSNoun, nlp.POSPropn}},
	"fr": {nlp.DepMark, []string{nlp.DepDet, nlp.DepPron}, nlp.POSVerb, []string{nlp.POSNoun, nlp.POSPropn}},
	"ru": {nlp.DepMark, []string{nlp.DepDet}, nlp.POSVerb, []string{nlp.POSNoun, nlp.POSPropn}},
	"es": {nlp.DepMark, []string{nlp.DepDet, nlp.DepPron}, nlp.POSVerb, []string{nlp.POSNoun, nlp.POSPropn}},
	"de": {nlp.DepMark, []string{nlp.DepDet, nlp.DepPron}, nlp.POSVerb, []string{nlp.POSNoun, nlp.POSPropn}},
	"it": {nlp.DepMark, []string{nlp.DepDet, nlp.DepPron}, nlp.POSVerb, []string{nlp.POSNoun, nlp.POSPropn}},
}

// contractions never start a new sentence, and the token they attach to never
// gets cut away from them.
var contractions = map[string]bool{
	"'s": true, "'re": true, "'ve": true, "'ll": true, "'d": true,
}

// splitBeforeConnector decides whether a sentence may be cut immediately
// before tok for the given language.
func splitBeforeConnector(lang string, tok nlp.Token) bool {
	connectors, ok := connectorSets[lang]
	if !ok {
		return false
	}
	rules, ok := depRuleTable[lang]
	if !ok {
		return false
	}

	lower := strings.ToLower(tok.Text)
	found := false
	for _, c := range connectors {
		if lower == c {
			found = true
			break
		}
	}
	if !found {
		return false
	}

	// English "that" is only a clause opener when it marks a verb.
	if lang == "en" && lower == "that" {
		return tok.Dep == rules.markDep && tok.HeadPOS == rules.verbPOS
	}

	// Determiners and pronouns attached to a noun head stay with the noun.
	for _, dep := range rules.detPronDeps {
		if tok.Dep == dep {
			for _, pos := range rules.nounPOS {
				if tok.HeadPOS == pos {
					return false
				}
			}
		}
	}

	return true
}
