package splitter

import (
	"context"
	"log/slog"
	"strings"

	"sublingo/internal/nlp"
)

// dpWindowSlack widens the DP search window past max length so a near-miss
// boundary can still be chosen; overshoot is repaired by the forced split.
const dpWindowSlack = 20

// RootSplitter cuts sentences longer than maxLen tokens at grammatically
// permissible points (sentence ends, verbs, syntactic roots) using a
// minimum-cut dynamic program with a length floor. Fragments the DP cannot
// shorten are force-split into balanced token runs, so the length bound
// always holds on output.
type RootSplitter struct {
	annotator nlp.Annotator
	joiner    string
	maxLen    int
	minLen    int
}

// NewRootSplitter creates a root splitter.
func NewRootSplitter(annotator nlp.Annotator, joiner string, maxLen, minLen int) *RootSplitter {
	return &RootSplitter{annotator: annotator, joiner: joiner, maxLen: maxLen, minLen: minLen}
}

// Split processes every sentence and returns the expanded list plus the
// number of fragments added.
func (s *RootSplitter) Split(ctx context.Context, sentences []string) ([]string, int, error) {
	var out []string
	added := 0

	for _, sent := range sentences {
		sent = strings.TrimSpace(sent)
		if sent == "" {
			continue
		}

		doc, err := annotate(ctx, s.annotator, sent)
		if err != nil {
			return nil, 0, err
		}

		if len(doc.tokens) <= s.maxLen {
			out = append(out, sent)
			continue
		}

		slog.Debug("splitting long sentence", "tokens", len(doc.tokens), "max", s.maxLen)

		parts := s.splitTokens(doc.tokens)
		added += len(parts) - 1
		out = append(out, parts...)
	}

	return out, added, nil
}

// splitTokens runs the DP pass and force-splits any fragment still exceeding
// the length bound.
func (s *RootSplitter) splitTokens(tokens []nlp.Token) []string {
	ranges := s.dpRanges(tokens)

	var parts []string
	for _, r := range ranges {
		frag := tokens[r[0]:r[1]]
		if len(frag) > s.maxLen {
			parts = append(parts, s.forceSplit(frag)...)
		} else {
			parts = append(parts, joinTokens(frag, s.joiner))
		}
	}
	return parts
}

// dpRanges computes the minimum number of cuts such that every fragment has
// at least minLen tokens and ends at a permissible boundary. Returns token
// index ranges; when no valid solution exists the whole span is returned as
// one range for the forced pass to handle.
func (s *RootSplitter) dpRanges(tokens []nlp.Token) [][2]int {
	n := len(tokens)
	const inf = int(^uint(0) >> 1)

	dp := make([]int, n+1)
	prev := make([]int, n+1)
	for i := 1; i <= n; i++ {
		dp[i] = inf
	}

	for i := 1; i <= n; i++ {
		lo := max(0, i-(s.maxLen+dpWindowSlack))
		for j := lo; j < i; j++ {
			if i-j < s.minLen {
				continue
			}
			if j != 0 && !cutBoundary(tokens[j-1]) {
				continue
			}
			if dp[j] != inf && dp[j]+1 < dp[i] {
				dp[i] = dp[j] + 1
				prev[i] = j
			}
		}
	}

	if dp[n] == inf {
		return [][2]int{{0, n}}
	}

	var ranges [][2]int
	for i := n; i > 0; {
		j := prev[i]
		ranges = append(ranges, [2]int{j, i})
		i = j
	}
	// Reverse into document order.
	for l, r := 0, len(ranges)-1; l < r; l, r = l+1, r-1 {
		ranges[l], ranges[r] = ranges[r], ranges[l]
	}
	return ranges
}

// cutBoundary reports whether a fragment may end after this token.
func cutBoundary(t nlp.Token) bool {
	return t.SentEnd || t.POS == nlp.POSVerb || t.POS == nlp.POSAux || t.Dep == nlp.DepRoot
}

// forceSplit divides tokens into ceil(n/maxLen) balanced runs, each at most
// maxLen tokens. The remainder is spread over the leading runs so no run
// overflows.
func (s *RootSplitter) forceSplit(tokens []nlp.Token) []string {
	n := len(tokens)
	numParts := (n + s.maxLen - 1) / s.maxLen
	base := n / numParts
	extra := n % numParts

	var parts []string
	start := 0
	for p := 0; p < numParts; p++ {
		size := base
		if p < extra {
			size++
		}
		if part := joinTokens(tokens[start:start+size], s.joiner); part != "" {
			parts = append(parts, part)
		}
		start += size
	}
	return parts
}
