package services

import (
	"math"
	"regexp"
	"strings"
)

// minSimilarityTokens is the whitespace token count below which a text is too
// short to compare.
const minSimilarityTokens = 5

// termPattern matches runs of two or more Unicode letters, marks, digits or
// underscores.
var termPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]{2,}`)

type SimilarityScorer struct {
	lexicon *Lexicon
}

func NewSimilarityScorer(lexicon *Lexicon) *SimilarityScorer {
	if lexicon == nil {
		lexicon = NewLexicon()
	}
	return &SimilarityScorer{lexicon: lexicon}
}

// Score returns the cosine similarity of the term-count vectors of a and b.
// It is exactly 0 when either text has fewer than five tokens or no terms
// survive stop-word filtering.
func (s *SimilarityScorer) Score(a, b string) float64 {
	if len(strings.Fields(a)) < minSimilarityTokens || len(strings.Fields(b)) < minSimilarityTokens {
		return 0.0
	}

	va := s.termCounts(a)
	vb := s.termCounts(b)
	if len(va) == 0 || len(vb) == 0 {
		return 0.0
	}

	var dot, normA, normB float64
	for term, ca := range va {
		normA += ca * ca
		if cb, ok := vb[term]; ok {
			dot += ca * cb
		}
	}
	for _, cb := range vb {
		normB += cb * cb
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Min(1, math.Max(0, sim))
}

func (s *SimilarityScorer) termCounts(text string) map[string]float64 {
	counts := make(map[string]float64)
	for _, term := range termPattern.FindAllString(strings.ToLower(text), -1) {
		if s.lexicon.isStopWord(term) {
			continue
		}
		counts[term]++
	}
	return counts
}
