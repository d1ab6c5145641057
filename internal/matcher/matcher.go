package matcher

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/catalog"
)

// ErrInvalidInput is returned when Match is given an empty or
// whitespace-only message. Length limits are enforced upstream by the
// transport layer; emptiness is enforced here.
var ErrInvalidInput = errors.New("message is empty")

// MatchType classifies how confident a match is
type MatchType string

const (
	MatchTypeFAQ           MatchType = "faq_match"
	MatchTypeLowConfidence MatchType = "low_confidence"
	MatchTypeFallback      MatchType = "fallback"
)

// Result is the outcome of matching a message against the catalog.
// Category is empty on fallback.
type Result struct {
	Category   string    `json:"category,omitempty"`
	Response   string    `json:"response"`
	Confidence float64   `json:"confidence"`
	MatchType  MatchType `json:"match_type"`
}

var nonWord = regexp.MustCompile(`[^a-z0-9\s]+`)

// Matcher scores free text against the category catalog. It is pure over
// the catalog and its input, so a single instance is safely shared by
// concurrent requests.
type Matcher struct {
	cat *catalog.Catalog
}

// New creates a matcher over the given catalog
func New(cat *catalog.Catalog) *Matcher {
	return &Matcher{cat: cat}
}

// Match scores the message against every category and picks the best one.
//
// Scoring: the message is lowercased, stripped of punctuation and split
// into tokens, with stopwords and tokens shorter than three characters
// removed. For each category the raw score is the fraction of tokens
// covered by its keywords (bidirectional substring containment; a
// multi-word keyword matches against the whole normalized message).
// Confidence is 0 when nothing matches, otherwise min(raw+0.5, 1.0), so
// additional matching tokens never lower it.
//
// Ties are broken toward the category with fewer keywords (more specific),
// then toward earlier catalog declaration order.
func (m *Matcher) Match(text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidInput
	}

	normalized, tokens := normalize(text)

	bestIdx := -1
	bestScore := 0.0
	if len(tokens) > 0 {
		for i, cat := range m.cat.Categories {
			hits := countHits(normalized, tokens, cat.Keywords)
			if hits == 0 {
				continue
			}
			score := float64(hits) / float64(len(tokens))
			if score > 1.0 {
				score = 1.0
			}
			if score > bestScore || (score == bestScore && bestIdx >= 0 &&
				len(cat.Keywords) < len(m.cat.Categories[bestIdx].Keywords)) {
				bestScore = score
				bestIdx = i
			}
		}
	}

	if bestIdx < 0 {
		return &Result{
			Response:   m.cat.FallbackResponse,
			Confidence: 0,
			MatchType:  MatchTypeFallback,
		}, nil
	}

	confidence := bestScore + 0.5
	if confidence > 1.0 {
		confidence = 1.0
	}

	best := m.cat.Categories[bestIdx]
	switch {
	case confidence >= m.cat.HighThreshold:
		return &Result{
			Category:   best.Name,
			Response:   best.Response,
			Confidence: confidence,
			MatchType:  MatchTypeFAQ,
		}, nil
	case confidence >= m.cat.LowThreshold:
		return &Result{
			Category:   best.Name,
			Response:   best.Response,
			Confidence: confidence,
			MatchType:  MatchTypeLowConfidence,
		}, nil
	default:
		return &Result{
			Response:   m.cat.FallbackResponse,
			Confidence: confidence,
			MatchType:  MatchTypeFallback,
		}, nil
	}
}

// normalize lowercases the message, strips punctuation and returns both the
// cleaned text and its significant tokens
func normalize(text string) (string, []string) {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	var tokens []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 2 || stopwords[word] {
			continue
		}
		tokens = append(tokens, word)
	}
	return cleaned, tokens
}

// countHits returns how many tokens are covered by the keyword set.
// Single-word keywords match a token when either contains the other;
// multi-word keywords match as a substring of the whole normalized message
// and count one hit per word.
func countHits(normalized string, tokens []string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if strings.Contains(kw, " ") && strings.Contains(normalized, kw) {
			hits += len(strings.Fields(kw))
		}
	}
	for _, tok := range tokens {
		for _, kw := range keywords {
			kw = strings.ToLower(kw)
			if strings.Contains(kw, " ") {
				continue
			}
			if strings.Contains(tok, kw) || strings.Contains(kw, tok) {
				hits++
				break
			}
		}
	}
	return hits
}
