package engine

import (
	"context"
	"slices"
	"strings"
)

// Classifier flags text that should be hidden behind a sensitivity warning.
type Classifier interface {
	Classify(text string) bool
}

// ContextClassifier is implemented by classifiers that do I/O. annotate passes
// them the caller's context.
type ContextClassifier interface {
	Classifier
	ClassifyContext(ctx context.Context, text string) bool
}

func classify(ctx context.Context, c Classifier, text string) bool {
	if cc, ok := c.(ContextClassifier); ok {
		return cc.ClassifyContext(ctx, text)
	}
	return c.Classify(text)
}

// DefaultSensitiveTerms is the built-in term list for KeywordClassifier.
var DefaultSensitiveTerms = []string{
	"nsfw", "18+", "porn", "xxx", "sex", "nude", "naked", "boobs", "ass",
	"thicc", "hot girl", "bikini", "lingerie", "onlyfans", "dick", "cock",
	"pussy", "hentai", "ahegao", "gore", "death", "murder", "kill", "suicide",
	"strip", "stripper",
}

// KeywordClassifier is a blunt substring heuristic: text is sensitive when it
// contains any configured term, ignoring case.
type KeywordClassifier struct {
	terms []string
}

// NewKeywordClassifier lowercases and de-blanks terms once, up front.
func NewKeywordClassifier(terms []string) *KeywordClassifier {
	kc := &KeywordClassifier{terms: make([]string, 0, len(terms))}
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			kc.terms = append(kc.terms, t)
		}
	}
	return kc
}

func (kc *KeywordClassifier) Classify(text string) bool {
	if text == "" || len(kc.terms) == 0 {
		return false
	}
	lower := strings.ToLower(text)
	for _, t := range kc.terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// Terms returns a copy of the normalized term set.
func (kc *KeywordClassifier) Terms() []string {
	return append([]string(nil), kc.terms...)
}

// annotate sets IsSensitive on every item. Channel entries are also checked by
// their display name. It stops at the first item after ctx ends.
func annotate(ctx context.Context, c Classifier, items []SearchResultItem) error {
	if c == nil {
		return nil
	}
	for i := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		it := &items[i]
		it.IsSensitive = classify(ctx, c, it.Title)
		if !it.IsSensitive && it.Kind == KindChannel {
			it.IsSensitive = classify(ctx, c, it.ChannelTitle)
		}
	}
	return ctx.Err()
}

// NewClassifier picks the classifier named by c.Classifier. The keyword
// classifier covers DefaultSensitiveTerms plus c.SensitiveTerms and backs the
// LLM classifier when the model is unreachable.
func NewClassifier(c Config) Classifier {
	kw := NewKeywordClassifier(slices.Concat(DefaultSensitiveTerms, c.SensitiveTerms))
	if strings.EqualFold(c.Classifier, "llm") && c.LLMAPIKey != "" {
		return NewLLMClassifier(c, kw)
	}
	return kw
}
