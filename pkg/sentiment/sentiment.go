// Package sentiment defines the polarity provider used by the visual
// mapping stage.
//
// Sentiment analysis is an injected capability, not part of the core
// pipeline contract: callers pick a Provider and the pipeline degrades to
// neutral polarity when none is available. Providers must return values in
// [-1, 1] and must never fail.
package sentiment

import "github.com/coverforge/coverforge/pkg/textstat"

// Provider scores the polarity of a text in [-1, 1], where -1 is maximally
// negative and 1 maximally positive.
type Provider interface {
	Polarity(text string) float64
}

// Null is the no-op provider: every text scores neutral.
// It is the default when sentiment analysis is disabled or unavailable.
type Null struct{}

// Polarity always returns 0.
func (Null) Polarity(string) float64 { return 0 }

// Lexicon scores polarity from an embedded valence word list.
// The score is the mean valence of matched tokens scaled to [-1, 1];
// texts with no matched tokens score neutral.
type Lexicon struct{}

// Polarity implements Provider.
func (Lexicon) Polarity(text string) float64 {
	var sum float64
	var matched int
	for _, tok := range textstat.Tokenize(text) {
		if v, ok := valences[tok]; ok {
			sum += v
			matched++
		}
	}
	if matched == 0 {
		return 0
	}

	// Valences range over [-5, 5]; dividing the mean by 5 lands in [-1, 1].
	p := sum / float64(matched) / 5
	if p > 1 {
		p = 1
	}
	if p < -1 {
		p = -1
	}
	return p
}

var (
	_ Provider = Null{}
	_ Provider = Lexicon{}
)
