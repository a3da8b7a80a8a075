// Package textstat extracts quantifiable features from prose.
//
// Given a raw document it computes token and sentence statistics, lexical
// entropy, keyword density, and a reproducible content hash. All results are
// value types produced once per input; nothing in this package holds state
// between calls, so concurrent analysis of different documents needs no
// coordination.
//
// Empty or all-punctuation input is not an error: every statistic degrades
// to its zero value.
package textstat

import (
	"crypto/md5"
	"encoding/hex"
	"math"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
)

// WordCount pairs a token with its occurrence count.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// FrequencyProfile summarizes the token frequency distribution.
type FrequencyProfile struct {
	// Counts maps each distinct token to its occurrence count.
	Counts map[string]int `json:"-"`

	// TopWords are the 10 most frequent tokens, ties broken by first
	// occurrence in the text.
	TopWords []WordCount `json:"top_words"`

	// Variance is the population variance of all occurrence counts
	// (0 for empty input).
	Variance float64 `json:"variance"`

	// UniqueRatio is distinct tokens / total tokens (0 for empty input).
	UniqueRatio float64 `json:"unique_ratio"`
}

// RhythmProfile describes sentence structure patterns.
type RhythmProfile struct {
	// AvgLength is the mean number of words per sentence.
	AvgLength float64 `json:"avg_length"`

	// Variance is the population variance of per-sentence word counts.
	Variance float64 `json:"variance"`

	// Count is the number of sentences.
	Count int `json:"count"`
}

// Features is the immutable analysis result for one document.
// Sentiment is filled in by the caller from a sentiment.Provider; the
// analyzer itself never computes polarity.
type Features struct {
	Tokens    []string         `json:"-"`
	Sentences []string         `json:"-"`
	Frequency FrequencyProfile `json:"frequency"`
	Entropy   float64          `json:"entropy"`
	Keywords  []WordCount      `json:"keywords"`
	Rhythm    RhythmProfile    `json:"rhythm"`
	Hash      string           `json:"hash"`
	Sentiment float64          `json:"sentiment"`
}

// markupChars are stripped before tokenization so markdown syntax does not
// leak into the token stream.
const markupChars = "#*`[](){}"

// Tokenize lowercases text, strips markup punctuation, and returns the
// maximal runs of ASCII letters in appearance order. A run touching a
// digit or underscore on either side ("utf8", "snake_case") is dropped
// whole, never split into its letter parts; runs separated by other
// punctuation are independent tokens.
func Tokenize(text string) []string {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(markupChars, r) {
			return ' '
		}
		return r
	}, strings.ToLower(text))

	joins := func(b byte) bool {
		return (b >= '0' && b <= '9') || b == '_'
	}

	var tokens []string
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		bounded := (start == 0 || !joins(clean[start-1])) &&
			(end == len(clean) || !joins(clean[end]))
		if bounded {
			tokens = append(tokens, clean[start:end])
		}
		start = -1
	}
	for i, r := range clean {
		if r >= 'a' && r <= 'z' {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(clean))
	return tokens
}

// SplitSentences splits text on runs of '.', '!', and '?' and returns the
// trimmed non-empty fragments in order.
func SplitSentences(text string) []string {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	sentences := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if s := strings.TrimSpace(f); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// Hash returns the MD5 digest of the UTF-8 bytes of text, hex-encoded.
// MD5 is used for reproducibility, not security: the digest is stable
// across runs, processes, and platforms for the same byte sequence.
func Hash(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Entropy computes the Shannon entropy (base 2) of the token frequency
// distribution, in bits. Returns 0 for an empty token set.
//
// The sum runs in first-occurrence order, not map order: float addition
// is not associative, and the result must be bitwise identical across
// calls because it seeds downstream rendering decisions.
func Entropy(tokens []string) float64 {
	total := len(tokens)
	if total == 0 {
		return 0
	}

	counts, order := countTokens(tokens)

	var entropy float64
	for _, t := range order {
		p := float64(counts[t]) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// Analyze runs the full feature extraction over text.
func Analyze(text string) Features {
	tokens := Tokenize(text)
	sentences := SplitSentences(text)

	return Features{
		Tokens:    tokens,
		Sentences: sentences,
		Frequency: frequencyProfile(tokens),
		Entropy:   Entropy(tokens),
		Keywords:  keywords(tokens),
		Rhythm:    rhythm(sentences),
		Hash:      Hash(text),
	}
}

func frequencyProfile(tokens []string) FrequencyProfile {
	counts, order := countTokens(tokens)

	profile := FrequencyProfile{
		Counts:   counts,
		TopWords: topCounts(counts, order, 10),
	}

	if len(tokens) > 0 {
		values := make([]float64, 0, len(counts))
		for _, w := range order {
			values = append(values, float64(counts[w]))
		}
		// stats errors only on empty input, which is excluded here
		profile.Variance, _ = stats.PopulationVariance(values)
		profile.UniqueRatio = float64(len(counts)) / float64(len(tokens))
	}
	return profile
}

// keywords returns the 5 most frequent tokens after removing stop words and
// tokens of length <= 3, ties broken by first occurrence.
func keywords(tokens []string) []WordCount {
	filtered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if len(t) > 3 && !stopWords[t] {
			filtered = append(filtered, t)
		}
	}
	counts, order := countTokens(filtered)
	return topCounts(counts, order, 5)
}

func rhythm(sentences []string) RhythmProfile {
	if len(sentences) == 0 {
		return RhythmProfile{}
	}

	lengths := make([]float64, len(sentences))
	for i, s := range sentences {
		lengths[i] = float64(len(strings.Fields(s)))
	}

	mean, _ := stats.Mean(lengths)
	variance, _ := stats.PopulationVariance(lengths)
	return RhythmProfile{
		AvgLength: mean,
		Variance:  variance,
		Count:     len(sentences),
	}
}

// countTokens tallies occurrences and records each distinct token in first
// encountered order, which is the tie-break order for rankings.
func countTokens(tokens []string) (map[string]int, []string) {
	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}
	return counts, order
}

// topCounts ranks tokens by count descending and takes the first n.
// The stable sort over first-occurrence order implements the tie-break.
func topCounts(counts map[string]int, order []string, n int) []WordCount {
	ranked := make([]WordCount, len(order))
	for i, w := range order {
		ranked[i] = WordCount{Word: w, Count: counts[w]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
