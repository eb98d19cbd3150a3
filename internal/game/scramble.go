package game

import (
	"math/rand"
	"strings"
)

// WordScramble generates scrambled words. The player scores by typing the
// original word back.
type WordScramble struct {
	rng   *rand.Rand
	words []string
}

// NewWordScramble creates a word scramble generator over the default pool.
func NewWordScramble(rng *rand.Rand) *WordScramble {
	return &WordScramble{rng: rng, words: scrambleWords}
}

func (g *WordScramble) Next() (Challenge, bool) {
	word := g.words[g.rng.Intn(len(g.words))]

	return Challenge{
		Prompt: strings.ToUpper(scramble(g.rng, word)),
		Answer: word,
	}, true
}

func (g *WordScramble) Check(ch Challenge, input string) bool {
	return strings.TrimSpace(strings.ToLower(input)) == strings.ToLower(ch.Answer)
}

// scramble shuffles the word's letters with Fisher-Yates, reshuffling until
// the result differs from the original. Words that cannot be rearranged into
// something different (single letter, or all letters identical) are returned
// unchanged.
func scramble(rng *rand.Rand, word string) string {
	if !scramblable(word) {
		return word
	}

	letters := []rune(word)
	for {
		for i := len(letters) - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			letters[i], letters[j] = letters[j], letters[i]
		}
		if string(letters) != word {
			return string(letters)
		}
	}
}

// scramblable reports whether the word has at least two distinct letters.
func scramblable(word string) bool {
	runes := []rune(word)
	if len(runes) < 2 {
		return false
	}
	for _, r := range runes[1:] {
		if r != runes[0] {
			return true
		}
	}
	return false
}
