package game

import (
	"math/rand"
	"strings"
)

// LetterElimination shows misspelled words containing one extra letter. The
// player scores by typing the corrected word. Pairs are drawn from a fixed
// pool without replacement, so the round can end before the countdown does.
type LetterElimination struct {
	rng       *rand.Rand
	remaining []wordPair
}

// NewLetterElimination creates a letter elimination generator over the
// default pair pool.
func NewLetterElimination(rng *rand.Rand) *LetterElimination {
	remaining := make([]wordPair, len(eliminationPairs))
	copy(remaining, eliminationPairs)
	return &LetterElimination{rng: rng, remaining: remaining}
}

func (g *LetterElimination) Next() (Challenge, bool) {
	if len(g.remaining) == 0 {
		return Challenge{}, false
	}

	i := g.rng.Intn(len(g.remaining))
	pair := g.remaining[i]
	g.remaining = append(g.remaining[:i], g.remaining[i+1:]...)

	return Challenge{
		Prompt: strings.ToUpper(pair.incorrect),
		Answer: pair.word,
	}, true
}

func (g *LetterElimination) Check(ch Challenge, input string) bool {
	return strings.TrimSpace(strings.ToLower(input)) == strings.ToLower(ch.Answer)
}
