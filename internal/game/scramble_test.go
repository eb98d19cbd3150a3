package game

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrambleNeverReturnsOriginal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, word := range scrambleWords {
		if !scramblable(word) {
			continue
		}
		for i := 0; i < 50; i++ {
			got := scramble(rng, word)
			require.NotEqual(t, word, got, "scramble returned the original for %q", word)
		}
	}
}

func TestScramblePreservesLetters(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	got := scramble(rng, "bottle")
	assert.Len(t, got, len("bottle"))
	for _, r := range "bottle" {
		assert.Equal(t, strings.Count("bottle", string(r)), strings.Count(got, string(r)))
	}
}

func TestScrambleUnscramblableWords(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	// Single letters and repeated letters cannot differ after shuffling.
	assert.Equal(t, "i", scramble(rng, "i"))
	assert.Equal(t, "aa", scramble(rng, "aa"))
}

func TestScramblable(t *testing.T) {
	assert.False(t, scramblable(""))
	assert.False(t, scramblable("i"))
	assert.False(t, scramblable("aaa"))
	assert.True(t, scramblable("is"))
	assert.True(t, scramblable("ball"))
}

func TestWordScrambleChallenge(t *testing.T) {
	g := NewWordScramble(rand.New(rand.NewSource(4)))

	ch, ok := g.Next()
	require.True(t, ok)
	assert.NotEmpty(t, ch.Answer)
	assert.Equal(t, strings.ToUpper(ch.Prompt), ch.Prompt, "prompt should be upper-cased")

	assert.True(t, g.Check(ch, ch.Answer))
	assert.True(t, g.Check(ch, "  "+strings.ToUpper(ch.Answer)+" "), "answers are case-insensitive and trimmed")
	assert.False(t, g.Check(ch, ch.Answer+"x"))
}
