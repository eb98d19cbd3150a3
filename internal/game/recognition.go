package game

import (
	"math/rand"
	"strings"
)

// recognitionOptions is how many candidates each recognition round shows.
const recognitionOptions = 4

// lookalikes maps letters to visually similar replacements used to build
// decoy words.
var lookalikes = map[rune][]rune{
	'b': {'d', 'p'},
	'd': {'b', 'q'},
	'p': {'q', 'b'},
	'q': {'p', 'd'},
	'm': {'n', 'w'},
	'n': {'m', 'u'},
	'u': {'n', 'v'},
	'v': {'u', 'w'},
	'w': {'v', 'm'},
	'i': {'l', 'j'},
	'l': {'i', 't'},
	't': {'l', 'f'},
	'f': {'t'},
	'a': {'o', 'e'},
	'o': {'a', 'e'},
	'e': {'a', 'o'},
	'c': {'e', 'o'},
	's': {'z'},
	'z': {'s'},
	'g': {'q', 'y'},
	'y': {'g'},
	'h': {'n', 'b'},
	'r': {'n'},
	'k': {'h'},
}

// WordRecognition shows a target word together with look-alike decoys. The
// player scores by selecting the exact target among the candidates.
type WordRecognition struct {
	rng   *rand.Rand
	words []string
}

// NewWordRecognition creates a word recognition generator over the default
// pool.
func NewWordRecognition(rng *rand.Rand) *WordRecognition {
	return &WordRecognition{rng: rng, words: recognitionWords}
}

func (g *WordRecognition) Next() (Challenge, bool) {
	word := g.words[g.rng.Intn(len(g.words))]

	seen := map[string]bool{word: true}
	options := []string{word}
	for len(options) < recognitionOptions {
		decoy := g.decoy(word)
		if seen[decoy] {
			continue
		}
		seen[decoy] = true
		options = append(options, decoy)
	}

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return Challenge{
		Prompt:  "Find the word: " + strings.ToUpper(word),
		Options: options,
		Answer:  word,
	}, true
}

func (g *WordRecognition) Check(ch Challenge, input string) bool {
	return strings.TrimSpace(strings.ToLower(input)) == strings.ToLower(ch.Answer)
}

// decoy derives a look-alike of the word by replacing one letter with a
// visually similar one. Positions without a look-alike fall back to swapping
// two adjacent letters.
func (g *WordRecognition) decoy(word string) string {
	runes := []rune(word)

	// Try a few random positions for a look-alike substitution.
	for attempt := 0; attempt < len(runes)*2; attempt++ {
		i := g.rng.Intn(len(runes))
		subs, ok := lookalikes[runes[i]]
		if !ok {
			continue
		}
		out := make([]rune, len(runes))
		copy(out, runes)
		out[i] = subs[g.rng.Intn(len(subs))]
		if string(out) != word {
			return string(out)
		}
	}

	// Fallback: swap two adjacent letters.
	i := g.rng.Intn(len(runes) - 1)
	out := make([]rune, len(runes))
	copy(out, runes)
	out[i], out[i+1] = out[i+1], out[i]
	return string(out)
}
