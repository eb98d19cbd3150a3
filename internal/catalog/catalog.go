// Package catalog describes the set of assessments and tracks which of them
// the local user has completed.
package catalog

import (
	"sort"

	"github.com/dyslexiaid/dyslexiaid-go/internal/game"
)

// Test is one catalog entry: the card shown on the dashboard plus the name
// its results are stored under.
type Test struct {
	Number      int
	Name        string
	Title       string
	Description string
}

var tests = []Test{
	{
		Number:      1,
		Name:        game.TestLetterIdentification,
		Title:       "Reading Speed Test",
		Description: "Evaluate your reading speed and comprehension with our adaptive assessment tool designed specifically for dyslexic readers.",
	},
	{
		Number:      2,
		Name:        game.TestWordRecognition,
		Title:       "Word Recognition",
		Description: "Test your ability to recognize and differentiate between similar-looking words with our specialized word recognition assessment.",
	},
	{
		Number:      3,
		Name:        game.TestWordScramble,
		Title:       "Letter Sequencing",
		Description: "Challenge your sequential processing skills with our letter arrangement and pattern recognition exercises.",
	},
	{
		Number:      4,
		Name:        game.TestLetterElimination,
		Title:       "Phonological Awareness",
		Description: "Assess your phonological processing abilities with our comprehensive sound-based recognition test.",
	},
}

// Tests returns the catalog in display order.
func Tests() []Test {
	out := make([]Test, len(tests))
	copy(out, tests)
	return out
}

// ByNumber looks up a catalog entry.
func ByNumber(number int) (Test, bool) {
	for _, t := range tests {
		if t.Number == number {
			return t, true
		}
	}
	return Test{}, false
}

// CompletionSet is the set of test numbers the local client believes are
// completed. It is derived independently of server state.
type CompletionSet map[int]struct{}

// Merge adds a test number; merging an existing member is a no-op.
func (s CompletionSet) Merge(number int) {
	s[number] = struct{}{}
}

// Has reports whether the test number is in the set.
func (s CompletionSet) Has(number int) bool {
	_, ok := s[number]
	return ok
}

// Numbers returns the members in ascending order.
func (s CompletionSet) Numbers() []int {
	out := make([]int, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
