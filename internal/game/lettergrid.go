package game

import (
	"math/rand"
	"strings"
)

const (
	gridSize   = 5
	gridTarget = "b"
)

// gridLetters are the visually confusable candidates shown in the grid.
var gridLetters = []string{"b", "d", "q", "p"}

// LetterGrid generates 5x5 grids of confusable letters. The player scores by
// selecting the target letter; any other selection is a miss.
type LetterGrid struct {
	rng *rand.Rand
}

// NewLetterGrid creates a letter identification generator.
func NewLetterGrid(rng *rand.Rand) *LetterGrid {
	return &LetterGrid{rng: rng}
}

func (g *LetterGrid) Next() (Challenge, bool) {
	options := make([]string, gridSize*gridSize)
	for i := range options {
		options[i] = gridLetters[g.rng.Intn(len(gridLetters))]
	}

	return Challenge{
		Prompt:  "Find all " + gridTarget + " letters",
		Options: options,
		Answer:  gridTarget,
	}, true
}

func (g *LetterGrid) Check(ch Challenge, input string) bool {
	return strings.TrimSpace(strings.ToLower(input)) == ch.Answer
}
