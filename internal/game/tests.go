package game

import (
	"fmt"
	"math/rand"
)

// Test names as stored in test results. Result rows key on these, so the
// strings must stay stable.
const (
	TestLetterIdentification = "Letter Identification"
	TestWordRecognition      = "Word Recognition"
	TestWordScramble         = "Word Scramble"
	TestLetterElimination    = "Letter Elimination"
)

// ForTest builds a running engine for the numbered test (1-4).
func ForTest(number int, rng *rand.Rand) (*Engine, error) {
	switch number {
	case 1:
		return New(Config{TestName: TestLetterIdentification, Gen: NewLetterGrid(rng)}), nil
	case 2:
		return New(Config{TestName: TestWordRecognition, Gen: NewWordRecognition(rng)}), nil
	case 3:
		return New(Config{TestName: TestWordScramble, Gen: NewWordScramble(rng)}), nil
	case 4:
		return New(Config{TestName: TestLetterElimination, Gen: NewLetterElimination(rng)}), nil
	default:
		return nil, fmt.Errorf("unknown test number: %d", number)
	}
}
