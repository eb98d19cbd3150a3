package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dyslexiaid/dyslexiaid-go/internal/catalog"
	"github.com/dyslexiaid/dyslexiaid-go/internal/game"
	"github.com/dyslexiaid/dyslexiaid-go/internal/model"
)

// runGame drives one engine round: a one-second ticker for the countdown,
// player answers from stdin, and exactly one result submission on finish.
func (a *App) runGame(ctx context.Context, test catalog.Test) error {
	engine, err := game.ForTest(test.Number, a.rng)
	if err != nil {
		return err
	}

	sess, err := a.store.GetSession()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\n%s: %d seconds. Type your answer and press Enter.\n",
		test.Title, engine.Remaining())
	a.printChallenge(engine.Current())

	lines := make(chan string)
	done := make(chan struct{})
	go func() {
		for {
			line, err := a.in.ReadString('\n')
			if err != nil {
				return
			}
			select {
			case <-done:
				return
			case lines <- strings.TrimSpace(line):
			}
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var submitOnce sync.Once
	finish := func() {
		submitOnce.Do(func() {
			result := engine.Result()
			fmt.Fprintf(a.out, "\nRound over! Score %d, misses %d, accuracy %.1f%%\n",
				result.Score, result.Misses, result.Accuracy)

			a.submitResult(sess.Token, result)

			if err := a.store.MarkCompleted(test.Number); err != nil {
				slog.Warn("could not record completion", "test", test.Number, "error", err)
			}
		})
	}

	for engine.State() == game.Running {
		select {
		case <-ctx.Done():
			close(done)
			return ctx.Err()
		case <-ticker.C:
			engine.Tick()
			if engine.State() == game.Running {
				fmt.Fprintf(a.out, "[%ds] ", engine.Remaining())
			}
		case line := <-lines:
			if engine.Answer(line) {
				fmt.Fprintln(a.out, "Correct!")
			} else {
				fmt.Fprintln(a.out, "Not quite.")
			}
			if engine.State() == game.Running {
				a.printChallenge(engine.Current())
			}
		}
	}

	close(done)
	finish()

	// The input goroutine may hold one pending read; this Enter releases it.
	fmt.Fprint(a.out, "Press Enter to return to the dashboard.")
	return nil
}

func (a *App) printChallenge(ch game.Challenge) {
	fmt.Fprintln(a.out, ch.Prompt)
	if len(ch.Options) > 0 {
		for i, opt := range ch.Options {
			fmt.Fprintf(a.out, "%-8s", opt)
			if (i+1)%5 == 0 {
				fmt.Fprintln(a.out)
			}
		}
		fmt.Fprintln(a.out)
	}
}

// submitResult fires the one-shot result submission in the background with
// its own deadline, so leaving the game screen cannot cancel an in-flight
// write. Failures are logged, never surfaced; the finish screen is shown
// regardless.
func (a *App) submitResult(token string, result game.Result) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		_, err := a.api.SubmitResult(ctx, token, model.SubmitResultRequest{
			TestName: result.TestName,
			Score:    model.NewNumber(float64(result.Score)),
			Misses:   model.NewNumber(float64(result.Misses)),
			Accuracy: model.NewNumber(result.Accuracy),
		})
		if err != nil {
			slog.Warn("result submission failed", "test", result.TestName, "error", err)
		}
	}()
}
