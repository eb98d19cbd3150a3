// Package cli is the interactive terminal client: the auth gate, the test
// dashboard, and the game runner.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/dyslexiaid/dyslexiaid-go/internal/catalog"
	"github.com/dyslexiaid/dyslexiaid-go/internal/client/api"
	"github.com/dyslexiaid/dyslexiaid-go/internal/client/session"
	"github.com/dyslexiaid/dyslexiaid-go/internal/model"
)

// App is the terminal client.
type App struct {
	api   *api.Client
	store *session.Store
	in    *bufio.Reader
	out   io.Writer
	rng   *rand.Rand

	// wg tracks in-flight result submissions so quitting the app lets
	// them finish instead of dropping the write.
	wg sync.WaitGroup
}

// New creates the client app.
func New(apiClient *api.Client, store *session.Store, in io.Reader, out io.Writer) *App {
	return &App{
		api:   apiClient,
		store: store,
		in:    bufio.NewReader(in),
		out:   out,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run drives the main loop until the user quits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.wg.Wait()

	fmt.Fprintln(a.out, "Welcome to DyslexiAid")

	for {
		var err error
		if a.store.IsAuthenticated() {
			err = a.dashboard(ctx)
		} else {
			err = a.gate(ctx)
		}
		if err != nil {
			if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

var errQuit = errors.New("quit")

// gate is the login/register menu shown while unauthenticated.
func (a *App) gate(ctx context.Context) error {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "[1] Sign in  [2] Create account  [q] Quit")

	choice, err := a.readLine("> ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return a.login(ctx)
	case "2":
		return a.register(ctx)
	case "q":
		return errQuit
	default:
		return nil
	}
}

func (a *App) register(ctx context.Context) error {
	name, err := a.readLine("Full name: ")
	if err != nil {
		return err
	}
	email, err := a.readLine("Email: ")
	if err != nil {
		return err
	}
	password, err := a.readPassword("Password (min 6 chars): ")
	if err != nil {
		return err
	}
	confirm, err := a.readPassword("Confirm password: ")
	if err != nil {
		return err
	}

	_, err = a.api.Register(ctx, model.CreateUserRequest{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(a.out, "Registration failed: %s\n", apiErr.Message)
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out, "Account created. Please sign in.")
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := a.readLine("Email: ")
	if err != nil {
		return err
	}
	password, err := a.readPassword("Password: ")
	if err != nil {
		return err
	}

	resp, err := a.api.Login(ctx, model.LoginRequest{Email: email, Password: password})
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(a.out, "Login failed: %s\n", apiErr.Message)
			return nil
		}
		return err
	}

	err = a.store.SaveSession(&session.Session{
		Token:         resp.Token,
		User:          resp.User,
		Authenticated: true,
		SavedAt:       time.Now(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", resp.User.Name)
	return nil
}

// dashboard renders the test catalog with completion state and dispatches
// to the chosen game.
func (a *App) dashboard(ctx context.Context) error {
	completed, err := a.store.Completed()
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Dyslexia Assessment Tests")
	for _, t := range catalog.Tests() {
		marker := " "
		if completed.Has(t.Number) {
			marker = "x"
		}
		fmt.Fprintf(a.out, "  [%s] %d. %s: %s\n", marker, t.Number, t.Title, t.Description)
	}
	fmt.Fprintln(a.out, "Enter a test number to play, [r] results, [l] logout, [q] quit")

	choice, err := a.readLine("> ")
	if err != nil {
		return err
	}

	switch choice {
	case "r":
		return a.showResults(ctx)
	case "l":
		return a.logout()
	case "q":
		return errQuit
	}

	number, err := strconv.Atoi(choice)
	if err != nil {
		return nil
	}
	test, ok := catalog.ByNumber(number)
	if !ok {
		fmt.Fprintln(a.out, "No such test.")
		return nil
	}

	return a.runGame(ctx, test)
}

func (a *App) showResults(ctx context.Context) error {
	sess, err := a.store.GetSession()
	if err != nil {
		return err
	}

	results, err := a.api.Results(ctx, sess.Token)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(a.out, "Could not fetch results: %s\n", apiErr.Message)
			return nil
		}
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(a.out, "No results yet.")
		return nil
	}

	fmt.Fprintln(a.out, "Your latest results:")
	for _, r := range results {
		fmt.Fprintf(a.out, "  %-22s score %d, misses %d, accuracy %.1f%%\n",
			r.TestName, r.Score, r.Misses, r.Accuracy)
	}
	return nil
}

// logout clears all local session artifacts and returns to the gate.
func (a *App) logout() error {
	if err := a.store.DeleteSession(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}
