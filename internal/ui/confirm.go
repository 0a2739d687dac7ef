package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// ErrCancelled is returned when the user aborts a confirmation prompt.
var ErrCancelled = errors.New("ui: cancelled by user")

// Confirmer asks the operator yes/no questions before destructive or
// filesystem-mutating steps.
type Confirmer struct {
	headless  *HeadlessManager
	assumeYes bool
}

// NewConfirmer creates a Confirmer. With assumeYes set, every prompt is
// auto-confirmed (CI mode). In headless mode without assumeYes, prompts are
// declined rather than blocking on missing input.
func NewConfirmer(hm *HeadlessManager, assumeYes bool) *Confirmer {
	return &Confirmer{headless: hm, assumeYes: assumeYes}
}

// Confirm asks a yes/no question and returns the answer. Declining is not
// an error; only an aborted prompt (Ctrl-C) returns ErrCancelled.
func (c *Confirmer) Confirm(title, description string) (bool, error) {
	if c.assumeYes {
		return true, nil
	}
	if c.headless.IsHeadless() {
		return false, nil
	}

	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, fmt.Errorf("ui: confirm prompt: %w", err)
	}
	return confirmed, nil
}
