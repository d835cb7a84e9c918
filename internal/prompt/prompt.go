// Package prompt provides the interactive confirmation used before
// destructive CLI actions.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// Prompter wraps line input for testability.
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter adapts liner.State to the Prompter interface.
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a terminal-backed prompter.
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// Confirm asks a yes/no question and returns true only for an explicit
// yes. Ctrl+C and EOF count as no.
func Confirm(question string) (bool, error) {
	line := NewLinerPrompter()
	defer func() { _ = line.Close() }()
	return ConfirmWith(line, question)
}

// ConfirmWith asks a yes/no question through a custom prompter.
func ConfirmWith(p Prompter, question string) (bool, error) {
	answer, err := p.Prompt(color.CyanString(question + " [y/N] "))
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
