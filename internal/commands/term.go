package commands

import (
	"os"

	"golang.org/x/term"
)

const fallbackWidth = 80

// isInteractive reports whether both stdin and stdout are terminals.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// outputWidth returns the stdout terminal width used to wrap the summary.
func outputWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return min(w, 120)
}
