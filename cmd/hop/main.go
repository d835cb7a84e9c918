package main

import (
	"errors"
	"fmt"
	"os"
)

// errSilent signals a nonzero exit whose message was already printed.
var errSilent = errors.New("silent")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
