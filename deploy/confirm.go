package deploy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ConfirmFunc is asked whether to carry on when the working tree has
// uncommitted changes. summary is the short status listing.
type ConfirmFunc func(summary string) (bool, error)

// Prompt returns a ConfirmFunc that shows summary on out and reads the
// operator's answer from in. Only y or yes, in any case, confirms.
// Blocks until a line (or EOF) is read.
func Prompt(in io.Reader, out io.Writer) ConfirmFunc {
	reader := bufio.NewReader(in)
	return func(summary string) (bool, error) {
		fmt.Fprintf(out, "%s\n\nContinue with deployment anyway? [y/N] ", summary)
		answer, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("cannot read answer: %w", err)
		}
		return Affirmative(answer), nil
	}
}

// Affirmative reports whether answer is an explicit yes
func Affirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
