package console

import (
	"strings"

	"github.com/chzyer/readline"
)

// Confirm asks a yes/no question and returns the answer. Empty input and any
// reply that is not a clear yes or no fall back to def; EOF and interrupts
// decline. The prompt is written to the error stream so that stdout stays
// reserved for results.
func Confirm(question string, def bool) (bool, error) {
	suffix := " [Y/n] "
	if !def {
		suffix = " [y/N] "
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt: question + suffix,
		Stdout: errWriter,
	})
	if err != nil {
		return false, err
	}
	defer func() { _ = rl.Close() }()

	response, err := rl.Readline()
	if err != nil {
		// ^C or closed stdin never confirms anything
		return false, nil
	}
	switch normalized := strings.ToLower(strings.TrimSpace(response)); {
	case normalized == "":
		return def, nil
	case strings.HasPrefix(normalized, "y"):
		return true, nil
	case strings.HasPrefix(normalized, "n"):
		return false, nil
	default:
		return def, nil
	}
}
