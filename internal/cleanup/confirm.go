package cleanup

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks the user a yes/no question.
type Confirm func(prompt string) bool

// IsYes reports whether answer is the literal "yes", ignoring case and surrounding whitespace.
func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

// PromptConfirm writes the prompt to out and reads a single line from in. EOF counts as no.
func PromptConfirm(in io.Reader, out io.Writer) Confirm {
	reader := bufio.NewReader(in)
	return func(prompt string) bool {
		fmt.Fprint(out, prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return false
		}
		return IsYes(line)
	}
}
