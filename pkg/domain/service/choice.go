package service

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"burger/pkg/domain/model"
)

type ChoiceCollector interface {
	Ask(set model.ChoiceSet) (string, error)
}

func NewChoiceCollector(in io.Reader, out io.Writer, maxAttempts int) ChoiceCollector {
	if maxAttempts < 1 {
		maxAttempts = model.DefaultMaxAttempts
	}
	return &choiceCollector{in: bufio.NewReader(in), out: out, maxAttempts: maxAttempts}
}

type choiceCollector struct {
	in          *bufio.Reader
	out         io.Writer
	maxAttempts int
}

func (c *choiceCollector) Ask(set model.ChoiceSet) (string, error) {
	options := set.Options()
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		fmt.Fprintf(c.out, "%s (%s): ", set.Prompt, strings.Join(options, "/"))

		line, err := c.readLine()
		if err != nil {
			return "", errors.Wrapf(err, "read %s choice", set.Category)
		}

		choice, err := normalizeChoice(set, line)
		if err != nil {
			fmt.Fprintf(c.out, "Invalid choice. Please select from: %s.\n", strings.Join(options, ", "))
			continue
		}

		fmt.Fprintf(c.out, "Selected: %s\n", choice)
		return choice, nil
	}
	return "", errors.Wrapf(model.ErrOrderAborted, "%d invalid %s choices", c.maxAttempts, set.Category)
}

// readLine behaves like a terminal prompt: a final line without a newline
// is still an answer, only a bare EOF is an error.
func (c *choiceCollector) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

func normalizeChoice(set model.ChoiceSet, raw string) (string, error) {
	choice := strings.ToLower(strings.TrimSpace(raw))
	if !set.Contains(choice) {
		return "", errors.Wrapf(model.ErrInvalidChoice, "%q is not a %s choice", choice, set.Category)
	}
	return choice, nil
}
