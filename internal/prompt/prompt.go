package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/gp-oxid/oxskel/internal/skelerr"
)

// Prompter asks the user a question and falls back to a default.
type Prompter interface {
	Ask(question, def string) (string, error)
	Confirm(question string, def bool) (bool, error)
}

// Defaults answers every question with its default. It backs
// --no-interaction runs.
type Defaults struct{}

func (Defaults) Ask(_, def string) (string, error) {
	return def, nil
}

func (Defaults) Confirm(_ string, def bool) (bool, error) {
	return def, nil
}

// Survey prompts on the terminal.
type Survey struct {
	opts []survey.AskOpt
}

// NewSurvey returns a terminal prompter. Options are passed to every
// survey.AskOne call.
func NewSurvey(opts ...survey.AskOpt) *Survey {
	return &Survey{opts: opts}
}

func (s *Survey) Ask(question, def string) (string, error) {
	var out string
	p := &survey.Input{Message: question, Default: def}
	if err := survey.AskOne(p, &out, s.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (s *Survey) Confirm(question string, def bool) (bool, error) {
	var out bool
	p := &survey.Confirm{Message: question, Default: def}
	if err := survey.AskOne(p, &out, s.opts...); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return skelerr.Aborted("interrupted")
	}
	return err
}

// Line reads one answer per line from r and writes questions to w. An empty
// line or end of input selects the default.
type Line struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLine returns a prompter over plain streams.
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{reader: bufio.NewReader(r), w: w}
}

func (l *Line) Ask(question, def string) (string, error) {
	fmt.Fprintf(l.w, "%s (default: '%s'): ", question, def)
	line, err := l.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

func (l *Line) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(l.w, "%s [%s] ", question, hint)
	line, err := l.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, skelerr.InvalidOption("invalid answer %q: expected y or n", line)
	}
}

func (l *Line) readLine() (string, error) {
	line, err := l.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
