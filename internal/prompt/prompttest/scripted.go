// Package prompttest provides a prompt.Prompter that answers from fixed
// tables, for driving scaffold runs in tests.
package prompttest

import (
	"strings"

	"github.com/gp-oxid/oxskel/internal/prompt"
)

var _ prompt.Prompter = (*Scripted)(nil)

// Scripted answers questions from fixed tables. A question matches a key when
// it contains the key; the longest matching key wins, ties go to the
// lexically smaller key. Unmatched questions get their default. Every
// question asked is recorded in Asked.
type Scripted struct {
	Answers  map[string]string
	Confirms map[string]bool
	Asked    []string
}

func (s *Scripted) Ask(question, def string) (string, error) {
	s.Asked = append(s.Asked, question)
	if answer, ok := lookup(s.Answers, question); ok {
		return answer, nil
	}
	return def, nil
}

func (s *Scripted) Confirm(question string, def bool) (bool, error) {
	s.Asked = append(s.Asked, question)
	if answer, ok := lookup(s.Confirms, question); ok {
		return answer, nil
	}
	return def, nil
}

func lookup[V any](table map[string]V, question string) (V, bool) {
	var (
		best  string
		found bool
	)
	for key := range table {
		if !strings.Contains(question, key) {
			continue
		}
		if !found || len(key) > len(best) || (len(key) == len(best) && key < best) {
			best, found = key, true
		}
	}
	if !found {
		var zero V
		return zero, false
	}
	return table[best], true
}
