package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// OptionList renders one multiple-choice question. The component only
// owns cursor movement; answer semantics (first answer binds, feedback,
// advancing) live with the caller, which calls Reveal once a choice is
// locked in and Reset when moving to the next question.
type OptionList struct {
	Question string
	Options  []string
	Cursor   int

	revealed bool
	chosen   int
	correct  int
}

// NewOptionList creates an option list with the cursor on the first option.
func NewOptionList(question string, options []string) OptionList {
	return OptionList{
		Question: question,
		Options:  options,
		chosen:   -1,
		correct:  -1,
	}
}

// Update handles cursor movement. Movement is frozen once revealed.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.revealed {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}

	return o, nil
}

// Reveal locks the list and shows feedback: the correct option in green,
// a wrong chosen option in red.
func (o *OptionList) Reveal(chosen, correct int) {
	o.revealed = true
	o.chosen = chosen
	o.correct = correct
}

// Revealed reports whether feedback is showing.
func (o OptionList) Revealed() bool {
	return o.revealed
}

// View renders the question and its options.
func (o OptionList) View() string {
	s := theme.Body.Bold(true).Render(o.Question) + "\n\n"

	for i, opt := range o.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		prefix := "  "
		if i == o.Cursor && !o.revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if o.revealed {
			switch {
			case i == o.correct:
				s += theme.Correct.Render(line) + "\n"
			case i == o.chosen:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += theme.Hint.Render(line) + "\n"
			}
		} else {
			if i == o.Cursor {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += theme.Unselected.Render(line) + "\n"
			}
		}
	}

	return s
}
