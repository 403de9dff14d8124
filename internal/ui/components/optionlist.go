package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"bioquiz/internal/quizgen"
	"bioquiz/internal/ui/theme"
)

// OptionList renders the four labeled options of a quiz question.
// Once locked, the cursor disappears and the list highlights the
// correct option in green and a wrong choice in red. The component is
// purely presentational: the answer commit itself lives elsewhere.
type OptionList struct {
	Options map[quizgen.Label]string
	Cursor  int

	Locked  bool
	Chosen  quizgen.Label
	Correct quizgen.Label
}

// NewOptionList creates a list for the given question options.
func NewOptionList(options map[quizgen.Label]string) OptionList {
	return OptionList{Options: options}
}

// Lock freezes the list with the committed choice and the correct label.
func (o OptionList) Lock(chosen, correct quizgen.Label) OptionList {
	o.Locked = true
	o.Chosen = chosen
	o.Correct = correct
	return o
}

// CursorLabel returns the label under the cursor.
func (o OptionList) CursorLabel() quizgen.Label {
	return quizgen.Labels[o.Cursor]
}

// Update handles cursor movement. Keys are ignored once locked.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Locked {
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
		if o.Cursor < len(quizgen.Labels)-1 {
			o.Cursor++
		}
	}

	return o, nil
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, label := range quizgen.Labels {
		prefix := "  "
		if !o.Locked && i == o.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, o.Options[label])

		switch {
		case o.Locked && label == o.Correct:
			s += theme.Correct.Render(line) + "\n"
		case o.Locked && label == o.Chosen:
			s += theme.Incorrect.Render(line) + "\n"
		case o.Locked:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
