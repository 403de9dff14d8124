package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"bioquiz/internal/ui/theme"
)

// Checklist is a multi-select list used for picking quiz topics.
type Checklist struct {
	Items   []string
	Checked map[int]bool
	Cursor  int
}

// NewChecklist creates a checklist with nothing selected.
func NewChecklist(items []string) Checklist {
	return Checklist{
		Items:   items,
		Checked: make(map[int]bool),
	}
}

// Update handles cursor movement and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case "space", " ":
		c.Checked[c.Cursor] = !c.Checked[c.Cursor]
	}

	return c, nil
}

// Selected returns the checked items in list order.
func (c Checklist) Selected() []string {
	var out []string
	for i, item := range c.Items {
		if c.Checked[i] {
			out = append(out, item)
		}
	}
	return out
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, item := range c.Items {
		box := "[ ]"
		if c.Checked[i] {
			box = "[x]"
		}

		line := "  " + box + " " + item
		if i == c.Cursor {
			line = "▸ " + box + " " + item
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
