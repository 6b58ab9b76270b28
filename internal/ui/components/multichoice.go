package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ysato/dokkai/internal/ui/theme"
)

// MultiChoice is a lettered multiple-choice selector. Options are
// labeled A, B, C, ... by position. CorrectIndex may be -1 when the
// correct option is unknown; the reveal then highlights only the
// chosen option.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     0,
		Submitted:    false,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Typing an option's
// letter jumps straight to it.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	default:
		if len(key) == 1 && key[0] >= 'a' && int(key[0]-'a') < len(m.Options) {
			m.Selected = int(key[0] - 'a')
		}
	}

	return m, nil
}

// View renders the question with its lettered options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+i, opt)
		s += m.lineStyle(i).Render(line) + "\n"
	}

	return s
}

func (m MultiChoice) lineStyle(i int) lipgloss.Style {
	if !m.Submitted {
		if i == m.Selected {
			return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return lipgloss.NewStyle().Foreground(theme.Text)
	}

	switch {
	case i == m.CorrectIndex:
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	case i == m.ChosenIndex && m.CorrectIndex >= 0:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	case i == m.ChosenIndex:
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}

// IsCorrect returns true if the user chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
