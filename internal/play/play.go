// Package play is the interactive quiz: generate questions for a
// passage, answer them in the terminal, see the score.
package play

import (
	"context"
	"fmt"
	"os"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ysato/dokkai/internal/quiz"
	"github.com/ysato/dokkai/internal/quizgen"
	"github.com/ysato/dokkai/internal/ui/components"
	"github.com/ysato/dokkai/internal/ui/theme"
)

type phase int

const (
	phaseLoading phase = iota
	phaseQuiz
	phaseDone
	phaseFailed
)

// questionsReadyMsg is sent when generation finishes.
type questionsReadyMsg struct {
	Set *quiz.QuestionSet
	Err error
}

// Model is the quiz Bubble Tea model.
type Model struct {
	generator quizgen.Generator
	passage   string

	phase   phase
	spinner spinner.Model
	err     error

	set     *quiz.QuestionSet
	idx     int
	choice  components.MultiChoice
	correct int

	width  int
	height int
}

// NewModel creates a quiz model for the given passage.
func NewModel(generator quizgen.Generator, passage string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return Model{
		generator: generator,
		passage:   passage,
		phase:     phaseLoading,
		spinner:   sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.generate(), m.spinner.Tick)
}

func (m Model) generate() tea.Cmd {
	return func() tea.Msg {
		cand, err := m.generator.Generate(context.Background(), quizgen.Input{Passage: m.passage})
		if err != nil {
			return questionsReadyMsg{Err: err}
		}
		return questionsReadyMsg{Set: cand.Set}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case questionsReadyMsg:
		return m.handleQuestionsReady(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleQuestionsReady(msg questionsReadyMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.phase = phaseFailed
		m.err = msg.Err
		return m, nil
	}
	if _, err := quiz.Normalize(msg.Set); err != nil {
		m.phase = phaseFailed
		m.err = err
		return m, nil
	}
	if msg.Set.Len() == 0 {
		m.phase = phaseFailed
		m.err = fmt.Errorf("generator returned no questions")
		return m, nil
	}

	m.set = msg.Set
	m.phase = phaseQuiz
	m.choice = newChoice(m.set.Questions[0])
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	}

	switch m.phase {
	case phaseQuiz:
		if m.choice.Submitted && msg.String() == "enter" {
			return m.advance()
		}
		wasSubmitted := m.choice.Submitted
		var cmd tea.Cmd
		m.choice, cmd = m.choice.Update(msg)
		if !wasSubmitted && m.choice.IsCorrect() {
			m.correct++
		}
		return m, cmd

	case phaseDone, phaseFailed:
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	m.idx++
	if m.idx >= m.set.Len() {
		m.phase = phaseDone
		return m, nil
	}
	m.choice = newChoice(m.set.Questions[m.idx])
	return m, nil
}

func newChoice(q quiz.Question) components.MultiChoice {
	correct := -1
	if idx, ok := quiz.AnswerIndex(q.Answer); ok && idx < len(q.Options) {
		correct = idx
	}
	return components.NewMultiChoice(q.Text, q.Options, correct)
}

// Run starts the quiz program.
func Run(generator quizgen.Generator, passage string) error {
	p := tea.NewProgram(NewModel(generator, passage))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	var content string
	switch m.phase {
	case phaseLoading:
		content = m.spinner.View() + theme.Hint.Render(" Generating questions...")

	case phaseFailed:
		content = lipgloss.NewStyle().Foreground(theme.Error).Render("Generation failed: "+m.err.Error()) +
			"\n\n" + theme.Hint.Render("Press any key to exit")

	case phaseQuiz:
		q := m.set.Questions[m.idx]
		header := theme.Title.Render("読解クイズ") + "\n" +
			theme.Subtitle.Render(fmt.Sprintf("Question %d of %d — %s", m.idx+1, m.set.Len(), q.Category))
		body := m.choice.View()
		hint := theme.Hint.Render("↑/↓ select · Enter submit · Esc quit")
		if m.choice.Submitted {
			hint = theme.Hint.Render("Enter next question · Esc quit")
		}
		content = header + "\n\n" + body + "\n" + hint

	case phaseDone:
		content = theme.Title.Render("Quiz complete") + "\n\n" +
			theme.Body.Render(fmt.Sprintf("Score: %d / %d", m.correct, m.set.Len())) +
			"\n\n" + theme.Hint.Render("Press any key to exit")
	}

	v.SetContent(theme.Card.Render(content))
	return v
}
