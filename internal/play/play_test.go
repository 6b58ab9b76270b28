package play

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ysato/dokkai/internal/quiz"
	"github.com/ysato/dokkai/internal/quizgen"
)

type stubGenerator struct {
	set *quiz.QuestionSet
	err error
}

func (g *stubGenerator) Generate(_ context.Context, _ quizgen.Input) (*quizgen.Candidate, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &quizgen.Candidate{Set: g.set}, nil
}

func testSet() *quiz.QuestionSet {
	return &quiz.QuestionSet{Questions: []quiz.Question{
		{Category: "事実", Text: "q1", Options: []string{"a", "b", "c", "d"}, Answer: "A"},
		{Category: "文法や表現", Text: "q2", Options: []string{"a", "b", "c", "d"}, Answer: "B"},
	}}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestQuizFlow(t *testing.T) {
	m := NewModel(&stubGenerator{set: testSet()}, "passage")

	next, _ := m.Update(questionsReadyMsg{Set: testSet()})
	m = next.(Model)
	if m.phase != phaseQuiz {
		t.Fatalf("phase = %d, want quiz", m.phase)
	}

	// First question: submit the default selection (A, correct).
	next, _ = m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	if !m.choice.Submitted {
		t.Fatal("enter should submit")
	}
	if m.correct != 1 {
		t.Errorf("correct = %d, want 1", m.correct)
	}

	// Advance, pick A (wrong — answer is B), submit.
	next, _ = m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	if m.idx != 1 {
		t.Fatalf("idx = %d, want 1", m.idx)
	}
	next, _ = m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	if m.correct != 1 {
		t.Errorf("wrong answer counted: correct = %d, want 1", m.correct)
	}

	// Advance past the last question.
	next, _ = m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	if m.phase != phaseDone {
		t.Errorf("phase = %d, want done", m.phase)
	}
}

func TestGenerationFailure(t *testing.T) {
	m := NewModel(&stubGenerator{err: errors.New("no api key")}, "passage")

	next, _ := m.Update(questionsReadyMsg{Err: errors.New("no api key")})
	m = next.(Model)
	if m.phase != phaseFailed {
		t.Fatalf("phase = %d, want failed", m.phase)
	}
}

func TestEmptySetFails(t *testing.T) {
	m := NewModel(&stubGenerator{set: &quiz.QuestionSet{}}, "passage")

	next, _ := m.Update(questionsReadyMsg{Set: &quiz.QuestionSet{}})
	m = next.(Model)
	if m.phase != phaseFailed {
		t.Fatalf("phase = %d, want failed", m.phase)
	}
}
