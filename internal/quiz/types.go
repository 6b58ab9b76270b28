package quiz

// Question is a single multiple-choice reading comprehension item.
type Question struct {
	// Category is the question type label as emitted by the generator,
	// e.g. "事実" or "文法や表現". Free text; bucket membership is
	// resolved through the synonym table in bucket.go.
	Category string `json:"category"`

	// Text is the question prompt shown to the learner, in Japanese.
	Text string `json:"question"`

	// Options is the ordered list of answer choices.
	Options []string `json:"options"`

	// Answer is the letter of the correct option: "A", "B", "C" or "D".
	// A maps to Options[0], B to Options[1], and so on.
	Answer string `json:"answer"`
}

// QuestionSet is the full generated output for one source passage.
type QuestionSet struct {
	Questions []Question `json:"questions"`
}

// Len returns the number of questions in the set.
func (s *QuestionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Questions)
}

// ValidAnswers is the closed set of accepted answer letters.
var ValidAnswers = []string{"A", "B", "C", "D"}

// AnswerIndex maps an answer letter to its zero-based option index.
// Returns false if the letter is not one of A-D.
func AnswerIndex(answer string) (int, bool) {
	if len(answer) != 1 || answer[0] < 'A' || answer[0] > 'D' {
		return 0, false
	}
	return int(answer[0] - 'A'), true
}
