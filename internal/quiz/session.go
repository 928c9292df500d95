package quiz

import "errors"

// ErrNoQuestions is returned when a session is created without questions.
var ErrNoQuestions = errors.New("quiz needs at least one question")

// Session holds the quiz questions, the page currently shown and the
// answers recorded so far. It is not safe for concurrent use; all access
// happens on the UI loop.
type Session struct {
	questions   []Question
	responses   []string
	currentPage int
}

// NewSession creates a session positioned on the first question.
func NewSession(questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{questions: questions}, nil
}

// RecordAnswer appends answer to the responses and moves to the page after
// questionIndex, unless questionIndex is the last question. The answer is
// not checked against the question's choices.
func (s *Session) RecordAnswer(questionIndex int, answer string) {
	s.responses = append(s.responses, answer)
	if !s.IsLast(questionIndex) {
		s.SetPage(questionIndex + 1)
	}
}

// SetPage moves directly to page index without recording anything.
// Out-of-range indices are clamped to the first or last page.
func (s *Session) SetPage(index int) {
	switch {
	case index < 0:
		index = 0
	case index >= len(s.questions):
		index = len(s.questions) - 1
	}
	s.currentPage = index
}

// CurrentPage returns the index of the page being shown.
func (s *Session) CurrentPage() int {
	return s.currentPage
}

// Responses returns a copy of the recorded answers in the order they were
// given.
func (s *Session) Responses() []string {
	out := make([]string, len(s.responses))
	copy(out, s.responses)
	return out
}

// ResponseCount returns how many answers have been recorded.
func (s *Session) ResponseCount() int {
	return len(s.responses)
}

// Questions returns the question list.
func (s *Session) Questions() []Question {
	return s.questions
}

// Question returns the question at index i.
func (s *Session) Question(i int) Question {
	return s.questions[i]
}

// Len returns the number of questions.
func (s *Session) Len() int {
	return len(s.questions)
}

// IsLast reports whether i is the index of the final question.
func (s *Session) IsLast(i int) bool {
	return i == len(s.questions)-1
}
