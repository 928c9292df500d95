package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/persona/internal/screen"
)

// stubScreen is a minimal screen that records what it was sent.
type stubScreen struct {
	title   string
	initRan bool
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

type fetchDoneMsg struct{}

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "quiz"})

	responses := &stubScreen{title: "responses"}
	r.Push(responses)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "responses" {
		t.Errorf("expected active 'responses', got %q", r.Active().Title())
	}
	if !responses.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "quiz"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestPopScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "quiz"})
	r.Push(&stubScreen{title: "responses"})

	r.Update(PopScreenMsg{})

	if r.Active().Title() != "quiz" {
		t.Errorf("expected active 'quiz', got %q", r.Active().Title())
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "welcome"})

	quiz := &stubScreen{title: "quiz"}
	r.Update(ReplaceScreenMsg{Screen: quiz})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("expected active 'quiz', got %q", r.Active().Title())
	}
	if !quiz.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestKeysOnlyReachActiveScreen(t *testing.T) {
	quiz := &stubScreen{title: "quiz"}
	r := New(quiz)
	responses := &stubScreen{title: "responses"}
	r.Push(responses)

	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if len(responses.got) != 1 {
		t.Errorf("expected active screen to get 1 key, got %d", len(responses.got))
	}
	if len(quiz.got) != 0 {
		t.Errorf("expected covered screen to get no keys, got %d", len(quiz.got))
	}
}

func TestAsyncResultsReachCoveredScreens(t *testing.T) {
	quiz := &stubScreen{title: "quiz"}
	r := New(quiz)
	responses := &stubScreen{title: "responses"}
	r.Push(responses)

	r.Update(fetchDoneMsg{})

	if len(quiz.got) != 1 {
		t.Errorf("expected covered screen to get the result, got %d msgs", len(quiz.got))
	}
	if len(responses.got) != 1 {
		t.Errorf("expected active screen to get the result, got %d msgs", len(responses.got))
	}
}

func TestViewRendersActive(t *testing.T) {
	r := New(&stubScreen{title: "quiz"})
	if got := r.View(80, 24); got != "quiz" {
		t.Errorf("expected 'quiz', got %q", got)
	}
}
