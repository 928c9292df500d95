package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/persona/internal/router"
	"github.com/abhisek/persona/internal/screen"
)

// stubScreen stands in for the quiz screen.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "quiz" }
func (s *stubScreen) Title() string                          { return "Quiz" }

func newTestWelcome() (*WelcomeScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func sendTicks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestTaglineAppearsAfterDelay(t *testing.T) {
	w, _ := newTestWelcome()

	if strings.Contains(w.View(80, 24), "Who are you") {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, 5)
	if !strings.Contains(w.View(80, 24), "Who are you") {
		t.Error("tagline should be visible after 500ms")
	}
	if strings.Contains(w.View(80, 24), "press any key") {
		t.Error("hint should wait for the full animation")
	}

	sendTicks(w, 10)
	if !strings.Contains(w.View(80, 24), "press any key") {
		t.Error("hint should be visible after the animation")
	}
}

func TestTicksStopAfterAnimation(t *testing.T) {
	w, _ := newTestWelcome()

	if cmd := sendTicks(w, 16); cmd != nil {
		t.Error("expected ticking to stop once the animation is complete")
	}
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed %v, got %v", totalDur, w.elapsed)
	}
}

func TestKeypressEmitsReplace(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress should trigger transition")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *calls != 1 {
		t.Errorf("factory should be called once, got %d", *calls)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, calls := newTestWelcome()

	w.Update(tea.KeyPressMsg{Code: 'a'})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})

	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *calls != 1 {
		t.Errorf("factory should be called exactly once, got %d", *calls)
	}
}

func TestCompactBanner(t *testing.T) {
	if got := RenderBanner(20); !strings.Contains(got, "Q U I Z") {
		t.Errorf("expected compact banner, got %q", got)
	}
}
