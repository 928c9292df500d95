package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/persona/internal/imageload"
	qz "github.com/abhisek/persona/internal/quiz"
	"github.com/abhisek/persona/internal/router"
)

func testModel(t *testing.T) (AppModel, *qz.Session) {
	t.Helper()
	sess, err := qz.NewSession(qz.DefaultQuestions())
	require.NoError(t, err)
	offline := imageload.FetchFunc(func(context.Context, string) ([]byte, error) {
		return nil, errors.New("offline")
	})
	return newAppModel(Options{Session: sess, Fetcher: offline}), sess
}

// step runs msg through the model, following navigation commands.
func step(m AppModel, msg tea.Msg) AppModel {
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch nav := cmd().(type) {
	case router.ReplaceScreenMsg, router.PushScreenMsg, router.PopScreenMsg:
		next, _ = m.Update(nav)
		m = next.(AppModel)
	}
	return m
}

func TestWelcomeThenQuiz(t *testing.T) {
	m, _ := testModel(t)
	m = step(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Contains(t, m.frame(), "Start")

	m = step(m, tea.KeyPressMsg{Code: ' '})

	assert.Equal(t, "Personality Quiz", m.router.Active().Title())
	assert.Contains(t, m.frame(), "Which food do you like the most?")
	assert.Contains(t, m.frame(), "0 answered")
}

func TestResponsesOverlayAndBack(t *testing.T) {
	m, sess := testModel(t)
	m = step(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = step(m, tea.KeyPressMsg{Code: ' '})

	sess.RecordAnswer(0, "Fish")
	m = step(m, tea.KeyPressMsg{Code: 'r', Text: "r"})
	require.Equal(t, 2, m.router.Depth())
	assert.Contains(t, m.frame(), "Fish")

	m = step(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())
}

func TestTooSmall(t *testing.T) {
	m, _ := testModel(t)
	m = step(m, tea.WindowSizeMsg{Width: 40, Height: 10})

	assert.True(t, strings.Contains(m.frame(), "Terminal too small"))
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := testModel(t)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
