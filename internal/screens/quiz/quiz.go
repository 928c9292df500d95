package quiz

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/paginator"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/persona/internal/imageload"
	"github.com/abhisek/persona/internal/journal"
	qz "github.com/abhisek/persona/internal/quiz"
	"github.com/abhisek/persona/internal/router"
	"github.com/abhisek/persona/internal/screen"
	"github.com/abhisek/persona/internal/screens/responses"
	"github.com/abhisek/persona/internal/ui/components"
	"github.com/abhisek/persona/internal/ui/layout"
	"github.com/abhisek/persona/internal/ui/theme"
)

// Recorder receives every recorded answer.
type Recorder interface {
	AppendAnswer(ctx context.Context, ev journal.AnswerEvent) error
}

// KeyMap defines the page-level bindings.
type KeyMap struct {
	Prev      key.Binding
	Next      key.Binding
	Responses key.Binding
}

// DefaultKeys is the default page key map.
var DefaultKeys = KeyMap{
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←→", "Swipe"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("←→", "Swipe"),
	),
	Responses: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("R", "Responses"),
	),
}

// Options configures a QuizScreen. Session and Fetcher are required.
type Options struct {
	Session  *qz.Session
	Fetcher  imageload.Fetcher
	Recorder Recorder
	Logger   *zap.Logger
	RunID    string
}

// page is one question's page: its image loader and answer boxes.
type page struct {
	loader  *imageload.Loader
	image   imageload.View
	answers components.AnswerList
}

// QuizScreen shows one question per page and records answers into the
// session.
type QuizScreen struct {
	session  *qz.Session
	pages    []*page
	fetcher  imageload.Fetcher
	recorder Recorder
	log      *zap.Logger
	runID    string
	keys     KeyMap
	pager    paginator.Model
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen with one image loader per question.
func New(opts Options) *QuizScreen {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &QuizScreen{
		session:  opts.Session,
		fetcher:  opts.Fetcher,
		recorder: opts.Recorder,
		log:      log,
		runID:    opts.RunID,
		keys:     DefaultKeys,
	}

	for i, q := range s.session.Questions() {
		s.pages = append(s.pages, &page{
			loader:  imageload.New(q.ImageURL),
			answers: components.NewAnswerList(i, q.Answers),
		})
	}

	s.pager = paginator.New()
	s.pager.Type = paginator.Dots
	s.pager.PerPage = 1
	s.pager.ActiveDot = lipgloss.NewStyle().Foreground(theme.Primary).Render("●")
	s.pager.InactiveDot = lipgloss.NewStyle().Foreground(theme.Border).Render("○")
	s.pager.SetTotalPages(len(s.pages))
	s.syncPager()

	return s
}

// Init starts every page's image fetch.
func (s *QuizScreen) Init() tea.Cmd {
	ctx := context.Background()
	cmds := make([]tea.Cmd, 0, len(s.pages))
	for _, p := range s.pages {
		cmds = append(cmds, p.loader.Fetch(ctx, s.fetcher))
	}
	return tea.Batch(cmds...)
}

func (s *QuizScreen) Title() string {
	return "Personality Quiz"
}

func (s *QuizScreen) Status() string {
	return fmt.Sprintf("%d answered", s.session.ResponseCount())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Swipe"},
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter/1-4", Description: "Answer"},
		{Key: "R", Description: "Responses"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Session returns the quiz session the screen drives.
func (s *QuizScreen) Session() *qz.Session {
	return s.session
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case imageload.LoadedMsg:
		s.handleLoaded(msg)
		return s, nil

	case components.AnswerSelectedMsg:
		return s, s.handleAnswer(msg)

	case journalWrittenMsg:
		if msg.Err != nil {
			s.log.Warn("journal append failed", zap.Int("page", msg.Page), zap.Error(msg.Err))
		}
		return s, nil

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleLoaded(msg imageload.LoadedMsg) {
	for i, p := range s.pages {
		if !p.loader.Apply(msg) {
			continue
		}
		st := p.loader.State()
		if st.Status == imageload.StatusSuccess {
			s.log.Debug("image loaded", zap.Int("page", i), zap.String("url", msg.URL), zap.Int("bytes", len(st.Data)))
		} else {
			s.log.Info("image failed", zap.Int("page", i), zap.String("url", msg.URL), zap.Error(msg.Err))
		}
		return
	}
	s.log.Debug("dropping image result with no loader", zap.String("id", msg.ID))
}

// handleAnswer is the only path that records answers.
func (s *QuizScreen) handleAnswer(msg components.AnswerSelectedMsg) tea.Cmd {
	s.session.RecordAnswer(msg.Page, msg.Answer)
	s.syncPager()
	s.log.Info("answer recorded",
		zap.Int("page", msg.Page),
		zap.String("answer", msg.Answer),
		zap.Int("responses", s.session.ResponseCount()),
	)

	if s.recorder == nil {
		return nil
	}
	ev := journal.AnswerEvent{
		RunID:      s.runID,
		Page:       msg.Page,
		Seq:        s.session.ResponseCount() - 1,
		Question:   s.session.Question(msg.Page).Text,
		Answer:     msg.Answer,
		RecordedAt: time.Now(),
	}
	rec := s.recorder
	return func() tea.Msg {
		return journalWrittenMsg{Page: ev.Page, Err: rec.AppendAnswer(context.Background(), ev)}
	}
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	current := s.session.CurrentPage()

	switch {
	case key.Matches(msg, s.keys.Prev):
		s.swipe(current - 1)
		return nil
	case key.Matches(msg, s.keys.Next):
		s.swipe(current + 1)
		return nil
	case key.Matches(msg, s.keys.Responses):
		rs := responses.New(s.session.Responses())
		return func() tea.Msg { return router.PushScreenMsg{Screen: rs} }
	}

	p := s.pages[current]
	var cmd tea.Cmd
	p.answers, cmd = p.answers.Update(msg)
	return cmd
}

// swipe moves to another page without recording an answer.
func (s *QuizScreen) swipe(to int) {
	from := s.session.CurrentPage()
	s.session.SetPage(to)
	s.syncPager()
	if s.session.CurrentPage() != from {
		s.log.Debug("swiped", zap.Int("from", from), zap.Int("to", s.session.CurrentPage()))
	}
}

func (s *QuizScreen) syncPager() {
	s.pager.Page = s.session.CurrentPage()
}
