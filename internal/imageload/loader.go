package imageload

import (
	"context"
	"errors"
	"net/url"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
)

// ErrInvalidURL is reported when an image URL is not an absolute http(s) URL.
var ErrInvalidURL = errors.New("invalid image URL")

// Status is the phase of an image load.
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// State is the observable load state. Data is only set when Status is
// StatusSuccess.
type State struct {
	Status Status
	Data   []byte
}

// LoadedMsg carries the result of a loader's fetch back to the UI loop.
type LoadedMsg struct {
	ID   string
	URL  string
	Data []byte
	Err  error
}

// Loader fetches one image exactly once and tracks its load state.
type Loader struct {
	id    string
	url   string
	state State
}

// New creates a loader for rawURL in the loading state.
func New(rawURL string) *Loader {
	return &Loader{
		id:  uuid.New().String(),
		url: rawURL,
	}
}

func (l *Loader) ID() string   { return l.id }
func (l *Loader) URL() string  { return l.url }
func (l *Loader) State() State { return l.state }

// Fetch returns the command that performs the fetch off the UI loop.
// A malformed URL resolves to a failed LoadedMsg without touching the
// network.
func (l *Loader) Fetch(ctx context.Context, f Fetcher) tea.Cmd {
	id, raw := l.id, l.url
	return func() tea.Msg {
		u, err := ParseURL(raw)
		if err != nil {
			return LoadedMsg{ID: id, URL: raw, Err: err}
		}
		data, err := f.Fetch(ctx, u.String())
		return LoadedMsg{ID: id, URL: raw, Data: data, Err: err}
	}
}

// Apply settles the loader from msg. It returns false, leaving the state
// untouched, when msg belongs to another loader or the loader has already
// settled.
func (l *Loader) Apply(msg LoadedMsg) bool {
	if msg.ID != l.id || l.state.Status != StatusLoading {
		return false
	}
	if msg.Err == nil && len(msg.Data) > 0 {
		l.state = State{Status: StatusSuccess, Data: msg.Data}
	} else {
		l.state = State{Status: StatusFailure}
	}
	return true
}

// ParseURL accepts only absolute http and https URLs.
func ParseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Join(ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidURL
	}
	return u, nil
}
