package imageload

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: uint8(x * 40), B: uint8(y * 40), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// runFetch executes the loader's fetch command synchronously and applies
// the resulting message.
func runFetch(t *testing.T, l *Loader, f Fetcher) LoadedMsg {
	t.Helper()
	msg, ok := l.Fetch(context.Background(), f)().(LoadedMsg)
	require.True(t, ok)
	require.True(t, l.Apply(msg))
	return msg
}

func TestNew_StartsLoading(t *testing.T) {
	l := New("https://example.com/a.png")
	assert.Equal(t, StatusLoading, l.State().Status)
	assert.Nil(t, l.State().Data)
	assert.NotEmpty(t, l.ID())
	assert.NotEqual(t, l.ID(), New("https://example.com/a.png").ID())
}

func TestHTTPFetch_Success(t *testing.T) {
	body := pngBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "persona-test", r.Header.Get("User-Agent"))
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	l := New(srv.URL + "/food")
	runFetch(t, l, NewHTTPFetcher(srv.Client(), "persona-test"))

	assert.Equal(t, StatusSuccess, l.State().Status)
	assert.Equal(t, body, l.State().Data)
}

func TestHTTPFetch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	l := New(srv.URL + "/missing")
	msg := runFetch(t, l, NewHTTPFetcher(srv.Client(), ""))

	assert.ErrorIs(t, msg.Err, ErrBadStatus)
	assert.Equal(t, StatusFailure, l.State().Status)

	var v View
	out := v.Render(l.State(), 20, 6)
	assert.Contains(t, out, GlyphFailure)
	assert.NotContains(t, out, GlyphLoading)
}

func TestHTTPFetch_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	l := New(srv.URL)
	msg := runFetch(t, l, NewHTTPFetcher(srv.Client(), ""))

	assert.ErrorIs(t, msg.Err, ErrEmptyBody)
	assert.Equal(t, StatusFailure, l.State().Status)
}

func TestHTTPFetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	l := New(url)
	msg := runFetch(t, l, NewHTTPFetcher(nil, ""))

	assert.Error(t, msg.Err)
	assert.Equal(t, StatusFailure, l.State().Status)
}

func TestFetch_MalformedURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"no scheme", "source.unsplash.com/random/food"},
		{"bad syntax", "http://[::1"},
		{"unsupported scheme", "ftp://example.com/a.png"},
		{"no host", "https:///path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			f := FetchFunc(func(context.Context, string) ([]byte, error) {
				atomic.AddInt32(&calls, 1)
				return []byte("x"), nil
			})

			l := New(tt.url)
			msg := runFetch(t, l, f)

			assert.ErrorIs(t, msg.Err, ErrInvalidURL)
			assert.Equal(t, StatusFailure, l.State().Status)
			assert.Zero(t, atomic.LoadInt32(&calls))
		})
	}
}

func TestApply_SettlesOnce(t *testing.T) {
	l := New("https://example.com/a.png")

	require.True(t, l.Apply(LoadedMsg{ID: l.ID(), Data: []byte("img")}))
	assert.False(t, l.Apply(LoadedMsg{ID: l.ID(), Err: errors.New("late")}))

	assert.Equal(t, StatusSuccess, l.State().Status)
	assert.Equal(t, []byte("img"), l.State().Data)
}

func TestApply_IgnoresOtherLoaders(t *testing.T) {
	l := New("https://example.com/a.png")

	assert.False(t, l.Apply(LoadedMsg{ID: "someone-else", Data: []byte("img")}))
	assert.Equal(t, StatusLoading, l.State().Status)
}

func TestApply_ErrorWinsOverData(t *testing.T) {
	l := New("https://example.com/a.png")

	l.Apply(LoadedMsg{ID: l.ID(), Data: []byte("partial"), Err: errors.New("reset")})

	assert.Equal(t, StatusFailure, l.State().Status)
	assert.Nil(t, l.State().Data)
}

func TestLoadersDoNotShareFetches(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte("bytes"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.Client(), "")
	a, b := New(srv.URL+"/same"), New(srv.URL+"/same")
	runFetch(t, a, f)
	runFetch(t, b, f)

	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "failure", StatusFailure.String())
	assert.Equal(t, "unknown", Status(42).String())
}
