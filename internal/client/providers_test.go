package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, check func(*testing.T, *http.Request), status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(t, r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGoogleAPI_Translate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		source   string
		wantText string
		wantPron string
		wantSrc  string
		wantErr  bool
	}{
		{
			name:     "with transliteration",
			status:   http.StatusOK,
			body:     `[[["Привет","Hello",null,null,10],[null,null,"Privet","həˈlō"]],null,"en"]`,
			source:   "auto",
			wantText: "Привет",
			wantPron: "Privet",
			wantSrc:  "en",
		},
		{
			name:     "multiple segments",
			status:   http.StatusOK,
			body:     `[[["Buenos ","Good ",null,null,1],["días","morning",null,null,1]],null,"en"]`,
			source:   "en",
			wantText: "Buenos días",
			wantSrc:  "en",
		},
		{
			name:     "no detected source",
			status:   http.StatusOK,
			body:     `[[["Hola","Hello",null,null,10]]]`,
			source:   "",
			wantText: "Hola",
			wantSrc:  "auto",
		},
		{
			name:    "bad status",
			status:  http.StatusTooManyRequests,
			body:    `{}`,
			wantErr: true,
		},
		{
			name:    "empty translation",
			status:  http.StatusOK,
			body:    `[[],null,"en"]`,
			wantErr: true,
		},
		{
			name:    "malformed",
			status:  http.StatusOK,
			body:    `["nope"]`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newServer(t, func(t *testing.T, r *http.Request) {
				q := r.URL.Query()
				assert.Equal(t, "gtx", q.Get("client"))
				assert.Equal(t, "es", q.Get("tl"))
				assert.Equal(t, []string{"t", "rm"}, q["dt"])
			}, tt.status, tt.body)

			g := &GoogleAPI{client: srv.Client(), baseURL: srv.URL}
			got, err := g.Translate(context.Background(), "Hello", tt.source, "es")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantText, got.Text)
			assert.Equal(t, tt.wantPron, got.Pronunciation)
			assert.Equal(t, tt.wantSrc, got.Source)
			assert.Equal(t, "es", got.Target)
		})
	}
}

func TestPythonAnyWhereAPI_Translate(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t, func(t *testing.T, r *http.Request) {
			q := r.URL.Query()
			assert.False(t, q.Has("sl"))
			assert.Equal(t, "ja", q.Get("dl"))
			assert.Equal(t, "Water", q.Get("text"))
		}, http.StatusOK, `{"source-language":"en","source-text":"Water","destination-text":"水","pronunciation":{"destination-text-phonetic":"Mizu"}}`)

		p := &PythonAnyWhereAPI{client: srv.Client(), baseURL: srv.URL}
		got, err := p.Translate(context.Background(), "Water", "auto", "ja")
		require.NoError(t, err)
		assert.Equal(t, "水", got.Text)
		assert.Equal(t, "Mizu", got.Pronunciation)
		assert.Equal(t, "en", got.Source)
	})

	t.Run("empty translation", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t, nil, http.StatusOK, `{"source-text":"Water"}`)
		p := &PythonAnyWhereAPI{client: srv.Client(), baseURL: srv.URL}
		_, err := p.Translate(context.Background(), "Water", "en", "ja")
		require.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t, nil, http.StatusOK, `<html>`)
		p := &PythonAnyWhereAPI{client: srv.Client(), baseURL: srv.URL}
		_, err := p.Translate(context.Background(), "Water", "en", "ja")
		require.Error(t, err)
	})
}

func TestMyMemoryAPI_Translate(t *testing.T) {
	t.Parallel()

	t.Run("success with autodetect", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t, func(t *testing.T, r *http.Request) {
			assert.Equal(t, "Autodetect|fr", r.URL.Query().Get("langpair"))
		}, http.StatusOK, `{"responseData":{"translatedText":"Bonjour","match":1,"responseStatus":200},"matches":[{"translation":"Bonjour","source":"en-GB"}]}`)

		m := &MyMemoryAPI{client: srv.Client(), baseURL: srv.URL}
		got, err := m.Translate(context.Background(), "Hello", "auto", "fr")
		require.NoError(t, err)
		assert.Equal(t, "Bonjour", got.Text)
		assert.Equal(t, "en-GB", got.Source)
		assert.Empty(t, got.Pronunciation)
	})

	t.Run("explicit source", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t, func(t *testing.T, r *http.Request) {
			assert.Equal(t, "en|fr", r.URL.Query().Get("langpair"))
		}, http.StatusOK, `{"responseData":{"translatedText":"Bonjour","responseStatus":200}}`)

		m := &MyMemoryAPI{client: srv.Client(), baseURL: srv.URL}
		got, err := m.Translate(context.Background(), "Hello", "en", "fr")
		require.NoError(t, err)
		assert.Equal(t, "en", got.Source)
	})

	t.Run("quota exceeded", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t, nil, http.StatusOK, `{"responseData":{"translatedText":"","responseStatus":429,"responseDetails":"Daily request limit reached"}}`)
		m := &MyMemoryAPI{client: srv.Client(), baseURL: srv.URL}
		_, err := m.Translate(context.Background(), "Hello", "en", "fr")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Daily request limit reached")
	})
}
