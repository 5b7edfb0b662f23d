package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewServer_CORS(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantHeader string
	}{
		{name: "allowed origin", origins: []string{"https://app.example.com"}, origin: "https://app.example.com", wantHeader: "https://app.example.com"},
		{name: "foreign origin", origins: []string{"https://app.example.com"}, origin: "https://evil.example.com"},
		{name: "cors disabled", origin: "https://app.example.com"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewServer(config.HTTPConfig{Addr: ":0", CORSOrigins: tt.origins}, ok, zap.NewNop())

			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			s.httpServer.Handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantHeader, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestServer_StartShutdown(t *testing.T) {
	t.Parallel()

	s := NewServer(config.HTTPConfig{Addr: "127.0.0.1:0"}, http.NotFoundHandler(), zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))
	require.NoError(t, <-done)
}
