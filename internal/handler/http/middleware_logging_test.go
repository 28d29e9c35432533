package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serveLogged runs next behind withLogging with a buffer-backed logger in
// the request context, the way withTraceID leaves it.
func serveLogged(t *testing.T, method, path string, next http.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	l := zerolog.New(&buf)

	req := httptest.NewRequest(method, path, nil)
	req = req.WithContext(l.WithContext(req.Context()))
	rec := httptest.NewRecorder()

	newTestHandler().withLogging(next).ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return rec, entry
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		status     int
		body       string
		wantStatus float64
		wantSize   float64
	}{
		{name: "version", method: http.MethodGet, path: "/api/version/", status: http.StatusOK, body: "1.0.0", wantStatus: 200, wantSize: 5},
		{name: "static miss", method: http.MethodGet, path: "/nope.js", status: http.StatusNotFound, body: "404 page not found\n", wantStatus: 404, wantSize: 19},
		{name: "head no body", method: http.MethodHead, path: "/", status: http.StatusNoContent, wantStatus: 204},
		{name: "forbidden origin", method: http.MethodGet, path: "/ws", status: http.StatusForbidden, body: "Forbidden", wantStatus: 403, wantSize: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, entry := serveLogged(t, tt.method, tt.path, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.path, entry["uri"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Equal(t, false, entry["hijacked"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	// обработчик ничего не записал: в логе статус 0, клиент получает 200
	rec, entry := serveLogged(t, http.MethodGet, "/", func(http.ResponseWriter, *http.Request) {})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), entry["status"])
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	handler := newTestHandler().withLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	assert.Panics(t, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
