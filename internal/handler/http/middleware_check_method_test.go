// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// relayLikeRouter mirrors the relay's route shape without services.
func relayLikeRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusSwitchingProtocols)
	})
	router.Get("/api/version/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("1.0.0"))
	})
	router.Head("/api/version/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("static"))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "version GET", method: http.MethodGet, path: "/api/version/", wantStatus: http.StatusOK, wantBody: "1.0.0"},
		{name: "version HEAD", method: http.MethodHead, path: "/api/version/", wantStatus: http.StatusOK},
		{name: "version POST hidden", method: http.MethodPost, path: "/api/version/", wantStatus: http.StatusNotFound},
		{name: "ws DELETE hidden", method: http.MethodDelete, path: "/ws", wantStatus: http.StatusNotFound},
		{name: "static GET", method: http.MethodGet, path: "/index.html", wantStatus: http.StatusOK, wantBody: "static"},
		{name: "static PUT hidden", method: http.MethodPut, path: "/index.html", wantStatus: http.StatusNotFound},
	}

	router := relayLikeRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestCheckHTTPMethod_NeverAnswers405(t *testing.T) {
	router := relayLikeRouter()

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, "/ws", nil))

		assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code, method)
	}
}
