package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/expensio/internal/pkg/instrument"
)

func TestRouter_BuiltinEndpoints(t *testing.T) {
	// Arrange
	ro := NewRouter(Config{Instrument: instrument.NewNoop()})

	cases := []struct {
		name     string
		path     string
		wantBody string
	}{
		{name: "root greets", path: "/", wantBody: "Welcome to Expensio API"},
		{name: "health reports ok", path: "/health", wantBody: "ok"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, c.path, nil)
			rec := httptest.NewRecorder()

			// Act
			ro.ServeHTTP(rec, req)

			// Assert
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			if !strings.Contains(rec.Body.String(), c.wantBody) {
				t.Fatalf("body = %q, want it to contain %q", rec.Body.String(), c.wantBody)
			}
		})
	}
}
