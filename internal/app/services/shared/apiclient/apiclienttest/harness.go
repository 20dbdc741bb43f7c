// Package apiclienttest wires an API client and session against a fake
// backend served by a chi router, for usecase tests.
package apiclienttest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"saude-connect/internal/app/contracts"
	"saude-connect/internal/app/services/core/session"
	"saude-connect/internal/app/services/shared/apiclient"
	"saude-connect/internal/app/services/shared/localstorage"
	"saude-connect/internal/pkg/constvars"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	PatientUser      = `{"id":1,"email":"ana@example.com","user_type":"patient","name":"Ana"}`
	ProfessionalUser = `{"id":2,"email":"bia@example.com","user_type":"professional","name":"Bia"}`
	AdminUser        = `{"id":3,"email":"admin@example.com","user_type":"admin","name":"Admin"}`
	TestToken        = "abc123456789"
)

type Harness struct {
	Router  *chi.Mux
	Server  *httptest.Server
	Storage contracts.SessionStorage
	Session contracts.SessionService
	Client  contracts.APIClient
	Log     *zap.Logger

	requests int64
}

// New starts a fake backend. Routes are registered on the returned
// harness's Router before the first call.
func New(t *testing.T) *Harness {
	t.Helper()

	h := &Harness{
		Router:  chi.NewRouter(),
		Storage: localstorage.NewMemoryStorage(),
		Log:     zap.NewNop(),
	}
	h.Router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&h.requests, 1)
			next.ServeHTTP(w, r)
		})
	})
	h.Server = httptest.NewServer(h.Router)
	t.Cleanup(h.Server.Close)

	h.Session = session.NewSessionService(h.Storage, h.Log)
	h.Client = apiclient.NewAPIClient(h.Server.URL, h.Server.Client(), h.Session, nil, h.Log)
	return h
}

// LoginAs seeds storage with a session, bypassing the login route.
func (h *Harness) LoginAs(t *testing.T, rawUser string) {
	t.Helper()
	ctx := context.Background()
	if err := h.Storage.Set(ctx, constvars.SessionTokenKey, TestToken); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	if err := h.Storage.Set(ctx, constvars.SessionUserKey, rawUser); err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

// Requests counts calls that reached the fake backend.
func (h *Harness) Requests() int {
	return int(atomic.LoadInt64(&h.requests))
}

func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func WriteRaw(w http.ResponseWriter, status int, raw string) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(status)
	w.Write([]byte(raw))
}

// DecodeJSON reads a request body into out, failing the test on error.
func DecodeJSON(t *testing.T, r *http.Request, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		t.Errorf("decode request body: %v", err)
	}
}
