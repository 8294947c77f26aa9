package syncer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvarma/quizfeed/internal/weights"
)

// eventServer is a minimal in-memory weight-event endpoint with
// upsert-by-id semantics.
type eventServer struct {
	mu      sync.Mutex
	version string
	events  map[string]eventPayload
	writes  int
}

func newEventServer(version string) *eventServer {
	return &eventServer{version: version, events: make(map[string]eventPayload)}
}

func (s *eventServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/schema", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"version": s.version})
	})
	mux.HandleFunc("POST /v1/weight-events", func(w http.ResponseWriter, r *http.Request) {
		var p eventPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, exists := s.events[p.ID]; exists {
			w.WriteHeader(http.StatusConflict)
			return
		}
		s.events[p.ID] = p
		s.writes++
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("GET /v1/weight-events", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		out := struct {
			Events []eventPayload `json:"events"`
		}{}
		for _, p := range s.events {
			if p.UserID == r.URL.Query().Get("user_id") {
				out.Events = append(out.Events, p)
			}
		}
		json.NewEncoder(w).Encode(out)
	})
	return mux
}

func TestHTTPRemote_SchemaVersion(t *testing.T) {
	srv := httptest.NewServer(newEventServer("v1.1.0").handler())
	defer srv.Close()

	remote := NewHTTPRemote(srv.URL, "")
	v, err := remote.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1.1.0", v)
}

func TestHTTPRemote_PushIsIdempotent(t *testing.T) {
	server := newEventServer("v1.1.0")
	srv := httptest.NewServer(server.handler())
	defer srv.Close()

	remote := NewHTTPRemote(srv.URL, "token-1")
	ev := weights.Event{ID: "e1", UserID: "u1", Topic: "science", Delta: 1, CreatedAt: time.Now()}

	require.NoError(t, remote.PushEvent(context.Background(), ev, false))
	// Redelivery: the server answers 409 and the client treats it as
	// success, the idempotent outcome.
	require.NoError(t, remote.PushEvent(context.Background(), ev, false))
	assert.Equal(t, 1, server.writes, "resubmission must not be a second application")
}

func TestHTTPRemote_ReducedShapeOmitsAuditColumns(t *testing.T) {
	server := newEventServer("v1.0.0")
	srv := httptest.NewServer(server.handler())
	defer srv.Close()

	remote := NewHTTPRemote(srv.URL, "")
	ev := weights.Event{
		ID: "e1", UserID: "u1", Topic: "science", Delta: -0.5,
		SkipCompensationApplied: true, SkipCompensationTopic: 0.3,
	}
	require.NoError(t, remote.PushEvent(context.Background(), ev, true))

	stored := server.events["e1"]
	assert.Nil(t, stored.SkipCompensationApplied)
	assert.Nil(t, stored.SkipCompensationTopic)
	assert.Equal(t, -0.5, stored.Delta)
}

func TestHTTPRemote_BadRequestIsSchemaMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `unknown column "skip_compensation_branch"`, http.StatusBadRequest)
	}))
	defer srv.Close()

	remote := NewHTTPRemote(srv.URL, "")
	err := remote.PushEvent(context.Background(), weights.Event{ID: "e1", UserID: "u1", Topic: "science"}, false)

	var mismatch *ErrSchemaMismatch
	require.True(t, errors.As(err, &mismatch), "got %v", err)
}

func TestHTTPRemote_ServerErrorIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	remote := NewHTTPRemote(srv.URL, "")
	err := remote.PushEvent(context.Background(), weights.Event{ID: "e1", UserID: "u1", Topic: "science"}, false)

	var transport *ErrSyncTransport
	require.True(t, errors.As(err, &transport), "got %v", err)
	assert.Equal(t, http.StatusServiceUnavailable, transport.StatusCode)
}

func TestHTTPRemote_ConnectionFailureIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	remote := NewHTTPRemote(srv.URL, "")
	_, err := remote.SchemaVersion(context.Background())

	var transport *ErrSyncTransport
	require.True(t, errors.As(err, &transport), "got %v", err)
}

func TestHTTPRemote_PullRoundTrip(t *testing.T) {
	server := newEventServer("v1.1.0")
	srv := httptest.NewServer(server.handler())
	defer srv.Close()

	remote := NewHTTPRemote(srv.URL, "")
	pushed := weights.Event{
		ID: "e1", UserID: "u1", Topic: "science", Subtopic: "physics",
		Delta: -0.5, SkipCompensationApplied: true, SkipCompensationSubtopic: 0.2,
		CreatedAt: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, remote.PushEvent(context.Background(), pushed, false))

	events, err := remote.PullEvents(context.Background(), "u1", time.Time{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	got := events[0]
	assert.Equal(t, pushed.ID, got.ID)
	assert.Equal(t, pushed.Subtopic, got.Subtopic)
	assert.Equal(t, pushed.Delta, got.Delta)
	assert.Equal(t, pushed.SkipCompensationSubtopic, got.SkipCompensationSubtopic)
	assert.Equal(t, weights.OriginRemote, got.Origin, "pulled events are remote-origin")

	other, err := remote.PullEvents(context.Background(), "someone-else", time.Time{})
	require.NoError(t, err)
	assert.Empty(t, other)
}
