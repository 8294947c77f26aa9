package syncer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nvarma/quizfeed/internal/weights"
)

// HTTPRemote talks to the hosted weight-event endpoint.
type HTTPRemote struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPRemote creates a remote for the given base URL. token may be
// empty for unauthenticated deployments.
func NewHTTPRemote(baseURL, token string) *HTTPRemote {
	return &HTTPRemote{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{},
	}
}

func (r *HTTPRemote) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Content-Type", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &ErrSyncTransport{Err: err}
	}
	return resp, nil
}

// SchemaVersion fetches the remote's event schema version.
func (r *HTTPRemote) SchemaVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/v1/schema", nil)
	if err != nil {
		return "", fmt.Errorf("build schema request: %w", err)
	}
	resp, err := r.do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &ErrSyncTransport{StatusCode: resp.StatusCode, Err: fmt.Errorf("schema endpoint returned %s", resp.Status)}
	}

	var body struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &ErrSyncTransport{Err: fmt.Errorf("decode schema response: %w", err)}
	}
	return body.Version, nil
}

// PushEvent upserts one event. The remote treats a repeated id as a
// no-op, so redelivery after a crash is safe.
func (r *HTTPRemote) PushEvent(ctx context.Context, ev weights.Event, reduced bool) error {
	raw, err := json.Marshal(payloadFrom(ev, reduced))
	if err != nil {
		return fmt.Errorf("encode event %s: %w", ev.ID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/v1/weight-events", bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	resp, err := r.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK,
		resp.StatusCode == http.StatusCreated,
		resp.StatusCode == http.StatusNoContent,
		resp.StatusCode == http.StatusConflict:
		// Conflict means the id already exists remotely, which is the
		// idempotent outcome we want.
		return nil
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusUnprocessableEntity:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &ErrSchemaMismatch{Err: fmt.Errorf("remote returned %s: %s", resp.Status, msg)}
	default:
		return &ErrSyncTransport{StatusCode: resp.StatusCode, Err: fmt.Errorf("push returned %s", resp.Status)}
	}
}

// PullEvents fetches events from the user's other devices created after
// since.
func (r *HTTPRemote) PullEvents(ctx context.Context, userID string, since time.Time) ([]weights.Event, error) {
	q := url.Values{}
	q.Set("user_id", userID)
	if !since.IsZero() {
		q.Set("since", since.UTC().Format(time.RFC3339Nano))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/v1/weight-events?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build pull request: %w", err)
	}
	resp, err := r.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ErrSyncTransport{StatusCode: resp.StatusCode, Err: fmt.Errorf("pull returned %s", resp.Status)}
	}

	var body struct {
		Events []eventPayload `json:"events"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &ErrSyncTransport{Err: fmt.Errorf("decode pull response: %w", err)}
	}

	events := make([]weights.Event, len(body.Events))
	for i, p := range body.Events {
		events[i] = p.event()
	}
	return events, nil
}
