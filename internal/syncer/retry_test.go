package syncer

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{MaxAttempts: attempts, InitialWait: time.Microsecond, MaxWait: time.Microsecond, Multiplier: 1}
}

func TestWithRetry_EventualSuccess(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), fastRetry(3), func(context.Context) error {
		calls++
		if calls < 3 {
			return &ErrSyncTransport{Err: errors.New("flaky")}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("withRetry: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestWithRetry_BoundedAttempts(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), fastRetry(3), func(context.Context) error {
		calls++
		return &ErrSyncTransport{Err: errors.New("down")}
	})
	var transport *ErrSyncTransport
	if !errors.As(err, &transport) {
		t.Fatalf("err = %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want exactly MaxAttempts", calls)
	}
}

func TestWithRetry_NoRetryOnSchemaMismatch(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), fastRetry(5), func(context.Context) error {
		calls++
		return &ErrSchemaMismatch{Err: errors.New("unknown column")}
	})
	var mismatch *ErrSchemaMismatch
	if !errors.As(err, &mismatch) {
		t.Fatalf("err = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, deterministic rejections must not retry", calls)
	}
}

func TestWithRetry_NoRetryOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	calls := 0
	err := withRetry(ctx, fastRetry(5), func(context.Context) error {
		calls++
		cancel()
		return ctx.Err()
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestBackoff_CappedAtMaxWait(t *testing.T) {
	cfg := RetryConfig{InitialWait: time.Second, MaxWait: 2 * time.Second, Multiplier: 10}
	for attempt := 0; attempt < 5; attempt++ {
		// Jitter is ±20%, so the hard ceiling is 1.2 * MaxWait.
		if got := backoff(cfg, attempt); got > time.Duration(1.2*float64(cfg.MaxWait)) {
			t.Errorf("backoff(attempt %d) = %v, exceeds jittered cap", attempt, got)
		}
	}
}
