package syncer

import "fmt"

// ErrSyncTransport indicates a network or server failure while talking
// to the remote store. Always retryable; affected events stay unsynced.
type ErrSyncTransport struct {
	StatusCode int
	Err        error
}

func (e *ErrSyncTransport) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("sync transport failure (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("sync transport failure: %v", e.Err)
}

func (e *ErrSyncTransport) Unwrap() error { return e.Err }

// ErrSchemaMismatch indicates the remote store rejected the full event
// shape, typically because it runs an older schema without the optional
// columns. The reconciler degrades to the reduced shape instead of
// failing the batch.
type ErrSchemaMismatch struct {
	RemoteVersion string
	Err           error
}

func (e *ErrSchemaMismatch) Error() string {
	if e.RemoteVersion != "" {
		return fmt.Sprintf("remote schema %s rejected the event shape: %v", e.RemoteVersion, e.Err)
	}
	return fmt.Sprintf("remote rejected the event shape: %v", e.Err)
}

func (e *ErrSchemaMismatch) Unwrap() error { return e.Err }
