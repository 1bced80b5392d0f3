package oceanapi

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// Failure kinds. Classify with errors.Is.
var (
	// ErrAuthFailed covers bad credentials and any non-200 login response.
	ErrAuthFailed = eris.New("oceanapi: authentication failed")
	// ErrTransport covers network errors and timeouts on any call.
	ErrTransport = eris.New("oceanapi: transport failure")
	// ErrPredictionUnavailable is non-fatal: callers proceed without a prediction.
	ErrPredictionUnavailable = eris.New("oceanapi: prediction unavailable")
	// ErrSubmissionFailed covers non-2xx responses to a report or sample post.
	ErrSubmissionFailed = eris.New("oceanapi: submission failed")
)

// StatusError carries the raw status and body of an unexpected response.
type StatusError struct {
	Op   string
	Code int
	Body string
	kind error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("oceanapi: %s: status %d: %s", e.Op, e.Code, e.Body)
}

// Unwrap exposes the failure kind.
func (e *StatusError) Unwrap() error {
	return e.kind
}

// classified attaches a failure kind to an underlying cause.
type classified struct {
	kind  error
	cause error
}

func (e *classified) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *classified) Unwrap() []error {
	return []error{e.kind, e.cause}
}

func classify(kind, cause error) error {
	return &classified{kind: kind, cause: cause}
}

func transportError(op string, err error) error {
	return classify(ErrTransport, eris.Wrapf(err, "oceanapi: %s", op))
}
