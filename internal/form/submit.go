package form

import (
	"errors"
	"sync"
)

// ErrSubmitInFlight is returned when a submission is attempted while another
// one has not finished.
var ErrSubmitInFlight = errors.New("submission already in flight")

// Submitter gates submissions: it validates the draft locally, refuses to
// start a second submission while one is in flight, and never performs the
// network call itself. The caller issues the update with the draft returned
// by Begin and reports the outcome through Finish, keeping the form state
// intact on failure so the user can retry without re-entering anything.
type Submitter struct {
	mu       sync.Mutex
	inFlight bool
}

// Begin validates the session's current draft and, when it passes, marks a
// submission in flight and returns the payload to send.
//
// Validation failures come back as field errors with a nil error and no
// in-flight transition: nothing was sent and nothing is blocked.
func (s *Submitter) Begin(sess *Session) (Draft, []FieldError, error) {
	if sess == nil || !sess.Initialized() {
		return Draft{}, nil, ErrNotInitialized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight {
		return Draft{}, nil, ErrSubmitInFlight
	}

	draft := sess.Draft()
	if errs := Validate(draft); len(errs) > 0 {
		return draft, errs, nil
	}

	s.inFlight = true
	return draft, nil, nil
}

// Finish clears the in-flight state after the update call completes, whatever
// its outcome.
func (s *Submitter) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
}

// InFlight reports whether a submission is currently outstanding.
func (s *Submitter) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}
