package form

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestSubmitter_RequiresInitializedSession(t *testing.T) {
	t.Parallel()

	var sub Submitter
	if _, _, err := sub.Begin(NewSession()); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Begin on fresh session = %v, want ErrNotInitialized", err)
	}
	if _, _, err := sub.Begin(nil); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Begin(nil) = %v, want ErrNotInitialized", err)
	}
}

func TestSubmitter_ValidationFailureHasNoSideEffect(t *testing.T) {
	t.Parallel()

	s := initializedSession(t)
	s.SetTitle(strings.Repeat("a", 101))

	var sub Submitter
	_, fieldErrs, err := sub.Begin(s)
	if err != nil {
		t.Fatalf("Begin returned error: %v", err)
	}
	if len(fieldErrs) == 0 {
		t.Fatalf("expected title validation failure")
	}
	if fieldsOf(fieldErrs)["title"] == "" {
		t.Fatalf("errors not scoped to title: %#v", fieldErrs)
	}
	if sub.InFlight() {
		t.Fatalf("validation failure marked a submission in flight")
	}

	// Fixing the field makes the same submitter usable immediately.
	s.SetTitle("fixed")
	if _, fieldErrs, err = sub.Begin(s); err != nil || len(fieldErrs) != 0 {
		t.Fatalf("Begin after fix = (%#v, %v), want clean start", fieldErrs, err)
	}
}

func TestSubmitter_BlocksConcurrentSubmission(t *testing.T) {
	t.Parallel()

	s := initializedSession(t)

	var sub Submitter
	draft, fieldErrs, err := sub.Begin(s)
	if err != nil || len(fieldErrs) != 0 {
		t.Fatalf("Begin = (%#v, %v), want success", fieldErrs, err)
	}
	if draft.Title != "Original title" {
		t.Fatalf("draft = %#v, want session snapshot", draft)
	}
	if !sub.InFlight() {
		t.Fatalf("submission not marked in flight")
	}

	if _, _, err := sub.Begin(s); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("second Begin = %v, want ErrSubmitInFlight", err)
	}

	sub.Finish()
	if sub.InFlight() {
		t.Fatalf("Finish did not clear in-flight state")
	}
	if _, _, err := sub.Begin(s); err != nil {
		t.Fatalf("Begin after Finish = %v, want success", err)
	}
}

func TestSubmitter_FailedSubmitPreservesFormState(t *testing.T) {
	t.Parallel()

	s := initializedSession(t)
	s.SetTitle("Edited before submit")
	if err := s.Toggle("c2"); err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	before := s.Draft()

	var sub Submitter
	if _, _, err := sub.Begin(s); err != nil {
		t.Fatalf("Begin returned error: %v", err)
	}
	// The update call failed; only the in-flight latch resets.
	sub.Finish()

	if after := s.Draft(); !reflect.DeepEqual(before, after) {
		t.Fatalf("failed submit changed the draft:\nbefore %#v\nafter  %#v", before, after)
	}
}
