// Package form implements the edit-form core: reconciling the fetched post
// and the category catalog into one editable state, keeping the selected
// category ids and the rendered checklist in lockstep, validating drafts, and
// gating submission.
//
// # Overview
//
// Editing a post needs two resources that arrive independently: the post
// itself and the global category catalog. Neither fetch orders before the
// other, so the package merges them with two explicit holders plus a one-shot
// flag rather than any ordering assumption.
//
// # Architecture
//
//	┌─────────────┐   DeliverPost      ┌──────────────────────────┐
//	│ post fetch  │───────────────────>│ Session                  │
//	└─────────────┘                    │  post holder             │
//	┌─────────────┐   DeliverCatalog   │  catalog holder          │
//	│ catalog     │───────────────────>│  reconcile() ── once ──> │
//	│ fetch       │                    │   State + Checklist      │
//	└─────────────┘                    └──────────────────────────┘
//
// Every delivery runs reconcile. Once the initialization flag is set,
// reconcile is a no-op forever: a re-delivered or late result can never
// clobber edits the user has already made. If either fetch fails, its holder
// carries an explicit failure and the session never initializes; that is a
// terminal state the UI renders as a persistent error, not a retry loop.
//
// # Dual representation
//
// The selected category ids live in two shapes: the ordered id list that is
// submitted (State.categoryIDs) and the per-entry Checked flags the UI
// renders (CheckableCategory). The id list is the single source of truth;
// BuildChecklist regenerates the flagged view deterministically and the view
// is never mutated on its own. Session.Toggle performs the id-list update and
// the checklist rebuild inside one critical section, so no observer can see
// the two disagree.
//
// # Validation
//
// The submission schema lives as validator/v10 tags on Draft: title and
// content are required with length caps, the cover image must parse as a
// URL, and the category id list is unconstrained. Validate returns
// field-scoped messages as plain values; nothing here panics and failed
// validation never reaches the network layer.
//
// # Submission
//
// Submitter.Begin validates the current draft and flips an in-flight latch;
// a second Begin while one submission is outstanding returns
// ErrSubmitInFlight. The network call belongs to the caller, which reports
// completion via Finish. Failure leaves the form state untouched so a manual
// retry needs no re-entry.
package form
