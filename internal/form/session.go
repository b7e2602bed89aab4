package form

import (
	"errors"
	"sync"

	"github.com/inkwell-hq/quill/internal/inkwell"
)

// ErrNotInitialized is returned for operations that require the one-time
// merge of post and catalog to have completed.
var ErrNotInitialized = errors.New("form session not initialized")

type holderStatus int

const (
	holderPending holderStatus = iota
	holderReady
	holderFailed
)

// Session reconciles the two independently-arriving fetch results into one
// editable form state, exactly once. After initialization the session owns
// the edit buffer and the checklist projection; late or repeated fetch
// deliveries never overwrite user edits.
//
// All methods are safe for concurrent use. Toggle and the initialization
// merge each run under the session lock, so the category id list and the
// checklist can never be observed out of step.
type Session struct {
	mu sync.Mutex

	state State

	postStatus holderStatus
	post       *inkwell.Post
	postErr    error

	catalogStatus holderStatus
	catalog       []inkwell.Category
	catalogErr    error

	checklist   []CheckableCategory
	initialized bool
}

// NewSession creates an empty session awaiting both deliveries.
func NewSession() *Session {
	return &Session{}
}

// DeliverPost records the outcome of the post fetch. The first delivery wins;
// anything after that is ignored. A non-nil err marks the holder failed,
// which is terminal for the session.
func (s *Session) DeliverPost(p *inkwell.Post, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.postStatus != holderPending {
		return
	}
	if err != nil {
		s.postStatus = holderFailed
		s.postErr = err
		return
	}
	s.postStatus = holderReady
	s.post = p
	s.reconcile()
}

// DeliverCatalog records the outcome of the category catalog fetch, with the
// same first-delivery-wins and terminal-failure semantics as DeliverPost.
func (s *Session) DeliverCatalog(catalog []inkwell.Category, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalogStatus != holderPending {
		return
	}
	if err != nil {
		s.catalogStatus = holderFailed
		s.catalogErr = err
		return
	}
	s.catalogStatus = holderReady
	s.catalog = catalog
	s.reconcile()
}

// reconcile performs the one-time merge. Caller must hold s.mu.
func (s *Session) reconcile() {
	if s.initialized {
		return
	}
	if s.postStatus != holderReady || s.catalogStatus != holderReady {
		return
	}

	selected := s.post.CategoryIDs()
	s.state.SetTitle(s.post.Title)
	s.state.SetContent(s.post.Content)
	s.state.SetCoverImageURL(s.post.CoverImageURL)
	s.state.SetCategoryIDs(selected)
	s.checklist = BuildChecklist(s.catalog, selected)
	s.initialized = true
}

// Initialized reports whether the merge has happened.
func (s *Session) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// FetchError returns the terminal fetch failure, if either holder failed.
func (s *Session) FetchError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.postErr != nil {
		return s.postErr
	}
	return s.catalogErr
}

// Loading reports whether the session is still waiting on a fetch that has
// neither arrived nor failed.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return false
	}
	return s.postErr == nil && s.catalogErr == nil
}

// PostID returns the id of the fetched post, or "" before arrival.
func (s *Session) PostID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.post == nil {
		return ""
	}
	return s.post.ID
}

// Checklist returns a copy of the current checkable category list.
func (s *Session) Checklist() []CheckableCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.checklist) == 0 {
		return nil
	}
	dup := make([]CheckableCategory, len(s.checklist))
	copy(dup, s.checklist)
	return dup
}

// Draft returns a snapshot of the current form values.
func (s *Session) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

// FieldErrors validates the current form values. Advisory only.
func (s *Session) FieldErrors() []FieldError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.FieldErrors()
}

// SetTitle writes the title field.
func (s *Session) SetTitle(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SetTitle(v)
}

// SetContent writes the content field.
func (s *Session) SetContent(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SetContent(v)
}

// SetCoverImageURL writes the cover image URL field.
func (s *Session) SetCoverImageURL(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SetCoverImageURL(v)
}

// Toggle flips category membership for id and rebuilds the checklist from
// the same id list in the same critical section, so the two representations
// cannot drift even transiently. Returns ErrNotInitialized before the merge.
func (s *Session) Toggle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}

	current := s.state.Snapshot().CategoryIDs
	var next []string
	if s.state.HasCategory(id) {
		next = make([]string, 0, len(current))
		for _, have := range current {
			if have != id {
				next = append(next, have)
			}
		}
	} else {
		next = append(current, id)
	}
	s.state.SetCategoryIDs(next)
	s.checklist = BuildChecklist(s.catalog, next)
	return nil
}
