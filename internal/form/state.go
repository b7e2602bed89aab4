package form

// State is the canonical edit buffer: the values that will be submitted.
// It is not safe for concurrent use on its own; Session serializes access.
type State struct {
	title         string
	content       string
	coverImageURL string
	categoryIDs   []string
}

// Snapshot returns the state as a submission draft. The category id slice is
// copied so callers can hold it across later mutations.
func (s *State) Snapshot() Draft {
	return Draft{
		Title:         s.title,
		Content:       s.content,
		CoverImageURL: s.coverImageURL,
		CategoryIDs:   cloneIDs(s.categoryIDs),
	}
}

// SetTitle replaces the title.
func (s *State) SetTitle(v string) { s.title = v }

// SetContent replaces the content body.
func (s *State) SetContent(v string) { s.content = v }

// SetCoverImageURL replaces the cover image URL.
func (s *State) SetCoverImageURL(v string) { s.coverImageURL = v }

// SetCategoryIDs replaces the selected category ids. Duplicates collapse to
// the first occurrence and the input slice is never retained.
func (s *State) SetCategoryIDs(ids []string) {
	if len(ids) == 0 {
		s.categoryIDs = nil
		return
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	s.categoryIDs = out
}

// HasCategory reports whether id is currently selected.
func (s *State) HasCategory(id string) bool {
	for _, have := range s.categoryIDs {
		if have == id {
			return true
		}
	}
	return false
}

// FieldErrors re-runs the submission schema against the current values.
// The result is advisory: editing is never blocked by a failing field.
func (s *State) FieldErrors() []FieldError {
	return Validate(s.Snapshot())
}

func cloneIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	dup := make([]string, len(ids))
	copy(dup, ids)
	return dup
}
