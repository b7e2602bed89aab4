package inkwell

import "time"

// Category is a tag resource from /categories.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostCategory wraps a category association as returned inside a post payload.
type PostCategory struct {
	Category Category `json:"category"`
}

// Post mirrors the payload returned by /posts/{id}.
type Post struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Content       string         `json:"content"`
	CoverImageURL string         `json:"coverImageURL"`
	CreatedAt     time.Time      `json:"createdAt"`
	Categories    []PostCategory `json:"categories"`
}

// CategoryIDs returns the ids of the post's category associations in payload
// order. Duplicate associations collapse to the first occurrence.
func (p Post) CategoryIDs() []string {
	if len(p.Categories) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(p.Categories))
	ids := make([]string, 0, len(p.Categories))
	for _, pc := range p.Categories {
		id := pc.Category.ID
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// UpdatePostRequest is the body sent to PUT /admin/posts/{id}.
type UpdatePostRequest struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	CoverImageURL string   `json:"coverImageURL"`
	CategoryIDs   []string `json:"categoryIds"`
}
