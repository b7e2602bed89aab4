package form

import "github.com/inkwell-hq/quill/internal/inkwell"

// CheckableCategory is the render-facing projection of a catalog entry plus
// its selection state. It is regenerated from the category id list, never
// mutated on its own.
type CheckableCategory struct {
	ID      string
	Name    string
	Checked bool
}

// BuildChecklist projects the catalog against the selected id list. Catalog
// order is preserved and every catalog entry appears exactly once; Checked is
// membership in selected and nothing else.
func BuildChecklist(catalog []inkwell.Category, selected []string) []CheckableCategory {
	if len(catalog) == 0 {
		return nil
	}
	selectedSet := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		selectedSet[id] = struct{}{}
	}
	out := make([]CheckableCategory, len(catalog))
	for i, c := range catalog {
		_, checked := selectedSet[c.ID]
		out[i] = CheckableCategory{ID: c.ID, Name: c.Name, Checked: checked}
	}
	return out
}
