package ui

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if err := m.session.FetchError(); err != nil {
		return m.renderFetchFailure(err)
	}
	if !m.formReady {
		return m.renderLoading()
	}
	return m.renderForm()
}

func (m Model) renderLoading() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString("  " + m.spin.View() + styles.MutedText.Render(" Loading post and categories..."))
	b.WriteString("\n")
	return b.String()
}

// renderFetchFailure is the terminal error screen: one of the two initial
// fetches failed and the form can never be shown.
func (m Model) renderFetchFailure(err error) string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString("  " + styles.DangerText.Render("Could not load the edit form"))
	b.WriteString("\n\n")
	b.WriteString("  " + styles.Text.Render(truncate(err.Error(), 120)))
	b.WriteString("\n\n")
	b.WriteString("  " + styles.MutedText.Render("Press any key to quit."))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderForm() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.submitErr != nil {
		b.WriteString(styles.Banner.Render("Save failed: "+truncate(m.submitErr.Error(), 100)) +
			" " + styles.MutedText.Render("Your edits are kept; fix and save again."))
		b.WriteString("\n")
	}
	if m.submitter.InFlight() {
		b.WriteString("  " + m.spin.View() + styles.AccentText.Render(" Saving..."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderField("Title", m.title.View(), "title", focusTitle))
	b.WriteString(m.renderField("Content", m.content.View(), "content", focusContent))
	b.WriteString(m.renderField("Cover image URL", m.cover.View(), "coverImageUrl", focusCover))
	b.WriteString(m.renderChecklist())

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	title := m.session.Draft().Title
	if title == "" {
		title = m.postID
	}
	return styles.Header.Render("quill · edit post: " + truncate(title, 60))
}

func (m Model) renderField(label, input, errField string, area focusArea) string {
	styles := m.theme.Styles()
	box := styles.BlurredBox
	if m.focus == area {
		box = styles.FocusedBox
	}

	var b strings.Builder
	b.WriteString("  " + styles.Label.Render(label) + "\n")
	b.WriteString(box.Render(input) + "\n")
	if msg := m.fieldError(errField); msg != "" {
		b.WriteString("  " + styles.FieldError.Render(msg) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderChecklist() string {
	styles := m.theme.Styles()
	checklist := m.session.Checklist()

	var b strings.Builder
	b.WriteString("  " + styles.Label.Render("Categories") + "\n")
	if len(checklist) == 0 {
		b.WriteString("  " + styles.FaintText.Render("No categories defined.") + "\n")
		return b.String()
	}

	for i, entry := range checklist {
		mark := "[ ]"
		if entry.Checked {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, entry.Name)
		switch {
		case m.focus == focusCategories && i == m.cursor:
			b.WriteString("  " + styles.Selected.Render("> "+line) + "\n")
		case entry.Checked:
			b.WriteString("    " + styles.SuccessText.Render(line) + "\n")
		default:
			b.WriteString("    " + styles.Text.Render(line) + "\n")
		}
	}
	return b.String()
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	parts := []string{
		"tab: next field",
		"space: toggle category",
		"ctrl+s: save",
		"ctrl+t: theme",
		"ctrl+c: quit",
	}
	return styles.Footer.Render(strings.Join(parts, "  •  "))
}

func (m Model) fieldError(field string) string {
	for _, fe := range m.fieldErrs {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}
