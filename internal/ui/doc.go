// Package ui provides the terminal user interface for editing a post.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model wrapping the form core. Bubble Tea's
// event loop is the program's one logical thread of control: the two initial
// fetches and the submit call run as commands whose results come back as
// typed messages, so no handler ever blocks and no state is mutated outside
// Update.
//
// # Package Structure
//
//   - app.go: the Model, message and command definitions, key dispatch, and
//     the main Run function
//   - view.go: rendering for the loading, error, and form screens
//   - keys.go: keyboard bindings
//   - theme.go: color themes and pre-built lipgloss styles
//
// # Lifecycle
//
// Init launches the post fetch and the catalog fetch together; they resolve
// in either order. Each result is delivered into the form session, and the
// first delivery that completes the pair populates the inputs. Until then
// the model shows a spinner and accepts no edits. A failed fetch switches to
// a persistent error screen where any key quits.
//
// # Editing
//
// Tab and shift-tab cycle focus across title, content, cover URL, and the
// category checklist. Text keys go to the focused bubbles component and the
// result is written back into the form state, which re-validates on every
// change; field errors render inline but never block typing. In the
// checklist, up/down move the cursor and space toggles the entry under it.
//
// # Submission
//
// Ctrl+s validates and, when clean, starts the update call. While it is in
// flight the form ignores input (except quit) and shows a busy spinner; a
// second ctrl+s is refused by the submission gate. Success quits the program
// with an updated flag the caller reads; failure shows a banner and leaves
// every edit in place for a manual retry.
package ui
