package ui

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell-hq/quill/internal/inkwell"
)

// fakeService records calls instead of touching the network.
type fakeService struct {
	mu        sync.Mutex
	updates   []inkwell.UpdatePostRequest
	updateErr error
}

func (f *fakeService) FetchPost(ctx context.Context, id string) (*inkwell.Post, error) {
	return nil, errors.New("not used in tests")
}

func (f *fakeService) FetchCategories(ctx context.Context) ([]inkwell.Category, error) {
	return nil, errors.New("not used in tests")
}

func (f *fakeService) UpdatePost(ctx context.Context, id string, req inkwell.UpdatePostRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, req)
	return f.updateErr
}

func (f *fakeService) updateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.updates)
}

var _ inkwell.PostService = (*fakeService)(nil)

func uiPost() *inkwell.Post {
	return &inkwell.Post{
		ID:            "p1",
		Title:         "Hello",
		Content:       "Body",
		CoverImageURL: "https://img.example.com/x.png",
		Categories: []inkwell.PostCategory{
			{Category: inkwell.Category{ID: "c1", Name: "Go"}},
		},
	}
}

func uiCatalog() []inkwell.Category {
	return []inkwell.Category{
		{ID: "c1", Name: "Go"},
		{ID: "c2", Name: "Terminal"},
	}
}

// step runs one Update and returns the typed model.
func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	typed, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return typed, cmd
}

// drain executes a command tree and collects the produced messages.
func drain(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, sub := range batch {
			out = append(out, drain(t, sub)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func readyModel(t *testing.T, svc *fakeService) Model {
	t.Helper()
	m := New(Options{Service: svc, PostID: "p1"})
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = step(t, m, postLoadedMsg{post: uiPost()})
	m, _ = step(t, m, catalogLoadedMsg{catalog: uiCatalog()})
	if !m.formReady {
		t.Fatalf("form not ready after both deliveries")
	}
	return m
}

func TestModel_FetchArrivalOrderDoesNotMatter(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}

	postFirst := New(Options{Service: svc, PostID: "p1"})
	postFirst, _ = step(t, postFirst, tea.WindowSizeMsg{Width: 100, Height: 40})
	postFirst, _ = step(t, postFirst, postLoadedMsg{post: uiPost()})
	if postFirst.formReady {
		t.Fatalf("form ready with only the post delivered")
	}
	postFirst, _ = step(t, postFirst, catalogLoadedMsg{catalog: uiCatalog()})

	catalogFirst := New(Options{Service: svc, PostID: "p1"})
	catalogFirst, _ = step(t, catalogFirst, tea.WindowSizeMsg{Width: 100, Height: 40})
	catalogFirst, _ = step(t, catalogFirst, catalogLoadedMsg{catalog: uiCatalog()})
	catalogFirst, _ = step(t, catalogFirst, postLoadedMsg{post: uiPost()})

	for _, m := range []Model{postFirst, catalogFirst} {
		if !m.formReady {
			t.Fatalf("form not ready after both deliveries")
		}
		if got := m.title.Value(); got != "Hello" {
			t.Fatalf("title input = %q, want %q", got, "Hello")
		}
		if got := m.cover.Value(); got != "https://img.example.com/x.png" {
			t.Fatalf("cover input = %q", got)
		}
	}
}

func TestModel_LateRedeliveryDoesNotClobberEdits(t *testing.T) {
	t.Parallel()

	m := readyModel(t, &fakeService{})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	edited := m.session.Draft().Title

	stale := uiPost()
	stale.Title = "Stale"
	m, _ = step(t, m, postLoadedMsg{post: stale})

	if got := m.session.Draft().Title; got != edited {
		t.Fatalf("title = %q after re-delivery, want %q", got, edited)
	}
	if got := m.title.Value(); got != edited {
		t.Fatalf("title input = %q after re-delivery, want %q", got, edited)
	}
}

func TestModel_FetchFailureIsTerminal(t *testing.T) {
	t.Parallel()

	m := New(Options{Service: &fakeService{}, PostID: "p1"})
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = step(t, m, postLoadedMsg{err: errors.New("status 500")})
	m, _ = step(t, m, catalogLoadedMsg{catalog: uiCatalog()})

	if m.formReady {
		t.Fatalf("form ready despite failed post fetch")
	}
	view := m.View()
	if !strings.Contains(view, "Could not load the edit form") {
		t.Fatalf("error view missing failure message:\n%s", view)
	}

	// Any key quits the terminal error screen.
	_, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	msgs := drain(t, cmd)
	if len(msgs) != 1 {
		t.Fatalf("key on error screen produced %d messages, want quit", len(msgs))
	}
	if _, ok := msgs[0].(tea.QuitMsg); !ok {
		t.Fatalf("key on error screen produced %T, want tea.QuitMsg", msgs[0])
	}
}

func TestModel_TypingUpdatesStateAndValidatesLive(t *testing.T) {
	t.Parallel()

	m := readyModel(t, &fakeService{})

	// Wipe the title; the error shows up immediately but typing continues.
	for i := 0; i < len("Hello"); i++ {
		m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	if got := m.session.Draft().Title; got != "" {
		t.Fatalf("title = %q after clearing, want empty", got)
	}
	if m.fieldError("title") == "" {
		t.Fatalf("no live title error, have %#v", m.fieldErrs)
	}

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("A")})
	if got := m.session.Draft().Title; got != "A" {
		t.Fatalf("title = %q after typing, want %q", got, "A")
	}
	if m.fieldError("title") != "" {
		t.Fatalf("title error survived a valid edit: %#v", m.fieldErrs)
	}
}

func TestModel_SpaceTogglesCategoryUnderCursor(t *testing.T) {
	t.Parallel()

	m := readyModel(t, &fakeService{})
	m.focus = focusCategories

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeySpace})

	draft := m.session.Draft()
	if !m.session.Checklist()[1].Checked {
		t.Fatalf("checklist entry not toggled: %#v", m.session.Checklist())
	}
	found := false
	for _, id := range draft.CategoryIDs {
		if id == "c2" {
			found = true
		}
	}
	if !found {
		t.Fatalf("category ids = %#v, want c2 present", draft.CategoryIDs)
	}
}

func TestModel_InvalidSubmitIssuesNoNetworkCall(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	m := readyModel(t, svc)
	m.session.SetTitle(strings.Repeat("a", 101))

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	for _, msg := range drain(t, cmd) {
		m, _ = step(t, m, msg)
	}

	if svc.updateCount() != 0 {
		t.Fatalf("invalid submit hit the network %d times", svc.updateCount())
	}
	if m.fieldError("title") == "" {
		t.Fatalf("no title error after rejected submit: %#v", m.fieldErrs)
	}
}

func TestModel_SubmitSendsPayloadAndQuits(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	m := readyModel(t, svc)

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.submitter.InFlight() {
		t.Fatalf("submission not in flight after ctrl+s")
	}

	var finished *submitFinishedMsg
	for _, msg := range drain(t, cmd) {
		if fin, ok := msg.(submitFinishedMsg); ok {
			finished = &fin
		}
	}
	if finished == nil {
		t.Fatalf("ctrl+s produced no submit result")
	}
	if svc.updateCount() != 1 {
		t.Fatalf("update calls = %d, want 1", svc.updateCount())
	}
	if got := svc.updates[0].Title; got != "Hello" {
		t.Fatalf("submitted title = %q, want %q", got, "Hello")
	}

	m, cmd = step(t, m, *finished)
	if !m.Updated() {
		t.Fatalf("model not marked updated after successful submit")
	}
	msgs := drain(t, cmd)
	if len(msgs) != 1 {
		t.Fatalf("successful submit produced %d messages, want quit", len(msgs))
	}
	if _, ok := msgs[0].(tea.QuitMsg); !ok {
		t.Fatalf("successful submit produced %T, want tea.QuitMsg", msgs[0])
	}
}

func TestModel_DeselectAllSubmitsEmptyCategoryList(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	m := readyModel(t, svc)
	m.focus = focusCategories

	// The cursor starts on the only selected category; space clears it.
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if ids := m.session.Draft().CategoryIDs; len(ids) != 0 {
		t.Fatalf("category ids = %#v after deselect-all, want none", ids)
	}

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	for range drain(t, cmd) {
	}
	if svc.updateCount() != 1 {
		t.Fatalf("update calls = %d, want 1", svc.updateCount())
	}

	req := svc.updates[0]
	if req.CategoryIDs == nil {
		t.Fatalf("submitted category ids are nil, want empty slice")
	}
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	if !strings.Contains(string(body), `"categoryIds":[]`) {
		t.Fatalf("request body encodes category ids as %s, want []", body)
	}
}

func TestModel_SecondSubmitIgnoredWhileInFlight(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	m := readyModel(t, svc)

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	// A second ctrl+s while the first is outstanding does nothing.
	var second tea.Cmd
	m, second = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	for _, msg := range drain(t, second) {
		if _, ok := msg.(submitFinishedMsg); ok {
			t.Fatalf("second ctrl+s started another submission")
		}
	}

	for range drain(t, cmd) {
	}
	if svc.updateCount() != 1 {
		t.Fatalf("update calls = %d, want 1", svc.updateCount())
	}
}

func TestModel_FailedSubmitKeepsEditsAndShowsBanner(t *testing.T) {
	t.Parallel()

	svc := &fakeService{updateErr: &inkwell.APIError{Status: 500, Path: "/admin/posts/p1"}}
	m := readyModel(t, svc)
	before := m.session.Draft()

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	for _, msg := range drain(t, cmd) {
		m, _ = step(t, m, msg)
	}

	if m.Updated() {
		t.Fatalf("model marked updated after failed submit")
	}
	if m.submitter.InFlight() {
		t.Fatalf("in-flight latch not cleared after failure")
	}
	if after := m.session.Draft(); after.Title != before.Title || after.Content != before.Content {
		t.Fatalf("failed submit changed the draft:\nbefore %#v\nafter  %#v", before, after)
	}
	if view := m.View(); !strings.Contains(view, "Save failed") {
		t.Fatalf("view missing failure banner:\n%s", view)
	}

	// Manual retry works once the latch is clear.
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.submitter.InFlight() {
		t.Fatalf("retry did not start a new submission")
	}
}
