package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/inkwell-hq/quill/internal/form"
	"github.com/inkwell-hq/quill/internal/inkwell"
	"github.com/inkwell-hq/quill/internal/prefs"
)

// focusArea identifies the currently focused form section.
type focusArea int

const (
	focusTitle focusArea = iota
	focusContent
	focusCover
	focusCategories
	focusAreaCount
)

const fetchTimeout = 30 * time.Second

// Options configures the UI.
type Options struct {
	Context   context.Context
	Service   inkwell.PostService
	PostID    string
	Logger    *log.Logger
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	svc       inkwell.PostService
	postID    string
	logger    *log.Logger
	prefsPath string

	// Form core
	session   *form.Session
	submitter *form.Submitter

	// UI state
	theme     Theme
	keys      keyMap
	width     int
	height    int
	ready     bool
	focus     focusArea
	cursor    int // checklist cursor
	formReady bool

	// Inputs
	title   textinput.Model
	cover   textinput.Model
	content textarea.Model
	spin    spinner.Model

	// Validation and submission state
	fieldErrs []form.FieldError
	submitErr error
	updated   bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	title := textinput.New()
	title.Prompt = ""
	title.CharLimit = 0

	cover := textinput.New()
	cover.Prompt = ""
	cover.CharLimit = 0

	content := textarea.New()
	content.ShowLineNumbers = false

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		ctx:       ctx,
		svc:       opts.Service,
		postID:    opts.PostID,
		logger:    logger,
		prefsPath: opts.PrefsPath,
		session:   form.NewSession(),
		submitter: &form.Submitter{},
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		title:     title,
		cover:     cover,
		content:   content,
		spin:      spin,
	}
}

// Init implements tea.Model. The post and catalog fetches start together and
// race; their results arrive as messages in either order.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.spin.Tick,
		fetchPostCmd(m.ctx, m.svc, m.postID),
		fetchCatalogCmd(m.ctx, m.svc),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeInputs()
		return m, nil

	case spinner.TickMsg:
		if !m.formReady || m.submitter.InFlight() {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case postLoadedMsg:
		if msg.err != nil {
			m.logger.Error("post fetch failed", "post", m.postID, "err", msg.err)
		}
		m.session.DeliverPost(msg.post, msg.err)
		m.syncFromSession()
		return m, nil

	case catalogLoadedMsg:
		if msg.err != nil {
			m.logger.Error("category fetch failed", "err", msg.err)
		}
		m.session.DeliverCatalog(msg.catalog, msg.err)
		m.syncFromSession()
		return m, nil

	case submitFinishedMsg:
		m.submitter.Finish()
		if msg.err != nil {
			m.logger.Error("submit failed", "post", m.postID, "err", msg.err)
			m.submitErr = msg.err
			return m, nil
		}
		m.logger.Info("post updated", "post", m.postID)
		m.updated = true
		return m, tea.Quit
	}

	return m, nil
}

// syncFromSession populates the inputs from the merged form state. Runs after
// every delivery but only takes effect on the first one that completes the
// merge; later calls find formReady set and do nothing.
func (m *Model) syncFromSession() {
	if m.formReady || !m.session.Initialized() {
		return
	}
	draft := m.session.Draft()
	m.title.SetValue(draft.Title)
	m.content.SetValue(draft.Content)
	m.cover.SetValue(draft.CoverImageURL)
	m.formReady = true
	m.focus = focusTitle
	m.title.Focus()
	m.resizeInputs()
}

func (m *Model) resizeInputs() {
	if m.width <= 0 {
		return
	}
	innerWidth := m.width - 6
	if innerWidth < 20 {
		innerWidth = 20
	}
	m.title.Width = innerWidth
	m.cover.Width = innerWidth
	m.content.SetWidth(innerWidth)

	contentHeight := m.height - 18
	if contentHeight < 3 {
		contentHeight = 3
	}
	if contentHeight > 12 {
		contentHeight = 12
	}
	m.content.SetHeight(contentHeight)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// A failed fetch is terminal: any key leaves the error screen.
	if m.session.FetchError() != nil {
		return m, tea.Quit
	}

	// Nothing to interact with until the merge has happened, and nothing
	// may change while a submission is in flight.
	if !m.formReady || m.submitter.InFlight() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.beginSubmit()

	case key.Matches(msg, m.keys.NextField):
		m.setFocus((m.focus + 1) % focusAreaCount)
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.setFocus((m.focus + focusAreaCount - 1) % focusAreaCount)
		return m, nil
	}

	if m.focus == focusCategories {
		return m.handleChecklistKey(msg)
	}
	return m.handleInputKey(msg)
}

// handleChecklistKey moves the cursor and toggles entries while the category
// list has focus.
func (m Model) handleChecklistKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	checklist := m.session.Checklist()
	if len(checklist) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(checklist)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if err := m.session.Toggle(checklist[m.cursor].ID); err != nil {
			m.logger.Error("toggle rejected", "err", err)
		}
		m.fieldErrs = m.session.FieldErrors()
	}
	return m, nil
}

// handleInputKey forwards the key to the focused text component and writes
// the result back into the form state for live validation.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
		m.session.SetTitle(m.title.Value())
	case focusContent:
		m.content, cmd = m.content.Update(msg)
		m.session.SetContent(m.content.Value())
	case focusCover:
		m.cover, cmd = m.cover.Update(msg)
		m.session.SetCoverImageURL(m.cover.Value())
	}
	m.fieldErrs = m.session.FieldErrors()
	return m, cmd
}

func (m *Model) setFocus(next focusArea) {
	m.focus = next
	m.title.Blur()
	m.content.Blur()
	m.cover.Blur()
	switch next {
	case focusTitle:
		m.title.Focus()
	case focusContent:
		m.content.Focus()
	case focusCover:
		m.cover.Focus()
	}
}

// beginSubmit validates and, when clean, starts the update call.
func (m Model) beginSubmit() (tea.Model, tea.Cmd) {
	draft, fieldErrs, err := m.submitter.Begin(m.session)
	if err != nil {
		// Not initialized or already in flight; both are no-ops here.
		return m, nil
	}
	if len(fieldErrs) > 0 {
		m.fieldErrs = fieldErrs
		return m, nil
	}

	m.fieldErrs = nil
	m.submitErr = nil
	m.logger.Info("submitting post", "post", m.postID)
	return m, tea.Batch(
		m.spin.Tick,
		submitCmd(m.ctx, m.svc, m.postID, draft),
	)
}

// Messages

type postLoadedMsg struct {
	post *inkwell.Post
	err  error
}

type catalogLoadedMsg struct {
	catalog []inkwell.Category
	err     error
}

type submitFinishedMsg struct {
	err error
}

// Commands

func fetchPostCmd(ctx context.Context, svc inkwell.PostService, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()
		post, err := svc.FetchPost(ctx, id)
		return postLoadedMsg{post: post, err: err}
	}
}

func fetchCatalogCmd(ctx context.Context, svc inkwell.PostService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()
		catalog, err := svc.FetchCategories(ctx)
		return catalogLoadedMsg{catalog: catalog, err: err}
	}
}

func submitCmd(ctx context.Context, svc inkwell.PostService, id string, draft form.Draft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()
		// The wire contract wants an array even with nothing selected;
		// a nil slice would encode as JSON null.
		ids := draft.CategoryIDs
		if ids == nil {
			ids = []string{}
		}
		err := svc.UpdatePost(ctx, id, inkwell.UpdatePostRequest{
			Title:         draft.Title,
			Content:       draft.Content,
			CoverImageURL: draft.CoverImageURL,
			CategoryIDs:   ids,
		})
		return submitFinishedMsg{err: err}
	}
}

// Updated reports whether the session ended with a successful submission.
func (m Model) Updated() bool {
	return m.updated
}

// Run starts the Bubble Tea program and reports whether the post was updated.
func Run(opts Options) (bool, error) {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.Updated(), nil
	}
	return false, nil
}
