// Package tui provides a Bubble Tea terminal user interface for recipe-browser.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/recipe-browser/internal/controller"
	"github.com/handiism/recipe-browser/internal/nav"
	"github.com/handiism/recipe-browser/internal/thumbnail"
)

// noticeTTL is how long a notification stays on the status line.
const noticeTTL = 4 * time.Second

// Focus is the Home screen area receiving keys.
type Focus int

const (
	FocusSearch Focus = iota
	FocusCategories
	FocusList
)

// Options wires the model to its collaborators.
type Options struct {
	Source    controller.RecipeSource
	Favorites controller.FavoriteStore
	// Thumbnails renders detail previews. Nil disables them.
	Thumbnails *thumbnail.Service
}

// screens holds the controllers the navigation hooks create and retire.
// The Model is copied on every update, so they live behind a pointer.
type screens struct {
	detail *controller.Detail
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	ctx     context.Context
	opts    Options
	browse  *controller.Browse
	nav     *nav.Navigator
	screens *screens

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	focus     Focus
	cursor    int
	catCursor int
	preview   string
	notice    *controller.Notification
	noticeSeq int

	width  int
	height int
}

// NewModel creates a new TUI model showing the Home screen.
func NewModel(ctx context.Context, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Search recipes..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	s := &screens{}
	navigator := nav.New(
		nav.OnEnter(func(e nav.Entry) {
			if e.Route == nav.RecipeDetails {
				s.detail = controller.NewDetail(e.ID, opts.Source, opts.Favorites)
			}
		}),
		nav.OnLeave(func(e nav.Entry) {
			if s.detail != nil && s.detail.ID() == e.ID {
				s.detail.Unmount()
				s.detail = nil
			}
		}),
	)

	return Model{
		ctx:      ctx,
		opts:     opts,
		browse:   controller.NewBrowse(opts.Source),
		nav:      navigator,
		screens:  s,
		input:    ti,
		spinner:  sp,
		viewport: viewport.New(80, 20),
		help:     help.New(),
		keys:     keys,
		focus:    FocusSearch,
	}
}

// Message types
type (
	// browseDoneMsg is sent when a Home screen operation completes.
	browseDoneMsg struct{}

	// detailLoadedMsg is sent when a detail screen finished mounting.
	detailLoadedMsg struct {
		session string
	}

	// previewMsg carries a rendered thumbnail for a detail screen.
	previewMsg struct {
		session string
		preview string
	}

	// noticeMsg carries a notification to show on the status line.
	noticeMsg struct {
		notice controller.Notification
	}

	// clearNoticeMsg hides the notification with the given sequence number.
	clearNoticeMsg struct {
		seq int
	}
)

// Init mounts the Home screen.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.browseCmd(func(ctx context.Context, b *controller.Browse) {
		b.Mount(ctx)
	}))
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = min(max(msg.Width-10, 20), 60)
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-6, 5)
		m.syncDetail()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.browse.Unmount()
			return m, tea.Quit
		}
		if m.nav.Current().Route == nav.RecipeDetails {
			return m.updateDetail(msg)
		}
		return m.updateHome(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case browseDoneMsg:
		m.cursor = 0
		m.clampCategory()

	case detailLoadedMsg:
		d := m.screens.detail
		if d == nil || d.Session() != msg.session {
			return m, nil
		}
		m.syncDetail()
		if cmd := m.previewCmd(d); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case previewMsg:
		if d := m.screens.detail; d != nil && d.Session() == msg.session {
			m.preview = msg.preview
			m.syncDetail()
		}

	case noticeMsg:
		m.noticeSeq++
		n := msg.notice
		m.notice = &n
		m.syncDetail()
		seq := m.noticeSeq
		cmds = append(cmds, tea.Tick(noticeTTL, func(time.Time) tea.Msg {
			return clearNoticeMsg{seq: seq}
		}))

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = nil
		}
	}

	if m.nav.Current().Route == nav.Home && m.focus == FocusSearch {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Focus):
		m.focus = (m.focus + 1) % 3
		if m.focus == FocusSearch {
			return m, m.input.Focus()
		}
		m.input.Blur()
		return m, nil

	case msg.Type == tea.KeyEsc:
		if m.focus != FocusSearch {
			m.focus = FocusSearch
			return m, m.input.Focus()
		}
		m.browse.Unmount()
		return m, tea.Quit
	}

	switch m.focus {
	case FocusSearch:
		if key.Matches(msg, m.keys.Open) {
			text := m.input.Value()
			return m, m.browseCmd(func(ctx context.Context, b *controller.Browse) {
				b.Submit(ctx, text)
			})
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case FocusCategories:
		cats := m.browse.State().Categories
		if len(cats) == 0 {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Left):
			m.catCursor = (m.catCursor - 1 + len(cats)) % len(cats)
		case key.Matches(msg, m.keys.Right):
			m.catCursor = (m.catCursor + 1) % len(cats)
		default:
			return m, nil
		}
		name := cats[m.catCursor].Name
		return m, m.browseCmd(func(ctx context.Context, b *controller.Browse) {
			b.SelectCategory(ctx, name)
		})

	case FocusList:
		recipes := m.browse.State().Recipes
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(recipes)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Open):
			if m.cursor < len(recipes) {
				next, cmd := m.openDetail(recipes[m.cursor].ID)
				return next, cmd
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.nav.Back()
		m.preview = ""
		return m, nil

	case key.Matches(msg, m.keys.Favorite):
		d := m.screens.detail
		if d == nil {
			return m, nil
		}
		ctx := m.ctx
		return m, func() tea.Msg {
			n, err := d.ToggleFavorite(ctx)
			if errors.Is(err, controller.ErrNoRecipe) {
				return nil
			}
			return noticeMsg{notice: n}
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// openDetail pushes the detail screen for id and mounts its controller.
func (m Model) openDetail(id string) (Model, tea.Cmd) {
	m.nav.Navigate(nav.RecipeDetails, id)
	m.preview = ""
	m.viewport.GotoTop()
	d := m.screens.detail
	if d == nil {
		return m, nil
	}
	m.syncDetail()
	ctx := m.ctx
	return m, func() tea.Msg {
		d.Mount(ctx)
		return detailLoadedMsg{session: d.Session()}
	}
}

func (m Model) browseCmd(fn func(context.Context, *controller.Browse)) tea.Cmd {
	ctx, b := m.ctx, m.browse
	return func() tea.Msg {
		fn(ctx, b)
		return browseDoneMsg{}
	}
}

func (m Model) previewCmd(d *controller.Detail) tea.Cmd {
	svc := m.opts.Thumbnails
	state := d.State()
	if svc == nil || state.Recipe == nil || state.Recipe.Thumbnail == "" {
		return nil
	}
	ctx, thumb, session := m.ctx, state.Recipe.Thumbnail, d.Session()
	return func() tea.Msg {
		preview, err := svc.Preview(ctx, thumb)
		if err != nil {
			return nil
		}
		return previewMsg{session: session, preview: preview}
	}
}

// syncDetail refreshes the viewport from the current detail state.
func (m *Model) syncDetail() {
	d := m.screens.detail
	if d == nil {
		return
	}
	m.viewport.SetContent(renderRecipe(d.State(), m.preview, m.viewport.Width))
}

// clampCategory points the chip cursor at the selected category.
func (m *Model) clampCategory() {
	state := m.browse.State()
	for i, c := range state.Categories {
		if c.Name == state.SelectedCategory {
			m.catCursor = i
			return
		}
	}
	m.catCursor = 0
}

// Run starts the TUI application.
func Run(ctx context.Context, opts Options) error {
	m := NewModel(ctx, opts)
	defer m.browse.Unmount()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
