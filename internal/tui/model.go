package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/glabrego/reels-cli/internal/capture"
	"github.com/glabrego/reels-cli/internal/media"
	"github.com/glabrego/reels-cli/internal/tui/actions"
	"github.com/glabrego/reels-cli/internal/tui/platform"
	"github.com/glabrego/reels-cli/internal/tui/state"
	tuitheme "github.com/glabrego/reels-cli/internal/tui/theme"
	"github.com/glabrego/reels-cli/internal/tui/view"
)

type clearStatusMsg struct {
	id int
}

type Model struct {
	service  actions.FeedService
	provider capture.Provider

	items  []media.Item
	cursor int
	offset int

	likes     map[string]bool
	comments  map[string][]string
	playingID string

	pendingPreview *media.Item

	composerFor   string
	composerInput textinput.Model

	captureInFlight bool

	showHelp bool
	status   string
	statusID int

	width  int
	height int

	opts         capture.Options
	permissionFn func() bool
	shareFn      func(string) (platform.ShareResult, error)
	theme        tuitheme.Theme
	log          zerolog.Logger
}

func NewModel(service actions.FeedService, provider capture.Provider, opts capture.Options) Model {
	input := textinput.New()
	input.Placeholder = "Add a comment..."
	input.CharLimit = 280

	return Model{
		service:       service,
		provider:      provider,
		opts:          opts,
		likes:         make(map[string]bool),
		comments:      make(map[string][]string),
		composerInput: input,
		shareFn:       platform.Share,
		theme:         tuitheme.Default(),
		log:           zerolog.Nop(),
		width:         80,
		height:        24,
	}
}

func (m *Model) SetLogger(log zerolog.Logger) {
	m.log = log
}

func (m *Model) SetPermissionFn(fn func() bool) {
	m.permissionFn = fn
}

func (m *Model) SetShareFn(fn func(string) (platform.ShareResult, error)) {
	m.shareFn = fn
}

func (m Model) Init() tea.Cmd {
	if m.service == nil {
		return nil
	}
	return actions.LoadFeedCmd(m.service)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refreshPlayback()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.composerFor != "" {
			return m.updateComposer(msg)
		}
		if m.pendingPreview != nil {
			return m.updatePreview(msg)
		}
		if m.showHelp {
			switch msg.String() {
			case "?", "esc":
				m.showHelp = false
			case "q":
				return m, tea.Quit
			}
			return m, nil
		}
		return m.updateFeed(msg)

	case actions.FeedLoadedMsg:
		m.items = msg.Items
		m.cursor = 0
		m.offset = 0
		m.refreshPlayback()
		m.log.Info().Int("posts", len(m.items)).Msg("loaded media list")
		return m, nil

	case actions.FeedLoadErrorMsg:
		// Fail soft: a missing or malformed record means no saved posts.
		m.items = nil
		m.refreshPlayback()
		m.log.Warn().Err(msg.Err).Msg("could not load saved posts, starting empty")
		return m, nil

	case actions.PermissionDeniedMsg:
		m.captureInFlight = false
		m.log.Warn().Msg("storage permission denied, camera capture aborted")
		return m, nil

	case actions.CaptureCancelledMsg:
		m.captureInFlight = false
		m.log.Info().Str("source", string(msg.Source)).Msg("capture cancelled")
		return m, nil

	case actions.CaptureErrorMsg:
		m.captureInFlight = false
		m.log.Error().
			Str("source", string(msg.Source)).
			Str("code", msg.Code).
			Str("message", msg.Message).
			Msg("capture failed")
		return m, nil

	case actions.PickedMsg:
		m.captureInFlight = false
		item := msg.Item
		m.pendingPreview = &item
		return m, nil

	case actions.PostedMsg:
		m.captureInFlight = false
		m.items = msg.Items
		m.refreshPlayback()
		if msg.PersistErr != nil {
			m.log.Error().Err(msg.PersistErr).Msg("could not persist media list")
			m.status = "Could not save feed"
			m.statusID++
			return m, clearStatusCmd(m.statusID, 4*time.Second)
		}
		m.log.Info().Int("posts", len(m.items)).Msg("media posted")
		return m, nil

	case actions.ShareDoneMsg:
		if msg.Result.Action == platform.ActionShared {
			m.log.Info().Str("activity", msg.Result.ActivityType).Msg("shared")
		} else {
			m.log.Info().Msg("share dismissed")
		}
		return m, nil

	case actions.ShareErrorMsg:
		m.log.Error().Err(msg.Err).Msg("share failed")
		return m, nil

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	if m.composerFor != "" {
		var cmd tea.Cmd
		m.composerInput, cmd = m.composerInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateComposer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.composerFor = ""
		m.composerInput.SetValue("")
		m.composerInput.Blur()
		return m, nil
	case "enter":
		updated, ok := state.AppendComment(m.comments, m.composerFor, m.composerInput.Value())
		if !ok {
			return m, nil
		}
		m.comments = updated
		m.composerFor = ""
		m.composerInput.SetValue("")
		m.composerInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.composerInput, cmd = m.composerInput.Update(msg)
	return m, cmd
}

func (m Model) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		item := *m.pendingPreview
		m.pendingPreview = nil
		return m, actions.ConfirmPostCmd(m.service, m.items, item)
	case "esc":
		m.pendingPreview = nil
		return m, nil
	}
	return m, nil
}

func (m Model) updateFeed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "up", "k":
		m.moveCursorBy(-1)
		return m, nil
	case "down", "j":
		m.moveCursorBy(1)
		return m, nil
	case "g":
		m.moveCursorTo(0)
		return m, nil
	case "G":
		m.moveCursorTo(len(m.items) - 1)
		return m, nil
	case "pgup", "ctrl+b":
		m.moveCursorBy(-m.visibleCount())
		return m, nil
	case "pgdown", "ctrl+f":
		m.moveCursorBy(m.visibleCount())
		return m, nil
	case "c":
		if m.service == nil || m.provider == nil || m.captureInFlight {
			return m, nil
		}
		m.captureInFlight = true
		return m, actions.CaptureCmd(m.service, m.provider, m.items, m.opts, m.permissionFn)
	case "p":
		if m.service == nil || m.provider == nil || m.captureInFlight {
			return m, nil
		}
		m.captureInFlight = true
		return m, actions.PickCmd(m.provider, m.opts)
	case "l":
		if len(m.items) == 0 {
			return m, nil
		}
		m.likes = state.ToggleLike(m.likes, m.items[m.cursor].ID)
		return m, nil
	case "m":
		if len(m.items) == 0 {
			return m, nil
		}
		m.composerFor = m.items[m.cursor].ID
		m.composerInput.SetValue("")
		return m, m.composerInput.Focus()
	case "s":
		if len(m.items) == 0 || m.shareFn == nil {
			return m, nil
		}
		return m, actions.ShareCmd(m.items[m.cursor].URI, m.shareFn)
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(view.RenderHeader(m.width, m.theme))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(view.RenderHelp(m.theme))
		b.WriteString("\n")
		b.WriteString(view.RenderFooter(m.width, m.theme))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.items) == 0 {
		b.WriteString("\nNo posts yet. Capture (c) or pick from your library (p) to get started.\n")
	} else {
		for _, entry := range state.VisibleEntries(m.items, m.offset, m.visibleCount()) {
			id := entry.Item.ID
			b.WriteString(view.RenderEntry(view.EntryParams{
				Item:         entry.Item,
				Liked:        state.Liked(m.likes, id),
				LikeCount:    state.LikeCount(m.likes, id),
				CommentCount: state.CommentCount(m.comments, id),
				Playing:      m.playingID == id,
				Active:       entry.Index == m.cursor,
				Width:        m.width,
			}, m.theme))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString(m.theme.StatusWarn.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(view.RenderFooter(m.width, m.theme))
	b.WriteString("\n")

	if m.pendingPreview != nil {
		b.WriteString(view.RenderPreview(*m.pendingPreview, m.width, m.theme))
		b.WriteString("\n")
	}
	if m.composerFor != "" {
		b.WriteString(view.RenderComposer(m.comments[m.composerFor], m.composerInput.View(), m.width, m.theme))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) visibleCount() int {
	chromeLines := 7
	count := (m.height - chromeLines) / view.EntryHeight
	if count < 1 {
		count = 1
	}
	return count
}

func (m *Model) moveCursorBy(delta int) {
	m.moveCursorTo(m.cursor + delta)
}

func (m *Model) moveCursorTo(cursor int) {
	m.cursor = state.ClampCursor(cursor, len(m.items))
	m.refreshPlayback()
}

// refreshPlayback recomputes the scroll window and hands the visibility report
// to the playback cursor: only the first visible video autoplays.
func (m *Model) refreshPlayback() {
	m.cursor = state.ClampCursor(m.cursor, len(m.items))
	m.offset = state.ScrollOffset(m.offset, m.cursor, m.visibleCount(), len(m.items))
	m.playingID = state.PlayingID(state.VisibleEntries(m.items, m.offset, m.visibleCount()))
}

func clearStatusCmd(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
