// Package app contains the main application model and TEA implementation.
package app

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/jonboulle/clockwork"
	zone "github.com/lrstanley/bubblezone"
	"github.com/riordanpawley/kingdoms/internal/config"
	"github.com/riordanpawley/kingdoms/internal/domain"
	"github.com/riordanpawley/kingdoms/internal/services/history"
	"github.com/riordanpawley/kingdoms/internal/services/navigation"
	"github.com/riordanpawley/kingdoms/internal/services/share"
	"github.com/riordanpawley/kingdoms/internal/services/source"
	"github.com/riordanpawley/kingdoms/internal/types"
	"github.com/riordanpawley/kingdoms/internal/ui/board"
	"github.com/riordanpawley/kingdoms/internal/ui/compact"
	"github.com/riordanpawley/kingdoms/internal/ui/overlay"
	"github.com/riordanpawley/kingdoms/internal/ui/styles"
	"github.com/riordanpawley/kingdoms/internal/ui/tooltip"
)

// maxMarked is how many kingdoms can be marked for a comparison
const maxMarked = 2

// wheelStep is how many table rows one wheel notch scrolls
const wheelStep = 3

// Deps are the services the dashboard runs on. Only Source is required.
type Deps struct {
	Config *config.Config
	Source *source.Client
	// History is nil when rank history is disabled
	History     *history.Store
	Share       *share.Service
	Zones       *zone.Manager
	Coordinator *tooltip.Coordinator
	Clock       clockwork.Clock
	Logger      *slog.Logger
}

// Model is the main application state
type Model struct {
	// Core data
	snapshot  domain.Snapshot
	standings []domain.Standing

	// Navigation: the board cursor follows a kingdom ID, the table keeps
	// its own row cursor
	nav   *navigation.Service
	table *compact.ListView
	sort  domain.Sort
	view  types.View

	// Marked kingdoms, oldest first
	marked    map[string]bool
	markOrder []string

	// UI state
	overlayStack *overlay.Stack
	search       *overlay.SearchOverlay
	keys         KeyMap

	// Tooltips
	zones   *zone.Manager
	surface *tooltip.Surface
	tips    *tipSet

	// Toasts
	toasts []types.Toast

	// Terminal size
	width  int
	height int

	styles *styles.Styles
	config *config.Config

	// Loading state
	loading     bool
	spinner     spinner.Model
	lastRefresh time.Time
	loadErr     error
	refreshGen  int

	// Services
	source  *source.Client
	history *history.Store
	share   *share.Service
	clock   clockwork.Clock
	logger  *slog.Logger
}

// New creates the dashboard model
func New(deps Deps) Model {
	cfg := config.DefaultConfig()
	if deps.Config != nil {
		cfg = config.MergeWithDefaults(deps.Config)
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clock := deps.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	zones := deps.Zones
	if zones == nil {
		zones = zone.New()
	}
	shareSvc := deps.Share
	if shareSvc == nil {
		shareSvc = share.NewService(share.SystemClipboard{}, logger)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	view, err := types.ParseView(cfg.UI.DefaultView)
	if err != nil {
		logger.Warn("invalid default view", "error", err)
	}

	mode, err := tooltip.ParseMode(cfg.Tooltip.Mode)
	if err != nil {
		logger.Warn("invalid tooltip mode", "error", err)
	}
	pos, err := tooltip.ParsePosition(cfg.Tooltip.PreferPosition)
	if err != nil {
		logger.Warn("invalid tooltip position", "error", err)
	}

	surface := tooltip.NewSurface()
	opts := tooltip.Options{
		Mode: mode,
		Spacing: tooltip.Spacing{
			Margin:    cfg.Tooltip.Margin,
			EdgePad:   cfg.Tooltip.EdgePad,
			FlipSlack: cfg.Tooltip.FlipSlack,
		},
		ScrollDebounce: cfg.Tooltip.ScrollDebounce(),
		ArmDelay:       cfg.Tooltip.ArmDelay(),
		Coordinator:    deps.Coordinator,
		Surface:        surface,
		Clock:          clock,
	}
	base := tooltip.Config{
		AccentColor:    lipgloss.Color(cfg.Tooltip.AccentColor),
		PreferPosition: pos,
		MaxWidth:       cfg.Tooltip.MaxWidth,
	}

	table := compact.NewListView(0, 0)
	table.SetMarker(zones)

	keys := DefaultKeyMap()
	keys.Clear.SetEnabled(deps.History != nil)

	return Model{
		nav:          navigation.NewService(),
		table:        table,
		sort:         domain.Sort{Field: domain.SortByRank, Order: domain.SortAsc},
		view:         view,
		marked:       make(map[string]bool),
		overlayStack: overlay.NewStack(),
		keys:         keys,
		zones:        zones,
		surface:      surface,
		tips:         newTipSet(zones, opts, base),
		toasts:       []types.Toast{},
		styles:       styles.New(),
		config:       cfg,
		loading:      true,
		spinner:      s,
		source:       deps.Source,
		history:      deps.History,
		share:        shareSvc,
		clock:        clock,
		logger:       logger,
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadCmd(),
		toastTick(),
	)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetSize(msg.Width, max(msg.Height-1, 1))
		m.overlayStack.SetScreen(msg.Width, msg.Height)
		return m, m.tips.Update(msg)

	case tea.BlurMsg:
		return m, m.tips.Update(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		// If overlay is open, route to overlay stack
		if !m.overlayStack.IsEmpty() {
			return m.handleOverlayKey(msg)
		}
		return m.handleKey(msg)

	// Overlay messages
	case overlay.CloseOverlayMsg:
		if _, ok := m.overlayStack.Pop().(*overlay.SearchOverlay); ok {
			m.search = nil
		}
		return m, nil

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case overlay.SearchMsg:
		m.applySearch(msg.Query)
		return m, nil

	case snapshotLoadedMsg:
		return m.handleLoaded(msg)

	case loadErrorMsg:
		m.logger.Error("failed to load standings", "error", msg.err)
		m.loading = false
		m.loadErr = msg.err
		m.addToast(types.ToastError, msg.err.Error())
		m.refreshGen++
		// Still schedule a refresh to retry
		return m, m.scheduleRefresh()

	case refreshTickMsg:
		if msg.gen != m.refreshGen {
			return m, nil
		}
		return m, m.loadCmd()

	case toastTickMsg:
		m.expireToasts()
		return m, toastTick()

	case detailReadyMsg:
		return m, m.pushOverlay(overlay.NewDetailPanel(msg.standing, msg.trend))

	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn("copy failed", "what", msg.what, "error", msg.err)
			m.addToast(types.ToastError, "Could not copy "+msg.what)
			return m, nil
		}
		m.addToast(types.ToastSuccess, "Copied "+msg.what)
		return m, nil

	case historyClearedMsg:
		if msg.err != nil {
			m.logger.Error("failed to clear history", "error", msg.err)
			m.addToast(types.ToastError, msg.err.Error())
			return m, nil
		}
		m.addToast(types.ToastSuccess, "Rank history cleared")
		return m, nil

	default:
		// Tooltip ticks and text input blinks
		cmds := []tea.Cmd{m.tips.Update(msg)}
		if !m.overlayStack.IsEmpty() {
			cmds = append(cmds, m.overlayStack.Update(msg))
		}
		return m, tea.Batch(cmds...)
	}
}

func (m Model) handleLoaded(msg snapshotLoadedMsg) (tea.Model, tea.Cmd) {
	wasLoading := m.loading
	m.snapshot = msg.snapshot
	m.standings = msg.standings
	m.loading = false
	m.loadErr = nil
	m.lastRefresh = m.clock.Now()

	m.table.SetStandings(m.standings, m.sort)

	// Forget marks for kingdoms that left the standings
	kept := m.markOrder[:0]
	for _, id := range m.markOrder {
		if _, ok := domain.Find(m.standings, id); ok {
			kept = append(kept, id)
		} else {
			delete(m.marked, id)
		}
	}
	m.markOrder = kept
	m.table.SetMarked(m.marked)

	m.syncTooltips()

	m.logger.Debug("standings loaded", "season", msg.snapshot.Season, "count", len(msg.standings), "recorded", msg.recorded)
	if wasLoading {
		m.addToast(types.ToastSuccess, "Loaded "+pluralKingdoms(len(m.standings)))
	}

	m.refreshGen++
	return m, m.scheduleRefresh()
}

// scheduleRefresh starts the next auto-refresh, if enabled. Earlier
// pending ticks are invalidated by the generation bump in the caller.
func (m Model) scheduleRefresh() tea.Cmd {
	interval := m.config.Source.RefreshInterval()
	if interval <= 0 {
		return nil
	}
	return refreshEvery(interval, m.refreshGen)
}

// handleMouse feeds the pointer to the tooltips and then the views
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.loading || !m.overlayStack.IsEmpty() {
		return m, nil
	}

	cmd := m.tips.Update(msg)
	event := tea.MouseEvent(msg)

	switch {
	case event.IsWheel():
		delta := wheelStep
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -wheelStep
		}
		if m.view == types.ViewTable {
			m.table.Scroll(delta)
		} else if delta > 0 {
			m.nav.MoveDown(m.navColumns())
		} else {
			m.nav.MoveUp(m.navColumns())
		}

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		// A tap on a tooltip trigger stops there
		if !m.tips.Hit(msg) {
			m.clickSelect(msg)
		}
	}

	return m, cmd
}

// clickSelect moves the cursor to the kingdom under a click
func (m Model) clickSelect(msg tea.MouseMsg) {
	for _, st := range m.standings {
		id := board.NameZone(st.ID)
		if m.view == types.ViewTable {
			id = compact.RowZone(st.ID)
		}
		r, ok := tooltip.NewZoneTrigger(m.zones, id).Bounds()
		if !ok || !r.Contains(msg.X, msg.Y) {
			continue
		}
		m.selectKingdom(st.ID)
		return
	}
}

// handleKey processes keyboard input when no overlay is open
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.tips.DestroyAll()
		return m, tea.Quit
	}
	if m.loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadCmd()
	case key.Matches(msg, m.keys.Help):
		return m, m.pushOverlay(overlay.NewHelpOverlay(m.keys.forView(m.view == types.ViewBoard)))
	case key.Matches(msg, m.keys.Clear):
		return m, m.pushOverlay(overlay.NewConfirmDialog(overlay.ActionClearHistory,
			"Clear history", "Forget every recorded snapshot? Rank movement starts over."))
	}

	if len(m.standings) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.View):
		current, ok := m.current()
		m.view = m.view.Toggle()
		if ok {
			m.selectKingdom(current.ID)
		}
		m.syncTooltips()
		return m, nil

	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Top, m.keys.Bottom):
		return m, m.move(msg)

	case key.Matches(msg, m.keys.Mark):
		if current, ok := m.current(); ok {
			m.toggleMark(current.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Compare):
		return m.compare()

	case key.Matches(msg, m.keys.Details):
		if current, ok := m.current(); ok {
			return m, m.openDetailCmd(current)
		}

	case key.Matches(msg, m.keys.Share):
		if current, ok := m.current(); ok {
			text := share.Summary(current, m.snapshot.Season, len(m.standings))
			return m, m.copyCmd(text, current.Name)
		}

	case key.Matches(msg, m.keys.Sort):
		if m.view == types.ViewTable {
			return m, m.pushOverlay(overlay.NewSortMenu(m.sort))
		}

	case key.Matches(msg, m.keys.Search):
		m.search = overlay.NewSearchOverlay()
		return m, m.pushOverlay(m.search)

	case msg.String() == "esc":
		m.clearMarks()
	}

	return m, nil
}

// move applies a cursor key. Moving can scroll the view under a visible
// tooltip, so tooltips are told about it.
func (m Model) move(msg tea.KeyMsg) tea.Cmd {
	if m.view == types.ViewTable {
		before := m.table.Offset()
		switch {
		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown()
		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
		case key.Matches(msg, m.keys.Bottom):
			m.table.GotoBottom()
		}
		if m.table.Offset() == before {
			return nil
		}
		return m.tips.Update(tooltip.ScrollMsg{})
	}

	columns := m.navColumns()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.nav.MoveUp(columns)
	case key.Matches(msg, m.keys.Down):
		m.nav.MoveDown(columns)
	case key.Matches(msg, m.keys.Left):
		m.nav.MoveLeft(columns)
	case key.Matches(msg, m.keys.Right):
		m.nav.MoveRight(columns)
	case key.Matches(msg, m.keys.Top):
		m.nav.GotoTop(columns)
	case key.Matches(msg, m.keys.Bottom):
		m.nav.GotoBottom(columns)
	}
	return m.tips.Update(tooltip.ScrollMsg{})
}

func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.tips.DestroyAll()
		return m, tea.Quit
	}
	cmd := m.overlayStack.Update(msg)
	return m, cmd
}

// handleSelection applies a choice made in an overlay
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	switch msg.Key {
	case overlay.ActionSort:
		if s, ok := msg.Value.(domain.Sort); ok {
			m.sort = s
			m.table.SetStandings(m.standings, m.sort)
		}

	case overlay.ActionClearHistory:
		m.overlayStack.Pop()
		if res, ok := msg.Value.(overlay.ConfirmResult); ok && res.Confirmed {
			return m, m.clearHistoryCmd()
		}

	case overlay.ActionCopyComparison:
		if text, ok := msg.Value.(string); ok {
			return m, m.copyCmd(text, "comparison")
		}

	case overlay.ActionShareKingdom:
		id, _ := msg.Value.(string)
		if st, ok := domain.Find(m.standings, id); ok {
			return m, m.copyCmd(share.Summary(st, m.snapshot.Season, len(m.standings)), st.Name)
		}
	}
	return m, nil
}

// applySearch moves the cursor to the first kingdom whose name or ID
// contains query
func (m Model) applySearch(query string) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		if m.search != nil {
			m.search.SetMatchCount(0)
		}
		return
	}

	var first string
	count := 0
	for _, st := range m.standings {
		if strings.Contains(strings.ToLower(st.Name), query) || strings.Contains(strings.ToLower(st.ID), query) {
			if count == 0 {
				first = st.ID
			}
			count++
		}
	}
	if m.search != nil {
		m.search.SetMatchCount(count)
	}
	if first != "" {
		m.selectKingdom(first)
	}
}

// compare opens the head-to-head panel for the two marked kingdoms, or for
// the single marked kingdom against the cursor
func (m Model) compare() (tea.Model, tea.Cmd) {
	ids := append([]string(nil), m.markOrder...)
	if len(ids) == 1 {
		if current, ok := m.current(); ok && current.ID != ids[0] {
			ids = append(ids, current.ID)
		}
	}
	if len(ids) != 2 {
		m.addToast(types.ToastWarning, "Mark two kingdoms to compare")
		return m, nil
	}

	a, okA := domain.Find(m.standings, ids[0])
	b, okB := domain.Find(m.standings, ids[1])
	if !okA || !okB {
		return m, nil
	}
	return m, m.pushOverlay(overlay.NewCompareOverlay(a, b))
}

func (m *Model) toggleMark(id string) {
	if m.marked[id] {
		delete(m.marked, id)
		for i, existing := range m.markOrder {
			if existing == id {
				m.markOrder = append(m.markOrder[:i], m.markOrder[i+1:]...)
				break
			}
		}
	} else {
		if len(m.markOrder) == maxMarked {
			delete(m.marked, m.markOrder[0])
			m.markOrder = m.markOrder[1:]
		}
		m.marked[id] = true
		m.markOrder = append(m.markOrder, id)
	}
	m.table.SetMarked(m.marked)
}

func (m *Model) clearMarks() {
	for id := range m.marked {
		delete(m.marked, id)
	}
	m.markOrder = nil
	m.table.SetMarked(m.marked)
}

// pushOverlay opens a panel; tooltips never show over one
func (m Model) pushOverlay(o overlay.Overlay) tea.Cmd {
	m.tips.HideAll()
	return m.overlayStack.Push(o)
}

// syncTooltips mounts a tooltip for every trigger the current view draws
func (m Model) syncTooltips() {
	m.tips.Sync(tooltipContents(m.standings, m.view, m.config.UI.ShowAchievements, m.styles))
}

// navColumns groups the standings by tier for board navigation
func (m Model) navColumns() navigation.Columns {
	return navigation.Columns(domain.GroupByTier(m.standings))
}

// buildColumns converts standings into board columns
func (m Model) buildColumns() []board.Column {
	return board.Columns(m.standings)
}

// current returns the standing under the cursor of the active view
func (m Model) current() (domain.Standing, bool) {
	if m.view == types.ViewTable {
		return m.table.Current()
	}
	return m.nav.Current(m.navColumns())
}

// selectKingdom moves the active view's cursor to a kingdom
func (m Model) selectKingdom(id string) {
	if m.view == types.ViewTable {
		m.table.Select(id)
		return
	}
	m.nav.Select(m.navColumns(), id)
}

// Mode returns the input mode shown in the status bar
func (m Model) Mode() types.Mode {
	switch {
	case m.loading:
		return types.ModeLoading
	case m.overlayStack.IsEmpty():
		return types.ModeNormal
	}
	if _, ok := m.overlayStack.Current().(*overlay.SearchOverlay); ok {
		return types.ModeSearch
	}
	return types.ModePanel
}

// addToast adds a toast notification to the list
func (m *Model) addToast(level types.ToastLevel, message string) {
	m.toasts = append(m.toasts, types.NewToast(level, message, m.clock.Now(), types.DefaultToastTTL))
}

// expireToasts removes expired toasts from the list
func (m *Model) expireToasts() {
	now := m.clock.Now()
	filtered := make([]types.Toast, 0, len(m.toasts))

	for _, t := range m.toasts {
		if !t.Expired(now) {
			filtered = append(filtered, t)
		}
	}

	m.toasts = filtered
}

func pluralKingdoms(n int) string {
	if n == 1 {
		return "1 kingdom"
	}
	return humanize.Comma(int64(n)) + " kingdoms"
}
