package tooltip

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
)

const (
	// DefaultMaxWidth caps the overlay width when a config leaves it unset
	DefaultMaxWidth = 220
	// DefaultScrollDebounce collapses bursts of scroll events into one dismissal
	DefaultScrollDebounce = 50 * time.Millisecond
	// DefaultArmDelay keeps the opening tap from counting as an outside click
	DefaultArmDelay = 100 * time.Millisecond
	// AppearDuration is the length of the entry transition
	AppearDuration = 150 * time.Millisecond
)

// DefaultAccent is the teal used for the border when no accent is given
var DefaultAccent = lipgloss.Color("#8bd5ca")

// Mode selects how a tooltip reacts to the mouse
type Mode int

const (
	// ModeHover shows while the pointer is over the trigger
	ModeHover Mode = iota
	// ModeTap toggles on click and closes on a click elsewhere
	ModeTap
)

func (m Mode) String() string {
	if m == ModeTap {
		return "tap"
	}
	return "hover"
}

// ParseMode parses "hover"/"pointer" or "tap"/"touch" (empty means hover)
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "hover", "pointer":
		return ModeHover, nil
	case "tap", "touch":
		return ModeTap, nil
	default:
		return ModeHover, fmt.Errorf("unknown tooltip mode %q", s)
	}
}

// State is the visibility of a tooltip
type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// Config is the immutable per-tooltip configuration supplied by the host
type Config struct {
	// Content is the pre-rendered body text
	Content        string
	AccentColor    lipgloss.Color
	PreferPosition Position
	MaxWidth       int
}

func (c Config) withDefaults() Config {
	if c.AccentColor == "" {
		c.AccentColor = DefaultAccent
	}
	if c.MaxWidth <= 0 {
		c.MaxWidth = DefaultMaxWidth
	}
	return c
}

// Options are host-wide settings shared by every tooltip
type Options struct {
	Mode           Mode
	Spacing        Spacing
	ScrollDebounce time.Duration
	ArmDelay       time.Duration
	// Coordinator defaults to the process-wide coordinator
	Coordinator *Coordinator
	// Surface receives the overlay while visible; nil renders nowhere
	Surface *Surface
	Clock   clockwork.Clock
}

// DefaultOptions returns hover mode with pixel-scale spacing
func DefaultOptions() Options {
	return Options{
		Mode:           ModeHover,
		Spacing:        DefaultSpacing(),
		ScrollDebounce: DefaultScrollDebounce,
		ArmDelay:       DefaultArmDelay,
		Coordinator:    DefaultCoordinator(),
		Clock:          clockwork.NewRealClock(),
	}
}

// ScrollMsg tells tooltips that the host scrolled its content by some
// means other than the mouse wheel
type ScrollMsg struct{}

type scrollSettledMsg struct {
	id  string
	tag int
}

type mountedMsg struct {
	id  string
	gen int
}

type appearedMsg struct {
	id  string
	gen int
}

// listener is the set of environment events a visible tooltip reacts to
type listener uint8

const (
	onScroll listener = 1 << iota
	onResize
	onBlur
	onOutsideClick
)

// Tooltip is the lifecycle controller for one trigger. It is created when
// the host mounts the trigger and destroyed when the host drops it.
type Tooltip struct {
	id       string
	cfg      Config
	opts     Options
	trigger  Trigger
	viewport Size

	state     State
	listeners listener
	hovered   bool
	destroyed bool

	size      Size
	measured  bool
	placement Placement
	shownAt   time.Time
	appearing bool

	// gen invalidates mount/appear messages from an earlier show
	gen int
	// scrollTag invalidates pending debounce ticks
	scrollTag int

	transitions int
}

// New creates a hidden tooltip for the trigger identified by id
func New(id string, trigger Trigger, cfg Config, opts Options) *Tooltip {
	defaults := DefaultOptions()
	if opts.Coordinator == nil {
		opts.Coordinator = defaults.Coordinator
	}
	if opts.Clock == nil {
		opts.Clock = defaults.Clock
	}
	// Zero timings are honored: no debounce, no arming delay
	if opts.ScrollDebounce < 0 {
		opts.ScrollDebounce = defaults.ScrollDebounce
	}
	if opts.ArmDelay < 0 {
		opts.ArmDelay = 0
	}
	return &Tooltip{
		id:      id,
		cfg:     cfg.withDefaults(),
		opts:    opts,
		trigger: trigger,
	}
}

// ID returns the trigger id
func (t *Tooltip) ID() string { return t.id }

// Config returns the tooltip's configuration
func (t *Tooltip) Config() Config { return t.cfg }

// State returns the current visibility state
func (t *Tooltip) State() State { return t.state }

// Visible reports whether the overlay is shown
func (t *Tooltip) Visible() bool { return t.state == Visible }

// Active reports whether this tooltip holds the coordinator slot
func (t *Tooltip) Active() bool { return t.opts.Coordinator.holds(t) }

// Listening reports whether any environment listener is bound
func (t *Tooltip) Listening() bool { return t.listeners != 0 }

// Placement returns the placement computed by the last show
func (t *Tooltip) Placement() Placement { return t.placement }

// Transitions counts show and hide transitions taken so far
func (t *Tooltip) Transitions() int { return t.transitions }

// SetViewport records the terminal size used for placement
func (t *Tooltip) SetViewport(width, height int) {
	t.viewport = Size{Width: width, Height: height}
}

// Hit reports whether the mouse event lies on the trigger. Hosts use it to
// stop a toggling click from reaching their own handlers.
func (t *Tooltip) Hit(msg tea.MouseMsg) bool {
	if t.trigger == nil {
		return false
	}
	r, ok := t.trigger.Bounds()
	return ok && r.Contains(msg.X, msg.Y)
}

// Update feeds an environment message through the state machine
func (t *Tooltip) Update(msg tea.Msg) tea.Cmd {
	if t.destroyed {
		return nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return t.handleMouse(msg)

	case ScrollMsg:
		return t.scrolled()

	case tea.WindowSizeMsg:
		t.SetViewport(msg.Width, msg.Height)
		if t.listeners&onResize != 0 {
			t.hide()
		}

	case tea.BlurMsg:
		if t.listeners&onBlur != 0 {
			t.hide()
		}

	case scrollSettledMsg:
		if msg.id == t.id && msg.tag == t.scrollTag && t.listeners&onScroll != 0 {
			t.hide()
		}

	case mountedMsg:
		if msg.id == t.id && msg.gen == t.gen && t.state == Visible && !t.measured {
			w, h := lipgloss.Size(t.box())
			t.size = Size{Width: w, Height: h}
			t.measured = true
			t.place()
		}

	case appearedMsg:
		if msg.id == t.id && msg.gen == t.gen {
			t.appearing = false
		}
	}

	return nil
}

func (t *Tooltip) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if tea.MouseEvent(msg).IsWheel() {
		return t.scrolled()
	}

	switch t.opts.Mode {
	case ModeHover:
		if msg.Action != tea.MouseActionMotion {
			return nil
		}
		inside := t.Hit(msg)
		switch {
		case inside && !t.hovered:
			t.hovered = true
			return t.Show()
		case !inside && t.hovered:
			t.hovered = false
			t.hide()
		}

	case ModeTap:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if t.Hit(msg) {
			return t.Toggle()
		}
		if t.listeners&onOutsideClick != 0 && t.armed() && !t.bounds().Contains(msg.X, msg.Y) {
			t.hide()
		}
	}

	return nil
}

// Show transitions Hidden → Visible. Showing an already visible tooltip is
// a no-op.
func (t *Tooltip) Show() tea.Cmd {
	if t.destroyed || t.state == Visible {
		return nil
	}

	t.opts.Coordinator.RequestActive(t)
	t.state = Visible
	t.transitions++
	t.gen++
	t.acquire()
	t.shownAt = t.opts.Clock.Now()
	t.appearing = true

	if !t.measured {
		t.size = t.estimate()
	}
	t.place()

	if t.opts.Surface != nil {
		t.opts.Surface.Mount(t)
	}

	id, gen := t.id, t.gen
	cmds := []tea.Cmd{
		tea.Tick(AppearDuration, func(time.Time) tea.Msg {
			return appearedMsg{id: id, gen: gen}
		}),
	}
	if !t.measured {
		cmds = append(cmds, func() tea.Msg {
			return mountedMsg{id: id, gen: gen}
		})
	}
	return tea.Batch(cmds...)
}

// Hide transitions Visible → Hidden. Hiding a hidden tooltip is a no-op.
func (t *Tooltip) Hide() {
	t.hide()
}

// Dismiss implements Handle; the coordinator calls it on eviction
func (t *Tooltip) Dismiss() {
	t.hide()
}

// Toggle shows a hidden tooltip and hides a visible one
func (t *Tooltip) Toggle() tea.Cmd {
	if t.state == Visible {
		t.hide()
		return nil
	}
	return t.Show()
}

// Destroy releases everything the tooltip holds. Later messages are ignored.
func (t *Tooltip) Destroy() {
	t.hide()
	t.opts.Coordinator.ReleaseIfActive(t)
	t.hovered = false
	t.destroyed = true
}

func (t *Tooltip) hide() {
	if t.state == Hidden {
		return
	}

	t.state = Hidden
	t.transitions++
	t.release()
	t.appearing = false

	if t.opts.Surface != nil {
		t.opts.Surface.Unmount(t)
	}
	t.opts.Coordinator.ReleaseIfActive(t)
}

func (t *Tooltip) acquire() {
	t.listeners = onScroll | onResize | onBlur
	if t.opts.Mode == ModeTap {
		t.listeners |= onOutsideClick
	}
}

func (t *Tooltip) release() {
	t.listeners = 0
	t.scrollTag++
}

// scrolled restarts the dismissal debounce
func (t *Tooltip) scrolled() tea.Cmd {
	if t.listeners&onScroll == 0 {
		return nil
	}
	t.scrollTag++
	id, tag := t.id, t.scrollTag
	return tea.Tick(t.opts.ScrollDebounce, func(time.Time) tea.Msg {
		return scrollSettledMsg{id: id, tag: tag}
	})
}

func (t *Tooltip) armed() bool {
	return t.opts.Clock.Since(t.shownAt) >= t.opts.ArmDelay
}

func (t *Tooltip) place() {
	var r Rect
	if t.trigger != nil {
		// An unmeasured trigger leaves r zero; Resolve clamps it on screen
		r, _ = t.trigger.Bounds()
	}
	t.placement = Resolve(r, t.size, t.viewport, t.cfg.PreferPosition, t.opts.Spacing)
}

// estimate sizes the box from the unwrapped content, before first mount
func (t *Tooltip) estimate() Size {
	lines := strings.Split(t.cfg.Content, "\n")
	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}
	// border (2) + padding (2)
	return Size{
		Width:  min(width+4, t.cfg.MaxWidth),
		Height: len(lines) + 2,
	}
}

func (t *Tooltip) box() string {
	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.cfg.AccentColor).
		Padding(0, 1)
	if lipgloss.Width(t.cfg.Content)+4 > t.cfg.MaxWidth {
		style = style.Width(max(t.cfg.MaxWidth-2, 1))
	}
	if t.appearing {
		style = style.Faint(true)
	}
	return style.Render(t.cfg.Content)
}

// bounds is the overlay's on-screen region, including the one row drop
// while the appear transition runs
func (t *Tooltip) bounds() Rect {
	top := t.placement.Top
	if t.appearing {
		top++
	}
	return Rect{
		Top:    top,
		Left:   t.placement.Left - t.size.Width/2,
		Width:  t.size.Width,
		Height: t.size.Height,
	}
}

// Frame implements Layer
func (t *Tooltip) Frame() (string, int, int) {
	b := t.bounds()
	return t.box(), b.Left, b.Top
}
