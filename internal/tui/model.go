package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	barprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/ziadkadry99/prepsite/internal/nav"
	"github.com/ziadkadry99/prepsite/internal/progress"
	"github.com/ziadkadry99/prepsite/internal/render"
)

const (
	headerHeight = 3
	footerHeight = 2

	// Frames per animated jump and the delay between them.
	scrollSteps = 12
	frameDelay  = 16 * time.Millisecond
)

// scrollFrameMsg advances an animated jump by one frame.
type scrollFrameMsg struct{}

// Options configure a Model.
type Options struct {
	// Style is the glamour style for code and the footer.
	Style string
	// StartAt is a section to open at instead of the top.
	StartAt string
}

// Model is the terminal study browser.
type Model struct {
	doc   *render.Document
	style string

	text   *TextRenderer
	page   Page
	body   viewport.Model
	bar    barprogress.Model
	ready  bool
	width  int
	height int

	feed    *progress.Feed
	tracker *progress.Tracker
	detach  func()

	path    []int
	pending string
	err     error
}

// New creates a browser for doc. The model starts tracking reading
// progress immediately and stops when the user quits.
func New(doc *render.Document, opts Options) Model {
	feed := &progress.Feed{}
	tracker := &progress.Tracker{}
	return Model{
		doc:     doc,
		style:   opts.Style,
		body:    viewport.New(0, 0),
		bar:     barprogress.New(barprogress.WithDefaultGradient(), barprogress.WithoutPercentage()),
		feed:    feed,
		tracker: tracker,
		detach:  tracker.Attach(feed),
		pending: opts.StartAt,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case scrollFrameMsg:
		return m.handleScrollFrame()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height

	if m.text == nil || m.text.Width() != max(msg.Width, minWidth) {
		text, err := NewTextRenderer(msg.Width, m.style)
		if err != nil {
			m.err = err
			return m.quit()
		}
		m.text = text
		m.page = text.Document(m.doc)
		m.body.SetContent(m.page.Content)
	}

	m.body.Width = msg.Width
	m.body.Height = max(msg.Height-headerHeight-footerHeight, 1)
	m.bar.Width = max(msg.Width-12, 10)
	m.ready = true

	if m.pending != "" {
		if off, ok := nav.Resolve(m.page.Anchors, m.pending); ok {
			m.body.SetYOffset(off)
		}
		m.pending = ""
	}
	m.publish()
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c", "esc":
		return m.quit()
	case "j", "down":
		return m.scrollTo(m.body.YOffset + 1)
	case "k", "up":
		return m.scrollTo(m.body.YOffset - 1)
	case "pgdown", " ", "f":
		return m.scrollTo(m.body.YOffset + m.body.Height)
	case "pgup", "b":
		return m.scrollTo(m.body.YOffset - m.body.Height)
	case "g", "home":
		return m.scrollTo(0)
	case "G", "end":
		return m.scrollTo(m.maxOffset())
	case "tab":
		return m.jumpSection(1)
	case "shift+tab":
		return m.jumpSection(-1)
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 9 {
		if n <= len(m.doc.Links) {
			return m.jump(m.doc.Links[n-1].Target)
		}
	}
	return m, nil
}

// quit releases the progress subscription and ends the program. Every
// exit goes through here.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.path = nil
	m.detach()
	return m, tea.Quit
}

// scrollTo moves immediately and cancels any running animation.
func (m Model) scrollTo(offset int) (tea.Model, tea.Cmd) {
	m.path = nil
	m.body.SetYOffset(clampOffset(offset, m.maxOffset()))
	m.publish()
	return m, nil
}

// jump animates to a section. Unknown targets do nothing.
func (m Model) jump(target string) (tea.Model, tea.Cmd) {
	off, ok := nav.Resolve(m.page.Anchors, target)
	if !ok {
		return m, nil
	}
	start := len(m.path) == 0
	m.path = nav.SmoothPath(m.body.YOffset, clampOffset(off, m.maxOffset()), scrollSteps)
	if len(m.path) == 0 || !start {
		return m, nil
	}
	return m, frame()
}

func (m Model) jumpSection(dir int) (tea.Model, tea.Cmd) {
	cur := m.currentSection()
	next := cur + dir
	if cur < 0 && dir < 0 {
		next = 0
	}
	if next < 0 || next >= len(m.doc.Links) {
		return m, nil
	}
	return m.jump(m.doc.Links[next].Target)
}

func (m Model) handleScrollFrame() (tea.Model, tea.Cmd) {
	if len(m.path) == 0 {
		return m, nil
	}
	m.body.SetYOffset(m.path[0])
	m.path = m.path[1:]
	m.publish()
	if len(m.path) == 0 {
		return m, nil
	}
	return m, frame()
}

func frame() tea.Cmd {
	return tea.Tick(frameDelay, func(time.Time) tea.Msg { return scrollFrameMsg{} })
}

// publish reports the scroll position to the progress feed.
func (m Model) publish() {
	m.feed.Publish(progress.Event{
		Offset:         float64(m.body.YOffset),
		DocumentHeight: float64(m.body.TotalLineCount()),
		ViewportHeight: float64(m.body.Height),
	})
}

func (m Model) maxOffset() int {
	return max(m.body.TotalLineCount()-m.body.Height, 0)
}

// currentSection is the index of the last link whose section starts at or
// above the top of the viewport, or -1.
func (m Model) currentSection() int {
	cur := -1
	for i, l := range m.doc.Links {
		off, ok := nav.Resolve(m.page.Anchors, l.Target)
		if ok && off <= m.body.YOffset {
			if cur < 0 || off >= m.anchor(cur) {
				cur = i
			}
		}
	}
	return cur
}

func (m Model) anchor(i int) int {
	off, _ := nav.Resolve(m.page.Anchors, m.doc.Links[i].Target)
	return off
}

// Percent is the reading progress shown in the footer.
func (m Model) Percent() float64 {
	return m.tracker.Percent()
}

// Err is set when the model quit because it could not render.
func (m Model) Err() error {
	return m.err
}

// View implements tea.Model.
func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(runewidth.Truncate(m.doc.Title, m.width, "…")) + "\n")
	b.WriteString(NavStyle.Render(NavStrip(m.doc.Links, m.currentSection(), max(m.width-2, 1))) + "\n")
	b.WriteString("\n")
	b.WriteString(m.body.View() + "\n")

	pct := m.tracker.Percent()
	b.WriteString(m.bar.ViewAs(pct/100) + " " + PercentLabel(pct) + "\n")
	b.WriteString(HelpStyle.Render(runewidth.Truncate("1-9 jump • tab next section • j/k scroll • g/G top/bottom • q quit", m.width, "…")))
	return b.String()
}

// NavStrip lays out numbered links on one line, marking the active one and
// truncating to width.
func NavStrip(links []nav.Link, active, width int) string {
	parts := make([]string, len(links))
	for i, l := range links {
		label := strconv.Itoa(i+1) + " " + l.Label
		if i >= 9 {
			label = l.Label
		}
		if i == active {
			label = "[" + label + "]"
		}
		parts[i] = label
	}
	return runewidth.Truncate(strings.Join(parts, "  "), width, "…")
}

// PercentLabel is the footer readout, rounded to a whole percent and
// right-aligned to four columns.
func PercentLabel(pct float64) string {
	return fmt.Sprintf("%4s", progress.Width(math.Round(pct)))
}

func clampOffset(off, maxOff int) int {
	return min(max(off, 0), maxOff)
}

// Run starts the browser in the alternate screen and blocks until the
// user quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
