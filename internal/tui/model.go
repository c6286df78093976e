// Package tui draws the dashboard page in the terminal.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/vadiminshakov/late/internal/services/stats"
	"github.com/vadiminshakov/late/internal/view"
)

const frameInterval = 50 * time.Millisecond

// Dashboard actions the front end triggers.
type Dashboard interface {
	Start(ctx context.Context, width int)
	Resize(width int)
	Narrow() bool
	Copy() bool
	Refresh()
	Pause()
	Play()
	Fast()
	Slow()
	Normal()
	HoverEnter()
	HoverLeave()
}

type section int

const (
	sectionHeader section = iota
	sectionStats
	sectionSupply
	sectionContract
	sectionCarousel
	sectionStatus
	sectionToast
	sectionHelp
)

type frameMsg time.Time

type copiedMsg struct {
	ok bool
}

// Model bubbletea model of the dashboard.
type Model struct {
	ctx      context.Context
	dash     Dashboard
	page     *view.Page
	contract string
	memes    []string

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	marquee marquee

	width    int
	height   int
	started  bool
	hovering bool
}

// New creates the model. The dashboard is started on the first window size.
func New(ctx context.Context, dash Dashboard, page *view.Page, contract string, memes []string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = labelStyle

	return Model{
		ctx:      ctx,
		dash:     dash,
		page:     page,
		contract: contract,
		memes:    memes,
		keys:     newKeyMap(),
		help:     help.New(),
		spinner:  sp,
		marquee:  newMarquee(memes),
	}
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	}, opts...)

	_, err := tea.NewProgram(m, opts...).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) copyCmd() tea.Cmd {
	dash := m.dash
	return func() tea.Msg {
		return copiedMsg{ok: dash.Copy()}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, frameTick())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if !m.started {
			m.started = true
			m.dash.Start(m.ctx, msg.Width)
			return m, nil
		}
		m.dash.Resize(msg.Width)
		m.hovering = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		if st, ok := m.page.State(view.Track); ok {
			m.marquee = m.marquee.advance(st)
		}
		return m, frameTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case copiedMsg:
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyCmd()
	case key.Matches(msg, m.keys.Refresh):
		m.dash.Refresh()
	case key.Matches(msg, m.keys.Pause):
		m.dash.Pause()
	case key.Matches(msg, m.keys.Play):
		m.dash.Play()
	case key.Matches(msg, m.keys.Fast):
		m.dash.Fast()
	case key.Matches(msg, m.keys.Slow):
		m.dash.Slow()
	case key.Matches(msg, m.keys.Normal):
		m.dash.Normal()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	at, ok := m.sectionAt(msg.Y)

	over := ok && at == sectionCarousel
	if over != m.hovering {
		m.hovering = over
		if over {
			m.dash.HoverEnter()
		} else {
			m.dash.HoverLeave()
		}
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && ok && at == sectionContract {
		return m, m.copyCmd()
	}
	return m, nil
}

// sectionAt maps a screen row to the section drawn there.
func (m Model) sectionAt(y int) (section, bool) {
	if y < 0 {
		return 0, false
	}
	top := 0
	for _, s := range m.sections() {
		h := lipgloss.Height(s.body)
		if y < top+h {
			return s.id, true
		}
		top += h
	}
	return 0, false
}

type renderedSection struct {
	id   section
	body string
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.started {
		return m.spinner.View() + " loading..."
	}

	sections := m.sections()
	bodies := make([]string, 0, len(sections))
	for _, s := range sections {
		bodies = append(bodies, s.body)
	}
	return strings.Join(bodies, "\n")
}

func (m Model) sections() []renderedSection {
	return []renderedSection{
		{sectionHeader, m.viewHeader()},
		{sectionStats, m.viewStats()},
		{sectionSupply, m.viewSupply()},
		{sectionContract, m.viewContract()},
		{sectionCarousel, m.viewCarousel()},
		{sectionStatus, m.viewStatus()},
		{sectionToast, m.viewToast()},
		{sectionHelp, m.help.View(m.keys)},
	}
}

func (m Model) state(id view.ID) view.State {
	st, _ := m.page.State(id)
	return st
}

func (m Model) viewHeader() string {
	return headerStyle.Render("$LATE") + " " + taglineStyle.Render("fashionably late to every pump")
}

func (m Model) viewStats() string {
	cards := []string{
		m.card("MARKET CAP", view.MarketCap),
		m.card("24H VOLUME", view.Volume),
		m.card("PRICE", view.Price),
		m.card("LIQUIDITY", view.Liquidity),
	}

	if m.dash.Narrow() {
		return lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1]),
			lipgloss.JoinHorizontal(lipgloss.Top, cards[2], cards[3]),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) card(title string, id view.ID) string {
	st := m.state(id)
	value := st.Text
	if value == "" {
		value = "—"
	}
	style := cardStyle
	if id == view.Price {
		style = style.Width(30)
	}
	return style.Render(cardTitleStyle.Render(title) + "\n" + toneStyle(st.Tone).Render(value))
}

func (m Model) viewSupply() string {
	supply := m.state(view.SupplyCount).Text
	if supply == "" {
		supply = "0"
	}
	return labelStyle.Render("Total Supply: ") + toneStyle(view.ToneNeutral).Render(supply)
}

func (m Model) viewContract() string {
	button := m.state(view.CopyButton)
	return labelStyle.Render("Contract: ") + m.contract + "  " + buttonToneStyle(button.Tone).Render(button.Text)
}

func (m Model) viewCarousel() string {
	if _, ok := m.page.State(view.Track); ok {
		width := m.width
		if width <= 0 {
			width = 80
		}
		return trackStyle.Width(width).Render(m.marquee.window(width))
	}

	if len(m.memes) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.memes))
	for _, caption := range m.memes {
		lines = append(lines, "• "+caption)
	}
	return gridStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) viewStatus() string {
	status := m.state(view.LastUpdate)
	line := toneStyle(status.Tone).Render(status.Text)
	if m.state(view.Body).HasClass(stats.ClassLoading) {
		line = m.spinner.View() + " " + line
	}
	return line
}

func (m Model) viewToast() string {
	msg := m.state(view.Notification).Text
	if msg == "" {
		return ""
	}
	return toastStyle.Render(msg)
}
