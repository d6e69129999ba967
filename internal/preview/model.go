// Package preview renders the landing page in the terminal. Scrolling the page
// drives the same view state controller the browser script mirrors, so the
// navbar, mobile menu and portal button react exactly as they do on the web.
package preview

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/browser"

	"github.com/gideora/website/internal/content"
	"github.com/gideora/website/internal/logger"
	"github.com/gideora/website/internal/viewstate"
)

// LineHeight converts terminal lines to the px offsets the controller
// thresholds on.
const LineHeight = 20

type portalOpenedMsg struct{ err error }

// Model is the bubbletea model of the preview.
type Model struct {
	site   content.Site
	ctrl   *viewstate.Controller
	window *viewstate.Window
	sub    *viewstate.Subscription

	pane   viewport.Model
	ready  bool
	width  int
	height int
	status string

	openURL func(string) error
	log     *slog.Logger
}

// New builds a model whose controller is subscribed to the pane's scroll
// offsets. Callers must Close it.
func New(site content.Site, log *slog.Logger) (*Model, error) {
	log = log.With(logger.Scope("preview"))

	ctrl := viewstate.NewController(viewstate.WithLogger(log))
	window := viewstate.NewWindow()
	sub, err := ctrl.Subscribe(window)
	if err != nil {
		return nil, fmt.Errorf("subscribe controller: %w", err)
	}

	return &Model{
		site:    site,
		ctrl:    ctrl,
		window:  window,
		sub:     sub,
		pane:    viewport.New(0, 0),
		openURL: browser.OpenURL,
		log:     log,
	}, nil
}

// State exposes the controller snapshot.
func (m *Model) State() viewstate.State {
	return m.ctrl.State()
}

// Close releases the scroll subscription.
func (m *Model) Close() {
	m.sub.Unsubscribe()
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.pane.Width = msg.Width
		m.pane.SetContent(renderPage(m.site, msg.Width))
		m.ready = true
		m.layout()
		return m, nil

	case portalOpenedMsg:
		if msg.err != nil {
			m.log.Warn("open portal", logger.Error(msg.err))
			m.status = "could not open " + m.site.PortalURL
		} else {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Close()
			return m, tea.Quit
		case "m":
			m.ctrl.ToggleMenu()
			m.layout()
			return m, nil
		case "p":
			return m, m.openPortal()
		}
	}

	var cmd tea.Cmd
	m.pane, cmd = m.pane.Update(msg)
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		m.window.ScrollTo(float64(m.pane.YOffset * LineHeight))
	}
	return m, cmd
}

// layout sizes the pane around the navbar, the menu panel and the footer bar.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	chrome := 2
	if m.ctrl.State().MenuOpen {
		chrome += lipgloss.Height(renderMenu(m.site, m.width))
	}
	m.pane.Height = max(m.height-chrome, 1)
}

func (m *Model) openPortal() tea.Cmd {
	url, open := m.site.PortalURL, m.openURL
	return func() tea.Msg {
		return portalOpenedMsg{err: open(url)}
	}
}

func (m *Model) View() string {
	if !m.ready {
		return "loading…"
	}

	state := m.ctrl.State()
	out := renderNavbar(m.site, state, m.width) + "\n"
	if state.MenuOpen {
		out += renderMenu(m.site, m.width) + "\n"
	}
	out += m.pane.View() + "\n"
	if m.status != "" {
		return out + mutedStyle.Render(m.status)
	}
	return out + renderFooterBar(state, m.width)
}

// Run starts the preview and blocks until the user quits or ctx is done. The
// scroll subscription is released on every exit path.
func Run(ctx context.Context, site content.Site, log *slog.Logger, opts ...tea.ProgramOption) error {
	m, err := New(site, log)
	if err != nil {
		return err
	}
	defer m.Close()

	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}, opts...)

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run preview: %w", err)
	}
	return nil
}
