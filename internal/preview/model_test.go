package preview

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gideora/website/internal/content"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	site := content.New("https://portal.example.com", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	m, err := New(site, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(m.Close)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	return m
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_InitialView(t *testing.T) {
	m := newTestModel(t)

	assert.False(t, m.State().Scrolled)
	assert.False(t, m.State().MenuOpen)

	view := m.View()
	assert.Contains(t, view, "Gideora")
	assert.Contains(t, view, "q quit", "key help shows while the portal button is hidden")
	assert.NotContains(t, view, "▣ PORTAL")
}

func TestModel_NotReady(t *testing.T) {
	site := content.New("", time.Now())
	m, err := New(site, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, "loading…", m.View())
}

func TestModel_ScrollDrivesState(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	require.Greater(t, m.pane.YOffset, 0)
	assert.True(t, m.State().Scrolled)
	assert.Contains(t, m.View(), "▣ PORTAL")

	m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, m.pane.YOffset)
	assert.False(t, m.State().Scrolled)
}

func TestModel_SmallScrollStaysBelowThreshold(t *testing.T) {
	m := newTestModel(t)

	// two lines is 40px, still at the top
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.pane.YOffset)
	assert.False(t, m.State().Scrolled)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.True(t, m.State().Scrolled)
}

func TestModel_ToggleMenu(t *testing.T) {
	m := newTestModel(t)
	paneHeight := m.pane.Height

	m.Update(key('m'))
	assert.True(t, m.State().MenuOpen)
	assert.Less(t, m.pane.Height, paneHeight, "the menu panel takes room from the page")
	assert.Contains(t, m.View(), "#features")

	m.Update(key('m'))
	assert.False(t, m.State().MenuOpen)
	assert.Equal(t, paneHeight, m.pane.Height)
	assert.NotContains(t, m.View(), "#features")
}

func TestModel_OpenPortal(t *testing.T) {
	m := newTestModel(t)

	var opened string
	m.openURL = func(u string) error {
		opened = u
		return errors.New("no browser")
	}

	_, cmd := m.Update(key('p'))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, "https://portal.example.com", opened)
	assert.True(t, strings.Contains(m.View(), "could not open https://portal.example.com"))
}

func TestModel_QuitReleasesSubscription(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(key('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	assert.Equal(t, 0, m.window.Listeners())
	m.window.ScrollTo(1000)
	assert.False(t, m.State().Scrolled, "no scroll signal reaches the controller after teardown")
}
