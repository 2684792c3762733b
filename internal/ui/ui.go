// Package ui renders an interactive browser over catalog search results and
// the user's saved tracks.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thornlake/spotline/catalog"
)

var _ list.Item = entityItem{}

// entityItem wraps a [catalog.Entity] to implement [list.Item].
type entityItem struct {
	entity catalog.Entity
}

func (i entityItem) FilterValue() string { return i.Title() }

func (i entityItem) Title() string {
	switch e := i.entity.(type) {
	case catalog.Track:
		return e.Name
	case catalog.Album:
		return e.Name
	case catalog.Artist:
		return e.Name
	case catalog.Playlist:
		return e.Name
	default:
		return "unknown"
	}
}

func (i entityItem) Description() string {
	switch e := i.entity.(type) {
	case catalog.Track:
		desc := artistNames(e.Artists)
		if e.Album.Name != "" {
			desc = fmt.Sprintf("%s • %s", desc, e.Album.Name)
		}
		return desc
	case catalog.Album:
		return fmt.Sprintf("%s • %d tracks", artistNames(e.Artists), e.TotalTracks)
	case catalog.Artist:
		return strings.Join(e.Genres, ", ")
	case catalog.Playlist:
		desc := fmt.Sprintf("%d tracks", e.Tracks.Total)
		if e.Description != "" {
			desc = fmt.Sprintf("%s • %s", desc, e.Description)
		}
		return desc
	default:
		return ""
	}
}

func artistNames(artists []catalog.Artist) string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}

type entitiesFetchedMsg struct {
	entities []catalog.Entity
	err      error
}

// Fetcher loads the entities the browser displays; it runs once at startup.
type Fetcher func(ctx context.Context) ([]catalog.Entity, error)

// Model represents the browser state.
type Model struct {
	ctx     context.Context
	title   string
	fetch   Fetcher
	list    list.Model
	loaded  bool
	width   int
	height  int
	err     error
}

// NewModel creates a browser over the entities produced by fetch.
func NewModel(ctx context.Context, title string, fetch Fetcher) *Model {
	return &Model{ctx: ctx, title: title, fetch: fetch}
}

// Init starts the fetch.
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		entities, err := m.fetch(m.ctx)
		return entitiesFetchedMsg{entities: entities, err: err}
	}
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.loaded {
			m.list.SetSize(msg.Width-4, msg.Height-4)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case entitiesFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		items := make([]list.Item, len(msg.entities))
		for i, e := range msg.entities {
			items[i] = entityItem{entity: e}
		}
		m.list = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.list.Title = m.title
		m.list.Styles.Title = titleStyle
		m.list.SetSize(m.width-4, m.height-4)
		m.loaded = true
		return m, nil
	}

	if m.loaded {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the browser.
func (m *Model) View() string {
	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}
	if !m.loaded {
		return helpStyle.Render("Loading…")
	}
	return fmt.Sprintf("%s\n\n%s", m.list.View(), helpStyle.Render("q: quit"))
}

// Err returns the error that ended the session, if any.
func (m *Model) Err() error {
	return m.err
}
