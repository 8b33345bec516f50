// Package fetcher provides the LEI lookup widget: an identifier input, a
// Search button, a loading spinner, an error region and the details of the
// entity found.
//
// All search semantics live in the orchestrator; this model only routes
// Bubble Tea messages into its transitions and renders the resulting state.
package fetcher

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	search "github.com/zjrosen/leifetch/internal/fetcher"
	"github.com/zjrosen/leifetch/internal/keys"
	"github.com/zjrosen/leifetch/internal/log"
	"github.com/zjrosen/leifetch/internal/ui/styles"
)

// Zone IDs for mouse targets.
const (
	zoneSearchButton = "leifetch-search-button"
	zoneInput        = "leifetch-identifier-input"
)

const defaultWidth = 64

// focusTarget is the element receiving key input.
type focusTarget int

const (
	focusInput focusTarget = iota
	focusButton
)

// resultMsg carries a finished lookup back into Update.
type resultMsg struct {
	result search.Result
}

// LabelsReloadedMsg replaces the labels used by the widget, e.g. after the
// config file changed on disk.
type LabelsReloadedMsg struct {
	Labels search.Labels
}

// Model is the widget state.
type Model struct {
	ctx     context.Context
	fetcher *search.Fetcher
	state   search.State

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keys.KeyMap
	focus   focusTarget

	width  int
	height int
}

// New creates the widget. ctx is passed to every lookup.
func New(ctx context.Context, f *search.Fetcher) Model {
	ti := textinput.New()
	ti.Placeholder = "5493001KJTIIGC8Y1R12"
	ti.Prompt = ""
	ti.PlaceholderStyle = styles.PlaceholderStyle
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	h := help.New()
	h.Styles.ShortKey = styles.HelpStyle
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.FullKey = styles.HelpStyle
	h.Styles.FullDesc = styles.HelpStyle

	return Model{
		ctx:     ctx,
		fetcher: f,
		input:   ti,
		spinner: sp,
		help:    h,
		keys:    keys.DefaultKeyMap(),
		focus:   focusInput,
		width:   defaultWidth,
	}
}

// State returns the current search state.
func (m Model) State() search.State {
	return m.state
}

// Labels returns the labels currently in use.
func (m Model) Labels() search.Labels {
	return m.fetcher.Labels()
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the widget.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case resultMsg:
		m.state = m.fetcher.Complete(m.state, msg.result)
		log.Debug(log.CatUI, "lookup applied", "request_id", msg.result.Request.ID, "phase", m.state.Phase())
		return m, nil

	case LabelsReloadedMsg:
		m.fetcher = m.fetcher.WithLabels(msg.Labels)
		log.Info(log.CatUI, "labels reloaded", "search", msg.Labels.Search)
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.focus == focusInput {
		return m.updateInput(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		return m.search()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.FocusNext), key.Matches(msg, m.keys.FocusPrev):
		if m.focus == focusInput {
			return m.setFocus(focusButton), nil
		}
		return m.setFocus(focusInput), nil

	case key.Matches(msg, m.keys.Clear):
		m.state = m.fetcher.Clear(m.state)
		m.input.SetValue("")
		return m, nil
	}

	if m.focus == focusInput {
		return m.updateInput(msg)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if z := zone.Get(zoneSearchButton); z != nil && z.InBounds(msg) {
		m = m.setFocus(focusButton)
		return m.search()
	}
	if z := zone.Get(zoneInput); z != nil && z.InBounds(msg) {
		return m.setFocus(focusInput), nil
	}
	return m, nil
}

// updateInput forwards msg to the text input and records the new value.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.state.Identifier {
		m.state = m.fetcher.Input(m.state, v)
	}
	return m, cmd
}

// search runs the orchestrator's trigger and, for a valid identifier,
// starts the lookup and the spinner.
func (m Model) search() (tea.Model, tea.Cmd) {
	state, req := m.fetcher.Search(m.state)
	m.state = state
	if req == nil {
		return m, nil
	}

	f, ctx, r := m.fetcher, m.ctx, *req
	execute := func() tea.Msg {
		return resultMsg{result: f.Execute(ctx, r)}
	}
	return m, tea.Batch(execute, m.spinner.Tick)
}

func (m Model) setFocus(target focusTarget) Model {
	m.focus = target
	if target == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}
