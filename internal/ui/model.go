package ui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"repogrip/internal/config"
	"repogrip/internal/logic"
	"repogrip/internal/ui/handlers"
	"repogrip/internal/ui/input"
	inputtypes "repogrip/internal/ui/input/types"
	"repogrip/internal/ui/state"
	"repogrip/internal/ui/viewmodels"
	"repogrip/internal/ui/views"
)

// Model is the Bubble Tea model. It owns the list store and drives it from
// the update loop, so every store mutation happens on one goroutine.
type Model struct {
	ctx    context.Context
	config *config.Config
	store  *logic.ListStore
	state  *state.AppState

	width  int
	height int

	userInput   textinput.Model
	filterInput textinput.Model

	inputHandler *input.Handler
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	renderer     *views.Renderer
	pager        Pager

	configSvc     config.ConfigService
	configWatcher *config.Watcher
	copyText      func(string) error
}

// NewModel creates a new UI model
func NewModel(ctx context.Context, cfg *config.Config, store *logic.ListStore, pager Pager) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	appState := state.NewAppState()

	userInput := textinput.New()
	userInput.Placeholder = "GitHub user"
	userInput.Prompt = ""
	userInput.CharLimit = 39

	filterInput := textinput.New()
	filterInput.Placeholder = "substring"
	filterInput.Prompt = ""

	m := &Model{
		ctx:          ctx,
		config:       cfg,
		store:        store,
		state:        appState,
		userInput:    userInput,
		filterInput:  filterInput,
		inputHandler: input.New(),
		eventHandler: handlers.NewEventHandler(appState),
		renderer:     views.NewRenderer(),
		pager:        pager,
		copyText:     clipboard.WriteAll,
	}
	m.viewModel = viewmodels.NewViewModel(appState, store, cfg, m.inputHandler.Keys())
	m.applyFocus()

	return m
}

// WatchConfig reloads the configuration through svc whenever w reports a
// change. Call before the program starts.
func (m *Model) WatchConfig(svc config.ConfigService, w *config.Watcher) {
	m.configSvc = svc
	m.configWatcher = w
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if user := m.config.UISettings.DefaultUser; user != "" {
		m.userInput.SetValue(user)
		cmds = append(cmds, m.fetch(m.store.SetSourceIdentifier(user)))
	}
	if m.configWatcher != nil {
		cmds = append(cmds, waitForConfigChange(m.configWatcher))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case fetchResultMsg:
		if !m.store.ApplyFetch(msg.result) {
			log.Printf("Discarded stale result for %q (seq %d)", msg.result.Source, msg.result.Seq)
		}
		return m, nil

	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case handlers.TickMsg:
		if m.store.FetchState().Loading {
			return m, handlers.Tick()
		}
		return m, nil

	case configChangedMsg:
		m.reloadConfig()
		return m, waitForConfigChange(m.configWatcher)

	case pagerMsg:
		m.state.PagerOpen = false
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			m.state.SetStatus("Pager failed: "+msg.err.Error(), true)
		}
		return m, nil
	}

	// Cursor blink and other input messages
	return m, m.updateFocusedInput(msg)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.viewModel.BuildViewState(m.userInput, m.filterInput))
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	actions, consumed := m.inputHandler.HandleKey(msg)
	if !consumed {
		return m, m.updateFocusedInput(msg)
	}

	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch action.(type) {
	case inputtypes.QuitAction:
		return tea.Quit

	case inputtypes.FocusNextAction:
		m.state.NextFocus()
		m.applyFocus()

	case inputtypes.FocusPrevAction:
		m.state.PrevFocus()
		m.applyFocus()

	case inputtypes.AppendPlaceholderAction:
		m.store.AppendPlaceholder()

	case inputtypes.RefreshAction:
		return m.fetch(m.store.Refresh())

	case inputtypes.ClearFilterAction:
		m.filterInput.Reset()
		m.store.SetFilterText("")

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.CopyListAction:
		m.copyList()

	case inputtypes.OpenPagerAction:
		return m.openPager()
	}
	return nil
}

// updateFocusedInput forwards msg to the focused text input and pushes any
// value change into the store.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.state.Focus {
	case state.FocusUser:
		m.userInput, cmd = m.userInput.Update(msg)
		if m.userInput.Value() != m.store.Source() {
			return tea.Batch(cmd, m.fetch(m.store.SetSourceIdentifier(m.userInput.Value())))
		}
	case state.FocusFilter:
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.store.SetFilterText(m.filterInput.Value())
	}
	return cmd
}

// fetch wraps a request in a command that runs it off the update loop
func (m *Model) fetch(req *logic.FetchRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return fetchResultMsg{result: req.Run(ctx)}
	}
}

func (m *Model) openPager() tea.Cmd {
	if m.pager == nil || m.state.PagerOpen {
		return nil
	}
	m.state.PagerOpen = true

	title, items := m.visibleList()
	content := views.PagerContent(title, items)
	pager := m.pager
	return func() tea.Msg {
		return pagerMsg{err: pager.Show(content)}
	}
}

// visibleList returns the list the user is looking at and its title
func (m *Model) visibleList() (string, []string) {
	if m.store.HasFilter() {
		return "Repositories matching " + m.store.FilterText(), m.store.FilteredList()
	}
	return "Repositories", m.store.List()
}

func (m *Model) copyList() {
	_, items := m.visibleList()
	if len(items) == 0 {
		m.state.SetStatus("Nothing to copy", true)
		return
	}
	if err := m.copyText(strings.Join(items, "\n")); err != nil {
		log.Printf("Clipboard error: %v", err)
		m.state.SetStatus(fmt.Sprintf("Clipboard error: %v", err), true)
		return
	}
	m.state.SetStatus(fmt.Sprintf("Copied %d repositories to clipboard", len(items)), false)
}

// waitForConfigChange blocks until w reports a change
func waitForConfigChange(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		<-w.Changed()
		return configChangedMsg{}
	}
}

func (m *Model) reloadConfig() {
	if m.configSvc == nil {
		return
	}
	cfg, err := m.configSvc.Load()
	if err != nil {
		log.Printf("Config reload failed: %v", err)
		m.state.SetStatus(fmt.Sprintf("Config reload failed: %v", err), true)
		return
	}
	// The running user and API client are not swapped; only display and
	// list settings take effect immediately.
	cfg.UISettings.DefaultUser = m.config.UISettings.DefaultUser
	m.config = cfg
	m.store.SetPlaceholder(cfg.List.Placeholder)
	m.viewModel.SetConfig(cfg)
	m.state.SetStatus("Config reloaded", false)
}

func (m *Model) applyFocus() {
	if m.state.Focus == state.FocusUser {
		m.userInput.Focus()
		m.filterInput.Blur()
		return
	}
	m.filterInput.Focus()
	m.userInput.Blur()
}

// Store returns the list store driven by the model
func (m *Model) Store() *logic.ListStore {
	return m.store
}

// State returns the UI state
func (m *Model) State() *state.AppState {
	return m.state
}
