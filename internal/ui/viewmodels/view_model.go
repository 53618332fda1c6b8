package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"repogrip/internal/config"
	"repogrip/internal/logic"
	"repogrip/internal/ui/input"
	"repogrip/internal/ui/state"
	"repogrip/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state  *state.AppState
	store  *logic.ListStore
	config *config.Config
	width  int
	height int
	help   help.Model
	keys   input.KeyMap
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, store *logic.ListStore, cfg *config.Config, keys input.KeyMap) *ViewModel {
	return &ViewModel{
		state:  appState,
		store:  store,
		config: cfg,
		help:   help.New(),
		keys:   keys,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetConfig swaps the configuration after a reload
func (vm *ViewModel) SetConfig(cfg *config.Config) {
	vm.config = cfg
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(userInput, filterInput textinput.Model) views.ViewState {
	fetch := vm.store.FetchState()
	vm.help.ShowAll = vm.state.ShowHelp

	return views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		UserInput:     userInput.View(),
		FilterInput:   filterInput.View(),
		FocusedField:  vm.state.Focus.String(),
		Items:         vm.store.List(),
		Filtered:      vm.store.FilteredList(),
		FilterText:    vm.store.FilterText(),
		HasFilter:     vm.store.HasFilter(),
		Placeholder:   vm.store.Placeholder(),
		Source:        fetch.Source,
		Loading:       fetch.Loading,
		LastErr:       fetch.LastErr,
		StatusMessage: vm.state.StatusMessage,
		StatusIsError: vm.state.StatusIsError,
		ShowCount:     vm.config.UISettings.ShowCount,
		HelpView:      vm.help.View(vm.keys),
	}
}
