package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/listcraft/listcraft/internal/listapi"
	"github.com/listcraft/listcraft/internal/lists"
	"github.com/listcraft/listcraft/internal/logging"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenLoading Screen = "loading"
	ScreenError   Screen = "error"
	ScreenBrowse  Screen = "browse"
	ScreenCompose Screen = "compose"
)

// Messages for the asynchronous fetch
type listsLoadedMsg struct {
	resp *listapi.Response
}

type listsFailedMsg struct {
	err error
}

var errNoFetcher = errors.New("no list source configured")

// Options configures the program
type Options struct {
	// Endpoint is shown while loading
	Endpoint string

	// ShowScientificNames renders the scientific name under each item
	ShowScientificNames bool
}

// AppModel is the top-level coordinator model that manages screen transitions
type AppModel struct {
	CurrentScreen Screen

	// State is the view-state controller; Update is its only writer
	State *lists.State

	ctx     context.Context
	fetcher lists.Fetcher
	opts    Options

	// Browse state
	browseCursor int
	Viewport     viewport.Model

	// Compose state
	composeFocus  int
	composeCursor [3]int

	// UI state
	Width   int
	Height  int
	Spinner spinner.Model

	// Help
	Help        help.Model
	LoadingKeys loadingKeyMap
	ErrorKeys   errorKeyMap
	BrowseKeys  browseKeyMap
	ComposeKeys composeKeyMap
}

// NewAppModel creates the application model. The first fetch starts from Init.
func NewAppModel(ctx context.Context, fetcher lists.Fetcher, opts Options) AppModel {
	if ctx == nil {
		ctx = context.Background()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	g := newGlobalKeys()

	return AppModel{
		CurrentScreen: ScreenLoading,
		State:         lists.NewState(fetcher),
		ctx:           ctx,
		fetcher:       fetcher,
		opts:          opts,
		Viewport:      viewport.New(DefaultWidth, DefaultHeight),
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Spinner:       s,
		Help:          help.New(),
		LoadingKeys:   loadingKeyMap{globalKeyMap: g},
		ErrorKeys:     newErrorKeys(g),
		BrowseKeys:    newBrowseKeys(g),
		ComposeKeys:   newComposeKeys(g),
	}
}

// Init starts the first fetch
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.Spinner.Tick,
		fetchLists(m.ctx, m.fetcher),
	)
}

// fetchLists runs one fetch off the event loop and reports the outcome as a message
func fetchLists(ctx context.Context, fetcher lists.Fetcher) tea.Cmd {
	return func() tea.Msg {
		if fetcher == nil {
			return listsFailedMsg{err: errNoFetcher}
		}
		resp, err := fetcher.FetchLists(ctx)
		if err != nil {
			return listsFailedMsg{err: err}
		}
		return listsLoadedMsg{resp: resp}
	}
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.BrowseKeys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.BrowseKeys.Help) {
			m.Help.ShowAll = !m.Help.ShowAll
			return m, nil
		}

	case listsLoadedMsg:
		m.State.ApplyFetched(msg.resp)
		m.browseCursor = 0
		return m.transitionTo(ScreenBrowse)

	case listsFailedMsg:
		m.State.FailLoad(msg.err)
		return m.transitionTo(ScreenError)

	case spinner.TickMsg:
		if m.CurrentScreen != ScreenLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.CurrentScreen {
	case ScreenError:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.ErrorKeys.Retry) {
			logging.Info("Retrying list fetch")
			return m.transitionTo(ScreenLoading)
		}
		return m, nil

	case ScreenBrowse:
		return m.updateBrowse(msg)

	case ScreenCompose:
		return m.updateCompose(msg)
	}

	return m, nil
}

// transitionTo transitions to a new screen
func (m AppModel) transitionTo(screen Screen) (tea.Model, tea.Cmd) {
	logging.Debug("Screen transition",
		zap.String("from", string(m.CurrentScreen)),
		zap.String("to", string(screen)),
	)
	m.CurrentScreen = screen

	var cmd tea.Cmd
	switch screen {
	case ScreenLoading:
		cmd = tea.Batch(m.Spinner.Tick, fetchLists(m.ctx, m.fetcher))

	case ScreenBrowse:
		m.clampBrowseCursor()
		m.syncViewport()

	case ScreenCompose:
		m.composeFocus = 0
		m.composeCursor = [3]int{}
	}

	return m, cmd
}

// View renders the current screen
func (m AppModel) View() string {
	var content, helpText string

	switch m.CurrentScreen {
	case ScreenLoading:
		content = renderHeader(PageName) + "\n" + renderLoading(m.Spinner.View(), m.opts.Endpoint)
		helpText = m.Help.View(m.LoadingKeys)

	case ScreenError:
		detail := ""
		if err := m.State.LoadError(); err != nil {
			detail = listapi.ShortMessage(err)
		}
		content = renderHeader(PageName) + "\n" + renderErrorView(lists.LoadFailedMessage, detail)
		helpText = m.Help.View(m.ErrorKeys)

	case ScreenBrowse:
		content = m.viewBrowse()
		helpText = m.Help.View(m.BrowseKeys)

	case ScreenCompose:
		content = m.viewCompose()
		helpText = m.Help.View(m.ComposeKeys)

	default:
		content = "Unknown screen"
	}

	return RenderApplicationContainer(strings.TrimRight(content, "\n"), helpText, m.Width, m.Height)
}

// Accessors used by the command layer and tests

// BrowseCursor returns the index of the focused card
func (m AppModel) BrowseCursor() int { return m.browseCursor }

// ComposeFocus returns the focused compose column (0-2)
func (m AppModel) ComposeFocus() int { return m.composeFocus }

// ComposeCursor returns the highlighted item index in the focused column
func (m AppModel) ComposeCursor() int { return m.composeCursor[m.composeFocus] }
