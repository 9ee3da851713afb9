package tui

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listcraft/listcraft/internal/listapi"
	"github.com/listcraft/listcraft/internal/lists"
)

const fixtureBody = `{
	"animals":[
		{"id":"a1","name":"Cat","scientific_name":"Felis catus","list_number":1},
		{"id":"a2","name":"Owl","scientific_name":"Strix","list_number":1},
		{"id":"b1","name":"Dog","scientific_name":"Canis","list_number":2},
		{"id":"c1","name":"Fox","scientific_name":"Vulpes","list_number":3}
	]
}`

type stubFetcher struct {
	resp  *listapi.Response
	err   error
	calls int
}

func (s *stubFetcher) FetchLists(ctx context.Context) (*listapi.Response, error) {
	s.calls++
	return s.resp, s.err
}

func decode(t *testing.T, body string) *listapi.Response {
	t.Helper()
	var resp listapi.Response
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return &resp
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m AppModel, msgs ...tea.Msg) AppModel {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(AppModel)
		require.True(t, ok, "Update should return AppModel")
	}
	return m
}

func loadedModel(t *testing.T) (AppModel, *stubFetcher) {
	t.Helper()
	f := &stubFetcher{resp: decode(t, fixtureBody)}
	m := NewAppModel(context.Background(), f, Options{ShowScientificNames: true})
	m = press(t, m,
		tea.WindowSizeMsg{Width: 120, Height: 40},
		listsLoadedMsg{resp: f.resp},
	)
	require.Equal(t, ScreenBrowse, m.CurrentScreen)
	return m, f
}

func TestNewAppModel_StartsLoading(t *testing.T) {
	m := NewAppModel(context.Background(), &stubFetcher{}, Options{})
	assert.Equal(t, ScreenLoading, m.CurrentScreen)
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Loading lists...")
}

func TestFetchCmd_Messages(t *testing.T) {
	ok := &stubFetcher{resp: decode(t, fixtureBody)}
	msg := fetchLists(context.Background(), ok)()
	loaded, isLoaded := msg.(listsLoadedMsg)
	require.True(t, isLoaded, "expected listsLoadedMsg, got %T", msg)
	assert.Equal(t, 4, loaded.resp.ItemCount())

	bad := &stubFetcher{err: errors.New("offline")}
	msg = fetchLists(context.Background(), bad)()
	failed, isFailed := msg.(listsFailedMsg)
	require.True(t, isFailed, "expected listsFailedMsg, got %T", msg)
	assert.EqualError(t, failed.err, "offline")

	msg = fetchLists(context.Background(), nil)()
	assert.IsType(t, listsFailedMsg{}, msg)
}

func TestLoadFailure_ShowsErrorAndRetries(t *testing.T) {
	f := &stubFetcher{}
	m := NewAppModel(context.Background(), f, Options{})

	m = press(t, m, listsFailedMsg{err: listapi.NewHTTPError(502, "", "bad gateway")})
	assert.Equal(t, ScreenError, m.CurrentScreen)
	view := m.View()
	assert.Contains(t, view, lists.LoadFailedMessage)
	assert.Contains(t, view, "Try Again")
	assert.Contains(t, view, "HTTP 502")

	updated, cmd := m.Update(runeKey('r'))
	m = updated.(AppModel)
	assert.Equal(t, ScreenLoading, m.CurrentScreen)
	assert.NotNil(t, cmd, "retry should start a fetch")
}

func TestBrowse_SelectAndCompose(t *testing.T) {
	m, _ := loadedModel(t)

	view := m.View()
	assert.Contains(t, view, "List Creation")
	assert.Contains(t, view, "Create a new list")
	assert.Contains(t, view, "List 1")

	// Select the first two cards
	m = press(t, m,
		tea.KeyMsg{Type: tea.KeySpace},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeySpace},
	)
	assert.Equal(t, 2, m.State.SelectedCount())
	assert.Equal(t, 1, m.BrowseCursor())

	m = press(t, m, runeKey('c'))
	assert.Equal(t, ScreenCompose, m.CurrentScreen)
	assert.Equal(t, lists.Composing, m.State.Mode())

	cols := m.State.Collections()
	require.Len(t, cols, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{cols[0].ID, cols[1].ID, cols[2].ID})
	assert.Contains(t, m.View(), "No items")
}

func TestBrowse_ComposeRejected(t *testing.T) {
	m, _ := loadedModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace}, runeKey('c'))
	assert.Equal(t, ScreenBrowse, m.CurrentScreen)
	assert.Equal(t, lists.SelectionMessage, m.State.PendingMessage())
	assert.Contains(t, m.View(), lists.SelectionMessage)

	// Toggling clears the message
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Empty(t, m.State.PendingMessage())
}

func TestBrowse_CursorBounds(t *testing.T) {
	m, _ := loadedModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.BrowseCursor())

	for i := 0; i < 10; i++ {
		m = press(t, m, runeKey('l'))
	}
	assert.Equal(t, 2, m.BrowseCursor())
}

func composeModel(t *testing.T) AppModel {
	t.Helper()
	m, _ := loadedModel(t)
	m = press(t, m,
		tea.KeyMsg{Type: tea.KeySpace},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeySpace},
		runeKey('c'),
	)
	require.Equal(t, ScreenCompose, m.CurrentScreen)
	return m
}

func itemNames(c lists.Collection) []string {
	out := make([]string, 0, len(c.Items))
	for _, it := range c.Items {
		out = append(out, it.Name)
	}
	return out
}

func TestCompose_MoveAndUpdate(t *testing.T) {
	m := composeModel(t)

	// Left column: move Owl to the middle
	m = press(t, m, runeKey('j'), tea.KeyMsg{Type: tea.KeyRight})
	cols := m.State.Collections()
	assert.Equal(t, []string{"Cat"}, itemNames(cols[0]))
	assert.Equal(t, []string{"Owl"}, itemNames(cols[1]))
	assert.Equal(t, 0, m.ComposeCursor(), "cursor should clamp after the move")

	// Left column cannot move further left
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, []string{"Cat"}, itemNames(m.State.Collections()[0]))

	// Right column: move Dog into the middle
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 2, m.ComposeFocus())
	m = press(t, m, runeKey('h'))
	assert.Equal(t, []string{"Owl", "Dog"}, itemNames(m.State.Collections()[1]))

	m = press(t, m, runeKey('u'))
	assert.Equal(t, ScreenBrowse, m.CurrentScreen)

	snapshot := m.State.Snapshot()
	require.Len(t, snapshot, 4)
	assert.Equal(t, []string{"Owl", "Dog"}, itemNames(snapshot[3]))
	assert.False(t, snapshot[3].IsSelected)
}

func TestCompose_MiddleMovesBothWays(t *testing.T) {
	m := composeModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}) // Cat -> middle
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})   // focus middle
	assert.Equal(t, 1, m.ComposeFocus())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}) // Cat -> right
	cols := m.State.Collections()
	assert.Empty(t, cols[1].Items)
	assert.Equal(t, []string{"Dog", "Cat"}, itemNames(cols[2]))
}

func TestCompose_Cancel(t *testing.T) {
	m := composeModel(t)
	before := m.State.Snapshot()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ScreenBrowse, m.CurrentScreen)
	assert.Equal(t, lists.Browsing, m.State.Mode())
	assert.Equal(t, before, m.State.Collections())
}

func TestCompose_ArrowsShown(t *testing.T) {
	m := composeModel(t)
	view := m.View()
	assert.Contains(t, view, "→")
	assert.Contains(t, view, "Update")
	assert.Contains(t, view, "Cancel")
}

func TestHelpToggleAndQuit(t *testing.T) {
	m, _ := loadedModel(t)

	m = press(t, m, runeKey('?'))
	assert.True(t, m.Help.ShowAll)

	_, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
