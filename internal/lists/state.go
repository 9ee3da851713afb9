package lists

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/listcraft/listcraft/internal/listapi"
	"github.com/listcraft/listcraft/internal/logging"
)

const (
	// LoadFailedMessage is shown when the lists could not be fetched
	LoadFailedMessage = "Something went wrong while fetching the lists. Please try again."

	// SelectionMessage is shown when compose is requested without exactly two selections
	SelectionMessage = "You should select exactly 2 lists to create a new list"
)

// ErrSelectionCount is returned by BeginCompose when the selection is not exactly two collections.
var ErrSelectionCount = errors.New(SelectionMessage)

// Fetcher retrieves grouped records from the list service.
type Fetcher interface {
	FetchLists(ctx context.Context) (*listapi.Response, error)
}

// State is the view-state controller: the working collections, the
// last committed snapshot, and the interaction mode.
//
// A State is not safe for concurrent use; the UI drives it from one goroutine.
type State struct {
	fetcher Fetcher

	collections []Collection
	snapshot    []Collection
	mode        Mode

	pendingMessage string
	loadErr        error
	loaded         bool

	// roles is only populated while composing, keyed by collection id
	roles map[int]Role
}

// NewState creates a controller that loads from fetcher.
func NewState(fetcher Fetcher) *State {
	return &State{
		fetcher: fetcher,
		mode:    Browsing,
	}
}

// Load fetches and groups the lists. On failure the collections are left as
// they were and LoadError reports the cause.
func (s *State) Load(ctx context.Context) error {
	if s.fetcher == nil {
		err := errors.New("no fetcher configured")
		s.FailLoad(err)
		return err
	}

	resp, err := s.fetcher.FetchLists(ctx)
	if err != nil {
		s.FailLoad(err)
		return fmt.Errorf("load lists: %w", err)
	}

	s.ApplyFetched(resp)
	return nil
}

// ApplyFetched replaces the collections and snapshot with the grouping of resp.
func (s *State) ApplyFetched(resp *listapi.Response) {
	s.collections = BuildCollections(resp)
	s.snapshot = CloneCollections(s.collections)
	s.mode = Browsing
	s.roles = nil
	s.loadErr = nil
	s.loaded = true
	s.pendingMessage = ""

	logging.LogTransition("load", s.mode.String(), zap.Int("collections", len(s.collections)))
}

// FailLoad records a failed fetch.
func (s *State) FailLoad(err error) {
	if err == nil {
		err = errors.New("unknown fetch failure")
	}
	s.loadErr = err
	logging.Warn("Loading lists failed",
		zap.Error(err),
		zap.Bool("retryable", listapi.IsRetryable(err)),
	)
}

// ToggleSelect flips the selection of every collection with the given id.
// It does nothing outside browsing mode.
func (s *State) ToggleSelect(id int) {
	if s.mode != Browsing {
		return
	}

	next := make([]Collection, len(s.collections))
	copy(next, s.collections)
	for i := range next {
		if next[i].ID == id {
			next[i].IsSelected = !next[i].IsSelected
		}
	}
	s.collections = next
	s.pendingMessage = ""

	logging.LogTransition("toggle", s.mode.String(), zap.Int("id", id))
}

// ToggleSelectAt flips the selection of the collection at position i.
// Collections created by a commit can share an id with a fetched one, so the
// UI selects by position.
func (s *State) ToggleSelectAt(i int) {
	if s.mode != Browsing || i < 0 || i >= len(s.collections) {
		return
	}

	next := make([]Collection, len(s.collections))
	copy(next, s.collections)
	next[i].IsSelected = !next[i].IsSelected
	s.collections = next
	s.pendingMessage = ""

	logging.LogTransition("toggle", s.mode.String(), zap.Int("index", i))
}

// BeginCompose switches to composing with the two selected collections
// flanking a new empty one. Any other selection count sets the pending
// message and returns ErrSelectionCount without changing anything else.
func (s *State) BeginCompose() error {
	if s.mode != Browsing {
		return nil
	}

	selected := make([]Collection, 0, 2)
	for _, c := range s.collections {
		if c.IsSelected {
			selected = append(selected, c)
		}
	}

	if len(selected) != 2 {
		s.pendingMessage = SelectionMessage
		logging.Debug("Compose rejected", zap.Int("selected", len(selected)))
		return ErrSelectionCount
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].ID < selected[j].ID
	})
	lo := selected[0].ID

	left := selected[0].Clone()
	left.ID = lo
	left.IsSelected = false

	middle := Collection{
		ID:    lo + 1,
		Name:  nextCollectionName(s.snapshot),
		Items: make([]Item, 0),
	}

	right := selected[1].Clone()
	right.ID = lo + 2
	right.IsSelected = false

	s.collections = []Collection{left, middle, right}
	s.roles = map[int]Role{
		left.ID:   RoleLeft,
		middle.ID: RoleMiddle,
		right.ID:  RoleRight,
	}
	s.mode = Composing
	s.pendingMessage = ""

	logging.LogTransition("compose", s.mode.String(),
		zap.Int("left", left.ID),
		zap.Int("right", right.ID),
	)
	return nil
}

// MoveItem moves an item from one composing collection to an adjacent one,
// appending it to the target. It reports whether anything moved; stale or
// invalid requests are ignored.
func (s *State) MoveItem(itemID string, sourceID, targetID int) bool {
	if s.mode != Composing {
		return false
	}

	if !adjacent(s.roles[sourceID], s.roles[targetID]) {
		logging.Debug("Move ignored: not adjacent",
			zap.Int("source", sourceID),
			zap.Int("target", targetID),
		)
		return false
	}

	si, ti := s.indexOf(sourceID), s.indexOf(targetID)
	if si < 0 || ti < 0 {
		return false
	}

	source := s.collections[si]
	pos := -1
	for i, it := range source.Items {
		if it.ID == itemID {
			pos = i
			break
		}
	}
	if pos < 0 {
		logging.Debug("Move ignored: item not in source",
			zap.String("item", itemID),
			zap.Int("source", sourceID),
		)
		return false
	}

	moved := source.Items[pos]

	// Build the new state off to the side and swap it in whole
	next := make([]Collection, len(s.collections))
	copy(next, s.collections)

	srcItems := make([]Item, 0, len(source.Items)-1)
	srcItems = append(srcItems, source.Items[:pos]...)
	srcItems = append(srcItems, source.Items[pos+1:]...)
	next[si].Items = srcItems

	target := s.collections[ti]
	dstItems := make([]Item, 0, len(target.Items)+1)
	dstItems = append(dstItems, target.Items...)
	dstItems = append(dstItems, moved)
	next[ti].Items = dstItems

	s.collections = next

	logging.LogTransition("move", s.mode.String(),
		zap.String("item", itemID),
		zap.Int("source", sourceID),
		zap.Int("target", targetID),
	)
	return true
}

// Cancel discards every edit since the last load or commit.
func (s *State) Cancel() {
	s.collections = CloneCollections(s.snapshot)
	s.mode = Browsing
	s.roles = nil
	s.pendingMessage = ""

	logging.LogTransition("cancel", s.mode.String())
}

// Commit keeps the middle collection if it has items and returns to browsing.
func (s *State) Commit() {
	if s.mode != Composing {
		return
	}

	for _, c := range s.collections {
		if s.roles[c.ID] != RoleMiddle {
			continue
		}
		if len(c.Items) > 0 {
			kept := c.Clone()
			kept.IsSelected = false
			s.snapshot = append(CloneCollections(s.snapshot), kept)
		}
		break
	}

	s.collections = CloneCollections(s.snapshot)
	s.mode = Browsing
	s.roles = nil
	s.pendingMessage = ""

	logging.LogTransition("commit", s.mode.String(), zap.Int("collections", len(s.collections)))
}

// Collections returns a copy of the working collections.
func (s *State) Collections() []Collection {
	return CloneCollections(s.collections)
}

// Snapshot returns a copy of the last committed collections.
func (s *State) Snapshot() []Collection {
	return CloneCollections(s.snapshot)
}

// Mode returns the current mode.
func (s *State) Mode() Mode {
	return s.mode
}

// PendingMessage returns the inline validation message, if any.
func (s *State) PendingMessage() string {
	return s.pendingMessage
}

// LoadError returns the cause of the last failed load, or nil.
func (s *State) LoadError() error {
	return s.loadErr
}

// Loaded reports whether a load has ever succeeded.
func (s *State) Loaded() bool {
	return s.loaded
}

// Role returns the compose role of collection id, or RoleNone.
func (s *State) Role(id int) Role {
	if s.mode != Composing {
		return RoleNone
	}
	return s.roles[id]
}

// Neighbor returns the id of the collection next to id in direction dir.
func (s *State) Neighbor(id int, dir Direction) (int, bool) {
	role := s.Role(id)
	if role == RoleNone {
		return 0, false
	}
	want := Role(int(role) + int(dir))
	for cid, r := range s.roles {
		if r == want {
			return cid, true
		}
	}
	return 0, false
}

// SelectedCount returns how many collections are selected.
func (s *State) SelectedCount() int {
	n := 0
	for _, c := range s.collections {
		if c.IsSelected {
			n++
		}
	}
	return n
}

// ItemCount returns the number of items across the working collections.
func (s *State) ItemCount() int {
	n := 0
	for _, c := range s.collections {
		n += len(c.Items)
	}
	return n
}

func (s *State) indexOf(id int) int {
	for i, c := range s.collections {
		if c.ID == id {
			return i
		}
	}
	return -1
}
