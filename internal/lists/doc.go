// Package lists holds the collection model and the view-state controller.
//
// State moves between two modes. In Browsing the user selects collections;
// BeginCompose with exactly two selected switches to Composing, where the
// pair flanks a new empty collection and items move one step at a time
// between neighbours. Cancel restores the last snapshot; Commit adds the new
// collection to the snapshot when it is non-empty.
//
// The snapshot only changes on a successful load or a commit.
package lists
