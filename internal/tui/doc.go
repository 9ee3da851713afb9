// Package tui implements the interactive terminal interface for listcraft.
//
// Built on Bubble Tea, the program walks through four screens:
//
//  1. Loading: a spinner while the lists are fetched (the fetch runs as a
//     tea.Cmd, its result comes back as a message).
//  2. Error: the fetch failed; "Try Again" re-runs it.
//  3. Browse: a grid of collection cards. Space selects, c creates a new list
//     from exactly two selections.
//  4. Compose: three columns, the two selected collections around a new empty
//     one. Arrow keys move the highlighted item to the neighbouring column,
//     esc cancels, u keeps the new list.
//
// Every state change goes through a lists.State owned by the model and only
// touched from Update. The render helpers in components.go are pure functions
// of their props.
//
// # Usage Example
//
//	client := listapi.NewClient("")
//	app := tui.NewAppModel(ctx, client, tui.Options{ShowScientificNames: true})
//	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
//	    return err
//	}
package tui
