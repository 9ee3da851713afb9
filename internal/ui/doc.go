// Package ui provides run-once terminal output for listcraft commands.
//
// Unlike the interactive program in package tui, these components render
// their output once and return. `listcraft show` uses them to print the
// fetched collections without taking over the screen.
//
// # Components
//
//   - Header: command banner showing the operation and its parameters
//   - Collection boxes and lines: one per collection, in detailed or compact form
//   - Result: success, warning, or failure boxes with troubleshooting tips
//
// All of them are written through a Printer:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Lists", "listcraft show", ui.Param{Key: "Endpoint", Value: endpoint})
//	if err := p.PrintCollections(collections, ui.FormatDetailed, false); err != nil {
//	    return err
//	}
//
// # Width
//
// Box width follows the terminal (via golang.org/x/term), clamped to
// MinTerminalWidth..MaxContentWidth. When stdout is not a terminal the
// minimum width is used.
package ui
