// Package urls provides centralized constants for the remote endpoints and
// project links used throughout the application.
//
// Keeping them here means the default list endpoint can be changed in one place
// before release. The endpoint actually used at runtime may still be overridden
// by the settings file or the --endpoint flag.
//
// Usage:
//
//	import "github.com/listcraft/listcraft/internal/urls"
//
//	client := listapi.NewClient(urls.DefaultListsEndpoint)
package urls
