// Package config provides user configuration management for listcraft.
//
// Settings live in a small YAML file: the list API endpoint, the fetch
// timeout, logging preferences and display preferences. Nothing in it is
// required; a missing file or missing field falls back to defaults, and
// command-line flags override whatever the file says.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/listcraft/config.yaml or $HOME/.config/listcraft/config.yaml
//   - macOS: $HOME/.config/listcraft/config.yaml
//   - Windows: %LOCALAPPDATA%\listcraft\config.yaml
//
// # File Format
//
//	version: 1
//	endpoint: https://apis.ccbp.in/list-creation/lists
//	timeout_seconds: 15
//	log:
//	    level: debug
//	    file: /tmp/listcraft.log
//	ui:
//	    show_scientific_names: true
//
// # Usage Example
//
//	settings, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	client := listapi.NewClient(settings.Endpoint)
//	client.Timeout = settings.Timeout()
//
// Writes are atomic (temporary file plus rename).
package config
