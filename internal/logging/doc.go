// Package logging provides structured logging for listcraft.
//
// This package wraps a global zap logger with convenience functions for the
// few logging patterns the application needs: fetch outcomes and view-state
// transitions.
//
// # Silent By Default
//
// The interactive UI draws on stdout, so any stray log line would corrupt the
// screen. Unless a level is configured the logger is a no-op.
//
// # Configuration
//
// Levels come from, in order: the settings file (log.level), then
// LISTCRAFT_LOG_LEVEL. The destination is log.file or LISTCRAFT_LOG_FILE; the
// file is rotated by lumberjack. Without a file, output goes to stderr, which
// is only sensible for non-interactive commands such as `listcraft show`.
//
//	if err := logging.Initialize(logging.Options{Level: "debug", File: "/tmp/listcraft.log"}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
//	logging.Info("Compose started",
//	    zap.Int("left", 1),
//	    zap.Int("right", 2),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. Initialize and SetLogger
// are meant to be called once at startup (or from tests) before any logging.
package logging
