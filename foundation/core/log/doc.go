// Package log provides structured logging for the stringy library and CLI.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with text and JSON output. The library
//              logs backend initialization and encoding fallbacks at debug and warn
//              level; the CLI configures level and format from its config file.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-15 v0.2.0: Removed async mode and request metadata, added Discard
//
// Usage:
//   import mdwlog "github.com/msto63/stringy/foundation/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithFormat(mdwlog.FormatText).
//     WithName("utf8x")
//
//   logger.Debug("backend initialized", mdwlog.Int("encodings", 42))
//
//   timer := logger.StartTimer("chain")
//   // ... apply operations
//   timer.Stop()
package log
