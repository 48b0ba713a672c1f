// Package logging wraps log/slog behind a process-global logger with a
// small configuration surface: level, text or JSON format, and stdout or
// file output. Components log through the package-level Debug/Info/Warn/
// Error helpers; GetLogger lazily falls back to a text INFO logger on
// stdout when Init was never called.
package logging
