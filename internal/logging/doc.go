// Package logging assembles the structured slog loggers used by fontsources.
//
// It owns the console and JSON handlers, level and output plumbing, a no-op
// logger for tests, and helpers that keep warning records shaped the same way
// (event_type, error_hint, impact) across the pipeline and CLI.
package logging
