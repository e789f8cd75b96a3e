// Package logging constructs the slog loggers used across dvd2mp4.
//
// Two output formats are supported: a human-oriented console handler used in
// interactive runs, and line-delimited JSON for machine consumption. Verbose
// mode lowers the level to debug; subprocess command echoes are emitted at
// that level.
package logging
