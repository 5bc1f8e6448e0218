// Package slogobs implements [observability.Provider] on top of log/slog.
//
// Spans become debug records at start and end, counters and histograms keep
// running totals in memory and log every measurement, and log calls go
// straight to a slog.Logger. The default handler writes either a compact
// single-line format or JSON; level and format come from ANSWERKIT_LOG_LEVEL
// and ANSWERKIT_LOG_FORMAT (falling back to LOG_LEVEL and LOG_FORMAT) unless
// set with [WithLevel] and [WithFormat].
package slogobs
