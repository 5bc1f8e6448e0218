// Package observability defines the tracing, metrics and logging interfaces
// used by the answerkit normalizer, together with the attribute keys, span
// names and metric names it records under.
//
// [Provider] composes [Tracer], [Metrics] and [Logger] into a single
// injectable dependency. [Nop] returns a Provider that discards everything
// and is the default when no observer is configured. An active Provider and
// [Span] travel through a [context.Context] with [ContextWithObserver] and
// [ContextWithSpan].
package observability
