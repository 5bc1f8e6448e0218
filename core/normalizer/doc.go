// Package normalizer is the entry point applications use to turn a model
// answer into data. A [Normalizer] wraps the fence, blocks and envelope
// parsers with tracing, metrics and logging, and optionally with HTML
// conversion and a segmentation cache. It adds no parsing rules of its own:
// every method returns exactly what the underlying parser returns for the
// same input.
//
//	n := normalizer.New(
//	    normalizer.WithObserver(slogobs.New()),
//	    normalizer.WithCache(normalizer.NewBlockCache()),
//	)
//	resp := n.Respond(ctx, query, answer, "Main.java")
//	snippets, err := n.Extract(ctx, &answer, envelope.FieldSnippet)
package normalizer
