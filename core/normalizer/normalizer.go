package normalizer

import (
	"context"
	"errors"

	"github.com/leofalp/answerkit/core/answercache"
	"github.com/leofalp/answerkit/core/blocks"
	"github.com/leofalp/answerkit/core/envelope"
	"github.com/leofalp/answerkit/core/fence"
	"github.com/leofalp/answerkit/core/markup"
	"github.com/leofalp/answerkit/internal/utils"
	"github.com/leofalp/answerkit/providers/observability"
)

// Normalizer turns raw answers into blocks, responses and snippets. It is
// safe for concurrent use.
type Normalizer struct {
	opts Options
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(&n.opts)
	}
	return n
}

// Options returns a copy of the configuration.
func (n *Normalizer) Options() Options {
	o := n.opts
	o.Languages = append([]string(nil), n.opts.Languages...)
	return o
}

// Strip unwraps a fenced answer, see [fence.Strip].
func (n *Normalizer) Strip(ctx context.Context, raw string) string {
	return n.strip(ctx, observability.SpanStrip, raw, false)
}

// StripDocComment unwraps a fenced answer and then a surrounding
// documentation comment, see [fence.StripDocComment].
func (n *Normalizer) StripDocComment(ctx context.Context, raw string) string {
	return n.strip(ctx, observability.SpanStripDocComment, raw, true)
}

func (n *Normalizer) strip(ctx context.Context, spanName, raw string, docComment bool) string {
	c := n.begin(ctx, spanName, raw)

	opts := n.fenceOptions()
	if docComment {
		opts = append(opts, fence.WithDocComment())
	}
	result := fence.Strip(raw, opts...)

	c.finish(nil,
		observability.Bool(observability.AttrStripChanged, result != raw),
	)
	return result
}

// Segment splits raw into text and fenced blocks, see [blocks.Segment].
// With a cache configured, repeated answers are served from it.
func (n *Normalizer) Segment(ctx context.Context, raw string) []blocks.Block {
	c := n.begin(ctx, observability.SpanSegment, raw)
	segmented := n.segment(c.ctx, raw)

	fenced := 0
	for _, b := range segmented {
		if b.IsFenced() {
			fenced++
		}
	}
	c.observer.Counter(observability.MetricBlocksTotal).Add(c.ctx, int64(len(segmented)))
	c.finish(nil,
		observability.Int(observability.AttrBlocksCount, len(segmented)),
		observability.Int(observability.AttrBlocksFenced, fenced),
	)
	return segmented
}

// Respond segments raw into a [blocks.Response] for query.
func (n *Normalizer) Respond(ctx context.Context, query, raw string, files ...string) *blocks.Response {
	c := n.begin(ctx, observability.SpanRespond, raw,
		observability.String(observability.AttrResponseQuery, utils.Preview(query)),
		observability.Int(observability.AttrResponseFiles, len(files)),
	)

	response := blocks.NewResponse(query, "", files...)
	response.SetBlocks(n.segment(c.ctx, raw))

	c.finish(nil,
		observability.Int(observability.AttrBlocksCount, len(response.Blocks())),
	)
	return response
}

// Extract decodes the snippets held by raw, see [envelope.ExtractOptional].
// A nil raw yields an empty slice.
func (n *Normalizer) Extract(ctx context.Context, raw *string, field envelope.Field) ([]envelope.Snippet, error) {
	attrs := []observability.Attribute{
		observability.String(observability.AttrEnvelopeField, field.Name()),
		observability.Bool(observability.AttrEnvelopeRepair, n.opts.Repair),
		observability.Bool(observability.AttrAnswerPresent, raw != nil),
	}
	c := n.begin(ctx, observability.SpanExtract, utils.Deref(raw, ""), attrs...)

	var opts []envelope.Option
	if n.opts.Repair {
		opts = append(opts, envelope.WithRepair())
	}
	snippets, err := envelope.ExtractOptional(raw, field, opts...)
	if err != nil {
		var decodeErr *envelope.DecodeError
		if errors.As(err, &decodeErr) {
			c.observer.Counter(observability.MetricDecodeErrors).Add(c.ctx, 1,
				observability.String(observability.AttrEnvelopeField, field.Name()),
			)
			c.span.SetAttributes(observability.Int(observability.AttrDecodeIndex, decodeErr.Index))
		}
		c.finish(err)
		return nil, err
	}

	c.observer.Counter(observability.MetricSnippetsTotal).Add(c.ctx, int64(len(snippets)),
		observability.String(observability.AttrEnvelopeField, field.Name()),
	)
	c.finish(nil, observability.Int(observability.AttrSnippetsCount, len(snippets)))
	return snippets, nil
}

// segment applies HTML conversion and the cache around blocks.Segment.
func (n *Normalizer) segment(ctx context.Context, raw string) []blocks.Block {
	observer := n.observer(ctx)

	var key string
	if n.opts.Cache != nil {
		key = answercache.Key(raw)
		if cached, ok := n.opts.Cache.Get(ctx, key); ok {
			observability.AddSpanEvent(ctx, observability.EventCacheHit,
				observability.String(observability.AttrCacheKey, key),
			)
			observer.Counter(observability.MetricCacheHits).Add(ctx, 1)
			return cached
		}
	}

	source := raw
	if n.opts.HTMLAnswers && markup.LooksLikeHTML(raw) {
		converted, err := markup.ToMarkdown(raw)
		if err != nil {
			observer.Warn(ctx, "html answer conversion failed, segmenting raw input",
				observability.Error(err),
			)
		} else {
			source = converted
			observability.AddSpanEvent(ctx, observability.EventHTMLConverted,
				observability.Int(observability.AttrAnswerLength, len(converted)),
			)
		}
	}

	segmented := blocks.Segment(source)
	if n.opts.Cache != nil {
		n.opts.Cache.Put(ctx, key, segmented)
	}
	return segmented
}

func (n *Normalizer) fenceOptions() []fence.Option {
	if len(n.opts.Languages) == 0 {
		return nil
	}
	return []fence.Option{fence.WithLanguages(n.opts.Languages...)}
}

func (n *Normalizer) observer(ctx context.Context) observability.Provider {
	if n.opts.Observer != nil {
		return n.opts.Observer
	}
	if observer := observability.ObserverFromContext(ctx); observer != nil {
		return observer
	}
	return observability.Nop()
}
