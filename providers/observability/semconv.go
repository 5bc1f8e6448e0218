package observability

// Attribute keys, span names, event names and metric names recorded by the
// normalizer and the answer cache.

// --- Answer Attributes ---

const (
	// AttrAnswerLength is the byte length of the raw answer
	AttrAnswerLength = "answer.length"

	// AttrAnswerPreview is a truncated single-line excerpt of the answer
	AttrAnswerPreview = "answer.preview"

	// AttrAnswerPresent is false when an optional answer was nil
	AttrAnswerPresent = "answer.present"

	// AttrAnswerHTML marks answers converted from HTML before parsing
	AttrAnswerHTML = "answer.html"

	// AttrStripChanged reports whether stripping removed a wrapper
	AttrStripChanged = "strip.changed"

	// AttrStripLanguages lists the fence tags recognised when stripping
	AttrStripLanguages = "strip.languages"
)

// --- Segmentation Attributes ---

const (
	// AttrBlocksCount is the total number of segmented blocks
	AttrBlocksCount = "blocks.count"

	// AttrBlocksFenced is the number of fenced blocks
	AttrBlocksFenced = "blocks.fenced"

	// AttrResponseQuery is the query a response answers
	AttrResponseQuery = "response.query"

	// AttrResponseFiles is the number of files attached to a response
	AttrResponseFiles = "response.files"
)

// --- Envelope Attributes ---

const (
	// AttrEnvelopeField is the element field read as snippet payload
	AttrEnvelopeField = "envelope.field"

	// AttrEnvelopeRepair reports whether lenient JSON repair was enabled
	AttrEnvelopeRepair = "envelope.repair"

	// AttrSnippetsCount is the number of extracted snippets
	AttrSnippetsCount = "snippets.count"

	// AttrDecodeIndex is the element index of a decode failure, -1 for the payload
	AttrDecodeIndex = "decode.index"
)

// --- Cache Attributes ---

const (
	// AttrCacheKey is the answer cache key
	AttrCacheKey = "cache.key"

	// AttrCacheHit reports whether a lookup was served from the cache
	AttrCacheHit = "cache.hit"

	// AttrCacheSize is the number of entries after the operation
	AttrCacheSize = "cache.size"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrErrorType is the error type/class
	AttrErrorType = "error.type"

	// AttrDuration is the operation duration
	AttrDuration = "duration"

	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrOperation names the normalizer operation a metric belongs to
	AttrOperation = "operation"
)

// --- Span Names ---

const (
	SpanStrip           = "answer.strip"
	SpanStripDocComment = "answer.strip_doc_comment"
	SpanSegment         = "answer.segment"
	SpanRespond         = "answer.respond"
	SpanExtract         = "answer.extract"
)

// --- Event Names ---

const (
	// EventHTMLConverted marks an HTML answer converted to Markdown
	EventHTMLConverted = "answer.html.converted"

	// EventCacheHit marks a segmentation served from the cache
	EventCacheHit = "cache.hit"

	// EventCachePut marks an entry stored in the cache
	EventCachePut = "cache.put"

	// EventCacheInvalidate marks an entry removed from the cache
	EventCacheInvalidate = "cache.invalidate"

	// EventCacheClear marks the cache being emptied
	EventCacheClear = "cache.clear"
)

// --- Metric Names ---

const (
	// MetricOperationCount counts normalizer calls by operation and status
	MetricOperationCount = "answerkit.operation.count"

	// MetricOperationDuration is the histogram for call duration in milliseconds
	MetricOperationDuration = "answerkit.operation.duration"

	// MetricBlocksTotal counts segmented blocks
	MetricBlocksTotal = "answerkit.blocks.total"

	// MetricSnippetsTotal counts extracted snippets
	MetricSnippetsTotal = "answerkit.snippets.total"

	// MetricDecodeErrors counts malformed envelopes
	MetricDecodeErrors = "answerkit.decode.errors"

	// MetricCacheHits counts segmentations served from the cache
	MetricCacheHits = "answerkit.cache.hits"
)
