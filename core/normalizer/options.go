package normalizer

import (
	"slices"

	"github.com/leofalp/answerkit/core/answercache"
	"github.com/leofalp/answerkit/core/blocks"
	"github.com/leofalp/answerkit/providers/observability"
)

// BlockCache stores segmented answers keyed by [answercache.Key] of the raw
// answer.
type BlockCache = answercache.Cache[[]blocks.Block]

// NewBlockCache returns a BlockCache that copies block slices in and out.
func NewBlockCache() *BlockCache {
	return answercache.New[[]blocks.Block](answercache.WithClone(slices.Clone[[]blocks.Block]))
}

// Options holds the Normalizer configuration.
type Options struct {
	// Observer receives spans, metrics and logs. When nil, the observer in the
	// call context is used, if any.
	Observer observability.Provider
	// Languages are the fence tags Strip accepts. Empty means fence.DefaultLanguage.
	Languages []string
	// Repair enables lenient JSON decoding in Extract.
	Repair bool
	// HTMLAnswers converts answers that look like HTML to Markdown before
	// segmenting them.
	HTMLAnswers bool
	// Cache, when set, memoises Segment results.
	Cache *BlockCache
}

// Option is a functional option for [New].
type Option func(*Options)

// WithObserver sets the observability provider.
func WithObserver(observer observability.Provider) Option {
	return func(o *Options) {
		o.Observer = observer
	}
}

// WithLanguages sets the fence tags Strip accepts.
func WithLanguages(languages ...string) Option {
	return func(o *Options) {
		o.Languages = append([]string{}, languages...)
	}
}

// WithRepair enables lenient JSON decoding in Extract.
func WithRepair() Option {
	return func(o *Options) {
		o.Repair = true
	}
}

// WithHTMLAnswers enables HTML to Markdown conversion before segmentation.
func WithHTMLAnswers() Option {
	return func(o *Options) {
		o.HTMLAnswers = true
	}
}

// WithCache memoises Segment results in cache.
func WithCache(cache *BlockCache) Option {
	return func(o *Options) {
		o.Cache = cache
	}
}
