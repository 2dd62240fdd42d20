package odata

import (
	"context"
	"log/slog"
	"strconv"
	"sync/atomic"

	"github.com/tidwall/tinylru"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/odatauri/grammar"
)

// CacheSize is the number of parse results retained by the cache.
const CacheSize = 512

// entry is a cached parse outcome. Exactly one of doc and err is set.
type entry struct {
	source string
	doc    *Document
	err    error
}

// parseCache maps (rule, input hash) keys to entries.
var parseCache atomic.Pointer[tinylru.LRU]

func init() { ClearCache() }

// cacheKey hashes input and combines it with the rule name.
func cacheKey(rule, input string) (string, uint64) {
	sum := xxh3.HashString(input)

	return rule + ":" + strconv.FormatUint(sum, 36), sum
}

// runCached parses input, reusing the result of an earlier parse of the
// same input with the same rule.
func runCached(
	ctx context.Context,
	cfg config,
	rule string,
	p grammar.Rule,
	input string,
) (*Document, error) {
	lru := parseCache.Load()
	key, sum := cacheKey(rule, input)

	v, hit := lru.Get(key)

	cfg.logger.TraceContext(
		ctx,
		"cache lookup",
		slog.String("rule", rule),
		slog.String("source_hash", strconv.FormatUint(sum, 16)),
		slog.Bool("cache_hit", hit),
	)

	e, ok := v.(entry)
	if !hit || !ok || e.source != input {
		doc, err := run(ctx, cfg, rule, p, input)
		e = entry{source: input, doc: doc, err: err}

		lru.Set(key, e)
	}

	if e.err != nil {
		return nil, e.err
	}

	doc := *e.doc

	return &doc, nil
}

// ClearCache removes all cached parse results.
// This is primarily useful for testing or when memory needs to be reclaimed.
func ClearCache() {
	lru := new(tinylru.LRU)
	lru.Resize(CacheSize)
	parseCache.Store(lru)
}

// CacheLen returns the number of cached parse results.
func CacheLen() int { return parseCache.Load().Len() }
