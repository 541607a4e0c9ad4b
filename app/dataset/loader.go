package dataset

import (
	"log/slog"

	"github.com/Pranav-2024-Mishra/Social-Media-Post-Engagement-Dashboard/app/parser"
)

// Loader runs the normalize and coerce stages over a parsed upload and
// memoizes the result by content hash. Loading is deterministic, so a cache
// hit is exactly the dataset a fresh run would produce.
type Loader struct {
	normalizer *Normalizer
	coercer    *Coercer
	cache      *Cache
}

func NewLoader(schemaConfig *SchemaConfig, cache *Cache) *Loader {
	return &Loader{
		normalizer: NewNormalizer(schemaConfig),
		coercer:    NewCoercer(),
		cache:      cache,
	}
}

// Run loads a parsed upload into a canonical dataset. A fatal diagnostic
// yields an empty dataset; warnings accompany a usable one. Run never
// returns an error: every structural problem travels as a diagnostic.
func (l *Loader) Run(contentHash string, table *parser.RawTable) (*Dataset, []Diagnostic) {
	if entry, ok := l.cache.Get(contentHash); ok {
		slog.Debug("Dataset served from cache", "content_hash", contentHash[:12])
		return entry.Dataset, entry.Diagnostics
	}

	normalized, diagnostics := l.normalizer.Run(table)

	var ds *Dataset
	if HasFatal(diagnostics) {
		ds = &Dataset{ContentHash: contentHash}
	} else {
		ds = l.coercer.Run(normalized)
		ds.ContentHash = contentHash
	}

	l.cache.Put(contentHash, &Entry{Dataset: ds, Diagnostics: diagnostics})

	slog.Debug("Dataset loaded",
		"content_hash", contentHash[:12],
		"posts", len(ds.Posts),
		"rows_dropped", ds.RowsDropped,
		"diagnostics", len(diagnostics))

	return ds, diagnostics
}
