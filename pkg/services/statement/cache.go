package statement

import (
	"context"
	"time"

	"github.com/de-tools/treasury-atlas/pkg/cache"
	"github.com/de-tools/treasury-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Source supplies the raw text of one statement. Document acquisition
// (file handling, OCR) is the caller's responsibility; the core only sees
// the resulting lines.
type Source interface {
	Lines(ctx context.Context, period domain.Period) ([]string, error)
}

// Provider resolves a period to a built Statement. Cache implements it; the
// comparison service depends on the interface so callers can substitute
// their own statement supply.
type Provider interface {
	Get(ctx context.Context, period domain.Period) (domain.Statement, []domain.Diagnostic, error)
}

type cached struct {
	stmt  domain.Statement
	diags []domain.Diagnostic
}

// Cache is a read-through period cache over a Builder. Concurrent requests
// for a not-yet-cached period are deduplicated: the statement is built at
// most once per period key while a build is in flight.
type Cache struct {
	source  Source
	builder *Builder
	lru     *cache.LRU[cached]
	group   singleflight.Group
}

func NewCache(source Source, builder *Builder, maxSize int, ttl time.Duration) *Cache {
	return &Cache{
		source:  source,
		builder: builder,
		lru:     cache.NewLRU[cached](maxSize, ttl),
	}
}

func (c *Cache) Get(ctx context.Context, period domain.Period) (domain.Statement, []domain.Diagnostic, error) {
	key := period.Key()
	if hit, ok := c.lru.Get(key); ok {
		return hit.stmt, hit.diags, nil
	}

	v, err, shared := c.group.Do(key, func() (interface{}, error) {
		if hit, ok := c.lru.Get(key); ok {
			return hit, nil
		}
		lines, err := c.source.Lines(ctx, period)
		if err != nil {
			return nil, err
		}
		stmt, diags, err := c.builder.BuildFromLines(ctx, period, lines)
		if err != nil {
			return nil, err
		}
		entry := cached{stmt: stmt, diags: diags}
		c.lru.Set(key, entry)
		return entry, nil
	})
	if err != nil {
		return domain.Statement{}, nil, err
	}
	if shared {
		zerolog.Ctx(ctx).Debug().Str("period", key).Msg("statement build shared with concurrent request")
	}
	entry := v.(cached)
	return entry.stmt, entry.diags, nil
}
