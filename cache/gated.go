package cache

// Gate reports whether caching is currently enabled. Backends pass
// typf.CacheEnabled in here; the cache package itself never imports the
// root package (it would be an import cycle), so the gate is injected as a
// function rather than called directly.
type Gate func() bool

// GatedCache wraps a ShardedCache so every Get and Set consults a cache-enable
// gate first, per spec §4.8: "backends must consult this gate on every
// cache lookup and every cache insert; when disabled, they behave as if
// their caches are empty." The gate itself holds no data — GatedCache
// still owns and can pre-populate the underlying ShardedCache, it just
// refuses to use it while disabled.
type GatedCache[K comparable, V any] struct {
	inner *ShardedCache[K, V]
	gate  Gate
}

// NewGated wraps an existing ShardedCache with a gate function.
func NewGated[K comparable, V any](inner *ShardedCache[K, V], gate Gate) *GatedCache[K, V] {
	return &GatedCache[K, V]{inner: inner, gate: gate}
}

// Get behaves like ShardedCache.Get, but always misses while the gate
// reports disabled.
func (g *GatedCache[K, V]) Get(key K) (V, bool) {
	if !g.gate() {
		var zero V
		return zero, false
	}
	return g.inner.Get(key)
}

// Set behaves like ShardedCache.Set, but is a no-op while the gate reports
// disabled.
func (g *GatedCache[K, V]) Set(key K, value V) {
	if !g.gate() {
		return
	}
	g.inner.Set(key, value)
}

// GetOrCreate behaves like ShardedCache.GetOrCreate when the gate is
// enabled; when disabled it calls create directly without touching the
// underlying cache at all, so a disabled gate also avoids growing it.
func (g *GatedCache[K, V]) GetOrCreate(key K, create func() V) V {
	if !g.gate() {
		return create()
	}
	return g.inner.GetOrCreate(key, create)
}

// Clear drops every entry regardless of gate state.
func (g *GatedCache[K, V]) Clear() {
	g.inner.Clear()
}

// Stats reports the underlying cache's statistics regardless of gate state.
func (g *GatedCache[K, V]) Stats() Stats {
	return g.inner.Stats()
}
