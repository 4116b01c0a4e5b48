package weft

import (
	"fmt"
	"strings"
)

// MemoryStats is a read-only snapshot of the world's storage footprint and
// cache behavior.
type MemoryStats struct {
	// EntitiesActive is the number of currently alive entities.
	EntitiesActive int
	// EntitiesAllocated is the cumulative number of handles ever issued.
	EntitiesAllocated uint64
	// EntitiesRecycled is the cumulative number of IDs returned to the free
	// list. It stays counted after an ID is reused.
	EntitiesRecycled uint64
	// FreeEntityIDs is the number of IDs currently available for reuse.
	FreeEntityIDs int
	// ArchetypeCount is the number of archetypes created so far (archetypes
	// are never destroyed).
	ArchetypeCount int
	// ComponentTypeCount is the number of component types registered in the
	// process-global registry.
	ComponentTypeCount int
	// EstimatedComponentBytes sums, over all archetypes, row count times the
	// total component size per row.
	EstimatedComponentBytes uint64
	// QueryCacheHits and QueryCacheMisses count matching-set lookups over
	// the world's lifetime.
	QueryCacheHits   uint64
	QueryCacheMisses uint64
}

// QueryCacheHitRate returns hits / (hits + misses), or 0 before any lookup.
func (s MemoryStats) QueryCacheHitRate() float64 {
	total := s.QueryCacheHits + s.QueryCacheMisses
	if total == 0 {
		return 0
	}
	return float64(s.QueryCacheHits) / float64(total)
}

// MemoryStats captures the current snapshot. It is read-only: taking a
// snapshot never mutates the world.
func (w *World) MemoryStats() MemoryStats {
	active := 0
	var estimated uint64
	for _, a := range w.archetypes {
		rows := a.rows()
		active += rows
		estimated += uint64(rows) * uint64(a.rowBytes())
	}
	return MemoryStats{
		EntitiesActive:          active,
		EntitiesAllocated:       w.entitiesIssued,
		EntitiesRecycled:        w.entitiesRecycled,
		FreeEntityIDs:           len(w.freeIDs),
		ArchetypeCount:          len(w.archetypes),
		ComponentTypeCount:      registeredComponentCount(),
		EstimatedComponentBytes: estimated,
		QueryCacheHits:          w.cacheHits,
		QueryCacheMisses:        w.cacheMisses,
	}
}

// MemoryReport renders the snapshot as a deterministic, human-readable text
// block. The section headers are a stable contract for tooling that parses
// the report.
func (w *World) MemoryReport() string {
	s := w.MemoryStats()
	var b strings.Builder
	fmt.Fprintf(&b, "Entities\n")
	fmt.Fprintf(&b, "  active:    %d\n", s.EntitiesActive)
	fmt.Fprintf(&b, "  allocated: %d\n", s.EntitiesAllocated)
	fmt.Fprintf(&b, "Archetypes\n")
	fmt.Fprintf(&b, "  count: %d\n", s.ArchetypeCount)
	fmt.Fprintf(&b, "Component Types\n")
	fmt.Fprintf(&b, "  registered: %d\n", s.ComponentTypeCount)
	fmt.Fprintf(&b, "Entity Recycling\n")
	fmt.Fprintf(&b, "  recycled ids: %d\n", s.EntitiesRecycled)
	fmt.Fprintf(&b, "  free ids:     %d\n", s.FreeEntityIDs)
	fmt.Fprintf(&b, "Estimated Component Memory\n")
	fmt.Fprintf(&b, "  total: %s\n", formatBytes(s.EstimatedComponentBytes))
	fmt.Fprintf(&b, "Query Cache\n")
	fmt.Fprintf(&b, "  hits:     %d\n", s.QueryCacheHits)
	fmt.Fprintf(&b, "  misses:   %d\n", s.QueryCacheMisses)
	fmt.Fprintf(&b, "  hit rate: %.1f%%\n", s.QueryCacheHitRate()*100)
	return b.String()
}

// formatBytes renders a byte count with an auto-scaled unit.
func formatBytes(n uint64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
		gb = 1 << 30
	)
	switch {
	case n >= gb:
		return fmt.Sprintf("%.2f GB", float64(n)/gb)
	case n >= mb:
		return fmt.Sprintf("%.2f MB", float64(n)/mb)
	case n >= kb:
		return fmt.Sprintf("%.2f KB", float64(n)/kb)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
