package palette

import (
	log "github.com/sirupsen/logrus"

	"github.com/submersibletoaster/pixelsheet/pixel"
)

// Outcome - how Resolve handled a color.
type Outcome int

const (
	// Hit - the color already had an entry.
	Hit Outcome = iota
	// Inserted - a new entry was admitted.
	Inserted
	// Merged - the cache was full; the nearest admitted color was
	// substituted instead.
	Merged
)

type entry struct {
	key   string
	color pixel.RGB
}

// Cache hands out one reusable fill color per quantized color, bounded
// by the target format's style ceiling. Entries are kept in insertion
// order; once the ceiling is reached no new color is admitted and each
// newcomer maps onto the nearest admitted color. Resolve never fails,
// it only loses fidelity once saturated.
//
// A Cache lives for a single conversion and must only be mutated from
// one goroutine: the merge decision depends on a consistent view of
// everything admitted so far.
type Cache struct {
	limit   int
	dist    DistanceFunc
	index   map[string]int
	entries []entry

	hits   int
	misses int
	merges int
}

// NewCache - cache bounded to limit entries, comparing colors with
// dist once saturated. A nil dist means RGBSquared.
func NewCache(limit int, dist DistanceFunc) *Cache {
	if limit < 1 {
		limit = 1
	}
	if dist == nil {
		dist = RGBSquared
	}
	return &Cache{
		limit: limit,
		dist:  dist,
		index: make(map[string]int),
	}
}

// Resolve returns the admitted color that cells of color c should be
// filled with, and how that answer was produced.
func (s *Cache) Resolve(c pixel.RGB) (pixel.RGB, Outcome) {
	key := c.Hex()
	if i, ok := s.index[key]; ok {
		s.hits++
		return s.entries[i].color, Hit
	}
	if len(s.entries) < s.limit {
		s.index[key] = len(s.entries)
		s.entries = append(s.entries, entry{key: key, color: c})
		s.misses++
		return c, Inserted
	}

	// Saturated. Scan in insertion order; strict less-than keeps the
	// earliest admitted color on ties, so output is reproducible.
	best := 0
	bestDist := s.dist(s.entries[0].color, c)
	for i := 1; i < len(s.entries); i++ {
		if d := s.dist(s.entries[i].color, c); d < bestDist {
			best, bestDist = i, d
		}
	}
	s.merges++
	log.Debugf("merge %s -> %s (d=%.1f)", key, s.entries[best].key, bestDist)
	return s.entries[best].color, Merged
}

// Len - number of admitted colors, never above the limit.
func (s *Cache) Len() int {
	return len(s.entries)
}

// Full reports whether the ceiling has been reached.
func (s *Cache) Full() bool {
	return len(s.entries) >= s.limit
}

// Hits - resolves answered by an existing entry.
func (s *Cache) Hits() int { return s.hits }

// Misses - resolves that admitted a new entry.
func (s *Cache) Misses() int { return s.misses }

// Merges - resolves answered by nearest-color substitution.
func (s *Cache) Merges() int { return s.merges }
