// Package refdata loads optional reference datasets (valid postal code
// lists, and similar lookup tables) that sharpen a verifier beyond what a
// pure heuristic can do. A dataset is looked up by filename under a single
// configured directory; a missing or malformed file degrades silently to
// an empty set rather than failing the caller, so verifiers that consult
// refdata always have a heuristic fallback of their own.
package refdata

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/svenplb/aegis-core/internal/applog"
)

// Cache is a write-once-per-key set cache over CSV-ish reference files.
// The first column of every non-header line is the indexed value; a
// single in-flight load per filename is guaranteed across goroutines.
type Cache struct {
	dir   string
	group singleflight.Group

	mu   sync.RWMutex
	sets map[string]map[string]struct{}
}

// NewCache returns a Cache rooted at dir. An empty dir means every
// Lookup returns an empty set (callers fall back to heuristics).
func NewCache(dir string) *Cache {
	return &Cache{dir: dir, sets: make(map[string]map[string]struct{})}
}

var defaultCache = NewCache("")

// SetDefaultDir points the package-level default cache at dir and drops
// any sets it had already loaded.
func SetDefaultDir(dir string) {
	defaultCache = NewCache(dir)
}

// Default returns the package-level cache consulted by verifiers that
// don't have one explicitly threaded through.
func Default() *Cache { return defaultCache }

// Lookup returns the set of values loaded from filename, loading and
// caching it on first access. The returned set is empty (never nil) when
// the file is absent, unreadable, or the cache has no directory
// configured.
func (c *Cache) Lookup(filename string) map[string]struct{} {
	c.mu.RLock()
	if set, ok := c.sets[filename]; ok {
		c.mu.RUnlock()
		return set
	}
	c.mu.RUnlock()

	v, _, _ := c.group.Do(filename, func() (any, error) {
		c.mu.RLock()
		if set, ok := c.sets[filename]; ok {
			c.mu.RUnlock()
			return set, nil
		}
		c.mu.RUnlock()

		set := c.load(filename)

		c.mu.Lock()
		c.sets[filename] = set
		c.mu.Unlock()

		return set, nil
	})

	return v.(map[string]struct{})
}

// Contains is a convenience wrapper over Lookup for the common
// single-value membership check.
func (c *Cache) Contains(filename, value string) bool {
	set := c.Lookup(filename)
	_, ok := set[value]
	return ok
}

func (c *Cache) load(filename string) map[string]struct{} {
	set := make(map[string]struct{})
	if c.dir == "" {
		return set
	}

	path := filepath.Join(c.dir, filename)
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			applog.Default().Warnf("refdata: open %s: %v", path, err)
		}
		return set
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	first := true
	count := 0
	for sc.Scan() {
		if first {
			first = false
			continue // header line
		}
		val := strings.TrimSpace(sc.Text())
		if val == "" {
			continue
		}
		set[val] = struct{}{}
		count++
	}
	if err := sc.Err(); err != nil {
		applog.Default().Warnf("refdata: read %s: %v", path, err)
		return make(map[string]struct{})
	}

	applog.Default().Debugf("refdata: loaded %d entries from %s", count, filename)
	return set
}
