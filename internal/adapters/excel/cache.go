package excel

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/phenrril/logihub/internal/domain"
)

// Cache memoizes Normalize results per file. An entry is only valid while the
// file's mtime is unchanged; serving stale rows after the crawler rewrites
// the export would corrupt the snapshot view.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	modTime time.Time
	sheets  *NormalizedSheets
}

func NewCache() *Cache {
	return &Cache{entries: map[string]cacheEntry{}}
}

func (c *Cache) Normalize(path string) (*NormalizedSheets, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrFileNotFound
		}
		return nil, err
	}

	c.mu.Lock()
	if e, ok := c.entries[abs]; ok && e.modTime.Equal(info.ModTime()) {
		c.mu.Unlock()
		return e.sheets, nil
	}
	c.mu.Unlock()

	sheets, err := Normalize(abs)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[abs] = cacheEntry{modTime: info.ModTime(), sheets: sheets}
	c.mu.Unlock()
	return sheets, nil
}

// Invalidate drops every cached workbook.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = map[string]cacheEntry{}
	c.mu.Unlock()
}
