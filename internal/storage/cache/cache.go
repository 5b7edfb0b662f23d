package cache

import (
	"strings"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache keeps recent translations in memory. The vocabulary is fixed, so quiz
// generation mostly hits the cache once warm. The LRU is safe for concurrent use.
type Cache struct {
	translations *expirable.LRU[string, models.Translation]
}

func NewCache(size int, ttl time.Duration) *Cache {
	return &Cache{
		translations: expirable.NewLRU[string, models.Translation](size, nil, ttl),
	}
}

func TranslationKey(text, source, target string) string {
	return strings.ToLower(source) + "|" + strings.ToLower(target) + "|" + text
}

func (c *Cache) SetTranslation(key string, trans models.Translation) {
	c.translations.Add(key, trans)
}

func (c *Cache) GetTranslation(key string) (models.Translation, bool) {
	return c.translations.Get(key)
}
