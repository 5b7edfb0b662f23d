package cache

import (
	"testing"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Translation(t *testing.T) {
	t.Parallel()

	c := NewCache(2, time.Minute)
	key := TranslationKey("Hello", "auto", "ES")
	assert.Equal(t, "auto|es|Hello", key)

	_, ok := c.GetTranslation(key)
	require.False(t, ok)

	c.SetTranslation(key, models.Translation{Text: "Hola"})
	got, ok := c.GetTranslation(key)
	require.True(t, ok)
	assert.Equal(t, "Hola", got.Text)
}

func TestCache_EvictsOldest(t *testing.T) {
	t.Parallel()

	c := NewCache(2, time.Minute)
	c.SetTranslation("a", models.Translation{Text: "1"})
	c.SetTranslation("b", models.Translation{Text: "2"})
	c.SetTranslation("c", models.Translation{Text: "3"})

	_, ok := c.GetTranslation("a")
	assert.False(t, ok)
	for _, key := range []string{"b", "c"} {
		_, ok := c.GetTranslation(key)
		assert.True(t, ok, key)
	}
}

func TestCache_Expires(t *testing.T) {
	t.Parallel()

	c := NewCache(10, 20*time.Millisecond)
	c.SetTranslation("a", models.Translation{Text: "1"})

	assert.Eventually(t, func() bool {
		_, ok := c.GetTranslation("a")
		return !ok
	}, time.Second, 10*time.Millisecond)
}
