package vocab

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	t.Parallel()

	pool := Words()
	require.Len(t, Categories, 10)
	for _, c := range Categories {
		assert.GreaterOrEqual(t, len(c.Words), 8, c.Name)
		assert.LessOrEqual(t, len(c.Words), 15, c.Name)
	}

	assert.Len(t, pool, 101)
	assert.Equal(t, len(pool), len(lo.Uniq(pool)))
	assert.Equal(t, "Hello", pool[0])
	assert.Contains(t, pool, "Fish")

	pool[0] = "changed"
	assert.Equal(t, "Hello", Words()[0])
}

func TestLanguageName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want string
	}{
		{"es", "Spanish"},
		{"zh-cn", "Chinese"},
		{"FR", "French"},
		{"sv", "SV"},
		{"zh-tw", "ZH-TW"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, LanguageName(tt.code))
		})
	}
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	langs := Languages()
	require.Len(t, langs, 15)
	assert.Equal(t, Language{Code: "ar", Name: "Arabic"}, langs[0])
	for i := 1; i < len(langs); i++ {
		assert.Less(t, langs[i-1].Name, langs[i].Name)
	}
}
