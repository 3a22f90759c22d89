package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlug(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		slug, err := NewSlug("about-us")
		require.NoError(t, err)
		assert.Equal(t, "about-us", slug.String())
	})

	t.Run("NormalizesCaseAndWhitespace", func(t *testing.T) {
		slug, err := NewSlug("  Home ")
		require.NoError(t, err)
		assert.Equal(t, "home", slug.String())
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, input := range []string{"", "about us", "-home", "home-", "héllo", strings.Repeat("a", 300)} {
			_, err := NewSlug(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestSlugEquals(t *testing.T) {
	a, err := NewSlug("home")
	require.NoError(t, err)
	b, err := NewSlug("HOME")
	require.NoError(t, err)
	c, err := NewSlug("about")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestSlugIsZero(t *testing.T) {
	assert.True(t, Slug{}.IsZero())

	slug, err := NewSlug("home")
	require.NoError(t, err)
	assert.False(t, slug.IsZero())
}
