package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
)

func TestNewCatalogCopiesInput(t *testing.T) {
	sections := []vo.Section{
		{ID: "hero-title", Type: vo.SectionHeading, Content: "Welcome", Editable: true,
			Metadata: map[string]interface{}{"trackingTag": "hero"}},
	}
	c := NewCatalog(map[string][]vo.Section{"home": sections})

	sections[0].Content = "mutated"
	sections[0].Metadata["trackingTag"] = "mutated"

	got, ok := c.Lookup("home", "hero-title")
	require.True(t, ok)
	assert.Equal(t, "Welcome", got.Content)
	assert.Equal(t, "hero", got.Metadata["trackingTag"])
}

func TestCatalogLookup(t *testing.T) {
	c := NewCatalog(map[string][]vo.Section{
		"home": {{ID: "hero-title", Type: vo.SectionHeading, Content: "Welcome", Editable: true}},
	})

	t.Run("Hit", func(t *testing.T) {
		got, ok := c.Lookup("home", "hero-title")
		require.True(t, ok)
		assert.Equal(t, "Welcome", got.Content)
	})

	t.Run("UnknownSection", func(t *testing.T) {
		_, ok := c.Lookup("home", "missing")
		assert.False(t, ok)
	})

	t.Run("UnknownSlug", func(t *testing.T) {
		_, ok := c.Lookup("missing", "hero-title")
		assert.False(t, ok)
	})

	t.Run("ReturnedSectionIsACopy", func(t *testing.T) {
		got, ok := c.Lookup("home", "hero-title")
		require.True(t, ok)
		got.Content = "mutated"

		again, ok := c.Lookup("home", "hero-title")
		require.True(t, ok)
		assert.Equal(t, "Welcome", again.Content)
	})
}

func TestCatalogDefaults(t *testing.T) {
	c := NewCatalog(map[string][]vo.Section{
		"home": {
			{ID: "hero-title", Type: vo.SectionHeading, Content: "Welcome"},
			{ID: "hero-body", Type: vo.SectionParagraph, Content: "Body"},
		},
	})

	t.Run("DeclarationOrder", func(t *testing.T) {
		defaults := c.Defaults("home")
		require.Len(t, defaults, 2)
		assert.Equal(t, "hero-title", defaults[0].ID)
		assert.Equal(t, "hero-body", defaults[1].ID)
	})

	t.Run("UnknownSlug", func(t *testing.T) {
		assert.Nil(t, c.Defaults("missing"))
	})

	t.Run("ReturnedSliceIsACopy", func(t *testing.T) {
		defaults := c.Defaults("home")
		defaults[0].Content = "mutated"

		again := c.Defaults("home")
		assert.Equal(t, "Welcome", again[0].Content)
	})
}

func TestCatalogSlugs(t *testing.T) {
	c := NewCatalog(map[string][]vo.Section{
		"contact": {}, "about": {}, "home": {},
	})
	assert.Equal(t, []string{"about", "contact", "home"}, c.Slugs())
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"about", "contact", "home"}, c.Slugs())

	hero, ok := c.Lookup("home", "hero-title")
	require.True(t, ok)
	assert.Equal(t, vo.SectionHeading, hero.Type)
	assert.NotEmpty(t, hero.Content)

	button, ok := c.Lookup("contact", "contact-button")
	require.True(t, ok)
	assert.False(t, button.Editable)
}
