package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/catalog"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/tests/fixtures"
)

func newTestResolver() *SectionResolver {
	return NewSectionResolver(catalog.NewCatalog(map[string][]valueobjects.Section{
		"home": {
			{ID: "hero-title", Type: valueobjects.SectionHeading, Content: "Welcome", Editable: true},
			{ID: "hero-subtitle", Type: valueobjects.SectionParagraph, Content: "Build faster", Editable: true},
		},
	}))
}

func TestSectionResolver_Resolve(t *testing.T) {
	resolver := newTestResolver()

	t.Run("persisted section wins over the default", func(t *testing.T) {
		page := fixtures.NewPageBuilder().
			WithSlug("home").
			WithTextSection("hero-title", "Custom headline").
			Build()

		section, err := resolver.Resolve(page, "hero-title")
		require.NoError(t, err)
		assert.Equal(t, "Custom headline", section.Content)
	})

	t.Run("missing section falls back to the catalog default verbatim", func(t *testing.T) {
		page := fixtures.NewPageBuilder().WithSlug("home").Build()

		section, err := resolver.Resolve(page, "hero-title")
		require.NoError(t, err)
		assert.Equal(t, "Welcome", section.Content)
		assert.Equal(t, valueobjects.SectionHeading, section.Type)
	})

	t.Run("nil page resolves from defaults", func(t *testing.T) {
		section, err := resolver.ResolveForSlug("home", "hero-subtitle")
		require.NoError(t, err)
		assert.Equal(t, "Build faster", section.Content)
	})

	t.Run("unknown section id is not found", func(t *testing.T) {
		page := fixtures.NewPageBuilder().WithSlug("home").Build()

		_, err := resolver.Resolve(page, "no-such-section")
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("resolving never writes the default back", func(t *testing.T) {
		page := fixtures.NewPageBuilder().WithSlug("home").Build()

		_, err := resolver.Resolve(page, "hero-title")
		require.NoError(t, err)
		assert.Empty(t, page.Sections())
	})
}

func TestSectionResolver_ResolveAll(t *testing.T) {
	resolver := newTestResolver()

	t.Run("merges persisted sections with missing defaults", func(t *testing.T) {
		page := fixtures.NewPageBuilder().
			WithSlug("home").
			WithTextSection("hero-title", "Custom headline").
			WithTextSection("extra-note", "Not in the catalog").
			Build()

		sections := resolver.ResolveAll("home", page)
		require.Len(t, sections, 3)

		byID := make(map[string]valueobjects.Section, len(sections))
		for _, s := range sections {
			byID[s.ID] = s
		}
		assert.Equal(t, "Custom headline", byID["hero-title"].Content)
		assert.Equal(t, "Not in the catalog", byID["extra-note"].Content)
		assert.Equal(t, "Build faster", byID["hero-subtitle"].Content)
	})

	t.Run("nil page renders entirely from defaults", func(t *testing.T) {
		sections := resolver.ResolveAll("home", nil)
		assert.Len(t, sections, 2)
	})

	t.Run("unknown slug with nil page renders nothing", func(t *testing.T) {
		assert.Empty(t, resolver.ResolveAll("unknown", nil))
	})
}
