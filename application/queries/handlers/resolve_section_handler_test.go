package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/queries"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/services"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/catalog"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/tests/fixtures"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/tests/mocks"
)

func newResolver() *services.SectionResolver {
	return services.NewSectionResolver(catalog.NewCatalog(map[string][]valueobjects.Section{
		"home": {
			{ID: "hero-title", Type: valueobjects.SectionHeading, Content: "Welcome", Editable: true},
		},
	}))
}

func TestResolveSectionHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("persisted content is served verbatim", func(t *testing.T) {
		page := fixtures.NewPageBuilder().
			WithSlug("home").
			WithTextSection("hero-title", "Custom headline").
			Build()

		repo := new(mocks.MockPageRepository)
		repo.On("GetBySlug", ctx, "home", true).Return(page, nil)

		handler := NewResolveSectionHandler(repo, newResolver(), zap.NewNop())
		section, err := handler.Handle(ctx, queries.ResolveSectionQuery{
			Slug:          "home",
			SectionID:     "hero-title",
			PublishedOnly: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "Custom headline", section.Content)
	})

	t.Run("missing page falls back to the default", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		repo.On("GetBySlug", ctx, "home", true).Return(nil, pkgerrors.NewNotFoundError("page"))

		handler := NewResolveSectionHandler(repo, newResolver(), zap.NewNop())
		section, err := handler.Handle(ctx, queries.ResolveSectionQuery{
			Slug:          "home",
			SectionID:     "hero-title",
			PublishedOnly: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "Welcome", section.Content)
	})

	t.Run("unknown section on an existing page is not found", func(t *testing.T) {
		page := fixtures.NewPageBuilder().WithSlug("home").Build()

		repo := new(mocks.MockPageRepository)
		repo.On("GetBySlug", ctx, "home", true).Return(page, nil)

		handler := NewResolveSectionHandler(repo, newResolver(), zap.NewNop())
		_, err := handler.Handle(ctx, queries.ResolveSectionQuery{
			Slug:          "home",
			SectionID:     "no-such-section",
			PublishedOnly: true,
		})

		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("store failure surfaces instead of masking as a default", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		repo.On("GetBySlug", ctx, "home", true).
			Return(nil, pkgerrors.NewDatabaseError("query page by slug", assert.AnError))

		handler := NewResolveSectionHandler(repo, newResolver(), zap.NewNop())
		_, err := handler.Handle(ctx, queries.ResolveSectionQuery{
			Slug:          "home",
			SectionID:     "hero-title",
			PublishedOnly: true,
		})

		assert.Error(t, err)
		assert.False(t, pkgerrors.IsNotFound(err))
	})
}
