package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/commands"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/services"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/catalog"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/tests/fixtures"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/tests/mocks"
)

func testResolver() *services.SectionResolver {
	c := catalog.NewCatalog(map[string][]valueobjects.Section{
		"home": {
			{ID: "hero-title", Type: valueobjects.SectionHeading, Content: "Welcome", Editable: true},
			{ID: "hero-body", Type: valueobjects.SectionParagraph, Content: "Body copy", Editable: true},
		},
	})
	return services.NewSectionResolver(c)
}

func TestReconcileSectionsHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("fills missing defaults and saves once", func(t *testing.T) {
		page := fixtures.NewPageBuilder().
			WithSlug("home").
			WithTextSection("hero-title", "Custom headline").
			Build()

		repo := new(mocks.MockPageRepository)
		publisher := new(mocks.MockEventPublisher)
		notifier := new(mocks.MockChangeNotifier)

		repo.On("GetBySlug", ctx, "home", false).Return(page, nil)
		repo.On("Save", ctx, page).Return(nil).Once()
		publisher.On("PublishBatch", mock.Anything, mock.Anything).Return(nil)
		notifier.On("PageChanged", ctx, "home").Once()

		handler := NewReconcileSectionsHandler(repo, testResolver(), publisher, notifier, zap.NewNop())
		result, changed, err := handler.Handle(ctx, commands.ReconcileSectionsCommand{Slug: "home"})

		assert.NoError(t, err)
		assert.True(t, changed)

		// Existing content untouched, missing default appended.
		heroTitle, ok := result.Section("hero-title")
		assert.True(t, ok)
		assert.Equal(t, "Custom headline", heroTitle.Content)
		heroBody, ok := result.Section("hero-body")
		assert.True(t, ok)
		assert.Equal(t, "Body copy", heroBody.Content)

		repo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("second run is a no-op without a write", func(t *testing.T) {
		page := fixtures.NewPageBuilder().
			WithSlug("home").
			WithSection(valueobjects.Section{ID: "hero-title", Type: valueobjects.SectionHeading, Content: "Welcome", Editable: true}).
			WithSection(valueobjects.Section{ID: "hero-body", Type: valueobjects.SectionParagraph, Content: "Body copy", Editable: true}).
			Build()

		repo := new(mocks.MockPageRepository)
		publisher := new(mocks.MockEventPublisher)
		notifier := new(mocks.MockChangeNotifier)

		repo.On("GetBySlug", ctx, "home", false).Return(page, nil)

		handler := NewReconcileSectionsHandler(repo, testResolver(), publisher, notifier, zap.NewNop())
		_, changed, err := handler.Handle(ctx, commands.ReconcileSectionsCommand{Slug: "home"})

		assert.NoError(t, err)
		assert.False(t, changed)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		notifier.AssertNotCalled(t, "PageChanged", mock.Anything, mock.Anything)
	})

	t.Run("missing page without create flag is not found", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		publisher := new(mocks.MockEventPublisher)
		notifier := new(mocks.MockChangeNotifier)

		repo.On("GetBySlug", ctx, "home", false).Return(nil, pkgerrors.NewNotFoundError("page"))

		handler := NewReconcileSectionsHandler(repo, testResolver(), publisher, notifier, zap.NewNop())
		_, _, err := handler.Handle(ctx, commands.ReconcileSectionsCommand{Slug: "home"})

		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("missing page with create flag builds unpublished page from defaults", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		publisher := new(mocks.MockEventPublisher)
		notifier := new(mocks.MockChangeNotifier)

		repo.On("GetBySlug", ctx, "home", false).Return(nil, pkgerrors.NewNotFoundError("page"))
		repo.On("Save", ctx, mock.Anything).Return(nil).Once()
		publisher.On("PublishBatch", mock.Anything, mock.Anything).Return(nil)
		notifier.On("PageChanged", ctx, "home").Once()

		handler := NewReconcileSectionsHandler(repo, testResolver(), publisher, notifier, zap.NewNop())
		result, changed, err := handler.Handle(ctx, commands.ReconcileSectionsCommand{
			Slug:            "home",
			CreateIfMissing: true,
		})

		assert.NoError(t, err)
		assert.True(t, changed)
		assert.False(t, result.IsPublished())
		assert.Len(t, result.Sections(), 2)
		repo.AssertExpectations(t)
	})

	t.Run("unknown slug has no defaults", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		publisher := new(mocks.MockEventPublisher)
		notifier := new(mocks.MockChangeNotifier)

		handler := NewReconcileSectionsHandler(repo, testResolver(), publisher, notifier, zap.NewNop())
		_, _, err := handler.Handle(ctx, commands.ReconcileSectionsCommand{Slug: "no-such-page"})

		assert.True(t, pkgerrors.IsNotFound(err))
		repo.AssertNotCalled(t, "GetBySlug", mock.Anything, mock.Anything, mock.Anything)
	})
}
