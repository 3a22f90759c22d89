package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/commands"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/tests/fixtures"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/tests/mocks"
)

func TestSavePageHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		publisher := new(mocks.MockEventPublisher)
		notifier := new(mocks.MockChangeNotifier)
		handler := NewSavePageHandler(repo, publisher, notifier, zap.NewNop())

		repo.On("GetBySlug", mock.Anything, "pricing", false).
			Return(nil, pkgerrors.NewNotFoundError("page"))
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)
		publisher.On("PublishBatch", mock.Anything, mock.Anything).Return(nil)
		notifier.On("PageChanged", mock.Anything, "pricing").Return()

		published := true
		page, err := handler.Handle(context.Background(), commands.SavePageCommand{
			Slug:      "pricing",
			Title:     "Pricing",
			Published: &published,
		})
		require.NoError(t, err)

		assert.Equal(t, "pricing", page.Slug().String())
		assert.True(t, page.IsPublished())
		assert.False(t, page.ID().IsZero())
		assert.Empty(t, page.GetUncommittedEvents())
		repo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("DuplicateSlug", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		publisher := new(mocks.MockEventPublisher)
		notifier := new(mocks.MockChangeNotifier)
		handler := NewSavePageHandler(repo, publisher, notifier, zap.NewNop())

		existing := fixtures.NewPageBuilder().WithSlug("pricing").Build()
		repo.On("GetBySlug", mock.Anything, "pricing", false).Return(existing, nil)

		_, err := handler.Handle(context.Background(), commands.SavePageCommand{
			Slug:  "pricing",
			Title: "Pricing",
		})
		require.Error(t, err)
		assert.True(t, pkgerrors.IsConflict(err))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("ValidationFailure", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		publisher := new(mocks.MockEventPublisher)
		notifier := new(mocks.MockChangeNotifier)
		handler := NewSavePageHandler(repo, publisher, notifier, zap.NewNop())

		_, err := handler.Handle(context.Background(), commands.SavePageCommand{Slug: ""})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSavePageHandler_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		publisher := new(mocks.MockEventPublisher)
		notifier := new(mocks.MockChangeNotifier)
		handler := NewSavePageHandler(repo, publisher, notifier, zap.NewNop())

		existing := fixtures.NewPageBuilder().WithSlug("home").WithTitle("Home").Build()
		repo.On("GetByID", mock.Anything, existing.ID()).Return(existing, nil)
		repo.On("Save", mock.Anything, existing).Return(nil)
		publisher.On("PublishBatch", mock.Anything, mock.Anything).Return(nil).Maybe()
		notifier.On("PageChanged", mock.Anything, "home").Return()

		page, err := handler.Handle(context.Background(), commands.SavePageCommand{
			PageID: existing.ID().String(),
			Slug:   "home",
			Title:  "Homepage",
		})
		require.NoError(t, err)
		assert.Equal(t, "Homepage", page.Title())
		repo.AssertExpectations(t)
	})

	t.Run("SlugChangeRejected", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		publisher := new(mocks.MockEventPublisher)
		notifier := new(mocks.MockChangeNotifier)
		handler := NewSavePageHandler(repo, publisher, notifier, zap.NewNop())

		existing := fixtures.NewPageBuilder().WithSlug("home").Build()
		repo.On("GetByID", mock.Anything, existing.ID()).Return(existing, nil)

		_, err := handler.Handle(context.Background(), commands.SavePageCommand{
			PageID: existing.ID().String(),
			Slug:   "homepage",
			Title:  "Home",
		})
		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidation(err))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		publisher := new(mocks.MockEventPublisher)
		notifier := new(mocks.MockChangeNotifier)
		handler := NewSavePageHandler(repo, publisher, notifier, zap.NewNop())

		missing := fixtures.NewPageBuilder().Build()
		repo.On("GetByID", mock.Anything, missing.ID()).
			Return(nil, pkgerrors.NewNotFoundError("page"))

		_, err := handler.Handle(context.Background(), commands.SavePageCommand{
			PageID: missing.ID().String(),
			Slug:   "home",
		})
		require.Error(t, err)
		assert.True(t, pkgerrors.IsNotFound(err))
	})
}
