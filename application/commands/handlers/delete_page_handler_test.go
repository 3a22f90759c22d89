package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/commands"
	domainevents "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/events"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/tests/fixtures"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/tests/mocks"
)

func TestDeletePageHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		publisher := new(mocks.MockEventPublisher)
		notifier := new(mocks.MockChangeNotifier)
		handler := NewDeletePageHandler(repo, publisher, notifier, zap.NewNop())

		page := fixtures.NewPageBuilder().WithSlug("about").Build()
		repo.On("GetByID", mock.Anything, page.ID()).Return(page, nil)
		repo.On("Delete", mock.Anything, page.ID()).Return(nil)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e domainevents.DomainEvent) bool {
			return e.EventType() == domainevents.TypePageDeleted
		})).Return(nil)
		notifier.On("PageChanged", mock.Anything, "about").Return()

		err := handler.Handle(context.Background(), commands.DeletePageCommand{
			PageID: page.ID().String(),
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		publisher := new(mocks.MockEventPublisher)
		notifier := new(mocks.MockChangeNotifier)
		handler := NewDeletePageHandler(repo, publisher, notifier, zap.NewNop())

		missing := fixtures.NewPageBuilder().Build()
		repo.On("GetByID", mock.Anything, missing.ID()).
			Return(nil, pkgerrors.NewNotFoundError("page"))

		err := handler.Handle(context.Background(), commands.DeletePageCommand{
			PageID: missing.ID().String(),
		})
		require.Error(t, err)
		assert.True(t, pkgerrors.IsNotFound(err))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		notifier.AssertNotCalled(t, "PageChanged", mock.Anything, mock.Anything)
	})

	t.Run("InvalidID", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		publisher := new(mocks.MockEventPublisher)
		notifier := new(mocks.MockChangeNotifier)
		handler := NewDeletePageHandler(repo, publisher, notifier, zap.NewNop())

		err := handler.Handle(context.Background(), commands.DeletePageCommand{
			PageID: "not-a-uuid",
		})
		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidation(err))
	})

	t.Run("PublishFailureDoesNotFailDelete", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		publisher := new(mocks.MockEventPublisher)
		notifier := new(mocks.MockChangeNotifier)
		handler := NewDeletePageHandler(repo, publisher, notifier, zap.NewNop())

		page := fixtures.NewPageBuilder().WithSlug("about").Build()
		repo.On("GetByID", mock.Anything, page.ID()).Return(page, nil)
		repo.On("Delete", mock.Anything, page.ID()).Return(nil)
		publisher.On("Publish", mock.Anything, mock.Anything).
			Return(errors.New("bus unavailable"))
		notifier.On("PageChanged", mock.Anything, "about").Return()

		err := handler.Handle(context.Background(), commands.DeletePageCommand{
			PageID: page.ID().String(),
		})
		require.NoError(t, err)
		notifier.AssertExpectations(t)
	})
}
