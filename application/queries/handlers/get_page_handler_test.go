package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/queries"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/entities"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/tests/fixtures"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/tests/mocks"
)

func TestGetPageHandler_HandleBySlug(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		handler := NewGetPageHandler(repo, zap.NewNop())

		page := fixtures.NewPageBuilder().WithSlug("home").Build()
		repo.On("GetBySlug", mock.Anything, "home", true).Return(page, nil)

		got, err := handler.HandleBySlug(context.Background(), queries.GetPageBySlugQuery{
			Slug:          "home",
			PublishedOnly: true,
		})
		require.NoError(t, err)
		assert.Equal(t, page.ID(), got.ID())
	})

	t.Run("NotFoundPassesThrough", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		handler := NewGetPageHandler(repo, zap.NewNop())

		repo.On("GetBySlug", mock.Anything, "missing", false).
			Return(nil, pkgerrors.NewNotFoundError("page"))

		_, err := handler.HandleBySlug(context.Background(), queries.GetPageBySlugQuery{Slug: "missing"})
		require.Error(t, err)
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("StoreFailureWrapped", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		handler := NewGetPageHandler(repo, zap.NewNop())

		repo.On("GetBySlug", mock.Anything, "home", false).
			Return(nil, errors.New("connection reset"))

		_, err := handler.HandleBySlug(context.Background(), queries.GetPageBySlugQuery{Slug: "home"})
		require.Error(t, err)
		assert.False(t, pkgerrors.IsNotFound(err))
	})
}

func TestGetPageHandler_HandleByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		handler := NewGetPageHandler(repo, zap.NewNop())

		page := fixtures.NewPageBuilder().Build()
		repo.On("GetByID", mock.Anything, page.ID()).Return(page, nil)

		got, err := handler.HandleByID(context.Background(), queries.GetPageByIDQuery{
			PageID: page.ID().String(),
		})
		require.NoError(t, err)
		assert.Equal(t, page.Slug(), got.Slug())
	})

	t.Run("InvalidID", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		handler := NewGetPageHandler(repo, zap.NewNop())

		_, err := handler.HandleByID(context.Background(), queries.GetPageByIDQuery{PageID: "nope"})
		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidation(err))
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestListPagesHandler(t *testing.T) {
	t.Run("ReturnsAll", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		handler := NewListPagesHandler(repo, zap.NewNop())

		pages := []*entities.Page{
			fixtures.NewPageBuilder().WithSlug("home").Build(),
			fixtures.NewPageBuilder().WithSlug("about").Build(),
		}
		repo.On("ListAll", mock.Anything).Return(pages, nil)

		got, err := handler.Handle(context.Background(), queries.ListPagesQuery{})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("NilBecomesEmpty", func(t *testing.T) {
		repo := new(mocks.MockPageRepository)
		handler := NewListPagesHandler(repo, zap.NewNop())

		repo.On("ListAll", mock.Anything).Return(nil, nil)

		got, err := handler.Handle(context.Background(), queries.ListPagesQuery{})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
