package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/tests/fixtures"
)

func contentPtr(s string) *string { return &s }

func TestPageRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewPageRepository(zap.NewNop())

	page := fixtures.NewPageBuilder().
		WithSlug("home").
		WithTextSection("hero-title", "Welcome").
		Build()

	require.NoError(t, repo.Save(ctx, page))

	t.Run("get by id returns the saved document", func(t *testing.T) {
		got, err := repo.GetByID(ctx, page.ID())
		require.NoError(t, err)
		assert.Equal(t, page.ID(), got.ID())
		assert.Equal(t, "home", got.Slug().String())
		assert.Len(t, got.Sections(), 1)
	})

	t.Run("get by slug returns the saved document", func(t *testing.T) {
		got, err := repo.GetBySlug(ctx, "home", false)
		require.NoError(t, err)
		assert.Equal(t, page.ID(), got.ID())
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, valueobjects.NewPageID())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("returned pages are copies", func(t *testing.T) {
		got, err := repo.GetByID(ctx, page.ID())
		require.NoError(t, err)
		_, _, err = got.UpsertSection("hero-title", valueobjects.SectionPatch{Content: contentPtr("mutated")})
		require.NoError(t, err)

		fresh, err := repo.GetByID(ctx, page.ID())
		require.NoError(t, err)
		section, ok := fresh.Section("hero-title")
		require.True(t, ok)
		assert.Equal(t, "Welcome", section.Content)
	})
}

func TestPageRepository_PublishedOnly(t *testing.T) {
	ctx := context.Background()
	repo := NewPageRepository(zap.NewNop())

	draft := fixtures.NewPageBuilder().WithSlug("about").Unpublished().Build()
	require.NoError(t, repo.Save(ctx, draft))

	_, err := repo.GetBySlug(ctx, "about", true)
	assert.True(t, pkgerrors.IsNotFound(err))

	got, err := repo.GetBySlug(ctx, "about", false)
	require.NoError(t, err)
	assert.False(t, got.IsPublished())
}

func TestPageRepository_UpsertSection(t *testing.T) {
	ctx := context.Background()
	repo := NewPageRepository(zap.NewNop())

	created := time.Now().Add(-48 * time.Hour)
	page := fixtures.NewPageBuilder().
		WithSlug("home").
		WithCreatedAt(created).
		WithSection(valueobjects.Section{
			ID:       "hero-image",
			Type:     valueobjects.SectionImage,
			Content:  "https://cdn.example.com/old.png",
			Editable: true,
			Metadata: map[string]interface{}{"imageAlt": "Old hero"},
		}).
		Build()
	require.NoError(t, repo.Save(ctx, page))

	t.Run("patch updates content and keeps unrelated metadata", func(t *testing.T) {
		updated, err := repo.UpsertSection(ctx, page.ID().String(), "hero-image", valueobjects.SectionPatch{
			Content: contentPtr("https://cdn.example.com/new.png"),
		})
		require.NoError(t, err)

		section, ok := updated.Section("hero-image")
		require.True(t, ok)
		assert.Equal(t, "https://cdn.example.com/new.png", section.Content)
		assert.Equal(t, "Old hero", section.Metadata["imageAlt"])
	})

	t.Run("created timestamp survives the write", func(t *testing.T) {
		got, err := repo.GetByID(ctx, page.ID())
		require.NoError(t, err)
		assert.WithinDuration(t, created, got.CreatedAt(), time.Second)
		assert.True(t, got.UpdatedAt().After(got.CreatedAt()))
	})

	t.Run("unknown section id appends", func(t *testing.T) {
		updated, err := repo.UpsertSection(ctx, page.ID().String(), "hero-cta", valueobjects.SectionPatch{
			Content: contentPtr("Get started"),
		})
		require.NoError(t, err)

		section, ok := updated.Section("hero-cta")
		require.True(t, ok)
		assert.Equal(t, "Get started", section.Content)
		assert.True(t, section.Editable)
		assert.Len(t, updated.Sections(), 2)
	})

	t.Run("unknown page is not found", func(t *testing.T) {
		_, err := repo.UpsertSection(ctx, valueobjects.NewPageID().String(), "x", valueobjects.SectionPatch{})
		assert.True(t, pkgerrors.IsNotFound(err))
	})
}

func TestPageRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewPageRepository(zap.NewNop())

	page := fixtures.NewPageBuilder().WithSlug("contact").Build()
	require.NoError(t, repo.Save(ctx, page))

	require.NoError(t, repo.Delete(ctx, page.ID()))

	_, err := repo.GetByID(ctx, page.ID())
	assert.True(t, pkgerrors.IsNotFound(err))

	err = repo.Delete(ctx, page.ID())
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestPageRepository_ListAll(t *testing.T) {
	ctx := context.Background()
	repo := NewPageRepository(zap.NewNop())

	pages, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, pages)

	for _, slug := range []string{"home", "about", "contact"} {
		p := fixtures.NewPageBuilder().WithSlug(slug).Build()
		require.NoError(t, repo.Save(ctx, p))
	}

	pages, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, pages, 3)
}
