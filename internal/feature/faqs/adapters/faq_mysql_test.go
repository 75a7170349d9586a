package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cleanneat_backend/internal/feature/faqs/domain/entity"
	"cleanneat_backend/internal/feature/faqs/usecase"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")
	require.NoError(t, db.AutoMigrate(&entity.Faq{}), "failed to migrate table")
	return db
}

func TestFaqMySQL(t *testing.T) {
	repo := NewFaqMySQL(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	mk := func(q string, order int, at time.Time) *entity.Faq {
		return &entity.Faq{ID: uuid.NewString(), Question: q, Answer: "a", Category: "general", SortOrder: order, CreatedAt: at, UpdatedAt: at}
	}
	old, newer, last := mk("old", 0, base), mk("newer", 0, base.Add(time.Hour)), mk("last", 1, base)
	for _, f := range []*entity.Faq{last, old, newer} {
		require.NoError(t, repo.Create(ctx, f))
	}

	t.Run("list order", func(t *testing.T) {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, []string{"newer", "old", "last"}, []string{list[0].Question, list[1].Question, list[2].Question})
	})

	t.Run("save then find", func(t *testing.T) {
		old.Answer = "updated"
		old.IsPublished = true
		require.NoError(t, repo.Save(ctx, old))

		found, err := repo.FindByID(ctx, old.ID)
		require.NoError(t, err)
		assert.Equal(t, "updated", found.Answer)
		assert.True(t, found.IsPublished)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, newer.ID))
		_, err := repo.FindByID(ctx, newer.ID)
		assert.ErrorIs(t, err, usecase.ErrFaqNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, newer.ID), usecase.ErrFaqNotFound)
	})
}
