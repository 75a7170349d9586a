package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cleanneat_backend/internal/feature/testimonials/domain/entity"
	"cleanneat_backend/internal/feature/testimonials/usecase"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")
	require.NoError(t, db.AutoMigrate(&entity.Testimonial{}), "failed to migrate table")
	return db
}

func TestTestimonialMySQL(t *testing.T) {
	repo := NewTestimonialMySQL(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	mk := func(id string, published bool, at time.Time) *entity.Testimonial {
		return &entity.Testimonial{
			ID: id, NamePublic: "Sam", LocationPublic: "Leeds", Rating: 5, Text: "Great",
			Status: entity.StatusPending, IsPublished: published, CreatedAt: at, UpdatedAt: at,
		}
	}
	for _, tm := range []*entity.Testimonial{
		mk("test_a", true, base),
		mk("test_b", false, base.Add(time.Hour)),
		mk("test_c", true, base.Add(2*time.Hour)),
	} {
		require.NoError(t, repo.Create(ctx, tm))
	}

	t.Run("list newest first", func(t *testing.T) {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "test_c", list[0].ID)
	})

	t.Run("published only", func(t *testing.T) {
		list, err := repo.ListPublished(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, []string{"test_c", "test_a"}, []string{list[0].ID, list[1].ID})
	})

	t.Run("unpublish via save", func(t *testing.T) {
		tm, err := repo.FindByID(ctx, "test_a")
		require.NoError(t, err)
		tm.IsPublished = false
		tm.Status = "rejected"
		require.NoError(t, repo.Save(ctx, tm))

		list, err := repo.ListPublished(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "test_b"))
		assert.ErrorIs(t, repo.Delete(ctx, "test_b"), usecase.ErrTestimonialNotFound)
		_, err := repo.FindByID(ctx, "test_b")
		assert.ErrorIs(t, err, usecase.ErrTestimonialNotFound)
	})
}
