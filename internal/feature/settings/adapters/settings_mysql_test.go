package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cleanneat_backend/internal/feature/settings/domain/entity"
	"cleanneat_backend/internal/feature/settings/usecase"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")
	require.NoError(t, db.AutoMigrate(&SettingsModel{}), "failed to migrate table")
	return db
}

func TestSettingsMySQL(t *testing.T) {
	repo := NewSettingsMySQL(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.Get(ctx)
	require.ErrorIs(t, err, usecase.ErrSettingsNotFound)

	phone := "0113 000 000"
	s := &entity.Settings{
		PrimaryPhone:         &phone,
		ServiceAreaPostcodes: []string{"LS1", "LS2"},
		WhoWeSupport: &entity.WhoWeSupport{
			SectionTitle: "Who we support",
			SectionIntro: "Everyone",
			Groups:       []entity.SupportGroup{{Label: "Older people", Description: "Home help"}},
		},
		UpdatedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Upsert(ctx, s))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got.PrimaryPhone)
	assert.Equal(t, phone, *got.PrimaryPhone)
	assert.Equal(t, []string{"LS1", "LS2"}, got.ServiceAreaPostcodes)
	assert.Nil(t, got.HeroImages, "unset list stays null")
	require.NotNil(t, got.WhoWeSupport)
	assert.Equal(t, "Older people", got.WhoWeSupport.Groups[0].Label)

	t.Run("second upsert overwrites the same row", func(t *testing.T) {
		got.PrimaryPhone = nil
		got.HeroImages = []string{"https://example.com/a.jpg"}
		require.NoError(t, repo.Upsert(ctx, got))

		again, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Nil(t, again.PrimaryPhone)
		assert.Equal(t, []string{"https://example.com/a.jpg"}, again.HeroImages)

		var count int64
		require.NoError(t, repo.db.Model(&SettingsModel{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}
