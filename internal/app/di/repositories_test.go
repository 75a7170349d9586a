package di

import (
	"testing"
	"time"

	"cleanneat_backend/internal/platform/cache"
	"cleanneat_backend/internal/platform/session"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	return db
}

func TestNewTestimonialRepository(t *testing.T) {
	db := openDB(t)

	_, cached := NewTestimonialRepository(nil, time.Minute, db).(*cache.CachingTestimonialRepository)
	assert.False(t, cached)

	rdb, _ := redismock.NewClientMock()
	_, cached = NewTestimonialRepository(rdb, time.Minute, db).(*cache.CachingTestimonialRepository)
	assert.True(t, cached)
}

func TestNewSettingsRepository(t *testing.T) {
	db := openDB(t)

	_, cached := NewSettingsRepository(nil, time.Minute, db).(*cache.CachingSettingsRepository)
	assert.False(t, cached)

	rdb, _ := redismock.NewClientMock()
	_, cached = NewSettingsRepository(rdb, time.Minute, db).(*cache.CachingSettingsRepository)
	assert.True(t, cached)
}

func TestNewUserRepository(t *testing.T) {
	db := openDB(t)

	t.Run("without redis", func(t *testing.T) {
		repo, checker := NewUserRepository(nil, time.Hour, db)
		assert.Nil(t, checker)
		_, revoking := repo.(*session.RevokingUserRepository)
		assert.False(t, revoking)
	})

	t.Run("with redis", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()
		repo, checker := NewUserRepository(rdb, time.Hour, db)
		assert.NotNil(t, checker)
		_, revoking := repo.(*session.RevokingUserRepository)
		assert.True(t, revoking)
	})
}
