package db

import (
	"fmt"

	"gorm.io/gorm"

	actionlogentity "cleanneat_backend/internal/feature/actionlog/domain/entity"
	applicationentity "cleanneat_backend/internal/feature/applications/domain/entity"
	authentity "cleanneat_backend/internal/feature/auth/domain/entity"
	faqentity "cleanneat_backend/internal/feature/faqs/domain/entity"
	inquiryentity "cleanneat_backend/internal/feature/inquiries/domain/entity"
	serviceentity "cleanneat_backend/internal/feature/services/domain/entity"
	settingsadapters "cleanneat_backend/internal/feature/settings/adapters"
	testimonialentity "cleanneat_backend/internal/feature/testimonials/domain/entity"
)

// Migrate はすべてのテーブルを作成・更新します。
// RUN_MIGRATIONS=true の場合のみ起動時に呼ばれます。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authentity.User{},
		&actionlogentity.ActionLog{},
		&serviceentity.Service{},
		&faqentity.Faq{},
		&testimonialentity.Testimonial{},
		&inquiryentity.Inquiry{},
		&applicationentity.Application{},
		&settingsadapters.SettingsModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
