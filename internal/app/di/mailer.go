package di

import (
	"fmt"

	"cleanneat_backend/internal/platform/config"
	"cleanneat_backend/internal/platform/mailer"
)

// NewMailer creates a Mailer for the configured provider.
// Delivery failures are counted by kind on the given counter.
func NewMailer(cfg config.MailConfig, counter mailer.FailureCounter) (*mailer.Mailer, error) {
	m, err := mailer.New(cfg, counter)
	if err != nil {
		return nil, fmt.Errorf("failed to create mailer: %w", err)
	}
	return m, nil
}
