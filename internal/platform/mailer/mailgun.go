package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"

	"github.com/mailgun/mailgun-go/v4"

	"cleanneat_backend/internal/platform/config"
	httpclient "cleanneat_backend/internal/platform/http"
)

type mailgunSender struct {
	mg   *mailgun.MailgunImpl
	from string
}

func newMailgunSender(cfg config.MailConfig) *mailgunSender {
	mg := mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey)
	mg.SetClient(httpclient.NewHTTPClient(cfg.Timeout))
	from := mail.Address{Name: cfg.FromName, Address: cfg.From}
	return &mailgunSender{mg: mg, from: from.String()}
}

func (s *mailgunSender) Send(ctx context.Context, msg Message) error {
	m := s.mg.NewMessage(s.from, msg.Subject, msg.Text, msg.To)
	m.SetHtml(msg.HTML)

	_, id, err := s.mg.Send(ctx, m)
	if err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}
	slog.Debug("mailgun message queued", "id", id)
	return nil
}
