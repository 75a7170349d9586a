// Package mailer sends the transactional e-mails of the service through the
// configured provider.
package mailer

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"cleanneat_backend/internal/platform/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// ErrTimeout is returned when the provider does not answer within the
// configured MAIL_TIMEOUT.
var ErrTimeout = errors.New("email send timeout")

// DefaultTimeout applies when MAIL_TIMEOUT is zero.
const DefaultTimeout = 30 * time.Second

// Message is one rendered e-mail.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers a rendered message. Implementations honour ctx where the
// underlying client allows it.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// FailureCounter counts messages that could not be delivered, by kind.
type FailureCounter interface {
	IncrementMailFailures(kind string)
}

type noopCounter struct{}

func (noopCounter) IncrementMailFailures(string) {}

// Mailer renders templates and hands them to a Sender, racing each send
// against a timeout.
type Mailer struct {
	sender    Sender
	templates *template.Template
	timeout   time.Duration
	failures  FailureCounter
}

// New builds the Mailer for cfg.Provider. counter may be nil.
func New(cfg config.MailConfig, counter FailureCounter) (*Mailer, error) {
	sender, err := newSender(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithSender(sender, cfg.Timeout, counter)
}

// NewWithSender is New with an explicit sender.
func NewWithSender(sender Sender, timeout time.Duration, counter FailureCounter) (*Mailer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse mail templates: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if counter == nil {
		counter = noopCounter{}
	}
	return &Mailer{sender: sender, templates: tmpl, timeout: timeout, failures: counter}, nil
}

func newSender(cfg config.MailConfig) (Sender, error) {
	switch cfg.Provider {
	case "smtp":
		return newSMTPSender(cfg), nil
	case "mailgun":
		return newMailgunSender(cfg), nil
	case "sendgrid":
		return newSendGridSender(cfg), nil
	case "none", "":
		slog.Info("mail provider not configured; e-mails will only be logged")
		return nopSender{}, nil
	}
	return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
}

// SendUserCredentials e-mails a new user their login details. The caller
// treats a failure as fatal for the account.
func (m *Mailer) SendUserCredentials(ctx context.Context, to, name, loginEmail, plainPassword string) error {
	return m.send(ctx, "user_credentials", to, "Your account credentials", map[string]string{
		"Name":     name,
		"Email":    loginEmail,
		"Password": plainPassword,
	}, fmt.Sprintf("Hello %s,\n\nAn account has been created for you.\nEmail: %s\nPassword: %s\n\nPlease change your password after signing in.\n",
		name, loginEmail, plainPassword))
}

func (m *Mailer) SendInquiryConfirmation(ctx context.Context, to, fullName, inquiryID string) error {
	return m.send(ctx, "inquiry_confirmation", to, "We received your quote request", map[string]string{
		"FullName":  fullName,
		"InquiryID": inquiryID,
	}, fmt.Sprintf("Hello %s,\n\nThank you for your quote request. Your reference is %s.\nWe will be in touch shortly.\n",
		fullName, inquiryID))
}

func (m *Mailer) SendApplicationConfirmation(ctx context.Context, to, fullName, applicationID string) error {
	return m.send(ctx, "application_confirmation", to, "We received your job application", map[string]string{
		"FullName":      fullName,
		"ApplicationID": applicationID,
	}, fmt.Sprintf("Hello %s,\n\nThank you for applying. Your reference is %s.\nWe will review your application and contact you.\n",
		fullName, applicationID))
}

func (m *Mailer) send(ctx context.Context, kind, to, subject string, data map[string]string, text string) error {
	var html bytes.Buffer
	if err := m.templates.ExecuteTemplate(&html, kind+".html", data); err != nil {
		m.failures.IncrementMailFailures(kind)
		return fmt.Errorf("render %s: %w", kind, err)
	}
	msg := Message{To: to, Subject: subject, HTML: html.String(), Text: text}

	if err := m.deliver(ctx, msg); err != nil {
		m.failures.IncrementMailFailures(kind)
		slog.Warn("failed to send email", "kind", kind, "to", to, "error", err)
		return err
	}
	slog.Info("email sent", "kind", kind, "to", to)
	return nil
}

// deliver は送信と MAIL_TIMEOUT を競わせます。
// リクエストのキャンセルでは中断せず、タイムアウトのみで打ち切ります。
func (m *Mailer) deliver(ctx context.Context, msg Message) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- m.sender.Send(ctx, msg) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w after %s", ErrTimeout, m.timeout)
	}
}

type nopSender struct{}

func (nopSender) Send(_ context.Context, msg Message) error {
	slog.Info("mail disabled; message not sent", "to", msg.To, "subject", msg.Subject)
	return nil
}
