package mailer

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"

	"cleanneat_backend/internal/platform/config"
)

type smtpSender struct {
	addr string
	auth smtp.Auth
	from mail.Address
}

func newSMTPSender(cfg config.MailConfig) *smtpSender {
	s := &smtpSender{
		addr: net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		from: mail.Address{Name: cfg.FromName, Address: cfg.From},
	}
	if cfg.SMTPUser != "" && cfg.SMTPPass != "" {
		s.auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}
	return s
}

// Send uses STARTTLS when the server offers it. net/smtp has no context
// support; the Mailer timeout bounds the wait.
func (s *smtpSender) Send(_ context.Context, msg Message) error {
	if err := smtp.SendMail(s.addr, s.auth, s.from.Address, []string{msg.To}, buildMIME(s.from, msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

const boundary = "cleanneat-alt-boundary"

func buildMIME(from mail.Address, msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + from.String() + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: multipart/alternative; boundary=" + boundary + "\r\n\r\n")
	b.WriteString("--" + boundary + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(msg.Text + "\r\n")
	b.WriteString("--" + boundary + "\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	b.WriteString(msg.HTML + "\r\n")
	b.WriteString("--" + boundary + "--\r\n")
	return []byte(b.String())
}
