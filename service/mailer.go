package service

import (
	"fmt"
	"net/smtp"

	"github.com/campus-events/backend/config"

	"github.com/rs/zerolog/log"
)

// Mailer sends plain-text mail. Delivery is best-effort everywhere it is
// used: a failed send is logged and never rolls back the write that
// triggered it.
type Mailer interface {
	Send(to, subject, body string) error
}

type smtpMailer struct {
	addr string
	from string
	auth smtp.Auth
}

// NewMailer returns an SMTP mailer, or a logging no-op when no SMTP host is
// configured.
func NewMailer(cfg *config.Config) Mailer {
	if !cfg.MailEnabled() {
		return noopMailer{}
	}

	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}

	return &smtpMailer{
		addr: cfg.SMTPHost + ":" + cfg.SMTPPort,
		from: cfg.SMTPFrom,
		auth: auth,
	}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body)
	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg))
}

type noopMailer struct{}

func (noopMailer) Send(to, subject, _ string) error {
	log.Info().Str("to", to).Str("subject", subject).Msg("mail disabled, skipping send")
	return nil
}
