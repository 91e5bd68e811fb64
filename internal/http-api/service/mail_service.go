package service

import (
	"fmt"
	"log/slog"
	"net/smtp"

	"parchelector/internal/config"
)

// Mailer sends outbound notification mail. Sends are fire-and-forget: they
// run in the background and failures are logged, never returned to the
// request path.
type Mailer interface {
	SendPasswordReset(to, username, token string)
}

type smtpMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	logger   *slog.Logger
}

// noopMailer is used when SMTP is not configured; it only logs.
type noopMailer struct {
	logger *slog.Logger
}

func NewMailer(cfg *config.Config, logger *slog.Logger) Mailer {
	if !cfg.MailEnabled() {
		logger.Warn("SMTP not configured, outbound mail disabled")
		return &noopMailer{logger: logger}
	}
	return &smtpMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPass,
		from:     cfg.SMTPFrom,
		logger:   logger,
	}
}

func (m *smtpMailer) SendPasswordReset(to, username, token string) {
	subject := "Password reset"
	body := fmt.Sprintf(
		"Hello %s,\r\n\r\n"+
			"A password reset was requested for your account. Use the token below to choose a new password:\r\n\r\n"+
			"    %s\r\n\r\n"+
			"The token expires in one hour. If you did not request this, you can ignore this message.\r\n",
		username, token,
	)
	go m.send(to, subject, body)
}

func (m *smtpMailer) send(to, subject, body string) {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.from, to, subject, body,
	))

	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		m.logger.Error("failed to send mail", "to", to, "error", err)
		return
	}
	m.logger.Info("mail sent", "to", to, "subject", subject)
}

func (m *noopMailer) SendPasswordReset(to, username, token string) {
	m.logger.Info("mail disabled, skipping password reset mail", "to", to)
}
