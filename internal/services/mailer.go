package services

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/logger"
)

// Mailer delivers transactional mail. The SMTP implementation is the only
// one in production; tests stub this interface.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, token string) error
}

type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, username: username, password: password, from: from}
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, token string) error {
	subject := "Reset your password"
	body := fmt.Sprintf("Use this code to reset your password: %s\r\n\r\nThe code expires in 60 minutes.", token)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	addr := m.host + ":" + m.port
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send password reset mail: %w", err)
	}
	return nil
}

// LogMailer stands in when SMTP is not configured, e.g. local development.
type LogMailer struct {
	log *logger.Logger
}

func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, to, token string) error {
	m.log.Info("password reset mail (smtp not configured)", "to", to, "token", token)
	return nil
}
