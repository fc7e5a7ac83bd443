package client

import (
	"context"
	"fmt"
	"strings"
	"time"
	"tour-booking-service/internal/config"

	"github.com/wneessen/go-mail"
)

type Email struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendResult reports the outcome of a delivery. Failures are carried in
// Error rather than returned, so callers can decide synchronously.
type SendResult struct {
	Success   bool
	MessageID string
	Error     string
}

type Mailer interface {
	Send(ctx context.Context, email *Email) *SendResult
}

type smtpMailerImpl struct {
	host     string
	port     int
	user     string
	password string
	from     string
	fromName string
	secure   bool
	timeout  time.Duration
}

func NewSMTPMailer(smtpCfg *config.SMTP) Mailer {
	return &smtpMailerImpl{
		host:     smtpCfg.Host,
		port:     smtpCfg.Port,
		user:     smtpCfg.User,
		password: smtpCfg.Password,
		from:     smtpCfg.From,
		fromName: smtpCfg.FromName,
		secure:   smtpCfg.Secure,
		timeout:  smtpCfg.Timeout,
	}
}

func (m *smtpMailerImpl) Send(ctx context.Context, email *Email) (result *SendResult) {
	defer func() {
		if r := recover(); r != nil {
			result = &SendResult{Error: fmt.Sprintf("smtp send panic: %v", r)}
		}
	}()

	if err := m.validate(); err != nil {
		return &SendResult{Error: err.Error()}
	}

	msg, err := m.buildMessage(email)
	if err != nil {
		return &SendResult{Error: err.Error()}
	}

	c, err := mail.NewClient(m.host, m.clientOptions()...)
	if err != nil {
		return &SendResult{Error: fmt.Sprintf("create smtp client: %v", err)}
	}

	if err := c.DialAndSendWithContext(ctx, msg); err != nil {
		return &SendResult{Error: fmt.Sprintf("smtp send: %v", err)}
	}

	return &SendResult{
		Success:   true,
		MessageID: messageID(msg),
	}
}

func (m *smtpMailerImpl) validate() error {
	var missing []string
	if m.host == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if m.user == "" {
		missing = append(missing, "SMTP_USER")
	}
	if m.password == "" {
		missing = append(missing, "SMTP_PASSWORD")
	}
	if len(missing) > 0 {
		return fmt.Errorf("smtp not configured: missing %s", strings.Join(missing, ", "))
	}
	return nil
}

func (m *smtpMailerImpl) buildMessage(email *Email) (*mail.Msg, error) {
	if email == nil || email.To == "" {
		return nil, fmt.Errorf("missing recipient")
	}

	from := m.from
	if from == "" {
		from = m.user
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.fromName, from); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(email.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(email.Subject)
	msg.SetMessageID()
	msg.SetDate()

	msg.SetBodyString(mail.TypeTextPlain, email.Text)
	msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)

	return msg, nil
}

func (m *smtpMailerImpl) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.user),
		mail.WithPassword(m.password),
	}
	if m.timeout > 0 {
		opts = append(opts, mail.WithTimeout(m.timeout))
	}
	if m.secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	return opts
}

func messageID(msg *mail.Msg) string {
	if ids := msg.GetGenHeader(mail.HeaderMessageID); len(ids) > 0 {
		return ids[0]
	}
	return ""
}
