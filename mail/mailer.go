package mail

import (
	"context"
	"strings"

	"gopkg.in/gomail.v2"

	"rentify-api/config/common"
	"rentify-api/config/logger"
)

// Email is a fully composed outbound message. HTML may be empty, in which
// case only the plain-text body is sent.
type Email struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer is the dispatch boundary. Callers in the disclosure workflow
// treat a send failure as advisory: they log it and move on.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// NewlineToHTML renders a plain-text body as HTML the same way the
// templates are shown in notification emails.
func NewlineToHTML(text string) string {
	return strings.ReplaceAll(text, "\n", "<br>")
}

type SmtpMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *logger.AppLogger
}

func NewSmtpMailer(cfg *common.Config, log *logger.AppLogger) *SmtpMailer {
	host, port, user, password, from := cfg.GetSmtpConfig()
	return &SmtpMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
		log:    log,
	}
}

func (mailer *SmtpMailer) Send(ctx context.Context, email Email) error {
	message := gomail.NewMessage()
	message.SetHeader("From", mailer.from)
	message.SetHeader("To", email.To)
	message.SetHeader("Subject", email.Subject)
	message.SetBody("text/plain", email.Text)
	if email.HTML != "" {
		message.AddAlternative("text/html", email.HTML)
	}

	if err := mailer.dialer.DialAndSend(message); err != nil {
		mailer.log.Mail.Error.Error().
			Err(err).
			Str("to", email.To).
			Str("subject", email.Subject).
			Msg("Failed to send email")
		return err
	}

	mailer.log.Mail.Info.Info().
		Str("to", email.To).
		Str("subject", email.Subject).
		Msg("Email sent")
	return nil
}
